package grove

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func boolPtr(b bool) *bool { return &b }

func TestDecodeConfig(t *testing.T) {
	src := `
prompt: "> "
history: /tmp/grove_history
prelude: false
preload: [testmod]
trace: true
jobs: 4
`
	cfg, err := DecodeConfig(strings.NewReader(src), "test.yaml")
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		Prompt:  "> ",
		History: "/tmp/grove_history",
		Prelude: boolPtr(false),
		Preload: []string{"testmod"},
		Trace:   true,
		Jobs:    4,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if cfg.UsePrelude() {
		t.Error("want prelude disabled")
	}
}

func TestDecodeConfigDefaults(t *testing.T) {
	for _, src := range []string{"", "jobs: 2\n"} {
		cfg, err := DecodeConfig(strings.NewReader(src), "test.yaml")
		if err != nil {
			t.Fatalf("%q: %v", src, err)
		}
		if cfg.Prompt != DefaultPrompt || cfg.History != DefaultHistory {
			t.Errorf("%q: defaults not applied: %+v", src, cfg)
		}
		if !cfg.UsePrelude() {
			t.Errorf("%q: want prelude enabled", src)
		}
	}
}

func TestDecodeConfigErrors(t *testing.T) {
	for _, src := range []string{
		"colour: red\n",
		"jobs: -1\n",
		"preload: [\"not a name\"]\n",
		"jobs: [1\n",
	} {
		if _, err := DecodeConfig(strings.NewReader(src), "test.yaml"); err == nil {
			t.Errorf("want error for %q", src)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	p := filepath.Join(t.TempDir(), "grove.yaml")
	if err := os.WriteFile(p, []byte("prompt: \"$ \"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(p)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Prompt != "$ " {
		t.Errorf("want prompt %q but got %q", "$ ", cfg.Prompt)
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("want not-exist error but got %v", err)
	}
}

func TestConfigSetup(t *testing.T) {
	cfg := &Config{Prelude: boolPtr(false), Preload: []string{"testmod"}}
	env := NewEnv()
	if err := cfg.Setup(env); err != nil {
		t.Fatal(err)
	}
	if _, ok := env.Lookup("version"); ok {
		t.Error("prelude loaded although disabled")
	}
	mustEval(t, env, "set t = new testmod.Thing")

	cfg = DefaultConfig()
	env = NewEnv()
	if got := env.Names(); len(got) != 0 {
		t.Errorf("new env is not empty: %v", got)
	}
	if err := cfg.Setup(env); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"empty", "space", "version"}, env.Names()); diff != "" {
		t.Errorf("prelude bindings (-want +got):\n%s", diff)
	}
	mustEval(t, env, `set version = "mine"`)
	if got := mustEval(t, env, "version"); got != Str("mine") {
		t.Errorf("want the prelude binding to be replaceable but got %v", got)
	}

	cfg = &Config{Preload: []string{"nosuchmodule"}}
	if err := cfg.Setup(NewEnv()); KindOf(err) != UndefinedModuleKind {
		t.Errorf("want %v but got %v", UndefinedModuleKind, err)
	}
}
