package gopkg_test

import (
	"runtime"
	"testing"

	"github.com/lyraproj/issue/issue"
	"github.com/mattn/grove"
	_ "github.com/mattn/grove/gopkg"
)

func exec(t *testing.T, env *grove.Env, line string) grove.Value {
	t.Helper()
	v, _, err := grove.Exec(env, line)
	if err != nil {
		t.Fatalf("%q: %v", line, err)
	}
	return v
}

type check struct {
	input string
	want  string
}

func runChecks(t *testing.T, env *grove.Env, checks []check) {
	t.Helper()
	for _, c := range checks {
		v := exec(t, env, c.input)
		got := "<none>"
		if v != nil {
			got = v.String()
		}
		if got != c.want {
			t.Errorf("want %q for %q but got %q", c.want, c.input, got)
		}
	}
}

func TestPattern(t *testing.T) {
	env := grove.NewEnv()
	exec(t, env, "import re")
	exec(t, env, "set r = new re.Pattern")
	runChecks(t, env, []check{
		{input: `call ( r compile "a+b" )`, want: "<none>"},
		{input: `call ( r match "xaab" )`, want: "1"},
		{input: `call ( r match "xyz" )`, want: "0"},
		{input: `call ( r find "xaaab" )`, want: "aaab"},
		{input: `call ( r replace "ab aab" "X" )`, want: "X X"},
		{input: `call ( r findall "ab c aab" )`, want: `["ab", "aab"]`},
		{input: "call ( r pattern )", want: "a+b"},
		{input: "r", want: `re.Pattern("a+b")`},
	})

	_, _, err := grove.Exec(env, "call ( r someMethod )")
	if grove.KindOf(err) != grove.UndefinedMethodKind {
		t.Errorf("want %v but got %v", grove.UndefinedMethodKind, err)
	}
	_, _, err = grove.Exec(env, `call ( r compile "(" )`)
	if !grove.Is(err, grove.MethodFailed) {
		t.Errorf("want %s but got %v", grove.MethodFailed, err)
	}

	exec(t, env, "set fresh = new re.Pattern")
	_, _, err = grove.Exec(env, `call ( fresh match "a" )`)
	if !grove.Is(err, grove.MethodFailed) {
		t.Errorf("want %s for an uncompiled pattern but got %v", grove.MethodFailed, err)
	}
}

func TestBuilder(t *testing.T) {
	env := grove.NewEnv()
	exec(t, env, "import strings")
	exec(t, env, "set b = new strings.Builder")
	runChecks(t, env, []check{
		{input: `call ( b write "a" 1 )`, want: "2"},
		{input: `call ( b write " b" )`, want: "4"},
		{input: "call ( b string )", want: "a1 b"},
		{input: "call ( b len )", want: "4"},
		{input: "call ( b reset )", want: "<none>"},
		{input: "call ( b len )", want: "0"},
	})
}

func TestURL(t *testing.T) {
	env := grove.NewEnv()
	exec(t, env, "import url")
	exec(t, env, "set u = new url.URL")
	runChecks(t, env, []check{
		{input: `call ( u parse "https://example.com/a/b?q=1" )`, want: "<none>"},
		{input: "call ( u scheme )", want: "https"},
		{input: "call ( u host )", want: "example.com"},
		{input: "call ( u path )", want: "/a/b"},
		{input: `call ( u query "q" )`, want: "1"},
		{input: `call ( u set_query "q" 2 )`, want: "<none>"},
		{input: "call ( u string )", want: "https://example.com/a/b?q=2"},
	})
	_, _, err := grove.Exec(env, `call ( u parse "http://[::1" )`)
	if !grove.Is(err, grove.MethodFailed) {
		t.Errorf("want %s but got %v", grove.MethodFailed, err)
	}
}

func TestJSONObject(t *testing.T) {
	env := grove.NewEnv()
	exec(t, env, "import json")
	exec(t, env, "set o = new json.Object")
	exec(t, env, "set inner = new json.Object")
	runChecks(t, env, []check{
		{input: `call ( o set "b" "x" )`, want: "<none>"},
		{input: `call ( o set "a" 1 )`, want: "<none>"},
		{input: `call ( inner set "k" 2 )`, want: "<none>"},
		{input: `call ( o set "n" inner )`, want: "<none>"},
		{input: `call ( o get "a" )`, want: "1"},
		{input: `call ( o has "z" )`, want: "0"},
		{input: "call ( o keys )", want: `["a", "b", "n"]`},
		{input: "call ( o marshal )", want: `{"a":1,"b":"x","n":{"k":2}}`},
	})
	_, _, err := grove.Exec(env, `call ( o get "z" )`)
	if grove.KindOf(err) != grove.TypeMismatchKind {
		t.Errorf("want %v but got %v", grove.TypeMismatchKind, err)
	}
}

func TestRuntimeInfo(t *testing.T) {
	env := grove.NewEnv()
	exec(t, env, "import runtime")
	exec(t, env, "set i = new runtime.Info")
	runChecks(t, env, []check{
		{input: "call ( i goos )", want: runtime.GOOS},
		{input: "call ( i goarch )", want: runtime.GOARCH},
		{input: "call ( i version )", want: runtime.Version()},
	})
}

func TestUndefinedTypeInModule(t *testing.T) {
	env := grove.NewEnv()
	exec(t, env, "import re")
	tests := []struct {
		input string
		code  issue.Code
	}{
		{input: "set p = new re.Missing", code: grove.UndefinedType},
		{input: "set p = new strings.Builder", code: grove.UndefinedModule},
		{input: "import definitely_not_a_module", code: grove.ImportFailed},
	}
	for _, test := range tests {
		_, _, err := grove.Exec(env, test.input)
		if !grove.Is(err, test.code) {
			t.Errorf("want %s for %q but got %v", test.code, test.input, err)
		}
	}
}
