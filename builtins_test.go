package grove

import (
	"testing"

	"github.com/lyraproj/issue/issue"
)

func TestStrMethods(t *testing.T) {
	env := NewEnv()
	mustEval(t, env, `set s = "Hello World"`)
	mustEval(t, env, `set d = "2024"`)
	mustEval(t, env, `set p = "  pad  "`)

	tests := []struct {
		input string
		want  Value
	}{
		{input: "call ( s upper )", want: Str("HELLO WORLD")},
		{input: "call ( s lower )", want: Str("hello world")},
		{input: "call ( s capitalize )", want: Str("Hello world")},
		{input: "call ( s len )", want: Int(11)},
		{input: "call ( p strip )", want: Str("pad")},
		{input: `call ( s find "World" )`, want: Int(6)},
		{input: `call ( s find "nope" )`, want: Int(-1)},
		{input: `call ( s count "o" )`, want: Int(2)},
		{input: `call ( s startswith "Hell" )`, want: Int(1)},
		{input: `call ( s endswith "Hell" )`, want: Int(0)},
		{input: `call ( s replace "World" "Grove" )`, want: Str("Hello Grove")},
		{input: "call ( d isdigit )", want: Int(1)},
		{input: "call ( s isdigit )", want: Int(0)},
	}
	for _, test := range tests {
		got := mustEval(t, env, test.input)
		if got != test.want {
			t.Errorf("want %v for %q but got %v", test.want, test.input, got)
		}
	}
}

func TestStrMethodsCountCharacters(t *testing.T) {
	env := NewEnv()
	mustEval(t, env, `set u = "héllo wörld"`)
	tests := []struct {
		input string
		want  Value
	}{
		{input: "call ( u len )", want: Int(11)},
		{input: `call ( u find "wörld" )`, want: Int(6)},
		{input: `call ( u find "ö" )`, want: Int(7)},
		{input: `call ( u find "x" )`, want: Int(-1)},
	}
	for _, test := range tests {
		got := mustEval(t, env, test.input)
		if got != test.want {
			t.Errorf("want %v for %q but got %v", test.want, test.input, got)
		}
	}
}

func TestMethodArgumentErrors(t *testing.T) {
	env := NewEnv()
	mustEval(t, env, `set s = "abc"`)
	mustEval(t, env, "set l = new List")
	mustEval(t, env, "set c = new Counter")

	tests := []struct {
		input string
		code  issue.Code
	}{
		{input: "call ( s find )", code: ArgumentCount},
		{input: "call ( s upper 1 )", code: ArgumentCount},
		{input: "call ( s find 1 )", code: ArgumentType},
		{input: `call ( s replace "a" 1 )`, code: ArgumentType},
		{input: `call ( l get "0" )`, code: ArgumentType},
		{input: "call ( l get 0 )", code: MethodFailed},
		{input: "call ( l pop )", code: MethodFailed},
		{input: `call ( c add "1" )`, code: ArgumentType},
	}
	for _, test := range tests {
		err := evalErr(env, test.input)
		if !Is(err, test.code) {
			t.Errorf("want %s for %q but got %v", test.code, test.input, err)
		}
		if KindOf(err) != TypeMismatchKind {
			t.Errorf("want %v for %q but got %v", TypeMismatchKind, test.input, KindOf(err))
		}
	}
}

func TestList(t *testing.T) {
	env := NewEnv()
	mustEval(t, env, "set l = new List")
	mustEval(t, env, `call ( l append 1 "a" 3 )`)

	tests := []struct {
		input string
		want  Value
	}{
		{input: "call ( l len )", want: Int(3)},
		{input: "call ( l get 0 )", want: Int(1)},
		{input: "call ( l get -1 )", want: Int(3)},
		{input: "call ( l string )", want: Str(`[1, "a", 3]`)},
		{input: "call ( l pop )", want: Int(3)},
		{input: "call ( l len )", want: Int(2)},
	}
	for _, test := range tests {
		got := mustEval(t, env, test.input)
		if got != test.want {
			t.Errorf("want %v for %q but got %v", test.want, test.input, got)
		}
	}
	if got := mustEval(t, env, "l").String(); got != `[1, "a"]` {
		t.Errorf("want %q but got %q", `[1, "a"]`, got)
	}
}

func TestListContainingItself(t *testing.T) {
	env := NewEnv()
	mustEval(t, env, "set l = new List")
	mustEval(t, env, "call ( l append 1 l )")
	if got := mustEval(t, env, "l").String(); got != "[1, [...]]" {
		t.Errorf("want %q but got %q", "[1, [...]]", got)
	}
	if got := mustEval(t, env, "call ( l string )"); got != Str("[1, [...]]") {
		t.Errorf("want %q but got %v", "[1, [...]]", got)
	}

	mustEval(t, env, "set m = new List")
	mustEval(t, env, "call ( m append l )")
	if got := mustEval(t, env, "m").String(); got != "[[1, [...]]]" {
		t.Errorf("want %q but got %q", "[[1, [...]]]", got)
	}
}

func TestCounter(t *testing.T) {
	env := NewEnv()
	mustEval(t, env, "set c = new Counter")
	mustEval(t, env, "call ( c inc )")
	if got := mustEval(t, env, "call ( c add 41 )"); got != Int(42) {
		t.Errorf("want 42 but got %v", got)
	}
	if v := mustEval(t, env, "call ( c reset )"); v != nil {
		t.Errorf("reset produced %v", v)
	}
	if got := mustEval(t, env, "call ( c get )"); got != Int(0) {
		t.Errorf("want 0 but got %v", got)
	}
	if got := mustEval(t, env, "c").String(); got != "Counter(0)" {
		t.Errorf("want Counter(0) but got %s", got)
	}
}

func TestObjectHandles(t *testing.T) {
	a, err := NewList()
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewList()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.Invoke("append", []Value{Int(1)}); err != nil {
		t.Fatal(err)
	}
	if got, _ := b.Invoke("len", nil); got != Int(0) {
		t.Errorf("instances share state: len = %v", got)
	}
	if _, err := a.Invoke("missing", nil); !Is(err, UndefinedMethod) {
		t.Errorf("want %s but got %v", UndefinedMethod, err)
	}
	plain := NewObject("plain", Methods{})
	if got := plain.String(); got != "<plain object>" {
		t.Errorf("unexpected string %q", got)
	}
}
