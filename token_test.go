package grove

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []Token
	}{
		{input: "", want: nil},
		{input: "   \t ", want: nil},
		{input: "set x = 5", want: []Token{"set", "x", "=", "5"}},
		{input: "  a   b  ", want: []Token{"a", "b"}},
		{input: "+ (1) (2)", want: []Token{"+", "(", "1", ")", "(", "2", ")"}},
		{input: "+ ( 1 ) ( 2 )", want: []Token{"+", "(", "1", ")", "(", "2", ")"}},
		{input: "call(s upper)", want: []Token{"call", "(", "s", "upper", ")"}},
		{input: `set s = "hello world"`, want: []Token{"set", "s", "=", `"hello world"`}},
		{input: `("a b")`, want: []Token{"(", `"a b"`, ")"}},
		{input: `"a ( b"`, want: []Token{`"a ( b"`}},
		{input: `"unterminated x`, want: []Token{`"unterminated x`}},
		{input: `"a"b"`, want: []Token{`"a"b"`}},
		{input: "a # comment", want: []Token{"a"}},
		{input: "a#b", want: []Token{"a#b"}},
		{input: `"a # b"`, want: []Token{`"a # b"`}},
		{input: "set r = new re.Pattern", want: []Token{"set", "r", "=", "new", "re.Pattern"}},
	}
	for _, test := range tests {
		got := Tokenize(test.input)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%q: (-want +got):\n%s", test.input, diff)
		}
	}
}
