package grove

import (
	"unicode"
	"unicode/utf8"
)

// Token is one lexical unit of an input line.
type Token string

// Tokenize splits line on whitespace. A double-quoted run is kept in one
// token, spaces included, and parentheses always stand alone. A '#' at the
// start of a token comments out the rest of the line.
func Tokenize(line string) []Token {
	var tokens []Token
	start := -1
	quoted := false
	flush := func(end int) {
		if start >= 0 {
			tokens = append(tokens, Token(line[start:end]))
			start = -1
		}
	}
	for i := 0; i < len(line); {
		r, n := utf8.DecodeRuneInString(line[i:])
		switch {
		case quoted:
			if r == '"' {
				quoted = false
			}
		case r == '"':
			if start < 0 {
				start = i
			}
			quoted = true
		case unicode.IsSpace(r):
			flush(i)
		case r == '(' || r == ')':
			flush(i)
			tokens = append(tokens, Token(line[i:i+n]))
		case r == '#' && start < 0:
			return tokens
		default:
			if start < 0 {
				start = i
			}
		}
		i += n
	}
	flush(len(line))
	return tokens
}

func tokenTexts(tokens []Token) []string {
	s := make([]string, len(tokens))
	for i, t := range tokens {
		s[i] = string(t)
	}
	return s
}
