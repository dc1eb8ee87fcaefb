package grove

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/lyraproj/issue/issue"
)

var identPattern = regexp.MustCompile(`^[A-Za-z_]\w*$`)

var keywords = map[string]bool{
	"set":    true,
	"import": true,
	"call":   true,
	"new":    true,
	"quit":   true,
	"exit":   true,
}

// IsIdentifier reports whether s is a valid variable, module or method name.
func IsIdentifier(s string) bool {
	return identPattern.MatchString(s)
}

// Parser is a recursive descent parser for one line at a time. The Env is
// consulted by the call production, which only accepts bound receivers and
// methods they actually have. A Parser with a nil Env skips those checks.
type Parser struct {
	env *Env
}

func NewParser(env *Env) *Parser {
	return &Parser{env: env}
}

// Parse parses a single line against env.
func Parse(env *Env, line string) (Node, error) {
	return NewParser(env).Parse(line)
}

func (p *Parser) Parse(line string) (Node, error) {
	return p.ParseTokens(Tokenize(line))
}

// ParseTokens parses one node and fails unless every token was consumed.
func (p *Parser) ParseTokens(tokens []Token) (Node, error) {
	node, rest, err := p.ParseNext(tokens)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, newError(TrailingTokens, issue.H{`tokens`: strings.Join(tokenTexts(rest), " ")})
	}
	return node, nil
}

// ParseNext parses the node at the head of tokens and returns it with the
// tokens it did not consume.
func (p *Parser) ParseNext(tokens []Token) (Node, []Token, error) {
	if len(tokens) == 0 {
		return nil, nil, p.unexpectedEnd(`an expression`)
	}
	start := tokens[0]
	switch start {
	case "+":
		return p.parseAdd(tokens)
	case "set":
		return p.parseSet(tokens)
	case "import":
		return p.parseImport(tokens)
	case "call":
		return p.parseCall(tokens)
	case "quit", "exit":
		return &TerminateSession{Keyword: string(start)}, tokens[1:], nil
	case "(", ")":
		return nil, nil, newError(UnexpectedToken, issue.H{`expected`: `expression`, `actual`: string(start)})
	}

	if i, err := strconv.ParseInt(string(start), 10, 64); err == nil {
		return &NumberLiteral{Value: Int(i)}, tokens[1:], nil
	} else if errors.Is(err, strconv.ErrRange) {
		return nil, nil, newError(UnexpectedToken, issue.H{`expected`: `64-bit integer`, `actual`: string(start)})
	}

	if strings.HasPrefix(string(start), `"`) {
		s, err := p.parseString(start)
		if err != nil {
			return nil, nil, err
		}
		return s, tokens[1:], nil
	}

	if !IsIdentifier(string(start)) {
		return nil, nil, newError(InvalidIdentifier, issue.H{`what`: `variable`, `name`: string(start)})
	}
	return &VariableRef{Name: string(start)}, tokens[1:], nil
}

func (p *Parser) parseString(tok Token) (*StringLiteral, error) {
	s := string(tok)
	if len(s) < 2 || !strings.HasSuffix(s, `"`) {
		return nil, newError(InvalidStringLiteral, issue.H{`token`: s, `reason`: `missing closing quotation mark`})
	}
	if strings.Count(s, `"`) > 2 {
		return nil, newError(InvalidStringLiteral, issue.H{`token`: s, `reason`: `extra quotation marks in string`})
	}
	return &StringLiteral{Value: Str(s[1 : len(s)-1])}, nil
}

// + ( Expr ) ( Expr )
func (p *Parser) parseAdd(tokens []Token) (Node, []Token, error) {
	rest, err := p.expect(tokens[1:], "(")
	if err != nil {
		return nil, nil, err
	}
	left, rest, err := p.ParseNext(rest)
	if err != nil {
		return nil, nil, err
	}
	if rest, err = p.expect(rest, ")"); err != nil {
		return nil, nil, err
	}
	if rest, err = p.expect(rest, "("); err != nil {
		return nil, nil, err
	}
	right, rest, err := p.ParseNext(rest)
	if err != nil {
		return nil, nil, err
	}
	if rest, err = p.expect(rest, ")"); err != nil {
		return nil, nil, err
	}
	node, err := NewBinaryAdd(left, right)
	if err != nil {
		return nil, nil, err
	}
	return node, rest, nil
}

// set IDENT = Expr
// set IDENT = new dotted.Path
func (p *Parser) parseSet(tokens []Token) (Node, []Token, error) {
	if len(tokens) < 2 {
		return nil, nil, p.unexpectedEnd(`variable name`)
	}
	if err := p.checkName(tokens[1], `variable`); err != nil {
		return nil, nil, err
	}
	target := &VariableRef{Name: string(tokens[1])}
	rest, err := p.expect(tokens[2:], "=")
	if err != nil {
		return nil, nil, err
	}
	value, rest, err := p.ParseNext(rest)
	if err != nil {
		return nil, nil, err
	}
	if ref, ok := value.(*VariableRef); ok && ref.Name == "new" {
		if len(rest) == 0 {
			return nil, nil, p.unexpectedEnd(`type name`)
		}
		path, err := p.typePath(rest[0])
		if err != nil {
			return nil, nil, err
		}
		return &Assignment{Target: target, Value: &ObjectConstruction{Path: path}}, rest[1:], nil
	}
	node, err := NewAssignment(target, value)
	if err != nil {
		return nil, nil, err
	}
	return node, rest, nil
}

// import IDENT
func (p *Parser) parseImport(tokens []Token) (Node, []Token, error) {
	if len(tokens) < 2 {
		return nil, nil, p.unexpectedEnd(`module name`)
	}
	if err := p.checkName(tokens[1], `module`); err != nil {
		return nil, nil, err
	}
	if len(tokens) > 2 {
		return nil, nil, newError(ImportArgumentCount, issue.H{`count`: len(tokens) - 1})
	}
	return &ModuleImport{Name: string(tokens[1])}, tokens[2:], nil
}

// call ( IDENT method Expr* )
func (p *Parser) parseCall(tokens []Token) (Node, []Token, error) {
	rest, err := p.expect(tokens[1:], "(")
	if err != nil {
		return nil, nil, err
	}
	if len(rest) == 0 {
		return nil, nil, p.unexpectedEnd(`variable name`)
	}
	recvTok := rest[0]
	if !IsIdentifier(string(recvTok)) {
		return nil, nil, newError(InvalidIdentifier, issue.H{`what`: `variable`, `name`: string(recvTok)})
	}
	var recv Value
	if p.env != nil {
		v, ok := p.env.Lookup(string(recvTok))
		if !ok {
			return nil, nil, newError(UndefinedVariable, issue.H{`name`: string(recvTok)})
		}
		recv = v
	}
	rest = rest[1:]
	if len(rest) == 0 {
		return nil, nil, p.unexpectedEnd(`method name`)
	}
	methodTok := rest[0]
	if !IsIdentifier(string(methodTok)) {
		return nil, nil, newError(InvalidIdentifier, issue.H{`what`: `method`, `name`: string(methodTok)})
	}
	if p.env != nil {
		if c, ok := recv.(Callable); !ok || !c.HasMethod(string(methodTok)) {
			return nil, nil, newError(UndefinedMethod, issue.H{`type`: recv.TypeName(), `name`: string(methodTok)})
		}
	}
	rest = rest[1:]

	var args []Node
	for {
		if len(rest) == 0 {
			return nil, nil, p.unexpectedEnd(`')'`)
		}
		if rest[0] == ")" {
			break
		}
		var arg Node
		arg, rest, err = p.ParseNext(rest)
		if err != nil {
			return nil, nil, err
		}
		args = append(args, arg)
	}
	node, err := NewMethodInvocation(&VariableRef{Name: string(recvTok)}, string(methodTok), args)
	if err != nil {
		return nil, nil, err
	}
	return node, rest[1:], nil
}

func (p *Parser) typePath(tok Token) ([]string, error) {
	path := strings.Split(string(tok), ".")
	for _, seg := range path {
		if !IsIdentifier(seg) {
			return nil, newError(InvalidTypePath, issue.H{`path`: string(tok)})
		}
	}
	return path, nil
}

func (p *Parser) checkName(tok Token, what string) error {
	if !IsIdentifier(string(tok)) {
		return newError(InvalidIdentifier, issue.H{`what`: what, `name`: string(tok)})
	}
	if keywords[string(tok)] {
		return newError(ReservedWord, issue.H{`what`: what, `name`: string(tok)})
	}
	return nil
}

func (p *Parser) expect(tokens []Token, want string) ([]Token, error) {
	if len(tokens) == 0 {
		return nil, p.unexpectedEnd(`'` + want + `'`)
	}
	if string(tokens[0]) != want {
		return nil, newError(UnexpectedToken, issue.H{`expected`: want, `actual`: tokens[0]})
	}
	return tokens[1:], nil
}

func (p *Parser) unexpectedEnd(expected string) error {
	return newError(UnexpectedEnd, issue.H{`expected`: expected})
}
