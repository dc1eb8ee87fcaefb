package grove

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lyraproj/issue/issue"
)

func init() {
	RegisterType("List", NewList)
	RegisterType("Counter", NewCounter)
}

type strMethod func(s Str, args []Value) (Value, error)

var strMethods map[string]strMethod

func init() {
	strMethods = map[string]strMethod{
		"upper":      strNoArgs("upper", func(s string) Value { return Str(strings.ToUpper(s)) }),
		"lower":      strNoArgs("lower", func(s string) Value { return Str(strings.ToLower(s)) }),
		"strip":      strNoArgs("strip", func(s string) Value { return Str(strings.TrimSpace(s)) }),
		"len":        strNoArgs("len", func(s string) Value { return Int(len([]rune(s))) }),
		"capitalize": strNoArgs("capitalize", capitalize),
		"isdigit":    strNoArgs("isdigit", isDigits),
		"find":       strOneArg("find", runeIndex),
		"count":      strOneArg("count", func(s, sub string) Value { return Int(strings.Count(s, sub)) }),
		"startswith": strOneArg("startswith", func(s, p string) Value { return Bool(strings.HasPrefix(s, p)) }),
		"endswith":   strOneArg("endswith", func(s, p string) Value { return Bool(strings.HasSuffix(s, p)) }),
		"replace":    strReplace,
	}
}

func capitalize(s string) Value {
	if s == "" {
		return Str(s)
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return Str(r)
}

// runeIndex is strings.Index counted in characters rather than bytes.
func runeIndex(s, sub string) Value {
	i := strings.Index(s, sub)
	if i < 0 {
		return Int(-1)
	}
	return Int(utf8.RuneCountInString(s[:i]))
}

func isDigits(s string) Value {
	return Bool(s != "" && strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) }) < 0)
}

func strNoArgs(name string, fn func(string) Value) strMethod {
	return func(s Str, args []Value) (Value, error) {
		if err := ExpectArgs(name, args, 0); err != nil {
			return nil, err
		}
		return fn(string(s)), nil
	}
}

func strOneArg(name string, fn func(string, string) Value) strMethod {
	return func(s Str, args []Value) (Value, error) {
		if err := ExpectArgs(name, args, 1); err != nil {
			return nil, err
		}
		a, err := StrArg(name, args, 0)
		if err != nil {
			return nil, err
		}
		return fn(string(s), string(a)), nil
	}
}

func strReplace(s Str, args []Value) (Value, error) {
	if err := ExpectArgs("replace", args, 2); err != nil {
		return nil, err
	}
	old, err := StrArg("replace", args, 0)
	if err != nil {
		return nil, err
	}
	repl, err := StrArg("replace", args, 1)
	if err != nil {
		return nil, err
	}
	return Str(strings.ReplaceAll(string(s), string(old), string(repl))), nil
}

func (s Str) HasMethod(name string) bool {
	_, ok := strMethods[name]
	return ok
}

func (s Str) Invoke(method string, args []Value) (Value, error) {
	fn, ok := strMethods[method]
	if !ok {
		return nil, newError(UndefinedMethod, issue.H{`type`: s.TypeName(), `name`: method})
	}
	return fn(s, args)
}

type list struct {
	Methods
	items []Value
	// set while String runs, so a list that contains itself renders as [...]
	rendering bool
}

// NewList constructs an empty List.
func NewList() (*Object, error) {
	l := &list{}
	l.Methods = Methods{
		"append": func(args []Value) (Value, error) {
			l.items = append(l.items, args...)
			return nil, nil
		},
		"get": func(args []Value) (Value, error) {
			if err := ExpectArgs("get", args, 1); err != nil {
				return nil, err
			}
			i, err := IntArg("get", args, 0)
			if err != nil {
				return nil, err
			}
			if i < 0 {
				i += Int(len(l.items))
			}
			if i < 0 || int(i) >= len(l.items) {
				return nil, newError(MethodFailed, issue.H{`method`: `get`, `message`: `list index out of range`})
			}
			return l.items[i], nil
		},
		"pop": func(args []Value) (Value, error) {
			if err := ExpectArgs("pop", args, 0); err != nil {
				return nil, err
			}
			if len(l.items) == 0 {
				return nil, newError(MethodFailed, issue.H{`method`: `pop`, `message`: `pop from empty list`})
			}
			v := l.items[len(l.items)-1]
			l.items = l.items[:len(l.items)-1]
			return v, nil
		},
		"len": func(args []Value) (Value, error) {
			if err := ExpectArgs("len", args, 0); err != nil {
				return nil, err
			}
			return Int(len(l.items)), nil
		},
		"string": func(args []Value) (Value, error) {
			if err := ExpectArgs("string", args, 0); err != nil {
				return nil, err
			}
			return Str(l.String()), nil
		},
	}
	return NewObject("List", l), nil
}

func (l *list) String() string {
	if l.rendering {
		return "[...]"
	}
	l.rendering = true
	defer func() { l.rendering = false }()

	var b strings.Builder
	b.WriteByte('[')
	for i, v := range l.items {
		if i > 0 {
			b.WriteString(", ")
		}
		if s, ok := v.(Str); ok {
			b.WriteString(`"` + string(s) + `"`)
			continue
		}
		b.WriteString(v.String())
	}
	b.WriteByte(']')
	return b.String()
}

type counter struct {
	Methods
	n Int
}

// NewCounter constructs a Counter starting at zero.
func NewCounter() (*Object, error) {
	c := &counter{}
	c.Methods = Methods{
		"inc": func(args []Value) (Value, error) {
			if err := ExpectArgs("inc", args, 0); err != nil {
				return nil, err
			}
			c.n++
			return c.n, nil
		},
		"add": func(args []Value) (Value, error) {
			if err := ExpectArgs("add", args, 1); err != nil {
				return nil, err
			}
			d, err := IntArg("add", args, 0)
			if err != nil {
				return nil, err
			}
			c.n += d
			return c.n, nil
		},
		"get": func(args []Value) (Value, error) {
			if err := ExpectArgs("get", args, 0); err != nil {
				return nil, err
			}
			return c.n, nil
		},
		"reset": func(args []Value) (Value, error) {
			if err := ExpectArgs("reset", args, 0); err != nil {
				return nil, err
			}
			c.n = 0
			return nil, nil
		},
	}
	return NewObject("Counter", c), nil
}

func (c *counter) String() string {
	return "Counter(" + c.n.String() + ")"
}
