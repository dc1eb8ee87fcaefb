package gopkg

import (
	"errors"
	"regexp"

	"github.com/mattn/grove"
)

func init() {
	register("re", map[string]grove.Factory{
		"Pattern": newPattern,
	})
}

var errNotCompiled = errors.New("pattern is not compiled")

type pattern struct {
	grove.Methods
	re *regexp.Regexp
}

func newPattern() (*grove.Object, error) {
	p := &pattern{}
	p.Methods = grove.Methods{
		"compile": oneStr("compile", func(s string) (grove.Value, error) {
			re, err := regexp.Compile(s)
			if err != nil {
				return nil, grove.Failed("compile", err)
			}
			p.re = re
			return nil, nil
		}),
		"match": p.withString("match", func(s string) grove.Value {
			return grove.Bool(p.re.MatchString(s))
		}),
		"find": p.withString("find", func(s string) grove.Value {
			return grove.Str(p.re.FindString(s))
		}),
		"findall": func(args []grove.Value) (grove.Value, error) {
			if err := p.ready("findall", args, 1); err != nil {
				return nil, err
			}
			s, err := grove.StrArg("findall", args, 0)
			if err != nil {
				return nil, err
			}
			var found []grove.Value
			for _, m := range p.re.FindAllString(string(s), -1) {
				found = append(found, grove.Str(m))
			}
			return newList(found)
		},
		"replace": func(args []grove.Value) (grove.Value, error) {
			if err := p.ready("replace", args, 2); err != nil {
				return nil, err
			}
			s, err := grove.StrArg("replace", args, 0)
			if err != nil {
				return nil, err
			}
			repl, err := grove.StrArg("replace", args, 1)
			if err != nil {
				return nil, err
			}
			return grove.Str(p.re.ReplaceAllString(string(s), string(repl))), nil
		},
		"pattern": noArgs("pattern", func() (grove.Value, error) {
			if p.re == nil {
				return grove.Str(""), nil
			}
			return grove.Str(p.re.String()), nil
		}),
	}
	return grove.NewObject("re.Pattern", p), nil
}

func (p *pattern) ready(method string, args []grove.Value, n int) error {
	if err := grove.ExpectArgs(method, args, n); err != nil {
		return err
	}
	if p.re == nil {
		return grove.Failed(method, errNotCompiled)
	}
	return nil
}

func (p *pattern) withString(method string, fn func(string) grove.Value) grove.Method {
	return func(args []grove.Value) (grove.Value, error) {
		if err := p.ready(method, args, 1); err != nil {
			return nil, err
		}
		s, err := grove.StrArg(method, args, 0)
		if err != nil {
			return nil, err
		}
		return fn(string(s)), nil
	}
}

func (p *pattern) String() string {
	if p.re == nil {
		return "re.Pattern()"
	}
	return `re.Pattern("` + p.re.String() + `")`
}
