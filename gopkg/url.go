package gopkg

import (
	"net/url"

	"github.com/mattn/grove"
)

func init() {
	register("url", map[string]grove.Factory{
		"URL": newURL,
	})
}

type urlObject struct {
	grove.Methods
	u url.URL
}

func newURL() (*grove.Object, error) {
	o := &urlObject{}
	o.Methods = grove.Methods{
		"parse": oneStr("parse", func(s string) (grove.Value, error) {
			u, err := url.Parse(s)
			if err != nil {
				return nil, grove.Failed("parse", err)
			}
			o.u = *u
			return nil, nil
		}),
		"scheme": noArgs("scheme", func() (grove.Value, error) { return grove.Str(o.u.Scheme), nil }),
		"host":   noArgs("host", func() (grove.Value, error) { return grove.Str(o.u.Host), nil }),
		"path":   noArgs("path", func() (grove.Value, error) { return grove.Str(o.u.Path), nil }),
		"query": oneStr("query", func(key string) (grove.Value, error) {
			return grove.Str(o.u.Query().Get(key)), nil
		}),
		"set_query": func(args []grove.Value) (grove.Value, error) {
			if err := grove.ExpectArgs("set_query", args, 2); err != nil {
				return nil, err
			}
			key, err := grove.StrArg("set_query", args, 0)
			if err != nil {
				return nil, err
			}
			q := o.u.Query()
			q.Set(string(key), args[1].String())
			o.u.RawQuery = q.Encode()
			return nil, nil
		},
		"string": noArgs("string", func() (grove.Value, error) { return grove.Str(o.u.String()), nil }),
	}
	return grove.NewObject("url.URL", o), nil
}

func (o *urlObject) String() string {
	return o.u.String()
}
