// Package gopkg registers the host modules that grove sessions can import.
package gopkg

import (
	"github.com/mattn/grove"
)

func register(name string, types map[string]grove.Factory) {
	grove.RegisterModule(&grove.Module{Name: name, Types: types})
}

func noArgs(method string, fn func() (grove.Value, error)) grove.Method {
	return func(args []grove.Value) (grove.Value, error) {
		if err := grove.ExpectArgs(method, args, 0); err != nil {
			return nil, err
		}
		return fn()
	}
}

func oneStr(method string, fn func(s string) (grove.Value, error)) grove.Method {
	return func(args []grove.Value) (grove.Value, error) {
		if err := grove.ExpectArgs(method, args, 1); err != nil {
			return nil, err
		}
		s, err := grove.StrArg(method, args, 0)
		if err != nil {
			return nil, err
		}
		return fn(string(s))
	}
}

func newList(vals []grove.Value) (grove.Value, error) {
	l, err := grove.NewList()
	if err != nil {
		return nil, err
	}
	if _, err := l.Invoke("append", vals); err != nil {
		return nil, err
	}
	return l, nil
}
