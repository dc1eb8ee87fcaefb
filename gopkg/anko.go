package gopkg

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/mattn/anko/env"
	_ "github.com/mattn/anko/packages"

	"github.com/mattn/grove"
)

// Modules not provided natively are looked up in the Go package tables
// anko maintains. An import name matches a package path exactly or by its
// last element, so `import bytes` finds "bytes" and `import url` would find
// "net/url" were it not already native.
func init() {
	grove.RegisterResolver(resolveHost)
}

func resolveHost(name string) (*grove.Module, bool) {
	path, ok := hostPackage(name)
	if !ok {
		return nil, false
	}
	types := make(map[string]grove.Factory)
	for typeName, t := range env.PackageTypes[path] {
		t := t
		types[typeName] = func() (*grove.Object, error) {
			return newHostObject(reflect.New(t)), nil
		}
	}
	return &grove.Module{Name: name, Types: types}, true
}

func hostPackage(name string) (string, bool) {
	if _, ok := env.PackageTypes[name]; ok {
		return name, true
	}
	paths := make([]string, 0, len(env.PackageTypes))
	for p := range env.PackageTypes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		if p[strings.LastIndex(p, "/")+1:] == name {
			return p, true
		}
	}
	return "", false
}

var (
	tablesMu sync.Mutex
	tables   = map[reflect.Type]map[string]int{}
)

// methodTable lists the exported methods of t once per type.
func methodTable(t reflect.Type) map[string]int {
	tablesMu.Lock()
	defer tablesMu.Unlock()
	if m, ok := tables[t]; ok {
		return m
	}
	m := make(map[string]int, t.NumMethod())
	for i := 0; i < t.NumMethod(); i++ {
		m[t.Method(i).Name] = i
	}
	tables[t] = m
	return m
}

// hostObject is a pointer to a Go value exposed through its method set.
type hostObject struct {
	v       reflect.Value
	methods map[string]int
}

func newHostObject(v reflect.Value) *grove.Object {
	h := &hostObject{v: v, methods: methodTable(v.Type())}
	return grove.NewObject(v.Type().Elem().String(), h)
}

func (h *hostObject) HasMethod(name string) bool {
	_, ok := h.methods[name]
	return ok
}

// Invoke calls the Go method. A panic inside it is reported as a failure of
// the method so the session survives.
func (h *hostObject) Invoke(method string, args []grove.Value) (result grove.Value, err error) {
	idx, ok := h.methods[method]
	if !ok {
		return nil, grove.Failed(method, fmt.Errorf("%s has no method %s", h.v.Type(), method))
	}
	fn := h.v.Method(idx)
	ft := fn.Type()
	nin := ft.NumIn()
	if ft.IsVariadic() {
		if len(args) < nin-1 {
			return nil, grove.ExpectArgs(method, args, nin-1)
		}
	} else if err := grove.ExpectArgs(method, args, nin); err != nil {
		return nil, err
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		var t reflect.Type
		if ft.IsVariadic() && i >= nin-1 {
			t = ft.In(nin - 1).Elem()
		} else {
			t = ft.In(i)
		}
		v, err := toGo(method, i, a, t)
		if err != nil {
			return nil, err
		}
		in[i] = v
	}

	defer func() {
		if r := recover(); r != nil {
			result, err = nil, grove.Failed(method, fmt.Errorf("%v", r))
		}
	}()
	out := fn.Call(in)
	if n := len(out); n > 0 && ft.Out(n-1) == errorType {
		if err, _ := out[n-1].Interface().(error); err != nil {
			return nil, grove.Failed(method, err)
		}
		out = out[:n-1]
	}
	if len(out) == 0 {
		return nil, nil
	}
	return fromGo(out[0]), nil
}

func (h *hostObject) String() string {
	if s, ok := h.v.Interface().(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(h.v.Elem().Interface())
}
