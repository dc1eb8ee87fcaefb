package grove

import (
	"sort"
	"strconv"

	"github.com/lyraproj/issue/issue"
)

// Value is the result of evaluating an expression: Int, Str or *Object.
type Value interface {
	TypeName() string
	String() string
}

// Callable is implemented by values that expose methods.
type Callable interface {
	HasMethod(name string) bool
	Invoke(method string, args []Value) (Value, error)
}

type Int int64

func (i Int) TypeName() string { return "int" }
func (i Int) String() string   { return strconv.FormatInt(int64(i), 10) }

type Str string

func (s Str) TypeName() string { return "str" }
func (s Str) String() string   { return string(s) }

// Method is a single entry of a method table. It returns a nil Value when
// the method produces nothing.
type Method func(args []Value) (Value, error)

// Methods is a closed method table.
type Methods map[string]Method

func (m Methods) HasMethod(name string) bool {
	_, ok := m[name]
	return ok
}

func (m Methods) Invoke(method string, args []Value) (Value, error) {
	fn, ok := m[method]
	if !ok {
		return nil, newError(UndefinedMethod, issue.H{`type`: `object`, `name`: method})
	}
	return fn(args)
}

// Names returns the method names in sorted order.
func (m Methods) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Object is a handle to a constructed instance of a registered type.
type Object struct {
	typ  string
	impl Callable
}

// NewObject wraps impl as an instance of the named type.
func NewObject(typeName string, impl Callable) *Object {
	return &Object{typ: typeName, impl: impl}
}

func (o *Object) TypeName() string { return o.typ }

func (o *Object) String() string {
	if s, ok := o.impl.(interface{ String() string }); ok {
		return s.String()
	}
	return "<" + o.typ + " object>"
}

// Impl returns the value backing the handle.
func (o *Object) Impl() Callable {
	return o.impl
}

func (o *Object) HasMethod(name string) bool {
	return o.impl.HasMethod(name)
}

func (o *Object) Invoke(method string, args []Value) (Value, error) {
	if !o.impl.HasMethod(method) {
		return nil, newError(UndefinedMethod, issue.H{`type`: o.typ, `name`: method})
	}
	return o.impl.Invoke(method, args)
}

// Factory constructs a new instance of a type without arguments.
type Factory func() (*Object, error)

// ExpectArgs fails unless exactly n arguments were passed to method.
func ExpectArgs(method string, args []Value, n int) error {
	if len(args) != n {
		return newError(ArgumentCount, issue.H{`method`: method, `expected`: n, `actual`: len(args)})
	}
	return nil
}

// IntArg returns argument i as an Int.
func IntArg(method string, args []Value, i int) (Int, error) {
	v, ok := args[i].(Int)
	if !ok {
		return 0, newError(ArgumentType, issue.H{`method`: method, `number`: i + 1, `expected`: `int`, `actual`: args[i].TypeName()})
	}
	return v, nil
}

// StrArg returns argument i as a Str.
func StrArg(method string, args []Value, i int) (Str, error) {
	v, ok := args[i].(Str)
	if !ok {
		return "", newError(ArgumentType, issue.H{`method`: method, `number`: i + 1, `expected`: `str`, `actual`: args[i].TypeName()})
	}
	return v, nil
}

// Failed reports a host error raised while running method.
func Failed(method string, err error) error {
	return newError(MethodFailed, issue.H{`method`: method, `message`: err.Error()})
}

// Bool converts b to the integer truth value 1 or 0.
func Bool(b bool) Value {
	if b {
		return Int(1)
	}
	return Int(0)
}
