package grove

import (
	"github.com/lyraproj/issue/issue"
)

func (n *NumberLiteral) Eval(env *Env) (Value, error) {
	return n.Value, nil
}

func (n *StringLiteral) Eval(env *Env) (Value, error) {
	return n.Value, nil
}

func (n *VariableRef) Eval(env *Env) (Value, error) {
	v, ok := env.Lookup(n.Name)
	if !ok {
		return nil, newError(UndefinedVariable, issue.H{`name`: n.Name})
	}
	return v, nil
}

func (n *BinaryAdd) Eval(env *Env) (Value, error) {
	l, err := n.Left.Eval(env)
	if err != nil {
		return nil, err
	}
	r, err := n.Right.Eval(env)
	if err != nil {
		return nil, err
	}
	return add(l, r)
}

func add(l, r Value) (Value, error) {
	switch lv := l.(type) {
	case Int:
		if rv, ok := r.(Int); ok {
			return lv + rv, nil
		}
	case Str:
		if rv, ok := r.(Str); ok {
			return lv + rv, nil
		}
	}
	return nil, newError(TypeMismatch, issue.H{`op`: `+`, `left`: typeName(l), `right`: typeName(r)})
}

func typeName(v Value) string {
	if v == nil {
		return "none"
	}
	return v.TypeName()
}

func (n *ObjectConstruction) Eval(env *Env) (Value, error) {
	o, err := env.Construct(n.Path)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (n *MethodInvocation) Eval(env *Env) (Value, error) {
	recv, err := n.Receiver.Eval(env)
	if err != nil {
		return nil, err
	}
	args := make([]Value, 0, len(n.Args))
	for _, a := range n.Args {
		v, err := a.Eval(env)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, newError(ArgumentType, issue.H{`method`: n.Method, `number`: len(args) + 1, `expected`: `a value`, `actual`: `none`})
		}
		args = append(args, v)
	}
	c, ok := recv.(Callable)
	if !ok || !c.HasMethod(n.Method) {
		return nil, newError(UndefinedMethod, issue.H{`type`: typeName(recv), `name`: n.Method})
	}
	return c.Invoke(n.Method, args)
}

// Eval computes the value completely before binding it, so a failing
// right-hand side leaves the Env untouched.
func (n *Assignment) Eval(env *Env) (Value, error) {
	v, err := n.Value.Eval(env)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, newError(TypeMismatch, issue.H{`op`: `=`, `left`: n.Target.Name, `right`: `none`})
	}
	env.Bind(n.Target.Name, v)
	return nil, nil
}

func (n *ModuleImport) Eval(env *Env) (Value, error) {
	return nil, env.Import(n.Name)
}

func (n *TerminateSession) Eval(env *Env) (Value, error) {
	return nil, nil
}
