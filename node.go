package grove

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lyraproj/issue/issue"
)

// Node is a parsed line or part of one.
type Node interface {
	Eval(env *Env) (Value, error)
	String() string
}

// Expr is a node that produces a value.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a node evaluated for its effect on the Env.
type Stmt interface {
	Node
	stmtNode()
}

type (
	NumberLiteral struct {
		Value Int
	}

	StringLiteral struct {
		Value Str
	}

	VariableRef struct {
		Name string
	}

	BinaryAdd struct {
		Left, Right Expr
	}

	// ObjectConstruction instantiates the type at a dotted path such as re.Pattern.
	ObjectConstruction struct {
		Path []string
	}

	MethodInvocation struct {
		Receiver *VariableRef
		Method   string
		Args     []Expr
	}
)

type (
	Assignment struct {
		Target *VariableRef
		Value  Expr
	}

	ModuleImport struct {
		Name string
	}

	// TerminateSession asks the loop running the session to stop.
	TerminateSession struct {
		Keyword string
	}
)

func (*NumberLiteral) exprNode()      {}
func (*StringLiteral) exprNode()      {}
func (*VariableRef) exprNode()        {}
func (*BinaryAdd) exprNode()          {}
func (*ObjectConstruction) exprNode() {}
func (*MethodInvocation) exprNode()   {}

func (*Assignment) stmtNode()       {}
func (*ModuleImport) stmtNode()     {}
func (*TerminateSession) stmtNode() {}

func describe(n Node) string {
	switch n.(type) {
	case *Assignment:
		return "assignment"
	case *ModuleImport:
		return "import statement"
	case *TerminateSession:
		return "session terminator"
	}
	return fmt.Sprintf("%T", n)
}

func asExpr(n Node) (Expr, error) {
	e, ok := n.(Expr)
	if !ok {
		return nil, newError(ExpectedExpression, issue.H{`actual`: describe(n)})
	}
	return e, nil
}

// NewBinaryAdd builds an addition of two expressions.
func NewBinaryAdd(left, right Node) (*BinaryAdd, error) {
	l, err := asExpr(left)
	if err != nil {
		return nil, err
	}
	r, err := asExpr(right)
	if err != nil {
		return nil, err
	}
	return &BinaryAdd{Left: l, Right: r}, nil
}

// NewAssignment builds an assignment of value to target.
func NewAssignment(target *VariableRef, value Node) (*Assignment, error) {
	v, err := asExpr(value)
	if err != nil {
		return nil, err
	}
	return &Assignment{Target: target, Value: v}, nil
}

// NewMethodInvocation builds a call of method on receiver.
func NewMethodInvocation(receiver *VariableRef, method string, args []Node) (*MethodInvocation, error) {
	exprs := make([]Expr, 0, len(args))
	for _, a := range args {
		e, err := asExpr(a)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	return &MethodInvocation{Receiver: receiver, Method: method, Args: exprs}, nil
}

func (n *NumberLiteral) String() string { return strconv.FormatInt(int64(n.Value), 10) }
func (n *StringLiteral) String() string { return `"` + string(n.Value) + `"` }
func (n *VariableRef) String() string   { return n.Name }

func (n *BinaryAdd) String() string {
	return fmt.Sprintf("+ ( %v ) ( %v )", n.Left, n.Right)
}

func (n *ObjectConstruction) String() string {
	return "new " + strings.Join(n.Path, ".")
}

func (n *MethodInvocation) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "call ( %s %s", n.Receiver, n.Method)
	for _, a := range n.Args {
		fmt.Fprintf(&b, " %v", a)
	}
	b.WriteString(" )")
	return b.String()
}

func (n *Assignment) String() string {
	return fmt.Sprintf("set %s = %v", n.Target, n.Value)
}

func (n *ModuleImport) String() string     { return "import " + n.Name }
func (n *TerminateSession) String() string { return n.Keyword }
