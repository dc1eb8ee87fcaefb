package grove

import (
	"errors"

	"github.com/lyraproj/issue/issue"
)

const (
	UnexpectedEnd        = `GROVE_UNEXPECTED_END`
	UnexpectedToken      = `GROVE_UNEXPECTED_TOKEN`
	TrailingTokens       = `GROVE_TRAILING_TOKENS`
	InvalidIdentifier    = `GROVE_INVALID_IDENTIFIER`
	InvalidStringLiteral = `GROVE_INVALID_STRING_LITERAL`
	InvalidTypePath      = `GROVE_INVALID_TYPE_PATH`
	ReservedWord         = `GROVE_RESERVED_WORD`
	ExpectedExpression   = `GROVE_EXPECTED_EXPRESSION`
	ImportArgumentCount  = `GROVE_IMPORT_ARGUMENT_COUNT`
	UndefinedVariable    = `GROVE_UNDEFINED_VARIABLE`
	UndefinedModule      = `GROVE_UNDEFINED_MODULE`
	ImportFailed         = `GROVE_IMPORT_FAILED`
	UndefinedType        = `GROVE_UNDEFINED_TYPE`
	UndefinedMethod      = `GROVE_UNDEFINED_METHOD`
	TypeMismatch         = `GROVE_TYPE_MISMATCH`
	ArgumentCount        = `GROVE_ARGUMENT_COUNT`
	ArgumentType         = `GROVE_ARGUMENT_TYPE`
	MethodFailed         = `GROVE_METHOD_FAILED`
)

func init() {
	issue.Hard(UnexpectedEnd, `unexpected end of input, expected %{expected}`)
	issue.Hard(UnexpectedToken, `expected '%{expected}' but found '%{actual}'`)
	issue.Hard(TrailingTokens, `expected end of command but found '%{tokens}'`)
	issue.Hard(InvalidIdentifier, `%{what} names must start with an alphabetic character or _ and contain only alphanumeric characters or _, got '%{name}'`)
	issue.Hard(InvalidStringLiteral, `invalid string literal %{token}: %{reason}`)
	issue.Hard(InvalidTypePath, `invalid type path '%{path}'`)
	issue.Hard(ReservedWord, `'%{name}' is a reserved word and cannot be used as a %{what} name`)
	issue.Hard(ExpectedExpression, `expected expression but found %{actual}`)
	issue.Hard(ImportArgumentCount, `expected one argument in import statement, found %{count}`)
	issue.Hard(UndefinedVariable, `undefined variable '%{name}'`)
	issue.Hard(UndefinedModule, `undefined module '%{name}'`)
	issue.Hard(ImportFailed, `no module named '%{name}'`)
	issue.Hard(UndefinedType, `module '%{module}' has no type '%{name}'`)
	issue.Hard(UndefinedMethod, `%{type} has no method '%{name}'`)
	issue.Hard(TypeMismatch, `unsupported operand types for %{op}: '%{left}' and '%{right}'`)
	issue.Hard(ArgumentCount, `%{method}() takes %{expected} arguments but %{actual} were given`)
	issue.Hard(ArgumentType, `%{method}() argument %{number} must be %{expected}, not %{actual}`)
	issue.Hard(MethodFailed, `%{method}(): %{message}`)
}

// Kind classifies every issue code raised by grove.
type Kind int

const (
	NoKind Kind = iota
	SyntaxErrorKind
	UndefinedVariableKind
	UndefinedModuleKind
	UndefinedMethodKind
	TypeMismatchKind
)

var kinds = map[issue.Code]Kind{
	UnexpectedEnd:        SyntaxErrorKind,
	UnexpectedToken:      SyntaxErrorKind,
	TrailingTokens:       SyntaxErrorKind,
	InvalidIdentifier:    SyntaxErrorKind,
	InvalidStringLiteral: SyntaxErrorKind,
	InvalidTypePath:      SyntaxErrorKind,
	ReservedWord:         SyntaxErrorKind,
	ExpectedExpression:   SyntaxErrorKind,
	ImportArgumentCount:  SyntaxErrorKind,
	UndefinedVariable:    UndefinedVariableKind,
	UndefinedModule:      UndefinedModuleKind,
	ImportFailed:         UndefinedModuleKind,
	UndefinedType:        UndefinedModuleKind,
	UndefinedMethod:      UndefinedMethodKind,
	TypeMismatch:         TypeMismatchKind,
	ArgumentCount:        TypeMismatchKind,
	ArgumentType:         TypeMismatchKind,
	MethodFailed:         TypeMismatchKind,
}

func (k Kind) String() string {
	switch k {
	case SyntaxErrorKind:
		return "SyntaxError"
	case UndefinedVariableKind:
		return "UndefinedVariableError"
	case UndefinedModuleKind:
		return "UndefinedModuleError"
	case UndefinedMethodKind:
		return "UndefinedMethodError"
	case TypeMismatchKind:
		return "TypeMismatchError"
	}
	return "NoError"
}

// KindOf returns the kind of a grove error, or NoKind for nil and foreign errors.
func KindOf(err error) Kind {
	var ri issue.Reported
	if errors.As(err, &ri) {
		return kinds[ri.Code()]
	}
	return NoKind
}

// Is reports whether err carries the given issue code.
func Is(err error, code issue.Code) bool {
	var ri issue.Reported
	return errors.As(err, &ri) && ri.Code() == code
}

func newError(code issue.Code, args issue.H) issue.Reported {
	return issue.NewReported(code, issue.SEVERITY_ERROR, args, nil)
}
