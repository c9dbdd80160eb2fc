package lang

import (
	"fmt"

	"sfgen/internal/errors"
)

// Expr is a composable C++ expression. An expression is created either
// bound (with syntax) or unbound (a typed slot to be filled later);
// syntax may be bound exactly once. Reading code or dependencies from
// an unbound expression is a programming error in the composition
// layer and panics.
type Expr struct {
	dtype    *Type
	code     string
	bound    bool
	deps     []Var
	includes []HeaderFile
}

// NewExpr creates an unbound, untyped expression.
func NewExpr() *Expr {
	return &Expr{}
}

// NewTypedExpr creates an unbound expression carrying a data type.
func NewTypedExpr(dtype Type) *Expr {
	return &Expr{dtype: &dtype}
}

// Format creates a bound expression from a printf-style format string.
// Arguments may be variables, other bound expressions, types, strings,
// or integers; variable and expression dependencies are collected.
func Format(format string, args ...any) *Expr {
	e := NewExpr()
	return e.Bind(format, args...)
}

// FormatTyped is Format with an explicit result type.
func FormatTyped(dtype Type, format string, args ...any) *Expr {
	e := NewTypedExpr(dtype)
	return e.Bind(format, args...)
}

// ExprFromVar wraps a variable as a bound expression consisting of
// its name.
func ExprFromVar(v Var) *Expr {
	dtype := v.DType
	return &Expr{
		dtype:    &dtype,
		code:     v.Name,
		bound:    true,
		deps:     []Var{v},
		includes: append([]HeaderFile{}, v.DType.Headers...),
	}
}

// Bind attaches syntax to an unbound expression. Binding twice panics.
func (e *Expr) Bind(format string, args ...any) *Expr {
	if e.bound {
		errors.Panic(errors.ErrorExpressionRebound,
			"cannot rebind expression: syntax %q is already bound", e.code)
	}

	converted := make([]any, len(args))
	for i, arg := range args {
		converted[i] = e.absorb(arg)
	}

	e.code = fmt.Sprintf(format, converted...)
	e.bound = true
	return e
}

// absorb converts one composition argument to its printable form and
// records its dependencies and includes.
func (e *Expr) absorb(arg any) any {
	switch a := arg.(type) {
	case Var:
		e.deps = append(e.deps, a)
		e.includes = append(e.includes, a.DType.Headers...)
		return a.Name
	case *Expr:
		code := a.Code()
		e.deps = append(e.deps, a.Depends()...)
		e.includes = append(e.includes, a.includes...)
		return code
	case VarLike:
		v := a.Variable()
		e.deps = append(e.deps, v)
		e.includes = append(e.includes, v.DType.Headers...)
		return v.Name
	case Type:
		e.includes = append(e.includes, a.Headers...)
		return a.CString()
	case string:
		return a
	case int, int32, int64, uint, uint32, uint64:
		return a
	default:
		errors.Panic(errors.ErrorUntypedComposition,
			"cannot compose expression from value of type %T", arg)
		return nil
	}
}

// Code returns the bound C++ syntax. Panics on unbound expressions.
func (e *Expr) Code() string {
	if !e.bound {
		errors.Panic(errors.ErrorUnboundExpression,
			"expression%s was read before syntax was bound to it", e.typeHint())
	}
	return e.code
}

// IsBound reports whether syntax has been attached.
func (e *Expr) IsBound() bool {
	return e.bound
}

// Depends returns the variables the expression's syntax references.
// Panics on unbound expressions.
func (e *Expr) Depends() []Var {
	if !e.bound {
		errors.Panic(errors.ErrorUnboundExpression,
			"dependencies of expression%s were read before syntax was bound to it", e.typeHint())
	}
	return e.deps
}

// Includes returns the headers required by the expression's syntax.
// Panics on unbound expressions.
func (e *Expr) Includes() []HeaderFile {
	if !e.bound {
		errors.Panic(errors.ErrorUnboundExpression,
			"includes of expression%s were read before syntax was bound to it", e.typeHint())
	}
	return MergeHeaders(e.includes)
}

// DType returns the expression's data type, if it carries one.
func (e *Expr) DType() (Type, bool) {
	if e.dtype == nil {
		return Type{}, false
	}
	return *e.dtype, true
}

func (e *Expr) typeHint() string {
	if e.dtype != nil {
		return fmt.Sprintf(" of type %s", e.dtype.CString())
	}
	return ""
}

// AsVariable canonicalizes a value into a Var. It accepts variables,
// variable-like objects, and bound typed expressions whose syntax is a
// plain identifier.
func AsVariable(obj any) (Var, error) {
	switch o := obj.(type) {
	case Var:
		return o, nil
	case *Var:
		return *o, nil
	case VarLike:
		return o.Variable(), nil
	case *Expr:
		if !o.bound {
			return Var{}, errors.New(errors.ErrorUnboundExpression,
				"cannot interpret unbound expression as a variable")
		}
		dtype, ok := o.DType()
		if !ok {
			return Var{}, errors.New(errors.ErrorUntypedComposition,
				"cannot interpret untyped expression %q as a variable", o.code)
		}
		if !isIdentifier(o.code) {
			return Var{}, errors.New(errors.ErrorUntypedComposition,
				"expression %q is not a plain identifier", o.code)
		}
		return Var{Name: o.code, DType: dtype}, nil
	default:
		return Var{}, errors.New(errors.ErrorUntypedComposition,
			"cannot interpret value of type %T as a variable", obj)
	}
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
