// Package source defines the registrable units of generated output:
// functions, methods, classes with visibility blocks, and the context
// object collecting them in declaration order.
package source

import (
	"sfgen/internal/errors"
	"sfgen/internal/lang"
	"sfgen/internal/postprocess"
	"sfgen/internal/tree"
)

// FunctionSpec carries the declarative attributes of a free function.
type FunctionSpec struct {
	Name       string
	ReturnType lang.Type
	Inline     bool
	Constexpr  bool
}

// Function is a generated free function. Its required parameter set is
// computed exactly once, at construction, by the postprocessing pass;
// the body tree is resolved in place at the same time.
type Function struct {
	spec     FunctionSpec
	body     *tree.Sequence
	params   []lang.Var
	warnings []errors.GenError
}

// NewFunction creates a function around a call-tree body. The body is
// postprocessed here: sequences are flattened, deferred nodes expanded,
// and the parameter list derived and frozen.
func NewFunction(spec FunctionSpec, body *tree.Sequence) (*Function, error) {
	result, err := postprocess.Postprocess(body)
	if err != nil {
		return nil, err
	}
	return &Function{
		spec:     spec,
		body:     body,
		params:   result.Params,
		warnings: result.Warnings,
	}, nil
}

func (f *Function) Name() string                { return f.spec.Name }
func (f *Function) ReturnType() lang.Type       { return f.spec.ReturnType }
func (f *Function) Inline() bool                { return f.spec.Inline }
func (f *Function) Constexpr() bool             { return f.spec.Constexpr }
func (f *Function) Body() *tree.Sequence        { return f.body }
func (f *Function) Warnings() []errors.GenError { return f.warnings }

// Parameters returns the derived parameter set, sorted by name.
func (f *Function) Parameters() []lang.Var {
	return f.params
}

// MethodSpec carries the declarative attributes of a class method.
type MethodSpec struct {
	Name       string
	ReturnType lang.Type
	Inline     bool
	Const      bool
	Static     bool
	Virtual    bool
	Override   bool
}

// Method is a function bound to an enclosing class. Binding is
// one-time; the parameter set is computed at bind time, since only
// then is it known which member variables are implicitly reachable
// through `this`.
type Method struct {
	spec     MethodSpec
	body     *tree.Sequence
	class    *Class
	params   []lang.Var
	warnings []errors.GenError
}

// NewMethod creates an unbound method. It becomes usable once added to
// a class visibility block.
func NewMethod(spec MethodSpec, body *tree.Sequence) *Method {
	return &Method{spec: spec, body: body}
}

func (m *Method) Name() string                { return m.spec.Name }
func (m *Method) ReturnType() lang.Type       { return m.spec.ReturnType }
func (m *Method) Spec() MethodSpec            { return m.spec }
func (m *Method) Body() *tree.Sequence        { return m.body }
func (m *Method) Warnings() []errors.GenError { return m.warnings }

// Class returns the owning class; nil before binding.
func (m *Method) Class() *Class {
	return m.class
}

// Parameters returns the derived parameter set; empty before binding.
func (m *Method) Parameters() []lang.Var {
	return m.params
}

func (m *Method) bind(c *Class) error {
	if m.class != nil {
		return errors.New(errors.ErrorMemberRebound,
			"method %q is already bound to class %q", m.spec.Name, m.class.Name())
	}

	visible := c.MemberVars()
	if m.spec.Static {
		// Static methods reach no members through this.
		visible = nil
	}

	result, err := postprocess.PostprocessWithVisible(m.body, visible)
	if err != nil {
		return err
	}

	m.class = c
	m.params = result.Params
	m.warnings = result.Warnings
	return nil
}
