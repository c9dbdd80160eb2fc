// Package kernel models pre-generated computational kernels as opaque
// external entities: a qualified name, a typed parameter list, the
// headers the kernel needs, and its verbatim definition text.
package kernel

import (
	"strings"

	"sfgen/internal/config"
	"sfgen/internal/errors"
	"sfgen/internal/lang"
)

// FieldProperty ties a kernel parameter to one low-level property of a
// logical field. Properties let deferred mapping nodes recognize which
// live parameters belong to which field.
type FieldProperty interface {
	// FieldName names the logical field the property belongs to.
	FieldName() string
}

// PtrOf marks a parameter as the base pointer of a field.
type PtrOf struct {
	Field string
}

// ShapeOf marks a parameter as the extent of a field along one coordinate.
type ShapeOf struct {
	Field string
	Coord int
}

// StrideOf marks a parameter as the stride of a field along one coordinate.
type StrideOf struct {
	Field string
	Coord int
}

func (p PtrOf) FieldName() string    { return p.Field }
func (p ShapeOf) FieldName() string  { return p.Field }
func (p StrideOf) FieldName() string { return p.Field }

// Param is one kernel parameter: a canonical variable, optionally
// annotated with the field properties it realizes.
type Param struct {
	Var        lang.Var
	Properties []FieldProperty
}

// NewParam creates a plain parameter from a name and a C++ type spelling.
func NewParam(name string, spelling string, props ...FieldProperty) (Param, error) {
	v, err := lang.NewVar(name, spelling)
	if err != nil {
		return Param{}, err
	}
	return Param{Var: v, Properties: props}, nil
}

// Variable returns the parameter's canonical variable.
func (p Param) Variable() lang.Var {
	return p.Var
}

// Handle is an opaque reference to one pre-generated kernel. It is
// read-only after creation; the IR never distinguishes kernel-native
// parameters from ordinary variables.
type Handle struct {
	name       string
	namespace  string
	params     []Param
	headers    []lang.HeaderFile
	signature  string
	definition string
}

// NewHandle wraps an externally generated kernel. The signature and
// definition text come verbatim from the upstream kernel generator.
func NewHandle(name string, namespace string, params []Param,
	signature string, definition string, headers ...string) *Handle {

	h := &Handle{
		name:       name,
		namespace:  namespace,
		params:     append([]Param{}, params...),
		signature:  signature,
		definition: definition,
	}
	for _, hdr := range headers {
		h.headers = append(h.headers, lang.ParseHeader(hdr))
	}
	return h
}

// Name returns the kernel's unqualified name.
func (h *Handle) Name() string {
	return h.name
}

// Namespace returns the name of the kernel namespace owning the handle.
func (h *Handle) Namespace() string {
	return h.namespace
}

// QualifiedName returns the kernel's fully qualified C++ name.
func (h *Handle) QualifiedName() string {
	if h.namespace == "" {
		return h.name
	}
	return h.namespace + "::" + h.name
}

// Parameters returns the ordered kernel parameter list.
func (h *Handle) Parameters() []Param {
	return h.params
}

// ParameterVars returns the parameters as canonical variables, in
// declaration order.
func (h *Handle) ParameterVars() []lang.Var {
	vars := make([]lang.Var, len(h.params))
	for i, p := range h.params {
		vars[i] = p.Var
	}
	return vars
}

// Includes returns the headers the kernel definition requires, merged
// with the headers of its parameter types.
func (h *Handle) Includes() []lang.HeaderFile {
	lists := [][]lang.HeaderFile{h.headers}
	for _, p := range h.params {
		lists = append(lists, p.Var.DType.Headers)
	}
	return lang.MergeHeaders(lists...)
}

// Definition renders the kernel definition for inclusion in its
// namespace block. The opaque text is re-indented to the target style.
func (h *Handle) Definition(style *config.CodeStyle) string {
	var b strings.Builder
	b.WriteString(h.signature)
	b.WriteString(" {\n")
	b.WriteString(style.Indent(strings.TrimRight(h.definition, "\n")))
	b.WriteString("\n}")
	return b.String()
}

// Namespace groups kernels under one C++ namespace within the
// generated file. Names must be unique within the group.
type KernelNamespace struct {
	name    string
	kernels []*Handle
	byName  map[string]*Handle
}

// NewNamespace creates an empty kernel namespace.
func NewNamespace(name string) *KernelNamespace {
	return &KernelNamespace{
		name:   name,
		byName: make(map[string]*Handle),
	}
}

// Name returns the namespace's name.
func (ns *KernelNamespace) Name() string {
	return ns.name
}

// Add registers an externally generated kernel under this namespace
// and returns its handle.
func (ns *KernelNamespace) Add(name string, params []Param,
	signature string, definition string, headers ...string) (*Handle, error) {

	if _, exists := ns.byName[name]; exists {
		return nil, errors.New(errors.ErrorDuplicateName,
			"duplicate kernel %q in kernel namespace %q", name, ns.name)
	}

	h := NewHandle(name, ns.name, params, signature, definition, headers...)
	ns.kernels = append(ns.kernels, h)
	ns.byName[name] = h
	return h, nil
}

// Get looks up a kernel by unqualified name.
func (ns *KernelNamespace) Get(name string) (*Handle, bool) {
	h, ok := ns.byName[name]
	return h, ok
}

// Kernels returns the handles in registration order.
func (ns *KernelNamespace) Kernels() []*Handle {
	return ns.kernels
}
