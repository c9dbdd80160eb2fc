package source

import (
	"sfgen/internal/config"
	"sfgen/internal/errors"
	"sfgen/internal/kernel"
	"sfgen/internal/lang"
)

// Declaration is one top-level construct of the generated file pair:
// a kernel namespace, a free function, or a class.
type Declaration interface {
	declaration()
}

type kernelNamespaceDecl struct{ ns *kernel.KernelNamespace }
type functionDecl struct{ fn *Function }
type classDecl struct{ cls *Class }

// CodeDefinition is verbatim file-level text, e.g. a type alias or a
// preprocessor definition. Private definitions go to the
// implementation file only.
type CodeDefinition struct {
	Text    string
	Private bool
}

func (kernelNamespaceDecl) declaration() {}
func (functionDecl) declaration()        {}
func (classDecl) declaration()           {}
func (CodeDefinition) declaration()      {}

// Include is a file-level include directive. Private includes appear
// only in the implementation file, never in the header.
type Include struct {
	Header  lang.HeaderFile
	Private bool
}

// Context is the explicit builder value accumulating one generated
// file pair: includes, kernel namespaces, functions, and classes, in
// declaration order. It is passed by reference through composition
// and never shared between file pairs.
type Context struct {
	namespace  string
	style      *config.CodeStyle
	headerOnly bool

	includes     []Include
	declarations []Declaration
	names        map[string]bool
}

// NewContext creates an empty context. namespace may be empty for the
// global namespace.
func NewContext(namespace string, style *config.CodeStyle, headerOnly bool) *Context {
	if style == nil {
		style = config.DefaultCodeStyle()
	}
	return &Context{
		namespace:  namespace,
		style:      style,
		headerOnly: headerOnly,
		names:      make(map[string]bool),
	}
}

func (c *Context) Namespace() string        { return c.namespace }
func (c *Context) Style() *config.CodeStyle { return c.style }
func (c *Context) HeaderOnly() bool         { return c.headerOnly }

// AddInclude registers a file-level include directive.
func (c *Context) AddInclude(header string, private bool) {
	c.includes = append(c.includes, Include{Header: lang.ParseHeader(header), Private: private})
}

// Includes returns the registered include directives in order.
func (c *Context) Includes() []Include {
	return c.includes
}

// AddKernelNamespace registers a kernel namespace declaration.
func (c *Context) AddKernelNamespace(ns *kernel.KernelNamespace) error {
	if err := c.claim(ns.Name()); err != nil {
		return err
	}
	c.declarations = append(c.declarations, kernelNamespaceDecl{ns: ns})
	return nil
}

// AddFunction registers a free function declaration.
func (c *Context) AddFunction(fn *Function) error {
	if err := c.claim(fn.Name()); err != nil {
		return err
	}
	c.declarations = append(c.declarations, functionDecl{fn: fn})
	return nil
}

// AddClass registers a class declaration.
func (c *Context) AddClass(cls *Class) error {
	if err := c.claim(cls.Name()); err != nil {
		return err
	}
	c.declarations = append(c.declarations, classDecl{cls: cls})
	return nil
}

// AddDefinition registers verbatim file-level text. Definitions have
// no registrable name and may repeat.
func (c *Context) AddDefinition(text string, private bool) {
	c.declarations = append(c.declarations, CodeDefinition{Text: text, Private: private})
}

// Declarations returns the top-level constructs in registration order.
func (c *Context) Declarations() []Declaration {
	return c.declarations
}

// KernelNamespaces returns the registered kernel namespaces in order.
func (c *Context) KernelNamespaces() []*kernel.KernelNamespace {
	var nss []*kernel.KernelNamespace
	for _, d := range c.declarations {
		if kd, ok := d.(kernelNamespaceDecl); ok {
			nss = append(nss, kd.ns)
		}
	}
	return nss
}

// Functions returns the registered free functions in order.
func (c *Context) Functions() []*Function {
	var fns []*Function
	for _, d := range c.declarations {
		if fd, ok := d.(functionDecl); ok {
			fns = append(fns, fd.fn)
		}
	}
	return fns
}

// Classes returns the registered classes in order.
func (c *Context) Classes() []*Class {
	var classes []*Class
	for _, d := range c.declarations {
		if cd, ok := d.(classDecl); ok {
			classes = append(classes, cd.cls)
		}
	}
	return classes
}

// Unwrap helpers for the printer's exhaustive declaration switch.

// KernelNamespaceOf returns the namespace if d declares one.
func KernelNamespaceOf(d Declaration) (*kernel.KernelNamespace, bool) {
	kd, ok := d.(kernelNamespaceDecl)
	if !ok {
		return nil, false
	}
	return kd.ns, true
}

// FunctionOf returns the function if d declares one.
func FunctionOf(d Declaration) (*Function, bool) {
	fd, ok := d.(functionDecl)
	if !ok {
		return nil, false
	}
	return fd.fn, true
}

// ClassOf returns the class if d declares one.
func ClassOf(d Declaration) (*Class, bool) {
	cd, ok := d.(classDecl)
	if !ok {
		return nil, false
	}
	return cd.cls, true
}

func (c *Context) claim(name string) error {
	if c.names[name] {
		return errors.New(errors.ErrorDuplicateName,
			"a declaration named %q is already registered", name)
	}
	c.names[name] = true
	return nil
}
