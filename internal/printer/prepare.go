// Package printer renders a fully resolved context into its file
// artifacts: a header and, unless header-only emission is selected, an
// implementation file.
package printer

import (
	"sfgen/internal/kernel"
	"sfgen/internal/lang"
	"sfgen/internal/source"
)

// FileKind distinguishes the two output artifacts.
type FileKind int

const (
	HeaderFile FileKind = iota
	ImplFile
)

// Element is one top-level construct of an output file, emitted in
// order inside the file's namespace block.
type Element interface {
	element()
}

type kernelNamespaceElem struct{ ns *kernel.KernelNamespace }

// functionElem prints a free function: a prototype, or a full
// definition when inline.
type functionElem struct {
	fn     *source.Function
	define bool
}

// classElem prints a class body. When inlineMethods is set, method
// bodies are printed in-class instead of out-of-line.
type classElem struct {
	cls           *source.Class
	inlineMethods bool
}

// methodDefElem prints one out-of-line, class-qualified method body.
type methodDefElem struct{ m *source.Method }

// definitionElem prints verbatim file-level text.
type definitionElem struct{ def source.CodeDefinition }

func (kernelNamespaceElem) element() {}
func (functionElem) element()        {}
func (classElem) element()           {}
func (methodDefElem) element()       {}
func (definitionElem) element()      {}

// SourceFile is the prepared description of one output artifact.
type SourceFile struct {
	Name      string
	Kind      FileKind
	Includes  []lang.HeaderFile
	OwnHeader string // impl only: the header it implements
	Namespace string
	Elements  []Element
}

// Prepare lays the context's declarations out over the file pair. The
// header receives includes, signatures, and class bodies; the
// implementation file receives kernel definitions and out-of-line
// bodies. In header-only mode everything lands in the header and the
// returned implementation file is nil.
func Prepare(ctx *source.Context, stem string) (*SourceFile, *SourceFile) {
	headerOnly := ctx.HeaderOnly()

	header := &SourceFile{
		Name:      stem + ".hpp",
		Kind:      HeaderFile,
		Namespace: ctx.Namespace(),
	}
	var impl *SourceFile
	if !headerOnly {
		impl = &SourceFile{
			Name:      stem + ".cpp",
			Kind:      ImplFile,
			OwnHeader: stem + ".hpp",
			Namespace: ctx.Namespace(),
		}
	}

	var headerIncs, implIncs []lang.HeaderFile
	for _, inc := range ctx.Includes() {
		if inc.Private && !headerOnly {
			implIncs = append(implIncs, inc.Header)
		} else {
			headerIncs = append(headerIncs, inc.Header)
		}
	}

	// bodyFile is where generated code bodies land.
	bodyFile := impl
	if headerOnly {
		bodyFile = header
	}

	for _, decl := range ctx.Declarations() {
		if def, ok := decl.(source.CodeDefinition); ok {
			if def.Private && !headerOnly {
				impl.Elements = append(impl.Elements, definitionElem{def: def})
			} else {
				header.Elements = append(header.Elements, definitionElem{def: def})
			}
			continue
		}

		if ns, ok := source.KernelNamespaceOf(decl); ok {
			// Kernel definitions are opaque text and land where the
			// generated bodies do.
			bodyFile.Elements = append(bodyFile.Elements, kernelNamespaceElem{ns: ns})
			for _, h := range ns.Kernels() {
				appendIncludes(&headerIncs, &implIncs, headerOnly, h.Includes(), true)
			}
			continue
		}

		if fn, ok := source.FunctionOf(decl); ok {
			inline := fn.Inline() || fn.Constexpr() || headerOnly

			header.Elements = append(header.Elements, functionElem{fn: fn, define: inline})
			headerIncs = append(headerIncs, signatureIncludes(fn.ReturnType(), fn.Parameters())...)
			appendIncludes(&headerIncs, &implIncs, headerOnly, treeIncludes(fn.Body()), !inline)

			if !inline {
				impl.Elements = append(impl.Elements, functionElem{fn: fn, define: true})
			}
			continue
		}

		if cls, ok := source.ClassOf(decl); ok {
			header.Elements = append(header.Elements, classElem{cls: cls, inlineMethods: headerOnly})

			for _, b := range cls.Blocks() {
				for _, m := range b.Members() {
					switch m := m.(type) {
					case source.MemberVariable:
						headerIncs = append(headerIncs, m.Var.DType.Headers...)
					case *source.Constructor:
						for _, p := range m.Params {
							headerIncs = append(headerIncs, p.DType.Headers...)
						}
					}
				}
			}
			for _, m := range cls.Methods() {
				inline := m.Spec().Inline || headerOnly

				headerIncs = append(headerIncs, signatureIncludes(m.ReturnType(), m.Parameters())...)
				appendIncludes(&headerIncs, &implIncs, headerOnly, treeIncludes(m.Body()), !inline)
				if !inline {
					impl.Elements = append(impl.Elements, methodDefElem{m: m})
				}
			}
		}
	}

	header.Includes = lang.MergeHeaders(headerIncs)
	if impl != nil {
		impl.Includes = lang.MergeHeaders(implIncs)
	}
	return header, impl
}

func appendIncludes(headerIncs, implIncs *[]lang.HeaderFile, headerOnly bool,
	incs []lang.HeaderFile, toImpl bool) {

	if toImpl && !headerOnly {
		*implIncs = append(*implIncs, incs...)
	} else {
		*headerIncs = append(*headerIncs, incs...)
	}
}
