package printer

import (
	"strings"

	"sfgen/internal/config"
	"sfgen/internal/kernel"
	"sfgen/internal/lang"
	"sfgen/internal/source"
)

// FilePrinter renders prepared source files to text. Inter-element
// separation is the printer's responsibility; no node or element ever
// carries a trailing newline of its own.
type FilePrinter struct {
	style *config.CodeStyle
}

// NewFilePrinter creates a printer for one code style.
func NewFilePrinter(style *config.CodeStyle) *FilePrinter {
	if style == nil {
		style = config.DefaultCodeStyle()
	}
	return &FilePrinter{style: style}
}

// Print renders one output artifact.
func (p *FilePrinter) Print(f *SourceFile) string {
	var b strings.Builder

	if f.Kind == HeaderFile {
		b.WriteString("#pragma once\n")
	} else {
		b.WriteString("#include \"" + f.OwnHeader + "\"\n")
	}

	if len(f.Includes) > 0 {
		b.WriteString("\n")
		for _, h := range f.Includes {
			b.WriteString(includeDirective(h))
			b.WriteString("\n")
		}
	}

	var elems []string
	for _, e := range f.Elements {
		elems = append(elems, p.element(e))
	}
	body := strings.Join(elems, "\n\n")

	if body != "" {
		b.WriteString("\n")
		if f.Namespace != "" {
			b.WriteString("namespace " + f.Namespace + " {\n\n")
			b.WriteString(body)
			b.WriteString("\n\n} // namespace " + f.Namespace + "\n")
		} else {
			b.WriteString(body)
			b.WriteString("\n")
		}
	}

	return b.String()
}

func includeDirective(h lang.HeaderFile) string {
	if h.System {
		return "#include <" + h.Path + ">"
	}
	return "#include \"" + h.Path + "\""
}

func (p *FilePrinter) element(e Element) string {
	switch e := e.(type) {
	case kernelNamespaceElem:
		return p.kernelNamespace(e.ns)
	case functionElem:
		return p.function(e)
	case classElem:
		return p.class(e)
	case methodDefElem:
		return p.methodDefinition(e.m)
	case definitionElem:
		return strings.TrimRight(e.def.Text, "\n")
	default:
		return ""
	}
}

func (p *FilePrinter) kernelNamespace(ns *kernel.KernelNamespace) string {
	var defs []string
	for _, h := range ns.Kernels() {
		defs = append(defs, h.Definition(p.style))
	}
	var b strings.Builder
	b.WriteString("namespace " + ns.Name() + " {\n\n")
	b.WriteString(strings.Join(defs, "\n\n"))
	b.WriteString("\n\n} // namespace " + ns.Name())
	return b.String()
}

func (p *FilePrinter) function(e functionElem) string {
	fn := e.fn

	var sig strings.Builder
	if fn.Constexpr() {
		sig.WriteString("constexpr ")
	} else if fn.Inline() {
		sig.WriteString("inline ")
	}
	sig.WriteString(fn.ReturnType().CString())
	sig.WriteString(" ")
	sig.WriteString(fn.Name())
	sig.WriteString("(")
	sig.WriteString(paramList(fn.Parameters()))
	sig.WriteString(")")

	if !e.define {
		return sig.String() + ";"
	}
	return sig.String() + " " + p.bodyBraces(fn.Body().Code(p.style))
}

func (p *FilePrinter) class(e classElem) string {
	cls := e.cls

	var b strings.Builder
	b.WriteString(cls.Keyword())
	b.WriteString(" ")
	b.WriteString(cls.Name())
	if bases := cls.Bases(); len(bases) > 0 {
		b.WriteString(" : ")
		b.WriteString(strings.Join(bases, ", "))
	}
	b.WriteString(" {\n")

	first := true
	for _, block := range cls.Blocks() {
		members := block.Members()
		if len(members) == 0 {
			continue
		}
		if !first {
			b.WriteString("\n")
		}
		first = false

		if v := block.Visibility(); v != source.VisDefault {
			b.WriteString(string(v) + ":\n")
		}

		var rendered []string
		for _, m := range members {
			rendered = append(rendered, p.member(cls, m, e.inlineMethods))
		}
		b.WriteString(p.style.Indent(strings.Join(rendered, "\n")))
		b.WriteString("\n")
	}

	b.WriteString("};")
	return b.String()
}

func (p *FilePrinter) member(cls *source.Class, m source.ClassMember, inlineMethods bool) string {
	switch m := m.(type) {
	case source.MemberVariable:
		return m.Var.Declaration() + ";"

	case *source.Constructor:
		return p.constructor(cls, m)

	case *source.Method:
		sig := p.methodSignature(m, false)
		if inlineMethods || m.Spec().Inline {
			return sig + " " + p.bodyBraces(m.Body().Code(p.style))
		}
		return sig + ";"

	case source.InClassDefinition:
		return m.Text

	default:
		return ""
	}
}

func (p *FilePrinter) constructor(cls *source.Class, c *source.Constructor) string {
	var b strings.Builder
	b.WriteString(cls.Name())
	b.WriteString("(")
	b.WriteString(paramList(c.Params))
	b.WriteString(")")

	if len(c.Inits) > 0 {
		var inits []string
		for _, init := range c.Inits {
			inits = append(inits, init.Member+"("+init.Args+")")
		}
		b.WriteString("\n")
		b.WriteString(p.style.Indent(": " + strings.Join(inits, ", ")))
		b.WriteString("\n")
	} else {
		b.WriteString(" ")
	}

	b.WriteString(p.bodyBraces(strings.TrimRight(c.Body, "\n")))
	return b.String()
}

// methodSignature renders a method declaration. qualified selects the
// out-of-line form, which drops the specifiers that are only legal
// inside the class body.
func (p *FilePrinter) methodSignature(m *source.Method, qualified bool) string {
	spec := m.Spec()

	var b strings.Builder
	if !qualified {
		if spec.Static {
			b.WriteString("static ")
		}
		if spec.Virtual {
			b.WriteString("virtual ")
		}
	}
	b.WriteString(m.ReturnType().CString())
	b.WriteString(" ")
	if qualified {
		b.WriteString(m.Class().Name() + "::")
	}
	b.WriteString(m.Name())
	b.WriteString("(")
	b.WriteString(paramList(m.Parameters()))
	b.WriteString(")")
	if spec.Const {
		b.WriteString(" const")
	}
	if !qualified && spec.Override {
		b.WriteString(" override")
	}
	return b.String()
}

func (p *FilePrinter) methodDefinition(m *source.Method) string {
	return p.methodSignature(m, true) + " " + p.bodyBraces(m.Body().Code(p.style))
}

func (p *FilePrinter) bodyBraces(body string) string {
	if body == "" {
		return "{ }"
	}
	return "{\n" + p.style.Indent(body) + "\n}"
}

func paramList(params []lang.Var) string {
	decls := make([]string, len(params))
	for i, v := range params {
		decls[i] = v.Declaration()
	}
	return strings.Join(decls, ", ")
}
