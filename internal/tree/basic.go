package tree

import (
	"strings"

	"sfgen/internal/config"
	"sfgen/internal/lang"
)

// Statements is a leaf holding a literal code fragment, annotated with
// the variables it defines and the variables it requires.
type Statements struct {
	text     string
	defines  []lang.Var
	depends  []lang.Var
	includes []lang.HeaderFile
}

// NewStatements creates a statement leaf from literal code. The text
// is taken as-is; trailing newlines are stripped.
func NewStatements(code string, defines []lang.Var, depends []lang.Var,
	includes ...lang.HeaderFile) *Statements {

	return &Statements{
		text:     strings.TrimRight(code, "\n"),
		defines:  defines,
		depends:  depends,
		includes: includes,
	}
}

// StatementFromExpr wraps a bound expression as a single statement,
// inheriting its dependencies and includes.
func StatementFromExpr(expr *lang.Expr) *Statements {
	return &Statements{
		text:     expr.Code() + ";",
		depends:  expr.Depends(),
		includes: expr.Includes(),
	}
}

func (s *Statements) Children() []Node       { return nil }
func (s *Statements) SetChild(i int, c Node) { panic("statement leaf has no children") }
func (s *Statements) Depends() []lang.Var    { return s.depends }
func (s *Statements) Defines() []lang.Var    { return s.defines }

func (s *Statements) Code(style *config.CodeStyle) string {
	return s.text
}

func (s *Statements) RequiredIncludes() []lang.HeaderFile {
	return s.includes
}

// FunctionParams is an empty leaf forcing variables into the enclosing
// entity's parameter list regardless of whether any statement uses them.
type FunctionParams struct {
	params []lang.Var
}

// NewFunctionParams creates a forced-parameter leaf.
func NewFunctionParams(params ...lang.Var) *FunctionParams {
	return &FunctionParams{params: params}
}

func (f *FunctionParams) Children() []Node       { return nil }
func (f *FunctionParams) SetChild(i int, c Node) { panic("parameter leaf has no children") }
func (f *FunctionParams) Depends() []lang.Var    { return f.params }

func (f *FunctionParams) Code(style *config.CodeStyle) string {
	return ""
}

func (f *FunctionParams) RequiredIncludes() []lang.HeaderFile {
	var incs []lang.HeaderFile
	for _, p := range f.params {
		incs = append(incs, p.DType.Headers...)
	}
	return lang.MergeHeaders(incs)
}

// RequireIncludes is an empty leaf forcing headers into the generated
// file's include list.
type RequireIncludes struct {
	includes []lang.HeaderFile
}

// NewRequireIncludes creates a forced-include leaf from header spellings.
func NewRequireIncludes(headers ...string) *RequireIncludes {
	r := &RequireIncludes{}
	for _, h := range headers {
		r.includes = append(r.includes, lang.ParseHeader(h))
	}
	return r
}

func (r *RequireIncludes) Children() []Node       { return nil }
func (r *RequireIncludes) SetChild(i int, c Node) { panic("include leaf has no children") }
func (r *RequireIncludes) Depends() []lang.Var    { return nil }

func (r *RequireIncludes) Code(style *config.CodeStyle) string {
	return ""
}

func (r *RequireIncludes) RequiredIncludes() []lang.HeaderFile {
	return r.includes
}

// Sequence is an ordered list of children rendered one after another.
// It is the only construct through which define/use visibility
// propagates from one child to the next.
type Sequence struct {
	children []Node
}

// NewSequence creates a sequence over the given children.
func NewSequence(children ...Node) *Sequence {
	return &Sequence{children: children}
}

func (s *Sequence) Children() []Node { return s.children }

func (s *Sequence) SetChild(i int, c Node) {
	s.children[i] = c
}

// ReplaceChildren rebuilds the child list. Only the flattening pass
// may change a sequence's arity.
func (s *Sequence) ReplaceChildren(children []Node) {
	s.children = children
}

// Append adds children during tree construction.
func (s *Sequence) Append(children ...Node) {
	s.children = append(s.children, children...)
}

func (s *Sequence) Code(style *config.CodeStyle) string {
	var parts []string
	for _, c := range s.children {
		if code := c.Code(style); code != "" {
			parts = append(parts, code)
		}
	}
	return strings.Join(parts, "\n")
}

func (s *Sequence) RequiredIncludes() []lang.HeaderFile {
	return nil
}

// Block is a sequence wrapped in a lexical scope delimiter.
type Block struct {
	body *Sequence
}

// NewBlock creates a braced block around a sequence.
func NewBlock(body *Sequence) *Block {
	return &Block{body: body}
}

func (b *Block) Children() []Node { return []Node{b.body} }

func (b *Block) SetChild(i int, c Node) {
	if i != 0 {
		panic("block has exactly one child")
	}
	b.body = c.(*Sequence)
}

// Body returns the block's inner sequence.
func (b *Block) Body() *Sequence {
	return b.body
}

func (b *Block) Code(style *config.CodeStyle) string {
	inner := b.body.Code(style)
	if inner == "" {
		return "{ }"
	}
	return "{\n" + style.Indent(inner) + "\n}"
}

func (b *Block) RequiredIncludes() []lang.HeaderFile {
	return nil
}
