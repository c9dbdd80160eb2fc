package tree

import (
	"fmt"

	"sfgen/internal/config"
	"sfgen/internal/errors"
	"sfgen/internal/kernel"
	"sfgen/internal/lang"
)

// deferredNode provides the panicking Node surface shared by all
// deferred variants. A deferred node has no printable form; any
// attempt to traverse or render it before expansion is a programming
// error in the postprocessing order.
type deferredNode struct{}

func (deferredNode) Children() []Node {
	errors.Panic(errors.ErrorDeferredAccess,
		"children of a deferred node were accessed before expansion")
	return nil
}

func (deferredNode) SetChild(i int, c Node) {
	errors.Panic(errors.ErrorDeferredAccess,
		"children of a deferred node were accessed before expansion")
}

func (deferredNode) Code(style *config.CodeStyle) string {
	errors.Panic(errors.ErrorDeferredAccess,
		"code of a deferred node was requested before expansion")
	return ""
}

func (deferredNode) RequiredIncludes() []lang.HeaderFile {
	return nil
}

// DeferredParamSetter emits an initialization statement for one
// variable, but only if that variable is still required downstream of
// its position. If the variable is not live, nothing is emitted.
type DeferredParamSetter struct {
	deferredNode
	v   lang.Var
	rhs *lang.Expr
}

// NewDeferredParamSetter creates a conditional setter for v.
func NewDeferredParamSetter(v lang.Var, rhs *lang.Expr) *DeferredParamSetter {
	return &DeferredParamSetter{v: v, rhs: rhs}
}

func (d *DeferredParamSetter) Expand(ctx ExpansionContext) (Node, error) {
	live, ok := ctx.LiveVariable(d.v.Name)
	if !ok {
		return NewSequence(), nil
	}
	// The definition takes its type from the live requirement, which
	// may differ from the declared variable in const qualification.
	code := fmt.Sprintf("%s = %s;", live.Declaration(), d.rhs.Code())
	stmt := NewStatements(code, []lang.Var{live}, d.rhs.Depends(), d.rhs.Includes()...)
	return NewSequence(stmt), nil
}

// FieldExtent is one shape or stride slot of a field description:
// either a symbol that kernels may take as a parameter, or a fixed
// compile-time constant literal.
type FieldExtent struct {
	Sym   *lang.Var
	Fixed string
}

// ExtentVar makes a symbolic extent slot.
func ExtentVar(v lang.Var) FieldExtent {
	return FieldExtent{Sym: &v}
}

// ExtentFixed makes a compile-time constant extent slot.
func ExtentFixed(literal string) FieldExtent {
	return FieldExtent{Fixed: literal}
}

// FieldSpec is the logical description of a field: its base pointer
// variable and per-coordinate shape and stride slots.
type FieldSpec struct {
	Name    string
	Ptr     lang.Var
	Shape   []FieldExtent
	Strides []FieldExtent
}

// NewFieldSpec builds a field description. A trailing index extent
// fixed to 1 is dropped together with its stride, matching the scalar
// field layout where the index dimension carries no parameters.
func NewFieldSpec(name string, ptr lang.Var, shape []FieldExtent, strides []FieldExtent) FieldSpec {
	if n := len(shape); n > 0 && shape[n-1].Fixed == "1" && len(strides) == n {
		shape = shape[:n-1]
		strides = strides[:n-1]
	}
	return FieldSpec{Name: name, Ptr: ptr, Shape: shape, Strides: strides}
}

// FieldSpecFromKernel derives a field description from a kernel's
// parameter properties: the parameters marked as the field's base
// pointer, shape, and stride become the spec's symbols. Coordinates
// the kernel takes no parameter for are left as empty slots, which a
// mapping node skips on expansion.
func FieldSpecFromKernel(field string, h *kernel.Handle) (FieldSpec, error) {
	var ptr *lang.Var
	shape := make(map[int]lang.Var)
	strides := make(map[int]lang.Var)
	rank := 0

	note := func(coord int) {
		if coord+1 > rank {
			rank = coord + 1
		}
	}

	for _, p := range h.Parameters() {
		for _, prop := range p.Properties {
			if prop.FieldName() != field {
				continue
			}
			switch prop := prop.(type) {
			case kernel.PtrOf:
				v := p.Var
				ptr = &v
			case kernel.ShapeOf:
				shape[prop.Coord] = p.Var
				note(prop.Coord)
			case kernel.StrideOf:
				strides[prop.Coord] = p.Var
				note(prop.Coord)
			}
		}
	}

	if ptr == nil {
		return FieldSpec{}, errors.New(errors.ErrorExtractionUnavailable,
			"kernel %q takes no base pointer parameter for field %q", h.QualifiedName(), field)
	}
	if !ptr.DType.IsPointer() {
		return FieldSpec{}, errors.New(errors.ErrorExtractionUnavailable,
			"parameter %s is marked as the base pointer of field %q but has a non-pointer type",
			ptr.NameAndType(), field)
	}

	shapeSlots := make([]FieldExtent, rank)
	strideSlots := make([]FieldExtent, rank)
	for coord := 0; coord < rank; coord++ {
		if v, ok := shape[coord]; ok {
			shapeSlots[coord] = ExtentVar(v)
		}
		if v, ok := strides[coord]; ok {
			strideSlots[coord] = ExtentVar(v)
		}
	}

	return NewFieldSpec(field, *ptr, shapeSlots, strideSlots), nil
}

// DeferredFieldMapping maps a high-level data structure onto a field's
// low-level parameters. On expansion it scans the live set for the
// field's base pointer, shape, and stride variables, and emits an
// extraction statement for each one that is actually required.
type DeferredFieldMapping struct {
	deferredNode
	spec         FieldSpec
	extraction   lang.FieldExtraction
	castIndexing bool
}

// NewDeferredFieldMapping creates a field mapping node. When
// castIndexing is set, extracted shape and stride expressions are
// wrapped in an explicit conversion to the symbol's type.
func NewDeferredFieldMapping(spec FieldSpec, extraction lang.FieldExtraction,
	castIndexing bool) *DeferredFieldMapping {

	return &DeferredFieldMapping{spec: spec, extraction: extraction, castIndexing: castIndexing}
}

func (d *DeferredFieldMapping) Expand(ctx ExpansionContext) (Node, error) {
	seq := NewSequence()
	done := make(map[string]bool)

	// Base pointer: the extraction may decline, in which case the
	// pointer is simply not mapped here.
	if _, live := ctx.LiveVariable(d.spec.Ptr.Name); live && !done[d.spec.Ptr.Name] {
		if expr, ok := d.extraction.ExtractPtr(); ok {
			seq.Append(d.initStatement(d.spec.Ptr, expr, false))
			done[d.spec.Ptr.Name] = true
		}
	}

	extract := func(slots []FieldExtent, what string,
		obtain func(coord int) (*lang.Expr, bool)) error {

		for coord, slot := range slots {
			switch {
			case slot.Sym != nil:
				sym := *slot.Sym
				if _, live := ctx.LiveVariable(sym.Name); !live || done[sym.Name] {
					continue
				}
				expr, ok := obtain(coord)
				if !ok {
					return errors.New(errors.ErrorExtractionUnavailable,
						"cannot extract %s in dimension %d of field %q, but parameter %s requires it",
						what, coord, d.spec.Name, sym.NameAndType())
				}
				seq.Append(d.initStatement(sym, expr, d.castIndexing))
				done[sym.Name] = true
			case slot.Fixed != "":
				// Fixed extents take no parameter; when an expression
				// is obtainable, leave a verification comment.
				if expr, ok := obtain(coord); ok {
					comment := fmt.Sprintf("/* %s == %s */", expr.Code(), slot.Fixed)
					seq.Append(NewStatements(comment, nil, expr.Depends(), expr.Includes()...))
				}
			}
		}
		return nil
	}

	if err := extract(d.spec.Shape, "size", d.extraction.ExtractSize); err != nil {
		return nil, err
	}
	if err := extract(d.spec.Strides, "stride", d.extraction.ExtractStride); err != nil {
		return nil, err
	}

	return seq, nil
}

func (d *DeferredFieldMapping) initStatement(v lang.Var, expr *lang.Expr, cast bool) *Statements {
	rhs := expr.Code()
	if cast {
		rhs = fmt.Sprintf("%s( %s )", v.DType.Unqualified().CString(), rhs)
	}
	code := fmt.Sprintf("%s { %s };", v.Declaration(), rhs)
	return NewStatements(code, []lang.Var{v}, expr.Depends(), expr.Includes()...)
}

// DeferredVectorMapping maps a fixed-size vector-like structure onto
// its component variables, matching live variables by name against the
// declared component symbols.
type DeferredVectorMapping struct {
	deferredNode
	name       string
	components []lang.Var
	extraction lang.VectorExtraction
}

// NewDeferredVectorMapping creates a vector mapping node. components
// lists the symbols in coordinate order.
func NewDeferredVectorMapping(name string, components []lang.Var,
	extraction lang.VectorExtraction) *DeferredVectorMapping {

	return &DeferredVectorMapping{name: name, components: components, extraction: extraction}
}

func (d *DeferredVectorMapping) Expand(ctx ExpansionContext) (Node, error) {
	seq := NewSequence()
	for coord, sym := range d.components {
		if _, live := ctx.LiveVariable(sym.Name); !live {
			continue
		}
		expr, ok := d.extraction.ExtractComponent(coord)
		if !ok {
			return nil, errors.New(errors.ErrorExtractionUnavailable,
				"cannot extract component %d of vector %q, but parameter %s requires it",
				coord, d.name, sym.NameAndType())
		}
		code := fmt.Sprintf("%s { %s };", sym.Declaration(), expr.Code())
		seq.Append(NewStatements(code, []lang.Var{sym}, expr.Depends(), expr.Includes()...))
	}
	return seq, nil
}
