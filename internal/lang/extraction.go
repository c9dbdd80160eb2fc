package lang

import "strconv"

// FieldExtraction is implemented by front-end representations of field
// data structures. Each method yields the C++ expression obtaining one
// low-level property of the field, or reports that the property cannot
// be obtained from this data structure.
//
// Declining the base pointer is legal and causes the pointer not to be
// mapped. Declining a size or stride that the mapped kernel actually
// needs is a fatal generation error, raised by the mapping node.
type FieldExtraction interface {
	// ExtractPtr yields the base pointer expression.
	ExtractPtr() (*Expr, bool)

	// ExtractSize yields the size expression along one coordinate.
	ExtractSize(coord int) (*Expr, bool)

	// ExtractStride yields the stride expression along one coordinate.
	ExtractStride(coord int) (*Expr, bool)
}

// VectorExtraction is implemented by front-end representations of
// fixed-size vectors whose components can be read individually.
type VectorExtraction interface {
	// ExtractComponent yields the expression reading one component.
	ExtractComponent(coord int) (*Expr, bool)
}

// StdVectorField exposes a std::vector<T> variable as a
// one-dimensional field.
type StdVectorField struct {
	Var Var
}

// NewStdVectorField wraps a variable of type std::vector<elem>.
func NewStdVectorField(name string, elem Type) StdVectorField {
	spelling := "std::vector< " + elem.CString() + " >"
	dtype := Type{Spelling: spelling, Headers: MergeHeaders(
		[]HeaderFile{ParseHeader("<vector>")}, elem.Headers)}
	return StdVectorField{Var: Var{Name: name, DType: dtype}}
}

func (f StdVectorField) Variable() Var { return f.Var }

func (f StdVectorField) ExtractPtr() (*Expr, bool) {
	return Format("%s.data()", f.Var), true
}

func (f StdVectorField) ExtractSize(coord int) (*Expr, bool) {
	if coord != 0 {
		return nil, false
	}
	return Format("%s.size()", f.Var), true
}

func (f StdVectorField) ExtractStride(coord int) (*Expr, bool) {
	if coord != 0 {
		return nil, false
	}
	return Format("1"), true
}

// SpanField exposes a std::span<T> variable as a one-dimensional field.
type SpanField struct {
	Var Var
}

// NewSpanField wraps a variable of type std::span<elem>.
func NewSpanField(name string, elem Type) SpanField {
	spelling := "std::span< " + elem.CString() + " >"
	dtype := Type{Spelling: spelling, Headers: MergeHeaders(
		[]HeaderFile{ParseHeader("<span>")}, elem.Headers)}
	return SpanField{Var: Var{Name: name, DType: dtype}}
}

func (f SpanField) Variable() Var { return f.Var }

func (f SpanField) ExtractPtr() (*Expr, bool) {
	return Format("%s.data()", f.Var), true
}

func (f SpanField) ExtractSize(coord int) (*Expr, bool) {
	if coord != 0 {
		return nil, false
	}
	return Format("%s.size()", f.Var), true
}

func (f SpanField) ExtractStride(coord int) (*Expr, bool) {
	if coord != 0 {
		return nil, false
	}
	return Format("1"), true
}

// RawPtrField exposes a bare pointer variable as a field. Only the
// base pointer can be obtained; sizes and strides must be fixed in the
// field specification or supplied separately.
type RawPtrField struct {
	Var Var
}

// NewRawPtrField wraps a pointer variable.
func NewRawPtrField(name string, elem Type) RawPtrField {
	spelling := elem.CString() + " *"
	dtype := Type{Spelling: spelling, Headers: append([]HeaderFile{}, elem.Headers...)}
	return RawPtrField{Var: Var{Name: name, DType: dtype}}
}

func (f RawPtrField) Variable() Var { return f.Var }

func (f RawPtrField) ExtractPtr() (*Expr, bool) {
	return ExprFromVar(f.Var), true
}

func (f RawPtrField) ExtractSize(coord int) (*Expr, bool) {
	return nil, false
}

func (f RawPtrField) ExtractStride(coord int) (*Expr, bool) {
	return nil, false
}

// StdArrayVector exposes a std::array<T, N> variable as an extractable
// fixed-size vector.
type StdArrayVector struct {
	Var    Var
	Extent int
}

// NewStdArrayVector wraps a variable of type std::array<elem, extent>.
func NewStdArrayVector(name string, elem Type, extent int) StdArrayVector {
	spelling := "std::array< " + elem.CString() + ", " + strconv.Itoa(extent) + " >"
	dtype := Type{Spelling: spelling, Headers: MergeHeaders(
		[]HeaderFile{ParseHeader("<array>")}, elem.Headers)}
	return StdArrayVector{Var: Var{Name: name, DType: dtype}, Extent: extent}
}

func (v StdArrayVector) Variable() Var { return v.Var }

func (v StdArrayVector) ExtractComponent(coord int) (*Expr, bool) {
	if coord < 0 || coord >= v.Extent {
		return nil, false
	}
	return Format("%s[%s]", v.Var, strconv.Itoa(coord)), true
}
