package lang

import "sort"

// Var is a variable in generated code: a name and a data type.
// Two Vars are the same variable exactly when both name and type match.
type Var struct {
	Name  string
	DType Type
}

// NewVar creates a variable with a type parsed from a C++ spelling.
func NewVar(name string, spelling string, headers ...string) (Var, error) {
	t, err := ParseType(spelling, headers...)
	if err != nil {
		return Var{}, err
	}
	return Var{Name: name, DType: t}, nil
}

// MustVar is NewVar for spellings known to be valid.
func MustVar(name string, spelling string, headers ...string) Var {
	return Var{Name: name, DType: MustParseType(spelling, headers...)}
}

// NameAndType renders the variable as "name: type" for diagnostics.
func (v Var) NameAndType() string {
	return v.Name + ": " + v.DType.CString()
}

// Same reports whether both name and type match exactly.
func (v Var) Same(other Var) bool {
	return v.Name == other.Name && v.DType.Same(other.DType)
}

// Declaration renders the variable as a C++ parameter declaration.
func (v Var) Declaration() string {
	return v.DType.CString() + " " + v.Name
}

// Variable lets Var satisfy the VarLike interface trivially.
func (v Var) Variable() Var {
	return v
}

// SortVars orders variables by name for deterministic emission.
func SortVars(vars []Var) {
	sort.Slice(vars, func(i, j int) bool {
		return vars[i].Name < vars[j].Name
	})
}

// VarLike is anything that can stand in for a variable, such as kernel
// parameters or class member references.
type VarLike interface {
	Variable() Var
}
