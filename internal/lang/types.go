package lang

import "strings"

// Type models a C++ data type as used in generated interface code.
// Types are compared by their canonical spelling, so two independently
// parsed spellings of the same type are interchangeable.
type Type struct {
	// Spelling is the canonical C++ spelling without any top-level
	// const qualifier.
	Spelling string

	// Const marks top-level const qualification. Constness of pointees
	// is part of the spelling instead.
	Const bool

	// Headers are the header files that must be included wherever the
	// type is named.
	Headers []HeaderFile
}

// NewType creates a type from an already canonical spelling.
func NewType(spelling string, isConst bool, headers ...string) Type {
	t := Type{Spelling: spelling, Const: isConst}
	for _, h := range headers {
		t.Headers = append(t.Headers, ParseHeader(h))
	}
	return t
}

// CString returns the full C++ spelling, including top-level const.
func (t Type) CString() string {
	if t.Const {
		return "const " + t.Spelling
	}
	return t.Spelling
}

// Unqualified strips top-level const qualification.
func (t Type) Unqualified() Type {
	t.Const = false
	return t
}

// Same compares types by spelling and constness, ignoring headers.
func (t Type) Same(other Type) bool {
	return t.Spelling == other.Spelling && t.Const == other.Const
}

// SameUnqualified compares types ignoring top-level constness.
func (t Type) SameUnqualified(other Type) bool {
	return t.Spelling == other.Spelling
}

// IsPointer reports whether the type's outermost declarator is a pointer.
func (t Type) IsPointer() bool {
	return strings.HasSuffix(t.Spelling, "*")
}
