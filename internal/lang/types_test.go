package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTypeBasic(t *testing.T) {
	typ, err := ParseType("double")
	require.NoError(t, err)
	assert.Equal(t, "double", typ.Spelling)
	assert.False(t, typ.Const)
	assert.Equal(t, "double", typ.CString())
}

func TestParseTypeTopLevelConst(t *testing.T) {
	typ, err := ParseType("const double")
	require.NoError(t, err)
	assert.Equal(t, "double", typ.Spelling)
	assert.True(t, typ.Const)
	assert.Equal(t, "const double", typ.CString())
}

func TestParseTypeTrailingConst(t *testing.T) {
	typ, err := ParseType("double const")
	require.NoError(t, err)
	assert.Equal(t, "double", typ.Spelling)
	assert.True(t, typ.Const)
}

func TestParseTypePointerToConst(t *testing.T) {
	// Pointee constness stays in the spelling; the pointer itself is
	// not top-level const.
	typ, err := ParseType("const double *")
	require.NoError(t, err)
	assert.Equal(t, "const double *", typ.Spelling)
	assert.False(t, typ.Const)
}

func TestParseTypeReference(t *testing.T) {
	typ, err := ParseType("std::vector< double > &")
	require.NoError(t, err)
	assert.Equal(t, "std::vector< double > &", typ.Spelling)
}

func TestParseTypeCanonicalSpacing(t *testing.T) {
	a, err := ParseType("std::vector<double>")
	require.NoError(t, err)
	b, err := ParseType("std::vector<  double  >")
	require.NoError(t, err)
	assert.True(t, a.Same(b))
	assert.Equal(t, "std::vector< double >", a.Spelling)
}

func TestParseTypeNestedTemplate(t *testing.T) {
	typ, err := ParseType("std::map< std::string, std::vector< int > >")
	require.NoError(t, err)
	assert.Equal(t, "std::map< std::string, std::vector< int > >", typ.Spelling)
}

func TestParseTypeIntegralTemplateArg(t *testing.T) {
	typ, err := ParseType("std::array< double, 3 >")
	require.NoError(t, err)
	assert.Equal(t, "std::array< double, 3 >", typ.Spelling)
}

func TestParseTypeMultiWord(t *testing.T) {
	typ, err := ParseType("unsigned long")
	require.NoError(t, err)
	assert.Equal(t, "unsigned long", typ.Spelling)
}

func TestParseTypeInvalid(t *testing.T) {
	_, err := ParseType("std::vector<")
	assert.Error(t, err)
}

func TestParseTypeHeaders(t *testing.T) {
	typ, err := ParseType("std::vector< double >", "<vector>")
	require.NoError(t, err)
	require.Len(t, typ.Headers, 1)
	assert.Equal(t, "vector", typ.Headers[0].Path)
	assert.True(t, typ.Headers[0].System)
}

func TestTypeUnqualified(t *testing.T) {
	typ := MustParseType("const double")
	uq := typ.Unqualified()
	assert.False(t, uq.Const)
	assert.Equal(t, "double", uq.CString())
	assert.True(t, typ.SameUnqualified(uq))
	assert.False(t, typ.Same(uq))
}

func TestTypeIsPointer(t *testing.T) {
	assert.True(t, MustParseType("double *").IsPointer())
	assert.False(t, MustParseType("double &").IsPointer())
	assert.False(t, MustParseType("double").IsPointer())
}

func TestParseHeader(t *testing.T) {
	sys := ParseHeader("<vector>")
	assert.True(t, sys.System)
	assert.Equal(t, "vector", sys.Path)
	assert.Equal(t, "<vector>", sys.String())

	quoted := ParseHeader(`"util/field.hpp"`)
	assert.False(t, quoted.System)
	assert.Equal(t, "util/field.hpp", quoted.Path)

	bare := ParseHeader("util/field.hpp")
	assert.False(t, bare.System)
	assert.Equal(t, "util/field.hpp", bare.Path)
}

func TestMergeHeaders(t *testing.T) {
	a := []HeaderFile{ParseHeader("<vector>"), ParseHeader("<cstdint>")}
	b := []HeaderFile{ParseHeader("<cstdint>"), ParseHeader("field.hpp")}
	merged := MergeHeaders(a, b)
	require.Len(t, merged, 3)
	assert.Equal(t, "vector", merged[0].Path)
	assert.Equal(t, "cstdint", merged[1].Path)
	assert.Equal(t, "field.hpp", merged[2].Path)
}
