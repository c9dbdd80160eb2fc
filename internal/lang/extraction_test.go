package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStdVectorField(t *testing.T) {
	f := NewStdVectorField("data", MustParseType("double"))
	assert.Equal(t, "std::vector< double >", f.Variable().DType.Spelling)

	ptr, ok := f.ExtractPtr()
	require.True(t, ok)
	assert.Equal(t, "data.data()", ptr.Code())

	size, ok := f.ExtractSize(0)
	require.True(t, ok)
	assert.Equal(t, "data.size()", size.Code())

	stride, ok := f.ExtractStride(0)
	require.True(t, ok)
	assert.Equal(t, "1", stride.Code())

	_, ok = f.ExtractSize(1)
	assert.False(t, ok)
}

func TestSpanField(t *testing.T) {
	f := NewSpanField("view", MustParseType("float"))
	assert.Equal(t, "std::span< float >", f.Variable().DType.Spelling)

	ptr, ok := f.ExtractPtr()
	require.True(t, ok)
	assert.Equal(t, "view.data()", ptr.Code())

	_, ok = f.ExtractStride(2)
	assert.False(t, ok)
}

func TestRawPtrField(t *testing.T) {
	f := NewRawPtrField("buf", MustParseType("double"))
	assert.Equal(t, "double *", f.Variable().DType.Spelling)

	ptr, ok := f.ExtractPtr()
	require.True(t, ok)
	assert.Equal(t, "buf", ptr.Code())

	_, ok = f.ExtractSize(0)
	assert.False(t, ok)
	_, ok = f.ExtractStride(0)
	assert.False(t, ok)
}

func TestStdArrayVector(t *testing.T) {
	v := NewStdArrayVector("vel", MustParseType("double"), 3)
	assert.Equal(t, "std::array< double, 3 >", v.Variable().DType.Spelling)

	c, ok := v.ExtractComponent(1)
	require.True(t, ok)
	assert.Equal(t, "vel[1]", c.Code())

	_, ok = v.ExtractComponent(3)
	assert.False(t, ok)
}
