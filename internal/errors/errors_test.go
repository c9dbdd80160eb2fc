package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenErrorRendering(t *testing.T) {
	err := New(ErrorVariableTypeConflict, "conflicting types for variable %q", "x")
	assert.Equal(t, `error[E0300]: conflicting types for variable "x"`, err.Error())

	withNotes := err.WithNotes("required as x: double", "also required as x: int")
	assert.Contains(t, withNotes.Error(), "note: required as x: double")
	assert.Empty(t, err.Notes, "WithNotes must not mutate the original")
}

func TestWarningLevel(t *testing.T) {
	w := NewWarning(WarningConstMismatch, "constness differs")
	assert.Equal(t, Warning, w.Level)
	assert.True(t, IsWarning(w.Code))
	assert.False(t, IsWarning(ErrorVariableTypeConflict))
}

func TestPanicCarriesGenError(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(GenError)
		require.True(t, ok)
		assert.Equal(t, ErrorDeferredAccess, err.Code)
	}()
	Panic(ErrorDeferredAccess, "accessed too early")
}

func TestDescribeAndCategory(t *testing.T) {
	assert.NotEqual(t, "Unknown error code", Describe(ErrorUnboundExpression))
	assert.Equal(t, "Unknown error code", Describe("E9999"))

	assert.Equal(t, "Structural Misuse", Category(ErrorDeferredAccess))
	assert.Equal(t, "Registration", Category(ErrorDuplicateName))
	assert.Equal(t, "Variable Conflict", Category(ErrorVariableTypeConflict))
	assert.Equal(t, "Extraction", Category(ErrorExtractionUnavailable))
	assert.Equal(t, "Warning", Category(WarningAmbiguousVariable))
}

func TestReporterFormat(t *testing.T) {
	r := NewReporter("Algorithms.hpp")
	out := r.Format(New(ErrorVariableTypeConflict, "boom").WithNotes("context"))

	assert.Contains(t, out, "[E0300]")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "Algorithms.hpp")
	assert.Contains(t, out, "context")
}

func TestReporterFormatAllOrdersErrorsFirst(t *testing.T) {
	r := NewReporter("Out.hpp")
	out := r.FormatAll([]GenError{
		NewWarning(WarningConstMismatch, "first warning"),
		New(ErrorVariableTypeConflict, "the error"),
	})

	errIdx := strings.Index(out, "the error")
	warnIdx := strings.Index(out, "first warning")
	require.GreaterOrEqual(t, errIdx, 0)
	require.GreaterOrEqual(t, warnIdx, 0)
	assert.Less(t, errIdx, warnIdx)
}
