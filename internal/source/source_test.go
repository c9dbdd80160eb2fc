package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sfgen/internal/errors"
	"sfgen/internal/lang"
	"sfgen/internal/tree"
)

func voidType() lang.Type {
	return lang.MustParseType("void")
}

func TestFunctionDerivesParams(t *testing.T) {
	y := lang.MustVar("y", "double")
	body := tree.NewSequence(
		tree.NewStatements("consume(y);", nil, []lang.Var{y}),
	)

	fn, err := NewFunction(FunctionSpec{Name: "run", ReturnType: voidType()}, body)
	require.NoError(t, err)

	require.Len(t, fn.Parameters(), 1)
	assert.True(t, fn.Parameters()[0].Same(y))
}

func TestFunctionEmptyParamsWhenSelfContained(t *testing.T) {
	x := lang.MustVar("x", "double")
	body := tree.NewSequence(
		tree.NewStatements("double x = 1.0;", []lang.Var{x}, nil),
		tree.NewStatements("consume(x);", nil, []lang.Var{x}),
	)

	fn, err := NewFunction(FunctionSpec{Name: "run", ReturnType: voidType()}, body)
	require.NoError(t, err)
	assert.Empty(t, fn.Parameters())
}

func TestFunctionPropagatesAnalysisError(t *testing.T) {
	body := tree.NewSequence(
		tree.NewStatements("a(x);", nil, []lang.Var{lang.MustVar("x", "int")}),
		tree.NewStatements("b(x);", nil, []lang.Var{lang.MustVar("x", "double")}),
	)

	_, err := NewFunction(FunctionSpec{Name: "run", ReturnType: voidType()}, body)
	require.Error(t, err)
	assert.Contains(t, err.Error(), errors.ErrorVariableTypeConflict)
}

func TestMethodBindElidesMembers(t *testing.T) {
	coeff := lang.MustVar("coeff_", "double")
	y := lang.MustVar("y", "double")

	cls := NewClass("Solver")
	priv := cls.AppendBlock(VisPrivate)
	require.NoError(t, priv.AddVar(coeff))

	body := tree.NewSequence(
		tree.NewStatements("apply(coeff_, y);", nil, []lang.Var{coeff, y}),
	)
	m := NewMethod(MethodSpec{Name: "apply", ReturnType: voidType()}, body)

	pub := cls.AppendBlock(VisPublic)
	require.NoError(t, pub.AddMethod(m))

	require.Len(t, m.Parameters(), 1)
	assert.Equal(t, "y", m.Parameters()[0].Name)
	assert.Same(t, cls, m.Class())
}

func TestStaticMethodSeesNoMembers(t *testing.T) {
	coeff := lang.MustVar("coeff_", "double")

	cls := NewClass("Solver")
	require.NoError(t, cls.Default().AddVar(coeff))

	body := tree.NewSequence(
		tree.NewStatements("apply(coeff_);", nil, []lang.Var{coeff}),
	)
	m := NewMethod(MethodSpec{Name: "apply", ReturnType: voidType(), Static: true}, body)
	require.NoError(t, cls.AppendBlock(VisPublic).AddMethod(m))

	require.Len(t, m.Parameters(), 1)
	assert.Equal(t, "coeff_", m.Parameters()[0].Name)
}

func TestMethodRebindFatal(t *testing.T) {
	m := NewMethod(MethodSpec{Name: "f", ReturnType: voidType()}, tree.NewSequence())

	a := NewClass("A")
	require.NoError(t, a.AppendBlock(VisPublic).AddMethod(m))

	b := NewClass("B")
	err := b.AppendBlock(VisPublic).AddMethod(m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), errors.ErrorMemberRebound)
}

func TestDuplicateMemberFatal(t *testing.T) {
	cls := NewClass("C")
	require.NoError(t, cls.Default().AddVar(lang.MustVar("x_", "int")))

	err := cls.AppendBlock(VisPrivate).AddVar(lang.MustVar("x_", "double"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), errors.ErrorDuplicateMember)
}

func TestClassBlockOrder(t *testing.T) {
	cls := NewStruct("S", "Base")
	cls.AppendBlock(VisPublic)
	cls.AppendBlock(VisPrivate)

	blocks := cls.Blocks()
	require.Len(t, blocks, 3)
	assert.Equal(t, VisDefault, blocks[0].Visibility())
	assert.Equal(t, VisPublic, blocks[1].Visibility())
	assert.Equal(t, VisPrivate, blocks[2].Visibility())
	assert.Equal(t, "struct", cls.Keyword())
	assert.Equal(t, []string{"Base"}, cls.Bases())
}

func TestContextDeclarationOrder(t *testing.T) {
	ctx := NewContext("app", nil, false)

	fn, err := NewFunction(FunctionSpec{Name: "run", ReturnType: voidType()}, tree.NewSequence())
	require.NoError(t, err)
	require.NoError(t, ctx.AddFunction(fn))
	require.NoError(t, ctx.AddClass(NewClass("Solver")))

	decls := ctx.Declarations()
	require.Len(t, decls, 2)
	_, isFn := FunctionOf(decls[0])
	assert.True(t, isFn)
	_, isCls := ClassOf(decls[1])
	assert.True(t, isCls)
}

func TestContextDuplicateNamesFatal(t *testing.T) {
	ctx := NewContext("", nil, false)

	fn, err := NewFunction(FunctionSpec{Name: "run", ReturnType: voidType()}, tree.NewSequence())
	require.NoError(t, err)
	require.NoError(t, ctx.AddFunction(fn))

	err = ctx.AddClass(NewClass("run"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), errors.ErrorDuplicateName)
}

func TestContextIncludes(t *testing.T) {
	ctx := NewContext("", nil, false)
	ctx.AddInclude("<vector>", false)
	ctx.AddInclude(`"detail.hpp"`, true)

	incs := ctx.Includes()
	require.Len(t, incs, 2)
	assert.False(t, incs[0].Private)
	assert.True(t, incs[0].Header.System)
	assert.True(t, incs[1].Private)
}
