package tree

import (
	"strings"

	"sfgen/internal/config"
	"sfgen/internal/kernel"
	"sfgen/internal/lang"
)

// KernelCall is a leaf invoking a kernel. It requires exactly the
// kernel's parameters and renders as a plain call statement.
type KernelCall struct {
	handle *kernel.Handle
}

// NewKernelCall creates a call to the given kernel.
func NewKernelCall(handle *kernel.Handle) *KernelCall {
	return &KernelCall{handle: handle}
}

// Handle returns the invoked kernel.
func (k *KernelCall) Handle() *kernel.Handle {
	return k.handle
}

func (k *KernelCall) Children() []Node       { return nil }
func (k *KernelCall) SetChild(i int, c Node) { panic("kernel call has no children") }

func (k *KernelCall) Depends() []lang.Var {
	return k.handle.ParameterVars()
}

func (k *KernelCall) Code(style *config.CodeStyle) string {
	return k.handle.QualifiedName() + "(" + argList(k.handle) + ");"
}

func (k *KernelCall) RequiredIncludes() []lang.HeaderFile {
	return k.handle.Includes()
}

// GPUKernelInvocation is a leaf launching a device kernel with an
// explicit launch configuration: grid size, block size, and an
// optional stream.
type GPUKernelInvocation struct {
	handle *kernel.Handle
	grid   *lang.Expr
	block  *lang.Expr
	stream *lang.Expr // may be nil
}

// NewGPUKernelInvocation creates a device kernel launch. stream may be
// nil to launch on the default stream.
func NewGPUKernelInvocation(handle *kernel.Handle,
	grid *lang.Expr, block *lang.Expr, stream *lang.Expr) *GPUKernelInvocation {

	return &GPUKernelInvocation{handle: handle, grid: grid, block: block, stream: stream}
}

// Handle returns the invoked kernel.
func (g *GPUKernelInvocation) Handle() *kernel.Handle {
	return g.handle
}

func (g *GPUKernelInvocation) Children() []Node       { return nil }
func (g *GPUKernelInvocation) SetChild(i int, c Node) { panic("kernel launch has no children") }

func (g *GPUKernelInvocation) Depends() []lang.Var {
	deps := g.handle.ParameterVars()
	deps = append(deps, g.grid.Depends()...)
	deps = append(deps, g.block.Depends()...)
	if g.stream != nil {
		deps = append(deps, g.stream.Depends()...)
	}
	return deps
}

func (g *GPUKernelInvocation) Code(style *config.CodeStyle) string {
	var sb strings.Builder
	sb.WriteString(g.handle.QualifiedName())
	sb.WriteString("<<< ")
	sb.WriteString(g.grid.Code())
	sb.WriteString(", ")
	sb.WriteString(g.block.Code())
	if g.stream != nil {
		sb.WriteString(", ")
		sb.WriteString(g.stream.Code())
	}
	sb.WriteString(" >>>(")
	sb.WriteString(argList(g.handle))
	sb.WriteString(");")
	return sb.String()
}

func (g *GPUKernelInvocation) RequiredIncludes() []lang.HeaderFile {
	lists := [][]lang.HeaderFile{g.handle.Includes(), g.grid.Includes(), g.block.Includes()}
	if g.stream != nil {
		lists = append(lists, g.stream.Includes())
	}
	return lang.MergeHeaders(lists...)
}

func argList(h *kernel.Handle) string {
	params := h.Parameters()
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Var.Name
	}
	return strings.Join(names, ", ")
}
