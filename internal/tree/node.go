// Package tree defines the call-tree intermediate representation: the
// node variants representing code fragments, sequencing, branching,
// and kernel invocation, plus the deferred variants that are expanded
// against the live-variable set during postprocessing.
package tree

import (
	"sfgen/internal/config"
	"sfgen/internal/lang"
)

// Node is one unit of generated code. Children are fixed-arity and
// index-addressable: implementors may replace elements but never
// resize, with the single exception of sequence rebuilding during
// flattening. Code never carries a trailing line terminator.
type Node interface {
	// Children returns the node's ordered child list.
	Children() []Node

	// SetChild replaces the i-th child.
	SetChild(i int, c Node)

	// Code renders the node to source text, without a trailing newline.
	Code(style *config.CodeStyle) string

	// RequiredIncludes returns the node's own header requirements.
	// Aggregation over descendants is the collector's job.
	RequiredIncludes() []lang.HeaderFile
}

// Leaf is a node carrying its own variable requirements.
type Leaf interface {
	Node

	// Depends returns the variables that must be visible at the leaf.
	Depends() []lang.Var
}

// ExpansionContext is the view of the live-variable set handed to
// deferred nodes at expansion time. It describes everything still
// required downstream of the node's position.
type ExpansionContext interface {
	// LiveVariable looks up a live variable by name.
	LiveVariable(name string) (lang.Var, bool)

	// LiveVariables lists all currently live variables.
	LiveVariables() []lang.Var
}

// Deferred is a placeholder node whose concrete form depends on the
// live set at its position. It must be expanded before printing;
// reading children or code beforehand panics.
type Deferred interface {
	Node

	// Expand materializes the node against the live set.
	Expand(ctx ExpansionContext) (Node, error)
}
