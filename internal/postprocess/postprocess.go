// Package postprocess implements the per-entity pass that flattens
// nested sequences, expands deferred nodes against the evolving
// live-variable set, and computes the minimal parameter set each
// generated function must receive.
package postprocess

import (
	"sort"

	"sfgen/internal/errors"
	"sfgen/internal/lang"
	"sfgen/internal/tree"
)

// Result is the outcome of postprocessing one entity's call tree.
type Result struct {
	// Params is the entity's required parameter set, sorted by name.
	Params []lang.Var

	// Warnings are the non-fatal variable-merge diagnostics collected
	// during the analysis.
	Warnings []errors.GenError
}

// Postprocess resolves an entity's call tree in place and returns its
// required parameters. It must run exactly once per tree: sequences
// are flattened and deferred nodes are replaced by their expansions.
func Postprocess(root tree.Node) (Result, error) {
	return PostprocessWithVisible(root, nil)
}

// PostprocessWithVisible is Postprocess for trees whose enclosing
// scope makes some variables implicitly available, such as class
// members reachable through `this` in a method body. Those variables
// are excluded from the resulting parameter set.
func PostprocessWithVisible(root tree.Node, visible []lang.Var) (Result, error) {
	var warnings []errors.GenError
	p := &pass{warnings: &warnings}

	live := newLiveSet(&warnings)
	if err := p.node(root, live); err != nil {
		return Result{}, err
	}

	// Expansions may have introduced nested sequences.
	FlattenSequences(root)

	live.dropVisible(visible)

	return Result{Params: live.LiveVariables(), Warnings: warnings}, nil
}

type pass struct {
	warnings *[]errors.GenError
}

// node dispatches the live-variable computation over the node kinds.
// Sequences propagate visibility child to child; every other interior
// node processes its children in independent scopes and folds their
// contributions upward.
func (p *pass) node(n tree.Node, live *liveSet) error {
	switch n := n.(type) {
	case *tree.Sequence:
		return p.scope(n, live)

	case *tree.Statements:
		for _, v := range n.Defines() {
			if err := live.define(v); err != nil {
				return err
			}
		}
		for _, v := range n.Depends() {
			if err := live.use(v); err != nil {
				return err
			}
		}
		return nil

	case *tree.Branch:
		if err := p.foldArms(n.Children(), live); err != nil {
			return err
		}
		return p.useAll(n.Condition().Depends(), live)

	case *tree.Switch:
		if err := p.foldArms(n.Children(), live); err != nil {
			return err
		}
		return p.useAll(n.Subject().Depends(), live)

	case tree.Deferred:
		return errors.New(errors.ErrorDeferredOutsideSequence,
			"a deferred node can only be expanded as a direct element of a sequence")

	case tree.Leaf:
		return p.useAll(n.Depends(), live)

	default:
		// Blocks and other scope wrappers: each child is an
		// independent scope.
		return p.foldArms(n.Children(), live)
	}
}

// scope walks one sequence in reverse emission order. This is the only
// place deferred nodes are expanded; the live set at the moment of
// expansion describes exactly what is still required downstream.
func (p *pass) scope(seq *tree.Sequence, live *liveSet) error {
	for i := len(seq.Children()) - 1; i >= 0; i-- {
		child := seq.Children()[i]

		if d, ok := child.(tree.Deferred); ok {
			expanded, err := d.Expand(live)
			if err != nil {
				return err
			}
			seq.SetChild(i, expanded)
			child = expanded
		}

		if err := p.node(child, live); err != nil {
			return err
		}
	}
	return nil
}

// foldArms processes each child in a fresh live set and merges the
// results into the outer set. Only one arm executes at runtime, but
// the generated entity must be able to supply parameters for any of
// them.
func (p *pass) foldArms(arms []tree.Node, live *liveSet) error {
	for _, arm := range arms {
		fresh := newLiveSet(p.warnings)
		if err := p.node(arm, fresh); err != nil {
			return err
		}
		if err := live.fold(fresh); err != nil {
			return err
		}
	}
	return nil
}

func (p *pass) useAll(vars []lang.Var, live *liveSet) error {
	for _, v := range vars {
		if err := live.use(v); err != nil {
			return err
		}
	}
	return nil
}

// liveSet tracks, keyed by name, the variables required later in the
// current scope that have not yet been satisfied by a definition. It
// doubles as the expansion context handed to deferred nodes.
type liveSet struct {
	vars     map[string]lang.Var
	warnings *[]errors.GenError
}

func newLiveSet(warnings *[]errors.GenError) *liveSet {
	return &liveSet{vars: make(map[string]lang.Var), warnings: warnings}
}

// LiveVariable implements tree.ExpansionContext.
func (l *liveSet) LiveVariable(name string) (lang.Var, bool) {
	v, ok := l.vars[name]
	return v, ok
}

// LiveVariables implements tree.ExpansionContext. The result is
// sorted by name so downstream consumers emit deterministically.
func (l *liveSet) LiveVariables() []lang.Var {
	vars := make([]lang.Var, 0, len(l.vars))
	for _, v := range l.vars {
		vars = append(vars, v)
	}
	lang.SortVars(vars)
	return vars
}

// use merges one required variable into the live set.
func (l *liveSet) use(v lang.Var) error {
	existing, ok := l.vars[v.Name]
	if !ok {
		l.vars[v.Name] = v
		return nil
	}

	switch {
	case existing.Same(v) && headersEqual(existing.DType.Headers, v.DType.Headers):
		return nil

	case existing.DType.SameUnqualified(v.DType) && existing.DType.Const != v.DType.Const:
		// Non-const dominates: the less constrained requirement
		// satisfies both uses.
		l.warn(errors.NewWarning(errors.WarningConstMismatch,
			"requirements for %q differ only in constness; keeping the non-const variant",
			v.Name))
		if existing.DType.Const {
			l.vars[v.Name] = v
		}
		return nil

	case existing.DType.Same(v.DType):
		// Same name and type but distinct provenance. Keep the most
		// recently seen instance.
		l.warn(errors.NewWarning(errors.WarningAmbiguousVariable,
			"encountered two distinct variables both named %q of type %s",
			v.Name, v.DType.CString()))
		l.vars[v.Name] = v
		return nil

	default:
		return errors.New(errors.ErrorVariableTypeConflict,
			"conflicting types for variable %q", v.Name).
			WithNotes(
				"required as "+existing.NameAndType(),
				"also required as "+v.NameAndType(),
			)
	}
}

// define removes a satisfied requirement from the live set. Defining a
// name that is live with an incompatible type is a hard conflict.
func (l *liveSet) define(v lang.Var) error {
	existing, ok := l.vars[v.Name]
	if !ok {
		return nil
	}

	if !existing.DType.SameUnqualified(v.DType) {
		return errors.New(errors.ErrorVariableTypeConflict,
			"definition of %s conflicts with live requirement %s",
			v.NameAndType(), existing.NameAndType())
	}

	if existing.DType.Const != v.DType.Const {
		l.warn(errors.NewWarning(errors.WarningConstMismatch,
			"definition of %q differs from its requirement only in constness",
			v.Name))
	}

	delete(l.vars, v.Name)
	return nil
}

// fold merges a nested scope's contribution into this one.
func (l *liveSet) fold(nested *liveSet) error {
	for _, v := range nested.LiveVariables() {
		if err := l.use(v); err != nil {
			return err
		}
	}
	return nil
}

// dropVisible removes variables implicitly available in the enclosing
// scope from the final parameter set.
func (l *liveSet) dropVisible(visible []lang.Var) {
	for _, v := range visible {
		if existing, ok := l.vars[v.Name]; ok && existing.DType.SameUnqualified(v.DType) {
			delete(l.vars, v.Name)
		}
	}
}

func (l *liveSet) warn(w errors.GenError) {
	*l.warnings = append(*l.warnings, w)
}

func headersEqual(a, b []lang.HeaderFile) bool {
	if len(a) != len(b) {
		return false
	}
	sa := append([]lang.HeaderFile{}, a...)
	sb := append([]lang.HeaderFile{}, b...)
	sort.Slice(sa, func(i, j int) bool { return sa[i].Path < sa[j].Path })
	sort.Slice(sb, func(i, j int) bool { return sb[i].Path < sb[j].Path })
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}
