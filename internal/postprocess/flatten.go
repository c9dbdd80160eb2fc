package postprocess

import "sfgen/internal/tree"

// FlattenSequences rewrites every sequence in the tree so that no
// sequence directly contains another. Depth-first leaf order is
// preserved and the operation is idempotent. Deferred nodes are left
// untouched; their expansions are flattened after expansion.
func FlattenSequences(node tree.Node) {
	switch n := node.(type) {
	case *tree.Sequence:
		var flat []tree.Node
		for _, c := range n.Children() {
			if sub, ok := c.(*tree.Sequence); ok {
				FlattenSequences(sub)
				flat = append(flat, sub.Children()...)
			} else {
				FlattenSequences(c)
				flat = append(flat, c)
			}
		}
		n.ReplaceChildren(flat)
	case tree.Deferred:
		return
	default:
		for _, c := range n.Children() {
			FlattenSequences(c)
		}
	}
}
