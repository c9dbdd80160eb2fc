package printer

import (
	"sfgen/internal/lang"
	"sfgen/internal/tree"
)

// treeIncludes walks a resolved call tree and gathers every node's own
// header requirements. The tree must already be postprocessed; a
// deferred node would panic here.
func treeIncludes(root tree.Node) []lang.HeaderFile {
	var incs []lang.HeaderFile
	var walk func(n tree.Node)
	walk = func(n tree.Node) {
		incs = append(incs, n.RequiredIncludes()...)
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(root)
	return lang.MergeHeaders(incs)
}

// signatureIncludes gathers the headers needed to spell an entity's
// parameter and return types. These belong to the file where the
// signature appears, which is always the header.
func signatureIncludes(returnType lang.Type, params []lang.Var) []lang.HeaderFile {
	lists := [][]lang.HeaderFile{returnType.Headers}
	for _, p := range params {
		lists = append(lists, p.DType.Headers)
	}
	return lang.MergeHeaders(lists...)
}
