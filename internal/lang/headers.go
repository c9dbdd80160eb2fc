package lang

// HeaderFile represents a C++ header file.
type HeaderFile struct {
	// Path is the (relative) path of the header file.
	Path string

	// System marks angle-bracket headers.
	System bool
}

// ParseHeader builds a HeaderFile from a spelling like `<vector>` or
// `"util/field.hpp"`. A bare path is treated as a project header.
func ParseHeader(header string) HeaderFile {
	system := false

	if len(header) >= 2 && header[0] == '"' && header[len(header)-1] == '"' {
		header = header[1 : len(header)-1]
	}

	if len(header) >= 2 && header[0] == '<' && header[len(header)-1] == '>' {
		header = header[1 : len(header)-1]
		system = true
	}

	return HeaderFile{Path: header, System: system}
}

func (h HeaderFile) String() string {
	if h.System {
		return "<" + h.Path + ">"
	}
	return h.Path
}

// MergeHeaders unions header lists, preserving first-seen order.
func MergeHeaders(lists ...[]HeaderFile) []HeaderFile {
	var merged []HeaderFile
	seen := make(map[HeaderFile]bool)
	for _, list := range lists {
		for _, h := range list {
			if !seen[h] {
				seen[h] = true
				merged = append(merged, h)
			}
		}
	}
	return merged
}
