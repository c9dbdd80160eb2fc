package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml"
)

// CodeStyle holds the options affecting the layout of generated C++ code.
type CodeStyle struct {
	// IndentWidth is the number of spaces successively nested blocks
	// are indented with.
	IndentWidth int `toml:"indent-width"`
}

// DefaultCodeStyle returns the code style used when no manifest overrides it.
func DefaultCodeStyle() *CodeStyle {
	return &CodeStyle{IndentWidth: 2}
}

// Indent prefixes every non-blank line of s with one indentation level.
func (cs *CodeStyle) Indent(s string) string {
	prefix := strings.Repeat(" ", cs.IndentWidth)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

// Manifest describes one generator invocation: the output artifacts,
// the kernels available for invocation, and the wrapper functions to
// generate around them.
type Manifest struct {
	// Output is the stem of the generated file pair, e.g. "Algorithms"
	// produces Algorithms.hpp and Algorithms.cpp.
	Output string `toml:"output"`

	// Namespace is the C++ namespace wrapped around all generated
	// declarations. Empty means the global namespace.
	Namespace string `toml:"namespace"`

	// HeaderOnly selects single-artifact emission: everything is
	// defined inline in the header and no translation unit is written.
	HeaderOnly bool `toml:"header-only"`

	CodeStyle *CodeStyle `toml:"code-style"`

	KernelNamespaces []KernelNamespaceDecl `toml:"kernel-namespace"`
	Functions        []FunctionDecl        `toml:"function"`
}

// KernelNamespaceDecl declares a group of pre-generated kernels.
type KernelNamespaceDecl struct {
	Name    string       `toml:"name"`
	Kernels []KernelDecl `toml:"kernel"`
}

// KernelDecl declares one opaque kernel: its signature and definition
// text come verbatim from the upstream kernel generator.
type KernelDecl struct {
	Name       string      `toml:"name"`
	Signature  string      `toml:"signature"`
	Definition string      `toml:"definition"`
	Headers    []string    `toml:"headers"`
	Params     []ParamDecl `toml:"param"`
}

// ParamDecl is one kernel parameter; Type is a C++ type spelling.
type ParamDecl struct {
	Name string `toml:"name"`
	Type string `toml:"type"`
}

// FunctionDecl requests a wrapper function that invokes one kernel.
type FunctionDecl struct {
	Name       string `toml:"name"`
	Kernel     string `toml:"kernel"` // qualified as "<namespace>::<kernel>"
	ReturnType string `toml:"return-type"`
	Inline     bool   `toml:"inline"`
}

// LoadManifest reads and decodes a TOML manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}

	if m.Output == "" {
		return nil, fmt.Errorf("manifest is missing the 'output' field")
	}
	if m.CodeStyle == nil {
		m.CodeStyle = DefaultCodeStyle()
	}
	if m.CodeStyle.IndentWidth <= 0 {
		m.CodeStyle.IndentWidth = DefaultCodeStyle().IndentWidth
	}

	return &m, nil
}
