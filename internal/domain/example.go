package domain

import "path/filepath"

// Kind identifies what a check does with an example.
type Kind string

const (
	// KindCompile builds a C demo and links it against the Graphviz libraries.
	KindCompile Kind = "compile"
	// KindParse feeds a GVPR script to the interpreter with closed stdin.
	KindParse Kind = "parse"
	// KindOutput runs a GVPR script on fixed input and compares stdout.
	KindOutput Kind = "output"
)

// Example identifies one artifact from the closed catalog. The set of
// examples is fixed at compile time; nothing is discovered from disk.
type Example struct {
	Name    string // bare name, e.g. "demo.c" or "clustg"
	Kind    Kind
	RelPath string // path relative to the examples root
	Stdin   string // literal stdin, output checks only
	Want    string // expected trimmed stdout, output checks only
}

// Path resolves the example against the examples root as an absolute path.
func (e Example) Path(root string) string {
	p := filepath.Join(root, filepath.FromSlash(e.RelPath))
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
