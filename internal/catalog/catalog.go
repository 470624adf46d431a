package catalog

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"gvcheck/internal/domain"
)

// The catalog is the closed set of example artifacts shipped with a
// Graphviz source tree. Membership is fixed here; nothing is discovered
// by walking the tree, so a name outside these tables is never invoked.

const (
	// CompileDir holds the C demos, relative to the examples root
	CompileDir = "dot.demo"
	// ScriptDir holds the GVPR example scripts, relative to the examples root
	ScriptDir = "cmd/gvpr/lib"
	// ClusterScript is the script exercised by the exact-output check
	ClusterScript = "clustg"
)

// compileExamples are the C demos that must link against cgraph and gvc.
var compileExamples = []string{
	"demo.c", "dot.c", "example.c", "neatopack.c", "simple.c",
}

// parseExamples are the GVPR scripts that must be accepted by the
// interpreter. clustg additionally gets the exact-output check below.
var parseExamples = []string{
	"addrings", "attr", "bbox", "bipart", "chkedges", "clustg", "collapse",
	"cycle", "deghist", "delmulti", "depath", "flatten", "group", "indent",
	"path", "scale", "span", "treetoclust", "addranks", "anon", "bb",
	"chkclusters", "cliptree", "col", "color", "dechain", "deledges",
	"delnodes", "dijkstra", "get-layers-list", "knbhd", "maxdeg", "rotate",
	"scalexy", "topon",
}

// HangProne lists scripts known to hang under MSBuild Debug builds
// (graphviz#1784). Treated as configuration data, not logic; revalidate
// against the upstream issue before extending it.
var HangProne = map[string]bool{
	"bbox": true,
	"col":  true,
}

// ClusterInput is the graph fed to clustg on stdin for the exact-output check.
const ClusterInput = "digraph { N1; N2; N1 -> N2; N3; }"

// ClusterWant is the exact stdout clustg must produce for ClusterInput,
// compared after trailing-whitespace trimming.
const ClusterWant = "strict digraph \"clust%1\" {\n" +
	"\tnode [_cnt=0];\n" +
	"\tedge [_cnt=0];\n" +
	"\tN1 -> N2\t[_cnt=1];\n" +
	"\tN3;\n" +
	"}"

// All returns every cataloged check: compile checks, parse checks and the
// clustg exact-output check. The returned slice is freshly allocated.
func All() []domain.Example {
	out := make([]domain.Example, 0, len(compileExamples)+len(parseExamples)+1)
	for _, name := range compileExamples {
		out = append(out, domain.Example{
			Name:    name,
			Kind:    domain.KindCompile,
			RelPath: path.Join(CompileDir, name),
		})
	}
	for _, name := range parseExamples {
		out = append(out, domain.Example{
			Name:    name,
			Kind:    domain.KindParse,
			RelPath: path.Join(ScriptDir, name),
		})
	}
	out = append(out, domain.Example{
		Name:    ClusterScript,
		Kind:    domain.KindOutput,
		RelPath: path.Join(ScriptDir, ClusterScript),
		Stdin:   ClusterInput,
		Want:    ClusterWant,
	})
	return out
}

// ByKind returns the cataloged checks of one kind.
func ByKind(kind domain.Kind) []domain.Example {
	var out []domain.Example
	for _, ex := range All() {
		if ex.Kind == kind {
			out = append(out, ex)
		}
	}
	return out
}

// Lookup finds a cataloged check by name and kind.
func Lookup(name string, kind domain.Kind) (domain.Example, bool) {
	for _, ex := range ByKind(kind) {
		if ex.Name == name {
			return ex, true
		}
	}
	return domain.Example{}, false
}

// VerifyRoot checks that the examples root looks like a Graphviz source
// tree, i.e. that both example directories exist.
func VerifyRoot(root string) error {
	for _, dir := range []string{CompileDir, ScriptDir} {
		p := filepath.Join(root, filepath.FromSlash(dir))
		info, err := os.Stat(p)
		if err != nil {
			return fmt.Errorf("examples root %s does not contain %s", root, dir)
		}
		if !info.IsDir() {
			return fmt.Errorf("%s is not a directory", p)
		}
	}
	return nil
}
