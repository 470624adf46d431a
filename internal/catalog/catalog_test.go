package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"gvcheck/internal/domain"
)

func TestAll_ClosedEnumeration(t *testing.T) {
	all := All()

	// 5 compile + 35 parse + 1 exact-output
	if len(all) != 41 {
		t.Fatalf("expected 41 cataloged checks, got %d", len(all))
	}

	counts := map[domain.Kind]int{}
	for _, ex := range all {
		counts[ex.Kind]++
	}
	if counts[domain.KindCompile] != 5 {
		t.Errorf("expected 5 compile checks, got %d", counts[domain.KindCompile])
	}
	if counts[domain.KindParse] != 35 {
		t.Errorf("expected 35 parse checks, got %d", counts[domain.KindParse])
	}
	if counts[domain.KindOutput] != 1 {
		t.Errorf("expected 1 output check, got %d", counts[domain.KindOutput])
	}
}

func TestAll_Paths(t *testing.T) {
	for _, ex := range All() {
		switch ex.Kind {
		case domain.KindCompile:
			if ex.RelPath != "dot.demo/"+ex.Name {
				t.Errorf("compile check %s has path %s", ex.Name, ex.RelPath)
			}
		case domain.KindParse, domain.KindOutput:
			if ex.RelPath != "cmd/gvpr/lib/"+ex.Name {
				t.Errorf("script check %s has path %s", ex.Name, ex.RelPath)
			}
		}
	}
}

func TestAll_ReturnsFreshSlice(t *testing.T) {
	first := All()
	first[0].Name = "mutated"
	second := All()
	if second[0].Name == "mutated" {
		t.Error("All must not expose shared state between calls")
	}
}

func TestLookup(t *testing.T) {
	t.Run("finds clustg output check", func(t *testing.T) {
		ex, ok := Lookup(ClusterScript, domain.KindOutput)
		if !ok {
			t.Fatal("expected clustg output check in catalog")
		}
		if ex.Stdin != ClusterInput {
			t.Errorf("unexpected stdin: %q", ex.Stdin)
		}
		if ex.Want != ClusterWant {
			t.Errorf("unexpected expected output: %q", ex.Want)
		}
	})

	t.Run("unknown name is not in the catalog", func(t *testing.T) {
		if _, ok := Lookup("not-an-example", domain.KindParse); ok {
			t.Error("enumeration must be closed")
		}
	})
}

func TestHangProne(t *testing.T) {
	for _, name := range []string{"bbox", "col"} {
		if !HangProne[name] {
			t.Errorf("expected %s in hang-prone set", name)
		}
		if _, ok := Lookup(name, domain.KindParse); !ok {
			t.Errorf("hang-prone entry %s must reference a cataloged script", name)
		}
	}
	if len(HangProne) != 2 {
		t.Errorf("expected 2 hang-prone entries, got %d", len(HangProne))
	}
}

func TestVerifyRoot(t *testing.T) {
	t.Run("accepts a graphviz-shaped tree", func(t *testing.T) {
		root := t.TempDir()
		for _, dir := range []string{"dot.demo", "cmd/gvpr/lib"} {
			if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
				t.Fatalf("failed to create %s: %v", dir, err)
			}
		}
		if err := VerifyRoot(root); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("rejects a tree without example dirs", func(t *testing.T) {
		if err := VerifyRoot(t.TempDir()); err == nil {
			t.Error("expected error for empty root")
		}
	})
}
