package execution

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"gvcheck/internal/catalog"
	"gvcheck/internal/config"
	"gvcheck/internal/domain"
	"gvcheck/internal/toolchain"
)

// writeScript creates an executable shell script stub standing in for the
// compiler or interpreter.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755); err != nil {
		t.Fatalf("failed to create script %s: %v", name, err)
	}
	return path
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.ExamplesRoot = t.TempDir()
	cfg.Jobs = 1
	return cfg
}

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub tools use shell scripts")
	}
}

func TestRunner_CompileCheck(t *testing.T) {
	skipOnWindows(t)

	t.Run("zero exit passes", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.CompilerPath = writeScript(t, t.TempDir(), "cc", "exit 0\n")

		runner := NewRunner(cfg, toolchain.Capabilities{})
		result := runner.Run(context.Background(), domain.Example{
			Name: "demo.c", Kind: domain.KindCompile, RelPath: "dot.demo/demo.c",
		})

		if result.Outcome != domain.OutcomePass {
			t.Fatalf("expected pass, got %s (err: %v)", result.Outcome, result.Err)
		}
		if result.ExitCode != 0 {
			t.Errorf("expected exit code 0, got %d", result.ExitCode)
		}
	})

	t.Run("non-zero exit is a hard failure", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.CompilerPath = writeScript(t, t.TempDir(), "cc", "echo 'demo.c:1: error' >&2\nexit 1\n")

		runner := NewRunner(cfg, toolchain.Capabilities{})
		result := runner.Run(context.Background(), domain.Example{
			Name: "demo.c", Kind: domain.KindCompile, RelPath: "dot.demo/demo.c",
		})

		if result.Outcome != domain.OutcomeFail {
			t.Fatalf("expected fail, got %s", result.Outcome)
		}
		if result.ExitCode != 1 {
			t.Errorf("expected exit code 1, got %d", result.ExitCode)
		}
		if !strings.Contains(result.Output, "error") {
			t.Errorf("expected compiler output captured, got %q", result.Output)
		}
	})

	t.Run("spawn error is a hard failure", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.CompilerPath = filepath.Join(t.TempDir(), "no-such-compiler")

		runner := NewRunner(cfg, toolchain.Capabilities{})
		result := runner.Run(context.Background(), domain.Example{
			Name: "demo.c", Kind: domain.KindCompile, RelPath: "dot.demo/demo.c",
		})

		if result.Outcome != domain.OutcomeFail {
			t.Fatalf("expected fail, got %s", result.Outcome)
		}
		if result.ExitCode != -1 {
			t.Errorf("expected exit code -1 for spawn error, got %d", result.ExitCode)
		}
		if result.Err == nil {
			t.Error("expected spawn error propagated")
		}
	})

	t.Run("unix link flags", func(t *testing.T) {
		cfg := testConfig(t)
		argsFile := filepath.Join(t.TempDir(), "args")
		cfg.CompilerPath = writeScript(t, t.TempDir(), "cc", "echo \"$@\" > "+argsFile+"\nexit 0\n")

		runner := NewRunner(cfg, toolchain.Capabilities{})
		runner.Run(context.Background(), domain.Example{
			Name: "simple.c", Kind: domain.KindCompile, RelPath: "dot.demo/simple.c",
		})

		data, err := os.ReadFile(argsFile)
		if err != nil {
			t.Fatalf("compiler was not invoked: %v", err)
		}
		args := string(data)
		for _, want := range []string{"-o " + os.DevNull, "simple.c", "-lcgraph", "-lgvc"} {
			if !strings.Contains(args, want) {
				t.Errorf("expected %q in compiler args, got %q", want, args)
			}
		}
	})

	t.Run("msvc link flags", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.LinkStyle = config.LinkStyleMSVC
		argsFile := filepath.Join(t.TempDir(), "args")
		cfg.CompilerPath = writeScript(t, t.TempDir(), "cl", "echo \"$@\" > "+argsFile+"\nexit 0\n")

		runner := NewRunner(cfg, toolchain.Capabilities{})
		runner.Run(context.Background(), domain.Example{
			Name: "simple.c", Kind: domain.KindCompile, RelPath: "dot.demo/simple.c",
		})

		data, err := os.ReadFile(argsFile)
		if err != nil {
			t.Fatalf("compiler was not invoked: %v", err)
		}
		args := string(data)
		for _, want := range []string{"simple.c", "-nologo", "-link", "cgraph.lib", "gvc.lib"} {
			if !strings.Contains(args, want) {
				t.Errorf("expected %q in compiler args, got %q", want, args)
			}
		}
		if strings.Contains(args, "-lcgraph") {
			t.Errorf("msvc style must not use -l flags, got %q", args)
		}
	})

	t.Run("msbuild workaround skips the suite", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Workarounds.MSBuild = true

		runner := NewRunner(cfg, toolchain.Capabilities{})
		result := runner.Run(context.Background(), domain.Example{
			Name: "demo.c", Kind: domain.KindCompile, RelPath: "dot.demo/demo.c",
		})

		if result.Outcome != domain.OutcomeSkip {
			t.Fatalf("expected skip, got %s", result.Outcome)
		}
		if !strings.Contains(result.SkipReason, "1777") {
			t.Errorf("skip reason should reference the tracked issue, got %q", result.SkipReason)
		}
	})
}

func TestRunner_ParseCheck(t *testing.T) {
	skipOnWindows(t)

	gvprOK := func(t *testing.T) toolchain.Capabilities {
		return toolchain.Capabilities{
			Interpreter:     toolchain.Available,
			InterpreterPath: writeScript(t, t.TempDir(), "gvpr", "exit 0\n"),
		}
	}

	t.Run("accepted script passes", func(t *testing.T) {
		runner := NewRunner(testConfig(t), gvprOK(t))
		result := runner.Run(context.Background(), domain.Example{
			Name: "attr", Kind: domain.KindParse, RelPath: "cmd/gvpr/lib/attr",
		})
		if result.Outcome != domain.OutcomePass {
			t.Fatalf("expected pass, got %s (err: %v)", result.Outcome, result.Err)
		}
	})

	t.Run("rejected script fails", func(t *testing.T) {
		caps := toolchain.Capabilities{
			Interpreter:     toolchain.Available,
			InterpreterPath: writeScript(t, t.TempDir(), "gvpr", "echo 'syntax error' >&2\nexit 2\n"),
		}
		runner := NewRunner(testConfig(t), caps)
		result := runner.Run(context.Background(), domain.Example{
			Name: "attr", Kind: domain.KindParse, RelPath: "cmd/gvpr/lib/attr",
		})
		if result.Outcome != domain.OutcomeFail {
			t.Fatalf("expected fail, got %s", result.Outcome)
		}
		if result.ExitCode != 2 {
			t.Errorf("expected exit code 2, got %d", result.ExitCode)
		}
	})

	t.Run("missing interpreter skips", func(t *testing.T) {
		runner := NewRunner(testConfig(t), toolchain.Capabilities{Interpreter: toolchain.Unavailable})
		result := runner.Run(context.Background(), domain.Example{
			Name: "attr", Kind: domain.KindParse, RelPath: "cmd/gvpr/lib/attr",
		})
		if result.Outcome != domain.OutcomeSkip {
			t.Fatalf("expected skip, got %s", result.Outcome)
		}
		if result.SkipReason != "GVPR not available" {
			t.Errorf("unexpected skip reason %q", result.SkipReason)
		}
	})

	t.Run("hang-prone scripts skip under msbuild debug", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Workarounds.MSBuild = true
		cfg.Workarounds.MSBuildDebug = true
		runner := NewRunner(cfg, gvprOK(t))

		for _, name := range []string{"bbox", "col"} {
			result := runner.Run(context.Background(), domain.Example{
				Name: name, Kind: domain.KindParse, RelPath: "cmd/gvpr/lib/" + name,
			})
			if result.Outcome != domain.OutcomeSkip {
				t.Errorf("%s: expected skip, got %s", name, result.Outcome)
			}
			if !strings.Contains(result.SkipReason, "1784") {
				t.Errorf("%s: skip reason should reference the tracked issue, got %q", name, result.SkipReason)
			}
		}

		// Other scripts still run under the same configuration.
		result := runner.Run(context.Background(), domain.Example{
			Name: "attr", Kind: domain.KindParse, RelPath: "cmd/gvpr/lib/attr",
		})
		if result.Outcome != domain.OutcomePass {
			t.Errorf("attr: expected pass, got %s", result.Outcome)
		}
	})

	t.Run("repeated runs are idempotent", func(t *testing.T) {
		runner := NewRunner(testConfig(t), gvprOK(t))
		ex := domain.Example{Name: "attr", Kind: domain.KindParse, RelPath: "cmd/gvpr/lib/attr"}

		first := runner.Run(context.Background(), ex)
		second := runner.Run(context.Background(), ex)
		if first.Outcome != second.Outcome {
			t.Errorf("outcomes differ between runs: %s vs %s", first.Outcome, second.Outcome)
		}
	})
}

func TestRunner_OutputCheck(t *testing.T) {
	skipOnWindows(t)

	clustg := func() domain.Example {
		ex, ok := catalog.Lookup(catalog.ClusterScript, domain.KindOutput)
		if !ok {
			panic("clustg missing from catalog")
		}
		return ex
	}

	t.Run("exact output passes", func(t *testing.T) {
		// The stub drains stdin and prints the expected graph verbatim.
		body := "cat > /dev/null\ncat <<'EOF'\n" + catalog.ClusterWant + "\nEOF\n"
		caps := toolchain.Capabilities{
			Interpreter:     toolchain.Available,
			InterpreterPath: writeScript(t, t.TempDir(), "gvpr", body),
		}
		runner := NewRunner(testConfig(t), caps)

		result := runner.Run(context.Background(), clustg())
		if result.Outcome != domain.OutcomePass {
			t.Fatalf("expected pass, got %s (err: %v)", result.Outcome, result.Err)
		}
	})

	t.Run("trailing whitespace is tolerated", func(t *testing.T) {
		body := "cat > /dev/null\ncat <<'EOF'\n" + catalog.ClusterWant + "\n\nEOF\n"
		caps := toolchain.Capabilities{
			Interpreter:     toolchain.Available,
			InterpreterPath: writeScript(t, t.TempDir(), "gvpr", body),
		}
		runner := NewRunner(testConfig(t), caps)

		result := runner.Run(context.Background(), clustg())
		if result.Outcome != domain.OutcomePass {
			t.Fatalf("expected pass, got %s (err: %v)", result.Outcome, result.Err)
		}
	})

	t.Run("mismatch fails with a diff", func(t *testing.T) {
		body := "cat > /dev/null\necho 'digraph wrong {}'\n"
		caps := toolchain.Capabilities{
			Interpreter:     toolchain.Available,
			InterpreterPath: writeScript(t, t.TempDir(), "gvpr", body),
		}
		runner := NewRunner(testConfig(t), caps)

		result := runner.Run(context.Background(), clustg())
		if result.Outcome != domain.OutcomeFail {
			t.Fatalf("expected fail, got %s", result.Outcome)
		}
		if result.Err == nil || !strings.Contains(result.Err.Error(), "-want +got") {
			t.Errorf("expected diff-style message, got %v", result.Err)
		}
	})

	t.Run("stdin carries the sample graph", func(t *testing.T) {
		stdinFile := filepath.Join(t.TempDir(), "stdin")
		body := "cat > " + stdinFile + "\ncat <<'EOF'\n" + catalog.ClusterWant + "\nEOF\n"
		caps := toolchain.Capabilities{
			Interpreter:     toolchain.Available,
			InterpreterPath: writeScript(t, t.TempDir(), "gvpr", body),
		}
		runner := NewRunner(testConfig(t), caps)
		runner.Run(context.Background(), clustg())

		data, err := os.ReadFile(stdinFile)
		if err != nil {
			t.Fatalf("interpreter was not invoked: %v", err)
		}
		if string(data) != catalog.ClusterInput {
			t.Errorf("expected stdin %q, got %q", catalog.ClusterInput, string(data))
		}
	})
}
