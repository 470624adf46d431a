package execution

import (
	"context"
	"runtime"
	"testing"

	"gvcheck/internal/config"
	"gvcheck/internal/domain"
	"gvcheck/internal/toolchain"
)

func parseExamples(names ...string) []domain.Example {
	var out []domain.Example
	for _, name := range names {
		out = append(out, domain.Example{
			Name: name, Kind: domain.KindParse, RelPath: "cmd/gvpr/lib/" + name,
		})
	}
	return out
}

func TestWorkerPool_Execute(t *testing.T) {
	t.Run("empty batch", func(t *testing.T) {
		pool := NewWorkerPool(config.New(), NewRunner(config.New(), toolchain.Capabilities{}), NewRoundRobinScheduler())
		results, _, err := pool.Execute(context.Background(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if results != nil {
			t.Errorf("expected no results, got %d", len(results))
		}
	})

	t.Run("all checks produce a result", func(t *testing.T) {
		cfg := config.New()
		cfg.Jobs = 4
		runner := NewRunner(cfg, toolchain.Capabilities{Interpreter: toolchain.Unavailable})
		pool := NewWorkerPool(cfg, runner, NewRoundRobinScheduler())

		examples := parseExamples("attr", "bbox", "col", "anon", "span")
		results, _, err := pool.Execute(context.Background(), examples)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != len(examples) {
			t.Fatalf("expected %d results, got %d", len(examples), len(results))
		}
		for _, r := range results {
			if r.Outcome != domain.OutcomeSkip {
				t.Errorf("%s: expected skip without interpreter, got %s", r.Example.Name, r.Outcome)
			}
		}
	})
}

func TestWorkerPool_FailFast(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub tools use shell scripts")
	}

	cfg := config.New()
	cfg.ExamplesRoot = t.TempDir()
	cfg.Jobs = 1
	caps := toolchain.Capabilities{
		Interpreter:     toolchain.Available,
		InterpreterPath: writeScript(t, t.TempDir(), "gvpr", "exit 3\n"),
	}
	pool := NewWorkerPool(cfg, NewRunner(cfg, caps), NewRoundRobinScheduler())

	examples := parseExamples("attr", "bbox", "col", "anon", "span")
	results, _, err := pool.ExecuteWithOptions(context.Background(), examples, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) >= len(examples) {
		t.Errorf("fail-fast should stop early, got %d of %d results", len(results), len(examples))
	}

	var failures int
	for _, r := range results {
		if r.Outcome == domain.OutcomeFail {
			failures++
		}
	}
	if failures == 0 {
		t.Error("expected at least one recorded failure")
	}
}

func TestRoundRobinScheduler(t *testing.T) {
	scheduler := NewRoundRobinScheduler()
	examples := parseExamples("a", "b", "c", "d", "e")

	dist := scheduler.Schedule(examples, 2)
	if len(dist) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(dist))
	}
	if len(dist[0]) != 3 || len(dist[1]) != 2 {
		t.Errorf("uneven round-robin split: %d/%d", len(dist[0]), len(dist[1]))
	}

	t.Run("zero workers defaults to one", func(t *testing.T) {
		dist := scheduler.Schedule(examples, 0)
		if len(dist) != 1 || len(dist[0]) != len(examples) {
			t.Errorf("expected single bucket with all checks")
		}
	})
}
