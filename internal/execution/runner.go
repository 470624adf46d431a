package execution

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"gvcheck/internal/catalog"
	"gvcheck/internal/config"
	"gvcheck/internal/domain"
	"gvcheck/internal/toolchain"
)

// Runner executes a single example check. Skip decisions are made from the
// resolved config and the one-time capability probe; the environment is
// never consulted here.
type Runner struct {
	config *config.Config
	caps   toolchain.Capabilities
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config, caps toolchain.Capabilities) *Runner {
	return &Runner{config: cfg, caps: caps}
}

// Run executes one check and classifies the outcome. Each invocation owns
// its subprocess; repeated runs of the same check are independent.
func (r *Runner) Run(ctx context.Context, ex domain.Example) domain.CheckResult {
	if reason := r.skipReason(ex); reason != "" {
		return domain.CheckResult{
			Example:    ex,
			Outcome:    domain.OutcomeSkip,
			ExitCode:   -1,
			SkipReason: reason,
		}
	}

	switch ex.Kind {
	case domain.KindCompile:
		return r.compileCheck(ctx, ex)
	case domain.KindOutput:
		return r.outputCheck(ctx, ex)
	default:
		return r.parseCheck(ctx, ex)
	}
}

// skipReason returns a non-empty rationale when the check must not run.
func (r *Runner) skipReason(ex domain.Example) string {
	switch ex.Kind {
	case domain.KindCompile:
		if r.config.Workarounds.MSBuild {
			return "Windows MSBuild release does not contain any header files (graphviz#1777)"
		}
	case domain.KindParse, domain.KindOutput:
		if r.caps.Interpreter != toolchain.Available {
			return "GVPR not available"
		}
		if ex.Kind == domain.KindParse && r.config.Workarounds.MSBuildDebug && catalog.HangProne[ex.Name] {
			return fmt.Sprintf("GVPR script %q hangs on Windows MSBuild Debug builds (graphviz#1784)", ex.Name)
		}
	}
	return ""
}

// compileCheck builds the C demo and links it against the Graphviz
// libraries. The compiled artifact goes to the null device and is never
// inspected; only the exit code matters.
func (r *Runner) compileCheck(ctx context.Context, ex domain.Example) domain.CheckResult {
	src := ex.Path(r.config.GetExamplesRoot())

	var args []string
	if r.config.LinkStyle == config.LinkStyleMSVC {
		args = append(args, src, "-nologo", "-link")
		for _, lib := range r.config.Libraries {
			args = append(args, lib+".lib")
		}
	} else {
		args = append(args, "-o", r.config.NullSink, src)
		for _, lib := range r.config.Libraries {
			args = append(args, "-l"+lib)
		}
	}

	cmd := exec.CommandContext(ctx, r.config.CompilerPath, args...)
	start := time.Now()
	output, err := cmd.CombinedOutput()

	result := domain.CheckResult{
		Example:  ex,
		Output:   string(output),
		ExitCode: exitCode(cmd, err),
		Duration: time.Since(start),
	}
	if err != nil {
		result.Outcome = domain.OutcomeFail
		result.Err = fmt.Errorf("compile %s: %w", ex.Name, err)
	} else {
		result.Outcome = domain.OutcomePass
	}
	return result
}

// parseCheck feeds the script to GVPR with closed stdin and requires a
// zero exit.
func (r *Runner) parseCheck(ctx context.Context, ex domain.Example) domain.CheckResult {
	script := ex.Path(r.config.GetExamplesRoot())

	cmd := exec.CommandContext(ctx, r.interpreter(), "-f", script)
	// Stdin left nil so the child reads from the null device.
	start := time.Now()
	output, err := cmd.CombinedOutput()

	result := domain.CheckResult{
		Example:  ex,
		Output:   string(output),
		ExitCode: exitCode(cmd, err),
		Duration: time.Since(start),
	}
	if err != nil {
		result.Outcome = domain.OutcomeFail
		result.Err = fmt.Errorf("gvpr -f %s: %w", ex.Name, err)
	} else {
		result.Outcome = domain.OutcomePass
	}
	return result
}

// outputCheck runs the script on its fixed stdin and compares captured
// stdout against the expected literal.
func (r *Runner) outputCheck(ctx context.Context, ex domain.Example) domain.CheckResult {
	script := ex.Path(r.config.GetExamplesRoot())

	cmd := exec.CommandContext(ctx, r.interpreter(), "-f", script)
	cmd.Stdin = strings.NewReader(ex.Stdin)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()

	result := domain.CheckResult{
		Example:  ex,
		Output:   stdout.String(),
		ExitCode: exitCode(cmd, err),
		Duration: time.Since(start),
	}
	if err != nil {
		result.Outcome = domain.OutcomeFail
		result.Err = fmt.Errorf("gvpr -f %s: %w (stderr: %s)", ex.Name, err, strings.TrimSpace(stderr.String()))
		return result
	}

	if ok, diff := compareOutput(ex.Want, stdout.String()); !ok {
		result.Outcome = domain.OutcomeFail
		result.Err = fmt.Errorf("unexpected %s output (-want +got):\n%s", ex.Name, diff)
		return result
	}

	result.Outcome = domain.OutcomePass
	return result
}

func (r *Runner) interpreter() string {
	if r.caps.InterpreterPath != "" {
		return r.caps.InterpreterPath
	}
	return config.InterpreterName
}

// exitCode extracts the child's exit code; -1 when the process never ran.
func exitCode(cmd *exec.Cmd, err error) int {
	if cmd.ProcessState != nil {
		return cmd.ProcessState.ExitCode()
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
