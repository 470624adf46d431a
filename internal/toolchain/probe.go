package toolchain

import (
	"context"
	"errors"
	"os/exec"

	"golang.org/x/sync/errgroup"

	"gvcheck/internal/config"
)

// Availability is the tri-state result of probing for an external tool.
type Availability int

const (
	// Unknown means the probe could not determine availability (for
	// example a permission error while searching PATH).
	Unknown Availability = iota
	// Available means the tool was found on the search path.
	Available
	// Unavailable means the tool is definitely not on the search path.
	Unavailable
)

// String returns a human-readable label for the availability state.
func (a Availability) String() string {
	switch a {
	case Available:
		return "available"
	case Unavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Capabilities reports which external tools the checks can use. It is
// produced once before dispatching checks; check logic consumes it instead
// of probing the search path inline.
type Capabilities struct {
	Compiler        Availability
	CompilerPath    string
	Interpreter     Availability
	InterpreterPath string
}

// Probe looks up the configured compiler and the GVPR interpreter on the
// search path. Both lookups run concurrently. A missing compiler is
// informational only: compile checks still attempt to spawn it and surface
// the spawn error as a failure.
func Probe(ctx context.Context, cfg *config.Config) Capabilities {
	var caps Capabilities

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		caps.Compiler, caps.CompilerPath = lookup(cfg.CompilerPath)
		return nil
	})
	g.Go(func() error {
		caps.Interpreter, caps.InterpreterPath = lookup(config.InterpreterName)
		return nil
	})
	g.Wait()

	return caps
}

func lookup(name string) (Availability, string) {
	path, err := exec.LookPath(name)
	if err == nil {
		return Available, path
	}
	if errors.Is(err, exec.ErrNotFound) {
		return Unavailable, ""
	}
	return Unknown, ""
}
