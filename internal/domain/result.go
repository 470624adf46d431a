package domain

import "time"

// Outcome classifies a finished check.
type Outcome string

const (
	OutcomePass Outcome = "pass"
	OutcomeFail Outcome = "fail"
	OutcomeSkip Outcome = "skip"
)

// CheckResult represents the result of running one example check.
type CheckResult struct {
	Example    Example
	Outcome    Outcome
	ExitCode   int           // exit code of the child process, -1 if it never ran
	Output     string        // combined output (captured stdout for output checks)
	SkipReason string        // set when Outcome is OutcomeSkip
	Err        error         // spawn error, non-zero exit or output mismatch
	Duration   time.Duration
}

// CheckFailure is the persisted detail for one failed check.
type CheckFailure struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Path     string `json:"path"`
	ExitCode int    `json:"exit_code"`
	Message  string `json:"message"`
	Output   string `json:"output,omitempty"`
	Resolved bool   `json:"resolved,omitempty"` // marked reviewed in the fails viewer
}

// CheckSkip is the persisted record of a check that was not executed.
type CheckSkip struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Reason string `json:"reason"`
}

// RunMeta contains metadata about a validation run.
type RunMeta struct {
	TotalChecks     int     `json:"total_checks"`
	PassedChecks    int     `json:"passed_checks"`
	FailedChecks    int     `json:"failed_checks"`
	SkippedChecks   int     `json:"skipped_checks"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Jobs            int     `json:"jobs"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the complete persisted result of a validation run.
type RunOutput struct {
	Meta     RunMeta        `json:"meta"`
	Failures []CheckFailure `json:"failures"`
	Skips    []CheckSkip    `json:"skips,omitempty"`
}
