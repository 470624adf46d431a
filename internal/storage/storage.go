package storage

import (
	"time"

	"gvcheck/internal/domain"
)

// Storage persists and loads check run results (e.g. for the fails viewer).
type Storage interface {
	Save(results []domain.CheckResult, duration time.Duration, jobs int) error
	Load() (*domain.RunOutput, error)
	// SaveOutput writes the full output (e.g. after the viewer marks
	// failures as reviewed).
	SaveOutput(output *domain.RunOutput) error
}

// BuildOutput summarizes raw check results into the persisted run shape.
func BuildOutput(results []domain.CheckResult, duration time.Duration, jobs int) *domain.RunOutput {
	var passed, failed, skipped int
	var failures []domain.CheckFailure
	var skips []domain.CheckSkip

	for _, r := range results {
		switch r.Outcome {
		case domain.OutcomePass:
			passed++
		case domain.OutcomeFail:
			failed++
			message := ""
			if r.Err != nil {
				message = r.Err.Error()
			}
			failures = append(failures, domain.CheckFailure{
				Name:     r.Example.Name,
				Kind:     string(r.Example.Kind),
				Path:     r.Example.RelPath,
				ExitCode: r.ExitCode,
				Message:  message,
				Output:   r.Output,
			})
		case domain.OutcomeSkip:
			skipped++
			skips = append(skips, domain.CheckSkip{
				Name:   r.Example.Name,
				Kind:   string(r.Example.Kind),
				Reason: r.SkipReason,
			})
		}
	}

	return &domain.RunOutput{
		Meta: domain.RunMeta{
			TotalChecks:     len(results),
			PassedChecks:    passed,
			FailedChecks:    failed,
			SkippedChecks:   skipped,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Jobs:            jobs,
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Failures: failures,
		Skips:    skips,
	}
}
