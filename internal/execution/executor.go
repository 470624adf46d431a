package execution

import (
	"context"
	"time"

	"gvcheck/internal/domain"
)

// Executor runs a batch of checks and returns their results
type Executor interface {
	Execute(ctx context.Context, examples []domain.Example) ([]domain.CheckResult, time.Duration, error)
}
