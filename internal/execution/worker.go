package execution

import (
	"context"
	"sync"
	"time"

	"gvcheck/internal/config"
	"gvcheck/internal/domain"
	"gvcheck/internal/ui"
)

// WorkerPool manages a pool of workers for parallel check execution
type WorkerPool struct {
	config    *config.Config
	runner    *Runner
	scheduler Scheduler
	progress  *ui.ProgressBar
}

// NewWorkerPool creates a new WorkerPool
func NewWorkerPool(cfg *config.Config, runner *Runner, scheduler Scheduler) *WorkerPool {
	return &WorkerPool{
		config:    cfg,
		runner:    runner,
		scheduler: scheduler,
	}
}

// SetProgress sets the progress bar for the worker pool
func (wp *WorkerPool) SetProgress(progress *ui.ProgressBar) {
	wp.progress = progress
}

// Execute runs all checks in parallel (no fail-fast).
func (wp *WorkerPool) Execute(ctx context.Context, examples []domain.Example) ([]domain.CheckResult, time.Duration, error) {
	return wp.ExecuteWithOptions(ctx, examples, false)
}

// ExecuteWithOptions runs checks with optional fail-fast (stop on first failure).
func (wp *WorkerPool) ExecuteWithOptions(ctx context.Context, examples []domain.Example, failFast bool) ([]domain.CheckResult, time.Duration, error) {
	if len(examples) == 0 {
		return nil, 0, nil
	}
	if !failFast {
		return wp.executeAll(ctx, examples)
	}
	return wp.executeFailFast(ctx, examples)
}

func (wp *WorkerPool) executeAll(ctx context.Context, examples []domain.Example) ([]domain.CheckResult, time.Duration, error) {
	queue := make(chan domain.Example, len(examples))
	results := make(chan domain.CheckResult, len(examples))
	for _, ex := range examples {
		queue <- ex
	}
	close(queue)

	var mu sync.Mutex
	var completed, passed, failed, skipped int
	startTime := time.Now()
	workerCount := wp.config.Jobs
	if workerCount <= 0 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	for i := 1; i <= workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ex := range queue {
				result := wp.runner.Run(ctx, ex)
				results <- result
				mu.Lock()
				completed++
				switch result.Outcome {
				case domain.OutcomePass:
					passed++
				case domain.OutcomeFail:
					failed++
				case domain.OutcomeSkip:
					skipped++
				}
				if wp.progress != nil {
					wp.progress.Update(completed, passed, failed, skipped)
				}
				mu.Unlock()
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var allResults []domain.CheckResult
	for result := range results {
		allResults = append(allResults, result)
	}
	if wp.progress != nil {
		wp.progress.Finish()
	}
	return allResults, time.Since(startTime), nil
}

func (wp *WorkerPool) executeFailFast(ctx context.Context, examples []domain.Example) ([]domain.CheckResult, time.Duration, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	queue := make(chan domain.Example, 1)
	results := make(chan domain.CheckResult, len(examples))

	go func() {
		defer close(queue)
		for _, ex := range examples {
			select {
			case <-ctx.Done():
				return
			case queue <- ex:
			}
		}
	}()

	var mu sync.Mutex
	var completed, passed, failed, skipped int
	var seenFailure bool
	startTime := time.Now()
	workerCount := wp.config.Jobs
	if workerCount <= 0 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	for i := 1; i <= workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ex := range queue {
				result := wp.runner.Run(ctx, ex)
				mu.Lock()
				done := seenFailure
				mu.Unlock()
				if done {
					continue
				}
				results <- result
				mu.Lock()
				completed++
				switch result.Outcome {
				case domain.OutcomePass:
					passed++
				case domain.OutcomeFail:
					failed++
				case domain.OutcomeSkip:
					skipped++
				}
				if wp.progress != nil {
					wp.progress.Update(completed, passed, failed, skipped)
				}
				if result.Outcome == domain.OutcomeFail {
					seenFailure = true
					cancel()
				}
				mu.Unlock()
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var allResults []domain.CheckResult
	for result := range results {
		allResults = append(allResults, result)
	}
	if wp.progress != nil {
		wp.progress.Finish()
	}
	return allResults, time.Since(startTime), nil
}
