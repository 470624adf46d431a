package execution

import "gvcheck/internal/domain"

// Scheduler distributes checks across workers
type Scheduler interface {
	Schedule(examples []domain.Example, workerCount int) [][]domain.Example
}

// RoundRobinScheduler distributes checks evenly across workers
type RoundRobinScheduler struct{}

// NewRoundRobinScheduler creates a new RoundRobinScheduler
func NewRoundRobinScheduler() *RoundRobinScheduler {
	return &RoundRobinScheduler{}
}

// Schedule distributes checks evenly across workers using round-robin
func (s *RoundRobinScheduler) Schedule(examples []domain.Example, workerCount int) [][]domain.Example {
	if workerCount <= 0 {
		workerCount = 1
	}

	distribution := make([][]domain.Example, workerCount)
	for i := range distribution {
		distribution[i] = make([]domain.Example, 0)
	}

	for i, ex := range examples {
		workerIndex := i % workerCount
		distribution[workerIndex] = append(distribution[workerIndex], ex)
	}

	return distribution
}
