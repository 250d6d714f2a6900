package repository

import (
	"sync"

	"auction-valuator/domain"
)

// SimulationRepositoryMemory is an in-memory implementation of
// SimulationRepository.
type SimulationRepositoryMemory struct {
	mu   sync.Mutex
	runs []domain.SimulationResult
}

// NewSimulationRepositoryMemory creates a new in-memory audit repository.
func NewSimulationRepositoryMemory() *SimulationRepositoryMemory {
	return &SimulationRepositoryMemory{
		runs: []domain.SimulationResult{},
	}
}

// Save appends the run to the in-memory trail.
func (r *SimulationRepositoryMemory) Save(
	input domain.SimulationInput,
	result domain.SimulationResult,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs = append(r.runs, result)
	return nil
}

// Count reports how many runs have been recorded.
func (r *SimulationRepositoryMemory) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.runs)
}
