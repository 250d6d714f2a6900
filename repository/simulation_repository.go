package repository

import "auction-valuator/domain"

// SimulationRepository keeps an audit trail of computed runs. It is not a
// scenario store: nothing is ever read back into the pipeline.
type SimulationRepository interface {
	Save(input domain.SimulationInput, result domain.SimulationResult) error
}
