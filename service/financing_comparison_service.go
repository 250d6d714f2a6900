package service

import (
	"errors"
	"math"

	"github.com/rs/zerolog"

	"auction-valuator/domain"
)

type FinancingComparisonService struct {
	simulations *SimulationService
	log         zerolog.Logger
}

func NewFinancingComparisonService(simulations *SimulationService, log zerolog.Logger) *FinancingComparisonService {
	return &FinancingComparisonService{simulations: simulations, log: log}
}

// Compare runs the deal twice, financed as configured and as a full cash
// purchase, and quantifies what each side gives up: cash avoids the
// interest bill, financing keeps capital free.
func (s *FinancingComparisonService) Compare(input domain.SimulationInput) (domain.FinancingComparison, error) {
	if !input.ConsiderInterest {
		return domain.FinancingComparison{}, errors.New("comparison requires a financed scenario; financing is disabled in the input")
	}

	financedInput := input

	cashInput := input
	cashInput.ConsiderInterest = false

	financed, err := s.simulations.Simulate(financedInput)
	if err != nil {
		return domain.FinancingComparison{}, err
	}
	cash, err := s.simulations.Simulate(cashInput)
	if err != nil {
		return domain.FinancingComparison{}, err
	}

	comparison := domain.FinancingComparison{
		Financed: outcomeOf(financed),
		Cash:     outcomeOf(cash),
	}
	comparison.Savings.NetProfitDelta = financed.Sale.NetProfit - cash.Sale.NetProfit
	comparison.Savings.InterestAvoided = financed.Financing.InterestPaid
	comparison.Savings.ExtraCashRequired = math.Max(0, cash.Capital.OwnCapital-financed.Capital.OwnCapital)

	if cash.Sale.NetProfit > financed.Sale.NetProfit {
		comparison.Recommendation = "Paying cash yields the higher net profit, at the cost of tying up more capital up front"
	} else {
		comparison.Recommendation = "Financing yields the higher net profit while keeping capital free for other deals"
	}

	return comparison, nil
}

func outcomeOf(result domain.SimulationResult) domain.FinancingOutcome {
	return domain.FinancingOutcome{
		NetProfit:    result.Sale.NetProfit,
		OwnCapital:   result.Capital.OwnCapital,
		InterestPaid: result.Financing.InterestPaid,
		ROE:          result.Metrics.ROE,
		AnnualIRR:    result.Metrics.AnnualIRR,
	}
}
