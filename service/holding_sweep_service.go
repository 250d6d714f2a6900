package service

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"

	"auction-valuator/domain"
)

type HoldingSweepService struct {
	simulations *SimulationService
	log         zerolog.Logger
}

func NewHoldingSweepService(simulations *SimulationService, log zerolog.Logger) *HoldingSweepService {
	return &HoldingSweepService{simulations: simulations, log: log}
}

// Sweep evaluates the same deal across a range of holding periods and
// recommends one. Longer holdings accumulate interest but barely move the
// fixed taxes, so the trade-off is genuinely scenario dependent.
func (s *HoldingSweepService) Sweep(input domain.HoldingSweepInput) (domain.HoldingSweepResult, error) {
	if input.MinHoldingMonths <= 0 || input.MaxHoldingMonths <= 0 {
		return domain.HoldingSweepResult{}, errors.New("holding range bounds must be greater than zero")
	}
	if input.MinHoldingMonths > input.MaxHoldingMonths {
		return domain.HoldingSweepResult{}, errors.New("minimum holding period greater than maximum")
	}
	if input.MaxHoldingMonths > MaxHoldingMonths {
		return domain.HoldingSweepResult{}, fmt.Errorf("maximum holding period exceeds the limit of %d months", MaxHoldingMonths)
	}
	if input.MaxHoldingMonths-input.MinHoldingMonths > MaxSweepRangeMonths {
		return domain.HoldingSweepResult{}, fmt.Errorf("holding range exceeds the maximum of %d months", MaxSweepRangeMonths)
	}

	preferences := map[string]bool{
		"maximize_profit": true,
		"maximize_irr":    true,
		"balanced":        true,
	}
	if !preferences[input.Preference] {
		return domain.HoldingSweepResult{}, errors.New("invalid preference")
	}

	scenarios := []domain.HoldingScenario{}
	for months := input.MinHoldingMonths; months <= input.MaxHoldingMonths; months++ {
		scenario := input.Simulation
		scenario.HoldingMonths = months

		result, err := s.simulations.Simulate(scenario)
		if err != nil {
			s.log.Warn().Err(err).Int("months", months).Msg("skipping holding period")
			continue
		}

		scenarios = append(scenarios, domain.HoldingScenario{
			HoldingMonths: months,
			NetProfit:     result.Sale.NetProfit,
			AnnualIRR:     result.Metrics.AnnualIRR,
		})
	}

	if len(scenarios) == 0 {
		return domain.HoldingSweepResult{}, errors.New("no valid holding period in the requested range")
	}

	s.scoreScenarios(scenarios, input)
	sortScenariosByScore(scenarios)

	return domain.HoldingSweepResult{
		RecommendedMonths: scenarios[0].HoldingMonths,
		Scenarios:         scenarios,
	}, nil
}

// scoreScenarios normalizes each axis over the observed range to a 0-10
// score and blends them with the preference weights.
func (s *HoldingSweepService) scoreScenarios(scenarios []domain.HoldingScenario, input domain.HoldingSweepInput) {
	profits := make([]float64, len(scenarios))
	for i, sc := range scenarios {
		profits[i] = sc.NetProfit
	}
	minProfit, maxProfit := floats.Min(profits), floats.Max(profits)

	irrs := []float64{}
	for _, sc := range scenarios {
		if sc.AnnualIRR != nil {
			irrs = append(irrs, *sc.AnnualIRR)
		}
	}
	var minIRR, maxIRR float64
	if len(irrs) > 0 {
		minIRR, maxIRR = floats.Min(irrs), floats.Max(irrs)
	}

	monthSpan := float64(input.MaxHoldingMonths - input.MinHoldingMonths)

	for i := range scenarios {
		profitScore := normalizedScore(scenarios[i].NetProfit, minProfit, maxProfit)

		irrScore := 0.0
		if scenarios[i].AnnualIRR != nil {
			irrScore = normalizedScore(*scenarios[i].AnnualIRR, minIRR, maxIRR)
		}

		timeScore := 10.0
		if monthSpan > 0 {
			timeScore = 10.0 * (1.0 - float64(scenarios[i].HoldingMonths-input.MinHoldingMonths)/monthSpan)
		}

		var score float64
		switch input.Preference {
		case "maximize_profit":
			score = 0.6*profitScore + 0.2*irrScore + 0.2*timeScore
		case "maximize_irr":
			score = 0.2*profitScore + 0.6*irrScore + 0.2*timeScore
		case "balanced":
			score = 0.4*profitScore + 0.4*irrScore + 0.2*timeScore
		}

		scenarios[i].Score = math.Round(score*100) / 100
		scenarios[i].Reason = sweepReason(input.Preference)
	}
}

func normalizedScore(value, min, max float64) float64 {
	if max-min <= 0 {
		return 10.0
	}
	return 10.0 * (value - min) / (max - min)
}

func sortScenariosByScore(scenarios []domain.HoldingScenario) {
	sort.Slice(scenarios, func(i, j int) bool {
		return scenarios[i].Score > scenarios[j].Score
	})
}

func sweepReason(preference string) string {
	switch preference {
	case "maximize_profit":
		return "Holding period optimized for absolute net profit"
	case "maximize_irr":
		return "Holding period optimized for annualized return rate"
	case "balanced":
		return "Balance between net profit and annualized return"
	}
	return "Recommendation based on the provided parameters"
}
