package domain

type HoldingSweepInput struct {
	Simulation       SimulationInput // HoldingMonths is ignored
	MinHoldingMonths int
	MaxHoldingMonths int
	Preference       string // "maximize_profit", "maximize_irr", "balanced"
}

type HoldingScenario struct {
	HoldingMonths int
	NetProfit     float64
	AnnualIRR     *float64 `json:",omitempty"`
	Score         float64
	Reason        string
}

type HoldingSweepResult struct {
	RecommendedMonths int
	Scenarios         []HoldingScenario
}

type FinancingOutcome struct {
	NetProfit    float64
	OwnCapital   float64
	InterestPaid float64
	ROE          *float64 `json:",omitempty"`
	AnnualIRR    *float64 `json:",omitempty"`
}

// FinancingComparison puts the configured financed scenario side by side
// with the same deal paid in full cash.
type FinancingComparison struct {
	Financed FinancingOutcome
	Cash     FinancingOutcome
	Savings  struct {
		NetProfitDelta    float64 // financed minus cash
		InterestAvoided   float64 // what cash saves in interest
		ExtraCashRequired float64 // extra own capital cash demands up front
	}
	Recommendation string
}
