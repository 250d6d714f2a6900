package domain

// BreakdownLine is one row of the flat category -> amount table shown to
// the user. Amounts are raw values; formatting is the caller's problem.
type BreakdownLine struct {
	Category string
	Amount   float64
}

// CashFlowStatement reconstructs the operation as plain cash movements and
// double-checks the pipeline's net profit against them.
type CashFlowStatement struct {
	OwnCapital          float64
	InterestPaid        float64
	TotalOutflows       float64
	ResalePrice         float64
	SaleCommission      float64
	SellerTransferCosts float64
	LoanPayoff          float64
	TotalInflows        float64
	GrossProfit         float64
	CapitalGainsTax     float64
	NetProfit           float64
	Difference          float64 // |direct - reconstructed|
	Reconciled          bool    // Difference within one cent
}

// SimulationResult is everything one pipeline run produces.
type SimulationResult struct {
	Input       SimulationInput
	Acquisition AcquisitionCosts
	Capital     CapitalStructure
	Financing   LoanSchedule
	Sale        SaleResult
	Metrics     ReturnMetrics
	Breakdown   []BreakdownLine
	CashFlow    CashFlowStatement
	Warnings    []string `json:",omitempty"`
	Explanation string   `json:",omitempty"`
}
