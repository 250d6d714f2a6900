package domain

type SaleResult struct {
	SaleCommission      float64 // always deducted from the seller's proceeds
	TransferTax         float64 // ITBI on the resale price
	DeedFee             float64
	RegistryFee         float64
	TotalTransferCosts  float64
	SellerTransferCosts float64 // zero when the buyer bears them
	Payer               CostPayer
	NetProceeds         float64
	GrossProfit         float64 // may be negative: a loss, not an error
	CapitalGainsTax     float64 // 15% on positive gross profit only
	NetProfit           float64
}

// ReturnMetrics carries the headline investment metrics. Nil means the
// metric is not applicable for this scenario (zero denominator, or an IRR
// series with no solvable rate).
type ReturnMetrics struct {
	ROI       *float64 `json:",omitempty"` // % on total asset cost
	ROE       *float64 `json:",omitempty"` // % on capital actually deployed
	AnnualIRR *float64 `json:",omitempty"` // annualized %, from monthly flows
}
