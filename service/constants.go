package service

// Fixed rates applied by the pipeline. Acquisition-side charges apply to
// the bid price, sale-side charges to the resale price.
const (
	TransferTaxRate    = 0.04 // ITBI
	DeedFeeRate        = 0.03
	FundFeeRate        = 0.01
	RegistryFeeRate    = 0.03
	SaleCommissionRate = 0.05
	CapitalGainsRate   = 0.15
)

const (
	MaxBidAmount        = 1_000_000_000.0
	MaxAnnualRatePct    = 1000.0
	MaxLoanTermMonths   = 600 // 50 years
	MaxHoldingMonths    = 600
	MaxSweepRangeMonths = 120 // widest holding-period sweep per request

	// Direct and reconstructed net profit may differ by float rounding;
	// anything past one cent is a real inconsistency.
	ReconcileTolerance = 0.01
)

// AuctioneerTiers are the commission percentages the auction houses work
// with. Anything else is a typo, not a negotiation.
var AuctioneerTiers = []float64{0, 5, 10}
