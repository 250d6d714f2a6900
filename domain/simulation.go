package domain

// FinancingMode says how the acquisition is paid. It is resolved once at
// pipeline entry: when financing costs are not considered the purchase is
// treated as full cash, regardless of the configured down payment.
type FinancingMode string

const (
	FinancingMortgage FinancingMode = "financed"
	FinancingCash     FinancingMode = "cash"
)

// CostPayer says which party bears the resale-side transfer costs
// (transfer tax, deed and registry on the resale price). The sale
// commission is always borne by the seller.
type CostPayer string

const (
	PayerSeller CostPayer = "Vendedor"
	PayerBuyer  CostPayer = "Comprador"
)

type SimulationInput struct {
	BidPrice         float64
	ResalePrice      float64
	HoldingMonths    int
	DownPaymentPct   float64 // 0-100
	AuctioneerPct    float64 // one of 0, 5, 10
	ExtrasCost       float64 // renovation, outstanding debts, misc
	ConsiderInterest bool
	AnnualRatePct    float64 // nominal annual rate as a percentage
	LoanTermMonths   int
	CostPayer        CostPayer
}

// DefaultSimulationInput returns the reference scenario the product ships
// with: a R$87k winning bid resold at R$160k after a six month turnaround.
func DefaultSimulationInput() SimulationInput {
	return SimulationInput{
		BidPrice:         87000,
		ResalePrice:      160000,
		HoldingMonths:    6,
		DownPaymentPct:   20,
		AuctioneerPct:    0,
		ExtrasCost:       12000,
		ConsiderInterest: true,
		AnnualRatePct:    12,
		LoanTermMonths:   120,
		CostPayer:        PayerSeller,
	}
}

// Mode resolves the financing variant for this input.
func (in SimulationInput) Mode() FinancingMode {
	if !in.ConsiderInterest {
		return FinancingCash
	}
	return FinancingMortgage
}
