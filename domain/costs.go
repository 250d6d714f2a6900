package domain

type AcquisitionCosts struct {
	TransferTax    float64 // ITBI on the bid price
	DeedFee        float64
	FundFee        float64
	RegistryFee    float64
	TotalFees      float64
	AuctioneerFee  float64
	Extras         float64
	TotalAssetCost float64 // bid + fees + auctioneer commission + extras
}

type CapitalStructure struct {
	DownPayment    float64
	FinancedAmount float64 // bid - down payment
	OwnCapital     float64 // down payment + fees + commission + extras
}

// LoanSchedule summarizes a fixed-payment amortizing loan over the holding
// period. All fields are zero for cash purchases.
type LoanSchedule struct {
	MonthlyPayment     float64
	TotalPaid          float64 // payment * holding months
	RemainingBalance   float64 // debt settled out of the sale proceeds
	InterestPaid       float64
	PrincipalAmortized float64
}
