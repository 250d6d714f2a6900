package service

import "auction-valuator/domain"

// SplitCapital splits the bid into down payment and financed amount and
// totals the buyer's own money in the deal. Cash purchases force the down
// payment to the full bid regardless of the configured fraction, so the
// financed amount is exactly zero.
func SplitCapital(bid, downFraction float64, mode domain.FinancingMode, costs domain.AcquisitionCosts) domain.CapitalStructure {
	if mode == domain.FinancingCash {
		downFraction = 1
	}

	downPayment := bid * downFraction

	return domain.CapitalStructure{
		DownPayment:    downPayment,
		FinancedAmount: bid - downPayment,
		OwnCapital:     downPayment + costs.TotalFees + costs.AuctioneerFee + costs.Extras,
	}
}
