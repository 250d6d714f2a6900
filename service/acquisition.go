package service

import "auction-valuator/domain"

// CalculateAcquisitionCosts derives every fee owed on the winning bid and
// the total cost of putting the asset on the books. auctioneerRate and the
// fee rates are fractions, not percentages.
func CalculateAcquisitionCosts(bid, auctioneerRate, extras float64) domain.AcquisitionCosts {
	transferTax := bid * TransferTaxRate
	deedFee := bid * DeedFeeRate
	fundFee := bid * FundFeeRate
	registryFee := bid * RegistryFeeRate

	totalFees := transferTax + deedFee + fundFee + registryFee
	auctioneerFee := bid * auctioneerRate

	return domain.AcquisitionCosts{
		TransferTax:    transferTax,
		DeedFee:        deedFee,
		FundFee:        fundFee,
		RegistryFee:    registryFee,
		TotalFees:      totalFees,
		AuctioneerFee:  auctioneerFee,
		Extras:         extras,
		TotalAssetCost: bid + totalFees + auctioneerFee + extras,
	}
}
