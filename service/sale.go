package service

import "auction-valuator/domain"

// CalculateSaleProfit settles the resale: commission, transfer costs,
// loan payoff, capital-gains tax. The commission always comes out of the
// seller's proceeds; the transfer costs only when the seller bears them.
// A negative gross profit is a loss, not an error, and carries no tax.
func CalculateSaleProfit(resale, ownCapital, loanBalance, interestPaid float64, payer domain.CostPayer) domain.SaleResult {
	commission := resale * SaleCommissionRate

	transferTax := resale * TransferTaxRate
	deedFee := resale * DeedFeeRate
	registryFee := resale * RegistryFeeRate
	totalTransfer := transferTax + deedFee + registryFee

	var netProceeds, sellerShare float64
	switch payer {
	case domain.PayerBuyer:
		netProceeds = resale - commission - loanBalance
		sellerShare = 0
	default:
		netProceeds = resale - commission - totalTransfer - loanBalance
		sellerShare = totalTransfer
	}

	grossProfit := netProceeds - ownCapital - interestPaid

	var tax float64
	if grossProfit > 0 {
		tax = grossProfit * CapitalGainsRate
	}

	return domain.SaleResult{
		SaleCommission:      commission,
		TransferTax:         transferTax,
		DeedFee:             deedFee,
		RegistryFee:         registryFee,
		TotalTransferCosts:  totalTransfer,
		SellerTransferCosts: sellerShare,
		Payer:               payer,
		NetProceeds:         netProceeds,
		GrossProfit:         grossProfit,
		CapitalGainsTax:     tax,
		NetProfit:           grossProfit - tax,
	}
}
