package service

import (
	"math"

	"auction-valuator/domain"
)

// SimulateFinancing runs a constant-payment (Price table) amortizing loan
// of the financed amount over termMonths and reports where it stands after
// holdingMonths, when the sale settles the remaining balance.
//
// The annual rate compounds monthly: r = (1+annual)^(1/12) - 1. Sign
// convention follows the borrower: the principal is received, payments and
// the balance are owed, and all outputs are reported as positive amounts.
func SimulateFinancing(financed, annualRate float64, termMonths, holdingMonths int, mode domain.FinancingMode) domain.LoanSchedule {
	if mode == domain.FinancingCash || financed == 0 {
		return domain.LoanSchedule{}
	}

	var payment, balance float64
	if annualRate == 0 {
		// Zero-rate limit of the annuity: a straight split.
		payment = financed / float64(termMonths)
		balance = financed - payment*float64(holdingMonths)
	} else {
		monthlyRate := math.Pow(1+annualRate, 1.0/12.0) - 1

		payment = financed * monthlyRate / (1 - math.Pow(1+monthlyRate, -float64(termMonths)))

		// Future value of the debt after holdingMonths fixed payments.
		growth := math.Pow(1+monthlyRate, float64(holdingMonths))
		balance = financed*growth - payment*(growth-1)/monthlyRate
	}

	// Floor at zero: float overshoot when the holding period reaches or
	// passes the full term must not turn into a negative debt.
	balance = math.Max(0, balance)

	totalPaid := payment * float64(holdingMonths)
	amortized := financed - balance

	return domain.LoanSchedule{
		MonthlyPayment:     payment,
		TotalPaid:          totalPaid,
		RemainingBalance:   balance,
		InterestPaid:       totalPaid - amortized,
		PrincipalAmortized: amortized,
	}
}
