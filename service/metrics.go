package service

import (
	"math"

	"auction-valuator/domain"
)

// CalculateReturnMetrics derives ROI, ROE and the annualized IRR.
//
// ROI relates net profit to the total asset cost, ROE to the capital that
// actually left the investor's pocket (own capital + interest paid). Both
// are nil when their denominator is zero. The IRR comes from the monthly
// series of the operation: the deployed capital out at month zero, nothing
// in between, capital plus profit back at the sale month.
func CalculateReturnMetrics(netProfit, totalAssetCost, capitalDeployed float64, holdingMonths int) domain.ReturnMetrics {
	var m domain.ReturnMetrics

	if totalAssetCost != 0 {
		roi := netProfit / totalAssetCost * 100
		m.ROI = &roi
	}
	if capitalDeployed != 0 {
		roe := netProfit / capitalDeployed * 100
		m.ROE = &roe
	}

	flows := make([]float64, holdingMonths+1)
	flows[0] = -capitalDeployed
	flows[holdingMonths] = capitalDeployed + netProfit

	if monthly, ok := internalRateOfReturn(flows); ok {
		annual := (math.Pow(1+monthly, 12) - 1) * 100
		if !math.IsNaN(annual) && !math.IsInf(annual, 0) {
			m.AnnualIRR = &annual
		}
	}

	return m
}
