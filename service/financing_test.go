package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auction-valuator/domain"
)

func TestSimulateFinancing_ReferenceScenario(t *testing.T) {
	// 69600 financed at 12% a year (compounded monthly) over 120 months,
	// sold after 6.
	schedule := SimulateFinancing(69600, 0.12, 120, 6, domain.FinancingMortgage)

	assert.InDelta(t, 974.03, schedule.MonthlyPayment, 0.01)
	assert.InDelta(t, 5844.19, schedule.TotalPaid, 0.01)
	assert.InDelta(t, 67673.12, schedule.RemainingBalance, 0.01)
	assert.InDelta(t, 3917.31, schedule.InterestPaid, 0.01)
	assert.InDelta(t, 1926.88, schedule.PrincipalAmortized, 0.01)
}

func TestSimulateFinancing_CashModeIsAllZero(t *testing.T) {
	schedule := SimulateFinancing(69600, 0.12, 120, 6, domain.FinancingCash)
	assert.Equal(t, domain.LoanSchedule{}, schedule)
}

func TestSimulateFinancing_ZeroPrincipalIsAllZero(t *testing.T) {
	schedule := SimulateFinancing(0, 0.12, 120, 6, domain.FinancingMortgage)
	assert.Equal(t, domain.LoanSchedule{}, schedule)
}

func TestSimulateFinancing_ZeroRateSplitsEvenly(t *testing.T) {
	schedule := SimulateFinancing(50000, 0, 100, 6, domain.FinancingMortgage)

	require.InDelta(t, 500.0, schedule.MonthlyPayment, 1e-9)
	assert.InDelta(t, 3000.0, schedule.TotalPaid, 1e-9)
	assert.InDelta(t, 47000.0, schedule.RemainingBalance, 1e-9)
	assert.InDelta(t, 0.0, schedule.InterestPaid, 1e-9)
}

func TestSimulateFinancing_AmortizedPlusBalanceEqualsPrincipal(t *testing.T) {
	for _, holding := range []int{1, 6, 12, 60, 119, 120} {
		schedule := SimulateFinancing(69600, 0.12, 120, holding, domain.FinancingMortgage)
		assert.InDelta(t, 69600.0, schedule.PrincipalAmortized+schedule.RemainingBalance, 1e-6,
			"identity must hold for holding %d", holding)
	}
}

func TestSimulateFinancing_BalanceNeverIncreasesAndReachesZero(t *testing.T) {
	previous := 69600.0
	for holding := 1; holding <= 120; holding++ {
		schedule := SimulateFinancing(69600, 0.12, 120, holding, domain.FinancingMortgage)

		require.LessOrEqual(t, schedule.RemainingBalance, previous+1e-6,
			"balance grew at holding %d", holding)
		require.GreaterOrEqual(t, schedule.RemainingBalance, 0.0)
		previous = schedule.RemainingBalance
	}

	final := SimulateFinancing(69600, 0.12, 120, 120, domain.FinancingMortgage)
	assert.InDelta(t, 0.0, final.RemainingBalance, 0.01)
}

func TestSimulateFinancing_HoldingPastTermStaysAtZeroBalance(t *testing.T) {
	schedule := SimulateFinancing(69600, 0.12, 120, 150, domain.FinancingMortgage)
	assert.GreaterOrEqual(t, schedule.RemainingBalance, 0.0)
	assert.InDelta(t, 0.0, schedule.RemainingBalance, 0.01)
}
