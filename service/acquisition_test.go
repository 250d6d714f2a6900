package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateAcquisitionCosts_ReferenceScenario(t *testing.T) {
	costs := CalculateAcquisitionCosts(87000, 0, 12000)

	assert.InDelta(t, 3480.0, costs.TransferTax, 0.001)
	assert.InDelta(t, 2610.0, costs.DeedFee, 0.001)
	assert.InDelta(t, 870.0, costs.FundFee, 0.001)
	assert.InDelta(t, 2610.0, costs.RegistryFee, 0.001)
	assert.InDelta(t, 9570.0, costs.TotalFees, 0.001)
	assert.Zero(t, costs.AuctioneerFee)
	assert.InDelta(t, 108570.0, costs.TotalAssetCost, 0.001)
}

func TestCalculateAcquisitionCosts_TotalIsSumOfParts(t *testing.T) {
	cases := []struct {
		name   string
		bid    float64
		rate   float64
		extras float64
	}{
		{"no commission no extras", 50000, 0, 0},
		{"five percent commission", 120000, 0.05, 8000},
		{"ten percent commission", 433221.57, 0.10, 1234.56},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			costs := CalculateAcquisitionCosts(tc.bid, tc.rate, tc.extras)

			sum := tc.bid + costs.TotalFees + costs.AuctioneerFee + tc.extras
			require.InDelta(t, sum, costs.TotalAssetCost, 1e-6)
			assert.GreaterOrEqual(t, costs.TotalAssetCost, tc.bid)
			assert.InDelta(t, costs.TransferTax+costs.DeedFee+costs.FundFee+costs.RegistryFee,
				costs.TotalFees, 1e-9)
		})
	}
}
