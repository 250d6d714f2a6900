package service

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats/scalar"

	"auction-valuator/domain"
	"auction-valuator/repository"
)

type SimulationService struct {
	repo    repository.SimulationRepository
	cache   repository.CacheRepository
	advisor *AdvisorService
	log     zerolog.Logger
}

func NewSimulationService(
	repo repository.SimulationRepository,
	cache repository.CacheRepository,
	log zerolog.Logger,
) *SimulationService {
	return &SimulationService{
		repo:    repo,
		cache:   cache,
		advisor: NewAdvisorService(log),
		log:     log,
	}
}

// Simulate validates the input and runs the five-stage pipeline:
// acquisition costs, capital split, loan simulation, sale settlement,
// return metrics. The stages are pure and strictly sequential; identical
// inputs always produce identical results, which is what makes the result
// cacheable.
func (s *SimulationService) Simulate(input domain.SimulationInput) (domain.SimulationResult, error) {
	warnings, err := validateInput(input)
	if err != nil {
		return domain.SimulationResult{}, err
	}

	key := simulationCacheKey(input)
	if cached, ok := s.cache.Get(key); ok {
		var result domain.SimulationResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return result, nil
		}
		s.log.Warn().Str("key", key).Msg("discarding undecodable cached simulation")
	}

	mode := input.Mode()
	payer := input.CostPayer
	if payer == "" {
		payer = domain.PayerSeller
	}

	acquisition := CalculateAcquisitionCosts(input.BidPrice, input.AuctioneerPct/100, input.ExtrasCost)
	capital := SplitCapital(input.BidPrice, input.DownPaymentPct/100, mode, acquisition)
	financing := SimulateFinancing(capital.FinancedAmount, input.AnnualRatePct/100, input.LoanTermMonths, input.HoldingMonths, mode)
	sale := CalculateSaleProfit(input.ResalePrice, capital.OwnCapital, financing.RemainingBalance, financing.InterestPaid, payer)

	capitalDeployed := capital.OwnCapital + financing.InterestPaid
	metrics := CalculateReturnMetrics(sale.NetProfit, acquisition.TotalAssetCost, capitalDeployed, input.HoldingMonths)

	cashFlow := buildCashFlowStatement(input.ResalePrice, capital, financing, sale)
	if !cashFlow.Reconciled {
		// The pipeline and the raw cash reconstruction disagree by more
		// than a cent. Surfaced as data, never swallowed.
		s.log.Error().
			Float64("difference", cashFlow.Difference).
			Msg("simulation failed cash-flow reconciliation")
		warnings = append(warnings, fmt.Sprintf(
			"cash-flow reconciliation off by %.4f; review the scenario", cashFlow.Difference))
	}

	result := domain.SimulationResult{
		Input:       input,
		Acquisition: acquisition,
		Capital:     capital,
		Financing:   financing,
		Sale:        sale,
		Metrics:     metrics,
		Breakdown:   buildBreakdown(input.BidPrice, acquisition, financing, sale),
		CashFlow:    cashFlow,
		Warnings:    warnings,
	}
	result.Explanation = s.advisor.ExplainSimulation(result)

	if encoded, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(key, string(encoded)); err != nil {
			s.log.Warn().Err(err).Msg("failed to cache simulation result")
		}
	}

	// Audit trail only; a failed save must not fail the computation.
	if err := s.repo.Save(input, result); err != nil {
		s.log.Warn().Err(err).Msg("failed to record simulation run")
	}

	return result, nil
}

func validateInput(input domain.SimulationInput) ([]string, error) {
	if input.BidPrice <= 0 {
		return nil, errors.New("bid price must be greater than zero")
	}
	if input.BidPrice > MaxBidAmount {
		return nil, fmt.Errorf("bid price exceeds the maximum of %.2f", float64(MaxBidAmount))
	}
	if input.HoldingMonths <= 0 {
		return nil, errors.New("holding period must be greater than zero")
	}
	if input.HoldingMonths > MaxHoldingMonths {
		return nil, fmt.Errorf("holding period exceeds the maximum of %d months", MaxHoldingMonths)
	}
	if input.DownPaymentPct < 0 || input.DownPaymentPct > 100 {
		return nil, errors.New("down payment percentage must be between 0 and 100")
	}
	if !validAuctioneerTier(input.AuctioneerPct) {
		return nil, fmt.Errorf("auctioneer commission must be one of %v", AuctioneerTiers)
	}
	if input.ExtrasCost < 0 {
		return nil, errors.New("extra costs cannot be negative")
	}
	if input.ResalePrice < 0 {
		return nil, errors.New("resale price cannot be negative")
	}
	if input.CostPayer != "" && input.CostPayer != domain.PayerSeller && input.CostPayer != domain.PayerBuyer {
		return nil, fmt.Errorf("cost payer must be %q or %q", domain.PayerSeller, domain.PayerBuyer)
	}

	if input.ConsiderInterest {
		if input.AnnualRatePct < 0 {
			return nil, errors.New("annual interest rate cannot be negative")
		}
		if input.AnnualRatePct > MaxAnnualRatePct {
			return nil, fmt.Errorf("annual interest rate exceeds the maximum of %.2f%%", float64(MaxAnnualRatePct))
		}
		if input.LoanTermMonths <= 0 {
			return nil, errors.New("loan term must be greater than zero")
		}
		if input.LoanTermMonths > MaxLoanTermMonths {
			return nil, fmt.Errorf("loan term exceeds the maximum of %d months", MaxLoanTermMonths)
		}
	}

	var warnings []string
	if input.ResalePrice < input.BidPrice {
		warnings = append(warnings, "resale price is below the winning bid; the operation is likely a loss")
	}
	return warnings, nil
}

func validAuctioneerTier(pct float64) bool {
	for _, tier := range AuctioneerTiers {
		if pct == tier {
			return true
		}
	}
	return false
}

func buildCashFlowStatement(resale float64, capital domain.CapitalStructure, financing domain.LoanSchedule, sale domain.SaleResult) domain.CashFlowStatement {
	outflows := capital.OwnCapital + financing.InterestPaid
	inflows := resale - sale.SaleCommission - sale.SellerTransferCosts - financing.RemainingBalance
	reconstructed := inflows - outflows - sale.CapitalGainsTax

	diff := math.Abs(reconstructed - sale.NetProfit)

	return domain.CashFlowStatement{
		OwnCapital:          capital.OwnCapital,
		InterestPaid:        financing.InterestPaid,
		TotalOutflows:       outflows,
		ResalePrice:         resale,
		SaleCommission:      sale.SaleCommission,
		SellerTransferCosts: sale.SellerTransferCosts,
		LoanPayoff:          financing.RemainingBalance,
		TotalInflows:        inflows,
		GrossProfit:         sale.GrossProfit,
		CapitalGainsTax:     sale.CapitalGainsTax,
		NetProfit:           sale.NetProfit,
		Difference:          diff,
		Reconciled:          scalar.EqualWithinAbs(reconstructed, sale.NetProfit, ReconcileTolerance),
	}
}

func buildBreakdown(bid float64, acquisition domain.AcquisitionCosts, financing domain.LoanSchedule, sale domain.SaleResult) []domain.BreakdownLine {
	return []domain.BreakdownLine{
		{Category: "Winning bid", Amount: bid},
		{Category: "Transfer tax (4%) - acquisition", Amount: acquisition.TransferTax},
		{Category: "Deed fee (3%) - acquisition", Amount: acquisition.DeedFee},
		{Category: "Fund contribution (1%)", Amount: acquisition.FundFee},
		{Category: "Registry fee (3%) - acquisition", Amount: acquisition.RegistryFee},
		{Category: "Auctioneer commission", Amount: acquisition.AuctioneerFee},
		{Category: "Renovation and extras", Amount: acquisition.Extras},
		{Category: "Installments paid during holding", Amount: financing.TotalPaid},
		{Category: "Loan balance settled at sale", Amount: financing.RemainingBalance},
		{Category: "Sale commission (5%)", Amount: sale.SaleCommission},
		{Category: "Transfer costs at sale (seller share)", Amount: sale.SellerTransferCosts},
		{Category: "Capital gains tax", Amount: sale.CapitalGainsTax},
	}
}

func simulationCacheKey(input domain.SimulationInput) string {
	encoded, err := json.Marshal(input)
	if err != nil {
		return fmt.Sprintf("sim:%+v", input)
	}
	return fmt.Sprintf("sim:%x", sha256.Sum256(encoded))
}
