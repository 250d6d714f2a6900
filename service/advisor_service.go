package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"auction-valuator/domain"
)

// AdvisorService turns a simulation into a short plain-language summary.
// With OPENAI_API_KEY set it asks the model; otherwise it falls back to a
// deterministic explanation built from the numbers themselves.
type AdvisorService struct {
	apiKey     string
	apiURL     string
	enabled    bool
	httpClient *http.Client
	log        zerolog.Logger
}

type openAIRequest struct {
	Model     string          `json:"model"`
	Messages  []openAIMessage `json:"messages"`
	MaxTokens int             `json:"max_tokens,omitempty"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
}

func NewAdvisorService(log zerolog.Logger) *AdvisorService {
	apiKey := os.Getenv("OPENAI_API_KEY")

	return &AdvisorService{
		apiKey:  apiKey,
		apiURL:  "https://api.openai.com/v1/chat/completions",
		enabled: apiKey != "",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

func (s *AdvisorService) ExplainSimulation(result domain.SimulationResult) string {
	if !s.enabled {
		return s.fallbackExplanation(result)
	}

	prompt := fmt.Sprintf(`Analyze this real-estate auction investment simulation and produce a clear, realistic summary for the investor.

SCENARIO:
- Winning bid: %.2f, estimated resale: %.2f after %d months
- Total acquisition cost (bid + taxes + fees + extras): %.2f
- Own capital invested: %.2f, financed: %.2f
- Interest paid during the holding period: %.2f, loan balance settled at sale: %.2f
- Gross profit: %.2f, capital gains tax: %.2f, net profit: %.2f

INSTRUCTIONS:
1. State plainly whether the operation is profitable and how solid the margin looks.
2. Point out the single largest cost eating into the result.
3. Mention that the loan payoff and sale commission are already deducted from the net profit.
4. Keep it to 3-4 sentences, factual, no hype.`,
		result.Input.BidPrice, result.Input.ResalePrice, result.Input.HoldingMonths,
		result.Acquisition.TotalAssetCost,
		result.Capital.OwnCapital, result.Capital.FinancedAmount,
		result.Financing.InterestPaid, result.Financing.RemainingBalance,
		result.Sale.GrossProfit, result.Sale.CapitalGainsTax, result.Sale.NetProfit)

	explanation, err := s.callLLM(prompt)
	if err != nil {
		s.log.Warn().Err(err).Msg("advisor call failed, using fallback explanation")
		return s.fallbackExplanation(result)
	}
	return explanation
}

func (s *AdvisorService) fallbackExplanation(result domain.SimulationResult) string {
	if result.Capital.FinancedAmount == 0 {
		return fmt.Sprintf(
			"Full cash purchase: %.2f of own capital covers the bid, taxes, fees and extras. "+
				"After the sale commission%s, the operation nets %.2f.",
			result.Capital.OwnCapital,
			sellerCostsClause(result.Sale),
			result.Sale.NetProfit)
	}

	return fmt.Sprintf(
		"During the %d-month holding period you pay %d installments of %.2f, of which %.2f is interest (the real cost) "+
			"and %.2f amortizes the debt. At the sale, the remaining balance of %.2f is settled out of the proceeds%s. "+
			"All of that is already deducted from the net profit of %.2f.",
		result.Input.HoldingMonths, result.Input.HoldingMonths, result.Financing.MonthlyPayment,
		result.Financing.InterestPaid, result.Financing.PrincipalAmortized,
		result.Financing.RemainingBalance,
		sellerCostsClause(result.Sale),
		result.Sale.NetProfit)
}

func sellerCostsClause(sale domain.SaleResult) string {
	if sale.Payer == domain.PayerBuyer {
		return " (the buyer bears the transfer costs)"
	}
	return " along with the transfer costs"
}

func (s *AdvisorService) callLLM(prompt string) (string, error) {
	reqBody := openAIRequest{
		Model: "gpt-4o-mini",
		Messages: []openAIMessage{
			{
				Role:    "system",
				Content: "You are a financial analyst specialized in real-estate auction investments. You explain simulation results clearly and factually, always grounding statements in the provided numbers.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens: 300,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("advisor API error (status %d): %s", resp.StatusCode, string(body))
	}

	var parsed openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("empty advisor response")
	}
	return parsed.Choices[0].Message.Content, nil
}
