package catalog

import (
	decimal "github.com/shopspring/decimal"
)

// PricingTier buckets a model by its derived per-token price.
type PricingTier string

const (
	TierFree     PricingTier = "free"     // derived price exactly 0
	TierBudget   PricingTier = "budget"   // 0 < price < 1e-6 USD/token
	TierStandard PricingTier = "standard" // 1e-6 <= price < 1e-5 USD/token
	TierPremium  PricingTier = "premium"  // price >= 1e-5 USD/token
)

// Tier upper bounds are exclusive: a derived price of exactly 1e-5 is
// premium, not standard.
var (
	tierBudgetUpperBound   = decimal.NewFromFloat(1e-6)
	tierStandardUpperBound = decimal.NewFromFloat(1e-5)

	millionTokens = decimal.NewFromInt(1_000_000)
)

// DerivedPrice is the canonical comparable price of a model: prompt cost
// per token plus completion cost per token, in USD. Absent or malformed
// pricing components count as zero.
func DerivedPrice(m *Model) decimal.Decimal {
	if m == nil || m.Pricing == nil {
		return decimal.Zero
	}
	return parseCost(m.Pricing.Prompt).Add(parseCost(m.Pricing.Completion))
}

// PricePerMillion converts the derived per-token price to USD per million
// tokens, the unit used by search ceilings and report payloads.
func PricePerMillion(m *Model) decimal.Decimal {
	return DerivedPrice(m).Mul(millionTokens)
}

// IsFree reports whether the derived price is exactly zero.
func IsFree(m *Model) bool {
	return DerivedPrice(m).IsZero()
}

// TierOf places a model in its pricing tier.
func TierOf(m *Model) PricingTier {
	price := DerivedPrice(m)
	switch {
	case price.IsZero():
		return TierFree
	case price.LessThan(tierBudgetUpperBound):
		return TierBudget
	case price.LessThan(tierStandardUpperBound):
		return TierStandard
	default:
		return TierPremium
	}
}

// EstimateCost returns the USD cost of serving the given number of
// requests, each consuming promptTokens prompt and completionTokens
// completion tokens.
func EstimateCost(m *Model, requests, promptTokens, completionTokens int64) decimal.Decimal {
	if m == nil || m.Pricing == nil {
		return decimal.Zero
	}
	perRequest := parseCost(m.Pricing.Prompt).Mul(decimal.NewFromInt(promptTokens)).
		Add(parseCost(m.Pricing.Completion).Mul(decimal.NewFromInt(completionTokens)))
	return perRequest.Mul(decimal.NewFromInt(requests))
}

func parseCost(raw string) decimal.Decimal {
	cost, err := decimal.NewFromString(raw)
	if err != nil || cost.IsNegative() {
		return decimal.Zero
	}
	return cost
}
