package catalog

import (
	"sort"

	decimal "github.com/shopspring/decimal"
)

// Cost estimates assume a representative paid workload of 1,000 requests,
// each consuming 500 prompt and 500 completion tokens.
const (
	estimateRequests         = 1000
	estimatePromptTokens     = 500
	estimateCompletionTokens = 500
)

// maxReportAlternatives bounds the alternatives list.
const maxReportAlternatives = 5

// PricingAnalysis places the subject model on the pricing scale.
type PricingAnalysis struct {
	Tier                       PricingTier     `json:"tier"`
	PricePerMillion            decimal.Decimal `json:"pricePerMillion"`
	PromptPricePerMillion      decimal.Decimal `json:"promptPricePerMillion"`
	CompletionPricePerMillion  decimal.Decimal `json:"completionPricePerMillion"`
	EstimatedCostPer1KRequests decimal.Decimal `json:"estimatedCostPer1KRequests"`
}

// Alternative is a same-modality model from a different provider,
// annotated with its price distance from the subject.
type Alternative struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Provider        string          `json:"provider"`
	ContextLength   int             `json:"contextLength"`
	PricePerMillion decimal.Decimal `json:"pricePerMillion"`
	PriceDelta      decimal.Decimal `json:"priceDelta"`
}

// ReportResult is the full single-model report.
type ReportResult struct {
	Found           bool             `json:"found"`
	Query           string           `json:"query"`
	Model           *ModelDetail     `json:"model,omitempty"`
	PricingAnalysis *PricingAnalysis `json:"pricingAnalysis,omitempty"`
	Alternatives    []Alternative    `json:"alternatives,omitempty"`
	Suggestion      string           `json:"suggestion,omitempty"`
}

// Report resolves the subject with the lookup rule and builds its pricing
// analysis plus the closest-priced alternatives: models sharing the
// subject's modality string but owned by a different provider, ordered by
// absolute price distance, capped at five.
func Report(models []Model, modelID string) ReportResult {
	result := ReportResult{Query: modelID}
	subject := findModel(models, modelID)
	if subject == nil {
		result.Suggestion = lookupMissSuggestion
		return result
	}

	d := detail(subject)
	result.Found = true
	result.Model = &d

	subjectPrice := PricePerMillion(subject)
	result.PricingAnalysis = &PricingAnalysis{
		Tier:                       TierOf(subject),
		PricePerMillion:            subjectPrice,
		PromptPricePerMillion:      d.Pricing.PromptPerMillion,
		CompletionPricePerMillion:  d.Pricing.CompletionPerMillion,
		EstimatedCostPer1KRequests: EstimateCost(subject, estimateRequests, estimatePromptTokens, estimateCompletionTokens),
	}

	alternatives := make([]Alternative, 0)
	for i := range models {
		m := &models[i]
		if m.ID == subject.ID {
			continue
		}
		if m.Architecture.Modality != subject.Architecture.Modality {
			continue
		}
		if m.Provider() == subject.Provider() {
			continue
		}
		price := PricePerMillion(m)
		alternatives = append(alternatives, Alternative{
			ID:              m.ID,
			Name:            m.Name,
			Provider:        m.Provider(),
			ContextLength:   m.ContextLength,
			PricePerMillion: price,
			PriceDelta:      price.Sub(subjectPrice),
		})
	}

	sort.SliceStable(alternatives, func(i, j int) bool {
		return alternatives[i].PriceDelta.Abs().LessThan(alternatives[j].PriceDelta.Abs())
	})
	if len(alternatives) > maxReportAlternatives {
		alternatives = alternatives[:maxReportAlternatives]
	}
	result.Alternatives = alternatives

	return result
}
