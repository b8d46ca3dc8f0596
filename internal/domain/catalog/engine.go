// Package catalog holds the validated model catalog types and the pure
// query operations computed over a cached snapshot. Nothing in this
// package performs I/O; callers supply the snapshot.
package catalog

import (
	"sort"
	"strings"
	"time"

	decimal "github.com/shopspring/decimal"
)

// ModelSummary is the compact per-model payload shared by the list-style
// operations.
type ModelSummary struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Provider        string          `json:"provider"`
	ContextLength   int             `json:"contextLength"`
	Modality        string          `json:"modality"`
	PricePerMillion decimal.Decimal `json:"pricePerMillion"`
	Tier            PricingTier     `json:"tier"`
}

// ModelDetail is the full per-model payload used by lookup and report.
type ModelDetail struct {
	ID                  string       `json:"id"`
	Name                string       `json:"name"`
	Provider            string       `json:"provider"`
	Description         string       `json:"description,omitempty"`
	ContextLength       int          `json:"contextLength"`
	Modality            string       `json:"modality"`
	InputModalities     []string     `json:"inputModalities,omitempty"`
	SupportedParameters []string     `json:"supportedParameters,omitempty"`
	Pricing             PricingInfo  `json:"pricing"`
	Created             int64        `json:"created,omitempty"`
}

// PricingInfo summarises a model's costs in USD per million tokens.
type PricingInfo struct {
	PromptPerMillion     decimal.Decimal `json:"promptPerMillion"`
	CompletionPerMillion decimal.Decimal `json:"completionPerMillion"`
	PricePerMillion      decimal.Decimal `json:"pricePerMillion"`
	Tier                 PricingTier     `json:"tier"`
}

func summarize(m *Model) ModelSummary {
	return ModelSummary{
		ID:              m.ID,
		Name:            m.Name,
		Provider:        m.Provider(),
		ContextLength:   m.ContextLength,
		Modality:        m.Architecture.Modality,
		PricePerMillion: PricePerMillion(m),
		Tier:            TierOf(m),
	}
}

func detail(m *Model) ModelDetail {
	var prompt, completion decimal.Decimal
	if m.Pricing != nil {
		prompt = parseCost(m.Pricing.Prompt).Mul(millionTokens)
		completion = parseCost(m.Pricing.Completion).Mul(millionTokens)
	}
	return ModelDetail{
		ID:                  m.ID,
		Name:                m.Name,
		Provider:            m.Provider(),
		Description:         m.Description,
		ContextLength:       m.ContextLength,
		Modality:            m.Architecture.Modality,
		InputModalities:     m.Architecture.InputModalities,
		SupportedParameters: m.SupportedParameters,
		Pricing: PricingInfo{
			PromptPerMillion:     prompt,
			CompletionPerMillion: completion,
			PricePerMillion:      PricePerMillion(m),
			Tier:                 TierOf(m),
		},
		Created: m.Created,
	}
}

// OverviewResult aggregates the whole catalog.
type OverviewResult struct {
	TotalModels          int            `json:"totalModels"`
	Providers            []string       `json:"providers"`
	ProviderCount        int            `json:"providerCount"`
	FreeModels           int            `json:"freeModels"`
	PaidModels           int            `json:"paidModels"`
	AverageContextLength int            `json:"averageContextLength"`
	Modalities           map[string]int `json:"modalities"`
	DataSource           string         `json:"dataSource"`
	FetchedAt            time.Time      `json:"fetchedAt"`
}

// Overview computes catalog-wide aggregates. An empty catalog yields a
// zero average context length rather than a division fault.
func Overview(snap Snapshot) OverviewResult {
	providerSet := make(map[string]struct{})
	modalities := make(map[string]int)
	free, paid, contextSum := 0, 0, 0

	for i := range snap.Models {
		m := &snap.Models[i]
		providerSet[m.Provider()] = struct{}{}
		modalities[m.Architecture.Modality]++
		contextSum += m.ContextLength
		if IsFree(m) {
			free++
		} else {
			paid++
		}
	}

	providers := make([]string, 0, len(providerSet))
	for provider := range providerSet {
		providers = append(providers, provider)
	}
	sort.Strings(providers)

	average := 0
	if len(snap.Models) > 0 {
		average = contextSum / len(snap.Models)
	}

	return OverviewResult{
		TotalModels:          len(snap.Models),
		Providers:            providers,
		ProviderCount:        len(providers),
		FreeModels:           free,
		PaidModels:           paid,
		AverageContextLength: average,
		Modalities:           modalities,
		DataSource:           snap.Source,
		FetchedAt:            snap.FetchedAt,
	}
}

// LookupResult reports a single-model lookup. A miss is a normal result,
// never an error.
type LookupResult struct {
	Found      bool         `json:"found"`
	Model      *ModelDetail `json:"model,omitempty"`
	Query      string       `json:"query"`
	Suggestion string       `json:"suggestion,omitempty"`
}

const lookupMissSuggestion = "no model matched; try the search operation with a shorter query"

// Lookup finds one model: case-insensitive exact ID match first, then
// case-insensitive substring match on ID or display name, first match in
// catalog order.
func Lookup(models []Model, modelID string) LookupResult {
	result := LookupResult{Query: modelID}
	if m := findModel(models, modelID); m != nil {
		d := detail(m)
		result.Found = true
		result.Model = &d
		return result
	}
	result.Suggestion = lookupMissSuggestion
	return result
}

func findModel(models []Model, modelID string) *Model {
	needle := strings.ToLower(strings.TrimSpace(modelID))
	if needle == "" {
		return nil
	}
	for i := range models {
		if strings.ToLower(models[i].ID) == needle {
			return &models[i]
		}
	}
	for i := range models {
		if strings.Contains(strings.ToLower(models[i].ID), needle) ||
			strings.Contains(strings.ToLower(models[i].Name), needle) {
			return &models[i]
		}
	}
	return nil
}
