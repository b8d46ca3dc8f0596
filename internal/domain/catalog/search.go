package catalog

import (
	"sort"
	"strings"

	decimal "github.com/shopspring/decimal"

	"modelscout/catalog-api/internal/utils/functional"
)

// DefaultSearchLimit caps search results when the caller does not supply
// a limit.
const DefaultSearchLimit = 20

// SearchParams are the optional search filters. Zero values mean "no
// filter" except Limit, which falls back to DefaultSearchLimit.
type SearchParams struct {
	Query              string
	Modality           ModalityBucket
	MinContext         int
	MaxPricePerMillion *decimal.Decimal
	FreeOnly           bool
	Limit              int
}

// SearchResult is the filtered, ranked catalog slice.
type SearchResult struct {
	Query        string         `json:"query,omitempty"`
	Modality     ModalityBucket `json:"modality,omitempty"`
	TotalMatches int            `json:"totalMatches"`
	Count        int            `json:"count"`
	Results      []ModelSummary `json:"results"`
}

// Search filters the catalog and ranks matches by context length
// descending. Ties keep original catalog order. TotalMatches counts
// matches before truncation to the limit.
func Search(models []Model, params SearchParams) SearchResult {
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	needle := strings.ToLower(strings.TrimSpace(params.Query))

	matched := make([]*Model, 0)
	for i := range models {
		m := &models[i]
		if needle != "" && !matchesQuery(m, needle) {
			continue
		}
		if !m.InBucket(params.Modality) {
			continue
		}
		if m.ContextLength < params.MinContext {
			continue
		}
		if params.MaxPricePerMillion != nil && PricePerMillion(m).GreaterThan(*params.MaxPricePerMillion) {
			continue
		}
		if params.FreeOnly && !IsFree(m) {
			continue
		}
		matched = append(matched, m)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].ContextLength > matched[j].ContextLength
	})

	total := len(matched)
	if len(matched) > limit {
		matched = matched[:limit]
	}

	results := functional.Map(matched, func(m *Model) ModelSummary { return summarize(m) })
	return SearchResult{
		Query:        params.Query,
		Modality:     params.Modality,
		TotalMatches: total,
		Count:        len(results),
		Results:      results,
	}
}

func matchesQuery(m *Model, needle string) bool {
	return strings.Contains(strings.ToLower(m.ID), needle) ||
		strings.Contains(strings.ToLower(m.Name), needle) ||
		strings.Contains(strings.ToLower(m.Description), needle)
}
