package catalog

import (
	"sort"

	"modelscout/catalog-api/internal/utils/functional"
)

// DefaultTopLimit caps ranking results when the caller does not supply a
// limit.
const DefaultTopLimit = 10

// TopMetric selects the ranking criterion.
type TopMetric string

const (
	MetricCheapest       TopMetric = "cheapest"        // ascending derived price, free models excluded
	MetricLongestContext TopMetric = "longest-context" // descending context length
	MetricNewest         TopMetric = "newest"          // descending creation time, missing sorts last
	MetricFree           TopMetric = "free"            // free models only, catalog order
)

// TopParams select and bound a ranking. The ranking endpoints only
// distinguish "multimodal" and "all" buckets; any other modality value
// selects single-modality models.
type TopParams struct {
	Metric   TopMetric
	Modality ModalityBucket
	Limit    int
}

// RankedModel is a catalog entry annotated with its 1-based rank.
type RankedModel struct {
	Rank int `json:"rank"`
	ModelSummary
}

// TopResult is a ranked catalog slice.
type TopResult struct {
	Metric   TopMetric      `json:"metric"`
	Modality ModalityBucket `json:"modality,omitempty"`
	Count    int            `json:"count"`
	Rankings []RankedModel  `json:"rankings"`
}

// Top ranks the catalog by the requested metric, truncated to the limit.
func Top(models []Model, params TopParams) TopResult {
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	bucket := params.Modality
	if bucket == ModalityImage {
		// The image bucket only exists for search; rankings fold it into
		// the single-modality bucket.
		bucket = ModalityText
	}

	candidates := make([]*Model, 0, len(models))
	for i := range models {
		if models[i].InBucket(bucket) {
			candidates = append(candidates, &models[i])
		}
	}

	switch params.Metric {
	case MetricCheapest:
		candidates = functional.Filter(candidates, func(m *Model) bool { return !IsFree(m) })
		sort.SliceStable(candidates, func(i, j int) bool {
			return DerivedPrice(candidates[i]).LessThan(DerivedPrice(candidates[j]))
		})
	case MetricLongestContext:
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].ContextLength > candidates[j].ContextLength
		})
	case MetricNewest:
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Created > candidates[j].Created
		})
	case MetricFree:
		candidates = functional.Filter(candidates, func(m *Model) bool { return IsFree(m) })
	}

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	rankings := make([]RankedModel, len(candidates))
	for i, m := range candidates {
		rankings[i] = RankedModel{Rank: i + 1, ModelSummary: summarize(m)}
	}

	return TopResult{
		Metric:   params.Metric,
		Modality: params.Modality,
		Count:    len(rankings),
		Rankings: rankings,
	}
}
