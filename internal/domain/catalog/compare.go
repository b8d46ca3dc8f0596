package catalog

// CompareResult sets 2-5 models side by side. IDs that resolve nowhere
// are collected in NotFound rather than failing the call.
type CompareResult struct {
	Requested      int            `json:"requested"`
	Compared       int            `json:"compared"`
	NotFound       []string       `json:"notFound"`
	Models         []ModelSummary `json:"models"`
	Cheapest       *ModelSummary  `json:"cheapest,omitempty"`
	LongestContext *ModelSummary  `json:"longestContext,omitempty"`
}

// Compare resolves each ID with the lookup rule and reduces the found set
// to its cheapest and longest-context entries. The reductions use strict
// comparisons, so the first-encountered model wins exact ties.
func Compare(models []Model, modelIDs []string) CompareResult {
	result := CompareResult{
		Requested: len(modelIDs),
		NotFound:  make([]string, 0),
		Models:    make([]ModelSummary, 0, len(modelIDs)),
	}

	found := make([]*Model, 0, len(modelIDs))
	for _, id := range modelIDs {
		m := findModel(models, id)
		if m == nil {
			result.NotFound = append(result.NotFound, id)
			continue
		}
		found = append(found, m)
		result.Models = append(result.Models, summarize(m))
	}
	result.Compared = len(found)

	if len(found) == 0 {
		return result
	}

	cheapest, longest := found[0], found[0]
	for _, m := range found[1:] {
		if DerivedPrice(m).LessThan(DerivedPrice(cheapest)) {
			cheapest = m
		}
		if m.ContextLength > longest.ContextLength {
			longest = m
		}
	}

	cheapestSummary := summarize(cheapest)
	longestSummary := summarize(longest)
	result.Cheapest = &cheapestSummary
	result.LongestContext = &longestSummary
	return result
}
