package catalog

import (
	"testing"
	"time"
)

func testModels() []Model {
	return []Model{
		{
			ID:            "openai/gpt-4o",
			Name:          "GPT-4o",
			Description:   "Flagship multimodal model",
			ContextLength: 128000,
			Architecture:  Architecture{Modality: "text+image->text", InputModalities: []string{"text", "image"}},
			Pricing:       &Pricing{Prompt: "0.000005", Completion: "0.000015"},
			Created:       1715558400,
		},
		{
			ID:            "anthropic/claude-sonnet",
			Name:          "Claude Sonnet",
			Description:   "Balanced general model",
			ContextLength: 200000,
			Architecture:  Architecture{Modality: "text+image->text"},
			Pricing:       &Pricing{Prompt: "0.000003", Completion: "0.000015"},
			Created:       1717200000,
		},
		{
			ID:            "meta-llama/llama-3-8b",
			Name:          "Llama 3 8B",
			Description:   "Open weights, free tier",
			ContextLength: 8192,
			Architecture:  Architecture{Modality: "text->text"},
			Pricing:       &Pricing{Prompt: "0", Completion: "0"},
			Created:       1713398400,
		},
		{
			ID:            "mistralai/mistral-small",
			Name:          "Mistral Small",
			Description:   "Compact text model",
			ContextLength: 32000,
			Architecture:  Architecture{Modality: "text->text"},
			Pricing:       &Pricing{Prompt: "0.000001", Completion: "0.000002"},
		},
	}
}

func testSnapshot() Snapshot {
	return Snapshot{
		Models:    testModels(),
		FetchedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Source:    "https://example.test/models",
	}
}

func TestOverviewAggregates(t *testing.T) {
	result := Overview(testSnapshot())

	if result.TotalModels != 4 {
		t.Fatalf("expected 4 models, got %d", result.TotalModels)
	}
	if result.ProviderCount != len(result.Providers) {
		t.Fatalf("providerCount %d does not match providers %v", result.ProviderCount, result.Providers)
	}
	if result.ProviderCount != 4 {
		t.Fatalf("expected 4 providers, got %d: %v", result.ProviderCount, result.Providers)
	}
	if result.FreeModels+result.PaidModels != result.TotalModels {
		t.Fatalf("free %d + paid %d != total %d", result.FreeModels, result.PaidModels, result.TotalModels)
	}
	if result.FreeModels != 1 {
		t.Fatalf("expected 1 free model, got %d", result.FreeModels)
	}
	if result.Modalities["text->text"] != 2 || result.Modalities["text+image->text"] != 2 {
		t.Fatalf("unexpected modality counts: %v", result.Modalities)
	}
	wantAverage := (128000 + 200000 + 8192 + 32000) / 4
	if result.AverageContextLength != wantAverage {
		t.Fatalf("expected average context %d, got %d", wantAverage, result.AverageContextLength)
	}
	if result.DataSource != "https://example.test/models" {
		t.Fatalf("unexpected data source %q", result.DataSource)
	}
}

func TestOverviewProvidersSorted(t *testing.T) {
	result := Overview(testSnapshot())
	for i := 1; i < len(result.Providers); i++ {
		if result.Providers[i-1] >= result.Providers[i] {
			t.Fatalf("providers not sorted unique: %v", result.Providers)
		}
	}
}

func TestOverviewEmptyCatalog(t *testing.T) {
	result := Overview(Snapshot{})
	if result.TotalModels != 0 || result.AverageContextLength != 0 {
		t.Fatalf("expected zero aggregates for empty catalog, got %+v", result)
	}
	if result.ProviderCount != 0 {
		t.Fatalf("expected no providers, got %v", result.Providers)
	}
}

func TestLookupExactIDCaseInsensitive(t *testing.T) {
	result := Lookup(testModels(), "OpenAI/GPT-4o")
	if !result.Found {
		t.Fatalf("expected exact match, got %+v", result)
	}
	if result.Model.ID != "openai/gpt-4o" {
		t.Fatalf("unexpected model %q", result.Model.ID)
	}
}

// A fragment resolves through the substring fallback and the provider
// derives from the ID prefix.
func TestLookupFragment(t *testing.T) {
	result := Lookup(testModels(), "gpt-4o")
	if !result.Found {
		t.Fatalf("expected substring match for gpt-4o")
	}
	if result.Model.ID != "openai/gpt-4o" {
		t.Fatalf("unexpected model %q", result.Model.ID)
	}
	if result.Model.Provider != "openai" {
		t.Fatalf("expected provider openai, got %q", result.Model.Provider)
	}
}

func TestLookupMatchesDisplayName(t *testing.T) {
	result := Lookup(testModels(), "claude sonnet")
	if !result.Found || result.Model.ID != "anthropic/claude-sonnet" {
		t.Fatalf("expected display-name match, got %+v", result)
	}
}

func TestLookupExactWinsOverSubstring(t *testing.T) {
	models := []Model{
		{ID: "a/gpt-4o-mini", Name: "GPT-4o Mini"},
		{ID: "a/gpt-4o", Name: "GPT-4o"},
	}
	result := Lookup(models, "a/gpt-4o")
	if !result.Found || result.Model.ID != "a/gpt-4o" {
		t.Fatalf("expected exact match to win over earlier substring, got %+v", result)
	}
}

func TestLookupMissIsNormalResult(t *testing.T) {
	result := Lookup(testModels(), "does-not-exist")
	if result.Found {
		t.Fatalf("expected miss")
	}
	if result.Model != nil {
		t.Fatalf("miss must not carry a model")
	}
	if result.Query != "does-not-exist" {
		t.Fatalf("expected query echo, got %q", result.Query)
	}
	if result.Suggestion == "" {
		t.Fatalf("expected a suggestion on miss")
	}
}
