package catalog

import (
	"testing"

	decimal "github.com/shopspring/decimal"
)

func priced(id, prompt, completion string) Model {
	return Model{ID: id, Name: id, Pricing: &Pricing{Prompt: prompt, Completion: completion}}
}

func TestDerivedPriceAbsentPricing(t *testing.T) {
	m := Model{ID: "meta/llama"}
	if !DerivedPrice(&m).IsZero() {
		t.Fatalf("expected zero price for absent pricing, got %s", DerivedPrice(&m))
	}
	if !IsFree(&m) {
		t.Fatalf("expected model without pricing to be free")
	}
}

func TestDerivedPriceZeroStrings(t *testing.T) {
	m := priced("meta/llama", "0", "0")
	if !DerivedPrice(&m).IsZero() {
		t.Fatalf("expected zero price for \"0\"/\"0\" pricing, got %s", DerivedPrice(&m))
	}
}

func TestDerivedPriceMalformedComponentsDefaultToZero(t *testing.T) {
	m := priced("meta/llama", "not-a-number", "0.000002")
	want := decimal.RequireFromString("0.000002")
	if !DerivedPrice(&m).Equal(want) {
		t.Fatalf("expected %s, got %s", want, DerivedPrice(&m))
	}
}

func TestDerivedPriceSumsComponents(t *testing.T) {
	m := priced("openai/gpt-4o", "0.000005", "0.000015")
	want := decimal.RequireFromString("0.00002")
	if !DerivedPrice(&m).Equal(want) {
		t.Fatalf("expected %s, got %s", want, DerivedPrice(&m))
	}
	wantPerMillion := decimal.RequireFromString("20")
	if !PricePerMillion(&m).Equal(wantPerMillion) {
		t.Fatalf("expected %s per million, got %s", wantPerMillion, PricePerMillion(&m))
	}
}

func TestTierBoundaries(t *testing.T) {
	cases := []struct {
		name   string
		prompt string
		want   PricingTier
	}{
		{"zero is free", "0", TierFree},
		{"below budget bound", "0.0000005", TierBudget},
		{"exactly budget bound is standard", "0.000001", TierStandard},
		{"below standard bound", "0.000005", TierStandard},
		{"exactly standard bound is premium", "0.00001", TierPremium},
		{"well above", "0.0001", TierPremium},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := priced("x/y", tc.prompt, "0")
			if got := TierOf(&m); got != tc.want {
				t.Fatalf("prompt %s: expected tier %s, got %s", tc.prompt, tc.want, got)
			}
		})
	}
}

// gpt-4o at 0.000005 + 0.000015 derives 0.00002, which sits at or above
// the standard upper bound and must read as premium.
func TestTierGPT4oExampleIsPremium(t *testing.T) {
	m := priced("openai/gpt-4o", "0.000005", "0.000015")
	if got := TierOf(&m); got != TierPremium {
		t.Fatalf("expected premium at derived price 0.00002, got %s", got)
	}
}

func TestEstimateCost(t *testing.T) {
	m := priced("openai/gpt-4o", "0.000005", "0.000015")
	// 1000 requests x (500*0.000005 + 500*0.000015) = 10.
	want := decimal.RequireFromString("10")
	got := EstimateCost(&m, 1000, 500, 500)
	if !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestEstimateCostWithoutPricing(t *testing.T) {
	m := Model{ID: "meta/llama"}
	if !EstimateCost(&m, 1000, 500, 500).IsZero() {
		t.Fatalf("expected zero cost estimate without pricing")
	}
}
