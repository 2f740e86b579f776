package localization

import (
	"slices"
	"strings"
	"testing"

	"github.com/eleven-am/uxlens/internal/i18n"
	"github.com/eleven-am/uxlens/internal/rules"
	"github.com/eleven-am/uxlens/internal/vision"
)

func adviceIDs(advice []Advice) []string {
	out := make([]string, 0, len(advice))
	for _, a := range advice {
		out = append(out, a.ID)
	}
	return out
}

func assertAdviceIDs(t *testing.T, got []Advice, want ...string) {
	t.Helper()
	if !slices.Equal(adviceIDs(got), want) {
		t.Fatalf("expected advice %v, got %v", want, adviceIDs(got))
	}
}

func textResult(texts ...string) *vision.VisionResult {
	r := vision.Empty()
	for _, s := range texts {
		r.TextAnnotations = append(r.TextAnnotations, vision.TextAnnotation{Description: s})
	}
	return r
}

func loadStore(t *testing.T, doc string) *rules.Store {
	t.Helper()
	store, err := rules.Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("failed to load rules: %v", err)
	}
	return store
}

func TestBuildAdvice_UnknownMarket(t *testing.T) {
	a := NewAdvisor(nil, nil)

	got := a.BuildAdvice(i18n.English, "ZZ", textResult("Total: $45.00"))
	assertAdviceIDs(t, got, IDNoRules)
	if got[0].Category != CategoryGeneral {
		t.Errorf("expected general category, got %s", got[0].Category)
	}
	if !strings.Contains(got[0].Description, "ZZ") {
		t.Errorf("expected market code in description, got %q", got[0].Description)
	}
}

func TestBuildAdvice_StaticOrder(t *testing.T) {
	a := NewAdvisor(rules.Default(), nil)

	got := a.BuildAdvice(i18n.English, "ES", vision.Empty())
	assertAdviceIDs(t, got, IDDate, IDCurrency, IDFormality)
	categories := []Category{got[0].Category, got[1].Category, got[2].Category}
	if want := []Category{CategoryFormat, CategoryFormat, CategoryTone}; !slices.Equal(categories, want) {
		t.Errorf("expected categories %v, got %v", want, categories)
	}
	if got[0].Advice != "The preferred date format is DD/MM/YYYY." {
		t.Errorf("unexpected date advice %q", got[0].Advice)
	}
}

func TestBuildAdvice_StaticLocalized(t *testing.T) {
	a := NewAdvisor(rules.Default(), nil)

	got := a.BuildAdvice(i18n.Finnish, "fi", nil)
	assertAdviceIDs(t, got, IDDate, IDCurrency, IDFormality)
	if got[1].Advice != "Valuutta on euro (€)." {
		t.Errorf("unexpected Finnish currency advice %q", got[1].Advice)
	}
}

func TestBuildAdvice_DynamicCurrencyWins(t *testing.T) {
	a := NewAdvisor(rules.Default(), nil)

	got := a.BuildAdvice(i18n.English, "FI", textResult("Total: $45.00", "Total:", "$45.00"))
	assertAdviceIDs(t, got, IDDynamicCurrency, IDDate, IDCurrency, IDFormality)
	for _, want := range []string{"Euro", "Finland"} {
		if !strings.Contains(got[0].Advice, want) {
			t.Errorf("expected advice to mention %s, got %q", want, got[0].Advice)
		}
	}
}

func TestBuildAdvice_NoDynamicCurrencyWhenMarketUsesDollar(t *testing.T) {
	a := NewAdvisor(rules.Default(), nil)

	for _, code := range []string{"US", "SV"} {
		got := a.BuildAdvice(i18n.English, code, textResult("Price $10"))
		if slices.Contains(adviceIDs(got), IDDynamicCurrency) {
			t.Errorf("%s: unexpected dynamic currency advice %v", code, adviceIDs(got))
		}
	}
}

func TestBuildAdvice_DynamicDate(t *testing.T) {
	a := NewAdvisor(rules.Default(), nil)

	got := a.BuildAdvice(i18n.English, "ES", textResult("Delivery on 12/25/2024"))
	if got[0].ID != IDDynamicDate {
		t.Fatalf("expected dynamic date advice first, got %v", adviceIDs(got))
	}
	if !strings.Contains(got[0].Description, "12/25/2024") {
		t.Errorf("expected the matched date in description, got %q", got[0].Description)
	}

	us := a.BuildAdvice(i18n.English, "US", textResult("Delivery on 12/25/2024"))
	if slices.Contains(adviceIDs(us), IDDynamicDate) {
		t.Errorf("US uses MM/DD/YYYY, got %v", adviceIDs(us))
	}
}

func TestBuildAdvice_DatePattern(t *testing.T) {
	a := NewAdvisor(rules.Default(), nil)

	cases := map[string]bool{
		"due 01/31/24":   true,
		"due 13/01/2024": false,
		"due 12/32/2024": false,
		"due 1/5/2024":   false,
		"due 25.12.2024": false,
	}
	for text, want := range cases {
		got := a.BuildAdvice(i18n.English, "FI", textResult(text))
		if matched := adviceIDs(got)[0] == IDDynamicDate; matched != want {
			t.Errorf("%q: expected dynamic date %v, got %v", text, want, matched)
		}
	}
}

func TestBuildAdvice_MissingRulesDisableChecks(t *testing.T) {
	store := loadStore(t, `
markets:
  - code: XX
    name: {en: Nowhere}
    rules:
      formality: {en: Be polite.}
`)
	a := NewAdvisor(store, nil)

	got := a.BuildAdvice(i18n.English, "XX", textResult("$5 on 12/25/2024"))
	assertAdviceIDs(t, got, IDFormality)
}

func TestBuildAdvice_AllGood(t *testing.T) {
	store := loadStore(t, `
markets:
  - code: XX
    name: {en: Nowhere}
`)
	a := NewAdvisor(store, nil)

	got := a.BuildAdvice(i18n.Spanish, "XX", nil)
	assertAdviceIDs(t, got, IDAllGood)
	if got[0].Category != CategoryGeneral {
		t.Errorf("expected general category, got %s", got[0].Category)
	}
}

func TestBuildAdvice_EnglishFallbackForRuleText(t *testing.T) {
	store := loadStore(t, `
markets:
  - code: XX
    name: {en: Nowhere}
    rules:
      currency: {en: Use the local currency.}
`)
	a := NewAdvisor(store, nil)

	got := a.BuildAdvice(i18n.Finnish, "XX", nil)
	assertAdviceIDs(t, got, IDCurrency)
	if got[0].Advice != "Use the local currency." {
		t.Errorf("expected English rule text, got %q", got[0].Advice)
	}
}

func TestDedupe_FirstWins(t *testing.T) {
	got := dedupe([]Advice{{ID: "a", Title: "1"}, {ID: "b"}, {ID: "a", Title: "2"}})
	assertAdviceIDs(t, got, "a", "b")
	if got[0].Title != "1" {
		t.Errorf("expected first occurrence to win, got %q", got[0].Title)
	}
}

func TestMessages_EveryLanguageHasEveryKey(t *testing.T) {
	for _, lang := range i18n.Supported() {
		for key := range messages[i18n.English] {
			if _, ok := messages[lang][key]; !ok {
				t.Errorf("%s missing %s", lang, key)
			}
		}
	}
}
