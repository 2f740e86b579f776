package localization

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/eleven-am/uxlens/internal/i18n"
	"github.com/eleven-am/uxlens/internal/rules"
	"github.com/eleven-am/uxlens/internal/vision"
)

type Category string

const (
	CategoryFormat  Category = "format"
	CategoryTone    Category = "tone"
	CategoryGeneral Category = "general"
)

const (
	IDDate            = "date"
	IDCurrency        = "currency"
	IDFormality       = "formality"
	IDDynamicCurrency = "dynamic-currency"
	IDDynamicDate     = "dynamic-date"
	IDNoRules         = "no-rules"
	IDAllGood         = "all-good"
)

type Advice struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Advice      string   `json:"advice"`
	Category    Category `json:"category"`
}

// usDate matches MM/DD/YYYY or MM/DD/YY with a valid month and day range.
var usDate = regexp.MustCompile(`\b(0[1-9]|1[0-2])/(0[1-9]|[12]\d|3[01])/(\d{4}|\d{2})\b`)

type Advisor struct {
	rules  *rules.Store
	logger *slog.Logger
}

func NewAdvisor(store *rules.Store, logger *slog.Logger) *Advisor {
	if logger == nil {
		logger = slog.Default()
	}
	if store == nil {
		store = rules.Default()
	}
	return &Advisor{
		rules:  store,
		logger: logger.With("component", "localization-advisor"),
	}
}

// BuildAdvice returns dynamic advice derived from the detected text followed by
// the static advice for market, deduplicated by id with the first entry kept.
func (a *Advisor) BuildAdvice(lang i18n.Language, marketCode string, v *vision.VisionResult) []Advice {
	market, ok := a.rules.Lookup(marketCode)
	if !ok {
		a.logger.Debug("no rules for market", "market", marketCode)
		return []Advice{{
			ID:          IDNoRules,
			Title:       messages.T(lang, "no_rules.title", nil),
			Description: messages.T(lang, "no_rules.description", map[string]string{"market": marketCode}),
			Advice:      messages.T(lang, "no_rules.advice", nil),
			Category:    CategoryGeneral,
		}}
	}

	merged := append(dynamicAdvice(lang, market, v), staticAdvice(lang, market)...)
	return dedupe(merged)
}

func staticAdvice(lang i18n.Language, m rules.Market) []Advice {
	params := map[string]string{"country": m.DisplayName(lang)}

	var out []Advice
	add := func(id string, text i18n.Text, category Category) {
		if text.Empty() {
			return
		}
		out = append(out, Advice{
			ID:          id,
			Title:       messages.T(lang, id+".title", params),
			Description: messages.T(lang, id+".description", params),
			Advice:      text.Get(lang),
			Category:    category,
		})
	}
	add(IDDate, m.Rules.DateFormat, CategoryFormat)
	add(IDCurrency, m.Rules.Currency, CategoryFormat)
	add(IDFormality, m.Rules.Formality, CategoryTone)

	if len(out) == 0 {
		return []Advice{{
			ID:          IDAllGood,
			Title:       messages.T(lang, "all_good.title", params),
			Description: messages.T(lang, "all_good.description", params),
			Advice:      messages.T(lang, "all_good.advice", params),
			Category:    CategoryGeneral,
		}}
	}
	return out
}

// dynamicAdvice compares the detected text against the market's English rule
// text. A market without a currency or date rule skips that check.
func dynamicAdvice(lang i18n.Language, m rules.Market, v *vision.VisionResult) []Advice {
	text := v.FullText()
	if text == "" {
		return nil
	}

	var out []Advice
	if cur := m.Rules.Currency; !cur.Empty() &&
		strings.Contains(text, "$") && !strings.Contains(cur.Get(i18n.English), "$") {
		params := map[string]string{
			"country": m.DisplayName(lang),
			"rule":    cur.Get(lang),
		}
		out = append(out, Advice{
			ID:          IDDynamicCurrency,
			Title:       messages.T(lang, "dynamic_currency.title", params),
			Description: messages.T(lang, "dynamic_currency.description", params),
			Advice:      messages.T(lang, "dynamic_currency.advice", params),
			Category:    CategoryFormat,
		})
	}

	if date := m.Rules.DateFormat; !date.Empty() &&
		usDate.MatchString(text) && !strings.Contains(date.Get(i18n.English), "MM/DD/YYYY") {
		params := map[string]string{
			"country": m.DisplayName(lang),
			"rule":    date.Get(lang),
			"found":   usDate.FindString(text),
		}
		out = append(out, Advice{
			ID:          IDDynamicDate,
			Title:       messages.T(lang, "dynamic_date.title", params),
			Description: messages.T(lang, "dynamic_date.description", params),
			Advice:      messages.T(lang, "dynamic_date.advice", params),
			Category:    CategoryFormat,
		})
	}
	return out
}

func dedupe(in []Advice) []Advice {
	seen := make(map[string]struct{}, len(in))
	out := make([]Advice, 0, len(in))
	for _, a := range in {
		if _, ok := seen[a.ID]; ok {
			continue
		}
		seen[a.ID] = struct{}{}
		out = append(out, a)
	}
	return out
}
