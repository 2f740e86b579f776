package rules

import "github.com/eleven-am/uxlens/internal/i18n"

// RuleSet holds the per-market advice strings. A nil or empty field is absent.
type RuleSet struct {
	DateFormat i18n.Text `yaml:"date_format,omitempty"`
	Currency   i18n.Text `yaml:"currency,omitempty"`
	Formality  i18n.Text `yaml:"formality,omitempty"`
}

// Populated reports whether at least one rule carries text.
func (r RuleSet) Populated() bool {
	return !r.DateFormat.Empty() || !r.Currency.Empty() || !r.Formality.Empty()
}

type Market struct {
	Code  string    `yaml:"code"`
	Name  i18n.Text `yaml:"name"`
	Rules RuleSet   `yaml:"rules"`
}

// DisplayName returns the localized country name, or the code when none is set.
func (m Market) DisplayName(lang i18n.Language) string {
	if name := m.Name.Get(lang); name != "" {
		return name
	}
	return m.Code
}

type file struct {
	Markets []Market `yaml:"markets"`
}
