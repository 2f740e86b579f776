package i18n

import "strings"

// Catalog maps a language to its message templates keyed by dotted names.
type Catalog map[Language]map[string]string

// Lookup resolves key in lang, then in English. A key missing from both yields "".
func (c Catalog) Lookup(lang Language, key string) string {
	if msgs, ok := c[lang]; ok {
		if v, ok := msgs[key]; ok {
			return v
		}
	}
	if msgs, ok := c[Fallback]; ok {
		return msgs[key]
	}
	return ""
}

// T resolves key and substitutes params into the template.
func (c Catalog) T(lang Language, key string, params map[string]string) string {
	return Format(c.Lookup(lang, key), params)
}

// Format replaces {name} placeholders. Placeholders without a param are kept verbatim.
func Format(template string, params map[string]string) string {
	if len(params) == 0 || !strings.Contains(template, "{") {
		return template
	}
	pairs := make([]string, 0, len(params)*2)
	for k, v := range params {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// Text is a single message in several languages.
type Text map[Language]string

// Get returns the value for lang, falling back to English, then "".
func (t Text) Get(lang Language) string {
	if v := t[lang]; v != "" {
		return v
	}
	return t[Fallback]
}

// Empty reports whether no language carries a value.
func (t Text) Empty() bool {
	for _, v := range t {
		if v != "" {
			return false
		}
	}
	return true
}
