// Package i18n holds the supported display languages and the ordered-fallback
// message lookup shared by findings, advice and reports.
package i18n

import "strings"

type Language string

const (
	English Language = "en"
	Spanish Language = "es"
	Finnish Language = "fi"
)

// Fallback is the language every catalog must be complete in.
const Fallback = English

var supported = []Language{English, Spanish, Finnish}

func Supported() []Language {
	out := make([]Language, len(supported))
	copy(out, supported)
	return out
}

func (l Language) Valid() bool {
	for _, s := range supported {
		if l == s {
			return true
		}
	}
	return false
}

func (l Language) String() string {
	return string(l)
}

// ParseLanguage accepts bare codes and region tags ("es-MX", "fi_FI").
// Anything unsupported resolves to English.
func ParseLanguage(s string) Language {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(s, "-_"); i > 0 {
		s = s[:i]
	}
	lang := Language(s)
	if !lang.Valid() {
		return Fallback
	}
	return lang
}
