// Package rules is the static per-market localization table.
package rules

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/eleven-am/uxlens/internal/i18n"
)

//go:embed markets.yaml
var defaultMarkets []byte

var ErrInvalidRules = errors.New("invalid localization rules")

type Store struct {
	markets []Market
	byCode  map[string]int
}

// Default returns the embedded rule table.
func Default() *Store {
	s, err := Load(bytes.NewReader(defaultMarkets))
	if err != nil {
		panic("embedded markets.yaml: " + err.Error())
	}
	return s
}

// LoadFile reads an override table from disk.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rules file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func Load(r io.Reader) (*Store, error) {
	var doc file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidRules, err)
	}

	s := &Store{
		markets: make([]Market, 0, len(doc.Markets)),
		byCode:  make(map[string]int, len(doc.Markets)),
	}
	for i, m := range doc.Markets {
		m.Code = normalizeCode(m.Code)
		if err := validate(m); err != nil {
			return nil, fmt.Errorf("%w: market #%d: %v", ErrInvalidRules, i+1, err)
		}
		if _, dup := s.byCode[m.Code]; dup {
			return nil, fmt.Errorf("%w: duplicate market %s", ErrInvalidRules, m.Code)
		}
		s.byCode[m.Code] = len(s.markets)
		s.markets = append(s.markets, m)
	}
	return s, nil
}

func validate(m Market) error {
	if m.Code == "" {
		return errors.New("missing code")
	}
	fields := []struct {
		name string
		text i18n.Text
	}{
		{"date_format", m.Rules.DateFormat},
		{"currency", m.Rules.Currency},
		{"formality", m.Rules.Formality},
	}
	for _, f := range fields {
		if !f.text.Empty() && f.text[i18n.English] == "" {
			return fmt.Errorf("%s: %s has no English text", m.Code, f.name)
		}
	}
	return nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Lookup finds a market by code, case-insensitively.
func (s *Store) Lookup(code string) (Market, bool) {
	i, ok := s.byCode[normalizeCode(code)]
	if !ok {
		return Market{}, false
	}
	return s.markets[i], true
}

func (s *Store) Has(code string) bool {
	_, ok := s.Lookup(code)
	return ok
}

// Markets returns all markets in table order.
func (s *Store) Markets() []Market {
	out := make([]Market, len(s.markets))
	copy(out, s.markets)
	return out
}
