package model

import (
	"fmt"
	"sort"
)

// TaxTable is the tax reference document. It is loaded once at startup and
// never mutated afterwards; handlers share it by pointer.
type TaxTable struct {
	States            []string                       `json:"states,omitempty" yaml:"states,omitempty" toml:"states"`
	StandardDeduction map[string]float64             `json:"standard_deduction" yaml:"standard_deduction" toml:"standard_deduction"`
	Federal           map[string]Brackets            `json:"federal" yaml:"federal" toml:"federal"`
	NoTax             []string                       `json:"no_tax" yaml:"no_tax" toml:"no_tax"`
	FlatRates         map[string]float64             `json:"flat_rates" yaml:"flat_rates" toml:"flat_rates"`
	Progressive       map[string]map[string]Brackets `json:"progressive" yaml:"progressive" toml:"progressive"`
}

// Deduction returns the standard deduction for status, 0 when the table has
// none.
func (t *TaxTable) Deduction(status FilingStatus) float64 {
	return t.StandardDeduction[string(status)]
}

// FederalBrackets returns the federal bracket sequence for status.
func (t *TaxTable) FederalBrackets(status FilingStatus) (Brackets, error) {
	b, ok := t.Federal[string(status)]
	if !ok || len(b) == 0 {
		return nil, taxConfigError("federal."+string(status), "no brackets for filing status")
	}
	return b, nil
}

func (t *TaxTable) IsNoTax(code string) bool {
	for _, c := range t.NoTax {
		if c == code {
			return true
		}
	}
	return false
}

func (t *TaxTable) FlatRate(code string) (float64, bool) {
	r, ok := t.FlatRates[code]
	return r, ok
}

// StateBrackets returns the progressive brackets for a state and status. The
// second value is false when the state has no table or no entry for status.
func (t *TaxTable) StateBrackets(code string, status FilingStatus) (Brackets, bool) {
	byStatus, ok := t.Progressive[code]
	if !ok {
		return nil, false
	}
	b, ok := byStatus[string(status)]
	return b, ok && len(b) > 0
}

// Validate checks every accepted filing status has federal brackets, that all
// bracket sequences are well formed and that rates and deductions are sane.
func (t *TaxTable) Validate() error {
	if t == nil {
		return taxConfigError("", "table is nil")
	}
	for _, status := range FilingStatuses {
		b, err := t.FederalBrackets(status)
		if err != nil {
			return err
		}
		if err := b.Validate(); err != nil {
			return taxConfigError("federal."+string(status), "%v", err)
		}
	}
	for status, d := range t.StandardDeduction {
		if d < 0 {
			return taxConfigError("standard_deduction."+status, "negative deduction %v", d)
		}
	}
	for _, code := range sortedKeys(t.FlatRates) {
		if r := t.FlatRates[code]; r < 0 || r > 1 {
			return taxConfigError("flat_rates."+code, "rate %v outside [0,1]", r)
		}
	}
	for _, code := range sortedKeys(t.Progressive) {
		for _, status := range sortedKeys(t.Progressive[code]) {
			if err := t.Progressive[code][status].Validate(); err != nil {
				return taxConfigError(fmt.Sprintf("progressive.%s.%s", code, status), "%v", err)
			}
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
