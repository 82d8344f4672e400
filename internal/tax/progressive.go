// Package tax computes federal and state income tax from the loaded tax table.
package tax

import (
	"math"

	"household-calc/internal/model"
)

// BracketRow is the slice of income taxed inside one bracket.
type BracketRow struct {
	Lower  float64 `json:"lower"`
	Upper  float64 `json:"upper"`
	Rate   float64 `json:"rate"`
	Amount float64 `json:"amount"`
	Tax    float64 `json:"tax"`
}

// ComputeProgressiveTax accumulates tax across an ascending bracket sequence.
// Income below zero is treated as zero; the result is never negative.
func ComputeProgressiveTax(taxableIncome float64, brackets model.Brackets) float64 {
	taxable := math.Max(0, taxableIncome)
	tax := 0.0
	for i, br := range brackets {
		upper := brackets.Upper(i)
		slice := math.Max(0, math.Min(taxable, upper)-br.Lower)
		tax += slice * br.Rate
		if taxable <= upper {
			break
		}
	}
	return tax
}

// Breakdown returns one row per bracket that taxes a non-empty slice of
// income. The row taxes sum to ComputeProgressiveTax for the same inputs.
func Breakdown(taxableIncome float64, brackets model.Brackets) []BracketRow {
	taxable := math.Max(0, taxableIncome)
	rows := []BracketRow{}
	for i, br := range brackets {
		upper := math.Min(taxable, brackets.Upper(i))
		if upper > br.Lower {
			amt := upper - br.Lower
			rows = append(rows, BracketRow{
				Lower:  br.Lower,
				Upper:  upper,
				Rate:   br.Rate,
				Amount: amt,
				Tax:    amt * br.Rate,
			})
		}
		if taxable <= brackets.Upper(i) {
			break
		}
	}
	return rows
}
