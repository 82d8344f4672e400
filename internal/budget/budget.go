// Package budget splits a minimal survival budget across categories from
// household composition alone.
package budget

import (
	"math"

	"household-calc/internal/mathutil"
	"household-calc/internal/model"
)

// Result is a computed budget. Allocations are rounded to cents and the
// equivalence factor to three decimals.
type Result struct {
	Equivalence float64
	Allocations map[string]float64
	Exponents   map[string]float64
}

// Total sums the allocations, skipping the named categories.
func (r *Result) Total(exclude ...string) float64 {
	skip := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		skip[e] = true
	}
	total := 0.0
	for name, v := range r.Allocations {
		if !skip[name] {
			total += v
		}
	}
	return total
}

// Allocator computes survival budgets against a loaded budget table.
type Allocator struct {
	table *model.BudgetTable
}

func NewAllocator(table *model.BudgetTable) *Allocator {
	return &Allocator{table: table}
}

func (a *Allocator) Table() *model.BudgetTable {
	return a.table
}

// Equivalence returns the household-size weight for the given composition.
// adults is clamped to >= 1 and kids to >= 0.
func (a *Allocator) Equivalence(adults, kids int) float64 {
	adults, kids = clampHousehold(adults, kids)
	return 1 + a.table.AdultExtra()*float64(adults-1) + a.table.KidWeight()*float64(kids)
}

// Allocate computes base*eq^exponent per category. Income plays no part: the
// survival floor depends on household composition only.
func (a *Allocator) Allocate(adults, kids int) *Result {
	adults, kids = clampHousehold(adults, kids)
	eq := a.Equivalence(adults, kids)

	res := &Result{
		Equivalence: mathutil.Round(eq, 3),
		Allocations: make(map[string]float64, len(a.table.Categories)),
		Exponents:   make(map[string]float64, len(a.table.Categories)),
	}
	for _, name := range a.table.CategoryNames() {
		c := a.table.Categories[name]
		exp := a.table.Exponent(name)
		base := c.BaseAdult*float64(adults) + c.BaseKid*float64(kids)
		res.Allocations[name] = mathutil.Currency(base * math.Pow(eq, exp))
		res.Exponents[name] = exp
	}
	return res
}

func clampHousehold(adults, kids int) (int, int) {
	if adults < 1 {
		adults = 1
	}
	if kids < 0 {
		kids = 0
	}
	return adults, kids
}
