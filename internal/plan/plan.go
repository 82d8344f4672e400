// Package plan chains the tax, budget and borrowing calculators the way a
// client walks through them: take-home pay feeds the survival budget, and
// what is left over caps the mortgage payment.
package plan

import (
	"household-calc/internal/borrow"
	"household-calc/internal/budget"
	"household-calc/internal/mathutil"
	"household-calc/internal/tax"
)

// SavingsCategory is left out of the base costs the surplus is measured
// against.
const SavingsCategory = "savings"

type Input struct {
	Tax    tax.Input
	Adults int
	Kids   int
	// Borrow carries the loan terms. AnnualIncome, MonthlyTakehome and
	// SurplusLimit are filled in by the planner.
	Borrow borrow.Request
}

type CashFlow struct {
	MonthlyTakehome       float64
	BaseCosts             float64
	SurplusBeforeMortgage float64
	MortgagePI            float64
	TotalCosts            float64
	Net                   float64
	Label                 string // "surplus" or "deficit"
}

type Result struct {
	Tax      *tax.Result
	Budget   *budget.Result
	Borrow   *borrow.Result
	CashFlow CashFlow
}

type Planner struct {
	tax    *tax.Calculator
	budget *budget.Allocator
}

func NewPlanner(taxCalc *tax.Calculator, alloc *budget.Allocator) *Planner {
	return &Planner{tax: taxCalc, budget: alloc}
}

// Run computes tax, then the budget, then sizes the loan with the
// pre-mortgage surplus as the surplus limit.
func (p *Planner) Run(in Input) (*Result, error) {
	taxRes, err := p.tax.Calc(in.Tax)
	if err != nil {
		return nil, err
	}
	budgetRes := p.budget.Allocate(in.Adults, in.Kids)

	takehome := taxRes.MonthlyTakehome
	baseCosts := mathutil.Currency(budgetRes.Total(SavingsCategory))
	surplus := mathutil.Floor0(takehome - baseCosts)

	req := in.Borrow
	req.AnnualIncome = in.Tax.AnnualIncome
	req.SurplusLimit = &surplus
	req.MonthlyTakehome = nil
	if req.UseTakehome {
		req.MonthlyTakehome = &takehome
	}
	borrowRes := borrow.Calculate(req)

	total := mathutil.Currency(baseCosts + borrowRes.MonthlyPIUsed)
	// label the rounded value; an exact zero is a surplus
	net := mathutil.Currency(takehome - total)
	if net == 0 {
		net = 0 // drop the sign of -0
	}
	label := "surplus"
	if net < 0 {
		label = "deficit"
	}
	return &Result{
		Tax:    taxRes,
		Budget: budgetRes,
		Borrow: borrowRes,
		CashFlow: CashFlow{
			MonthlyTakehome:       takehome,
			BaseCosts:             baseCosts,
			SurplusBeforeMortgage: mathutil.Currency(surplus),
			MortgagePI:            borrowRes.MonthlyPIUsed,
			TotalCosts:            total,
			Net:                   net,
			Label:                 label,
		},
	}, nil
}
