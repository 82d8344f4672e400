package models

import (
	"household-calc/internal/borrow"
	"household-calc/internal/budget"
	"household-calc/internal/plan"
	"household-calc/internal/tax"
)

// NewTaxResponse maps a tax result onto the wire shape. The CLI prints the
// same shapes the API returns.
func NewTaxResponse(res *tax.Result) TaxResponse {
	return TaxResponse{
		Federal: FederalDetails{
			FederalTax: res.FederalTax,
			Breakdown:  res.FederalBreakdown,
		},
		StateTax: res.StateTax,
		StateDetails: StateDetails{
			Mode:      string(res.State.Mode),
			Rate:      res.State.Rate,
			Tax:       res.State.Tax,
			Breakdown: res.State.Breakdown,
		},
		NetAnnual:       res.NetAnnual,
		MonthlyTakehome: res.MonthlyTakehome,
	}
}

func NewBudgetResponse(res *budget.Result) BudgetResponse {
	return BudgetResponse{
		Equivalence: res.Equivalence,
		Allocations: res.Allocations,
		Exponents:   res.Exponents,
	}
}

func NewBorrowResponse(res *borrow.Result) BorrowResponse {
	return BorrowResponse{
		MonthlyPIDti:        res.MonthlyPIDti,
		MaxPrincipalDti:     res.MaxPrincipalDti,
		MonthlyPISurplus:    res.MonthlyPISurplus,
		MaxPrincipalSurplus: res.MaxPrincipalSurplus,
		MonthlyPIUsed:       res.MonthlyPIUsed,
		MaxPrincipalUsed:    res.MaxPrincipalUsed,
		Assumptions: BorrowAssumptions{
			RateAnnual:  res.RateAnnual,
			TermYears:   res.TermYears,
			IncomeBasis: string(res.IncomeBasis),
		},
		LimitReason: string(res.LimitReason),
	}
}

func NewPlanResponse(res *plan.Result) PlanResponse {
	cf := res.CashFlow
	return PlanResponse{
		Tax:    NewTaxResponse(res.Tax),
		Budget: NewBudgetResponse(res.Budget),
		Borrow: NewBorrowResponse(res.Borrow),
		CashFlow: CashFlowResponse{
			MonthlyTakehome:       cf.MonthlyTakehome,
			BaseCosts:             cf.BaseCosts,
			SurplusBeforeMortgage: cf.SurplusBeforeMortgage,
			MortgagePI:            cf.MortgagePI,
			TotalCosts:            cf.TotalCosts,
			CashFlow:              cf.Net,
			Label:                 cf.Label,
		},
	}
}
