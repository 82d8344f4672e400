package plan

import (
	"math"
	"path/filepath"
	"testing"

	"household-calc/internal/borrow"
	"household-calc/internal/budget"
	"household-calc/internal/data"
	"household-calc/internal/model"
	"household-calc/internal/tax"
)

func newPlanner() *Planner {
	taxTable := &model.TaxTable{
		StandardDeduction: map[string]float64{"single": 10000},
		Federal: map[string]model.Brackets{
			"single": {{Lower: 0, Rate: 0.10}, {Lower: 50000, Rate: 0.20}},
		},
		NoTax: []string{"TX"},
	}
	budgetTable := &model.BudgetTable{
		Categories: map[string]model.CategoryBase{
			"housing": {BaseAdult: 1000},
			"food":    {BaseAdult: 500},
			"savings": {BaseAdult: 300},
		},
	}
	return NewPlanner(tax.NewCalculator(taxTable, nil), budget.NewAllocator(budgetTable))
}

func loanTerms() borrow.Request {
	return borrow.Request{
		RateAnnual:    0.06,
		TermYears:     30,
		FrontEndRatio: 0.28,
		BackEndRatio:  0.36,
	}
}

func TestRunSurplusLimited(t *testing.T) {
	code := "TX"
	res, err := newPlanner().Run(Input{
		Tax:    tax.Input{AnnualIncome: 70000, FilingStatus: model.FilingSingle, StateCode: &code},
		Adults: 1,
		Borrow: loanTerms(),
	})
	if err != nil {
		t.Fatal(err)
	}

	// taxable 60000: 5000 + 2000 = 7000 federal; net 63000; 5250/month
	if res.Tax.MonthlyTakehome != 5250 {
		t.Fatalf("take-home = %v", res.Tax.MonthlyTakehome)
	}
	cf := res.CashFlow
	if cf.BaseCosts != 1500 || cf.SurplusBeforeMortgage != 3750 {
		t.Fatalf("base=%v surplus=%v", cf.BaseCosts, cf.SurplusBeforeMortgage)
	}
	// gross DTI: 70000/12*0.28 = 1633.33 is below the surplus
	if res.Borrow.LimitReason != borrow.LimitDTI {
		t.Fatalf("reason = %s", res.Borrow.LimitReason)
	}
	if math.Abs(cf.MortgagePI-1633.33) > 0.01 || cf.Label != "surplus" {
		t.Fatalf("cash flow = %+v", cf)
	}
	if math.Abs(cf.Net-(5250-1500-1633.33)) > 0.011 {
		t.Fatalf("net = %v", cf.Net)
	}
}

func TestRunUsesTakehomeWhenRequested(t *testing.T) {
	terms := loanTerms()
	terms.UseTakehome = true
	terms.FrontEndRatio = 1
	terms.BackEndRatio = 1
	res, err := newPlanner().Run(Input{
		Tax:    tax.Input{AnnualIncome: 70000, FilingStatus: model.FilingSingle},
		Adults: 1,
		Borrow: terms,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Borrow.IncomeBasis != borrow.BasisNet {
		t.Fatalf("basis = %s", res.Borrow.IncomeBasis)
	}
	// DTI cap is the full take-home, so the surplus binds.
	if res.Borrow.LimitReason != borrow.LimitSurplus || res.Borrow.MonthlyPIUsed != 3750 {
		t.Fatalf("borrow = %+v", res.Borrow)
	}
}

func shippedPlanner(t *testing.T) *Planner {
	t.Helper()
	tables, err := data.LoadTables(
		filepath.Join("..", "..", data.DefaultTaxTablePath),
		filepath.Join("..", "..", data.DefaultBudgetTablePath),
	)
	if err != nil {
		t.Fatalf("failed to load reference tables: %v", err)
	}
	return NewPlanner(tax.NewCalculator(tables.Tax, nil), budget.NewAllocator(tables.Budget))
}

// When the surplus cap binds, the mortgage absorbs the whole surplus and the
// cash flow is exactly zero, which counts as a surplus.
func TestRunZeroCashFlowWhenSurplusBinds(t *testing.T) {
	wa, tx := "WA", "TX"
	netTerms := loanTerms()
	netTerms.RateAnnual = 0.065
	netTerms.UseTakehome = true
	fullTerms := loanTerms()
	fullTerms.UseTakehome = true
	fullTerms.FrontEndRatio = 1
	fullTerms.BackEndRatio = 1

	tests := []struct {
		name    string
		planner func(t *testing.T) *Planner
		in      Input
	}{
		{
			name:    "shipped tables married household",
			planner: shippedPlanner,
			in: Input{
				Tax:    tax.Input{AnnualIncome: 150000, FilingStatus: model.FilingMarriedJoint, StateCode: &wa},
				Adults: 2,
				Kids:   1,
				Borrow: netTerms,
			},
		},
		{
			name:    "shipped tables single adult",
			planner: shippedPlanner,
			in: Input{
				Tax:    tax.Input{AnnualIncome: 45000, FilingStatus: model.FilingSingle, StateCode: &tx},
				Adults: 1,
				Borrow: netTerms,
			},
		},
		{
			name:    "full take-home ratios",
			planner: func(*testing.T) *Planner { return newPlanner() },
			in: Input{
				Tax:    tax.Input{AnnualIncome: 70000, FilingStatus: model.FilingSingle},
				Adults: 1,
				Borrow: fullTerms,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.planner(t).Run(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if res.Borrow.LimitReason != borrow.LimitSurplus {
				t.Fatalf("reason = %s, want surplus (borrow %+v)", res.Borrow.LimitReason, res.Borrow)
			}
			cf := res.CashFlow
			if cf.Net != 0 || math.Signbit(cf.Net) {
				t.Errorf("net = %v, want +0", cf.Net)
			}
			if cf.Label != "surplus" {
				t.Errorf("label = %q, want surplus", cf.Label)
			}
			if cf.TotalCosts != cf.MonthlyTakehome {
				t.Errorf("total costs %v != take-home %v", cf.TotalCosts, cf.MonthlyTakehome)
			}
		})
	}
}

func TestRunDeficitLabel(t *testing.T) {
	res, err := newPlanner().Run(Input{
		Tax:    tax.Input{AnnualIncome: 12000, FilingStatus: model.FilingSingle},
		Adults: 1,
		Borrow: loanTerms(),
	})
	if err != nil {
		t.Fatal(err)
	}
	// take-home 983.33 against base costs of 1500; no room for a mortgage
	cf := res.CashFlow
	if cf.MortgagePI != 0 || cf.Net != -516.67 || cf.Label != "deficit" {
		t.Fatalf("cash flow = %+v", cf)
	}
}

func TestRunPropagatesConfigError(t *testing.T) {
	_, err := newPlanner().Run(Input{Tax: tax.Input{AnnualIncome: 1, FilingStatus: model.FilingMarriedJoint}})
	if err == nil {
		t.Fatal("expected error for filing status missing from table")
	}
}
