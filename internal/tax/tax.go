package tax

import (
	"household-calc/internal/mathutil"
	"household-calc/internal/model"

	"go.uber.org/zap"
)

// Input is a tax request after transport-level validation.
type Input struct {
	AnnualIncome float64
	FilingStatus model.FilingStatus
	StateRate    float64 // manual flat rate, used only when StateCode is nil
	StateCode    *string
}

// Result carries monetary values rounded to cents.
type Result struct {
	FederalTax       float64
	FederalBreakdown []BracketRow
	StateTax         float64
	State            StateResult
	NetAnnual        float64
	MonthlyTakehome  float64
}

// Calculator computes income tax against a loaded table. It is safe for
// concurrent use; the table is never written.
type Calculator struct {
	table  *model.TaxTable
	logger *zap.Logger
}

func NewCalculator(table *model.TaxTable, logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{table: table, logger: logger}
}

// Table returns the reference table backing the calculator.
func (c *Calculator) Table() *model.TaxTable {
	return c.table
}

func (c *Calculator) taxableFederal(income float64, status model.FilingStatus) float64 {
	return mathutil.Floor0(income - c.table.Deduction(status))
}

// FederalTax subtracts the standard deduction and applies the federal
// brackets for status. A status missing from the table yields a
// *model.ConfigError.
func (c *Calculator) FederalTax(income float64, status model.FilingStatus) (float64, error) {
	brackets, err := c.table.FederalBrackets(status)
	if err != nil {
		return 0, err
	}
	return ComputeProgressiveTax(c.taxableFederal(income, status), brackets), nil
}

// StateTax resolves the state tax for income. With no state code the manual
// rate is applied. Unknown codes yield ModeUnknown and zero tax.
func (c *Calculator) StateTax(income float64, status model.FilingStatus, stateCode *string, manualRate float64) StateResult {
	q := stateQuery{income: income, status: status, manualRate: manualRate}
	if code := NormalizeStateCode(stateCode); code != nil {
		q.code, q.hasCode = *code, true
	}
	res := resolveState(c.table, q)
	if res.Mode == ModeUnknown {
		c.logger.Warn("unresolved state code, applying zero state tax",
			zap.String("op", "tax.StateTax"),
			zap.String("state_code", q.code),
			zap.String("filing_status", string(status)),
		)
	}
	return res
}

// Calc composes federal and state tax into net and monthly take-home income.
func (c *Calculator) Calc(in Input) (*Result, error) {
	brackets, err := c.table.FederalBrackets(in.FilingStatus)
	if err != nil {
		return nil, err
	}
	taxable := c.taxableFederal(in.AnnualIncome, in.FilingStatus)
	fed := ComputeProgressiveTax(taxable, brackets)
	st := c.StateTax(in.AnnualIncome, in.FilingStatus, in.StateCode, in.StateRate)
	net := mathutil.Floor0(in.AnnualIncome - fed - st.Tax)

	st.Tax = mathutil.Currency(st.Tax)
	st.Breakdown = roundRows(st.Breakdown)
	return &Result{
		FederalTax:       mathutil.Currency(fed),
		FederalBreakdown: roundRows(Breakdown(taxable, brackets)),
		StateTax:         st.Tax,
		State:            st,
		NetAnnual:        mathutil.Currency(net),
		MonthlyTakehome:  mathutil.Currency(net / 12),
	}, nil
}

func roundRows(rows []BracketRow) []BracketRow {
	if rows == nil {
		return nil
	}
	out := make([]BracketRow, len(rows))
	for i, r := range rows {
		r.Amount = mathutil.Currency(r.Amount)
		r.Tax = mathutil.Currency(r.Tax)
		out[i] = r
	}
	return out
}
