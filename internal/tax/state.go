package tax

import (
	"strings"

	"household-calc/internal/model"
)

// Mode names how a state tax figure was resolved.
type Mode string

const (
	ModeFlatManual  Mode = "flat_manual"
	ModeNoTax       Mode = "no_tax"
	ModeFlat        Mode = "flat"
	ModeProgressive Mode = "progressive"
	ModeUnknown     Mode = "unknown"
)

// StateResult is the resolved state tax. Rate is nil in progressive mode.
type StateResult struct {
	Mode      Mode
	Rate      *float64
	Tax       float64
	Breakdown []BracketRow
}

type stateQuery struct {
	income     float64
	status     model.FilingStatus
	code       string
	hasCode    bool
	manualRate float64
}

// stateResolver returns ok=false when its variant does not apply.
type stateResolver func(t *model.TaxTable, q stateQuery) (StateResult, bool)

// Order matters: the first resolver that applies wins. Anything left over is
// ModeUnknown.
var stateResolvers = []stateResolver{
	resolveManual,
	resolveNoTax,
	resolveFlat,
	resolveProgressive,
}

func resolveState(t *model.TaxTable, q stateQuery) StateResult {
	for _, resolve := range stateResolvers {
		if res, ok := resolve(t, q); ok {
			return res
		}
	}
	return StateResult{Mode: ModeUnknown, Rate: rate(0)}
}

func resolveManual(_ *model.TaxTable, q stateQuery) (StateResult, bool) {
	if q.hasCode {
		return StateResult{}, false
	}
	return StateResult{Mode: ModeFlatManual, Rate: rate(q.manualRate), Tax: q.income * q.manualRate}, true
}

func resolveNoTax(t *model.TaxTable, q stateQuery) (StateResult, bool) {
	if !t.IsNoTax(q.code) {
		return StateResult{}, false
	}
	return StateResult{Mode: ModeNoTax, Rate: rate(0)}, true
}

func resolveFlat(t *model.TaxTable, q stateQuery) (StateResult, bool) {
	r, ok := t.FlatRate(q.code)
	if !ok {
		return StateResult{}, false
	}
	return StateResult{Mode: ModeFlat, Rate: rate(r), Tax: q.income * r}, true
}

func resolveProgressive(t *model.TaxTable, q stateQuery) (StateResult, bool) {
	brackets, ok := t.StateBrackets(q.code, q.status)
	if !ok {
		return StateResult{}, false
	}
	taxable := q.income - t.Deduction(q.status)
	return StateResult{
		Mode:      ModeProgressive,
		Tax:       ComputeProgressiveTax(taxable, brackets),
		Breakdown: Breakdown(taxable, brackets),
	}, true
}

// NormalizeStateCode trims and upper-cases a state code. Blank codes are
// treated as absent.
func NormalizeStateCode(code *string) *string {
	if code == nil {
		return nil
	}
	c := strings.ToUpper(strings.TrimSpace(*code))
	if c == "" {
		return nil
	}
	return &c
}

func rate(r float64) *float64 { return &r }
