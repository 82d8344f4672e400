package tax

import (
	"encoding/csv"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"household-calc/internal/model"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func testTable() *model.TaxTable {
	single := model.Brackets{
		{Lower: 0, Rate: 0.10}, {Lower: 11600, Rate: 0.12}, {Lower: 47150, Rate: 0.22},
		{Lower: 100525, Rate: 0.24}, {Lower: 191950, Rate: 0.32}, {Lower: 243725, Rate: 0.35},
		{Lower: 609350, Rate: 0.37},
	}
	joint := model.Brackets{
		{Lower: 0, Rate: 0.10}, {Lower: 23200, Rate: 0.12}, {Lower: 94300, Rate: 0.22},
		{Lower: 201050, Rate: 0.24}, {Lower: 383900, Rate: 0.32}, {Lower: 487450, Rate: 0.35},
		{Lower: 731200, Rate: 0.37},
	}
	hoh := model.Brackets{
		{Lower: 0, Rate: 0.10}, {Lower: 16550, Rate: 0.12}, {Lower: 63100, Rate: 0.22},
		{Lower: 100500, Rate: 0.24}, {Lower: 191950, Rate: 0.32}, {Lower: 243700, Rate: 0.35},
		{Lower: 609350, Rate: 0.37},
	}
	return &model.TaxTable{
		StandardDeduction: map[string]float64{"single": 14600, "married_joint": 29200, "head_of_household": 21900},
		Federal:           map[string]model.Brackets{"single": single, "married_joint": joint, "head_of_household": hoh},
		NoTax:             []string{"TX", "FL", "WA"},
		FlatRates:         map[string]float64{"CO": 0.044, "IL": 0.0495},
		Progressive: map[string]map[string]model.Brackets{
			"CA": {"single": {{Lower: 0, Rate: 0.01}, {Lower: 10000, Rate: 0.02}, {Lower: 30000, Rate: 0.04}}},
		},
	}
}

func TestComputeProgressiveTax(t *testing.T) {
	brackets := testTable().Federal["single"]
	tests := []struct {
		name    string
		taxable float64
		want    float64
	}{
		{"zero", 0, 0},
		{"negative floored", -5000, 0},
		{"first bracket", 10000, 1000},
		{"first boundary", 11600, 1160},
		{"third bracket", 50000, 1160 + (47150-11600)*0.12 + (50000-47150)*0.22},
		{"top bracket", 700000, 1160 + 35550*0.12 + 53375*0.22 + 91425*0.24 + 51775*0.32 + 365625*0.35 + 90650*0.37},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeProgressiveTax(tt.taxable, brackets)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeProgressiveTaxContinuousAtBoundaries(t *testing.T) {
	brackets := testTable().Federal["married_joint"]
	for i := 0; i+1 < len(brackets); i++ {
		upper := brackets.Upper(i)
		full := ComputeProgressiveTax(upper, brackets)
		prefix := ComputeProgressiveTax(upper, brackets[:i+1])
		if math.Abs(full-prefix) > 1e-9 {
			t.Fatalf("bracket %d: full=%v prefix=%v", i, full, prefix)
		}
	}
}

func TestBreakdownSumsToTax(t *testing.T) {
	brackets := testTable().Federal["head_of_household"]
	for _, income := range []float64{0, 5000, 16550, 80000, 250000, 1e6} {
		rows := Breakdown(income, brackets)
		sum := 0.0
		for _, r := range rows {
			sum += r.Tax
			if r.Upper <= r.Lower {
				t.Fatalf("income %v: empty row %+v", income, r)
			}
		}
		if want := ComputeProgressiveTax(income, brackets); math.Abs(sum-want) > 1e-6 {
			t.Fatalf("income %v: breakdown sum %v, tax %v", income, sum, want)
		}
	}
}

func TestFederalTaxMonotonicAndZeroBelowDeduction(t *testing.T) {
	c := NewCalculator(testTable(), zap.NewNop())
	for _, status := range model.FilingStatuses {
		prev := -1.0
		for income := 0.0; income <= 900000; income += 2500 {
			got, err := c.FederalTax(income, status)
			if err != nil {
				t.Fatalf("%s: %v", status, err)
			}
			if got < prev {
				t.Fatalf("%s: tax decreased at %v: %v < %v", status, income, got, prev)
			}
			if income <= c.Table().Deduction(status) && got != 0 {
				t.Fatalf("%s: expected zero tax at %v, got %v", status, income, got)
			}
			prev = got
		}
	}
}

func TestFederalTaxMissingStatusIsConfigError(t *testing.T) {
	table := testTable()
	delete(table.Federal, "head_of_household")
	c := NewCalculator(table, nil)

	_, err := c.FederalTax(50000, model.FilingHeadOfHousehold)
	var cfgErr *model.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if _, err := c.Calc(Input{AnnualIncome: 1, FilingStatus: model.FilingHeadOfHousehold}); !errors.As(err, &cfgErr) {
		t.Fatalf("Calc: expected ConfigError, got %v", err)
	}
}

func TestStateTaxResolution(t *testing.T) {
	c := NewCalculator(testTable(), zap.NewNop())
	str := func(s string) *string { return &s }

	tests := []struct {
		name     string
		income   float64
		code     *string
		manual   float64
		wantMode Mode
		wantTax  float64
		wantRate *float64
	}{
		{"manual rate", 100000, nil, 0.08, ModeFlatManual, 8000, rate(0.08)},
		{"manual default zero", 100000, nil, 0, ModeFlatManual, 0, rate(0)},
		{"blank code is manual", 100000, str("  "), 0.05, ModeFlatManual, 5000, rate(0.05)},
		{"no tax state", 250000, str("TX"), 0.08, ModeNoTax, 0, rate(0)},
		{"lower-case code", 250000, str("wa"), 0, ModeNoTax, 0, rate(0)},
		{"flat state", 100000, str("IL"), 0.08, ModeFlat, 4950, rate(0.0495)},
		{"progressive state", 54600, str("CA"), 0, ModeProgressive, 100 + 400 + 400, nil},
		{"unknown state", 100000, str("ZZ"), 0.08, ModeUnknown, 0, rate(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.StateTax(tt.income, model.FilingSingle, tt.code, tt.manual)
			if got.Mode != tt.wantMode {
				t.Fatalf("mode = %s, want %s", got.Mode, tt.wantMode)
			}
			if math.Abs(got.Tax-tt.wantTax) > 1e-6 {
				t.Fatalf("tax = %v, want %v", got.Tax, tt.wantTax)
			}
			switch {
			case tt.wantRate == nil && got.Rate != nil:
				t.Fatalf("rate = %v, want nil", *got.Rate)
			case tt.wantRate != nil && (got.Rate == nil || math.Abs(*got.Rate-*tt.wantRate) > 1e-12):
				t.Fatalf("rate = %v, want %v", got.Rate, *tt.wantRate)
			}
		})
	}
}

func TestStateTaxProgressiveWithoutStatusIsUnknown(t *testing.T) {
	c := NewCalculator(testTable(), zap.NewNop())
	code := "CA"
	got := c.StateTax(90000, model.FilingMarriedJoint, &code, 0)
	if got.Mode != ModeUnknown || got.Tax != 0 {
		t.Fatalf("got %+v", got)
	}
}

func TestStateTaxUnknownLogsWarning(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	c := NewCalculator(testTable(), zap.New(core))
	code := "XX"
	c.StateTax(100000, model.FilingSingle, &code, 0)

	entries := logs.FilterField(zap.String("state_code", "XX")).All()
	if len(entries) != 1 {
		t.Fatalf("expected one warning for XX, got %d", logs.Len())
	}
}

func TestNoTaxStateIgnoresIncome(t *testing.T) {
	c := NewCalculator(testTable(), zap.NewNop())
	code := "FL"
	for _, income := range []float64{0, 1, 50000, 1e7} {
		if got := c.StateTax(income, model.FilingSingle, &code, 0.1); got.Tax != 0 {
			t.Fatalf("income %v: tax %v", income, got.Tax)
		}
	}
}

func TestCalc(t *testing.T) {
	c := NewCalculator(testTable(), zap.NewNop())
	code := "CO"
	res, err := c.Calc(Input{AnnualIncome: 100000, FilingStatus: model.FilingSingle, StateCode: &code})
	if err != nil {
		t.Fatal(err)
	}

	fed := 1160 + (47150-11600)*0.12 + (85400-47150)*0.22
	if res.FederalTax != 13841 || math.Abs(fed-13841) > 1e-6 {
		t.Fatalf("federal = %v", res.FederalTax)
	}
	if res.StateTax != 4400 || res.State.Mode != ModeFlat {
		t.Fatalf("state = %v (%s)", res.StateTax, res.State.Mode)
	}
	if res.NetAnnual != 81759 {
		t.Fatalf("net = %v", res.NetAnnual)
	}
	if res.MonthlyTakehome != 6813.25 {
		t.Fatalf("monthly = %v", res.MonthlyTakehome)
	}
	if len(res.FederalBreakdown) != 3 {
		t.Fatalf("expected 3 federal rows, got %d", len(res.FederalBreakdown))
	}
}

func TestCalcNetFlooredAtZero(t *testing.T) {
	c := NewCalculator(testTable(), zap.NewNop())
	res, err := c.Calc(Input{AnnualIncome: 20000, FilingStatus: model.FilingSingle, StateRate: 2})
	if err != nil {
		t.Fatal(err)
	}
	if res.NetAnnual != 0 || res.MonthlyTakehome != 0 {
		t.Fatalf("net = %v monthly = %v", res.NetAnnual, res.MonthlyTakehome)
	}
}

func TestWriteBreakdownCSV(t *testing.T) {
	brackets := testTable().Federal["single"]
	path := filepath.Join(t.TempDir(), "breakdown.csv")
	err := WriteBreakdownCSV(path, map[string][]BracketRow{
		"CA":      Breakdown(20000, testTable().Progressive["CA"]["single"]),
		"federal": Breakdown(50000, brackets),
	})
	if err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1+3+2 {
		t.Fatalf("expected 6 records, got %d", len(records))
	}
	if records[1][0] != "federal" || records[4][0] != "CA" {
		t.Fatalf("unexpected scope order: %v / %v", records[1][0], records[4][0])
	}
}

func TestWriteBreakdownCSVReportsFlushError(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}
	rows := Breakdown(50000, testTable().Federal["single"])
	if err := WriteBreakdownCSV("/dev/full", map[string][]BracketRow{"federal": rows}); err == nil {
		t.Fatal("expected the write to a full device to fail")
	}
}
