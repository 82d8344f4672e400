package budget

import (
	"math"
	"testing"

	"household-calc/internal/model"
)

func f(v float64) *float64 { return &v }

func testTable() *model.BudgetTable {
	return &model.BudgetTable{
		Equivalence: model.Equivalence{AdultExtra: f(0.5), Kid: f(0.3)},
		Exponents:   map[string]float64{"housing": 0.3, "food": 1.0},
		Categories: map[string]model.CategoryBase{
			"housing":        {BaseAdult: 1200, BaseKid: 0},
			"food":           {BaseAdult: 350, BaseKid: 250},
			"transportation": {BaseAdult: 400, BaseKid: 50},
			"savings":        {BaseAdult: 100, BaseKid: 25},
		},
	}
}

func TestAllocateSingleAdult(t *testing.T) {
	a := NewAllocator(testTable())
	res := a.Allocate(1, 0)

	if res.Equivalence != 1.0 {
		t.Fatalf("equivalence = %v, want 1.0", res.Equivalence)
	}
	for name, c := range testTable().Categories {
		if got := res.Allocations[name]; got != c.BaseAdult {
			t.Errorf("%s = %v, want %v", name, got, c.BaseAdult)
		}
	}
}

func TestAllocateScaling(t *testing.T) {
	a := NewAllocator(testTable())
	res := a.Allocate(2, 2)

	wantEq := 1 + 0.5 + 0.6
	if res.Equivalence != 2.1 {
		t.Fatalf("equivalence = %v, want %v", res.Equivalence, wantEq)
	}
	wantFood := (350*2 + 250*2) * math.Pow(wantEq, 1.0)
	if got := res.Allocations["food"]; math.Abs(got-wantFood) > 0.005 {
		t.Fatalf("food = %v, want %v", got, wantFood)
	}
	wantTransport := (400*2 + 50*2) * math.Pow(wantEq, model.DefaultExponent)
	if got := res.Allocations["transportation"]; math.Abs(got-wantTransport) > 0.005 {
		t.Fatalf("transportation = %v, want %v", got, wantTransport)
	}
	if got := res.Exponents["transportation"]; got != model.DefaultExponent {
		t.Fatalf("transportation exponent = %v, want default", got)
	}
}

func TestAllocateClampsHousehold(t *testing.T) {
	a := NewAllocator(testTable())
	got := a.Allocate(0, -3)
	want := a.Allocate(1, 0)
	for name := range want.Allocations {
		if got.Allocations[name] != want.Allocations[name] {
			t.Fatalf("%s: %v != %v", name, got.Allocations[name], want.Allocations[name])
		}
	}
}

func TestAllocateNonDecreasingInKids(t *testing.T) {
	a := NewAllocator(testTable())
	for adults := 1; adults <= 10; adults++ {
		prev := a.Allocate(adults, 0)
		for kids := 1; kids <= 10; kids++ {
			cur := a.Allocate(adults, kids)
			for name, v := range cur.Allocations {
				if v < prev.Allocations[name] {
					t.Fatalf("adults=%d kids=%d %s decreased: %v < %v", adults, kids, name, v, prev.Allocations[name])
				}
			}
			prev = cur
		}
	}
}

func TestEquivalenceDefaults(t *testing.T) {
	a := NewAllocator(&model.BudgetTable{Categories: map[string]model.CategoryBase{"food": {BaseAdult: 1}}})
	if got := a.Equivalence(3, 2); math.Abs(got-(1+2*model.DefaultAdultExtra+2*model.DefaultKidWeight)) > 1e-12 {
		t.Fatalf("equivalence = %v", got)
	}
}

func TestResultTotal(t *testing.T) {
	res := NewAllocator(testTable()).Allocate(1, 0)
	if got := res.Total(); got != 2050 {
		t.Fatalf("total = %v", got)
	}
	if got := res.Total("savings"); got != 1950 {
		t.Fatalf("total excluding savings = %v", got)
	}
}
