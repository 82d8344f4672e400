package model

const (
	DefaultAdultExtra = 0.5
	DefaultKidWeight  = 0.3
	DefaultExponent   = 0.7
)

// Equivalence holds the marginal household-size weights. Pointers distinguish
// "absent" (use the default) from an explicit zero.
type Equivalence struct {
	AdultExtra *float64 `json:"adult_extra,omitempty" yaml:"adult_extra,omitempty" toml:"adult_extra"`
	Kid        *float64 `json:"kid,omitempty" yaml:"kid,omitempty" toml:"kid"`
}

// CategoryBase is the monthly base cost of a category per adult and per kid.
type CategoryBase struct {
	BaseAdult float64 `json:"base_adult" yaml:"base_adult" toml:"base_adult"`
	BaseKid   float64 `json:"base_kid" yaml:"base_kid" toml:"base_kid"`
}

// BudgetTable is the survival-budget reference document.
type BudgetTable struct {
	Equivalence Equivalence             `json:"equivalence" yaml:"equivalence" toml:"equivalence"`
	Exponents   map[string]float64      `json:"exponents" yaml:"exponents" toml:"exponents"`
	Categories  map[string]CategoryBase `json:"categories" yaml:"categories" toml:"categories"`
}

func (t *BudgetTable) AdultExtra() float64 {
	if t.Equivalence.AdultExtra == nil {
		return DefaultAdultExtra
	}
	return *t.Equivalence.AdultExtra
}

func (t *BudgetTable) KidWeight() float64 {
	if t.Equivalence.Kid == nil {
		return DefaultKidWeight
	}
	return *t.Equivalence.Kid
}

// Exponent returns the economies-of-scale exponent for a category.
func (t *BudgetTable) Exponent(category string) float64 {
	if e, ok := t.Exponents[category]; ok {
		return e
	}
	return DefaultExponent
}

// CategoryNames returns the category names in sorted order.
func (t *BudgetTable) CategoryNames() []string {
	return sortedKeys(t.Categories)
}

func (t *BudgetTable) Validate() error {
	if t == nil {
		return budgetConfigError("", "table is nil")
	}
	if len(t.Categories) == 0 {
		return budgetConfigError("categories", "no categories defined")
	}
	if t.AdultExtra() < 0 {
		return budgetConfigError("equivalence.adult_extra", "negative weight %v", t.AdultExtra())
	}
	if t.KidWeight() < 0 {
		return budgetConfigError("equivalence.kid", "negative weight %v", t.KidWeight())
	}
	for _, name := range t.CategoryNames() {
		c := t.Categories[name]
		if c.BaseAdult < 0 || c.BaseKid < 0 {
			return budgetConfigError("categories."+name, "negative base cost")
		}
	}
	for _, name := range sortedKeys(t.Exponents) {
		if e := t.Exponents[name]; e < 0 {
			return budgetConfigError("exponents."+name, "negative exponent %v", e)
		}
	}
	return nil
}
