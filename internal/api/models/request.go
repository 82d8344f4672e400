package models

// Pointer fields distinguish "absent" from zero, so `required` accepts an
// explicit 0 while still rejecting a missing field.

// TaxRequest represents the request body for POST /api/calc/tax
type TaxRequest struct {
	AnnualIncome *float64 `json:"annual_income" binding:"required,gte=0"`
	FilingStatus string   `json:"filing_status" binding:"required,oneof=single married_joint head_of_household"`
	StateRate    *float64 `json:"state_rate,omitempty" binding:"omitempty,gte=0"` // default: 0
	StateCode    *string  `json:"state_code,omitempty"`                           // null = use state_rate
}

// BudgetRequest represents the request body for POST /api/calc/budget
type BudgetRequest struct {
	MonthlyTakehome *float64 `json:"monthly_takehome" binding:"required,gte=0"`         // accepted, not used for scaling
	Adults          *int     `json:"adults,omitempty" binding:"omitempty,gte=1,lte=10"` // default: 1
	Kids            *int     `json:"kids,omitempty" binding:"omitempty,gte=0,lte=10"`   // default: 0
}

// BorrowRequest represents the request body for POST /api/calc/borrow.
// Either preset or both ratios must be given; explicit ratios override the
// preset's.
type BorrowRequest struct {
	AnnualIncome          *float64 `json:"annual_income" binding:"required,gte=0"`
	OtherMonthlyDebt      float64  `json:"other_monthly_debt" binding:"gte=0"`
	RateAnnual            *float64 `json:"rate_annual" binding:"required,gte=0"`
	TermYears             int      `json:"term_years" binding:"required,gte=1"`
	TaxesInsuranceMonthly float64  `json:"taxes_insurance_monthly" binding:"gte=0"`
	Preset                string   `json:"preset,omitempty" binding:"omitempty,oneof=conventional fha va"`
	FrontEndRatio         *float64 `json:"front_end_ratio,omitempty" binding:"omitempty,gte=0,lte=1"`
	BackEndRatio          *float64 `json:"back_end_ratio,omitempty" binding:"omitempty,gte=0,lte=1"`
	UseTakehome           bool     `json:"use_takehome"`
	MonthlyTakehome       *float64 `json:"monthly_takehome,omitempty"`
	SurplusLimit          *float64 `json:"surplus_limit,omitempty" binding:"omitempty,gte=0"`
}

// PlanRequest represents the request body for POST /api/calc/plan. It carries
// the tax and household inputs plus the loan terms; take-home pay and the
// surplus limit are derived server-side.
type PlanRequest struct {
	AnnualIncome          *float64 `json:"annual_income" binding:"required,gte=0"`
	FilingStatus          string   `json:"filing_status" binding:"required,oneof=single married_joint head_of_household"`
	StateRate             *float64 `json:"state_rate,omitempty" binding:"omitempty,gte=0"`
	StateCode             *string  `json:"state_code,omitempty"`
	Adults                *int     `json:"adults,omitempty" binding:"omitempty,gte=1,lte=10"`
	Kids                  *int     `json:"kids,omitempty" binding:"omitempty,gte=0,lte=10"`
	OtherMonthlyDebt      float64  `json:"other_monthly_debt" binding:"gte=0"`
	RateAnnual            *float64 `json:"rate_annual" binding:"required,gte=0"`
	TermYears             int      `json:"term_years" binding:"required,gte=1"`
	TaxesInsuranceMonthly float64  `json:"taxes_insurance_monthly" binding:"gte=0"`
	Preset                string   `json:"preset,omitempty" binding:"omitempty,oneof=conventional fha va"`
	FrontEndRatio         *float64 `json:"front_end_ratio,omitempty" binding:"omitempty,gte=0,lte=1"`
	BackEndRatio          *float64 `json:"back_end_ratio,omitempty" binding:"omitempty,gte=0,lte=1"`
	UseTakehome           bool     `json:"use_takehome"`
}
