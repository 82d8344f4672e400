package models

import "household-calc/internal/tax"

// TaxResponse represents the response from POST /api/calc/tax
type TaxResponse struct {
	Federal         FederalDetails `json:"federal"`
	StateTax        float64        `json:"state_tax"`
	StateDetails    StateDetails   `json:"state_details"`
	NetAnnual       float64        `json:"net_annual"`
	MonthlyTakehome float64        `json:"monthly_takehome"`
}

// FederalDetails contains federal tax and its per-bracket breakdown
type FederalDetails struct {
	FederalTax float64          `json:"federal_tax"`
	Breakdown  []tax.BracketRow `json:"breakdown"`
}

// StateDetails explains how the state tax was resolved.
// Rate is null in progressive mode.
type StateDetails struct {
	Mode      string           `json:"mode"` // "flat_manual", "no_tax", "flat", "progressive", "unknown"
	Rate      *float64         `json:"rate"`
	Tax       float64          `json:"tax"`
	Breakdown []tax.BracketRow `json:"breakdown,omitempty"`
}

// BudgetResponse represents the response from POST /api/calc/budget
type BudgetResponse struct {
	Equivalence float64            `json:"equivalence"`
	Allocations map[string]float64 `json:"allocations"`
	Exponents   map[string]float64 `json:"exponents"`
}

// BorrowResponse represents the response from POST /api/calc/borrow
type BorrowResponse struct {
	MonthlyPIDti        float64           `json:"monthly_PI_dti"`
	MaxPrincipalDti     float64           `json:"max_principal_dti"`
	MonthlyPISurplus    float64           `json:"monthly_PI_surplus"`
	MaxPrincipalSurplus float64           `json:"max_principal_surplus"`
	MonthlyPIUsed       float64           `json:"monthly_PI_used"`
	MaxPrincipalUsed    float64           `json:"max_principal_used"`
	Assumptions         BorrowAssumptions `json:"assumptions"`
	LimitReason         string            `json:"limit_reason"` // "dti" or "surplus"
}

// BorrowAssumptions echoes the terms the principal was sized with
type BorrowAssumptions struct {
	RateAnnual  float64 `json:"rate_annual"`
	TermYears   int     `json:"term_years"`
	IncomeBasis string  `json:"income_basis"` // "gross" or "net"
}

// PlanResponse represents the response from POST /api/calc/plan
type PlanResponse struct {
	Tax      TaxResponse      `json:"tax"`
	Budget   BudgetResponse   `json:"budget"`
	Borrow   BorrowResponse   `json:"borrow"`
	CashFlow CashFlowResponse `json:"cash_flow"`
}

// CashFlowResponse is the monthly cash flow after the survival budget and the
// mortgage payment
type CashFlowResponse struct {
	MonthlyTakehome       float64 `json:"monthly_takehome"`
	BaseCosts             float64 `json:"base_costs"` // budget excluding savings
	SurplusBeforeMortgage float64 `json:"surplus_before_mortgage"`
	MortgagePI            float64 `json:"mortgage_PI"`
	TotalCosts            float64 `json:"total_costs"`
	CashFlow              float64 `json:"cash_flow"`
	Label                 string  `json:"label"` // "surplus" or "deficit"
}

// PresetInfo describes a DTI ratio preset
type PresetInfo struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	FrontEndRatio float64 `json:"front_end_ratio"`
	BackEndRatio  float64 `json:"back_end_ratio"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
