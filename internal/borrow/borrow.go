package borrow

import (
	"math"

	"household-calc/internal/mathutil"
)

// IncomeBasis names the monthly income the DTI ratios are applied to.
type IncomeBasis string

const (
	BasisGross IncomeBasis = "gross"
	BasisNet   IncomeBasis = "net"
)

// LimitReason names the binding constraint on the monthly P&I payment.
type LimitReason string

const (
	LimitDTI     LimitReason = "dti"
	LimitSurplus LimitReason = "surplus"
)

// Request holds validated borrowing inputs. Ratios are fractions in [0,1].
type Request struct {
	AnnualIncome          float64
	OtherMonthlyDebt      float64
	RateAnnual            float64
	TermYears             int
	TaxesInsuranceMonthly float64
	FrontEndRatio         float64
	BackEndRatio          float64
	UseTakehome           bool
	MonthlyTakehome       *float64
	SurplusLimit          *float64
}

// Result carries monetary values rounded to cents.
type Result struct {
	MonthlyPIDti        float64
	MaxPrincipalDti     float64
	MonthlyPISurplus    float64
	MaxPrincipalSurplus float64
	MonthlyPIUsed       float64
	MaxPrincipalUsed    float64
	RateAnnual          float64
	TermYears           int
	IncomeBasis         IncomeBasis
	LimitReason         LimitReason
}

// MonthlyBasis returns the monthly income the DTI ratios apply to. Take-home
// is used only when the caller opts in and supplies it.
func MonthlyBasis(req Request) (float64, IncomeBasis) {
	if req.UseTakehome && req.MonthlyTakehome != nil {
		return mathutil.Floor0(*req.MonthlyTakehome), BasisNet
	}
	return req.AnnualIncome / monthsPerYear, BasisGross
}

// DTICap is the largest monthly P&I allowed by both the front-end
// (housing-only) and back-end (all debt) ratios, net of escrow.
func DTICap(req Request, baseMonthly float64) float64 {
	front := mathutil.Floor0(baseMonthly*req.FrontEndRatio - req.TaxesInsuranceMonthly)
	back := mathutil.Floor0(baseMonthly*req.BackEndRatio - req.OtherMonthlyDebt - req.TaxesInsuranceMonthly)
	return mathutil.Floor0(math.Min(front, back))
}

// Calculate sizes the loan. Without a surplus limit the DTI cap is used. With
// one, the surplus is used only when strictly below the DTI cap; ties go to
// DTI.
func Calculate(req Request) *Result {
	baseMonthly, basis := MonthlyBasis(req)
	dtiCap := DTICap(req, baseMonthly)

	surplusCap := 0.0
	used, reason := dtiCap, LimitDTI
	if req.SurplusLimit != nil {
		surplusCap = mathutil.Floor0(*req.SurplusLimit)
		if surplusCap < dtiCap {
			used, reason = surplusCap, LimitSurplus
		}
	}

	principal := func(payment float64) float64 {
		return mathutil.Currency(PaymentToPrincipal(payment, req.RateAnnual, req.TermYears))
	}
	return &Result{
		MonthlyPIDti:        mathutil.Currency(dtiCap),
		MaxPrincipalDti:     principal(dtiCap),
		MonthlyPISurplus:    mathutil.Currency(surplusCap),
		MaxPrincipalSurplus: principal(surplusCap),
		MonthlyPIUsed:       mathutil.Currency(used),
		MaxPrincipalUsed:    principal(used),
		RateAnnual:          req.RateAnnual,
		TermYears:           req.TermYears,
		IncomeBasis:         basis,
		LimitReason:         reason,
	}
}
