// Package borrow sizes the largest affordable loan under debt-to-income and
// budget-surplus constraints.
package borrow

import "math"

const monthsPerYear = 12

// PaymentToPrincipal inverts the amortizing-loan payment formula: the largest
// principal a monthly payment services at annualRate over years. A rate of
// zero or less means no discounting.
func PaymentToPrincipal(monthlyPayment, annualRate float64, years int) float64 {
	r := annualRate / monthsPerYear
	n := float64(years * monthsPerYear)
	if r <= 0 {
		return monthlyPayment * n
	}
	denom := r / (1 - math.Pow(1+r, -n))
	if denom == 0 {
		return 0
	}
	return monthlyPayment / denom
}

// PrincipalToPayment is the standard amortization formula.
func PrincipalToPayment(principal, annualRate float64, years int) float64 {
	r := annualRate / monthsPerYear
	n := float64(years * monthsPerYear)
	if n <= 0 {
		return 0
	}
	if r <= 0 {
		return principal / n
	}
	return principal * r / (1 - math.Pow(1+r, -n))
}
