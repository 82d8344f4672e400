// Package mathutil holds small numeric helpers shared by the calculators.
package mathutil

import "math"

// Round rounds val to the given number of decimal places, half away from zero.
func Round(val float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(val*p) / p
}

// Currency rounds to cents. Used on every monetary output; calculations keep
// full precision until this point.
func Currency(val float64) float64 {
	return Round(val, 2)
}

// Floor0 clamps negative values to zero.
func Floor0(val float64) float64 {
	return math.Max(0, val)
}
