package fit

import (
	"fmt"
	"math"
	"strconv"
)

// SplitScientific returns coef and exp with v == coef * 10^exp and exp == floor(log10(|v|)).
func SplitScientific(v float64) (coef float64, exp int) {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v, 0
	}

	exp = int(math.Floor(math.Log10(math.Abs(v))))
	coef = v / math.Pow(10, float64(exp))

	// log10 may land just below an exact power of ten
	for math.Abs(coef) >= 10 {
		coef /= 10
		exp++
	}

	for math.Abs(coef) < 1 {
		coef *= 10
		exp--
	}

	return
}

func FormatScientific(v float64) string {
	return FormatScientificPrec(v, 2)
}

func FormatScientificPrec(v float64, prec int) string {
	if v == 0 {
		return "0"
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	if prec < 0 {
		prec = 2
	}

	coef, exp := SplitScientific(v)

	if math.Abs(roundTo(coef, prec)) >= 10 {
		coef /= 10
		exp++
	}

	return fmt.Sprintf("%.*f × 10^%d", prec, coef, exp)
}

func roundTo(v float64, prec int) float64 {
	p := math.Pow(10, float64(prec))

	return math.Round(v*p) / p
}
