package fit

import (
	"fmt"
	"math"

	"github.com/openacid/slimarray/polyfit"
)

// normalization maps x onto roughly [-1, 1] so that the normal equations
// stay well conditioned for metre and second magnitudes.
func normalization(xs []float64) (mean, scale float64) {
	for _, x := range xs {
		mean += x
	}

	mean /= float64(len(xs))

	for _, x := range xs {
		if d := math.Abs(x - mean); d > scale {
			scale = d
		}
	}

	if scale == 0 || math.IsInf(scale, 0) || math.IsNaN(scale) {
		scale = 1
	}

	return
}

func solveAscending(ts, ys []float64, degree int) (betas []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &IllConditionedError{
				Degree: degree,
				Reason: fmt.Sprint(r),
			}
		}
	}()

	betas = polyfit.NewFit(ts, ys, degree).Solve()

	return
}

// denormalize rewrites sum(b[k] * ((x-mean)/scale)^k) as sum(a[j] * x^j).
func denormalize(betas []float64, mean, scale float64) []float64 {
	as := make([]float64, len(betas))

	for k := range betas {
		bk := betas[k] / math.Pow(scale, float64(k))
		binom := 1.0

		for j := k; j >= 0; j-- {
			as[j] += bk * binom * math.Pow(-mean, float64(k-j))
			binom = binom * float64(j) / float64(k-j+1)
		}
	}

	return as
}

// leastSquares returns the coefficients highest power first.
func leastSquares(xs, ys []float64, degree int) ([]float64, error) {
	mean, scale := normalization(xs)

	ts := make([]float64, len(xs))
	for idx, x := range xs {
		ts[idx] = (x - mean) / scale
	}

	betas, err := solveAscending(ts, ys, degree)
	if err != nil {
		return nil, err
	}

	if len(betas) != degree+1 {
		return nil, &IllConditionedError{
			Degree: degree,
			Reason: fmt.Sprintf("solver returned %d coefficients", len(betas)),
		}
	}

	as := denormalize(betas, mean, scale)

	coeffs := make([]float64, len(as))

	for idx, a := range as {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return nil, &IllConditionedError{
				Degree: degree,
				Reason: "non-finite coefficient",
			}
		}

		coeffs[len(as)-1-idx] = a
	}

	return coeffs, nil
}
