package reading

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// ParseValues splits text on whitespace and parses every token as a float.
func ParseValues(field Field, text string) ([]float64, error) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil, &EmptyInputError{Field: field}
	}

	vs := make([]float64, 0, len(tokens))

	for idx, token := range tokens {
		v, err := cast.ToFloat64E(token)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &ParseError{
				Field: field,
				Index: idx,
				Token: token,
			}
		}

		vs = append(vs, v)
	}

	return vs, nil
}

func checkPositive(field Field, vs []float64) error {
	for idx, v := range vs {
		if v <= 0 {
			return &NonPositiveValueError{
				Field: field,
				Index: idx,
				Value: v,
			}
		}
	}

	return nil
}

func convert(field Field, c Conversion, vs []float64) ([]float64, error) {
	out := make([]float64, len(vs))

	for idx, v := range vs {
		cv, ok := c.Apply(v)
		if !ok {
			return nil, &NonPositiveValueError{
				Field: field,
				Index: idx,
				Value: v,
			}
		}

		out[idx] = cv
	}

	return out, nil
}

// Validate runs the checks and conversions of policy over already parsed values.
func (p Policy) Validate(xs, ys []float64) (cxs, cys []float64, err error) {
	if len(xs) == 0 {
		err = &EmptyInputError{Field: FieldX}

		return
	}

	if len(ys) == 0 {
		err = &EmptyInputError{Field: FieldY}

		return
	}

	if p.RequirePositive {
		if err = checkPositive(FieldX, xs); err != nil {
			return
		}

		if err = checkPositive(FieldY, ys); err != nil {
			return
		}
	}

	if len(xs) != len(ys) {
		err = &LengthMismatchError{
			XLen: len(xs),
			YLen: len(ys),
		}

		return
	}

	if cxs, err = convert(FieldX, p.X, xs); err != nil {
		return
	}

	cys, err = convert(FieldY, p.Y, ys)

	return
}
