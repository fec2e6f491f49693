package fit

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrDegenerateFit      = errors.New("degenerate fit")
	ErrIllConditioned     = errors.New("ill-conditioned fit")
)

type InsufficientPointsError struct {
	Degree int
	Need   int
	Got    int
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("a degree %d fit needs at least %d points, got %d", e.Degree, e.Need, e.Got)
}

func (e *InsufficientPointsError) Is(target error) bool {
	return target == ErrInsufficientPoints
}

type DegenerateFitError struct {
	Intercept float64
}

func (e *DegenerateFitError) Error() string {
	return "slope is zero, the reciprocal is undefined"
}

func (e *DegenerateFitError) Is(target error) bool {
	return target == ErrDegenerateFit
}

type IllConditionedError struct {
	Degree int
	Reason string
}

func (e *IllConditionedError) Error() string {
	return fmt.Sprintf("degree %d fit could not be solved: %s", e.Degree, e.Reason)
}

func (e *IllConditionedError) Is(target error) bool {
	return target == ErrIllConditioned
}
