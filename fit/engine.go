package fit

import (
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/liblightfit/reading"
)

const DefaultTrendlineSamples = 100

type Engine interface {
	Fit(r reading.Reading, degree int) (Result, error)
	FitPooled(rs []reading.Reading, degree int) (Result, error)

	// SpeedOfLight is the reciprocal of the slope of the degree 1 fit of r,
	// which must hold wavelengths in metres against periods in seconds.
	SpeedOfLight(r reading.Reading) (Estimate, error)

	Trendline(res Result, xs []float64, samples int) Trendline
}

func NewEngine(logger l.Wrapper) Engine {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	return &engineImpl{
		logger: logger.WithFields(l.StringField(l.ClsKey, "engineImpl")),
	}
}

type engineImpl struct {
	logger l.Wrapper
}

func (impl *engineImpl) Fit(r reading.Reading, degree int) (res Result, err error) {
	if degree < 0 {
		err = commerr.ErrInvalidArgument

		return
	}

	if len(r.X) != len(r.Y) {
		err = &reading.LengthMismatchError{
			XLen: len(r.X),
			YLen: len(r.Y),
		}

		return
	}

	if len(r.X) < degree+1 {
		err = &InsufficientPointsError{
			Degree: degree,
			Need:   degree + 1,
			Got:    len(r.X),
		}

		return
	}

	coeffs, err := leastSquares(r.X, r.Y, degree)
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.IntField("degree", degree),
			l.IntField("points", len(r.X))).Debug("fit failed")

		return
	}

	res = Result{
		Degree: degree,
		Coeffs: coeffs,
		Points: len(r.X),
	}

	return
}

func (impl *engineImpl) FitPooled(rs []reading.Reading, degree int) (Result, error) {
	return impl.Fit(reading.Pool(rs), degree)
}

func (impl *engineImpl) SpeedOfLight(r reading.Reading) (est Estimate, err error) {
	res, err := impl.Fit(r, 1)
	if err != nil {
		return
	}

	slope := res.Slope()
	if slope == 0 {
		err = &DegenerateFitError{
			Intercept: res.Intercept(),
		}

		return
	}

	est = Estimate{
		Value: 1 / slope,
		Fit:   res,
	}

	return
}

func (impl *engineImpl) Trendline(res Result, xs []float64, samples int) Trendline {
	if samples <= 0 {
		samples = DefaultTrendlineSamples
	}

	t := Trendline{
		Degree: res.Degree,
	}

	if len(xs) == 0 {
		return t
	}

	lo, hi := xs[0], xs[0]

	for _, x := range xs[1:] {
		if x < lo {
			lo = x
		}

		if x > hi {
			hi = x
		}
	}

	t.X = make([]float64, samples)
	t.Y = make([]float64, samples)

	for idx := 0; idx < samples; idx++ {
		x := lo

		if idx == samples-1 {
			x = hi
		} else if samples > 1 {
			x = lo + (hi-lo)*float64(idx)/float64(samples-1)
		}

		t.X[idx] = x
		t.Y[idx] = res.Eval(x)
	}

	return t
}
