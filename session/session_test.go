package session

import (
	"errors"
	"strings"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/liblightfit/fit"
	"github.com/sgostarter/liblightfit/reading"
	"github.com/stretchr/testify/assert"
)

type countingEngine struct {
	fit.Engine
	fits int
}

func (e *countingEngine) Fit(r reading.Reading, degree int) (fit.Result, error) {
	e.fits++

	return e.Engine.Fit(r, degree)
}

func (e *countingEngine) FitPooled(rs []reading.Reading, degree int) (fit.Result, error) {
	e.fits++

	return e.Engine.FitPooled(rs, degree)
}

func newTestSession(policy reading.Policy) *Session {
	return NewSession(reading.NewStore(nil, nil, reading.PolicyOption(policy)), nil, nil,
		l.NewConsoleLoggerWrapper())
}

// lightPeriods returns periods in THz^-1 units for wavelengths in nm, so that
// StrictPolicy turns them into an exact c line.
func lightPeriods(nms []float64) string {
	const c = 299792458.0

	ss := make([]string, 0, len(nms))
	for _, nm := range nms {
		ss = append(ss, fit.FormatScientificPrec(c/(nm*1e-9)/1e12, 12))
	}

	return strings.NewReplacer(" × 10^", "e").Replace(strings.Join(ss, " "))
}

func TestAddReadingEcho(t *testing.T) {
	s := newTestSession(reading.RawPolicy())

	r, echo, err := s.AddReading("1 2", "3 4.5")
	assert.Nil(t, err)
	assert.EqualValues(t, 2, r.Len())
	assert.EqualValues(t, "Added Wavelength (m): 1, 2\nAdded 1/Frequency (s): 3, 4.5", echo)

	_, echo, err = s.AddReading("100", "1 2")
	assert.True(t, errors.Is(err, reading.ErrLengthMismatch))
	assert.Empty(t, echo)

	rs, err := s.Readings()
	assert.Nil(t, err)
	assert.Len(t, rs, 1)
}

func TestNoReadings(t *testing.T) {
	s := newTestSession(reading.StrictPolicy())

	_, err := s.EstimateAll()
	assert.True(t, errors.Is(err, ErrNoReadings))

	_, err = s.EstimatePooled()
	assert.True(t, errors.Is(err, ErrNoReadings))

	_, err = s.Summary()
	assert.True(t, errors.Is(err, ErrNoReadings))

	_, err = s.FitPooled(1)
	assert.True(t, errors.Is(err, ErrNoReadings))

	_, err = s.PlotData(nil, 0)
	assert.True(t, errors.Is(err, ErrNoReadings))

	_, err = s.Fit(0, 1)
	assert.True(t, errors.Is(err, commerr.ErrNotFound))
}

func TestEstimateAllAndSummary(t *testing.T) {
	s := newTestSession(reading.StrictPolicy())

	nms := []float64{400, 500, 600, 700}

	_, _, err := s.AddReading("400 500 600 700", lightPeriods(nms))
	assert.Nil(t, err)

	_, _, err = s.AddReading("450 550 650", lightPeriods([]float64{450, 550, 650}))
	assert.Nil(t, err)

	ests, err := s.EstimateAll()
	assert.Nil(t, err)
	assert.Len(t, ests, 2)

	for _, est := range ests {
		assert.InEpsilon(t, 299792458.0, est.Value, 1e-6)
	}

	summary, err := s.Summary()
	assert.Nil(t, err)
	assert.EqualValues(t, "Calculated Speed of Light (m/s): 3.00 × 10^8, 3.00 × 10^8", summary)

	summary, err = s.PooledSummary()
	assert.Nil(t, err)
	assert.EqualValues(t, "Calculated Speed of Light: 3.00 × 10^8 m/s\n(Using linear regression)", summary)
}

func TestEstimateAllReportsFailingReading(t *testing.T) {
	s := newTestSession(reading.RawPolicy())

	_, _, err := s.AddReading("1 2 3", "2 4 6")
	assert.Nil(t, err)

	_, _, err = s.AddReading("400 500 600", "1 1 1")
	assert.Nil(t, err)

	_, err = s.EstimateAll()
	assert.True(t, errors.Is(err, fit.ErrDegenerateFit))
	assert.Contains(t, err.Error(), "reading 2")

	_, _, err = s.AddReading("7", "8")
	assert.Nil(t, err)

	_, err = s.EstimateAll()
	assert.True(t, errors.Is(err, fit.ErrDegenerateFit))
}

func TestFitCache(t *testing.T) {
	engine := &countingEngine{Engine: fit.NewEngine(nil)}

	s := NewSession(reading.NewStore(nil, nil, reading.PolicyOption(reading.RawPolicy())), engine, nil, nil)

	_, _, err := s.AddReading("1 2 3", "3 5 7")
	assert.Nil(t, err)

	res, err := s.Fit(0, 1)
	assert.Nil(t, err)
	assert.InDelta(t, 2, res.Slope(), 1e-9)

	_, err = s.Fit(0, 1)
	assert.Nil(t, err)
	assert.EqualValues(t, 1, engine.fits)

	_, err = s.Fit(0, 2)
	assert.Nil(t, err)
	assert.EqualValues(t, 2, engine.fits)

	_, err = s.FitPooled(1)
	assert.Nil(t, err)
	_, err = s.FitPooled(1)
	assert.Nil(t, err)
	assert.EqualValues(t, 3, engine.fits)

	_, _, err = s.AddReading("4", "9")
	assert.Nil(t, err)

	res, err = s.FitPooled(1)
	assert.Nil(t, err)
	assert.EqualValues(t, 4, engine.fits)
	assert.EqualValues(t, 4, res.Points)

	_, err = s.Fit(0, 5)
	assert.True(t, errors.Is(err, fit.ErrInsufficientPoints))
	_, err = s.Fit(0, 5)
	assert.True(t, errors.Is(err, fit.ErrInsufficientPoints))
	assert.EqualValues(t, 6, engine.fits)
}

func TestPlotData(t *testing.T) {
	s := newTestSession(reading.RawPolicy())

	_, _, err := s.AddReading("1 2", "2 4")
	assert.Nil(t, err)

	_, _, err = s.AddReading("3", "6")
	assert.Nil(t, err)

	pd, err := s.PlotData(nil, 10)
	assert.Nil(t, err)
	assert.EqualValues(t, "Wavelength (m)", pd.XLabel)
	assert.EqualValues(t, "1/Frequency (s)", pd.YLabel)

	assert.Len(t, pd.Series, 2)
	assert.EqualValues(t, "Reading 1", pd.Series[0].Label)
	assert.EqualValues(t, []float64{1, 2}, pd.Series[0].X)
	assert.EqualValues(t, "Reading 2", pd.Series[1].Label)

	assert.Len(t, pd.Trendlines, 2)
	assert.EqualValues(t, 1, pd.Trendlines[0].Degree)
	assert.EqualValues(t, 2, pd.Trendlines[1].Degree)
	assert.Len(t, pd.Trendlines[0].X, 10)
	assert.EqualValues(t, 1, pd.Trendlines[0].X[0])
	assert.EqualValues(t, 3, pd.Trendlines[0].X[9])
	assert.InDelta(t, 6, pd.Trendlines[0].Y[9], 1e-9)

	assert.Len(t, pd.Skipped, 1)
	assert.EqualValues(t, 3, pd.Skipped[0].Degree)
	assert.NotEmpty(t, pd.Skipped[0].Reason)

	pd, err = s.PlotData([]int{}, 0)
	assert.Nil(t, err)
	assert.Empty(t, pd.Trendlines)
	assert.Empty(t, pd.Skipped)
}

func TestConfigNormalize(t *testing.T) {
	cfg := &Config{Precision: 4, TrendlineDegrees: []int{1}}
	cfg.Normalize()

	assert.EqualValues(t, reading.DefaultLabels(), cfg.Labels)
	assert.EqualValues(t, []int{1}, cfg.TrendlineDegrees)
	assert.EqualValues(t, fit.DefaultTrendlineSamples, cfg.TrendlineSamples)
	assert.EqualValues(t, 4, cfg.Precision)
	assert.True(t, cfg.FitCacheTTL > 0)

	s := NewSession(reading.NewStore(nil, nil), nil, cfg, nil)
	assert.EqualValues(t, 4, s.Config().Precision)
}
