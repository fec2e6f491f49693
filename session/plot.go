package session

import (
	"fmt"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/liblightfit/fit"
	"github.com/sgostarter/liblightfit/reading"
)

type Series struct {
	Label string    `json:"label" yaml:"label"`
	X     []float64 `json:"x" yaml:"x"`
	Y     []float64 `json:"y" yaml:"y"`
}

type SkippedFit struct {
	Degree int    `json:"degree" yaml:"degree"`
	Reason string `json:"reason" yaml:"reason"`
}

// PlotData is everything a chart needs; drawing it is up to the caller.
type PlotData struct {
	XLabel     string          `json:"xLabel" yaml:"xLabel"`
	YLabel     string          `json:"yLabel" yaml:"yLabel"`
	Series     []Series        `json:"series" yaml:"series"`
	Trendlines []fit.Trendline `json:"trendlines,omitempty" yaml:"trendlines,omitempty"`
	Skipped    []SkippedFit    `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// PlotData returns one series per reading plus pooled trendlines for degrees.
// A nil degrees uses the configured trendline degrees, an empty non-nil one disables trendlines.
// Degrees that cannot be fitted are listed in Skipped.
func (s *Session) PlotData(degrees []int, samples int) (*PlotData, error) {
	rs, err := s.readingsOrErr()
	if err != nil {
		return nil, err
	}

	if degrees == nil {
		degrees = s.cfg.TrendlineDegrees
	}

	if samples <= 0 {
		samples = s.cfg.TrendlineSamples
	}

	pd := &PlotData{
		XLabel: s.cfg.Labels.X,
		YLabel: s.cfg.Labels.Y,
		Series: make([]Series, 0, len(rs)),
	}

	for idx, r := range rs {
		pd.Series = append(pd.Series, Series{
			Label: fmt.Sprintf("Reading %d", idx+1),
			X:     r.X,
			Y:     r.Y,
		})
	}

	pooled := reading.Pool(rs)

	for _, degree := range degrees {
		res, err := s.fitPooled(rs, degree)
		if err != nil {
			s.logger.WithFields(l.ErrorField(err), l.IntField("degree", degree)).Debug("skip trendline")

			pd.Skipped = append(pd.Skipped, SkippedFit{
				Degree: degree,
				Reason: err.Error(),
			})

			continue
		}

		pd.Trendlines = append(pd.Trendlines, s.engine.Trendline(res, pooled.X, samples))
	}

	return pd, nil
}
