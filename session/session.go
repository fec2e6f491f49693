package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/liblightfit/fit"
	"github.com/sgostarter/liblightfit/reading"
)

var ErrNoReadings = errors.New("no readings, add readings first")

type Config struct {
	Labels           reading.Labels `yaml:"labels" json:"labels"`
	TrendlineDegrees []int          `yaml:"trendlineDegrees" json:"trendlineDegrees"`
	TrendlineSamples int            `yaml:"trendlineSamples" json:"trendlineSamples"`
	Precision        int            `yaml:"precision" json:"precision"`
	FitCacheTTL      time.Duration  `yaml:"fitCacheTTL" json:"fitCacheTTL"`
}

func (cfg *Config) Normalize() {
	if cfg.Labels.X == "" || cfg.Labels.Y == "" {
		cfg.Labels = reading.DefaultLabels()
	}

	if len(cfg.TrendlineDegrees) == 0 {
		cfg.TrendlineDegrees = []int{1, 2, 3}
	}

	if cfg.TrendlineSamples <= 0 {
		cfg.TrendlineSamples = fit.DefaultTrendlineSamples
	}

	if cfg.Precision <= 0 {
		cfg.Precision = 2
	}

	if cfg.FitCacheTTL <= 0 {
		cfg.FitCacheTTL = time.Minute * 10
	}
}

type Session struct {
	logger l.Wrapper
	cfg    Config
	store  reading.Store
	engine fit.Engine

	fits *cache.Cache
}

func NewSession(store reading.Store, engine fit.Engine, cfg *Config, logger l.Wrapper) *Session {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "Session"))

	if store == nil {
		logger.Fatal("no store")
	}

	if engine == nil {
		engine = fit.NewEngine(logger)
	}

	var c Config
	if cfg != nil {
		c = *cfg
	}

	c.Normalize()

	return &Session{
		logger: logger,
		cfg:    c,
		store:  store,
		engine: engine,
		fits:   cache.New(c.FitCacheTTL, c.FitCacheTTL*2),
	}
}

func (s *Session) Config() Config {
	return s.cfg
}

// AddReading stores one batch of readings and returns it with its echo text.
func (s *Session) AddReading(xText, yText string) (r reading.Reading, echo string, err error) {
	r, err = s.store.Add(xText, yText)
	if err != nil {
		if !reading.IsValidationError(err) {
			s.logger.WithFields(l.ErrorField(err)).Error("add reading failed")
		}

		return
	}

	echo = reading.Echo(r, s.cfg.Labels)

	return
}

func (s *Session) Readings() ([]reading.Reading, error) {
	return s.store.All()
}

func (s *Session) readingsOrErr() ([]reading.Reading, error) {
	rs, err := s.store.All()
	if err != nil {
		return nil, err
	}

	if len(rs) == 0 {
		return nil, ErrNoReadings
	}

	return rs, nil
}

func (s *Session) cachedFit(key string, fn func() (fit.Result, error)) (fit.Result, error) {
	if i, ok := s.fits.Get(key); ok {
		if res, ok := i.(fit.Result); ok {
			return res, nil
		}
	}

	res, err := fn()
	if err != nil {
		return res, err
	}

	s.fits.SetDefault(key, res)

	return res, nil
}

// Fit fits the reading at idx (0-based).
func (s *Session) Fit(idx, degree int) (fit.Result, error) {
	r, err := s.store.Get(idx)
	if err != nil {
		return fit.Result{}, err
	}

	return s.cachedFit(fmt.Sprintf("r:%d:%d", r.ID, degree), func() (fit.Result, error) {
		return s.engine.Fit(r, degree)
	})
}

// FitPooled fits all stored points together. Readings are append only, so
// the reading count identifies the pooled data.
func (s *Session) FitPooled(degree int) (fit.Result, error) {
	rs, err := s.readingsOrErr()
	if err != nil {
		return fit.Result{}, err
	}

	return s.fitPooled(rs, degree)
}

func (s *Session) fitPooled(rs []reading.Reading, degree int) (fit.Result, error) {
	return s.cachedFit(fmt.Sprintf("p:%d:%d", len(rs), degree), func() (fit.Result, error) {
		return s.engine.FitPooled(rs, degree)
	})
}

// EstimateAll returns one estimate per reading; the first failing reading aborts.
func (s *Session) EstimateAll() ([]fit.Estimate, error) {
	rs, err := s.readingsOrErr()
	if err != nil {
		return nil, err
	}

	ests := make([]fit.Estimate, 0, len(rs))

	for idx, r := range rs {
		est, err := s.engine.SpeedOfLight(r)
		if err != nil {
			return nil, fmt.Errorf("reading %d: %w", idx+1, err)
		}

		ests = append(ests, est)
	}

	return ests, nil
}

func (s *Session) EstimatePooled() (fit.Estimate, error) {
	rs, err := s.readingsOrErr()
	if err != nil {
		return fit.Estimate{}, err
	}

	return s.engine.SpeedOfLight(reading.Pool(rs))
}

// Summary formats EstimateAll, e.g. "Calculated Speed of Light (m/s): 3.00 × 10^8".
func (s *Session) Summary() (string, error) {
	ests, err := s.EstimateAll()
	if err != nil {
		return "", err
	}

	ss := make([]string, 0, len(ests))
	for _, est := range ests {
		ss = append(ss, fit.FormatScientificPrec(est.Value, s.cfg.Precision))
	}

	return "Calculated Speed of Light (m/s): " + strings.Join(ss, ", "), nil
}

func (s *Session) PooledSummary() (string, error) {
	est, err := s.EstimatePooled()
	if err != nil {
		return "", err
	}

	return "Calculated Speed of Light: " + fit.FormatScientificPrec(est.Value, s.cfg.Precision) +
		" m/s\n(Using linear regression)", nil
}
