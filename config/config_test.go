// nolint
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sgostarter/liblightfit/reading"
	"github.com/stretchr/testify/assert"
)

const (
	utRoot = "ut-data"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(utRoot)

	code := m.Run()

	_ = os.RemoveAll(utRoot)

	os.Exit(code)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.EqualValues(t, PolicyStrict, cfg.PolicyPreset)
	assert.EqualValues(t, reading.StrictPolicy(), cfg.Policy)
	assert.EqualValues(t, StorageMemory, cfg.Storage.Type)
	assert.EqualValues(t, []int{1, 2, 3}, cfg.Session.TrendlineDegrees)
	assert.EqualValues(t, reading.DefaultLabels(), cfg.Session.Labels)
}

func TestNormalize(t *testing.T) {
	cfg := &Config{PolicyPreset: PolicyHertz}
	assert.Nil(t, cfg.Normalize())
	assert.EqualValues(t, reading.HertzPolicy(), cfg.Policy)

	cfg = &Config{PolicyPreset: PolicyRaw}
	assert.Nil(t, cfg.Normalize())
	assert.EqualValues(t, reading.RawPolicy(), cfg.Policy)

	custom := reading.Policy{X: reading.Conversion{Scale: 1e-6}}
	cfg = &Config{PolicyPreset: PolicyCustom, Policy: custom}
	assert.Nil(t, cfg.Normalize())
	assert.EqualValues(t, custom, cfg.Policy)

	cfg = &Config{PolicyPreset: "kelvin"}
	assert.NotNil(t, cfg.Normalize())

	cfg = &Config{Storage: StorageConfig{Type: "tape"}}
	assert.NotNil(t, cfg.Normalize())

	cfg = &Config{Storage: StorageConfig{Type: StorageRedis}}
	assert.NotNil(t, cfg.Normalize())

	cfg = &Config{Storage: StorageConfig{Type: StorageFile}}
	assert.Nil(t, cfg.Normalize())
	assert.EqualValues(t, ".", cfg.Storage.Root)
}

func TestLoad(t *testing.T) {
	assert.Nil(t, os.MkdirAll(utRoot, 0o755))

	file := filepath.Join(utRoot, "lightfit.yaml")

	err := os.WriteFile(file, []byte(`
policyPreset: raw
storage:
  type: file
  root: ut-data/store
  prettySerial: true
session:
  trendlineDegrees: [1, 2]
  precision: 3
  fitCacheTTL: 5m
`), 0o600)
	assert.Nil(t, err)

	cfg, err := Load(file)
	assert.Nil(t, err)
	assert.EqualValues(t, reading.RawPolicy(), cfg.Policy)
	assert.EqualValues(t, StorageFile, cfg.Storage.Type)
	assert.EqualValues(t, "ut-data/store", cfg.Storage.Root)
	assert.True(t, cfg.Storage.PrettySerial)
	assert.EqualValues(t, []int{1, 2}, cfg.Session.TrendlineDegrees)
	assert.EqualValues(t, 3, cfg.Session.Precision)
	assert.EqualValues(t, 5*time.Minute, cfg.Session.FitCacheTTL)

	_, err = Load(filepath.Join(utRoot, "missing.yaml"))
	assert.NotNil(t, err)
}

func TestOpenMemory(t *testing.T) {
	s, closer, err := Open(nil, nil)
	assert.Nil(t, err)

	defer closer()

	r, _, err := s.AddReading("500", "600")
	assert.Nil(t, err)
	assert.InDelta(t, 5e-7, r.X[0], 1e-20)
}

func TestOpenFile(t *testing.T) {
	root := filepath.Join(utRoot, "open")
	_ = os.RemoveAll(root)

	cfg := &Config{
		PolicyPreset: PolicyRaw,
		Storage: StorageConfig{
			Type: StorageFile,
			Root: root,
		},
	}
	assert.Nil(t, cfg.Normalize())

	s, closer, err := Open(cfg, nil)
	assert.Nil(t, err)

	_, _, err = s.AddReading("1 2 3", "2 4 6")
	assert.Nil(t, err)
	closer()

	s, closer, err = Open(cfg, nil)
	assert.Nil(t, err)

	defer closer()

	rs, err := s.Readings()
	assert.Nil(t, err)
	assert.Len(t, rs, 1)
	assert.EqualValues(t, []float64{2, 4, 6}, rs[0].Y)

	est, err := s.EstimatePooled()
	assert.Nil(t, err)
	assert.InDelta(t, 0.5, est.Value, 1e-9)
}
