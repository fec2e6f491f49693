package reading

import (
	"math"
	"time"
)

type Field string

const (
	FieldX Field = "x"
	FieldY Field = "y"
)

type Reading struct {
	ID uint64    `json:"id" yaml:"id"`
	X  []float64 `json:"x" yaml:"x"`
	Y  []float64 `json:"y" yaml:"y"`
	At time.Time `json:"at,omitempty" yaml:"at,omitempty"`
}

func (r Reading) Len() int {
	return len(r.X)
}

func (r Reading) Clone() Reading {
	return Reading{
		ID: r.ID,
		X:  append([]float64{}, r.X...),
		Y:  append([]float64{}, r.Y...),
		At: r.At,
	}
}

// Conversion scales a value and optionally replaces it by its reciprocal afterwards.
// A zero Scale means 1.
type Conversion struct {
	Scale      float64 `yaml:"scale,omitempty" json:"scale,omitempty"`
	Reciprocal bool    `yaml:"reciprocal,omitempty" json:"reciprocal,omitempty"`
}

func (c Conversion) Apply(v float64) (float64, bool) {
	if c.Scale != 0 {
		v *= c.Scale
	}

	if c.Reciprocal {
		if v == 0 {
			return 0, false
		}

		v = 1 / v
	}

	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}

	return v, true
}

func (c Conversion) IsIdentity() bool {
	return (c.Scale == 0 || c.Scale == 1) && !c.Reciprocal
}

type Policy struct {
	RequirePositive bool       `yaml:"requirePositive" json:"requirePositive"`
	X               Conversion `yaml:"x" json:"x"`
	Y               Conversion `yaml:"y" json:"y"`
}

const (
	NanometerToMeter = 1e-9
	TerahertzToHertz = 1e12
)

// StrictPolicy takes wavelengths in nm and frequencies in THz and yields metres against seconds.
func StrictPolicy() Policy {
	return Policy{
		RequirePositive: true,
		X:               Conversion{Scale: NanometerToMeter},
		Y:               Conversion{Scale: TerahertzToHertz, Reciprocal: true},
	}
}

// HertzPolicy takes wavelengths in nm and frequencies in Hz.
func HertzPolicy() Policy {
	return Policy{
		RequirePositive: true,
		X:               Conversion{Scale: NanometerToMeter},
		Y:               Conversion{Reciprocal: true},
	}
}

// RawPolicy stores values as entered.
func RawPolicy() Policy {
	return Policy{}
}

type Labels struct {
	X string `yaml:"x" json:"x"`
	Y string `yaml:"y" json:"y"`
}

func DefaultLabels() Labels {
	return Labels{
		X: "Wavelength (m)",
		Y: "1/Frequency (s)",
	}
}
