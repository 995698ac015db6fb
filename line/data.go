package line

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Errors returned by [Data.Validate] and [LoadData].
var (
	ErrLevelCount      = errors.New("line: per-level array length does not match nlev")
	ErrTransitionCount = errors.New("line: per-transition array length does not match nrad")
	ErrLevelIndex      = errors.New("line: transition level index out of range")
)

// Data describes the levels and radiative transitions of one species.
// Levels are indexed 0..NLev-1; for transition k, IRad[k] is the upper and
// JRad[k] the lower level.
type Data struct {
	Name string `yaml:"name"`

	NLev   int       `yaml:"nlev"`
	Weight []float64 `yaml:"weight"` // statistical weight per level
	Energy []float64 `yaml:"energy"` // level energy [J]

	NRad      int       `yaml:"nrad"`
	IRad      []int     `yaml:"irad"`      // upper level per transition
	JRad      []int     `yaml:"jrad"`      // lower level per transition
	Frequency []float64 `yaml:"frequency"` // rest frequency [Hz]
	A         []float64 `yaml:"A"`         // Einstein A
	Ba        []float64 `yaml:"Ba"`        // Einstein B, absorption
	Bs        []float64 `yaml:"Bs"`        // Einstein B, stimulated emission

	InverseMass float64 `yaml:"inverse_mass"` // inverse particle mass [1/amu]
}

// Validate checks the array shapes and level indices of d.
func (d *Data) Validate() error {
	if len(d.Weight) != d.NLev || len(d.Energy) != d.NLev {
		return fmt.Errorf("%w: nlev=%d, weight=%d, energy=%d",
			ErrLevelCount, d.NLev, len(d.Weight), len(d.Energy))
	}

	perRad := []struct {
		name string
		n    int
	}{
		{"irad", len(d.IRad)},
		{"jrad", len(d.JRad)},
		{"frequency", len(d.Frequency)},
		{"A", len(d.A)},
		{"Ba", len(d.Ba)},
		{"Bs", len(d.Bs)},
	}
	for _, p := range perRad {
		if p.n != d.NRad {
			return fmt.Errorf("%w: nrad=%d, %s=%d", ErrTransitionCount, d.NRad, p.name, p.n)
		}
	}

	for k := 0; k < d.NRad; k++ {
		i, j := d.IRad[k], d.JRad[k]
		if i < 0 || i >= d.NLev || j < 0 || j >= d.NLev {
			return fmt.Errorf("%w: transition %d (%d -> %d), nlev=%d", ErrLevelIndex, k, i, j, d.NLev)
		}
	}

	return nil
}

// LoadData reads a YAML line data file and validates it.
func LoadData(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("line: read line data: %w", err)
	}

	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("line: parse line data: %w", err)
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}
