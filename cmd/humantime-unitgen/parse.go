package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/humantime-go/humantime/pkg/unit"
	"gopkg.in/yaml.v3"
)

// RawUnitDefs is the top-level structure of units.yaml.
type RawUnitDefs struct {
	Units []RawUnitDef `yaml:"units"`
}

// RawUnitDef represents a unit definition loaded from YAML.
type RawUnitDef struct {
	Code     string   `yaml:"code"`
	Seconds  string   `yaml:"seconds"` // exact decimal, e.g. "0.001"
	Plural   string   `yaml:"plural"`
	Singular string   `yaml:"singular"`
	Aliases  []string `yaml:"aliases"`
}

// ParseUnitDefs parses unit definitions from YAML bytes.
func ParseUnitDefs(data []byte) (*RawUnitDefs, error) {
	var defs RawUnitDefs
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parsing unit defs: %w", err)
	}
	if len(defs.Units) == 0 {
		return nil, fmt.Errorf("unit definitions contain no units")
	}
	return &defs, nil
}

// LoadUnitDefs loads unit definitions from a YAML file.
func LoadUnitDefs(path string) (*RawUnitDefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseUnitDefs(data)
}

// Resolve converts the raw definitions to units and checks them against
// the table invariants.
func (d *RawUnitDefs) Resolve() ([]unit.Unit, error) {
	units := make([]unit.Unit, 0, len(d.Units))
	for i, raw := range d.Units {
		if len(raw.Code) != 1 {
			return nil, fmt.Errorf("unit %d: code %q must be a single letter", i, raw.Code)
		}
		nanos, err := secondsToNanos(raw.Seconds)
		if err != nil {
			return nil, fmt.Errorf("unit %q: %w", raw.Code, err)
		}
		units = append(units, unit.Unit{
			Code:     raw.Code[0],
			Nanos:    nanos,
			Plural:   raw.Plural,
			Singular: raw.Singular,
			Aliases:  raw.Aliases,
		})
	}

	if _, err := unit.NewTable(units...); err != nil {
		return nil, err
	}
	return units, nil
}

// secondsToNanos converts an exact decimal number of seconds to whole
// nanoseconds.
func secondsToNanos(s string) (int64, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return 0, fmt.Errorf("invalid seconds value %q", s)
	}
	r.Mul(r, big.NewRat(unit.NanosPerSecond, 1))
	if !r.IsInt() {
		return 0, fmt.Errorf("seconds value %q is not a whole number of nanoseconds", s)
	}
	if !r.Num().IsInt64() {
		return 0, fmt.Errorf("seconds value %q overflows int64 nanoseconds", s)
	}
	return r.Num().Int64(), nil
}
