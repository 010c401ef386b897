package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/humantime-go/humantime/pkg/unit"
)

const sampleYAML = `
units:
  - code: h
    seconds: "3600"
    plural: Hours
    singular: Hour
  - code: s
    seconds: "1"
    plural: Seconds
    singular: Second
  - code: i
    seconds: "0.001"
    plural: Milliseconds
    singular: Millisecond
    aliases: [ms]
`

func TestParseUnitDefs(t *testing.T) {
	defs, err := ParseUnitDefs([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("ParseUnitDefs failed: %v", err)
	}
	if len(defs.Units) != 3 {
		t.Fatalf("expected 3 units, got %d", len(defs.Units))
	}
	if defs.Units[2].Seconds != "0.001" {
		t.Errorf("seconds = %q, want 0.001", defs.Units[2].Seconds)
	}
	if len(defs.Units[2].Aliases) != 1 || defs.Units[2].Aliases[0] != "ms" {
		t.Errorf("aliases = %v, want [ms]", defs.Units[2].Aliases)
	}
}

func TestParseUnitDefsEmpty(t *testing.T) {
	if _, err := ParseUnitDefs([]byte("units: []\n")); err == nil {
		t.Fatal("expected error for empty definitions")
	}
	if _, err := ParseUnitDefs([]byte("units: [")); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestResolve(t *testing.T) {
	defs, err := ParseUnitDefs([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("ParseUnitDefs failed: %v", err)
	}
	units, err := defs.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	want := []int64{3_600_000_000_000, 1_000_000_000, 1_000_000}
	for i, u := range units {
		if u.Nanos != want[i] {
			t.Errorf("units[%d].Nanos = %d, want %d", i, u.Nanos, want[i])
		}
	}
	if units[0].Code != 'h' {
		t.Errorf("units[0].Code = %q, want 'h'", units[0].Code)
	}
}

func TestResolveRejectsInvalidTable(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"multi-letter code", "units:\n  - {code: hr, seconds: \"3600\", plural: Hours, singular: Hour}\n"},
		{"bad seconds", "units:\n  - {code: h, seconds: \"an hour\", plural: Hours, singular: Hour}\n"},
		{"sub-nanosecond", "units:\n  - {code: p, seconds: \"0.0000000001\", plural: Picos, singular: Pico}\n"},
		{"ascending", "units:\n  - {code: s, seconds: \"1\", plural: Seconds, singular: Second}\n  - {code: h, seconds: \"3600\", plural: Hours, singular: Hour}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defs, err := ParseUnitDefs([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("ParseUnitDefs failed: %v", err)
			}
			if _, err := defs.Resolve(); err == nil {
				t.Fatal("expected Resolve to fail")
			}
		})
	}
}

func TestResolveTableErrorWraps(t *testing.T) {
	yaml := "units:\n  - {code: s, seconds: \"1\", plural: Seconds, singular: Second}\n  - {code: s, seconds: \"0.5\", plural: Halves, singular: Half}\n"
	defs, err := ParseUnitDefs([]byte(yaml))
	if err != nil {
		t.Fatalf("ParseUnitDefs failed: %v", err)
	}
	_, err = defs.Resolve()
	if !errors.Is(err, unit.ErrInvalidTable) {
		t.Fatalf("expected ErrInvalidTable, got %v", err)
	}
}

func TestSecondsToNanos(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"1", 1_000_000_000},
		{"0.000001", 1_000},
		{"0.000000001", 1},
		{"3153600000", 3_153_600_000_000_000_000},
	}
	for _, tt := range tests {
		got, err := secondsToNanos(tt.in)
		if err != nil {
			t.Errorf("secondsToNanos(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("secondsToNanos(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}

	if _, err := secondsToNanos("99999999999"); err == nil {
		t.Error("expected overflow error")
	}
}

func TestLoadUnitDefsMissingFile(t *testing.T) {
	if _, err := LoadUnitDefs(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
}
