package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateTable(t *testing.T) {
	defs, err := ParseUnitDefs([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("ParseUnitDefs failed: %v", err)
	}
	units, err := defs.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	output, err := GenerateTable("unit", "units.yaml", units)
	if err != nil {
		t.Fatalf("GenerateTable failed: %v", err)
	}

	mustContain(t, output, "// Code generated by humantime-unitgen from units.yaml. DO NOT EDIT.")
	mustContain(t, output, "package unit")
	mustContain(t, output, `{Code: 'h', Nanos: 3600000000000, Plural: "Hours", Singular: "Hour"},`)
	mustContain(t, output, `{Code: 'i', Nanos: 1000000, Plural: "Milliseconds", Singular: "Millisecond", Aliases: []string{"ms"}},`)
	mustNotContain(t, output, `Singular: "Hour", Aliases`)
}

// The checked-in table must match what the generator produces from units.yaml.
func TestGeneratedTableUpToDate(t *testing.T) {
	dir := filepath.Join("..", "..", "pkg", "unit")
	out := filepath.Join(t.TempDir(), "table_gen.go")

	if err := run(filepath.Join(dir, "units.yaml"), out, "unit"); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	want, err := os.ReadFile(filepath.Join(dir, "table_gen.go"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(want) {
		t.Errorf("pkg/unit/table_gen.go is stale, run go generate ./pkg/unit\n--- generated ---\n%s", got)
	}
}

func mustContain(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Errorf("output does not contain %q\nOutput:\n%s", substr, output)
	}
}

func mustNotContain(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Errorf("output should not contain %q", substr)
	}
}
