package version

import (
	"testing"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		input string
		major uint16
		minor uint16
	}{
		{"1.0", 1, 0},
		{"1.1", 1, 1},
		{"2.0", 2, 0},
		{"10.23", 10, 23},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if v.Major != tt.major {
				t.Errorf("Major = %d, want %d", v.Major, tt.major)
			}
			if v.Minor != tt.minor {
				t.Errorf("Minor = %d, want %d", v.Minor, tt.minor)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []string{
		"",
		"1",
		"abc",
		"1.0.0",
		"1.x",
		"-1.0",
		".1",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			if err == nil {
				t.Errorf("Parse(%q) should return error", input)
			}
		})
	}
}

func TestFormatVersion_String(t *testing.T) {
	v := FormatVersion{Major: 3, Minor: 14}
	if got := v.String(); got != "3.14" {
		t.Errorf("String() = %q, want %q", got, "3.14")
	}
}

func TestFormatVersion_Compatible(t *testing.T) {
	v1 := FormatVersion{Major: 1, Minor: 0}
	v11 := FormatVersion{Major: 1, Minor: 1}
	v2 := FormatVersion{Major: 2, Minor: 0}

	if !v1.Compatible(v11) {
		t.Error("1.0 should be compatible with 1.1")
	}
	if v1.Compatible(v2) {
		t.Error("1.0 should not be compatible with 2.0")
	}
}

func TestSupported(t *testing.T) {
	if !Supported(Current) {
		t.Errorf("Supported(%q) = false, want true", Current)
	}
	if !Supported("1.7") {
		t.Error("Supported(1.7) = false, want true")
	}
	if Supported("2.0") {
		t.Error("Supported(2.0) = true, want false")
	}
	if Supported("") {
		t.Error("Supported(\"\") = true, want false")
	}
}
