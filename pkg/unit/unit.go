package unit

import "fmt"

// NanosPerSecond is the number of nanoseconds in one second.
const NanosPerSecond int64 = 1_000_000_000

// Unit is a fixed-length duration unit.
type Unit struct {
	// Code is the single-letter canonical identifier (e.g. 'h').
	Code byte

	// Nanos is the length of one unit in nanoseconds.
	Nanos int64

	// Plural and Singular are the display labels ("Hours", "Hour").
	Plural   string
	Singular string

	// Aliases are multi-letter spellings normalized to Code before parsing.
	Aliases []string
}

// Seconds returns the unit multiplier in seconds.
func (u Unit) Seconds() float64 {
	if u.Nanos%NanosPerSecond == 0 {
		return float64(u.Nanos / NanosPerSecond)
	}
	return float64(u.Nanos) / float64(NanosPerSecond)
}

// Label returns the display label for count units.
func (u Unit) Label(count uint64) string {
	if count == 1 {
		return u.Singular
	}
	return u.Plural
}

// Key returns the code as a string, as used in breakdown maps.
func (u Unit) Key() string {
	return string(u.Code)
}

// SubSecond reports whether the unit is shorter than one second.
func (u Unit) SubSecond() bool {
	return u.Nanos < NanosPerSecond
}

// String returns a short description like "h (Hours, 3600s)".
func (u Unit) String() string {
	return fmt.Sprintf("%c (%s, %gs)", u.Code, u.Plural, u.Seconds())
}

func (u Unit) clone() Unit {
	if u.Aliases != nil {
		u.Aliases = append([]string(nil), u.Aliases...)
	}
	return u
}
