package unit

import (
	"fmt"
	"strings"
)

// Table is an immutable list of units ordered by strictly descending
// multiplier. It is safe for concurrent use.
type Table struct {
	units    []Unit
	byCode   map[byte]int
	replacer *strings.Replacer
}

// NewTable validates the units and builds a Table from them.
// The units are copied; later changes to the arguments do not affect it.
func NewTable(units ...Unit) (*Table, error) {
	if len(units) == 0 {
		return nil, &TableError{Reason: "no units defined"}
	}
	if err := validate(units); err != nil {
		return nil, err
	}
	return build(units), nil
}

// MustTable is like NewTable but panics on invalid input.
func MustTable(units ...Unit) *Table {
	t, err := NewTable(units...)
	if err != nil {
		panic(err)
	}
	return t
}

// build assembles a table without validation. Callers guarantee the units
// already satisfy the table invariants.
func build(units []Unit) *Table {
	t := &Table{
		units:  make([]Unit, len(units)),
		byCode: make(map[byte]int, len(units)),
	}

	var pairs []string
	for i, u := range units {
		t.units[i] = u.clone()
		t.byCode[u.Code] = i
		for _, a := range u.Aliases {
			pairs = append(pairs, a, string(u.Code))
		}
	}
	if len(pairs) > 0 {
		t.replacer = strings.NewReplacer(pairs...)
	}
	return t
}

func validate(units []Unit) error {
	codes := make(map[byte]bool, len(units))
	var aliases []string

	for i, u := range units {
		name := string(u.Code)
		if !isASCIILetter(u.Code) {
			return &TableError{Name: name, Reason: "code must be a single ASCII letter"}
		}
		if codes[u.Code] {
			return &TableError{Name: name, Reason: "duplicate code"}
		}
		codes[u.Code] = true

		if u.Plural == "" || u.Singular == "" {
			return &TableError{Name: name, Reason: "missing label"}
		}

		switch {
		case u.Nanos <= 0:
			return &TableError{Name: name, Reason: "multiplier must be positive"}
		case u.Nanos >= NanosPerSecond && u.Nanos%NanosPerSecond != 0:
			return &TableError{Name: name, Reason: "multiplier must be a whole number of seconds"}
		case u.Nanos < NanosPerSecond && NanosPerSecond%u.Nanos != 0:
			return &TableError{Name: name, Reason: "sub-second multiplier must divide one second"}
		}

		if i > 0 && u.Nanos >= units[i-1].Nanos {
			return &TableError{
				Name:   name,
				Reason: fmt.Sprintf("multiplier not smaller than %q", string(units[i-1].Code)),
			}
		}

		for _, a := range u.Aliases {
			if len(a) < 2 {
				return &TableError{Name: a, Reason: "alias must have at least two letters"}
			}
			for j := 0; j < len(a); j++ {
				if !isASCIILetter(a[j]) {
					return &TableError{Name: a, Reason: "alias must contain only ASCII letters"}
				}
			}
			aliases = append(aliases, a)
		}
	}

	for i, a := range aliases {
		for j, b := range aliases {
			if i == j {
				continue
			}
			if a == b {
				return &TableError{Name: a, Reason: "duplicate alias"}
			}
			if strings.Contains(b, a) {
				return &TableError{Name: a, Reason: fmt.Sprintf("alias is a substring of alias %q", b)}
			}
		}
	}

	return nil
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// Len returns the number of units.
func (t *Table) Len() int {
	return len(t.units)
}

// Units returns a copy of the units, largest first.
func (t *Table) Units() []Unit {
	out := make([]Unit, len(t.units))
	for i, u := range t.units {
		out[i] = u.clone()
	}
	return out
}

// At returns the i-th unit, largest first.
func (t *Table) At(i int) Unit {
	return t.units[i].clone()
}

// Lookup returns the unit with the given canonical code.
func (t *Table) Lookup(code byte) (Unit, bool) {
	i, ok := t.byCode[code]
	if !ok {
		return Unit{}, false
	}
	return t.units[i].clone(), true
}

// Has reports whether code is a canonical code in the table.
func (t *Table) Has(code byte) bool {
	_, ok := t.byCode[code]
	return ok
}

// Normalize replaces every alias in s with its canonical code.
// Substitution is literal and ignores word boundaries.
func (t *Table) Normalize(s string) string {
	if t.replacer == nil {
		return s
	}
	return t.replacer.Replace(s)
}

// Without returns a new table that omits the given codes. The receiver is
// not modified. Unknown codes are ignored.
func (t *Table) Without(codes ...byte) *Table {
	drop := make(map[byte]bool, len(codes))
	for _, c := range codes {
		drop[c] = true
	}

	kept := make([]Unit, 0, len(t.units))
	for _, u := range t.units {
		if !drop[u.Code] {
			kept = append(kept, u)
		}
	}
	return build(kept)
}

// YearsMax returns a view without decades and centuries, so the largest
// unit is the year.
func (t *Table) YearsMax() *Table {
	return t.Without(CodeDecade, CodeCentury)
}
