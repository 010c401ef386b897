package humantime

import (
	"math"
	"math/bits"
	"strconv"
	"time"
)

// MaxDuration is the largest duration ToDuration returns (about 292 years).
const MaxDuration = time.Duration(math.MaxInt64)

// ToDuration parses s into a time.Duration. The sum is computed in whole
// nanoseconds, so sub-second units are exact. Totals above MaxDuration are
// a *RangeError wrapping ErrOutOfRange.
func (c *Converter) ToDuration(s string) (time.Duration, error) {
	var d time.Duration
	_, err := c.trace(s, false, func(terms []term) (float64, error) {
		nanos, ok := sumNanos(terms)
		if !ok {
			return 0, &RangeError{Op: "parse", Value: strconv.Quote(s), Err: ErrOutOfRange}
		}
		d = time.Duration(nanos)
		return d.Seconds(), nil
	})
	if err != nil {
		return 0, err
	}
	return d, nil
}

// sumNanos adds the terms in nanoseconds. It reports false when the total
// does not fit in an int64.
func sumNanos(terms []term) (int64, bool) {
	var total uint64
	for _, t := range terms {
		hi, lo := bits.Mul64(t.pair.Magnitude, uint64(t.unit.Nanos))
		if hi != 0 {
			return 0, false
		}
		var carry uint64
		total, carry = bits.Add64(total, lo, 0)
		if carry != 0 || total > math.MaxInt64 {
			return 0, false
		}
	}
	return int64(total), true
}

// DecomposeDuration breaks d into non-zero unit counts. It splits d in
// integer arithmetic, so every nanosecond is kept.
func (c *Converter) DecomposeDuration(d time.Duration, yearsMax bool) (Breakdown, error) {
	return c.formatDuration(d, yearsMax, false)
}

// FromDuration renders d as English text. Negative durations are a
// *RangeError wrapping ErrNegative.
func (c *Converter) FromDuration(d time.Duration, yearsMax bool) (string, error) {
	b, err := c.formatDuration(d, yearsMax, true)
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

func (c *Converter) formatDuration(d time.Duration, yearsMax, text bool) (Breakdown, error) {
	start := c.now()
	var b Breakdown
	var err error
	if d < 0 {
		err = &RangeError{Op: "format", Value: d.String(), Err: ErrNegative}
	} else {
		b, err = decomposeExact(c.formatTable(yearsMax), uint64(d/time.Second), int64(d%time.Second), d.String())
	}
	c.traceFormat(start, d.Seconds(), d.String(), yearsMax, text, b, err)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// ToDuration parses s into a time.Duration with the default strict converter.
func ToDuration(s string) (time.Duration, error) {
	return std.ToDuration(s)
}

// FromDuration renders d as English text using the default table.
func FromDuration(d time.Duration, yearsMax bool) (string, error) {
	return std.FromDuration(d, yearsMax)
}
