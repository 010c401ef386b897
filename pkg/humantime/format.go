package humantime

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/humantime-go/humantime/pkg/log"
	"github.com/humantime-go/humantime/pkg/unit"
	"github.com/humantime-go/humantime/pkg/version"
)

// maxUint64Float is the smallest float64 that no longer fits in a uint64.
const maxUint64Float = float64(1 << 64)

// Component is the count of one unit in a Breakdown.
type Component struct {
	Unit  unit.Unit
	Count uint64
}

// String renders the component as "2 Hours" or "1 Hour".
func (c Component) String() string {
	return fmt.Sprintf("%d %s", c.Count, c.Unit.Label(c.Count))
}

// Breakdown holds the non-zero unit counts of a duration, largest unit
// first. A zero duration has an empty Breakdown.
type Breakdown []Component

// IsZero reports whether the breakdown has no components.
func (b Breakdown) IsZero() bool {
	return len(b) == 0
}

// Count returns the count for the unit code, or 0.
func (b Breakdown) Count(code byte) uint64 {
	for _, c := range b {
		if c.Unit.Code == code {
			return c.Count
		}
	}
	return 0
}

// Map returns the counts keyed by unit code.
func (b Breakdown) Map() map[string]uint64 {
	m := make(map[string]uint64, len(b))
	for _, c := range b {
		m[c.Unit.Key()] = c.Count
	}
	return m
}

// Seconds reassembles the duration from its components.
func (b Breakdown) Seconds() float64 {
	var whole uint64
	var nanos int64
	for _, c := range b {
		if c.Unit.SubSecond() {
			nanos += int64(c.Count) * c.Unit.Nanos
		} else {
			whole += c.Count * uint64(c.Unit.Nanos/unit.NanosPerSecond)
		}
	}
	return float64(whole) + float64(nanos)/float64(unit.NanosPerSecond)
}

// String renders the breakdown as English text. One component is emitted
// as-is, two are joined with " and ", three or more use commas and a
// final ", and ". A zero duration renders as "".
func (b Breakdown) String() string {
	parts := make([]string, len(b))
	for i, c := range b {
		parts[i] = c.String()
	}
	return joinList(parts)
}

func joinList(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " and " + parts[1]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + ", and " + parts[len(parts)-1]
	}
}

// records converts the breakdown for trace events.
func (b Breakdown) records() []log.ComponentRecord {
	if len(b) == 0 {
		return nil
	}
	out := make([]log.ComponentRecord, len(b))
	for i, c := range b {
		out[i] = log.ComponentRecord{Code: c.Unit.Key(), Count: c.Count}
	}
	return out
}

// Decompose breaks seconds into non-zero unit counts, largest unit first.
// With yearsMax set, decades and centuries are excluded. Negative input is
// a *RangeError wrapping ErrNegative; NaN, infinities and values of 2^64
// seconds or more wrap ErrOutOfRange.
func (c *Converter) Decompose(seconds float64, yearsMax bool) (Breakdown, error) {
	return c.format(seconds, yearsMax, false)
}

// FromSeconds renders seconds as English text, e.g.
// "1 Hour, 2 Minutes, and 3 Seconds". Zero renders as "".
func (c *Converter) FromSeconds(seconds float64, yearsMax bool) (string, error) {
	b, err := c.format(seconds, yearsMax, true)
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

func (c *Converter) format(seconds float64, yearsMax, text bool) (Breakdown, error) {
	start := c.now()
	b, err := decompose(c.formatTable(yearsMax), seconds)
	c.traceFormat(start, seconds, formatFloat(seconds), yearsMax, text, b, err)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// traceFormat emits one format event for the outcome of a decomposition.
func (c *Converter) traceFormat(start time.Time, seconds float64, input string, yearsMax, text bool, b Breakdown, err error) {
	ev := &log.FormatEvent{Seconds: seconds, YearsMax: yearsMax}
	event := log.Event{
		Timestamp: start,
		SessionID: c.sessionID,
		Version:   version.Current,
		Operation: log.OperationFormat,
		Elapsed:   c.now().Sub(start),
		Format:    ev,
	}
	if err != nil {
		event.Error = errorEvent(err, input)
		c.logger.Log(event)
		return
	}

	ev.Components = b.records()
	if text {
		ev.Text = b.String()
	}
	c.logger.Log(event)
}

// decompose checks the range of seconds and splits it into whole seconds
// and a rounded nanosecond remainder.
func decompose(t *unit.Table, seconds float64) (Breakdown, error) {
	value := formatFloat(seconds)
	switch {
	case math.IsNaN(seconds) || math.IsInf(seconds, 0):
		return nil, &RangeError{Op: "format", Value: value, Err: ErrOutOfRange}
	case seconds < 0:
		return nil, &RangeError{Op: "format", Value: value, Err: ErrNegative}
	}

	whole := math.Floor(seconds)
	if whole >= maxUint64Float {
		return nil, &RangeError{Op: "format", Value: value, Err: ErrOutOfRange}
	}

	secs := uint64(whole)
	nanos := int64(math.Round((seconds - whole) * float64(unit.NanosPerSecond)))
	if nanos >= unit.NanosPerSecond {
		secs++
		nanos -= unit.NanosPerSecond
	}
	return decomposeExact(t, secs, nanos, value)
}

// decomposeExact walks the table greedily. Whole seconds and the
// sub-second remainder are tracked as integers so the split is exact.
func decomposeExact(t *unit.Table, secs uint64, nanos int64, value string) (Breakdown, error) {
	var b Breakdown
	for i := 0; i < t.Len(); i++ {
		u := t.At(i)

		var count uint64
		if u.SubSecond() {
			// Carry whole seconds no larger unit could absorb.
			if secs > 0 {
				if secs > math.MaxInt64/uint64(unit.NanosPerSecond) {
					return nil, &RangeError{Op: "format", Value: value, Err: ErrOutOfRange}
				}
				nanos += int64(secs) * unit.NanosPerSecond
				secs = 0
			}
			count = uint64(nanos / u.Nanos)
			nanos -= int64(count) * u.Nanos
		} else {
			mult := uint64(u.Nanos / unit.NanosPerSecond)
			count = secs / mult
			secs -= count * mult
		}

		if count > 0 {
			b = append(b, Component{Unit: u, Count: count})
		}
	}
	return b, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
