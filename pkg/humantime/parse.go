package humantime

import (
	"errors"
	"math"
	"math/bits"
	"regexp"
	"strconv"

	"github.com/humantime-go/humantime/pkg/log"
	"github.com/humantime-go/humantime/pkg/unit"
	"github.com/humantime-go/humantime/pkg/version"
)

// pairPattern matches one number/unit pair: a digit run and one letter.
var pairPattern = regexp.MustCompile(`([0-9]+)([a-zA-Z])`)

// Pair is one number/unit pair found in the input.
type Pair struct {
	// Magnitude is the parsed digit run.
	Magnitude uint64

	// Code is the unit letter following the digits.
	Code byte

	// Offset is the byte offset of the pair in the normalized input.
	Offset int

	// Text is the matched text, e.g. "10m".
	Text string
}

// Tokenize normalizes aliases in s and returns every number/unit pair in
// input order. Pairs are returned whether or not their letter is a known
// unit. A digit run too large for uint64 is a *RangeError.
func (c *Converter) Tokenize(s string) ([]Pair, error) {
	return scan(c.table.Normalize(s))
}

func scan(normalized string) ([]Pair, error) {
	matches := pairPattern.FindAllStringSubmatchIndex(normalized, -1)
	pairs := make([]Pair, 0, len(matches))
	for _, m := range matches {
		digits := normalized[m[2]:m[3]]
		mag, err := strconv.ParseUint(digits, 10, 64)
		if err != nil {
			return nil, &RangeError{Op: "parse", Value: strconv.Quote(normalized[m[0]:m[1]]), Err: ErrOutOfRange}
		}
		pairs = append(pairs, Pair{
			Magnitude: mag,
			Code:      normalized[m[4]],
			Offset:    m[0],
			Text:      normalized[m[0]:m[1]],
		})
	}
	return pairs, nil
}

// ToSeconds parses s and returns the total number of seconds.
func (c *Converter) ToSeconds(s string) (float64, error) {
	return c.trace(s, false, func(terms []term) (float64, error) {
		return sumSeconds(terms), nil
	})
}

// ToIntegerSeconds parses s and returns the total truncated toward zero.
// The sum is exact: whole seconds and the sub-second remainder are added
// as integers. Totals that do not fit in an int64 are a *RangeError.
func (c *Converter) ToIntegerSeconds(s string) (int64, error) {
	var n int64
	_, err := c.trace(s, true, func(terms []term) (float64, error) {
		whole, ok := sumWholeSeconds(terms)
		if !ok || whole > math.MaxInt64 {
			return 0, &RangeError{Op: "parse", Value: strconv.Quote(s), Err: ErrOutOfRange}
		}
		n = int64(whole)
		return float64(n), nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// term is a pair whose letter resolved to a unit in the table.
type term struct {
	pair Pair
	unit unit.Unit
}

// trace resolves s, evaluates the terms and emits one parse event for the
// outcome.
func (c *Converter) trace(s string, integer bool, eval func([]term) (float64, error)) (float64, error) {
	start := c.now()
	ev := &log.ParseEvent{Input: s, Integer: integer}

	terms, err := c.resolve(s, ev)
	var total float64
	if err == nil {
		total, err = eval(terms)
	}

	event := log.Event{
		Timestamp: start,
		SessionID: c.sessionID,
		Version:   version.Current,
		Operation: log.OperationParse,
		Elapsed:   c.now().Sub(start),
		Parse:     ev,
	}
	if err != nil {
		event.Error = errorEvent(err, s)
		c.logger.Log(event)
		return 0, err
	}
	ev.Total = total
	c.logger.Log(event)
	return total, nil
}

// resolve looks up the pairs of s in input order, recording them in ev.
func (c *Converter) resolve(s string, ev *log.ParseEvent) ([]term, error) {
	ev.Normalized = c.table.Normalize(s)

	pairs, err := scan(ev.Normalized)
	if err != nil {
		return nil, err
	}

	terms := make([]term, 0, len(pairs))
	for _, p := range pairs {
		u, ok := c.table.Lookup(p.Code)
		if !ok {
			rec := log.PairRecord{Text: p.Text, Code: string(p.Code), Offset: p.Offset}
			if c.policy == PolicyLenient {
				ev.Skipped = append(ev.Skipped, rec)
				continue
			}
			return nil, &UnknownUnitError{Code: p.Code, Text: p.Text, Offset: p.Offset}
		}

		terms = append(terms, term{pair: p, unit: u})
		ev.Pairs = append(ev.Pairs, log.PairRecord{
			Text:    p.Text,
			Code:    string(p.Code),
			Offset:  p.Offset,
			Seconds: float64(p.Magnitude) * u.Seconds(),
		})
	}
	return terms, nil
}

func sumSeconds(terms []term) float64 {
	var total float64
	for _, t := range terms {
		total += float64(t.pair.Magnitude) * t.unit.Seconds()
	}
	return total
}

// errorEvent classifies err for the trace.
func errorEvent(err error, input string) *log.ErrorEventData {
	kind := log.ErrorKindOther
	switch {
	case errors.Is(err, ErrUnknownUnit):
		kind = log.ErrorKindUnknownUnit
	case errors.Is(err, ErrNegative), errors.Is(err, ErrOutOfRange):
		kind = log.ErrorKindRange
	}
	return &log.ErrorEventData{Kind: kind, Message: err.Error(), Input: input}
}

// sumWholeSeconds adds the terms and drops the sub-second remainder. It
// reports false when the whole seconds overflow a uint64.
func sumWholeSeconds(terms []term) (uint64, bool) {
	const nanosPerSecond = uint64(unit.NanosPerSecond)
	var whole, nanos, carry uint64
	for _, t := range terms {
		var secs uint64
		if t.unit.SubSecond() {
			// The product stays below 2^64 * 1e9, so hi < 1e9 and Div64 cannot panic.
			hi, lo := bits.Mul64(t.pair.Magnitude, uint64(t.unit.Nanos))
			var rem uint64
			secs, rem = bits.Div64(hi, lo, nanosPerSecond)
			nanos += rem
			if nanos >= nanosPerSecond {
				nanos -= nanosPerSecond
				if whole, carry = bits.Add64(whole, 1, 0); carry != 0 {
					return 0, false
				}
			}
		} else {
			var hi uint64
			hi, secs = bits.Mul64(t.pair.Magnitude, uint64(t.unit.Nanos)/nanosPerSecond)
			if hi != 0 {
				return 0, false
			}
		}
		if whole, carry = bits.Add64(whole, secs, 0); carry != 0 {
			return 0, false
		}
	}
	return whole, true
}
