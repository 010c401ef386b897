package log

import (
	"time"
)

// Event represents a single traced conversion.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the conversion started.
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the converter that produced the event (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Version is the trace format version (see package version).
	Version string `cbor:"3,keyasint"`

	// Operation that was performed.
	Operation Operation `cbor:"4,keyasint"`

	// Elapsed is the time spent in the conversion.
	Elapsed time.Duration `cbor:"5,keyasint,omitempty"`

	// Payload (Parse or Format is set; Error is set on failure).
	Parse  *ParseEvent     `cbor:"10,keyasint,omitempty"`
	Format *FormatEvent    `cbor:"11,keyasint,omitempty"`
	Error  *ErrorEventData `cbor:"12,keyasint,omitempty"`
}

// Failed reports whether the event records a failed conversion.
func (e Event) Failed() bool {
	return e.Error != nil
}

// Operation identifies the conversion direction.
type Operation uint8

const (
	// OperationParse converts a duration string to seconds.
	OperationParse Operation = 0
	// OperationFormat converts seconds to a unit breakdown.
	OperationFormat Operation = 1
)

// String returns the operation name.
func (o Operation) String() string {
	switch o {
	case OperationParse:
		return "PARSE"
	case OperationFormat:
		return "FORMAT"
	default:
		return "UNKNOWN"
	}
}

// ParseEvent captures a string to seconds conversion.
type ParseEvent struct {
	// Input is the raw string as given by the caller.
	Input string `cbor:"1,keyasint"`

	// Normalized is the input after alias substitution.
	Normalized string `cbor:"2,keyasint,omitempty"`

	// Pairs are the number/unit pairs that contributed to the total.
	Pairs []PairRecord `cbor:"3,keyasint,omitempty"`

	// Skipped are matched pairs dropped under the lenient policy.
	Skipped []PairRecord `cbor:"4,keyasint,omitempty"`

	// Total is the resulting number of seconds.
	Total float64 `cbor:"5,keyasint"`

	// Integer is set when integer output was requested.
	Integer bool `cbor:"6,keyasint,omitempty"`
}

// PairRecord is one matched number/unit pair.
type PairRecord struct {
	// Text is the matched text, e.g. "10m".
	Text string `cbor:"1,keyasint"`

	// Code is the unit letter.
	Code string `cbor:"2,keyasint"`

	// Offset is the byte offset of the match in the normalized input.
	Offset int `cbor:"3,keyasint"`

	// Seconds is the contribution to the total.
	Seconds float64 `cbor:"4,keyasint,omitempty"`
}

// FormatEvent captures a seconds to units conversion.
type FormatEvent struct {
	// Seconds is the input value.
	Seconds float64 `cbor:"1,keyasint"`

	// YearsMax is set when decades and centuries were excluded.
	YearsMax bool `cbor:"2,keyasint,omitempty"`

	// Components are the non-zero unit counts, largest unit first.
	Components []ComponentRecord `cbor:"3,keyasint,omitempty"`

	// Text is the rendered duration.
	Text string `cbor:"4,keyasint,omitempty"`
}

// ComponentRecord is one non-zero unit count.
type ComponentRecord struct {
	Code  string `cbor:"1,keyasint"`
	Count uint64 `cbor:"2,keyasint"`
}

// ErrorKind classifies conversion failures.
type ErrorKind uint8

const (
	// ErrorKindOther is any failure not covered below.
	ErrorKindOther ErrorKind = 0
	// ErrorKindUnknownUnit is a matched pair whose unit letter is not in the table.
	ErrorKindUnknownUnit ErrorKind = 1
	// ErrorKindRange is a value outside the representable or accepted range.
	ErrorKindRange ErrorKind = 2
)

// String returns the error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindOther:
		return "OTHER"
	case ErrorKindUnknownUnit:
		return "UNKNOWN_UNIT"
	case ErrorKindRange:
		return "RANGE"
	default:
		return "UNKNOWN"
	}
}

// ErrorEventData captures a failed conversion.
type ErrorEventData struct {
	// Kind of failure.
	Kind ErrorKind `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Input is the offending input, as text.
	Input string `cbor:"3,keyasint,omitempty"`
}
