package humantime

import (
	"time"

	"github.com/google/uuid"
	"github.com/humantime-go/humantime/pkg/log"
	"github.com/humantime-go/humantime/pkg/unit"
)

// Policy decides what happens to a matched pair whose unit letter is not
// in the table.
type Policy uint8

const (
	// PolicyStrict reports the pair as an *UnknownUnitError.
	PolicyStrict Policy = iota
	// PolicyLenient skips the pair; it contributes nothing to the total.
	PolicyLenient
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case PolicyStrict:
		return "strict"
	case PolicyLenient:
		return "lenient"
	default:
		return "unknown"
	}
}

// Config configures a Converter. The zero value is valid.
type Config struct {
	// Table is the unit table. Defaults to unit.Default().
	Table *unit.Table

	// Logger receives one event per conversion. Defaults to log.NoopLogger.
	Logger log.Logger

	// Policy for unknown unit letters. Defaults to PolicyStrict.
	Policy Policy

	// SessionID tags trace events. Defaults to a random UUID.
	SessionID string
}

// Converter converts between duration strings and seconds.
// It is safe for concurrent use.
type Converter struct {
	table     *unit.Table
	yearsMax  *unit.Table
	logger    log.Logger
	policy    Policy
	sessionID string

	// now is replaceable in tests.
	now func() time.Time
}

// New creates a Converter from cfg.
func New(cfg Config) *Converter {
	c := &Converter{
		table:     cfg.Table,
		logger:    cfg.Logger,
		policy:    cfg.Policy,
		sessionID: cfg.SessionID,
		now:       time.Now,
	}
	if c.table == nil {
		c.table = unit.Default()
	}
	if c.logger == nil {
		c.logger = log.NoopLogger{}
	}
	if c.sessionID == "" {
		c.sessionID = uuid.NewString()
	}
	c.yearsMax = c.table.YearsMax()
	return c
}

// SessionID returns the ID attached to this converter's trace events.
func (c *Converter) SessionID() string {
	return c.sessionID
}

// Table returns the converter's unit table.
func (c *Converter) Table() *unit.Table {
	return c.table
}

// Policy returns the unknown-unit policy.
func (c *Converter) Policy() Policy {
	return c.policy
}

// formatTable returns the table used for decomposition.
func (c *Converter) formatTable(yearsMax bool) *unit.Table {
	if yearsMax {
		return c.yearsMax
	}
	return c.table
}

// std backs the package-level functions.
var std = New(Config{})

// ToSeconds parses s with the default strict converter.
func ToSeconds(s string) (float64, error) {
	return std.ToSeconds(s)
}

// ToIntegerSeconds parses s with the default strict converter and
// truncates the result toward zero.
func ToIntegerSeconds(s string) (int64, error) {
	return std.ToIntegerSeconds(s)
}

// Tokenize returns the number/unit pairs found in s after alias
// normalization, using the default table.
func Tokenize(s string) ([]Pair, error) {
	return std.Tokenize(s)
}

// Decompose breaks seconds into non-zero unit counts using the default table.
func Decompose(seconds float64, yearsMax bool) (Breakdown, error) {
	return std.Decompose(seconds, yearsMax)
}

// FromSeconds renders seconds as English text using the default table.
func FromSeconds(seconds float64, yearsMax bool) (string, error) {
	return std.FromSeconds(seconds, yearsMax)
}
