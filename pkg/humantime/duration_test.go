package humantime

import (
	"errors"
	"testing"
	"time"

	"github.com/humantime-go/humantime/pkg/log"
	"github.com/humantime-go/humantime/pkg/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDuration(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"1h30m", 90 * time.Minute},
		{"1s500ms3mc7ns", 1500*time.Millisecond + 3*time.Microsecond + 7},
		{"2mo", 2 * 30 * 24 * time.Hour},
		{"292y", 292 * 365 * 24 * time.Hour},
		{"no units", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ToDuration(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToDurationOutOfRange(t *testing.T) {
	for _, input := range []string{"293y", "3c", "1c1c1c", "99999999999999999999s"} {
		_, err := ToDuration(input)
		assert.True(t, errors.Is(err, ErrOutOfRange), "%s: %v", input, err)
	}
}

func TestToDurationUnknownUnit(t *testing.T) {
	_, err := ToDuration("10x")
	assert.ErrorIs(t, err, ErrUnknownUnit)

	lenient := New(Config{Policy: PolicyLenient})
	d, err := lenient.ToDuration("10m1x3h")
	require.NoError(t, err)
	assert.Equal(t, 3*time.Hour+10*time.Minute, d)
}

func TestFromDuration(t *testing.T) {
	d := 90061*time.Second + 5*time.Millisecond
	got, err := FromDuration(d, false)
	require.NoError(t, err)
	assert.Equal(t, "1 Day, 1 Hour, 1 Minute, 1 Second, and 5 Milliseconds", got)

	got, err = FromDuration(0, false)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestDecomposeDurationKeepsEveryNanosecond(t *testing.T) {
	c := New(Config{})
	b, err := c.DecomposeDuration(MaxDuration, false)
	require.NoError(t, err)

	assert.Equal(t, uint64(2), b.Count(unit.CodeCentury))
	assert.Equal(t, uint64(9), b.Count(unit.CodeDecade))
	assert.Equal(t, uint64(854), b.Count(unit.CodeMillisecond))
	assert.Equal(t, uint64(775), b.Count(unit.CodeMicrosecond))
	assert.Equal(t, uint64(807), b.Count(unit.CodeNanosecond))

	b, err = c.DecomposeDuration(MaxDuration, true)
	require.NoError(t, err)
	assert.Zero(t, b.Count(unit.CodeCentury))
	assert.Equal(t, uint64(292), b.Count(unit.CodeYear))
}

func TestFromDurationNegative(t *testing.T) {
	_, err := FromDuration(-time.Second, false)
	var rerr *RangeError
	require.ErrorAs(t, err, &rerr)
	assert.ErrorIs(t, err, ErrNegative)
	assert.Equal(t, "-1s", rerr.Value)
}

func TestDurationConversionsAreTraced(t *testing.T) {
	rec := &recorder{}
	c := New(Config{Logger: rec})

	_, err := c.ToDuration("1s500ms")
	require.NoError(t, err)
	ev := rec.last(t)
	assert.Equal(t, log.OperationParse, ev.Operation)
	assert.Equal(t, 1.5, ev.Parse.Total)
	assert.Len(t, ev.Parse.Pairs, 2)

	_, err = c.FromDuration(3723*time.Second, false)
	require.NoError(t, err)
	ev = rec.last(t)
	assert.Equal(t, log.OperationFormat, ev.Operation)
	assert.Equal(t, 3723.0, ev.Format.Seconds)
	assert.Equal(t, "1 Hour, 2 Minutes, and 3 Seconds", ev.Format.Text)

	_, err = c.FromDuration(-time.Minute, false)
	require.Error(t, err)
	ev = rec.last(t)
	require.NotNil(t, ev.Error)
	assert.Equal(t, log.ErrorKindRange, ev.Error.Kind)
	assert.Equal(t, "-1m0s", ev.Error.Input)
}
