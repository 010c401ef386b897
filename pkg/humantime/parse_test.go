package humantime

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/humantime-go/humantime/pkg/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSecondsExamples(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"10m, 1h, 12y", 10*60 + 1*3600 + 12*31536000},
		{"1h3d5w", 3600 + 3*86400 + 5*604800},
		{"10m 3h 1y", 600 + 10800 + 31536000},
		{"10m3h1y", 600 + 10800 + 31536000},
		{"20m", 1200},
		{"10s", 10},
		{"2mo", 2 * 2592000},
		{"1de", 315360000},
		{"1ce", 3153600000},
		{"1e1c", 315360000 + 3153600000},
		{"0h", 0},
		{"007s", 7},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ToSeconds(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToSecondsSubSecondAliases(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"5ms", 0.005},
		{"5i", 0.005},
		{"7mc", 0.000007},
		{"7r", 0.000007},
		{"3ns", 0.000000003},
		{"3n", 0.000000003},
		{"1s500ms", 1.5},
	}

	for _, tt := range tests {
		got, err := ToSeconds(tt.input)
		require.NoError(t, err, tt.input)
		assert.InDelta(t, tt.want, got, 1e-15, tt.input)
	}
}

func TestToSecondsSingleUnit(t *testing.T) {
	for _, u := range unit.Default().Units() {
		input := fmt.Sprintf("7%c", u.Code)
		got, err := ToSeconds(input)
		require.NoError(t, err, input)
		assert.Equal(t, 7*u.Seconds(), got, input)
	}
}

func TestToSecondsIgnoresNoise(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"", 0},
		{"   ", 0},
		{"no units here", 0},
		{"42", 0},
		{"about 2h or so", 7200},
		{"h5", 0},
		// The dot breaks the digit run; only "5h" forms a pair.
		{"1.5h", 18000},
	}

	for _, tt := range tests {
		got, err := ToSeconds(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestToSecondsUnknownUnitStrict(t *testing.T) {
	tests := []struct {
		input  string
		code   byte
		text   string
		offset int
	}{
		{"10x", 'x', "10x", 0},
		{"10m1x3h", 'x', "1x", 3},
		{"1H", 'H', "1H", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ToSeconds(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnknownUnit))

			var ue *UnknownUnitError
			require.True(t, errors.As(err, &ue))
			assert.Equal(t, tt.code, ue.Code)
			assert.Equal(t, tt.text, ue.Text)
			assert.Equal(t, tt.offset, ue.Offset)
		})
	}
}

func TestToSecondsLenientSkipsUnknownUnits(t *testing.T) {
	c := New(Config{Policy: PolicyLenient})

	got, err := c.ToSeconds("10m1x3h")
	require.NoError(t, err)

	want, err := c.ToSeconds("10m3h")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = c.ToSeconds("10x")
	require.NoError(t, err)
	assert.Equal(t, float64(0), got)
}

func TestToIntegerSeconds(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"2h", 7200},
		{"1500ms", 1},
		{"999ms", 0},
		{"1m59s999i", 119},
		{"", 0},
	}

	for _, tt := range tests {
		got, err := ToIntegerSeconds(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestToIntegerSecondsOverflow(t *testing.T) {
	_, err := ToIntegerSeconds("3000000000c")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfRange))

	// The float form has no such limit.
	f, err := ToSeconds("3000000000c")
	require.NoError(t, err)
	assert.Equal(t, 3000000000*3153600000.0, f)
}

func TestToIntegerSecondsIsExact(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"9007199254740993s", 9007199254740993},
		{"1000000000c1s", 3153600000000000001},
		{"9223372036854775807s", math.MaxInt64},
		{"9223372036854775806s999ms999mc1000ns", math.MaxInt64},
		{"2000000000i", 2000000},
		{"1999999999ns", 1},
		{"600ms600ms", 1},
	}

	for _, tt := range tests {
		got, err := ToIntegerSeconds(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestToIntegerSecondsRangeBoundary(t *testing.T) {
	for _, input := range []string{"9223372036854775808s", "9223372036854775807s1000ms", "18446744073709551615s1s", "6000000000c"} {
		_, err := ToIntegerSeconds(input)
		assert.ErrorIs(t, err, ErrOutOfRange, input)
	}
}

func TestToSecondsMagnitudeOverflow(t *testing.T) {
	_, err := ToSeconds("99999999999999999999s")
	require.Error(t, err)

	var re *RangeError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "parse", re.Op)
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestTokenize(t *testing.T) {
	pairs, err := Tokenize("10m, 5ms and 2x")
	require.NoError(t, err)
	require.Len(t, pairs, 3)

	assert.Equal(t, Pair{Magnitude: 10, Code: 'm', Offset: 0, Text: "10m"}, pairs[0])
	// "5ms" was normalized to "5i".
	assert.Equal(t, Pair{Magnitude: 5, Code: 'i', Offset: 5, Text: "5i"}, pairs[1])
	assert.Equal(t, Pair{Magnitude: 2, Code: 'x', Offset: 12, Text: "2x"}, pairs[2])
}

func TestParseWithCustomTable(t *testing.T) {
	tbl := unit.MustTable(
		unit.Unit{Code: 'h', Nanos: 3600 * unit.NanosPerSecond, Plural: "Hours", Singular: "Hour", Aliases: []string{"hr"}},
		unit.Unit{Code: 's', Nanos: unit.NanosPerSecond, Plural: "Seconds", Singular: "Second"},
	)
	c := New(Config{Table: tbl})

	got, err := c.ToSeconds("2hr 5s")
	require.NoError(t, err)
	assert.Equal(t, float64(7205), got)

	_, err = c.ToSeconds("1d")
	assert.True(t, errors.Is(err, ErrUnknownUnit))
}
