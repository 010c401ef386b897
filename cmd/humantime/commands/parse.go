package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/humantime-go/humantime/pkg/humantime"
)

const parseUsage = `humantime parse - Convert duration strings to seconds

Usage:
  humantime parse [flags] <duration>...

Each argument is converted separately; quote inputs containing spaces.

Examples:
  humantime parse 1h3d5w
  humantime parse -int 1500ms
  humantime parse -format json 10m "1h 30m"
`

// parseResult is one converted input in structured output.
type parseResult struct {
	Input   string `json:"input" yaml:"input"`
	Seconds any    `json:"seconds" yaml:"seconds"`
}

// RunParse implements the parse command.
func RunParse(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("parse", parseUsage, stderr)
	g := addGlobalFlags(fs)
	integer := fs.Bool("int", false, "Truncate the result to whole seconds")
	lenient := fs.Bool("lenient", false, "Skip unknown unit letters instead of failing")
	formatFlag := fs.String("format", "text", "Output format: text, json, yaml")

	if err := fs.Parse(args); err != nil {
		return ExitError
	}
	if fs.NArg() < 1 {
		return usageError(fs, stderr, "at least one duration required")
	}
	format, err := parseOutputFormat(*formatFlag)
	if err != nil {
		return usageError(fs, stderr, err.Error())
	}

	policy := humantime.PolicyStrict
	if *lenient {
		policy = humantime.PolicyLenient
	}
	s, err := g.newSession(policy, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}
	defer s.Close()

	code := ExitOK
	var results []any
	for _, input := range fs.Args() {
		value, err := convertInput(s.conv, input, *integer)
		if err != nil {
			s.slog.Info("parse failed", "input", input, "error", err)
			code = ExitConversion
			if format == formatText {
				fmt.Fprintf(stderr, "Error: %v\n", err)
			} else {
				results = append(results, conversionError{Input: input, Error: err.Error()})
			}
			continue
		}
		if format == formatText {
			fmt.Fprintln(stdout, value)
		} else {
			results = append(results, parseResult{Input: input, Seconds: value})
		}
	}

	if format != formatText {
		if err := writeStructured(stdout, format, results); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return ExitError
		}
	}
	return code
}

// convertInput returns an int64 or a seconds value for input.
func convertInput(c *humantime.Converter, input string, integer bool) (any, error) {
	if integer {
		return c.ToIntegerSeconds(input)
	}
	v, err := c.ToSeconds(input)
	return seconds(v), err
}

// parseSeconds reads a seconds argument for the format command.
func parseSeconds(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number of seconds %q", s)
	}
	return v, nil
}
