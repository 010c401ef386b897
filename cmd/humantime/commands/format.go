package commands

import (
	"fmt"
	"io"

	"github.com/humantime-go/humantime/pkg/humantime"
)

const formatUsage = `humantime format - Convert seconds to a human-readable duration

Usage:
  humantime format [flags] <seconds>...

Examples:
  humantime format 3723
  humantime format -years-max 6307200005
  humantime format -map -format json 90061

Flags must come before the first number. A leading negative number is
taken as an argument, not a flag.
`

// formatResult is one converted value in structured output.
type formatResult struct {
	Seconds seconds              `json:"seconds" yaml:"seconds"`
	Text    string               `json:"text,omitempty" yaml:"text,omitempty"`
	Units   *humantime.Breakdown `json:"units,omitempty" yaml:"units,omitempty"`
}

// RunFormat implements the format command.
func RunFormat(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("format", formatUsage, stderr)
	g := addGlobalFlags(fs)
	yearsMax := fs.Bool("years-max", false, "Do not use decades or centuries")
	asMap := fs.Bool("map", false, "Output unit counts instead of text")
	formatFlag := fs.String("format", "text", "Output format: text, json, yaml")

	if err := fs.Parse(numbersAsArgs(fs, args)); err != nil {
		return ExitError
	}
	if fs.NArg() < 1 {
		return usageError(fs, stderr, "at least one number of seconds required")
	}
	format, err := parseOutputFormat(*formatFlag)
	if err != nil {
		return usageError(fs, stderr, err.Error())
	}

	values := make([]float64, 0, fs.NArg())
	for _, arg := range fs.Args() {
		v, err := parseSeconds(arg)
		if err != nil {
			return usageError(fs, stderr, err.Error())
		}
		values = append(values, v)
	}

	s, err := g.newSession(humantime.PolicyStrict, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}
	defer s.Close()

	code := ExitOK
	var results []any
	for i, v := range values {
		b, err := s.conv.Decompose(v, *yearsMax)
		if err != nil {
			s.slog.Info("format failed", "seconds", v, "error", err)
			code = ExitConversion
			if format == formatText {
				fmt.Fprintf(stderr, "Error: %v\n", err)
			} else {
				results = append(results, conversionError{Input: fs.Arg(i), Error: err.Error()})
			}
			continue
		}

		switch {
		case format != formatText && *asMap:
			results = append(results, formatResult{Seconds: seconds(v), Units: &b})
		case format != formatText:
			results = append(results, formatResult{Seconds: seconds(v), Text: b.String()})
		case *asMap:
			writeBreakdown(stdout, b)
		default:
			fmt.Fprintln(stdout, b.String())
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

// writeBreakdown writes one "code count" line per unit, largest first.
// A zero duration is written as an empty line.
func writeBreakdown(w io.Writer, b humantime.Breakdown) {
	if b.IsZero() {
		fmt.Fprintln(w)
		return
	}
	for _, c := range b {
		fmt.Fprintf(w, "%s %d\n", c.Unit.Key(), c.Count)
	}
}
