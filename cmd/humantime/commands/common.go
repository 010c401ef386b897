// Package commands implements the humantime CLI commands.
//
// Each command is a RunX function taking its arguments and output streams
// and returning a process exit code, so main stays a thin dispatcher and
// the commands can be tested against buffers.
package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/humantime-go/humantime/pkg/humantime"
	"github.com/humantime-go/humantime/pkg/log"
	"gopkg.in/yaml.v3"
)

// Exit codes.
const (
	ExitOK         = 0
	ExitError      = 1 // usage, I/O or trace file errors
	ExitConversion = 2 // at least one input failed to convert
)

// globalFlags are shared by every converting command.
type globalFlags struct {
	trace    string
	logLevel string
	logJSON  bool
}

func addGlobalFlags(fs *flag.FlagSet) *globalFlags {
	g := &globalFlags{}
	fs.StringVar(&g.trace, "trace", "", "Append conversion events to a CBOR trace file (.htlog)")
	fs.StringVar(&g.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	fs.BoolVar(&g.logJSON, "log-json", false, "Write log output as JSON")
	return g
}

// session bundles the converter with the resources backing its logger.
type session struct {
	conv   *humantime.Converter
	logger log.Logger
	slog   *slog.Logger
	file   *log.FileLogger
}

// Close flushes and closes the trace file, if any.
func (s *session) Close() error {
	if s.file != nil {
		return s.file.Close()
	}
	return nil
}

// newSession builds a converter whose events go to the trace file and,
// at debug level, to the operational log.
func (g *globalFlags) newSession(policy humantime.Policy, stderr io.Writer) (*session, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(g.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", g.logLevel)
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if g.logJSON {
		handler = slog.NewJSONHandler(stderr, opts)
	} else {
		handler = slog.NewTextHandler(stderr, opts)
	}

	s := &session{slog: slog.New(handler)}

	var loggers []log.Logger
	if level <= slog.LevelDebug {
		loggers = append(loggers, log.NewSlogAdapter(s.slog))
	}
	if g.trace != "" {
		fl, err := log.NewFileLogger(g.trace)
		if err != nil {
			return nil, fmt.Errorf("opening trace file: %w", err)
		}
		s.file = fl
		loggers = append(loggers, fl)
	}

	s.logger = log.NewMultiLogger(loggers...)
	s.conv = humantime.New(humantime.Config{
		Logger: s.logger,
		Policy: policy,
	})
	s.slog.Info("session started", "session_id", s.conv.SessionID(), "policy", policy.String())
	return s, nil
}

// outputFormat selects how results are written.
type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
	formatYAML outputFormat = "yaml"
)

func parseOutputFormat(s string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(s)); f {
	case formatText, formatJSON, formatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (valid: text, json, yaml)", s)
}

// writeStructured encodes v as JSON or YAML.
func writeStructured(w io.Writer, format outputFormat, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("format %q is not structured", format)
}

// seconds is a float64 that renders without an exponent in text and YAML.
type seconds float64

func (s seconds) String() string {
	return strconv.FormatFloat(float64(s), 'f', -1, 64)
}

func (s seconds) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: s.String()}, nil
}

// conversionError is a failed input in structured output.
type conversionError struct {
	Input string `json:"input" yaml:"input"`
	Error string `json:"error" yaml:"error"`
}

// usageError prints msg and the flag set's usage and returns ExitError.
func usageError(fs *flag.FlagSet, stderr io.Writer, msg string) int {
	fmt.Fprintf(stderr, "Error: %s\n", msg)
	fs.Usage()
	return ExitError
}

func newFlagSet(name, usage string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fmt.Fprintln(stderr, "\nFlags:")
		fs.PrintDefaults()
	}
	return fs
}

// numbersAsArgs inserts "--" before the first argument that is a signed
// number, so "-5" reaches the command as a value instead of failing as an
// undefined flag. Values of non-boolean flags are skipped.
func numbersAsArgs(fs *flag.FlagSet, args []string) []string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" || !strings.HasPrefix(a, "-") {
			return args
		}
		if _, err := strconv.ParseFloat(a, 64); err == nil {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
		name := strings.TrimLeft(a, "-")
		if strings.Contains(name, "=") {
			continue
		}
		if f := fs.Lookup(name); f != nil && !isBoolFlag(f) {
			i++
		}
	}
	return args
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
