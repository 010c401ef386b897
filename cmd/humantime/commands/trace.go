package commands

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/humantime-go/humantime/pkg/log"
	"github.com/olekukonko/tablewriter"
)

const traceUsage = `humantime trace - Inspect conversion trace files

Usage:
  humantime trace view [flags] <file.htlog>
  humantime trace stats [flags] <file.htlog>

Trace files are written by parse, format and interactive with -trace.
`

// RunTrace implements the trace command and its view and stats subcommands.
func RunTrace(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprint(stderr, traceUsage)
		return ExitError
	}

	sub := args[0]
	var run func(path string, filter log.Filter, w io.Writer) error
	switch sub {
	case "view":
		run = RunView
	case "stats":
		run = RunStats
	case "-h", "-help", "--help", "help":
		fmt.Fprint(stdout, traceUsage)
		return ExitOK
	default:
		fmt.Fprintf(stderr, "Unknown trace command: %s\n", sub)
		fmt.Fprint(stderr, traceUsage)
		return ExitError
	}

	fs := newFlagSet("trace "+sub, traceUsage, stderr)
	op := fs.String("op", "", "Filter by operation (parse, format)")
	errorsOnly := fs.Bool("errors", false, "Show only failed conversions")
	sessionID := fs.String("session", "", "Filter by session ID")

	if err := fs.Parse(args[1:]); err != nil {
		return ExitError
	}
	if fs.NArg() != 1 {
		return usageError(fs, stderr, "trace file path required")
	}

	filter := log.Filter{SessionID: *sessionID, ErrorsOnly: *errorsOnly}
	if *op != "" {
		o, err := ParseOperationFlag(*op)
		if err != nil {
			return usageError(fs, stderr, err.Error())
		}
		filter.Operation = &o
	}

	if err := run(fs.Arg(0), filter, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}
	return ExitOK
}

// ParseOperationFlag parses an operation name.
func ParseOperationFlag(s string) (log.Operation, error) {
	switch strings.ToLower(s) {
	case "parse":
		return log.OperationParse, nil
	case "format":
		return log.OperationFormat, nil
	default:
		return 0, fmt.Errorf("invalid operation: %s (valid: parse, format)", s)
	}
}

// RunView prints the matching events of a trace file in human-readable form.
func RunView(path string, filter log.Filter, w io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(w, event)
	}
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [session:id] OPERATION elapsed
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [session:%s] %s", ts, shortenSessionID(event.SessionID), event.Operation)
	if event.Elapsed > 0 {
		fmt.Fprintf(w, " %s", event.Elapsed)
	}
	if event.Failed() {
		fmt.Fprint(w, " FAILED")
	}
	fmt.Fprintln(w)

	switch {
	case event.Parse != nil:
		formatParseDetails(w, event.Parse, event.Failed())
	case event.Format != nil:
		formatFormatDetails(w, event.Format, event.Failed())
	}
	if event.Error != nil {
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w)
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatParseDetails(w io.Writer, p *log.ParseEvent, failed bool) {
	fmt.Fprintf(w, "  Input: %q\n", p.Input)
	if p.Normalized != "" && p.Normalized != p.Input {
		fmt.Fprintf(w, "  Normalized: %q\n", p.Normalized)
	}
	if len(p.Pairs) > 0 {
		fmt.Fprintf(w, "  Pairs: %s\n", joinPairs(p.Pairs, true))
	}
	if len(p.Skipped) > 0 {
		fmt.Fprintf(w, "  Skipped: %s\n", joinPairs(p.Skipped, false))
	}
	if !failed {
		fmt.Fprintf(w, "  Total: %s", seconds(p.Total))
		if p.Integer {
			fmt.Fprint(w, " (integer)")
		}
		fmt.Fprintln(w)
	}
}

func joinPairs(pairs []log.PairRecord, withSeconds bool) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		if withSeconds {
			parts[i] = fmt.Sprintf("%s=%s", p.Text, seconds(p.Seconds))
		} else {
			parts[i] = fmt.Sprintf("%s@%d", p.Text, p.Offset)
		}
	}
	return strings.Join(parts, " ")
}

func formatFormatDetails(w io.Writer, f *log.FormatEvent, failed bool) {
	fmt.Fprintf(w, "  Seconds: %s\n", seconds(f.Seconds))
	if f.YearsMax {
		fmt.Fprintln(w, "  YearsMax: true")
	}
	if failed {
		return
	}
	if len(f.Components) > 0 {
		parts := make([]string, len(f.Components))
		for i, c := range f.Components {
			parts[i] = c.Code + "=" + strconv.FormatUint(c.Count, 10)
		}
		fmt.Fprintf(w, "  Components: %s\n", strings.Join(parts, " "))
	}
	fmt.Fprintf(w, "  Text: %q\n", f.Text)
}

func formatErrorDetails(w io.Writer, e *log.ErrorEventData) {
	fmt.Fprintf(w, "  Error: %s: %s\n", e.Kind, e.Message)
}

// Stats holds aggregate statistics about a trace file.
type Stats struct {
	TotalEvents int
	Sessions    map[string]int
	Operations  map[log.Operation]*OperationStats
	ErrorKinds  map[log.ErrorKind]int
	UnitsParsed map[string]int
	UnitsFormat map[string]int
	TimeRange   struct {
		Start time.Time
		End   time.Time
	}
}

// OperationStats holds statistics for one operation.
type OperationStats struct {
	Events  int
	Failed  int
	Elapsed time.Duration
}

// Average returns the mean elapsed time per event.
func (o *OperationStats) Average() time.Duration {
	if o.Events == 0 {
		return 0
	}
	return o.Elapsed / time.Duration(o.Events)
}

// RunStats analyzes the trace file and prints statistics.
func RunStats(path string, filter log.Filter, w io.Writer) error {
	events, err := log.ReadAll(path, filter)
	if err != nil {
		return fmt.Errorf("failed to read trace file: %w", err)
	}
	printStats(w, collectStats(events))
	return nil
}

func collectStats(events []log.Event) *Stats {
	stats := &Stats{
		Sessions:    make(map[string]int),
		Operations:  make(map[log.Operation]*OperationStats),
		ErrorKinds:  make(map[log.ErrorKind]int),
		UnitsParsed: make(map[string]int),
		UnitsFormat: make(map[string]int),
	}

	for _, event := range events {
		stats.TotalEvents++
		stats.Sessions[event.SessionID]++

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		op, ok := stats.Operations[event.Operation]
		if !ok {
			op = &OperationStats{}
			stats.Operations[event.Operation] = op
		}
		op.Events++
		op.Elapsed += event.Elapsed

		if event.Error != nil {
			op.Failed++
			stats.ErrorKinds[event.Error.Kind]++
			continue
		}
		if event.Parse != nil {
			for _, p := range event.Parse.Pairs {
				stats.UnitsParsed[p.Code]++
			}
		}
		if event.Format != nil {
			for _, c := range event.Format.Components {
				stats.UnitsFormat[c.Code]++
			}
		}
	}
	return stats
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== humantime Trace Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
	}
	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintf(w, "Sessions: %d\n", len(stats.Sessions))
	fmt.Fprintln(w)

	if len(stats.Operations) > 0 {
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"OPERATION", "EVENTS", "FAILED", "AVG ELAPSED"})
		for _, op := range []log.Operation{log.OperationParse, log.OperationFormat} {
			s, ok := stats.Operations[op]
			if !ok {
				continue
			}
			table.Append([]string{
				op.String(),
				strconv.Itoa(s.Events),
				strconv.Itoa(s.Failed),
				s.Average().String(),
			})
		}
		table.Render()
		fmt.Fprintln(w)
	}

	if len(stats.UnitsParsed)+len(stats.UnitsFormat) > 0 {
		codes := make(map[string]struct{})
		for c := range stats.UnitsParsed {
			codes[c] = struct{}{}
		}
		for c := range stats.UnitsFormat {
			codes[c] = struct{}{}
		}
		sorted := make([]string, 0, len(codes))
		for c := range codes {
			sorted = append(sorted, c)
		}
		sort.Strings(sorted)

		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"UNIT", "PARSED", "FORMATTED"})
		for _, c := range sorted {
			table.Append([]string{c, strconv.Itoa(stats.UnitsParsed[c]), strconv.Itoa(stats.UnitsFormat[c])})
		}
		table.Render()
		fmt.Fprintln(w)
	}

	if len(stats.ErrorKinds) > 0 {
		fmt.Fprintln(w, "Errors by Kind:")
		for _, k := range []log.ErrorKind{log.ErrorKindUnknownUnit, log.ErrorKindRange, log.ErrorKindOther} {
			if count := stats.ErrorKinds[k]; count > 0 {
				fmt.Fprintf(w, "  %-14s %d\n", k.String()+":", count)
			}
		}
	}
}
