// Package log provides structured trace logging for humantime conversions.
//
// Every conversion performed by a humantime.Converter can be reported to a
// Logger as an Event. The trace is separate from operational logging (slog):
// it is a complete machine-readable record of what was parsed or formatted,
// which pairs were matched, and why a conversion failed.
//
// # Basic Usage
//
// Applications configure tracing by providing a Logger implementation:
//
//	// For development: log to console via slog
//	cfg.Logger = log.NewSlogAdapter(slog.Default())
//
//	// For later analysis: write to a binary trace file
//	cfg.Logger, _ = log.NewFileLogger("conversions.htlog")
//
//	// Both: use MultiLogger
//	cfg.Logger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Types
//
// Each Event carries exactly one payload:
//   - Parse: string to seconds (ParseEvent)
//   - Format: seconds to units (FormatEvent)
//   - Error: the failure of either operation (ErrorEventData)
//
// # File Format
//
// Trace files are a stream of CBOR-encoded events with the .htlog
// extension. "humantime trace" views and summarizes them.
package log
