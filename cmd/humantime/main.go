// Command humantime converts between duration strings and seconds.
//
// Usage:
//
//	humantime <command> [flags] [arguments]
//
// Commands:
//
//	parse        Convert duration strings to seconds
//	format       Convert seconds to a human-readable duration
//	units        List the unit table
//	trace        Inspect conversion trace files (view, stats)
//	interactive  Convert durations line by line
//	version      Print version information
//
// Examples:
//
//	# Sum a compact duration
//	humantime parse 1h3d5w
//
//	# Render seconds without decades or centuries
//	humantime format -years-max 6307200005
//
//	# Record conversions and summarize them
//	humantime parse -trace run.htlog 10m "1h 30m"
//	humantime trace stats run.htlog
package main

import (
	"fmt"
	"os"

	"github.com/humantime-go/humantime/cmd/humantime/commands"
)

const usage = `humantime - Duration string converter

Usage:
  humantime <command> [flags] [arguments]

Commands:
  parse        Convert duration strings to seconds
  format       Convert seconds to a human-readable duration
  units        List the unit table
  trace        Inspect conversion trace files (view, stats)
  interactive  Convert durations line by line
  version      Print version information

Use "humantime <command> -help" for more information about a command.
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 {
		fmt.Fprint(os.Stderr, usage)
		return commands.ExitError
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "parse":
		return commands.RunParse(rest, os.Stdout, os.Stderr)
	case "format":
		return commands.RunFormat(rest, os.Stdout, os.Stderr)
	case "units":
		return commands.RunUnits(rest, os.Stdout, os.Stderr)
	case "trace":
		return commands.RunTrace(rest, os.Stdout, os.Stderr)
	case "interactive":
		return commands.RunInteractive(rest, os.Stdin, os.Stdout, os.Stderr)
	case "version":
		return commands.RunVersion(os.Stdout)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
		return commands.ExitOK
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		return commands.ExitError
	}
}
