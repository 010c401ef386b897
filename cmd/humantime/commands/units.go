package commands

import (
	"io"
	"strconv"
	"strings"

	"github.com/humantime-go/humantime/pkg/unit"
	"github.com/olekukonko/tablewriter"
)

const unitsUsage = `humantime units - List the unit table

Usage:
  humantime units [flags]
`

// RunUnits implements the units command.
func RunUnits(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("units", unitsUsage, stderr)
	yearsMax := fs.Bool("years-max", false, "Show the table used when decades and centuries are excluded")

	if err := fs.Parse(args); err != nil {
		return ExitError
	}
	if fs.NArg() > 0 {
		return usageError(fs, stderr, "units takes no arguments")
	}

	t := unit.Default()
	if *yearsMax {
		t = t.YearsMax()
	}
	renderUnits(stdout, t)
	return ExitOK
}

// renderUnits writes the table as CODE, NAME, SECONDS, ALIASES rows.
func renderUnits(w io.Writer, t *unit.Table) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"CODE", "NAME", "SECONDS", "ALIASES"})
	table.SetAutoWrapText(false)
	for _, u := range t.Units() {
		table.Append([]string{
			u.Key(),
			u.Plural,
			formatMultiplier(u),
			strings.Join(u.Aliases, ", "),
		})
	}
	table.Render()
}

// formatMultiplier renders the unit length in seconds without an exponent.
func formatMultiplier(u unit.Unit) string {
	if u.Nanos%unit.NanosPerSecond == 0 {
		return strconv.FormatInt(u.Nanos/unit.NanosPerSecond, 10)
	}
	return strconv.FormatFloat(u.Seconds(), 'f', -1, 64)
}
