package commands

import (
	"fmt"
	"io"

	"github.com/humantime-go/humantime/pkg/version"
)

// Version is the CLI release, set at build time with
// -ldflags "-X github.com/humantime-go/humantime/cmd/humantime/commands.Version=...".
var Version = "dev"

// RunVersion prints the CLI and trace format versions.
func RunVersion(stdout io.Writer) int {
	fmt.Fprintf(stdout, "humantime %s (trace format %s)\n", Version, version.Current)
	return ExitOK
}
