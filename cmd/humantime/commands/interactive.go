package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/humantime-go/humantime/pkg/humantime"
	"golang.org/x/term"
)

const interactiveUsage = `humantime interactive - Convert durations line by line

Usage:
  humantime interactive [flags]

On a terminal a prompt with line editing is shown. When input is piped,
each line is converted and the result written to stdout.
`

// Shell evaluates interactive input lines.
type Shell struct {
	strict   *humantime.Converter
	lenient  *humantime.Converter
	useLax   bool
	yearsMax bool
	out      io.Writer
}

// NewShell creates a shell that writes results to out. The lenient
// converter shares the strict converter's session.
func NewShell(strict *humantime.Converter, cfg humantime.Config, out io.Writer) *Shell {
	cfg.Table = strict.Table()
	cfg.Policy = humantime.PolicyLenient
	cfg.SessionID = strict.SessionID()
	return &Shell{
		strict:  strict,
		lenient: humantime.New(cfg),
		out:     out,
	}
}

// Execute evaluates one line. It returns false when the shell should exit.
// A line of only digits and at most one '.' is formatted as seconds;
// anything else, including "2e5" or "inf", is parsed as a duration.
func (s *Shell) Execute(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return true
	}

	switch strings.ToLower(input) {
	case "help", "?":
		s.printHelp()
		return true
	case "quit", "exit", "q":
		return false
	case "years":
		s.yearsMax = !s.yearsMax
		fmt.Fprintf(s.out, "years-max: %s\n", onOff(s.yearsMax))
		return true
	case "lenient":
		s.useLax = !s.useLax
		fmt.Fprintf(s.out, "lenient: %s\n", onOff(s.useLax))
		return true
	case "units":
		t := s.strict.Table()
		if s.yearsMax {
			t = t.YearsMax()
		}
		renderUnits(s.out, t)
		return true
	}

	conv := s.strict
	if s.useLax {
		conv = s.lenient
	}

	if v, ok := plainNumber(input); ok {
		text, err := conv.FromSeconds(v, s.yearsMax)
		switch {
		case err != nil:
			fmt.Fprintf(s.out, "error: %v\n", err)
		case text == "":
			fmt.Fprintln(s.out, "= 0 Seconds")
		default:
			fmt.Fprintf(s.out, "= %s\n", text)
		}
		return true
	}

	v, err := conv.ToSeconds(input)
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return true
	}
	fmt.Fprintf(s.out, "= %s seconds\n", seconds(v))
	return true
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
humantime Commands:
  <duration>  - Convert to seconds (e.g. 1h3d5w, 10m 3h)
  <seconds>   - Convert to units (digits and '.' only, e.g. 3723 or 0.5)
  years       - Toggle years-max (no decades or centuries)
  lenient     - Toggle skipping of unknown unit letters
  units       - Show the unit table
  help        - Show this help
  exit        - Exit`)
}

// plainNumber parses s when it is written with decimal digits and an
// optional '.', so exponents and words are left to the duration parser.
func plainNumber(s string) (float64, bool) {
	for i := 0; i < len(s); i++ {
		if (s[i] < '0' || s[i] > '9') && s[i] != '.' {
			return 0, false
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// RunInteractive implements the interactive command.
func RunInteractive(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := newFlagSet("interactive", interactiveUsage, stderr)
	g := addGlobalFlags(fs)

	if err := fs.Parse(args); err != nil {
		return ExitError
	}
	if fs.NArg() > 0 {
		return usageError(fs, stderr, "interactive takes no arguments")
	}

	s, err := g.newSession(humantime.PolicyStrict, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}
	defer s.Close()

	cfg := humantime.Config{Logger: s.logger}
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if err := runPrompt(f, NewShell(s.conv, cfg, stdout), stdout); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}

	if err := runFilter(stdin, NewShell(s.conv, cfg, stdout)); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}
	return ExitOK
}

// runPrompt drives the shell from a readline prompt.
func runPrompt(stdin *os.File, sh *Shell, stdout io.Writer) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "humantime> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdin:           stdin,
		Stdout:          stdout,
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	sh.out = rl.Stdout()
	sh.printHelp()

	for {
		line, err := rl.Readline()
		if err != nil {
			// EOF or interrupt
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			return nil
		}
		if !sh.Execute(line) {
			return nil
		}
	}
}

// runFilter evaluates one line at a time until EOF or exit.
func runFilter(r io.Reader, sh *Shell) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if !sh.Execute(scanner.Text()) {
			return nil
		}
	}
	return scanner.Err()
}
