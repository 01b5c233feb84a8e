package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// ── Status output helpers ─────────────────────────────────────────────────────
// doctor, init and serve report progress with these so icons and
// indentation stay consistent. Search results go through internal/display.
//
// Icon semantics:
//   ✓  success / healthy
//   ✗  error / failure
//   ⚠  warning
//   ○  skipped / not applicable
//   ~  neutral info

var (
	okIcon   = color.New(color.FgGreen).Sprint("✓")
	errIcon  = color.New(color.FgRed).Sprint("✗")
	warnIcon = color.New(color.FgYellow).Sprint("⚠")
	skipIcon = color.New(color.FgHiBlack).Sprint("○")
)

// printSection prints a top-level section header, e.g. "=== Doctor ===".
func printSection(w io.Writer, title string) {
	fmt.Fprintf(w, "\n=== %s ===\n", title)
}

func printLine(w io.Writer, icon, name, msg string) {
	if name == "" {
		fmt.Fprintf(w, "  %s  %s\n", icon, msg)
	} else {
		fmt.Fprintf(w, "  %s  [%s] %s\n", icon, name, msg)
	}
}

// printOK prints a success line.
//
//	name = "" → "  ✓  msg"
//	name set  → "  ✓  [name] msg"
func printOK(w io.Writer, name, msg string) { printLine(w, okIcon, name, msg) }

// printErr prints an error line.
func printErr(w io.Writer, name, msg string) { printLine(w, errIcon, name, msg) }

// printWarn prints a warning line.
func printWarn(w io.Writer, name, msg string) { printLine(w, warnIcon, name, msg) }

// printSkip prints a skipped / not-applicable line.
func printSkip(w io.Writer, name, msg string) { printLine(w, skipIcon, name, msg) }

// printInfo prints a neutral informational line.
func printInfo(w io.Writer, name, msg string) { printLine(w, "~", name, msg) }
