// Copyright © 2025 The Gomon Project.

// Package display renders process snapshots on a terminal.
package display

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"unicode"

	"github.com/zosmac/goproc/process"
	"golang.org/x/term"
)

const (
	// clearScreen homes the cursor and erases the screen.
	clearScreen = "\033[H\033[2J"

	// prompt asks the operator for the next command.
	prompt = "Press k<PID> to kill, r to refresh, q to quit: "

	// fixedWidth approximates the columns preceding COMMAND.
	fixedWidth = 32
)

type (
	// Terminal renders a table of snapshots with columns PID, CPU(s), MEM(MB), and COMMAND.
	Terminal struct {
		w     io.Writer
		top   int  // rows to render, 0 for all
		width int  // terminal width, 0 if unknown
		tty   bool // clear the screen before each frame
	}
)

// NewTerminal creates a display writing to w. If w is a terminal, each frame clears the
// screen and commands are truncated to the terminal's width.
func NewTerminal(w io.Writer, top int) *Terminal {
	t := &Terminal{w: w, top: top}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		t.tty = true
		if width, _, err := term.GetSize(int(f.Fd())); err == nil {
			t.width = width
		}
	}
	return t
}

// Display renders the ranked batch followed by the status message.
func (t *Terminal) Display(batch []process.Snapshot, status string) {
	var buf bytes.Buffer
	if t.tty {
		buf.WriteString(clearScreen)
	}

	rows := batch
	if t.top > 0 && len(rows) > t.top {
		rows = rows[:t.top]
	}

	fmt.Fprintf(&buf, "Processes: %d\n", len(batch))
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PID\tCPU(s)\tMEM(MB)\tCOMMAND")
	for _, s := range rows {
		fmt.Fprintf(tw, "%d\t%.2f\t%.1f\t%s\n", s.Pid, s.CPUSeconds, s.ResidentMB, t.command(s))
	}
	tw.Flush()

	if status != "" {
		buf.WriteString(status + "\n")
	}

	t.w.Write(buf.Bytes())
}

// Prompt writes the command prompt.
func (t *Terminal) Prompt() {
	io.WriteString(t.w, prompt)
}

// command formats the COMMAND column, noting why a row lacks data.
func (t *Terminal) command(s process.Snapshot) string {
	cmd := printable(s.CommandLine)
	switch {
	case errors.Is(s.Err, process.ErrNotFound):
		cmd = "<exited>"
	case errors.Is(s.Err, process.ErrPartial):
		cmd += " <partial>"
	}

	if t.width > fixedWidth {
		if r := []rune(cmd); len(r) > t.width-fixedWidth {
			cmd = string(r[:t.width-fixedWidth])
		}
	}
	return cmd
}

// printable replaces the control characters of a command line, which would otherwise
// break the table or reach the terminal as escape sequences.
func printable(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return '?'
		}
		return r
	}, s)
}
