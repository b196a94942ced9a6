// Copyright © 2025 The Gomon Project.

package display

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zosmac/goproc/process"
)

func batch() []process.Snapshot {
	return []process.Snapshot{
		{Pid: 200, CPUSeconds: 9.5, ResidentMB: 12.3, CommandLine: "/usr/bin/busy --loop"},
		{Pid: 300, CPUSeconds: 1.5, ResidentMB: 0.5, CommandLine: "sh", Err: fmt.Errorf("%w: memory", process.ErrPartial)},
		{Pid: 400, Err: fmt.Errorf("%w: gone", process.ErrNotFound)},
	}
}

func TestTerminalDisplay(t *testing.T) {
	var buf bytes.Buffer
	d := NewTerminal(&buf, 0)
	d.Display(batch(), "Killed PID: 100")

	out := buf.String()
	assert.NotContains(t, out, clearScreen, "a buffer is not a terminal")

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "Processes: 3", lines[0])
	assert.Equal(t, []string{"PID", "CPU(s)", "MEM(MB)", "COMMAND"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"200", "9.50", "12.3", "/usr/bin/busy", "--loop"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"300", "1.50", "0.5", "sh", "<partial>"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"400", "0.00", "0.0", "<exited>"}, strings.Fields(lines[4]))
	assert.Equal(t, "Killed PID: 100", lines[5])
}

func TestTerminalTop(t *testing.T) {
	var buf bytes.Buffer
	d := NewTerminal(&buf, 1)
	d.Display(batch(), "")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Processes: 3", lines[0], "the count reports the whole batch")
	assert.True(t, strings.HasPrefix(lines[2], "200"))
}

func TestTerminalWidth(t *testing.T) {
	var buf bytes.Buffer
	d := &Terminal{w: &buf, width: fixedWidth + 5, tty: true}
	d.Display(batch()[:1], "")

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, clearScreen))
	assert.Contains(t, out, "/usr/")
	assert.NotContains(t, out, "/usr/b")
}

func TestTerminalControlCharacters(t *testing.T) {
	var buf bytes.Buffer
	d := NewTerminal(&buf, 0)
	d.Display([]process.Snapshot{
		{Pid: 500, CommandLine: "app\targ\nnext \x1b[2Jred"},
	}, "")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.NotContains(t, buf.String(), "\x1b")
	assert.Equal(t, []string{"500", "0.00", "0.0", "app?arg?next", "?[2Jred"}, strings.Fields(lines[2]))
}

func TestTerminalPrompt(t *testing.T) {
	var buf bytes.Buffer
	NewTerminal(&buf, 0).Prompt()
	assert.Equal(t, "Press k<PID> to kill, r to refresh, q to quit: ", buf.String())
}
