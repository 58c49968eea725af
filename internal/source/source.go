// Package source acquires the content body from a file or a spawned command.
// Acquisition never fails outright: every error path collapses into a single
// descriptive fallback line so the refresh loop always has something to show
// and simply retries on the next cycle.
package source

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/kk-code-lab/grain/internal/textutil"
)

// DefaultFilePath is read when neither a file nor a command is configured.
const DefaultFilePath = "/proc/interrupts"

const (
	// Command reads are bounded by a fraction of the refresh interval so a
	// hung process can never stall the schedule or keyboard handling.
	timeoutFraction = 0.8
	timeoutFloor    = 100 * time.Millisecond
	timeoutCeiling  = 3 * time.Second
)

const (
	stderrPrefix = "\x1b[31m"
	stderrSuffix = "\x1b[0m"
)

// Config describes where content comes from. Command takes precedence over
// FilePath when both are set.
type Config struct {
	FilePath string
	Command  []string // program followed by its arguments
	Interval time.Duration
}

// Describe returns the status-line label for the source.
func (c Config) Describe() string {
	if len(c.Command) > 0 {
		return strings.Join(c.Command, " ")
	}
	if c.FilePath != "" {
		return c.FilePath
	}
	return DefaultFilePath
}

// Read acquires the current content body as a non-empty sequence of lines.
func Read(cfg Config) []string {
	if len(cfg.Command) > 0 {
		return readCommand(cfg)
	}
	path := cfg.FilePath
	if path == "" {
		path = DefaultFilePath
	}
	return readFile(path)
}

func readCommand(cfg Config) []string {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout(cfg.Interval))
	defer cancel()

	cmd := exec.CommandContext(ctx, cfg.Command[0], cfg.Command[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// A killed process can leave children holding the output pipes; don't
	// let them stall the refresh loop past the deadline.
	cmd.WaitDelay = 200 * time.Millisecond

	// On timeout the process is killed; whatever the buffers collected so
	// far is still used. Both streams are buffered to completion, so output
	// arrives as all stdout lines followed by all stderr lines.
	runErr := cmd.Run()

	lines := splitContentLines(normalizeTextContent(stdout.Bytes()))
	for _, line := range splitContentLines(normalizeTextContent(stderr.Bytes())) {
		lines = append(lines, stderrPrefix+line+stderrSuffix)
	}

	if len(lines) == 0 {
		if runErr != nil && ctx.Err() == nil {
			return []string{fmt.Sprintf("read failed: %v", runErr)}
		}
		return []string{"command produced no output"}
	}
	return lines
}

func readFile(path string) []string {
	raw, err := os.ReadFile(path)
	if err != nil {
		return []string{fmt.Sprintf("read failed: %v", err)}
	}

	lines := splitContentLines(normalizeTextContent(raw))
	if len(lines) == 0 {
		return []string{fmt.Sprintf("file %s is empty", path)}
	}
	return lines
}

// commandTimeout derives the bounded wait for a spawned process from the
// refresh interval: 80% of the interval, floored at 100ms, capped at 3s.
func commandTimeout(interval time.Duration) time.Duration {
	timeout := time.Duration(float64(interval) * timeoutFraction)
	if timeout < timeoutFloor {
		timeout = timeoutFloor
	}
	if timeout > timeoutCeiling {
		timeout = timeoutCeiling
	}
	return timeout
}

// splitContentLines breaks normalized text into display lines. Blank lines
// are dropped; the survivors are sanitized (tabs expanded, stray control
// runes replaced) so the cell renderer can trust them.
func splitContentLines(text string) []string {
	if text == "" {
		return nil
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, textutil.SanitizeContentLine(line))
	}
	return lines
}
