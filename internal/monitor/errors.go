package monitor

import (
	"fmt"
	"strings"

	"github.com/packetshadow/packetshadow/internal/command"
)

// MissingToolError represents a required external tool absent from PATH.
// No command is run when this is returned.
type MissingToolError struct {
	// Tool is the binary that could not be found
	Tool string
}

func (e *MissingToolError) Error() string {
	if e.Tool == "airmon-ng" {
		return fmt.Sprintf("%s not found. Install aircrack-ng and retry.", e.Tool)
	}
	return fmt.Sprintf("%s not found. Install it and retry.", e.Tool)
}

// CommandError represents an external command that ran but did not succeed,
// or could not be launched at all.
type CommandError struct {
	// Action is the human-readable action title
	Action string
	// Argv is the last command line attempted
	Argv []string
	// ExitCode is the process exit code (-1 if it never ran)
	ExitCode int
	// Stderr is the error output of the last attempt
	Stderr string
	// Err is the launch error, if any
	Err error
}

func (e *CommandError) Error() string {
	cmd := strings.Join(e.Argv, " ")
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Action, cmd, e.Err)
	}
	if e.Stderr != "" {
		return fmt.Sprintf("%s failed: %s exited with status %d: %s", e.Action, cmd, e.ExitCode, firstLine(e.Stderr))
	}
	return fmt.Sprintf("%s failed: %s exited with status %d", e.Action, cmd, e.ExitCode)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

func newCommandError(action string, res command.Result) *CommandError {
	return &CommandError{
		Action:   action,
		Argv:     res.Argv,
		ExitCode: res.ExitCode,
		Stderr:   res.Stderr,
		Err:      res.Err,
	}
}

// AggregateError represents a composite action where every alternative
// command failed.
type AggregateError struct {
	// Action is the human-readable action title
	Action string
	// Attempts holds every command tried, in order
	Attempts []command.Result
}

func (e *AggregateError) Error() string {
	tried := make([]string, len(e.Attempts))
	for i, a := range e.Attempts {
		tried[i] = fmt.Sprintf("%s (exit %d)", a.String(), a.ExitCode)
	}
	return fmt.Sprintf("%s: every method failed: %s", e.Action, strings.Join(tried, "; "))
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
