// Package commandtest provides a scripted command.Runner for tests.
package commandtest

import (
	"context"
	"strings"

	"github.com/packetshadow/packetshadow/internal/command"
)

// FakeRunner returns canned results keyed by the joined command line and
// records every call. Unknown command lines exit 127 like a shell would.
type FakeRunner struct {
	Responses map[string]command.Result
	Calls     [][]string
}

// NewFakeRunner creates an empty FakeRunner.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{Responses: make(map[string]command.Result)}
}

// On registers the result for argv.
func (f *FakeRunner) On(argv []string, exitCode int, stdout, stderr string) *FakeRunner {
	f.Responses[strings.Join(argv, " ")] = command.Result{
		ExitCode: exitCode,
		Stdout:   stdout,
		Stderr:   stderr,
	}
	return f
}

// Run implements command.Runner.
func (f *FakeRunner) Run(_ context.Context, argv []string) command.Result {
	f.Calls = append(f.Calls, append([]string(nil), argv...))
	res, ok := f.Responses[strings.Join(argv, " ")]
	if !ok {
		res = command.Result{ExitCode: 127, Stderr: argv[0] + ": command not found"}
	}
	res.Argv = append([]string(nil), argv...)
	return res
}

// CallLines returns the recorded calls as space-joined strings.
func (f *FakeRunner) CallLines() []string {
	lines := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		lines[i] = strings.Join(c, " ")
	}
	return lines
}

// Reset forgets recorded calls but keeps responses.
func (f *FakeRunner) Reset() {
	f.Calls = nil
}

// Tools is a command.ToolChecker backed by a set of names.
type Tools map[string]bool

// Available implements command.ToolChecker.
func (t Tools) Available(name string) bool {
	return t[name]
}
