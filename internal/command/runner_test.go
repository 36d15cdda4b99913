package command

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"go.uber.org/zap"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExecRunner_CapturesStreams(t *testing.T) {
	requireShell(t)
	runner := NewExecRunner(Config{}, zap.NewNop())

	res := runner.Run(context.Background(), []string{"sh", "-c", "printf 'hello\\n\\n  '; printf 'oops\\n' >&2; exit 3"})

	if res.ExitCode != 3 {
		t.Errorf("expected exit code 3, got %d", res.ExitCode)
	}
	if res.Stdout != "hello" {
		t.Errorf("expected right-trimmed stdout %q, got %q", "hello", res.Stdout)
	}
	if res.Stderr != "oops" {
		t.Errorf("expected stderr %q, got %q", "oops", res.Stderr)
	}
	if res.Err != nil {
		t.Errorf("expected no launch error for a normal exit, got %v", res.Err)
	}
	if res.Success() {
		t.Error("non-zero exit must not be a success")
	}
}

func TestExecRunner_Success(t *testing.T) {
	requireShell(t)
	runner := NewExecRunner(Config{}, nil)

	res := runner.Run(context.Background(), []string{"sh", "-c", "echo '  leading kept'"})
	if !res.Success() {
		t.Fatalf("expected success, got exit %d (%v)", res.ExitCode, res.Err)
	}
	if res.Stdout != "  leading kept" {
		t.Errorf("expected only trailing whitespace trimmed, got %q", res.Stdout)
	}
	if res.String() != "sh -c echo '  leading kept'" {
		t.Errorf("unexpected command string %q", res.String())
	}
}

func TestExecRunner_MissingBinary(t *testing.T) {
	runner := NewExecRunner(Config{}, zap.NewNop())

	res := runner.Run(context.Background(), []string{"definitely-not-a-real-binary-7f3a"})

	if res.ExitCode == 0 {
		t.Error("expected non-zero exit code for missing binary")
	}
	if res.Err == nil {
		t.Error("expected launch error to be recorded")
	}
	if res.Stderr == "" {
		t.Error("expected launch error text in Stderr")
	}
}

func TestExecRunner_EmptyArgv(t *testing.T) {
	runner := NewExecRunner(Config{}, zap.NewNop())

	res := runner.Run(context.Background(), nil)
	if res.ExitCode != -1 || res.Err == nil {
		t.Errorf("expected launch failure for empty argv, got %+v", res)
	}
}

func TestExecRunner_Timeout(t *testing.T) {
	requireShell(t)
	runner := NewExecRunner(Config{Timeout: 100 * time.Millisecond}, zap.NewNop())

	res := runner.Run(context.Background(), []string{"sh", "-c", "exec sleep 5"})
	if res.Success() {
		t.Fatal("expected timed out command to fail")
	}
	if res.Err == nil {
		t.Error("expected timeout to be recorded in Err")
	}
	if res.Duration > 4*time.Second {
		t.Errorf("command was not cut short: %s", res.Duration)
	}
}

func TestPathChecker(t *testing.T) {
	requireShell(t)
	var c PathChecker
	if !c.Available("sh") {
		t.Error("expected sh to be available")
	}
	if c.Available("definitely-not-a-real-binary-7f3a") {
		t.Error("expected made-up binary to be unavailable")
	}
	if c.Available("") {
		t.Error("expected empty name to be unavailable")
	}
}
