package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Result is the captured outcome of one external command.
type Result struct {
	// Argv is the command line that was run
	Argv []string
	// ExitCode is the process exit status, -1 when the process never ran
	ExitCode int
	// Stdout is the right-trimmed standard output
	Stdout string
	// Stderr is the right-trimmed standard error, or the launch error text
	Stderr string
	// Err is set when the process could not be launched or waited on
	Err error
	// Duration is the wall time spent on the command
	Duration time.Duration
}

// Success reports whether the command exited with status zero.
func (r Result) Success() bool {
	return r.ExitCode == 0 && r.Err == nil
}

// String returns the command line as typed at a shell.
func (r Result) String() string {
	return strings.Join(r.Argv, " ")
}

// Runner executes external commands. Implementations never return an error:
// failures are reported through Result.
type Runner interface {
	Run(ctx context.Context, argv []string) Result
}

// Config holds the configuration for command execution.
type Config struct {
	// Timeout bounds each command. Zero means no timeout.
	Timeout time.Duration
}

// ExecRunner runs commands via os/exec without a shell.
type ExecRunner struct {
	config Config
	logger *zap.Logger
}

// NewExecRunner creates a runner with the given configuration.
func NewExecRunner(config Config, logger *zap.Logger) *ExecRunner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExecRunner{
		config: config,
		logger: logger,
	}
}

// Run spawns argv, waits for it and returns both output streams.
func (r *ExecRunner) Run(ctx context.Context, argv []string) Result {
	start := time.Now()
	result := Result{Argv: append([]string(nil), argv...)}

	if len(argv) == 0 {
		result.ExitCode = -1
		result.Err = errors.New("empty command line")
		result.Stderr = result.Err.Error()
		return result
	}

	if r.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.Timeout)
		defer cancel()
	}

	r.logger.Debug("executing command", zap.Strings("argv", argv))

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err := cmd.Run()
	result.Duration = time.Since(start)
	result.Stdout = strings.TrimRight(stdoutBuf.String(), " \t\r\n")
	result.Stderr = strings.TrimRight(stderrBuf.String(), " \t\r\n")

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			// Killed by signal or context deadline.
			if result.ExitCode == -1 {
				result.Err = err
			}
		} else {
			result.ExitCode = -1
			result.Err = fmt.Errorf("failed to start %s: %w", argv[0], err)
			if result.Stderr == "" {
				result.Stderr = result.Err.Error()
			}
		}
	}

	if ctxErr := ctx.Err(); ctxErr != nil && result.Err == nil {
		result.Err = ctxErr
	}

	fields := []zap.Field{
		zap.Strings("argv", argv),
		zap.Int("exit_code", result.ExitCode),
		zap.Duration("duration", result.Duration),
	}
	if result.Err != nil {
		r.logger.Warn("command did not complete", append(fields, zap.Error(result.Err))...)
	} else {
		r.logger.Debug("command complete", append(fields,
			zap.String("stdout", result.Stdout),
			zap.String("stderr", result.Stderr),
		)...)
	}

	return result
}
