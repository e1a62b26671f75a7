package tools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Result records the outcome of one external command. A failed Result is
// informational only; callers keep going.
type Result struct {
	Name     string
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

// OK reports whether the command started and exited with status 0.
func (r Result) OK() bool {
	return r.Err == nil
}

// CommandLine renders the invocation for logs and dry-run output.
func (r Result) CommandLine() string {
	if len(r.Args) == 0 {
		return r.Name
	}
	return r.Name + " " + strings.Join(r.Args, " ")
}

// Runner runs an external command to completion.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) Result
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	logger *slog.Logger
	env    SessionEnv
}

var _ Runner = (*ExecRunner)(nil)

// NewExecRunner creates a runner. env supplies DISPLAY/XAUTHORITY fallbacks for
// children started from an environment without them.
func NewExecRunner(logger *slog.Logger, env SessionEnv) *ExecRunner {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExecRunner{logger: logger, env: env}
}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) Result {
	res := Result{Name: name, Args: append([]string(nil), args...)}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = r.env.Apply(cmd.Environ())

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
		} else {
			res.ExitCode = -1
		}
		res.Err = fmt.Errorf("%s: %w", name, err)
		r.logger.Warn("external command failed",
			"cmd", res.CommandLine(),
			"exit_code", res.ExitCode,
			"stderr", strings.TrimSpace(res.Stderr),
			"error", err)
		return res
	}

	r.logger.Debug("external command finished", "cmd", res.CommandLine(), "stdout_bytes", len(res.Stdout))
	return res
}
