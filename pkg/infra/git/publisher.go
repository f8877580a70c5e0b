// Package git implements the publish forwarder by shelling out to the
// git command line.
package git

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mason-build/mason/pkg/domain/interfaces"
	"github.com/mason-build/mason/pkg/domain/model"
)

// CommandRunner executes one git invocation in dir. Injected so that
// tests can record invocations instead of executing them.
type CommandRunner func(ctx context.Context, dir string, args ...string) error

// Option is a functional option for publisher configuration
type Option func(*publisher)

// WithRunner replaces the command runner.
func WithRunner(run CommandRunner) Option {
	return func(p *publisher) {
		p.run = run
	}
}

type publisher struct {
	run CommandRunner
}

// New creates a Publisher backed by the git CLI.
func New(opts ...Option) interfaces.Publisher {
	p := &publisher{
		run: execRunner,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish stages all changes, commits, and pushes. Each step is
// best-effort: a failing step is logged and the remaining steps still
// execute, matching the stage-commit-push behavior of a shell script that
// ignores exit codes. The returned error aggregates step failures so the
// caller can report them without treating the run as failed.
func (p *publisher) Publish(ctx context.Context, req *model.PublishRequest) error {
	if req.Dir == "" {
		return goerr.New("publish directory must not be empty")
	}
	if req.Message == "" {
		return goerr.New("commit message must not be empty")
	}

	logger := ctxlog.From(ctx)

	push := []string{"push"}
	if req.Force {
		push = append(push, "--force")
	}
	push = append(push, req.Remote, req.Branch)

	steps := [][]string{
		{"add", "-A"},
		{"commit", "-m", req.Message},
		push,
	}

	var stepErrs []error
	for _, args := range steps {
		if err := p.run(ctx, req.Dir, args...); err != nil {
			logger.Warn("git step failed",
				"args", strings.Join(args, " "),
				"dir", req.Dir,
				"error", err,
			)
			stepErrs = append(stepErrs, err)
			continue
		}
		logger.Debug("git step completed", "args", strings.Join(args, " "))
	}

	if len(stepErrs) > 0 {
		return goerr.Wrap(errors.Join(stepErrs...), "publish completed with failures",
			goerr.V("failed_steps", len(stepErrs)),
		)
	}
	return nil
}

// execRunner runs git via os/exec, capturing combined output for error
// reporting.
func execRunner(ctx context.Context, dir string, args ...string) error {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	out, err := cmd.CombinedOutput()
	if err != nil {
		return goerr.Wrap(err, "git command failed",
			goerr.V("args", args),
			goerr.V("output", strings.TrimSpace(string(out))),
		)
	}
	return nil
}
