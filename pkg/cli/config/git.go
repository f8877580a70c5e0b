package config

import (
	"github.com/mason-build/mason/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Git holds publish configuration
type Git struct {
	Push    bool
	Remote  string
	Branch  string
	Message string
	Force   bool
}

// Flags returns CLI flags for publish configuration
func (c *Git) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "push",
			Usage:       "Commit and push written artifacts",
			Destination: &c.Push,
			Sources:     cli.EnvVars("MASON_PUSH"),
		},
		&cli.StringFlag{
			Name:        "git-remote",
			Usage:       "Remote to push to",
			Value:       "origin",
			Destination: &c.Remote,
			Sources:     cli.EnvVars("MASON_GIT_REMOTE"),
		},
		&cli.StringFlag{
			Name:        "git-branch",
			Usage:       "Branch to push",
			Value:       "main",
			Destination: &c.Branch,
			Sources:     cli.EnvVars("MASON_GIT_BRANCH"),
		},
		&cli.StringFlag{
			Name:        "git-message",
			Usage:       "Commit message",
			Value:       "Regenerate build configuration",
			Destination: &c.Message,
			Sources:     cli.EnvVars("MASON_GIT_MESSAGE"),
		},
		&cli.BoolFlag{
			Name:        "force-push",
			Usage:       "Use --force when pushing",
			Destination: &c.Force,
			Sources:     cli.EnvVars("MASON_FORCE_PUSH"),
		},
	}
}

// Request builds a publish request for the working tree at dir, or nil
// when pushing is disabled.
func (c *Git) Request(dir string) *model.PublishRequest {
	if !c.Push {
		return nil
	}
	return &model.PublishRequest{
		Dir:     dir,
		Message: c.Message,
		Remote:  c.Remote,
		Branch:  c.Branch,
		Force:   c.Force,
	}
}
