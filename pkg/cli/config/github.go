package config

import "github.com/urfave/cli/v3"

// GitHub holds GitHub API configuration
type GitHub struct {
	Owner  string
	Repo   string
	Branch string
	Token  string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-owner",
			Usage:       "Repository owner",
			Required:    true,
			Destination: &c.Owner,
			Sources:     cli.EnvVars("MASON_GITHUB_OWNER"),
		},
		&cli.StringFlag{
			Name:        "github-repo",
			Usage:       "Repository name",
			Required:    true,
			Destination: &c.Repo,
			Sources:     cli.EnvVars("MASON_GITHUB_REPO"),
		},
		&cli.StringFlag{
			Name:        "github-branch",
			Usage:       "Branch to filter workflow runs by",
			Destination: &c.Branch,
			Sources:     cli.EnvVars("MASON_GITHUB_BRANCH"),
		},
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "API token (optional for public repositories)",
			Destination: &c.Token,
			Sources:     cli.EnvVars("MASON_GITHUB_TOKEN"),
		},
	}
}
