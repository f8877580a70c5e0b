// Package github implements the GitHub API client used to inspect CI
// workflow runs for the published repository.
package github

import (
	"context"
	"net/url"
	"strings"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mason-build/mason/pkg/domain/interfaces"
	"github.com/mason-build/mason/pkg/domain/model"
)

type client struct {
	githubClient *github.Client
}

// Option is a functional option for client configuration
type Option func(*client) error

// WithBaseURL points the client at a different API endpoint. Used by
// tests and GitHub Enterprise setups.
func WithBaseURL(base string) Option {
	return func(c *client) error {
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return goerr.Wrap(err, "invalid API base URL", goerr.V("base_url", base))
		}
		c.githubClient.BaseURL = u
		return nil
	}
}

// NewClient creates a GitHub client. An empty token is allowed and limits
// access to public repositories.
func NewClient(token string, opts ...Option) (interfaces.GitHubClient, error) {
	ghc := github.NewClient(nil)
	if token != "" {
		ghc = ghc.WithAuthToken(token)
	}

	c := &client{githubClient: ghc}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// LatestWorkflowRun returns the most recent workflow run for the
// repository, optionally filtered by branch. Returns nil when no runs
// exist.
func (c *client) LatestWorkflowRun(ctx context.Context, owner, repo, branch string) (*model.WorkflowRun, error) {
	opts := &github.ListWorkflowRunsOptions{
		Branch:      branch,
		ListOptions: github.ListOptions{PerPage: 1},
	}

	runs, _, err := c.githubClient.Actions.ListRepositoryWorkflowRuns(ctx, owner, repo, opts)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list workflow runs",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("branch", branch),
		)
	}

	if len(runs.WorkflowRuns) == 0 {
		return nil, nil
	}

	run := runs.WorkflowRuns[0]
	return &model.WorkflowRun{
		ID:         run.GetID(),
		Name:       run.GetName(),
		HeadBranch: run.GetHeadBranch(),
		HeadSHA:    run.GetHeadSHA(),
		Status:     run.GetStatus(),
		Conclusion: run.GetConclusion(),
		HTMLURL:    run.GetHTMLURL(),
		CreatedAt:  run.GetCreatedAt().Time,
	}, nil
}
