package interfaces

import (
	"context"

	"github.com/mason-build/mason/pkg/domain/model"
)

// GitHubClient defines the operations used against the GitHub API.
type GitHubClient interface {
	// LatestWorkflowRun returns the most recent workflow run for the
	// repository, optionally filtered by branch. Returns nil when the
	// repository has no runs yet.
	LatestWorkflowRun(ctx context.Context, owner, repo, branch string) (*model.WorkflowRun, error)
}
