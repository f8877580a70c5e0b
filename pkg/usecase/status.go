package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mason-build/mason/pkg/domain/interfaces"
	"github.com/mason-build/mason/pkg/domain/model"
)

type statusUseCase struct {
	githubClient interfaces.GitHubClient
}

// NewStatus creates the CI status use case.
func NewStatus(githubClient interfaces.GitHubClient) interfaces.StatusUseCase {
	return &statusUseCase{
		githubClient: githubClient,
	}
}

// LatestRun fetches the most recent workflow run for the repository.
// Returns nil when the repository has no runs.
func (uc *statusUseCase) LatestRun(ctx context.Context, owner, repo, branch string) (*model.WorkflowRun, error) {
	logger := ctxlog.From(ctx)

	run, err := uc.githubClient.LatestWorkflowRun(ctx, owner, repo, branch)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch latest workflow run",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	if run == nil {
		logger.Info("No workflow runs found", "owner", owner, "repo", repo)
		return nil, nil
	}

	logger.Info("Fetched latest workflow run",
		"owner", owner,
		"repo", repo,
		"run_id", run.ID,
		"status", run.Status,
		"conclusion", run.Conclusion,
	)
	return run, nil
}
