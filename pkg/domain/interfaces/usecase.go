package interfaces

import (
	"context"

	"github.com/mason-build/mason/pkg/domain/model"
)

// ApplyInput carries the per-run parameters of an apply operation.
type ApplyInput struct {
	Manifest *model.Manifest
	Fresh    bool // Delete targets before writing
	Publish  *model.PublishRequest
}

// ApplyUseCase materializes the build configuration described by a
// manifest and optionally publishes it.
type ApplyUseCase interface {
	Apply(ctx context.Context, input *ApplyInput) (*model.RunReport, error)
}

// StatusUseCase reports the state of the most recent CI workflow run.
type StatusUseCase interface {
	LatestRun(ctx context.Context, owner, repo, branch string) (*model.WorkflowRun, error)
}
