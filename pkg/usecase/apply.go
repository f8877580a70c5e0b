package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mason-build/mason/pkg/domain/interfaces"
	"github.com/mason-build/mason/pkg/domain/model"
	"github.com/mason-build/mason/pkg/gradle"
)

type applyUseCase struct {
	store     interfaces.ArtifactStore
	publisher interfaces.Publisher
	notifier  interfaces.Notifier
	baseDir   string
	now       func() time.Time
}

// ApplyOption is a functional option for apply use case configuration
type ApplyOption func(*applyUseCase)

// WithClock replaces the wall-clock source. Used by tests for
// deterministic rendering.
func WithClock(now func() time.Time) ApplyOption {
	return func(uc *applyUseCase) {
		uc.now = now
	}
}

// NewApply creates the apply use case. baseDir is the directory all
// artifact paths resolve against.
func NewApply(
	store interfaces.ArtifactStore,
	publisher interfaces.Publisher,
	notifier interfaces.Notifier,
	baseDir string,
	opts ...ApplyOption,
) interfaces.ApplyUseCase {
	uc := &applyUseCase{
		store:     store,
		publisher: publisher,
		notifier:  notifier,
		baseDir:   baseDir,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Apply renders the plan for the manifest, materializes every artifact,
// and optionally publishes. Filesystem and template failures abort the
// run; publish and notification failures are logged and reported but do
// not fail it.
func (uc *applyUseCase) Apply(ctx context.Context, input *interfaces.ApplyInput) (*model.RunReport, error) {
	logger := ctxlog.From(ctx)

	startedAt := uc.now()
	report := &model.RunReport{
		RunID:     uuid.NewString(),
		Style:     input.Manifest.Project.Style,
		BaseDir:   uc.baseDir,
		StartedAt: startedAt,
	}

	logger.Info("Starting apply run",
		"run_id", report.RunID,
		"style", report.Style,
		"base_dir", uc.baseDir,
		"fresh", input.Fresh,
		"publish", input.Publish != nil,
	)

	plan, err := gradle.BuildPlan(input.Manifest, startedAt)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build plan", goerr.V("run_id", report.RunID))
	}

	if input.Fresh {
		for _, artifact := range plan.Artifacts {
			if err := uc.store.DeleteIfExists(ctx, artifact.Path); err != nil {
				return nil, goerr.Wrap(err, "failed to delete stale artifact",
					goerr.V("run_id", report.RunID),
					goerr.V("path", artifact.Path),
				)
			}
		}
	}

	if err := uc.store.Materialize(ctx, plan.Artifacts); err != nil {
		return nil, goerr.Wrap(err, "failed to materialize artifacts", goerr.V("run_id", report.RunID))
	}
	report.Artifacts = plan.Paths()

	logger.Info("Materialized artifacts",
		"run_id", report.RunID,
		"count", len(report.Artifacts),
	)

	if input.Publish != nil {
		if err := uc.publisher.Publish(ctx, input.Publish); err != nil {
			// Publish is best-effort: artifacts stay written, the run
			// does not fail.
			logger.Warn("Publish failed",
				"run_id", report.RunID,
				"error", err,
			)
			report.PublishError = err.Error()
		} else {
			report.Published = true
			logger.Info("Published artifacts",
				"run_id", report.RunID,
				"remote", input.Publish.Remote,
				"branch", input.Publish.Branch,
			)
		}
	}

	if err := uc.notifier.NotifyRun(ctx, report); err != nil {
		logger.Warn("Failed to send run notification",
			"run_id", report.RunID,
			"error", err,
		)
	}

	return report, nil
}
