package interfaces

import (
	"context"

	"github.com/mason-build/mason/pkg/domain/model"
)

// Notifier delivers a run report to an external channel. Notification
// failures are logged by callers and never fail the run.
type Notifier interface {
	NotifyRun(ctx context.Context, report *model.RunReport) error
}
