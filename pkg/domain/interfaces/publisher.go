package interfaces

import (
	"context"

	"github.com/mason-build/mason/pkg/domain/model"
)

// Publisher forwards written artifacts to version control: stage all
// changes, commit, push. The operation is best-effort; a returned error
// means at least one step failed, not that prior steps were undone.
type Publisher interface {
	Publish(ctx context.Context, req *model.PublishRequest) error
}
