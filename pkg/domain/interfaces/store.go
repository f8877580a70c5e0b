package interfaces

import (
	"context"

	"github.com/mason-build/mason/pkg/domain/model"
)

// ArtifactStore writes rendered artifacts to a base directory. Paths inside
// artifacts are relative; implementations must create missing parent
// directories and overwrite existing files in full.
type ArtifactStore interface {
	// Materialize writes every artifact sequentially. The first write
	// failure aborts the run.
	Materialize(ctx context.Context, artifacts []model.Artifact) error

	// DeleteIfExists removes the file at the relative path if present.
	// Used before materialization to guarantee observable replacement.
	DeleteIfExists(ctx context.Context, path string) error
}
