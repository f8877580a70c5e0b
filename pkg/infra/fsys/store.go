// Package fsys implements the artifact store on the local filesystem.
package fsys

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mason-build/mason/pkg/domain/interfaces"
	"github.com/mason-build/mason/pkg/domain/model"
)

type store struct {
	baseDir string
}

// New creates an ArtifactStore rooted at baseDir. All artifact paths are
// resolved against baseDir, never against the process working directory.
func New(baseDir string) (interfaces.ArtifactStore, error) {
	if baseDir == "" {
		return nil, goerr.New("base directory must not be empty")
	}
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve base directory", goerr.V("base_dir", baseDir))
	}
	return &store{baseDir: abs}, nil
}

// Materialize writes each artifact sequentially with a truncating write,
// creating missing parent directories. Pre-existing content is discarded
// unconditionally. The first failure aborts the run.
func (s *store) Materialize(ctx context.Context, artifacts []model.Artifact) error {
	logger := ctxlog.From(ctx)

	for _, artifact := range artifacts {
		dest, err := s.resolve(artifact.Path)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return goerr.Wrap(err, "failed to create parent directories", goerr.V("path", dest))
		}

		if err := os.WriteFile(dest, []byte(artifact.Content), 0644); err != nil {
			return goerr.Wrap(err, "failed to write artifact", goerr.V("path", dest))
		}

		logger.Debug("Wrote artifact",
			"path", artifact.Path,
			"size_bytes", len(artifact.Content),
		)
	}

	return nil
}

// DeleteIfExists removes the file at the relative path. A missing file is
// not an error.
func (s *store) DeleteIfExists(ctx context.Context, path string) error {
	dest, err := s.resolve(path)
	if err != nil {
		return err
	}

	if err := os.Remove(dest); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return goerr.Wrap(err, "failed to delete artifact", goerr.V("path", dest))
	}

	ctxlog.From(ctx).Debug("Deleted stale artifact", "path", path)
	return nil
}

// resolve joins the relative path with the base directory and rejects
// paths that would escape it.
func (s *store) resolve(path string) (string, error) {
	if path == "" {
		return "", goerr.New("artifact path must not be empty")
	}
	if filepath.IsAbs(path) {
		return "", goerr.New("artifact path must be relative", goerr.V("path", path))
	}

	dest := filepath.Join(s.baseDir, filepath.FromSlash(path))
	if dest != s.baseDir && !strings.HasPrefix(dest, s.baseDir+string(os.PathSeparator)) {
		return "", goerr.New("artifact path escapes base directory", goerr.V("path", path))
	}
	return dest, nil
}
