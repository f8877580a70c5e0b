package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mason-build/mason/pkg/domain/model"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// DefaultManifestPath is where the manifest is looked up when no flag is
// given.
const DefaultManifestPath = "mason.toml"

// Manifest holds manifest loading configuration
type Manifest struct {
	Path    string
	BaseDir string
	Style   string // Override manifest style when non-empty
}

// Flags returns CLI flags for manifest configuration
func (c *Manifest) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "manifest",
			Aliases:     []string{"f"},
			Usage:       "Path to the TOML manifest",
			Value:       DefaultManifestPath,
			Destination: &c.Path,
			Sources:     cli.EnvVars("MASON_MANIFEST"),
		},
		&cli.StringFlag{
			Name:        "base-dir",
			Aliases:     []string{"C"},
			Usage:       "Directory artifacts are written into",
			Value:       ".",
			Destination: &c.BaseDir,
			Sources:     cli.EnvVars("MASON_BASE_DIR"),
		},
		&cli.StringFlag{
			Name:        "style",
			Usage:       "Build descriptor style (classic or modern), overrides the manifest",
			Destination: &c.Style,
			Sources:     cli.EnvVars("MASON_STYLE"),
		},
	}
}

// Load reads the manifest file and applies flag overrides. A missing
// file yields the default manifest so the tool works in an empty
// repository.
func (c *Manifest) Load() (*model.Manifest, error) {
	m := model.DefaultManifest()

	data, err := os.ReadFile(c.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "failed to read manifest", goerr.V("path", c.Path))
		}
	} else {
		if err := toml.Unmarshal(data, m); err != nil {
			return nil, goerr.Wrap(err, "failed to parse manifest", goerr.V("path", c.Path))
		}
	}

	if c.Style != "" {
		m.Project.Style = model.Style(c.Style)
	}

	if err := m.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid manifest", goerr.V("path", c.Path))
	}
	return m, nil
}
