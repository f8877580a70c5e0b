package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mason-build/mason/pkg/cli/config"
	"github.com/mason-build/mason/pkg/domain/model"
	"github.com/mason-build/mason/pkg/infra/fsys"
	"github.com/urfave/cli/v3"
)

const starterManifest = `# mason manifest

[project]
name = "app"
# "modern" uses the plugins DSL with centralized plugin management,
# "classic" uses the legacy buildscript DSL.
style = "modern"

[android]
application_id = "com.example.app"
namespace = "com.example.app"
compile_sdk = 34
min_sdk = 24
target_sdk = 34
version_code = 1
version_name = "1.0"
plugin_version = "8.1.0"
ndk_version = "25.1.8937393"
# Set cpp_standard (e.g. "c++20") to generate native build blocks.
cpp_standard = ""
cmake_path = "src/main/cpp/CMakeLists.txt"
dependencies = [
  "androidx.appcompat:appcompat:1.6.1",
  "com.google.android.material:material:1.9.0",
]

[workflow]
name = "Android Build"
gradle_version = "8.2"
java_version = "17"
artifact_name = "app-debug-apk"
checkout_version = "v4"
java_setup_version = "v4"
gradle_setup_version = "v3"
android_setup_version = "v3"
upload_version = "v4"
stamped_artifact = false
`

func cmdInit() *cli.Command {
	var (
		baseDir string
		force   bool
	)

	return &cli.Command{
		Name:  "init",
		Usage: "Write a starter manifest",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "base-dir",
				Aliases:     []string{"C"},
				Usage:       "Directory to write the manifest into",
				Value:       ".",
				Destination: &baseDir,
			},
			&cli.BoolFlag{
				Name:        "force",
				Usage:       "Overwrite an existing manifest",
				Destination: &force,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			store, err := fsys.New(baseDir)
			if err != nil {
				return err
			}

			target := config.DefaultManifestPath
			if !force {
				if _, err := os.Stat(filepath.Join(baseDir, target)); err == nil {
					return goerr.New("manifest already exists, use --force to overwrite",
						goerr.V("path", target))
				}
			}

			err = store.Materialize(ctx, []model.Artifact{
				{Path: target, Content: starterManifest},
			})
			if err != nil {
				return err
			}

			logger.Info("Wrote starter manifest", "path", target)
			return nil
		},
	}
}
