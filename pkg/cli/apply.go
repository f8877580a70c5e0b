package cli

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mason-build/mason/pkg/cli/config"
	"github.com/mason-build/mason/pkg/domain/interfaces"
	"github.com/mason-build/mason/pkg/infra/fsys"
	"github.com/mason-build/mason/pkg/infra/git"
	"github.com/mason-build/mason/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdApply() *cli.Command {
	var (
		manifestCfg config.Manifest
		gitCfg      config.Git
		notifyCfg   config.Notify
		fresh       bool
	)

	flags := append(manifestCfg.Flags(), gitCfg.Flags()...)
	flags = append(flags, notifyCfg.Flags()...)
	flags = append(flags, &cli.BoolFlag{
		Name:        "fresh",
		Usage:       "Delete target files before writing them",
		Destination: &fresh,
	})

	return &cli.Command{
		Name:    "apply",
		Aliases: []string{"a"},
		Usage:   "Materialize build configuration from the manifest",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			manifest, err := manifestCfg.Load()
			if err != nil {
				return err
			}

			store, err := fsys.New(manifestCfg.BaseDir)
			if err != nil {
				return err
			}

			notifier, err := notifyCfg.Configure()
			if err != nil {
				return err
			}

			applyUC := usecase.NewApply(store, git.New(), notifier, manifestCfg.BaseDir)

			report, err := applyUC.Apply(ctx, &interfaces.ApplyInput{
				Manifest: manifest,
				Fresh:    fresh,
				Publish:  gitCfg.Request(manifestCfg.BaseDir),
			})
			if err != nil {
				return goerr.Wrap(err, "apply failed")
			}

			logger.Info("Apply run finished",
				"run_id", report.RunID,
				"artifacts", len(report.Artifacts),
				"published", report.Published,
			)
			return nil
		},
	}
}
