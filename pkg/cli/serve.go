package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mason-build/mason/pkg/cli/config"
	controller "github.com/mason-build/mason/pkg/controller/http"
	"github.com/mason-build/mason/pkg/domain/interfaces"
	"github.com/mason-build/mason/pkg/infra/fsys"
	"github.com/mason-build/mason/pkg/infra/git"
	"github.com/mason-build/mason/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg   config.Server
		manifestCfg config.Manifest
		gitCfg      config.Git
		notifyCfg   config.Notify
	)

	flags := append(serverCfg.Flags(), manifestCfg.Flags()...)
	flags = append(flags, gitCfg.Flags()...)
	flags = append(flags, notifyCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server exposing the regenerate endpoint",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting mason server",
				slog.String("addr", serverCfg.Addr),
				slog.String("base_dir", manifestCfg.BaseDir),
			)

			// Fail fast on a broken manifest before accepting requests
			baseManifest, err := manifestCfg.Load()
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

			newInput := func() *interfaces.ApplyInput {
				return &interfaces.ApplyInput{
					Manifest: baseManifest.Clone(),
					Publish:  gitCfg.Request(manifestCfg.BaseDir),
				}
			}

			server, err := controller.NewServer(
				ctx,
				applyUC,
				newInput,
				controller.WithAddr(serverCfg.Addr),
				controller.WithAPIToken(serverCfg.APIToken),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
