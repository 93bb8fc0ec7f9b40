package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/cli/config"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/controller/server"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/infra"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/repository/memory"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/usecase"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/utils/logging"
)

func serveCommand() *cli.Command {
	var (
		addr      string
		workspace string

		githubApp config.GitHubApp
		firestore config.Firestore
		bigQuery  config.BigQuery
		sentry    config.Sentry
		scanners  config.Scanner
		worker    config.Worker
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("SENTINEL_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "workspace",
			Usage:       "Workspace that webhook-triggered scans are filed under",
			Value:       "default",
			Sources:     cli.EnvVars("SENTINEL_WORKSPACE"),
			Destination: &workspace,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode: accept scan requests and GitHub App webhooks, run the worker pool",
		Flags: slice.Flatten(
			serveFlags,
			githubApp.Flags(),
			firestore.Flags(),
			bigQuery.Flags(),
			sentry.Flags(),
			scanners.Flags(),
			worker.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("Workspace", workspace),
				slog.Any("GitHubApp", githubApp),
				slog.Any("Firestore", firestore),
				slog.Any("BigQuery", bigQuery),
				slog.Any("Sentry", sentry),
				slog.Any("Scanner", scanners),
				slog.Any("Worker", worker),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			ghApp, err := githubApp.New()
			if err != nil {
				return err
			}

			scannerSet, err := scanners.NewScanners()
			if err != nil {
				return err
			}
			scannerTypes, err := scanners.Types()
			if err != nil {
				return err
			}

			infraOptions := []infra.Option{
				infra.WithSourceFetcher(ghApp),
				infra.WithScanners(scannerSet...),
			}

			if firestore.Enabled() {
				jobRepo, vulnRepo, err := firestore.NewRepositories(ctx)
				if err != nil {
					return err
				}
				infraOptions = append(infraOptions,
					infra.WithJobRepository(jobRepo),
					infra.WithVulnRepository(vulnRepo),
				)
			} else {
				logging.Default().Warn("Firestore is not configured, using in-memory repositories")
				infraOptions = append(infraOptions,
					infra.WithJobRepository(memory.NewJobRepository()),
					infra.WithVulnRepository(memory.NewVulnRepository()),
				)
			}

			if bqClient, err := bigQuery.NewClient(ctx); err != nil {
				return err
			} else if bqClient != nil {
				infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
			}

			clients := infra.New(infraOptions...)

			uc := usecase.New(clients, usecase.WithConfig(worker.Config()))
			if err := uc.StartWorkers(ctx); err != nil {
				return err
			}
			defer uc.Stop()

			s := server.New(uc,
				server.WithGitHubSecret(githubApp.Secret()),
				server.WithWorkspace(types.WorkspaceID(workspace)),
				server.WithWebhookScanners(scannerTypes),
			)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
