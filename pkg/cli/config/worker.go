package config

import (
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/usecase"
)

// Worker tunes the job worker pool and its supervisor.
type Worker struct {
	workerCount   int64
	leaseDuration time.Duration
	scanTimeout   time.Duration
	maxAttempts   int64
	pollInterval  time.Duration
}

func (x *Worker) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "worker-count",
			Usage:       "Number of concurrent scan workers",
			Category:    "Worker",
			Sources:     cli.EnvVars("SENTINEL_WORKER_COUNT"),
			Value:       3,
			Destination: &x.workerCount,
		},
		&cli.DurationFlag{
			Name:        "lease-duration",
			Usage:       "Execution lease duration for claimed jobs",
			Category:    "Worker",
			Sources:     cli.EnvVars("SENTINEL_LEASE_DURATION"),
			Value:       5 * time.Minute,
			Destination: &x.leaseDuration,
		},
		&cli.DurationFlag{
			Name:        "scan-timeout",
			Usage:       "Wall-clock limit of one scan job",
			Category:    "Worker",
			Sources:     cli.EnvVars("SENTINEL_SCAN_TIMEOUT"),
			Value:       30 * time.Minute,
			Destination: &x.scanTimeout,
		},
		&cli.Int64Flag{
			Name:        "max-attempts",
			Usage:       "Maximum execution attempts per job",
			Category:    "Worker",
			Sources:     cli.EnvVars("SENTINEL_MAX_ATTEMPTS"),
			Value:       3,
			Destination: &x.maxAttempts,
		},
		&cli.DurationFlag{
			Name:        "poll-interval",
			Usage:       "Idle wait between queue polls",
			Category:    "Worker",
			Sources:     cli.EnvVars("SENTINEL_POLL_INTERVAL"),
			Value:       2 * time.Second,
			Destination: &x.pollInterval,
		},
	}
}

func (x *Worker) Config() usecase.Config {
	return usecase.Config{
		WorkerCount:   int(x.workerCount),
		LeaseDuration: x.leaseDuration,
		ScanTimeout:   x.scanTimeout,
		MaxAttempts:   int(x.maxAttempts),
		PollInterval:  x.pollInterval,
	}
}

func (x *Worker) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("workerCount", x.workerCount),
		slog.Duration("leaseDuration", x.leaseDuration),
		slog.Duration("scanTimeout", x.scanTimeout),
		slog.Int64("maxAttempts", x.maxAttempts),
		slog.Duration("pollInterval", x.pollInterval),
	)
}
