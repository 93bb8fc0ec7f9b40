package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/interfaces"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/model"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/infra"
)

// Config tunes the worker pool and supervision timers. Zero values fall back
// to the defaults below.
type Config struct {
	// WorkerCount is the number of concurrent pipeline executions.
	WorkerCount int

	// LeaseDuration must exceed any single pipeline phase. Workers renew the
	// lease at a third of this interval.
	LeaseDuration time.Duration

	// ScanTimeout is the wall-clock limit of one job execution, independent
	// of lease health.
	ScanTimeout time.Duration

	// MaxAttempts bounds how often a stalled or transiently failing job is
	// re-run before it fails for good.
	MaxAttempts int

	// PollInterval is the idle wait between queue polls.
	PollInterval time.Duration

	// SupervisorInterval is the cadence of the stall detector and the
	// wall-clock watchdog.
	SupervisorInterval time.Duration
}

func (x Config) withDefaults() Config {
	if x.WorkerCount <= 0 {
		x.WorkerCount = 3
	}
	if x.LeaseDuration <= 0 {
		x.LeaseDuration = 5 * time.Minute
	}
	if x.ScanTimeout <= 0 {
		x.ScanTimeout = 30 * time.Minute
	}
	if x.MaxAttempts <= 0 {
		x.MaxAttempts = 3
	}
	if x.PollInterval <= 0 {
		x.PollInterval = 2 * time.Second
	}
	if x.SupervisorInterval <= 0 {
		x.SupervisorInterval = 30 * time.Second
	}
	return x
}

type UseCase struct {
	clients        *infra.Clients
	config         Config
	fingerprinters model.FingerprinterSet

	pool *workerPool
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

func WithConfig(cfg Config) Option {
	return func(x *UseCase) {
		x.config = cfg
	}
}

// WithFingerprinters replaces the per-scanner-class identity strategies.
func WithFingerprinters(set model.FingerprinterSet) Option {
	return func(x *UseCase) {
		x.fingerprinters = set
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:        clients,
		fingerprinters: model.DefaultFingerprinters(),
	}
	for _, opt := range options {
		opt(uc)
	}
	uc.config = uc.config.withDefaults()
	uc.pool = newWorkerPool(uc)

	return uc
}

func (x *UseCase) GetJob(ctx context.Context, id types.ScanJobID) (*model.ScanJob, error) {
	if id == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "job ID is empty")
	}
	return x.clients.JobRepository().GetJob(ctx, id)
}
