package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/m-mizutani/goerr/v2"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/model"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/repository"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/utils/errutil"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/utils/logging"
)

// workerPool runs the bounded set of pipeline workers plus one supervisor
// goroutine handling stalled-job recovery and the wall-clock watchdog.
type workerPool struct {
	uc *UseCase

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	started bool
}

func newWorkerPool(uc *UseCase) *workerPool {
	return &workerPool{uc: uc}
}

// StartWorkers launches the worker pool. It returns immediately; Stop blocks
// until all in-flight jobs settle.
func (x *UseCase) StartWorkers(ctx context.Context) error {
	return x.pool.start(ctx)
}

func (x *UseCase) Stop() {
	x.pool.stop()
}

func (p *workerPool) start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return goerr.Wrap(types.ErrInvalidOption, "worker pool already started")
	}
	p.started = true

	poolCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	for i := 0; i < p.uc.config.WorkerCount; i++ {
		p.wg.Add(1)
		go func(n int) {
			defer p.wg.Done()
			p.workerLoop(poolCtx, n)
		}(i)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.supervisorLoop(poolCtx)
	}()

	logging.From(ctx).Info("worker pool started",
		slog.Int("workers", p.uc.config.WorkerCount),
		slog.Duration("lease", p.uc.config.LeaseDuration),
		slog.Duration("timeout", p.uc.config.ScanTimeout),
	)

	return nil
}

func (p *workerPool) stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

func (p *workerPool) workerLoop(ctx context.Context, n int) {
	logger := logging.From(ctx).With(slog.Int("worker", n))

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		job, err := p.uc.clients.JobRepository().ClaimNextPending(ctx, time.Now().Add(p.uc.config.LeaseDuration))
		if err != nil {
			if !errors.Is(err, repository.ErrNotFound) && ctx.Err() == nil {
				logger.Warn("failed to claim job", slog.Any("error", err))
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(p.uc.config.PollInterval):
			}
			continue
		}

		p.uc.runClaimedJob(logging.With(ctx, logger), job)
	}
}

// ProcessOne claims and executes a single pending job synchronously. It backs
// the one-shot CLI scan and returns repository.ErrNotFound when the queue is
// empty.
func (x *UseCase) ProcessOne(ctx context.Context) (*model.ScanJob, error) {
	job, err := x.clients.JobRepository().ClaimNextPending(ctx, time.Now().Add(x.config.LeaseDuration))
	if err != nil {
		return nil, err
	}

	x.runClaimedJob(ctx, job)

	return x.clients.JobRepository().GetJob(ctx, job.ID)
}

// runClaimedJob executes one claimed job to a terminal state: it owns lease
// renewal, the wall-clock deadline, transient-error retry and the final
// success or failure transition.
func (x *UseCase) runClaimedJob(ctx context.Context, job *model.ScanJob) {
	logger := logging.From(ctx).With(slog.Any("jobID", job.ID), slog.Any("repoID", job.RepoID))
	ctx = logging.With(ctx, logger)

	jobCtx, cancel := context.WithTimeout(ctx, x.config.ScanTimeout)
	defer cancel()

	stopRenewal := x.startLeaseRenewal(jobCtx, job.ID)
	defer stopRenewal()

	// Transient infra errors are retried with bounded exponential backoff.
	// Domain failures are permanent: retrying a unification error could
	// duplicate non-idempotent side effects.
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(x.config.MaxAttempts-1)), jobCtx)
	err := backoff.Retry(func() error {
		execErr := x.executeJob(jobCtx, job)
		if execErr == nil {
			return nil
		}
		if types.IsTransient(execErr) {
			logger.Warn("transient pipeline error, retrying", slog.Any("error", execErr))
			return execErr
		}
		return backoff.Permanent(execErr)
	}, policy)

	if err == nil {
		return
	}

	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		err = permanent.Err
	}
	if jobCtx.Err() == context.DeadlineExceeded {
		err = goerr.Wrap(types.ErrJobTimeout, "scan exceeded wall-clock limit",
			goerr.V("timeout", x.config.ScanTimeout),
		)
	} else if ctx.Err() != nil {
		// Pool shutdown, not a job failure. Leave the job running so its
		// lease expires and the stall detector requeues it, the same recovery
		// path a crashed worker gets.
		logger.Info("shutdown interrupted job, leaving it for lease recovery", slog.Any("jobID", job.ID))
		return
	}

	// The job context may already be dead; the terminal write must not be.
	x.failJob(context.WithoutCancel(ctx), job, err)
}

func (x *UseCase) startLeaseRenewal(ctx context.Context, id types.ScanJobID) func() {
	done := make(chan struct{})
	var once sync.Once
	stop := func() { once.Do(func() { close(done) }) }

	interval := x.config.LeaseDuration / 3
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-done:
				return
			case <-ticker.C:
				if err := x.clients.JobRepository().ExtendLease(ctx, id, time.Now().Add(x.config.LeaseDuration)); err != nil {
					logging.From(ctx).Warn("failed to extend lease", slog.Any("jobID", id), slog.Any("error", err))
				}
			}
		}
	}()

	return stop
}

// supervisorLoop periodically reclaims stalled jobs and force-fails jobs past
// the wall-clock limit, so no job is ever left running indefinitely.
func (p *workerPool) supervisorLoop(ctx context.Context) {
	ticker := time.NewTicker(p.uc.config.SupervisorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.uc.superviseOnce(ctx)
		}
	}
}

func (x *UseCase) superviseOnce(ctx context.Context) {
	now := time.Now()
	logger := logging.From(ctx)
	jobs := x.clients.JobRepository()

	timedOut, err := jobs.ListTimedOut(ctx, now.Add(-x.config.ScanTimeout))
	if err != nil {
		logger.Warn("watchdog query failed", slog.Any("error", err))
	}
	for _, job := range timedOut {
		logger.Error("job exceeded wall-clock limit, force-failing", slog.Any("jobID", job.ID))
		x.failJob(ctx, job, goerr.Wrap(types.ErrJobTimeout, "scan exceeded wall-clock limit",
			goerr.V("startedAt", job.StartedAt),
			goerr.V("timeout", x.config.ScanTimeout),
		))
	}

	stalled, err := jobs.ListStalled(ctx, now)
	if err != nil {
		logger.Warn("stall detector query failed", slog.Any("error", err))
		return
	}
	for _, job := range stalled {
		if isAlreadyHandled(timedOut, job.ID) {
			continue
		}
		if job.Attempts >= x.config.MaxAttempts {
			x.failJob(ctx, job, goerr.Wrap(types.ErrJobStalled, "lease expired and retry budget exhausted",
				goerr.V("attempts", job.Attempts),
			))
			continue
		}

		// Requeue: the claim on retry bumps Attempts again.
		job.Status = types.ScanJobPending
		job.Stage = ""
		job.Progress = 0
		job.LeaseExpiresAt = time.Time{}
		job.UpdatedAt = now
		if err := jobs.UpdateJob(ctx, job); err != nil {
			logger.Warn("failed to requeue stalled job", slog.Any("jobID", job.ID), slog.Any("error", err))
			continue
		}
		logger.Info("requeued stalled job", slog.Any("jobID", job.ID), slog.Int("attempts", job.Attempts))
	}
}

func isAlreadyHandled(handled []*model.ScanJob, id types.ScanJobID) bool {
	for _, job := range handled {
		if job.ID == id {
			return true
		}
	}
	return false
}

// failJob drives a job to the failed terminal state and runs the completion
// hook. The failure reason taxonomy is derived from the error type.
func (x *UseCase) failJob(ctx context.Context, job *model.ScanJob, cause error) {
	now := logging.CtxTime(ctx)

	job.Status = types.ScanJobFailed
	job.Stage = types.StageFailed
	job.Progress = model.StagePercent(types.StageFailed)
	job.FinishedAt = now
	job.Error = failureReason(cause)
	job.UpdatedAt = now

	// An empty repository is "nothing to scan", not "something broke": zero
	// counts and zero duration distinguish it in the stored record.
	if errors.Is(cause, types.ErrEmptyRepository) {
		job.Duration = 0
		job.Counts = model.SeverityCounts{}
	} else if !job.StartedAt.IsZero() {
		job.Duration = now.Sub(job.StartedAt)
	}

	if err := x.clients.JobRepository().UpdateJob(ctx, job); err != nil {
		logging.From(ctx).Error("failed to store job failure",
			slog.Any("jobID", job.ID),
			slog.Any("error", err),
		)
	}

	errutil.HandleError(ctx, "scan job failed", cause)
	x.finishJob(ctx, job, nil)
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, types.ErrJobTimeout):
		return "timeout: scan exceeded the wall-clock limit"
	case errors.Is(err, types.ErrJobStalled):
		return "stalled: execution lease expired without completion"
	case errors.Is(err, types.ErrAuthExpired):
		return "fetch failed: source host credentials expired"
	case errors.Is(err, types.ErrBranchNotFound):
		return "fetch failed: branch not found"
	case errors.Is(err, types.ErrEmptyRepository):
		return "nothing to scan: repository has no content"
	case errors.Is(err, types.ErrUnificationFailed):
		return "unification failed: " + err.Error()
	default:
		return err.Error()
	}
}
