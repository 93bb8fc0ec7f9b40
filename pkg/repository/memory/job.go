package memory

import (
	"context"
	"sort"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/model"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/repository"
)

func (r *JobRepository) CreateJob(ctx context.Context, job *model.ScanJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.jobs[job.ID]; exists {
		return goerr.Wrap(repository.ErrAlreadyExists, "job already exists", goerr.V("jobID", job.ID))
	}
	r.jobs[job.ID] = copyJob(job)

	return nil
}

func (r *JobRepository) GetJob(ctx context.Context, id types.ScanJobID) (*model.ScanJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, exists := r.jobs[id]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "job not found", goerr.V("jobID", id))
	}

	return copyJob(job), nil
}

func (r *JobRepository) UpdateJob(ctx context.Context, job *model.ScanJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.jobs[job.ID]
	if !exists {
		return goerr.Wrap(repository.ErrNotFound, "job not found", goerr.V("jobID", job.ID))
	}
	// Cancellation wins: a superseded job stays cancelled even when its
	// worker, still holding a pre-cancellation snapshot, writes stage or
	// completion updates afterwards.
	if current.Status == types.ScanJobCancelled && job.Status != types.ScanJobCancelled {
		return nil
	}
	r.jobs[job.ID] = copyJob(job)

	return nil
}

func (r *JobRepository) ClaimNextPending(ctx context.Context, leaseUntil time.Time) (*model.ScanJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var pending []*model.ScanJob
	for _, job := range r.jobs {
		if job.Status == types.ScanJobPending {
			pending = append(pending, job)
		}
	}
	if len(pending) == 0 {
		return nil, goerr.Wrap(repository.ErrNotFound, "no pending job")
	}

	sort.Slice(pending, func(i, j int) bool {
		return pending[i].CreatedAt.Before(pending[j].CreatedAt)
	})

	job := pending[0]
	job.Status = types.ScanJobRunning
	job.LeaseExpiresAt = leaseUntil
	job.StartedAt = time.Now()
	job.Attempts++
	job.UpdatedAt = time.Now()

	return copyJob(job), nil
}

func (r *JobRepository) ExtendLease(ctx context.Context, id types.ScanJobID, until time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, exists := r.jobs[id]
	if !exists {
		return goerr.Wrap(repository.ErrNotFound, "job not found", goerr.V("jobID", id))
	}
	if job.Status != types.ScanJobRunning {
		return goerr.Wrap(repository.ErrInvalidInput, "job is not running",
			goerr.V("jobID", id),
			goerr.V("status", job.Status),
		)
	}
	job.LeaseExpiresAt = until
	job.UpdatedAt = time.Now()

	return nil
}

func (r *JobRepository) ListStalled(ctx context.Context, now time.Time) ([]*model.ScanJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var stalled []*model.ScanJob
	for _, job := range r.jobs {
		if job.Status == types.ScanJobRunning && job.LeaseExpiresAt.Before(now) {
			stalled = append(stalled, copyJob(job))
		}
	}

	return stalled, nil
}

func (r *JobRepository) ListTimedOut(ctx context.Context, startedBefore time.Time) ([]*model.ScanJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var expired []*model.ScanJob
	for _, job := range r.jobs {
		if job.Status == types.ScanJobRunning && !job.StartedAt.IsZero() && job.StartedAt.Before(startedBefore) {
			expired = append(expired, copyJob(job))
		}
	}

	return expired, nil
}

func (r *JobRepository) CancelActiveByBranch(ctx context.Context, repoID types.RepoID, branch types.BranchName, exceptID types.ScanJobID) ([]types.ScanJobID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var cancelled []types.ScanJobID
	for _, job := range r.jobs {
		if job.ID == exceptID || job.RepoID != repoID || job.Branch != branch {
			continue
		}
		if job.Status != types.ScanJobPending && job.Status != types.ScanJobRunning {
			continue
		}
		job.Status = types.ScanJobCancelled
		job.FinishedAt = time.Now()
		job.UpdatedAt = time.Now()
		cancelled = append(cancelled, job.ID)
	}

	return cancelled, nil
}

func (r *JobRepository) FindCompletedByCacheKey(ctx context.Context, key model.CacheKey) (*model.ScanJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var latest *model.ScanJob
	for _, job := range r.jobs {
		if job.Status != types.ScanJobCompleted {
			continue
		}
		if job.CacheKey() != key {
			continue
		}
		if latest == nil || job.FinishedAt.After(latest.FinishedAt) {
			latest = job
		}
	}
	if latest == nil {
		return nil, goerr.Wrap(repository.ErrNotFound, "no completed job for cache key",
			goerr.V("repoID", key.RepoID),
			goerr.V("commit", key.CommitSHA),
		)
	}

	return copyJob(latest), nil
}

func (r *JobRepository) FindActiveByCommit(ctx context.Context, repoID types.RepoID, commit types.CommitSHA) (*model.ScanJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, job := range r.jobs {
		if job.RepoID != repoID || job.CommitSHA != commit {
			continue
		}
		if job.Status == types.ScanJobPending || job.Status == types.ScanJobRunning {
			return copyJob(job), nil
		}
	}

	return nil, goerr.Wrap(repository.ErrNotFound, "no active job for commit",
		goerr.V("repoID", repoID),
		goerr.V("commit", commit),
	)
}

func copyJob(job *model.ScanJob) *model.ScanJob {
	if job == nil {
		return nil
	}
	cpy := *job
	if job.Scanners != nil {
		cpy.Scanners = make([]types.ScannerType, len(job.Scanners))
		copy(cpy.Scanners, job.Scanners)
	}
	return &cpy
}
