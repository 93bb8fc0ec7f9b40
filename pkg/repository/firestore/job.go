package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/model"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/repository"
)

func (r *JobRepository) jobDoc(id types.ScanJobID) *firestore.DocumentRef {
	return r.client.Collection(collectionJob).Doc(id.String())
}

func (r *JobRepository) CreateJob(ctx context.Context, job *model.ScanJob) error {
	if _, err := r.jobDoc(job.ID).Create(ctx, job); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return goerr.Wrap(repository.ErrAlreadyExists, "job already exists", goerr.V("jobID", job.ID))
		}
		return goerr.Wrap(err, "failed to create job", goerr.V("jobID", job.ID))
	}
	return nil
}

func (r *JobRepository) GetJob(ctx context.Context, id types.ScanJobID) (*model.ScanJob, error) {
	snap, err := r.jobDoc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "job not found", goerr.V("jobID", id))
		}
		return nil, goerr.Wrap(err, "failed to get job", goerr.V("jobID", id))
	}

	var job model.ScanJob
	if err := snap.DataTo(&job); err != nil {
		return nil, goerr.Wrap(err, "failed to decode job", goerr.V("jobID", id))
	}

	return &job, nil
}

// UpdateJob writes the full job document. Cancellation wins: a superseded job
// stays cancelled even when its worker, still holding a pre-cancellation
// snapshot, writes stage or completion updates afterwards.
func (r *JobRepository) UpdateJob(ctx context.Context, job *model.ScanJob) error {
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(r.jobDoc(job.ID))
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return goerr.Wrap(repository.ErrNotFound, "job not found", goerr.V("jobID", job.ID))
			}
			return goerr.Wrap(err, "failed to read job for update", goerr.V("jobID", job.ID))
		}

		var current model.ScanJob
		if err := snap.DataTo(&current); err != nil {
			return goerr.Wrap(err, "failed to decode job", goerr.V("jobID", job.ID))
		}
		if current.Status == types.ScanJobCancelled && job.Status != types.ScanJobCancelled {
			return nil
		}

		return tx.Set(r.jobDoc(job.ID), job)
	})
	if err != nil {
		return goerr.Wrap(err, "failed to update job", goerr.V("jobID", job.ID))
	}
	return nil
}

// ClaimNextPending claims the oldest pending job inside a transaction: the
// re-read guards against another worker having claimed it between the query
// and the write.
func (r *JobRepository) ClaimNextPending(ctx context.Context, leaseUntil time.Time) (*model.ScanJob, error) {
	var claimed *model.ScanJob

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		query := r.client.Collection(collectionJob).
			Where("Status", "==", types.ScanJobPending.String()).
			OrderBy("CreatedAt", firestore.Asc).
			Limit(1)

		iter := tx.Documents(query)
		defer iter.Stop()

		snap, err := iter.Next()
		if err == iterator.Done {
			return goerr.Wrap(repository.ErrNotFound, "no pending job")
		}
		if err != nil {
			return goerr.Wrap(err, "failed to query pending jobs")
		}

		var job model.ScanJob
		if err := snap.DataTo(&job); err != nil {
			return goerr.Wrap(err, "failed to decode job")
		}
		if job.Status != types.ScanJobPending {
			return goerr.Wrap(repository.ErrNotFound, "job claimed concurrently")
		}

		now := time.Now()
		job.Status = types.ScanJobRunning
		job.LeaseExpiresAt = leaseUntil
		job.StartedAt = now
		job.Attempts++
		job.UpdatedAt = now

		if err := tx.Set(snap.Ref, &job); err != nil {
			return goerr.Wrap(err, "failed to claim job", goerr.V("jobID", job.ID))
		}
		claimed = &job

		return nil
	})
	if err != nil {
		return nil, err
	}

	return claimed, nil
}

func (r *JobRepository) ExtendLease(ctx context.Context, id types.ScanJobID, until time.Time) error {
	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(r.jobDoc(id))
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return goerr.Wrap(repository.ErrNotFound, "job not found", goerr.V("jobID", id))
			}
			return goerr.Wrap(err, "failed to get job", goerr.V("jobID", id))
		}

		var job model.ScanJob
		if err := snap.DataTo(&job); err != nil {
			return goerr.Wrap(err, "failed to decode job", goerr.V("jobID", id))
		}
		if job.Status != types.ScanJobRunning {
			return goerr.Wrap(repository.ErrInvalidInput, "job is not running",
				goerr.V("jobID", id),
				goerr.V("status", job.Status),
			)
		}

		return tx.Update(snap.Ref, []firestore.Update{
			{Path: "LeaseExpiresAt", Value: until},
			{Path: "UpdatedAt", Value: time.Now()},
		})
	})
}

func (r *JobRepository) listRunning(ctx context.Context, filter func(*model.ScanJob) bool) ([]*model.ScanJob, error) {
	query := r.client.Collection(collectionJob).
		Where("Status", "==", types.ScanJobRunning.String())

	iter := query.Documents(ctx)
	defer iter.Stop()

	var jobs []*model.ScanJob
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate running jobs")
		}

		var job model.ScanJob
		if err := snap.DataTo(&job); err != nil {
			return nil, goerr.Wrap(err, "failed to decode job")
		}
		if filter(&job) {
			jobs = append(jobs, &job)
		}
	}

	return jobs, nil
}

func (r *JobRepository) ListStalled(ctx context.Context, now time.Time) ([]*model.ScanJob, error) {
	return r.listRunning(ctx, func(job *model.ScanJob) bool {
		return job.LeaseExpiresAt.Before(now)
	})
}

func (r *JobRepository) ListTimedOut(ctx context.Context, startedBefore time.Time) ([]*model.ScanJob, error) {
	return r.listRunning(ctx, func(job *model.ScanJob) bool {
		return !job.StartedAt.IsZero() && job.StartedAt.Before(startedBefore)
	})
}

func (r *JobRepository) CancelActiveByBranch(ctx context.Context, repoID types.RepoID, branch types.BranchName, exceptID types.ScanJobID) ([]types.ScanJobID, error) {
	query := r.client.Collection(collectionJob).
		Where("RepoID", "==", repoID.String()).
		Where("Branch", "==", branch.String()).
		Where("Status", "in", []string{
			types.ScanJobPending.String(),
			types.ScanJobRunning.String(),
		})

	iter := query.Documents(ctx)
	defer iter.Stop()

	var cancelled []types.ScanJobID
	now := time.Now()
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate active jobs",
				goerr.V("repoID", repoID),
				goerr.V("branch", branch),
			)
		}

		var job model.ScanJob
		if err := snap.DataTo(&job); err != nil {
			return nil, goerr.Wrap(err, "failed to decode job")
		}
		if job.ID == exceptID {
			continue
		}

		if _, err := snap.Ref.Update(ctx, []firestore.Update{
			{Path: "Status", Value: types.ScanJobCancelled.String()},
			{Path: "FinishedAt", Value: now},
			{Path: "UpdatedAt", Value: now},
		}); err != nil {
			return nil, goerr.Wrap(err, "failed to cancel job", goerr.V("jobID", job.ID))
		}
		cancelled = append(cancelled, job.ID)
	}

	return cancelled, nil
}

func (r *JobRepository) FindCompletedByCacheKey(ctx context.Context, key model.CacheKey) (*model.ScanJob, error) {
	query := r.client.Collection(collectionJob).
		Where("RepoID", "==", key.RepoID.String()).
		Where("CommitSHA", "==", key.CommitSHA.String()).
		Where("Status", "==", types.ScanJobCompleted.String()).
		OrderBy("FinishedAt", firestore.Desc)

	iter := query.Documents(ctx)
	defer iter.Stop()

	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate completed jobs")
		}

		var job model.ScanJob
		if err := snap.DataTo(&job); err != nil {
			return nil, goerr.Wrap(err, "failed to decode job")
		}
		// The scanner-set fingerprint is derived, not stored; filter here.
		if job.CacheKey() == key {
			return &job, nil
		}
	}

	return nil, goerr.Wrap(repository.ErrNotFound, "no completed job for cache key",
		goerr.V("repoID", key.RepoID),
		goerr.V("commit", key.CommitSHA),
	)
}

func (r *JobRepository) FindActiveByCommit(ctx context.Context, repoID types.RepoID, commit types.CommitSHA) (*model.ScanJob, error) {
	query := r.client.Collection(collectionJob).
		Where("RepoID", "==", repoID.String()).
		Where("CommitSHA", "==", commit.String()).
		Where("Status", "in", []string{
			types.ScanJobPending.String(),
			types.ScanJobRunning.String(),
		}).
		Limit(1)

	iter := query.Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, goerr.Wrap(repository.ErrNotFound, "no active job for commit",
			goerr.V("repoID", repoID),
			goerr.V("commit", commit),
		)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query active jobs")
	}

	var job model.ScanJob
	if err := snap.DataTo(&job); err != nil {
		return nil, goerr.Wrap(err, "failed to decode job")
	}

	return &job, nil
}
