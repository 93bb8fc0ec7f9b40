package interfaces

import (
	"context"
	"time"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/model"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
)

//go:generate moq -out ../mock/job_repository_mock.go -pkg mock . JobRepository

// JobRepository is the durable job queue and job record store. Delivery is
// at-least-once: ClaimNextPending hands a job to exactly one worker via an
// atomic claim, but a reclaimed stalled job may be processed again, so the
// pipeline stays idempotent.
type JobRepository interface {
	CreateJob(ctx context.Context, job *model.ScanJob) error
	GetJob(ctx context.Context, id types.ScanJobID) (*model.ScanJob, error)
	UpdateJob(ctx context.Context, job *model.ScanJob) error

	// ClaimNextPending atomically claims the oldest pending job: it marks the
	// job running and sets its lease in one conditional write. Returns
	// repository.ErrNotFound when the queue is empty.
	ClaimNextPending(ctx context.Context, leaseUntil time.Time) (*model.ScanJob, error)

	// ExtendLease renews the lease of a running job.
	ExtendLease(ctx context.Context, id types.ScanJobID, until time.Time) error

	// ListStalled returns running jobs whose lease expired before now.
	ListStalled(ctx context.Context, now time.Time) ([]*model.ScanJob, error)

	// ListTimedOut returns running jobs that started before the deadline,
	// regardless of lease health.
	ListTimedOut(ctx context.Context, startedBefore time.Time) ([]*model.ScanJob, error)

	// CancelActiveByBranch transitions pending and running jobs for the
	// repository+branch to cancelled, excluding exceptID. Returns the IDs of
	// cancelled jobs.
	CancelActiveByBranch(ctx context.Context, repoID types.RepoID, branch types.BranchName, exceptID types.ScanJobID) ([]types.ScanJobID, error)

	// FindCompletedByCacheKey returns the most recent completed job with an
	// identical (repository, commit, scanner set) tuple, or
	// repository.ErrNotFound.
	FindCompletedByCacheKey(ctx context.Context, key model.CacheKey) (*model.ScanJob, error)

	// FindActiveByCommit returns a pending or running job already covering
	// the commit, used for duplicate-trigger suppression.
	FindActiveByCommit(ctx context.Context, repoID types.RepoID, commit types.CommitSHA) (*model.ScanJob, error)
}

//go:generate moq -out ../mock/vuln_repository_mock.go -pkg mock . VulnRepository

// VulnRepository stores unified vulnerabilities and their per-scan instances.
// The store is shared across concurrently running jobs of one workspace.
type VulnRepository interface {
	// UpsertVulnerability is an atomic conditional write keyed by
	// (workspace, fingerprint): it creates the record if absent, otherwise
	// merges the detection into the existing one (refresh LastSeenAt, re-open
	// fixed records, carry severity/title forward, advance the full-scan
	// markers when the incoming record sets them). It returns the stored
	// record and whether it was created.
	UpsertVulnerability(ctx context.Context, v *model.UnifiedVulnerability) (*model.UnifiedVulnerability, bool, error)

	GetVulnerability(ctx context.Context, ws types.WorkspaceID, fp types.Fingerprint) (*model.UnifiedVulnerability, error)
	GetVulnerabilitiesByIDs(ctx context.Context, ws types.WorkspaceID, ids []types.VulnID) ([]*model.UnifiedVulnerability, error)
	ListOpenVulnerabilities(ctx context.Context, ws types.WorkspaceID, repoID types.RepoID, branch types.BranchName) ([]*model.UnifiedVulnerability, error)
	BatchUpdateStatus(ctx context.Context, ws types.WorkspaceID, updates map[types.VulnID]types.VulnStatus) error

	// TouchLastSeen refreshes LastSeenAt without touching full-scan markers.
	// Used by cache clones.
	TouchLastSeen(ctx context.Context, ws types.WorkspaceID, ids []types.VulnID, t time.Time) error

	// PutInstance upserts an instance by its key. Re-running the same put is
	// a no-op, which makes retries and cache clones idempotent.
	PutInstance(ctx context.Context, ws types.WorkspaceID, inst *model.VulnerabilityInstance) error
	ListInstancesByJob(ctx context.Context, ws types.WorkspaceID, jobID types.ScanJobID) ([]*model.VulnerabilityInstance, error)
	CountInstancesByJob(ctx context.Context, ws types.WorkspaceID, jobID types.ScanJobID) (int, error)
}
