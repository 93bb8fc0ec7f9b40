package testhelper

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/interfaces"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/model"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/repository"
)

// TestAllJobs runs the conformance suite for any JobRepository implementation.
func TestAllJobs(t *testing.T, repo interfaces.JobRepository) {
	t.Run("JobCRUD", func(t *testing.T) { TestJobCRUD(t, repo) })
	t.Run("ClaimAndLease", func(t *testing.T) { TestClaimAndLease(t, repo) })
	t.Run("StallAndTimeout", func(t *testing.T) { TestStallAndTimeout(t, repo) })
	t.Run("Supersede", func(t *testing.T) { TestSupersede(t, repo) })
	t.Run("CacheLookup", func(t *testing.T) { TestCacheLookup(t, repo) })
}

// TestAllVulns runs the conformance suite for any VulnRepository implementation.
func TestAllVulns(t *testing.T, repo interfaces.VulnRepository) {
	t.Run("UpsertSemantics", func(t *testing.T) { TestUpsertSemantics(t, repo) })
	t.Run("InstanceIdempotence", func(t *testing.T) { TestInstanceIdempotence(t, repo) })
	t.Run("StatusUpdates", func(t *testing.T) { TestStatusUpdates(t, repo) })
}

func newTestJob(repoID types.RepoID, branch types.BranchName) *model.ScanJob {
	now := time.Now()
	return &model.ScanJob{
		ID:          types.NewScanJobID(),
		WorkspaceID: "ws-test",
		RepoID:      repoID,
		RepoName:    "example",
		Branch:      branch,
		CommitSHA:   types.CommitSHA(uuid.NewString()),
		Scanners:    []types.ScannerType{types.ScannerStatic, types.ScannerSecret},
		Status:      types.ScanJobPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestJobCRUD(t *testing.T, repo interfaces.JobRepository) {
	ctx := context.Background()
	job := newTestJob(types.RepoID(fmt.Sprintf("repo-%s", uuid.NewString()[:8])), "main")

	gt.NoError(t, repo.CreateJob(ctx, job))
	gt.Error(t, repo.CreateJob(ctx, job)) // duplicate ID

	got, err := repo.GetJob(ctx, job.ID)
	gt.NoError(t, err)
	gt.V(t, got.RepoID).Equal(job.RepoID)
	gt.V(t, got.Status).Equal(types.ScanJobPending)

	got.Status = types.ScanJobFailed
	got.Error = "boom"
	gt.NoError(t, repo.UpdateJob(ctx, got))

	got2, err := repo.GetJob(ctx, job.ID)
	gt.NoError(t, err)
	gt.V(t, got2.Status).Equal(types.ScanJobFailed)
	gt.V(t, got2.Error).Equal("boom")

	_, err = repo.GetJob(ctx, types.NewScanJobID())
	gt.True(t, repository.IsNotFound(err))
}

func TestClaimAndLease(t *testing.T, repo interfaces.JobRepository) {
	ctx := context.Background()
	repoID := types.RepoID(fmt.Sprintf("repo-%s", uuid.NewString()[:8]))

	first := newTestJob(repoID, "claim-a")
	first.CreatedAt = time.Now().Add(-time.Minute)
	second := newTestJob(repoID, "claim-b")
	gt.NoError(t, repo.CreateJob(ctx, first))
	gt.NoError(t, repo.CreateJob(ctx, second))

	lease := time.Now().Add(5 * time.Minute)
	claimed, err := repo.ClaimNextPending(ctx, lease)
	gt.NoError(t, err)
	gt.V(t, claimed.ID).Equal(first.ID) // oldest first
	gt.V(t, claimed.Status).Equal(types.ScanJobRunning)
	gt.V(t, claimed.Attempts).Equal(1)

	gt.NoError(t, repo.ExtendLease(ctx, claimed.ID, time.Now().Add(10*time.Minute)))

	claimed2, err := repo.ClaimNextPending(ctx, lease)
	gt.NoError(t, err)
	gt.V(t, claimed2.ID).Equal(second.ID)

	_, err = repo.ClaimNextPending(ctx, lease)
	gt.True(t, repository.IsNotFound(err))
}

func TestStallAndTimeout(t *testing.T, repo interfaces.JobRepository) {
	ctx := context.Background()
	job := newTestJob(types.RepoID(fmt.Sprintf("repo-%s", uuid.NewString()[:8])), "stall")
	gt.NoError(t, repo.CreateJob(ctx, job))

	claimed, err := repo.ClaimNextPending(ctx, time.Now().Add(-time.Second))
	gt.NoError(t, err)
	gt.V(t, claimed.ID).Equal(job.ID)

	stalled, err := repo.ListStalled(ctx, time.Now())
	gt.NoError(t, err)
	gt.True(t, len(stalled) > 0)

	expired, err := repo.ListTimedOut(ctx, time.Now().Add(time.Minute))
	gt.NoError(t, err)
	gt.True(t, len(expired) > 0)

	expired2, err := repo.ListTimedOut(ctx, time.Now().Add(-time.Hour))
	gt.NoError(t, err)
	for _, e := range expired2 {
		gt.V(t, e.ID).NotEqual(job.ID)
	}
}

func TestSupersede(t *testing.T, repo interfaces.JobRepository) {
	ctx := context.Background()
	repoID := types.RepoID(fmt.Sprintf("repo-%s", uuid.NewString()[:8]))

	old := newTestJob(repoID, "develop")
	newer := newTestJob(repoID, "develop")
	other := newTestJob(repoID, "main")
	gt.NoError(t, repo.CreateJob(ctx, old))
	gt.NoError(t, repo.CreateJob(ctx, newer))
	gt.NoError(t, repo.CreateJob(ctx, other))

	cancelled, err := repo.CancelActiveByBranch(ctx, repoID, "develop", newer.ID)
	gt.NoError(t, err)
	gt.V(t, len(cancelled)).Equal(1)
	gt.V(t, cancelled[0]).Equal(old.ID)

	got, err := repo.GetJob(ctx, old.ID)
	gt.NoError(t, err)
	gt.V(t, got.Status).Equal(types.ScanJobCancelled)

	kept, err := repo.GetJob(ctx, newer.ID)
	gt.NoError(t, err)
	gt.V(t, kept.Status).Equal(types.ScanJobPending)

	// A worker still holding a pre-cancellation snapshot cannot resurrect
	// the job: cancellation wins over its later full-document writes.
	stale := *old
	stale.Status = types.ScanJobCompleted
	stale.Stage = types.StageComplete
	gt.NoError(t, repo.UpdateJob(ctx, &stale))

	after, err := repo.GetJob(ctx, old.ID)
	gt.NoError(t, err)
	gt.V(t, after.Status).Equal(types.ScanJobCancelled)
}

func TestCacheLookup(t *testing.T, repo interfaces.JobRepository) {
	ctx := context.Background()
	repoID := types.RepoID(fmt.Sprintf("repo-%s", uuid.NewString()[:8]))

	job := newTestJob(repoID, "main")
	job.Status = types.ScanJobCompleted
	job.FinishedAt = time.Now()
	gt.NoError(t, repo.CreateJob(ctx, job))

	hit, err := repo.FindCompletedByCacheKey(ctx, job.CacheKey())
	gt.NoError(t, err)
	gt.V(t, hit.ID).Equal(job.ID)

	// Different scanner set misses.
	miss := model.CacheKey{
		RepoID:     repoID,
		CommitSHA:  job.CommitSHA,
		ScannerSet: model.ScannerSetFingerprint([]types.ScannerType{types.ScannerIaC}),
	}
	_, err = repo.FindCompletedByCacheKey(ctx, miss)
	gt.True(t, repository.IsNotFound(err))

	active := newTestJob(repoID, "main")
	gt.NoError(t, repo.CreateJob(ctx, active))
	found, err := repo.FindActiveByCommit(ctx, repoID, active.CommitSHA)
	gt.NoError(t, err)
	gt.V(t, found.ID).Equal(active.ID)
}

func newTestVuln(ws types.WorkspaceID, repoID types.RepoID) *model.UnifiedVulnerability {
	now := time.Now()
	return &model.UnifiedVulnerability{
		ID:              types.NewVulnID(),
		WorkspaceID:     ws,
		RepoID:          repoID,
		Branch:          "main",
		Fingerprint:     types.Fingerprint(uuid.NewString()),
		Scanner:         types.ScannerDependency,
		RuleID:          "GHSA-xxxx",
		Severity:        types.SeverityHigh,
		Title:           "vulnerable package",
		Status:          types.VulnStatusOpen,
		FirstDetectedAt: now,
		LastSeenAt:      now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func testPayload(t *testing.T) json.RawMessage {
	t.Helper()
	f := &model.RawFinding{
		Scanner:  types.ScannerDependency,
		RuleID:   "GHSA-xxxx",
		Severity: types.SeverityHigh,
		Title:    "vulnerable package",
		Dependency: &model.DependencyDetail{
			Ecosystem:        "npm",
			Package:          "left-pad",
			InstalledVersion: "1.0.0",
			AdvisoryID:       "GHSA-xxxx",
		},
	}
	raw, err := json.Marshal(f)
	gt.NoError(t, err)
	return raw
}

func TestUpsertSemantics(t *testing.T, repo interfaces.VulnRepository) {
	ctx := context.Background()
	ws := types.WorkspaceID(fmt.Sprintf("ws-%s", uuid.NewString()[:8]))

	v := newTestVuln(ws, "repo-1")
	stored, created, err := repo.UpsertVulnerability(ctx, v)
	gt.NoError(t, err)
	gt.True(t, created)
	gt.V(t, stored.Status).Equal(types.VulnStatusOpen)

	// Mark fixed, then re-detect: the record re-opens and keeps its identity.
	gt.NoError(t, repo.BatchUpdateStatus(ctx, ws, map[types.VulnID]types.VulnStatus{
		stored.ID: types.VulnStatusFixed,
	}))

	later := *v
	later.ID = types.NewVulnID()
	later.LastSeenAt = time.Now().Add(time.Minute)
	stored2, created2, err := repo.UpsertVulnerability(ctx, &later)
	gt.NoError(t, err)
	gt.False(t, created2)
	gt.V(t, stored2.ID).Equal(stored.ID)
	gt.V(t, stored2.Status).Equal(types.VulnStatusOpen)
	gt.True(t, stored2.LastSeenAt.After(stored.LastSeenAt))

	got, err := repo.GetVulnerability(ctx, ws, v.Fingerprint)
	gt.NoError(t, err)
	gt.V(t, got.ID).Equal(stored.ID)

	open, err := repo.ListOpenVulnerabilities(ctx, ws, "repo-1", "main")
	gt.NoError(t, err)
	gt.V(t, len(open)).Equal(1)
}

func TestInstanceIdempotence(t *testing.T, repo interfaces.VulnRepository) {
	ctx := context.Background()
	ws := types.WorkspaceID(fmt.Sprintf("ws-%s", uuid.NewString()[:8]))

	v := newTestVuln(ws, "repo-2")
	stored, _, err := repo.UpsertVulnerability(ctx, v)
	gt.NoError(t, err)

	jobID := types.NewScanJobID()
	inst := &model.VulnerabilityInstance{
		Key:       model.NewInstanceKey(jobID, v.Fingerprint, "npm/left-pad@1.0.0"),
		JobID:     jobID,
		VulnID:    stored.ID,
		Scanner:   types.ScannerDependency,
		RuleID:    "GHSA-xxxx",
		Severity:  types.SeverityHigh,
		Location:  "npm/left-pad@1.0.0",
		Payload:   testPayload(t),
		CreatedAt: time.Now(),
	}

	gt.NoError(t, repo.PutInstance(ctx, ws, inst))
	gt.NoError(t, repo.PutInstance(ctx, ws, inst)) // replay is a no-op

	count, err := repo.CountInstancesByJob(ctx, ws, jobID)
	gt.NoError(t, err)
	gt.V(t, count).Equal(1)

	instances, err := repo.ListInstancesByJob(ctx, ws, jobID)
	gt.NoError(t, err)
	gt.V(t, len(instances)).Equal(1)
	gt.V(t, instances[0].VulnID).Equal(stored.ID)
}

func TestStatusUpdates(t *testing.T, repo interfaces.VulnRepository) {
	ctx := context.Background()
	ws := types.WorkspaceID(fmt.Sprintf("ws-%s", uuid.NewString()[:8]))

	a := newTestVuln(ws, "repo-3")
	b := newTestVuln(ws, "repo-3")
	storedA, _, err := repo.UpsertVulnerability(ctx, a)
	gt.NoError(t, err)
	storedB, _, err := repo.UpsertVulnerability(ctx, b)
	gt.NoError(t, err)

	gt.NoError(t, repo.BatchUpdateStatus(ctx, ws, map[types.VulnID]types.VulnStatus{
		storedA.ID: types.VulnStatusFixed,
	}))

	open, err := repo.ListOpenVulnerabilities(ctx, ws, "repo-3", "main")
	gt.NoError(t, err)
	gt.V(t, len(open)).Equal(1)
	gt.V(t, open[0].ID).Equal(storedB.ID)

	ts := time.Now().Add(time.Hour)
	gt.NoError(t, repo.TouchLastSeen(ctx, ws, []types.VulnID{storedB.ID}, ts))
	vulns, err := repo.GetVulnerabilitiesByIDs(ctx, ws, []types.VulnID{storedB.ID})
	gt.NoError(t, err)
	gt.V(t, len(vulns)).Equal(1)
	gt.True(t, vulns[0].LastSeenAt.Equal(ts) || vulns[0].LastSeenAt.After(ts.Add(-time.Second)))
}
