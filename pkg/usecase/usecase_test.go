package usecase_test

import (
	"context"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/interfaces"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/mock"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/model"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/infra"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/repository/memory"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/usecase"
)

const (
	testWorkspace = types.WorkspaceID("ws-test")
	testRepoID    = types.RepoID("sentinel-org/demo")
	testCommitA   = types.CommitSHA("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	testCommitB   = types.CommitSHA("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
	testCommitC   = types.CommitSHA("cccccccccccccccccccccccccccccccccccccccc")
)

type testEnv struct {
	uc      *usecase.UseCase
	jobs    *memory.JobRepository
	vulns   *memory.VulnRepository
	fetcher *mock.SourceFetcherMock
	bq      *mock.BigQueryMock
}

func newTestEnv(t *testing.T, scanners ...interfaces.Scanner) *testEnv {
	t.Helper()

	jobs := memory.NewJobRepository()
	vulns := memory.NewVulnRepository()

	fetcher := &mock.SourceFetcherMock{
		ResolveCommitFunc: func(ctx context.Context, repo *model.GitHubRepo, branch types.BranchName, installID types.GitHubAppInstallID) (types.CommitSHA, error) {
			return testCommitA, nil
		},
		FetchFunc: func(ctx context.Context, input *interfaces.FetchInput) (*interfaces.Workspace, error) {
			dir, err := os.MkdirTemp("", "sentinel_test.*")
			gt.NoError(t, err)
			return &interfaces.Workspace{
				Dir:       dir,
				FileCount: 12,
				LineCount: 340,
				ByteSize:  9000,
			}, nil
		},
	}

	bq := &mock.BigQueryMock{
		GetMetadataFunc: func(ctx context.Context) (*bigquery.TableMetadata, error) {
			return nil, nil
		},
		CreateTableFunc: func(ctx context.Context, md *bigquery.TableMetadata) error {
			return nil
		},
		InsertFunc: func(ctx context.Context, schema bigquery.Schema, data any, opts ...interfaces.BigQueryInsertOption) error {
			return nil
		},
	}

	clients := infra.New(
		infra.WithJobRepository(jobs),
		infra.WithVulnRepository(vulns),
		infra.WithSourceFetcher(fetcher),
		infra.WithBigQuery(bq),
		infra.WithScanners(scanners...),
	)

	uc := usecase.New(clients, usecase.WithConfig(usecase.Config{
		WorkerCount:  1,
		ScanTimeout:  time.Minute,
		MaxAttempts:  3,
		PollInterval: 10 * time.Millisecond,
	}))

	return &testEnv{
		uc:      uc,
		jobs:    jobs,
		vulns:   vulns,
		fetcher: fetcher,
		bq:      bq,
	}
}

func newScanner(typ types.ScannerType, name string, run func(ctx context.Context, dir string) (*interfaces.ScanOutput, error)) *mock.ScannerMock {
	return &mock.ScannerMock{
		TypeFunc: func() types.ScannerType { return typ },
		NameFunc: func() string { return name },
		RunFunc:  run,
	}
}

func staticOutput(findings ...*model.RawFinding) func(ctx context.Context, dir string) (*interfaces.ScanOutput, error) {
	return func(ctx context.Context, dir string) (*interfaces.ScanOutput, error) {
		return &interfaces.ScanOutput{Findings: findings}, nil
	}
}

func depFinding(pkg, advisory string, sev types.Severity) *model.RawFinding {
	return &model.RawFinding{
		Scanner:  types.ScannerDependency,
		RuleID:   types.RuleID(advisory),
		Severity: sev,
		Title:    "vulnerable dependency " + pkg,
		Dependency: &model.DependencyDetail{
			Ecosystem:        "npm",
			Package:          pkg,
			InstalledVersion: "1.0.0",
			AdvisoryID:       advisory,
		},
	}
}

func secretFinding(file string, line int) *model.RawFinding {
	return &model.RawFinding{
		Scanner:  types.ScannerSecret,
		RuleID:   "generic-api-key",
		Severity: types.SeverityHigh,
		Title:    "hardcoded credential",
		Secret: &model.SecretDetail{
			PatternID: "generic-api-key",
			File:      file,
			Line:      line,
		},
	}
}

func scanRequest(scanners ...types.ScannerType) *model.ScanRequest {
	return &model.ScanRequest{
		WorkspaceID: testWorkspace,
		RepoID:      testRepoID,
		RepoName:    "demo",
		Branch:      "main",
		Scanners:    scanners,
	}
}

func TestSubmitScanResolvesCommit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	jobID, err := env.uc.SubmitScan(ctx, scanRequest(types.ScannerDependency))
	gt.NoError(t, err)

	job := gt.R1(env.jobs.GetJob(ctx, jobID)).NoError(t)
	gt.V(t, job.Status).Equal(types.ScanJobPending)
	gt.V(t, job.CommitSHA).Equal(testCommitA)
	gt.False(t, job.CommitSynthetic)
	gt.V(t, job.TriggeredBy).Equal(model.TriggerManual)
}

func TestSubmitScanSyntheticFallback(t *testing.T) {
	env := newTestEnv(t)
	env.fetcher.ResolveCommitFunc = func(ctx context.Context, repo *model.GitHubRepo, branch types.BranchName, installID types.GitHubAppInstallID) (types.CommitSHA, error) {
		return "", goerr.New("api down")
	}
	ctx := context.Background()

	jobID, err := env.uc.SubmitScan(ctx, scanRequest(types.ScannerSecret))
	gt.NoError(t, err)

	job := gt.R1(env.jobs.GetJob(ctx, jobID)).NoError(t)
	gt.True(t, job.CommitSynthetic)
	gt.True(t, model.IsSyntheticCommit(job.CommitSHA))
	gt.V(t, job.CommitSHA).Equal(model.SyntheticCommit(testRepoID, "main", time.Now()))
}

func TestSubmitScanDuplicateSuppression(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.uc.SubmitScan(ctx, scanRequest(types.ScannerDependency))
	gt.NoError(t, err)

	second, err := env.uc.SubmitScan(ctx, scanRequest(types.ScannerDependency))
	gt.NoError(t, err)
	gt.V(t, second).Equal(first)
}

func TestSubmitScanSupersede(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.uc.SubmitScan(ctx, scanRequest(types.ScannerDependency))
	gt.NoError(t, err)

	req := scanRequest(types.ScannerDependency)
	req.CommitSHA = testCommitB
	req.Supersede = true
	second, err := env.uc.SubmitScan(ctx, req)
	gt.NoError(t, err)
	gt.V(t, second).NotEqual(first)

	old := gt.R1(env.jobs.GetJob(ctx, first)).NoError(t)
	gt.V(t, old.Status).Equal(types.ScanJobCancelled)

	kept := gt.R1(env.jobs.GetJob(ctx, second)).NoError(t)
	gt.V(t, kept.Status).Equal(types.ScanJobPending)
}

func TestProcessOneCompletesAndDeduplicates(t *testing.T) {
	// Two adapters flag the same dependency advisory; the completed job must
	// count it once.
	shared := depFinding("left-pad", "GHSA-shared", types.SeverityCritical)
	dep := newScanner(types.ScannerDependency, "trivy-fs", staticOutput(
		shared,
		depFinding("lodash", "GHSA-other", types.SeverityMedium),
	))
	sec := newScanner(types.ScannerSecret, "gitleaks", staticOutput(
		secretFinding("config/prod.env", 3),
	))

	env := newTestEnv(t, dep, sec)
	ctx := context.Background()

	req := scanRequest(types.ScannerDependency, types.ScannerSecret)
	req.CommitSHA = testCommitA
	jobID, err := env.uc.SubmitScan(ctx, req)
	gt.NoError(t, err)

	job := gt.R1(env.uc.ProcessOne(ctx)).NoError(t)
	gt.V(t, job.ID).Equal(jobID)
	gt.V(t, job.Status).Equal(types.ScanJobCompleted)
	gt.V(t, job.Stage).Equal(types.StageComplete)
	gt.V(t, job.Progress).Equal(100)

	gt.V(t, job.Counts.Critical).Equal(1)
	gt.V(t, job.Counts.Medium).Equal(1)
	gt.V(t, job.Counts.High).Equal(1)
	gt.V(t, job.Counts.Total()).Equal(3)
	gt.V(t, job.Secrets).Equal(1)
	gt.V(t, job.Score).Equal(model.Score(job.Counts, job.Secrets))
	gt.V(t, job.Grade).Equal(model.GradeOf(job.Score))
	gt.V(t, job.FileCount).Equal(12)

	count := gt.R1(env.vulns.CountInstancesByJob(ctx, testWorkspace, jobID)).NoError(t)
	gt.V(t, count).Equal(3)

	// Completion hook exported the audit record exactly once.
	gt.A(t, env.bq.InsertCalls()).Length(1)
}

func TestProcessOneRetryIdempotence(t *testing.T) {
	// The same job processed twice (as after a stall reclaim) must not double
	// instances or counts.
	dep := newScanner(types.ScannerDependency, "trivy-fs", staticOutput(
		depFinding("left-pad", "GHSA-shared", types.SeverityHigh),
	))
	env := newTestEnv(t, dep)
	ctx := context.Background()

	req := scanRequest(types.ScannerDependency)
	req.CommitSHA = testCommitA
	jobID, err := env.uc.SubmitScan(ctx, req)
	gt.NoError(t, err)

	first := gt.R1(env.uc.ProcessOne(ctx)).NoError(t)
	gt.V(t, first.Status).Equal(types.ScanJobCompleted)

	// Requeue the completed job as if a supervisor reclaimed it mid-flight.
	first.Status = types.ScanJobPending
	first.Stage = ""
	first.Progress = 0
	gt.NoError(t, env.jobs.UpdateJob(ctx, first))

	second := gt.R1(env.uc.ProcessOne(ctx)).NoError(t)
	gt.V(t, second.ID).Equal(jobID)
	gt.V(t, second.Status).Equal(types.ScanJobCompleted)
	gt.V(t, second.Counts.Total()).Equal(1)

	count := gt.R1(env.vulns.CountInstancesByJob(ctx, testWorkspace, jobID)).NoError(t)
	gt.V(t, count).Equal(1)
}

func TestProcessOneCacheHit(t *testing.T) {
	dep := newScanner(types.ScannerDependency, "trivy-fs", staticOutput(
		depFinding("left-pad", "GHSA-shared", types.SeverityHigh),
	))
	env := newTestEnv(t, dep)
	ctx := context.Background()

	req := scanRequest(types.ScannerDependency)
	req.CommitSHA = testCommitA
	firstID, err := env.uc.SubmitScan(ctx, req)
	gt.NoError(t, err)

	first := gt.R1(env.uc.ProcessOne(ctx)).NoError(t)
	gt.V(t, first.Status).Equal(types.ScanJobCompleted)

	// Same commit, same scanner set: the second job is satisfied from cache.
	secondID, err := env.uc.SubmitScan(ctx, req)
	gt.NoError(t, err)
	gt.V(t, secondID).NotEqual(firstID)

	second := gt.R1(env.uc.ProcessOne(ctx)).NoError(t)
	gt.V(t, second.ID).Equal(secondID)
	gt.V(t, second.Status).Equal(types.ScanJobCompleted)
	gt.V(t, second.ClonedFrom).Equal(firstID)
	gt.V(t, second.Counts.Total()).Equal(first.Counts.Total())
	gt.V(t, second.FileCount).Equal(first.FileCount)

	// No second fetch, no second scanner run.
	gt.A(t, env.fetcher.FetchCalls()).Length(1)
	gt.A(t, dep.RunCalls()).Length(1)

	count := gt.R1(env.vulns.CountInstancesByJob(ctx, testWorkspace, secondID)).NoError(t)
	gt.V(t, count).Equal(1)
}

func TestProcessOneCacheHitVoidFallsThrough(t *testing.T) {
	dep := newScanner(types.ScannerDependency, "trivy-fs", staticOutput(
		depFinding("left-pad", "GHSA-shared", types.SeverityHigh),
	))
	env := newTestEnv(t, dep)
	ctx := context.Background()

	// A completed prior job with zero instances: the hit is void.
	prior := &model.ScanJob{
		ID:          types.NewScanJobID(),
		WorkspaceID: testWorkspace,
		RepoID:      testRepoID,
		RepoName:    "demo",
		Branch:      "main",
		CommitSHA:   testCommitA,
		Scanners:    []types.ScannerType{types.ScannerDependency},
		Status:      types.ScanJobCompleted,
		CreatedAt:   time.Now().Add(-time.Hour),
		FinishedAt:  time.Now().Add(-time.Hour),
	}
	gt.NoError(t, env.jobs.CreateJob(ctx, prior))

	req := scanRequest(types.ScannerDependency)
	req.CommitSHA = testCommitA
	_, err := env.uc.SubmitScan(ctx, req)
	gt.NoError(t, err)

	job := gt.R1(env.uc.ProcessOne(ctx)).NoError(t)
	gt.V(t, job.Status).Equal(types.ScanJobCompleted)
	gt.V(t, job.ClonedFrom).Equal(types.ScanJobID(""))
	gt.V(t, job.Counts.Total()).Equal(1)

	// The void hit forced a real fetch and scan.
	gt.A(t, env.fetcher.FetchCalls()).Length(1)
	gt.A(t, dep.RunCalls()).Length(1)
}

func TestProcessOneAdapterDegradationNonFatal(t *testing.T) {
	dep := newScanner(types.ScannerDependency, "trivy-fs", staticOutput(
		depFinding("left-pad", "GHSA-shared", types.SeverityHigh),
	))
	broken := newScanner(types.ScannerSecret, "gitleaks", func(ctx context.Context, dir string) (*interfaces.ScanOutput, error) {
		return &interfaces.ScanOutput{Errors: []string{"tool not found: gitleaks"}}, nil
	})
	env := newTestEnv(t, dep, broken)
	ctx := context.Background()

	req := scanRequest(types.ScannerDependency, types.ScannerSecret)
	req.CommitSHA = testCommitA
	_, err := env.uc.SubmitScan(ctx, req)
	gt.NoError(t, err)

	job := gt.R1(env.uc.ProcessOne(ctx)).NoError(t)
	gt.V(t, job.Status).Equal(types.ScanJobCompleted)
	gt.V(t, job.Counts.Total()).Equal(1)
	gt.V(t, job.Secrets).Equal(0)
}

func TestProcessOneEmptyRepositoryFails(t *testing.T) {
	env := newTestEnv(t)
	env.fetcher.FetchFunc = func(ctx context.Context, input *interfaces.FetchInput) (*interfaces.Workspace, error) {
		return nil, goerr.Wrap(types.ErrEmptyRepository, "repository archive contains no files")
	}
	ctx := context.Background()

	req := scanRequest(types.ScannerDependency)
	req.CommitSHA = testCommitA
	_, err := env.uc.SubmitScan(ctx, req)
	gt.NoError(t, err)

	job := gt.R1(env.uc.ProcessOne(ctx)).NoError(t)
	gt.V(t, job.Status).Equal(types.ScanJobFailed)
	gt.V(t, job.Stage).Equal(types.StageFailed)
	gt.V(t, job.Error).Equal("nothing to scan: repository has no content")
	gt.V(t, job.Duration).Equal(time.Duration(0))
	gt.V(t, job.Counts.Total()).Equal(0)
	gt.False(t, job.FinishedAt.IsZero())

	// Failed jobs still run the completion hook.
	gt.A(t, env.bq.InsertCalls()).Length(1)
}

func TestProcessOneBranchNotFoundFails(t *testing.T) {
	env := newTestEnv(t)
	env.fetcher.FetchFunc = func(ctx context.Context, input *interfaces.FetchInput) (*interfaces.Workspace, error) {
		return nil, goerr.Wrap(types.ErrBranchNotFound, "no such branch")
	}
	ctx := context.Background()

	req := scanRequest(types.ScannerDependency)
	req.CommitSHA = testCommitA
	_, err := env.uc.SubmitScan(ctx, req)
	gt.NoError(t, err)

	job := gt.R1(env.uc.ProcessOne(ctx)).NoError(t)
	gt.V(t, job.Status).Equal(types.ScanJobFailed)
	gt.V(t, job.Error).Equal("fetch failed: branch not found")
}

func TestReconciliationClosesUndetected(t *testing.T) {
	keep := depFinding("left-pad", "GHSA-keep", types.SeverityHigh)
	gone := depFinding("event-stream", "GHSA-gone", types.SeverityCritical)

	findings := []*model.RawFinding{keep, gone}
	dep := newScanner(types.ScannerDependency, "trivy-fs", func(ctx context.Context, dir string) (*interfaces.ScanOutput, error) {
		return &interfaces.ScanOutput{Findings: findings}, nil
	})
	env := newTestEnv(t, dep)
	ctx := context.Background()

	req := scanRequest(types.ScannerDependency)
	req.CommitSHA = testCommitA
	_, err := env.uc.SubmitScan(ctx, req)
	gt.NoError(t, err)
	first := gt.R1(env.uc.ProcessOne(ctx)).NoError(t)
	gt.V(t, first.Counts.Total()).Equal(2)

	// Second full scan no longer sees the critical one.
	findings = []*model.RawFinding{keep}
	req.CommitSHA = testCommitB
	_, err = env.uc.SubmitScan(ctx, req)
	gt.NoError(t, err)
	second := gt.R1(env.uc.ProcessOne(ctx)).NoError(t)
	gt.V(t, second.Status).Equal(types.ScanJobCompleted)
	gt.V(t, second.Counts.Total()).Equal(1)

	open := gt.R1(env.vulns.ListOpenVulnerabilities(ctx, testWorkspace, testRepoID, "main")).NoError(t)
	gt.A(t, open).Length(1)
	gt.V(t, open[0].RuleID).Equal(types.RuleID("GHSA-keep"))
}

func TestReconciliationSkipsDegradedAdapter(t *testing.T) {
	findings := []*model.RawFinding{depFinding("left-pad", "GHSA-keep", types.SeverityHigh)}
	degraded := false
	dep := newScanner(types.ScannerDependency, "trivy-fs", func(ctx context.Context, dir string) (*interfaces.ScanOutput, error) {
		if degraded {
			return &interfaces.ScanOutput{Errors: []string{"exit code 2"}}, nil
		}
		return &interfaces.ScanOutput{Findings: findings}, nil
	})
	env := newTestEnv(t, dep)
	ctx := context.Background()

	req := scanRequest(types.ScannerDependency)
	req.CommitSHA = testCommitA
	_, err := env.uc.SubmitScan(ctx, req)
	gt.NoError(t, err)
	_ = gt.R1(env.uc.ProcessOne(ctx)).NoError(t)

	// The adapter degrades on the next full scan: absence of the finding is
	// not evidence, so the record must stay open.
	degraded = true
	req.CommitSHA = testCommitB
	_, err = env.uc.SubmitScan(ctx, req)
	gt.NoError(t, err)
	second := gt.R1(env.uc.ProcessOne(ctx)).NoError(t)
	gt.V(t, second.Status).Equal(types.ScanJobCompleted)

	open := gt.R1(env.vulns.ListOpenVulnerabilities(ctx, testWorkspace, testRepoID, "main")).NoError(t)
	gt.A(t, open).Length(1)
}

func TestReconciliationSkippedOnCacheHit(t *testing.T) {
	findings := []*model.RawFinding{
		depFinding("left-pad", "GHSA-keep", types.SeverityHigh),
		depFinding("event-stream", "GHSA-gone", types.SeverityCritical),
	}
	dep := newScanner(types.ScannerDependency, "trivy-fs", func(ctx context.Context, dir string) (*interfaces.ScanOutput, error) {
		return &interfaces.ScanOutput{Findings: findings}, nil
	})
	env := newTestEnv(t, dep)
	ctx := context.Background()

	req := scanRequest(types.ScannerDependency)
	req.CommitSHA = testCommitA
	_, err := env.uc.SubmitScan(ctx, req)
	gt.NoError(t, err)
	_ = gt.R1(env.uc.ProcessOne(ctx)).NoError(t)

	// A cache-hit re-scan of the same commit proves nothing about absence:
	// both records stay open even though the clone path never re-detects.
	_, err = env.uc.SubmitScan(ctx, req)
	gt.NoError(t, err)
	second := gt.R1(env.uc.ProcessOne(ctx)).NoError(t)
	gt.V(t, second.ClonedFrom).NotEqual(types.ScanJobID(""))

	open := gt.R1(env.vulns.ListOpenVulnerabilities(ctx, testWorkspace, testRepoID, "main")).NoError(t)
	gt.A(t, open).Length(2)
}

func TestCompletionExcludesFixedRecords(t *testing.T) {
	// A cache-hit job on an old commit may reference unified records that
	// reconciliation has since fixed; those must not count or weigh on the
	// score.
	findings := []*model.RawFinding{depFinding("left-pad", "GHSA-old", types.SeverityHigh)}
	dep := newScanner(types.ScannerDependency, "trivy-fs", func(ctx context.Context, dir string) (*interfaces.ScanOutput, error) {
		return &interfaces.ScanOutput{Findings: findings}, nil
	})
	env := newTestEnv(t, dep)
	ctx := context.Background()

	req := scanRequest(types.ScannerDependency)
	req.CommitSHA = testCommitA
	firstID, err := env.uc.SubmitScan(ctx, req)
	gt.NoError(t, err)
	first := gt.R1(env.uc.ProcessOne(ctx)).NoError(t)
	gt.V(t, first.Counts.High).Equal(1)

	// A newer commit no longer carries the issue: reconciliation fixes it.
	findings = nil
	req.CommitSHA = testCommitB
	_, err = env.uc.SubmitScan(ctx, req)
	gt.NoError(t, err)
	second := gt.R1(env.uc.ProcessOne(ctx)).NoError(t)
	gt.V(t, second.Counts.Total()).Equal(0)

	open := gt.R1(env.vulns.ListOpenVulnerabilities(ctx, testWorkspace, testRepoID, "main")).NoError(t)
	gt.A(t, open).Length(0)

	// Re-scan the old commit: the cache clone references the fixed record,
	// which stays excluded from counts and score.
	req.CommitSHA = testCommitA
	thirdID, err := env.uc.SubmitScan(ctx, req)
	gt.NoError(t, err)
	third := gt.R1(env.uc.ProcessOne(ctx)).NoError(t)
	gt.V(t, third.ID).Equal(thirdID)
	gt.V(t, third.ClonedFrom).Equal(firstID)
	gt.V(t, third.Counts.Total()).Equal(0)
	gt.V(t, third.Secrets).Equal(0)
	gt.V(t, third.Score).Equal(model.Score(model.SeverityCounts{}, 0))
}

func TestSupersedeWhileRunningStaysCancelled(t *testing.T) {
	// Superseding a running job must stick: the worker still finishes its
	// pipeline on a stale snapshot, but none of its later writes may
	// resurrect the cancelled job.
	var env *testEnv
	dep := newScanner(types.ScannerDependency, "trivy-fs", func(ctx context.Context, dir string) (*interfaces.ScanOutput, error) {
		req := scanRequest(types.ScannerDependency)
		req.CommitSHA = testCommitB
		req.Supersede = true
		if _, err := env.uc.SubmitScan(ctx, req); err != nil {
			return nil, err
		}
		return &interfaces.ScanOutput{Findings: []*model.RawFinding{
			depFinding("left-pad", "GHSA-old", types.SeverityHigh),
		}}, nil
	})
	env = newTestEnv(t, dep)
	ctx := context.Background()

	req := scanRequest(types.ScannerDependency)
	req.CommitSHA = testCommitA
	firstID, err := env.uc.SubmitScan(ctx, req)
	gt.NoError(t, err)

	job := gt.R1(env.uc.ProcessOne(ctx)).NoError(t)
	gt.V(t, job.ID).Equal(firstID)
	gt.V(t, job.Status).Equal(types.ScanJobCancelled)
}

func TestGetJob(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.uc.GetJob(ctx, "")
	gt.Error(t, err)

	jobID, err := env.uc.SubmitScan(ctx, scanRequest(types.ScannerStatic))
	gt.NoError(t, err)

	job := gt.R1(env.uc.GetJob(ctx, jobID)).NoError(t)
	gt.V(t, job.ID).Equal(jobID)
}
