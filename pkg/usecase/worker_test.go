package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/interfaces"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/model"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
)

func claimRunning(t *testing.T, env *testEnv, lease time.Time) *model.ScanJob {
	t.Helper()
	ctx := context.Background()

	req := scanRequest(types.ScannerDependency)
	req.CommitSHA = testCommitA
	_, err := env.uc.SubmitScan(ctx, req)
	gt.NoError(t, err)

	job := gt.R1(env.jobs.ClaimNextPending(ctx, lease)).NoError(t)
	gt.V(t, job.Status).Equal(types.ScanJobRunning)
	return job
}

func TestSuperviseForceFailsTimedOut(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	job := claimRunning(t, env, time.Now().Add(time.Hour))

	// Push the start time past the wall-clock limit, lease still healthy: the
	// watchdog must fail it regardless of lease health.
	job.StartedAt = time.Now().Add(-2 * time.Hour)
	gt.NoError(t, env.jobs.UpdateJob(ctx, job))

	env.uc.SuperviseOnce(ctx)

	got := gt.R1(env.jobs.GetJob(ctx, job.ID)).NoError(t)
	gt.V(t, got.Status).Equal(types.ScanJobFailed)
	gt.V(t, got.Error).Equal("timeout: scan exceeded the wall-clock limit")
	gt.False(t, got.FinishedAt.IsZero())
}

func TestSuperviseRequeuesStalled(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	job := claimRunning(t, env, time.Now().Add(-time.Minute))
	gt.V(t, job.Attempts).Equal(1)

	env.uc.SuperviseOnce(ctx)

	got := gt.R1(env.jobs.GetJob(ctx, job.ID)).NoError(t)
	gt.V(t, got.Status).Equal(types.ScanJobPending)
	gt.V(t, got.Progress).Equal(0)
	gt.True(t, got.LeaseExpiresAt.IsZero())
}

func TestSuperviseFailsStalledOutOfBudget(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	job := claimRunning(t, env, time.Now().Add(-time.Minute))
	job.Attempts = 3
	gt.NoError(t, env.jobs.UpdateJob(ctx, job))

	env.uc.SuperviseOnce(ctx)

	got := gt.R1(env.jobs.GetJob(ctx, job.ID)).NoError(t)
	gt.V(t, got.Status).Equal(types.ScanJobFailed)
	gt.V(t, got.Error).Equal("stalled: execution lease expired without completion")
}

func TestFailureReasons(t *testing.T) {
	env := newTestEnv(t)

	cases := map[string]struct {
		err  error
		want string
	}{
		"timeout": {
			err:  goerr.Wrap(types.ErrJobTimeout, "deadline"),
			want: "timeout: scan exceeded the wall-clock limit",
		},
		"stalled": {
			err:  types.ErrJobStalled,
			want: "stalled: execution lease expired without completion",
		},
		"auth": {
			err:  goerr.Wrap(types.ErrAuthExpired, "401"),
			want: "fetch failed: source host credentials expired",
		},
		"empty": {
			err:  types.ErrEmptyRepository,
			want: "nothing to scan: repository has no content",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			gt.V(t, env.uc.FailureReasonOf(tc.err)).Equal(tc.want)
		})
	}
}

func TestShutdownLeavesInFlightJobForRecovery(t *testing.T) {
	// A graceful shutdown must not permanently fail the in-flight job: it
	// stays running so lease expiry hands it to the stall detector, the same
	// recovery a crashed worker gets.
	env := newTestEnv(t)
	env.fetcher.FetchFunc = func(ctx context.Context, input *interfaces.FetchInput) (*interfaces.Workspace, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req := scanRequest(types.ScannerDependency)
	req.CommitSHA = testCommitA
	jobID, err := env.uc.SubmitScan(ctx, req)
	gt.NoError(t, err)

	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	job := gt.R1(env.uc.ProcessOne(ctx)).NoError(t)
	gt.V(t, job.ID).Equal(jobID)
	gt.V(t, job.Status).Equal(types.ScanJobRunning)
	gt.V(t, job.Error).Equal("")
}

func TestWorkerPoolProcessesQueue(t *testing.T) {
	dep := newScanner(types.ScannerDependency, "trivy-fs", staticOutput(
		depFinding("left-pad", "GHSA-shared", types.SeverityHigh),
	))
	env := newTestEnv(t, dep)
	ctx := context.Background()

	req := scanRequest(types.ScannerDependency)
	req.CommitSHA = testCommitA
	jobID, err := env.uc.SubmitScan(ctx, req)
	gt.NoError(t, err)

	gt.NoError(t, env.uc.StartWorkers(ctx))
	gt.Error(t, env.uc.StartWorkers(ctx)) // double start
	defer env.uc.Stop()

	deadline := time.Now().Add(5 * time.Second)
	for {
		job := gt.R1(env.jobs.GetJob(ctx, jobID)).NoError(t)
		if job.Status.IsTerminal() {
			gt.V(t, job.Status).Equal(types.ScanJobCompleted)
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("job did not reach a terminal state: %s", job.Status)
		}
		time.Sleep(20 * time.Millisecond)
	}
}
