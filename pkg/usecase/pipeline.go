package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/interfaces"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/model"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/utils/logging"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/utils/safe"
)

// executeJob runs the stages of one claimed job in strict order: cache
// lookup, fetch, concurrent scanning, unification, reconciliation, scoring.
// Returning an error leaves the terminal transition to the caller.
func (x *UseCase) executeJob(ctx context.Context, job *model.ScanJob) error {
	x.setStage(ctx, job, types.StageFetch)

	decision, err := x.tryCache(ctx, job)
	if err != nil {
		// Cache failures degrade to a full scan, never fail the job.
		logging.From(ctx).Warn("cache lookup failed, falling back to full scan", slog.Any("error", err))
		decision = CacheMiss
	}
	if decision == CacheHit {
		// A clone proves the old findings persist but not that nothing new
		// appeared: reconciliation is skipped on this path.
		x.setStage(ctx, job, types.StageNormalizing)
		return x.completeJob(ctx, job, nil)
	}

	ws, err := x.fetchWorkspace(ctx, job)
	if err != nil {
		return err
	}
	defer safe.RemoveAll(ws.Dir)

	job.FileCount = ws.FileCount
	job.LineCount = ws.LineCount
	job.ByteSize = ws.ByteSize

	x.setStage(ctx, job, types.StageScanning)
	findings, adapters := x.runScanners(ctx, job, ws.Dir)
	x.setStage(ctx, job, types.StageScannerComplete)

	x.setStage(ctx, job, types.StageNormalizing)
	detected, err := x.unifyFindings(ctx, job, findings)
	if err != nil {
		return goerr.Wrap(types.ErrUnificationFailed, "unification failed", goerr.V("jobID", job.ID), goerr.V("cause", err))
	}

	x.reconcile(ctx, job, detected, adapters)

	return x.completeJob(ctx, job, adapters)
}

func (x *UseCase) fetchWorkspace(ctx context.Context, job *model.ScanJob) (*interfaces.Workspace, error) {
	fetcher := x.clients.SourceFetcher()
	if fetcher == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "no source fetcher configured")
	}

	owner, name := types.SplitRepoID(job.RepoID)
	if name == "" {
		name = job.RepoName
	}

	return fetcher.Fetch(ctx, &interfaces.FetchInput{
		Repo: model.GitHubRepo{
			Owner:    owner,
			RepoName: name,
		},
		Branch:    job.Branch,
		Commit:    job.CommitSHA,
		InstallID: job.InstallID,
	})
}

// setStage advances the job through the ordered stage sequence, persists the
// progress and emits one structured event. Event emission must not block or
// fail the pipeline.
func (x *UseCase) setStage(ctx context.Context, job *model.ScanJob, stage types.ScanStage) {
	now := logging.CtxTime(ctx)
	job.Stage = stage
	job.Progress = model.StagePercent(stage)
	job.UpdatedAt = now

	if err := x.clients.JobRepository().UpdateJob(ctx, job); err != nil {
		logging.From(ctx).Warn("failed to persist stage transition",
			slog.Any("jobID", job.ID),
			slog.Any("stage", stage),
			slog.Any("error", err),
		)
	}

	x.publish(ctx, &model.ProgressEvent{
		JobID:     job.ID,
		Stage:     stage,
		Percent:   job.Progress,
		Timestamp: now,
	})
}

func (x *UseCase) publish(ctx context.Context, ev *model.ProgressEvent) {
	if sink := x.clients.ProgressSink(); sink != nil {
		sink.Publish(ctx, ev)
	}
}
