package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/model"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/repository"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/utils/logging"
)

// SubmitScan validates a request, resolves the target commit and enqueues a
// pending job. An active job already covering the same commit suppresses the
// submission and its ID is returned instead. With Supersede set, older
// pending/running jobs of the same repository+branch are cancelled.
func (x *UseCase) SubmitScan(ctx context.Context, req *model.ScanRequest) (types.ScanJobID, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	now := logging.CtxTime(ctx)
	commit := req.CommitSHA
	synthetic := false

	if commit == "" {
		resolved, err := x.resolveCommit(ctx, req)
		if err != nil {
			// Commit resolution is best-effort: fall back to a deterministic
			// synthetic identifier so same-day re-scans stay cache-warm.
			commit = model.SyntheticCommit(req.RepoID, req.Branch, now)
			synthetic = true
			logging.From(ctx).Warn("commit resolution failed, using synthetic identifier",
				slog.Any("repoID", req.RepoID),
				slog.Any("branch", req.Branch),
				slog.Any("commit", commit),
				slog.Any("error", err),
			)
		} else {
			commit = resolved
		}
	} else if model.IsSyntheticCommit(commit) {
		synthetic = true
	}

	if active, err := x.clients.JobRepository().FindActiveByCommit(ctx, req.RepoID, commit); err == nil {
		logging.From(ctx).Info("scan already active for commit, suppressing duplicate",
			slog.Any("jobID", active.ID),
			slog.Any("commit", commit),
		)
		return active.ID, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}

	triggeredBy := req.TriggeredBy
	if triggeredBy == "" {
		triggeredBy = model.TriggerManual
	}

	job := &model.ScanJob{
		ID:              types.NewScanJobID(),
		WorkspaceID:     req.WorkspaceID,
		RepoID:          req.RepoID,
		RepoName:        req.RepoName,
		Branch:          req.Branch,
		CommitSHA:       commit,
		CommitSynthetic: synthetic,
		Scanners:        req.Scanners,
		TriggeredBy:     triggeredBy,
		InstallID:       req.InstallID,
		Status:          types.ScanJobPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := job.Validate(); err != nil {
		return "", err
	}

	if err := x.clients.JobRepository().CreateJob(ctx, job); err != nil {
		return "", goerr.Wrap(err, "failed to enqueue scan job", goerr.V("jobID", job.ID))
	}

	if req.Supersede {
		cancelled, err := x.clients.JobRepository().CancelActiveByBranch(ctx, req.RepoID, req.Branch, job.ID)
		if err != nil {
			logging.From(ctx).Warn("failed to supersede older jobs", slog.Any("error", err))
		} else if len(cancelled) > 0 {
			logging.From(ctx).Info("superseded older jobs",
				slog.Any("jobID", job.ID),
				slog.Any("cancelled", cancelled),
			)
		}
	}

	logging.From(ctx).Info("scan job submitted",
		slog.Any("jobID", job.ID),
		slog.Any("repoID", job.RepoID),
		slog.Any("branch", job.Branch),
		slog.Any("commit", job.CommitSHA),
		slog.String("trigger", triggeredBy),
	)

	return job.ID, nil
}

func (x *UseCase) resolveCommit(ctx context.Context, req *model.ScanRequest) (types.CommitSHA, error) {
	fetcher := x.clients.SourceFetcher()
	if fetcher == nil {
		return "", goerr.Wrap(types.ErrInvalidOption, "no source fetcher configured")
	}

	repo := githubRepoOf(req)
	return fetcher.ResolveCommit(ctx, &repo, req.Branch, req.InstallID)
}

func githubRepoOf(req *model.ScanRequest) model.GitHubRepo {
	owner, name := types.SplitRepoID(req.RepoID)
	if name == "" {
		name = req.RepoName
	}
	return model.GitHubRepo{
		Owner:    owner,
		RepoName: name,
	}
}
