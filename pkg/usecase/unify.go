package usecase

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/model"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/utils/logging"
)

// unifyFindings assigns each raw finding its durable identity and records the
// detection: fingerprint, atomic unified upsert, idempotent instance upsert.
// Any error here is pipeline-fatal; downstream counts depend on this step.
// The returned set holds the fingerprints detected by this job.
func (x *UseCase) unifyFindings(ctx context.Context, job *model.ScanJob, findings []*model.RawFinding) (map[types.Fingerprint]bool, error) {
	vulns := x.clients.VulnRepository()
	now := logging.CtxTime(ctx)
	detected := make(map[types.Fingerprint]bool, len(findings))

	for _, f := range findings {
		if err := f.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid finding", goerr.V("rule", f.RuleID))
		}

		fp, err := x.fingerprinters.Fingerprint(f)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to fingerprint finding", goerr.V("rule", f.RuleID))
		}

		candidate := &model.UnifiedVulnerability{
			ID:              types.NewVulnID(),
			WorkspaceID:     job.WorkspaceID,
			RepoID:          job.RepoID,
			Branch:          job.Branch,
			Fingerprint:     fp,
			Scanner:         f.Scanner,
			RuleID:          f.RuleID,
			Severity:        f.Severity,
			Title:           f.Title,
			Status:          types.VulnStatusOpen,
			FirstDetectedAt: now,
			LastSeenAt:      now,
			LastFullScanAt:  now,
			LastFullScanID:  job.ID,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		stored, created, err := vulns.UpsertVulnerability(ctx, candidate)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to upsert unified vulnerability", goerr.V("fingerprint", fp))
		}
		detected[fp] = true

		payload, err := json.Marshal(f)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to snapshot finding payload", goerr.V("fingerprint", fp))
		}

		inst := &model.VulnerabilityInstance{
			Key:       model.NewInstanceKey(job.ID, fp, f.Location()),
			JobID:     job.ID,
			VulnID:    stored.ID,
			Scanner:   f.Scanner,
			RuleID:    f.RuleID,
			Severity:  f.Severity,
			Location:  f.Location(),
			Payload:   payload,
			CreatedAt: now,
		}
		if err := vulns.PutInstance(ctx, job.WorkspaceID, inst); err != nil {
			return nil, goerr.Wrap(err, "failed to put instance", goerr.V("key", inst.Key))
		}

		if created {
			logging.From(ctx).Debug("new unified vulnerability",
				slog.Any("fingerprint", fp),
				slog.Any("rule", f.RuleID),
				slog.Any("severity", f.Severity),
			)
		}
	}

	return detected, nil
}

// reconcile closes open records this full scan no longer detects: evidence of
// absence after a genuine re-scan. Only records previously vouched for by a
// full scan are eligible, and only within scanner classes this job both
// enabled and ran successfully; a degraded adapter cannot prove absence.
// Cache-hit jobs never reach this function.
func (x *UseCase) reconcile(ctx context.Context, job *model.ScanJob, detected map[types.Fingerprint]bool, adapters []model.AdapterResult) {
	covered := make(map[types.ScannerType]bool, len(adapters))
	for _, r := range adapters {
		if r.Success {
			covered[r.Scanner] = true
		}
	}

	open, err := x.clients.VulnRepository().ListOpenVulnerabilities(ctx, job.WorkspaceID, job.RepoID, job.Branch)
	if err != nil {
		logging.From(ctx).Warn("reconciliation skipped: failed to list open vulnerabilities", slog.Any("error", err))
		return
	}

	updates := make(map[types.VulnID]types.VulnStatus)
	for _, v := range open {
		if detected[v.Fingerprint] {
			continue
		}
		if !covered[v.Scanner] {
			continue
		}
		if v.LastFullScanAt.IsZero() || v.LastFullScanID == job.ID {
			continue
		}
		updates[v.ID] = types.VulnStatusFixed
	}

	if len(updates) == 0 {
		return
	}

	if err := x.clients.VulnRepository().BatchUpdateStatus(ctx, job.WorkspaceID, updates); err != nil {
		logging.From(ctx).Warn("reconciliation batch update failed", slog.Any("error", err))
		return
	}

	logging.From(ctx).Info("reconciled resolved vulnerabilities",
		slog.Any("jobID", job.ID),
		slog.Int("fixed", len(updates)),
	)
}
