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

// CacheDecision is the explicit outcome of a result-cache lookup. A void hit
// (a prior job found, but zero instances cloned) falls through to a full scan
// instead of reporting spurious success.
type CacheDecision int

const (
	CacheMiss CacheDecision = iota
	CacheHit
	CacheHitVoid
)

func (x CacheDecision) String() string {
	switch x {
	case CacheHit:
		return "hit"
	case CacheHitVoid:
		return "hit_void"
	default:
		return "miss"
	}
}

// tryCache looks up a completed job with the identical (repository, commit,
// scanner set) tuple and clones its instances into this job. Every instance
// key is recomputed under the new job's identity; old keys are never reused.
// Cloning is idempotent, so a retried job re-puts the same rows.
func (x *UseCase) tryCache(ctx context.Context, job *model.ScanJob) (CacheDecision, error) {
	prior, err := x.clients.JobRepository().FindCompletedByCacheKey(ctx, job.CacheKey())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return CacheMiss, nil
		}
		return CacheMiss, err
	}

	vulns := x.clients.VulnRepository()
	now := logging.CtxTime(ctx)

	instances, err := vulns.ListInstancesByJob(ctx, job.WorkspaceID, prior.ID)
	if err != nil {
		return CacheMiss, goerr.Wrap(err, "failed to list cached instances", goerr.V("priorID", prior.ID))
	}

	// Fingerprints are recovered through the unified records the cached
	// instances point to.
	vulnIDs := uniqueVulnIDs(instances)
	records, err := vulns.GetVulnerabilitiesByIDs(ctx, job.WorkspaceID, vulnIDs)
	if err != nil {
		return CacheMiss, goerr.Wrap(err, "failed to load unified records for clone", goerr.V("priorID", prior.ID))
	}
	fingerprints := make(map[types.VulnID]types.Fingerprint, len(records))
	for _, v := range records {
		fingerprints[v.ID] = v.Fingerprint
	}

	var cloned, skipped int
	seen := make(map[types.VulnID]bool)
	for _, inst := range instances {
		fp, ok := fingerprints[inst.VulnID]
		if !ok {
			skipped++
			continue
		}
		if err := inst.ValidatePayload(); err != nil {
			logging.From(ctx).Warn("skipping cached instance with unusable payload",
				slog.Any("key", inst.Key),
				slog.Any("error", err),
			)
			skipped++
			continue
		}

		clone := &model.VulnerabilityInstance{
			Key:       model.NewInstanceKey(job.ID, fp, inst.Location),
			JobID:     job.ID,
			VulnID:    inst.VulnID,
			Scanner:   inst.Scanner,
			RuleID:    inst.RuleID,
			Severity:  inst.Severity,
			Location:  inst.Location,
			Payload:   inst.Payload,
			CreatedAt: now,
		}
		if err := vulns.PutInstance(ctx, job.WorkspaceID, clone); err != nil {
			logging.From(ctx).Warn("failed to clone cached instance", slog.Any("key", clone.Key), slog.Any("error", err))
			skipped++
			continue
		}
		seen[inst.VulnID] = true
		cloned++
	}

	if cloned == 0 {
		logging.From(ctx).Warn("cache hit yielded no usable rows, falling through to full scan",
			slog.Any("priorID", prior.ID),
			slog.Int("skipped", skipped),
			slog.Any("reason", types.ErrVoidCacheHit),
		)
		return CacheHitVoid, nil
	}

	// Cloned unified records stay warm; full-scan markers are untouched.
	if err := vulns.TouchLastSeen(ctx, job.WorkspaceID, vulnIDKeys(seen), now); err != nil {
		logging.From(ctx).Warn("failed to refresh last-seen on cloned records", slog.Any("error", err))
	}

	job.ClonedFrom = prior.ID
	job.FileCount = prior.FileCount
	job.LineCount = prior.LineCount
	job.ByteSize = prior.ByteSize

	logging.From(ctx).Info("cache hit",
		slog.Any("jobID", job.ID),
		slog.Any("priorID", prior.ID),
		slog.Int("cloned", cloned),
		slog.Int("skipped", skipped),
	)

	return CacheHit, nil
}

func uniqueVulnIDs(instances []*model.VulnerabilityInstance) []types.VulnID {
	seen := make(map[types.VulnID]bool, len(instances))
	var ids []types.VulnID
	for _, inst := range instances {
		if !seen[inst.VulnID] {
			seen[inst.VulnID] = true
			ids = append(ids, inst.VulnID)
		}
	}
	return ids
}

func vulnIDKeys(set map[types.VulnID]bool) []types.VulnID {
	ids := make([]types.VulnID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return ids
}
