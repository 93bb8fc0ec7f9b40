package usecase

import (
	"context"
	"log/slog"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/interfaces"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/model"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/utils/logging"
)

// completeJob computes the de-duplicated severity counts, scores the job and
// stores the immutable summary. Counts are counts of distinct unified
// vulnerabilities reachable through this job's instances, never raw finding
// counts: two adapters flagging the same fingerprint contribute one unit.
func (x *UseCase) completeJob(ctx context.Context, job *model.ScanJob, adapters []model.AdapterResult) error {
	vulns := x.clients.VulnRepository()
	now := logging.CtxTime(ctx)

	instances, err := vulns.ListInstancesByJob(ctx, job.WorkspaceID, job.ID)
	if err != nil {
		return goerr.Wrap(err, "failed to list job instances for scoring", goerr.V("jobID", job.ID))
	}

	records, err := vulns.GetVulnerabilitiesByIDs(ctx, job.WorkspaceID, uniqueVulnIDs(instances))
	if err != nil {
		return goerr.Wrap(err, "failed to load unified records for scoring", goerr.V("jobID", job.ID))
	}

	// Only open records count. A cache-hit on an old commit may reference
	// records that reconciliation has since fixed, or that carry an accepted
	// or false_positive verdict; none of those weigh on the score.
	var counts model.SeverityCounts
	var secrets int
	for _, v := range records {
		if v.Status != types.VulnStatusOpen {
			continue
		}
		counts.Add(v.Severity)
		if v.Scanner == types.ScannerSecret {
			secrets++
		}
	}

	job.Counts = counts
	job.Secrets = secrets
	job.Score = model.Score(counts, secrets)
	job.Grade = model.GradeOf(job.Score)
	job.Status = types.ScanJobCompleted
	job.Stage = types.StageComplete
	job.Progress = model.StagePercent(types.StageComplete)
	job.FinishedAt = now
	if !job.StartedAt.IsZero() {
		job.Duration = now.Sub(job.StartedAt)
	}
	job.UpdatedAt = now

	if err := x.clients.JobRepository().UpdateJob(ctx, job); err != nil {
		return goerr.Wrap(err, "failed to store job completion", goerr.V("jobID", job.ID))
	}

	logging.From(ctx).Info("scan completed",
		slog.Any("jobID", job.ID),
		slog.Int("vulnerabilities", counts.Total()),
		slog.Int("secrets", secrets),
		slog.Int("score", job.Score),
		slog.Any("grade", job.Grade),
	)

	x.finishJob(ctx, job, adapters)

	return nil
}

// finishJob is the completion hook: usage accounting, audit export and the
// terminal progress event. It runs exactly once per terminal transition,
// success or failure, and its own failures never change the job outcome.
func (x *UseCase) finishJob(ctx context.Context, job *model.ScanJob, adapters []model.AdapterResult) {
	now := logging.CtxTime(ctx)

	logging.From(ctx).Info("scan job finalized",
		slog.Any("jobID", job.ID),
		slog.Any("status", job.Status),
		slog.Duration("duration", job.Duration),
		slog.Int("files", job.FileCount),
		slog.Int("lines", job.LineCount),
		slog.Int64("bytes", job.ByteSize),
		slog.Int("attempts", job.Attempts),
	)

	if err := x.exportAudit(ctx, model.NewJobAuditRecord(job, adapters, now)); err != nil {
		logging.From(ctx).Warn("audit export failed", slog.Any("jobID", job.ID), slog.Any("error", err))
	}

	x.publish(ctx, &model.ProgressEvent{
		JobID:     job.ID,
		Stage:     job.Stage,
		Percent:   job.Progress,
		Message:   "scan " + job.Status.String(),
		Timestamp: now,
	})
}

// exportAudit writes the finalized job record to BigQuery, creating or
// widening the table schema as needed.
func (x *UseCase) exportAudit(ctx context.Context, record *model.JobAuditRecord) error {
	bq := x.clients.BigQuery()
	if bq == nil {
		return nil
	}

	schema, err := createOrUpdateAuditTable(ctx, bq, record)
	if err != nil {
		return err
	}

	if err := bq.Insert(ctx, schema, record, interfaces.WithRetry(true)); err != nil {
		return goerr.Wrap(err, "failed to insert audit record")
	}

	return nil
}

func createOrUpdateAuditTable(ctx context.Context, bq interfaces.BigQuery, record *model.JobAuditRecord) (bigquery.Schema, error) {
	schema, err := bqs.Infer(record)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to infer audit schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get audit table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{Schema: schema}); err != nil {
			return nil, goerr.Wrap(err, "failed to create audit table")
		}
		return schema, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge audit schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{Schema: mergedSchema}, metaData.ETag); err != nil {
		return nil, goerr.Wrap(err, "failed to update audit table")
	}

	return mergedSchema, nil
}
