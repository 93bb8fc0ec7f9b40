package bq_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/gt"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/model"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/infra/bq"
)

func TestClientInsert(t *testing.T) {
	projectID := os.Getenv("TEST_BIGQUERY_PROJECT_ID")
	datasetID := os.Getenv("TEST_BIGQUERY_DATASET_ID")
	if projectID == "" || datasetID == "" {
		t.Skip("TEST_BIGQUERY_PROJECT_ID or TEST_BIGQUERY_DATASET_ID is not set")
	}

	ctx := context.Background()
	tableID := types.BQTableID(fmt.Sprintf("scan_audit_test_%d", time.Now().UnixNano()))

	client := gt.R1(bq.New(ctx,
		types.GoogleProjectID(projectID),
		types.BQDatasetID(datasetID),
		tableID,
	)).NoError(t)

	now := time.Now()
	job := &model.ScanJob{
		ID:          types.NewScanJobID(),
		WorkspaceID: "ws-test",
		RepoID:      "sentinel-org/demo",
		Branch:      "main",
		CommitSHA:   "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Status:      types.ScanJobCompleted,
		Score:       95,
		Grade:       types.GradeA,
	}
	record := model.NewJobAuditRecord(job, []model.AdapterResult{
		{Name: "semgrep", Scanner: types.ScannerStatic, Success: true, FindingCount: 1, DurationMS: 1200},
	}, now)

	schema := gt.R1(bqs.Infer(record)).NoError(t)
	gt.NoError(t, client.CreateTable(ctx, &bigquery.TableMetadata{Schema: schema}))

	md := gt.R1(client.GetMetadata(ctx)).NoError(t)
	gt.True(t, md != nil)

	gt.NoError(t, client.Insert(ctx, schema, record))
}
