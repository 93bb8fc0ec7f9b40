package config

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/interfaces"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/infra/bq"
)

type BigQuery struct {
	projectID types.GoogleProjectID
	datasetID types.BQDatasetID
	tableID   types.BQTableID
}

func (x *BigQuery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bigquery-project-id",
			Usage:       "BigQuery project ID for audit export (optional)",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("SENTINEL_BIGQUERY_PROJECT_ID"),
			Destination: (*string)(&x.projectID),
		},
		&cli.StringFlag{
			Name:        "bigquery-dataset-id",
			Usage:       "BigQuery dataset ID",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("SENTINEL_BIGQUERY_DATASET_ID"),
			Value:       "sentinel",
			Destination: (*string)(&x.datasetID),
		},
		&cli.StringFlag{
			Name:        "bigquery-table-id",
			Usage:       "BigQuery table ID",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("SENTINEL_BIGQUERY_TABLE_ID"),
			Value:       "scan_audit",
			Destination: (*string)(&x.tableID),
		},
	}
}

func (x *BigQuery) Enabled() bool {
	return x.projectID != ""
}

// NewClient returns nil without error when no project ID is configured.
// Audit export is optional; the pipeline tolerates a nil client.
func (x *BigQuery) NewClient(ctx context.Context) (interfaces.BigQuery, error) {
	if !x.Enabled() {
		return nil, nil
	}
	return bq.New(ctx, x.projectID, x.datasetID, x.tableID)
}

func (x *BigQuery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("projectID", x.projectID),
		slog.Any("datasetID", x.datasetID),
		slog.Any("tableID", x.tableID),
	)
}
