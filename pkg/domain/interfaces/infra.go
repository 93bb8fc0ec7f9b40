package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . SourceFetcher Scanner BigQuery ProgressSink InstallResolver

import (
	"context"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/model"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
)

// Workspace is a materialized working tree with size statistics. It is
// exclusively owned by one job execution; the pipeline removes Dir on every
// exit path.
type Workspace struct {
	Dir       string
	FileCount int
	LineCount int
	ByteSize  int64
}

type FetchInput struct {
	Repo      model.GitHubRepo
	Branch    types.BranchName
	Commit    types.CommitSHA
	InstallID types.GitHubAppInstallID
}

// SourceFetcher materializes a working tree for a repository+branch.
// Fetch failures are typed: types.ErrAuthExpired, types.ErrBranchNotFound and
// types.ErrEmptyRepository are never retried and each one surfaces as its own
// failure reason.
type SourceFetcher interface {
	// ResolveCommit resolves the branch head. Callers fall back to a
	// synthetic commit identifier when it fails.
	ResolveCommit(ctx context.Context, repo *model.GitHubRepo, branch types.BranchName, installID types.GitHubAppInstallID) (types.CommitSHA, error)

	Fetch(ctx context.Context, input *FetchInput) (*Workspace, error)
}

// InstallResolver finds the GitHub App installation for a repository owner.
// Manual scan requests may omit the installation ID; the controller resolves
// it through this interface before enqueueing.
type InstallResolver interface {
	GetInstallationIDForOwner(ctx context.Context, owner string) (types.GitHubAppInstallID, error)
}

// ScanOutput is the uniform result of one adapter run. A degraded adapter
// returns zero findings plus its errors; the orchestrator records a warning
// and moves on.
type ScanOutput struct {
	Findings []*model.RawFinding
	Errors   []string
	Duration time.Duration
}

// Scanner is one pluggable adapter wrapping an external tool.
type Scanner interface {
	Type() types.ScannerType
	Name() string
	Run(ctx context.Context, dir string) (*ScanOutput, error)
}

// ProgressSink consumes one structured event per pipeline stage or adapter
// milestone. Implementations must not block the pipeline.
type ProgressSink interface {
	Publish(ctx context.Context, ev *model.ProgressEvent)
}

type BigQueryInsertOption func(*BigQueryInsertConfig)

type BigQueryInsertConfig struct {
	EnableRetry bool
}

func WithRetry(retry bool) BigQueryInsertOption {
	return func(c *BigQueryInsertConfig) {
		c.EnableRetry = retry
	}
}

// BigQuery receives the audit export of finalized jobs.
type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any, opts ...BigQueryInsertOption) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}
