package model

import (
	"time"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
)

// AdapterResult is the per-adapter execution record of one job: success flag,
// finding count, collected warnings and duration.
type AdapterResult struct {
	Name         string            `json:"name"`
	Scanner      types.ScannerType `json:"scanner"`
	Success      bool              `json:"success"`
	FindingCount int               `json:"finding_count"`
	Errors       []string          `json:"errors,omitempty"`
	DurationMS   int64             `json:"duration_ms"`
}

// JobAuditRecord is the completion-hook export of one finalized job. It is
// written exactly once per terminal transition, success or failure.
type JobAuditRecord struct {
	Job      ScanJob         `json:"job"`
	Adapters []AdapterResult `json:"adapters,omitempty"`
	// Timestamp is UnixMicro of the finalization time, used for partitioning.
	Timestamp int64 `json:"timestamp"`
}

// NewJobAuditRecord snapshots a finalized job for export.
func NewJobAuditRecord(job *ScanJob, adapters []AdapterResult, now time.Time) *JobAuditRecord {
	return &JobAuditRecord{
		Job:       *job,
		Adapters:  adapters,
		Timestamp: now.UnixMicro(),
	}
}
