package model

import (
	"time"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
)

// ProgressEvent is one structured pipeline milestone. Events carry the stage,
// an overall percentage, and the adapter name for scanner start/end
// milestones. Consumers (live progress, persisted logs) subscribe through a
// ProgressSink.
type ProgressEvent struct {
	JobID     types.ScanJobID   `json:"job_id"`
	Stage     types.ScanStage   `json:"stage"`
	Percent   int               `json:"percent"`
	Scanner   types.ScannerType `json:"scanner,omitempty"`
	Message   string            `json:"message,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// stagePercent maps the success-path stage order to cumulative progress.
var stagePercent = map[types.ScanStage]int{
	types.StageFetch:           10,
	types.StageScanning:        30,
	types.StageScannerComplete: 70,
	types.StageNormalizing:     85,
	types.StageComplete:        100,
	types.StageFailed:          100,
}

// StagePercent returns the cumulative progress percentage for a stage.
func StagePercent(stage types.ScanStage) int {
	if pct, ok := stagePercent[stage]; ok {
		return pct
	}
	return 0
}

// StageOrder is the ordered, non-repeating success path of a job execution.
var StageOrder = []types.ScanStage{
	types.StageFetch,
	types.StageScanning,
	types.StageScannerComplete,
	types.StageNormalizing,
	types.StageComplete,
}
