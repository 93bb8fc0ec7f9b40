package infra

import (
	"context"
	"log/slog"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/interfaces"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/model"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/utils/logging"
)

// LogProgressSink emits progress events to the structured logger. It is the
// default sink and never blocks.
type LogProgressSink struct{}

var _ interfaces.ProgressSink = (*LogProgressSink)(nil)

func NewLogProgressSink() *LogProgressSink {
	return &LogProgressSink{}
}

func (x *LogProgressSink) Publish(ctx context.Context, ev *model.ProgressEvent) {
	logging.From(ctx).Info("scan progress",
		slog.Any("jobID", ev.JobID),
		slog.Any("stage", ev.Stage),
		slog.Int("percent", ev.Percent),
		slog.Any("scanner", ev.Scanner),
		slog.String("message", ev.Message),
	)
}
