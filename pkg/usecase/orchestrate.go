package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/model"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/utils/logging"
)

// runScanners executes the adapters of the job's enabled scanner set
// concurrently against the working tree. A failing adapter contributes zero
// findings plus a warning; partial coverage beats total failure, so adapter
// errors never escape this function.
func (x *UseCase) runScanners(ctx context.Context, job *model.ScanJob, dir string) ([]*model.RawFinding, []model.AdapterResult) {
	enabled := make(map[types.ScannerType]bool, len(job.Scanners))
	for _, s := range job.Scanners {
		enabled[s] = true
	}

	var mu sync.Mutex
	var findings []*model.RawFinding
	var results []model.AdapterResult

	eg, egCtx := errgroup.WithContext(ctx)

	for _, sc := range x.clients.Scanners() {
		if !enabled[sc.Type()] {
			continue
		}

		eg.Go(func() error {
			x.publish(ctx, &model.ProgressEvent{
				JobID:     job.ID,
				Stage:     types.StageScanning,
				Percent:   model.StagePercent(types.StageScanning),
				Scanner:   sc.Type(),
				Message:   fmt.Sprintf("%s started", sc.Name()),
				Timestamp: logging.CtxTime(ctx),
			})

			out, err := sc.Run(egCtx, dir)
			result := model.AdapterResult{
				Name:    sc.Name(),
				Scanner: sc.Type(),
			}
			if out != nil {
				result.FindingCount = len(out.Findings)
				result.Errors = out.Errors
				result.DurationMS = out.Duration.Milliseconds()
			}
			if err != nil {
				result.Errors = append(result.Errors, err.Error())
			}
			result.Success = err == nil && (out == nil || len(out.Errors) == 0)

			if !result.Success {
				logging.From(ctx).Warn("scanner adapter degraded",
					slog.String("adapter", sc.Name()),
					slog.Any("jobID", job.ID),
					slog.Any("errors", result.Errors),
				)
			}

			mu.Lock()
			if result.Success && out != nil {
				findings = append(findings, out.Findings...)
			}
			results = append(results, result)
			mu.Unlock()

			x.publish(ctx, &model.ProgressEvent{
				JobID:     job.ID,
				Stage:     types.StageScanning,
				Percent:   model.StagePercent(types.StageScanning),
				Scanner:   sc.Type(),
				Message:   fmt.Sprintf("%s finished with %d findings", sc.Name(), result.FindingCount),
				Timestamp: logging.CtxTime(ctx),
			})

			// Degradation is recorded on the result, never propagated.
			return nil
		})
	}

	// The group never returns an error; Wait only joins the goroutines.
	_ = eg.Wait()

	return findings, results
}
