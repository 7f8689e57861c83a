package logs

import (
	"context"
	"time"
)

// TimeStage logs the start of a named stage; the returned func logs its duration and outcome.
type TimeStage func(ctx context.Context, stage string) (done func(err error))

func (Module) TimeStage(
	logger Logger,
) TimeStage {
	return func(ctx context.Context, stage string) func(error) {
		logger.DebugContext(ctx, "stage start", "stage", stage)
		start := time.Now()
		return func(err error) {
			elapsed := time.Since(start)
			if err != nil {
				logger.WarnContext(ctx, "stage failed",
					"stage", stage,
					"elapsed", elapsed,
					"error", err,
				)
				return
			}
			logger.InfoContext(ctx, "stage done",
				"stage", stage,
				"elapsed", elapsed,
			)
		}
	}
}
