// Command linefit runs the reference experiment: a random target line, a noisy
// training set, and the Simple, Square and Absolute tricks trained from the
// same random initial line, each scored on an independent test set.
//
// There are no flags; constants come from experiment.DefaultConfig and the
// seed from the wall clock (logged so a run can be reproduced in code).
package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/linefit/experiment"
	"github.com/katalvlaran/linefit/report"
)

func main() {
	logger := report.NewLogger(report.DefaultLogConfig(false), os.Stdout)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := run(ctx, logger)
	stop()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *zap.Logger) error {
	cfg := experiment.DefaultConfig()
	cfg.Seed = time.Now().UnixNano()
	logger.Info("experiment",
		zap.Int64("seed", cfg.Seed),
		zap.Stringer("mode", cfg.Mode),
		zap.Int("budget", cfg.Budget),
		zap.Int("train_length", cfg.TrainLength),
		zap.Int("test_length", cfg.TestLength),
		zap.Float64("variation", cfg.Variation),
		zap.Float64("learning_rate", cfg.LearningRate),
	)

	start := time.Now()
	sum, err := experiment.Run(ctx, cfg, report.NewZapObserver(logger))
	if err != nil {
		logger.Error("experiment failed", zap.Error(err))
		return err
	}

	for _, o := range sum.Outcomes {
		fields := []zap.Field{
			zap.String("rule", o.Rule),
			zap.Stringer("state", o.Result.State),
			zap.Int("steps", o.Result.Steps),
			zap.Stringer("line", o.Result.Line),
			zap.Stringer("target", sum.Target),
		}
		if o.Evaluated {
			fields = append(fields, zap.Float64("rmse", o.Metrics.RMSE))
		}
		logger.Info("summary", fields...)
	}
	logger.Info("done", zap.Stringer("reference", sum.Reference), zap.Duration("elapsed", time.Since(start)))

	return nil
}
