package report

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/linefit/line"
)

// ZapObserver logs every event as one structured zap entry.
// Diverged goes to Warn, everything else to Info.
// zap loggers are goroutine-safe, so one ZapObserver may serve concurrent runs.
type ZapObserver struct {
	log *zap.Logger
}

// NewZapObserver wraps l. A nil l yields a no-op logger.
func NewZapObserver(l *zap.Logger) *ZapObserver {
	if l == nil {
		l = zap.NewNop()
	}

	return &ZapObserver{log: l}
}

// lineField renders a line as a nested {m, b} object.
func lineField(key string, l line.Line) zap.Field {
	return zap.Object(key, zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		enc.AddFloat64("m", l.M)
		enc.AddFloat64("b", l.B)
		return nil
	}))
}

// Observe implements Observer.
func (z *ZapObserver) Observe(e Event) {
	log := z.log.With(zap.String("rule", e.Rule))
	switch e.Kind {
	case Start:
		log.Info("training started", lineField("initial", e.Initial), lineField("target", e.Target))
	case Progress:
		log.Info("progress", zap.Int("index", e.Index), lineField("line", e.Line))
	case Converged:
		log.Info("converged", zap.Int("index", e.Index))
	case Exhausted:
		log.Info("budget exhausted", zap.Int("steps", e.Index))
	case Diverged:
		log.Warn("diverged", zap.Int("index", e.Index), lineField("line", e.Line))
	case Final:
		log.Info("final", lineField("line", e.Line), lineField("target", e.Target))
	case Reference:
		log.Info("least-squares reference", lineField("line", e.Line))
	case Metrics:
		m := e.Metrics
		log.Info("metrics",
			zap.Int("count", m.Count),
			zap.Float64("absolute_error", m.AbsoluteError),
			zap.Float64("square_error", m.SquareError),
			zap.Float64("mean_absolute_error", m.MeanAbsoluteError),
			zap.Float64("mean_square_error", m.MeanSquareError),
			zap.Float64("rmse", m.RMSE),
		)
	default:
		log.Warn("unknown event", zap.Stringer("kind", e.Kind))
	}
}
