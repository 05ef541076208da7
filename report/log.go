package report

import (
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is the minimum severity a logger emits.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// LogConfig controls NewLogger.
type LogConfig struct {
	Name     string // logger name, shown in every line
	Level    Level
	ShowLine bool // add caller file:line
}

// DefaultLogConfig returns the development (debug, with caller) or production
// (info, no caller) preset.
func DefaultLogConfig(isDev bool) LogConfig {
	if isDev {
		return LogConfig{Name: "linefit", Level: LevelDebug, ShowLine: true}
	}

	return LogConfig{Name: "linefit", Level: LevelInfo}
}

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case LevelDebug:
		return zap.DebugLevel
	case LevelWarn:
		return zap.WarnLevel
	case LevelError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// NewLogger builds a console-encoded zap.Logger writing to w (os.Stdout when
// w is nil).
func NewLogger(cfg LogConfig, w io.Writer) *zap.Logger {
	if w == nil {
		w = os.Stdout
	}
	minLevel := cfg.Level.zapLevel()
	enabler := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= minLevel
	})

	levelEncoder := func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString("[" + level.CapitalString() + "]")
	}
	timeEncoder := func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
	}
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "line",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    levelEncoder,
		EncodeTime:     timeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), enabler)
	var opts []zap.Option
	if cfg.ShowLine {
		opts = append(opts, zap.AddCaller())
	}
	logger := zap.New(core, opts...)
	if cfg.Name != "" {
		logger = logger.Named(cfg.Name)
	}

	return logger
}
