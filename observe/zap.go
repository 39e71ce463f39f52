package observe

import (
	"go.uber.org/zap"

	"github.com/aponysus/cronista/chronicle"
)

// LoggingObserver mirrors recorded rows onto a zap logger. It writes through
// the logger's own sink, so its output is not subject to stdout capture.
type LoggingObserver struct {
	logger *zap.Logger
}

// NewLoggingObserver wraps logger; a nil logger disables output.
func NewLoggingObserver(logger *zap.Logger) *LoggingObserver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingObserver{logger: logger}
}

func (l *LoggingObserver) OnStart(info CallInfo) {
	l.logger.Debug("recorded call starting",
		zap.String("function", info.Label),
		zap.String("start_time", info.StartTime),
	)
}

func (l *LoggingObserver) OnRow(label string, row chronicle.Row) {
	fields := []zap.Field{
		zap.Int("ops", row.Ops),
		zap.String("function", row.Function),
		zap.Stringer("outcome", row.Outcome),
		zap.Float64("run_time", row.RunTime),
	}
	if row.Message != "" {
		fields = append(fields, zap.String("message", row.Message))
	}
	if row.Inspector != nil {
		fields = append(fields, zap.Any("inspector", row.Inspector))
	}

	if row.Outcome == chronicle.OutcomeSuccess {
		l.logger.Info("recorded call succeeded", fields...)
		return
	}
	l.logger.Warn("recorded call failed", fields...)
}
