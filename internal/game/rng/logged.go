package rng

import "go.uber.org/zap"

// LoggedSource wraps a Source and logs every draw at debug level, giving an
// audit trail of the random stream consumed by a generation run.
type LoggedSource struct {
	src    Source
	logger *zap.Logger
	draws  int
}

// NewLoggedSource creates a LoggedSource that draws from src and logs to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedSource(src Source, logger *zap.Logger) *LoggedSource {
	return &LoggedSource{src: src, logger: logger}
}

// Float64 draws from the wrapped source and logs the value.
func (l *LoggedSource) Float64() float64 {
	v := l.src.Float64()
	l.draws++
	l.logger.Debug("random draw",
		zap.Int("draw", l.draws),
		zap.String("kind", "float"),
		zap.Float64("value", v),
	)
	return v
}

// Intn draws from the wrapped source and logs the bound and value.
//
// Precondition: n > 0.
func (l *LoggedSource) Intn(n int) int {
	v := l.src.Intn(n)
	l.draws++
	l.logger.Debug("random draw",
		zap.Int("draw", l.draws),
		zap.String("kind", "int"),
		zap.Int("bound", n),
		zap.Int("value", v),
	)
	return v
}

// Draws returns how many values have been drawn through this wrapper.
func (l *LoggedSource) Draws() int { return l.draws }
