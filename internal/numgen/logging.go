package numgen

import (
	"time"

	"go.uber.org/zap"
)

// LoggingGenerator is a decorator that logs every Generate call.
type LoggingGenerator struct {
	inner  Generator
	name   string
	logger *zap.Logger
}

// WithLogging wraps g so each Generate call is logged under name.
// A nil logger disables output.
func WithLogging(g Generator, name string, logger *zap.Logger) *LoggingGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingGenerator{
		inner:  g,
		name:   name,
		logger: logger.With(zap.String("generator", name)),
	}
}

func (l *LoggingGenerator) Generate(count int) ([]int, error) {
	start := time.Now()
	seq, err := l.inner.Generate(count)
	elapsed := time.Since(start)

	if err != nil {
		l.logger.Warn("generate failed",
			zap.Int("count", count),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
		return nil, err
	}

	l.logger.Debug("generated",
		zap.Int("count", count),
		zap.Int("len", len(seq)),
		zap.Duration("elapsed", elapsed))
	return seq, nil
}

func (l *LoggingGenerator) Display(p Printer) error {
	if err := l.inner.Display(p); err != nil {
		l.logger.Warn("display failed", zap.Error(err))
		return err
	}
	return nil
}

// Name returns the label the generator logs under.
func (l *LoggingGenerator) Name() string {
	return l.name
}
