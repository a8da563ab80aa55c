package setcover

import (
	"log/slog"
)

type options struct {
	bitmap           Bitmap
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a cover computation.
type Option func(*options)

func applyOptions(optFns []Option) options {
	opts := options{
		bitmap:           DenseBitmap,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return opts
}

// WithBitmap configures the bit-vector representation used by ModeBitset.
// It has no effect on ModeNaive.
//
// Example:
//
//	cover, err := setcover.Cover(sets, setcover.ModeBitset, setcover.WithBitmap(setcover.RoaringBitmap))
func WithBitmap(b Bitmap) Option {
	return func(o *options) {
		o.bitmap = b
	}
}

// WithMetricsCollector configures a metrics collector for monitoring covers.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &setcover.BasicMetricsCollector{}
//	cover, _ := setcover.Cover(sets, setcover.ModeBitset, setcover.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
//	fmt.Printf("Covers: %d, Avg latency: %dns\n", stats.CoverCount, stats.CoverAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := setcover.NewJSONLogger(slog.LevelDebug)
//	cover, _ := setcover.Cover(sets, setcover.ModeNaive, setcover.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}
