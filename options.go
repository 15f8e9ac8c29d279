package arx

import "github.com/yxp1992/arx/itemindex"

// Compression selects how snapshots are compressed.
type Compression = itemindex.Compression

// Supported snapshot compressions.
const (
	CompressionNone = itemindex.CompressionNone
	CompressionLZ4  = itemindex.CompressionLZ4
	CompressionZSTD = itemindex.CompressionZSTD
)

type options struct {
	shards           int
	logger           *Logger
	metricsCollector MetricsCollector
	compression      Compression
}

func defaultOptions() options {
	return options{
		shards:           1,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		compression:      CompressionNone,
	}
}

func applyOptions(optFns []Option) options {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}

// Option configures Build, Save and Load.
type Option func(*options)

// WithShards configures the number of row shards scanned in parallel by Build.
//
// Each shard is scanned into a private partial index; partials are merged on
// the calling goroutine once every shard is done. If shards <= 1 the scan is
// sequential.
func WithShards(shards int) Option {
	return func(o *options) {
		o.shards = shards
	}
}

// WithLogger configures structured logging.
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &arx.BasicMetricsCollector{}
//	idx, _ := arx.Build(ctx, rows, arx.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithCompression configures the compression Save applies to snapshots.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}
