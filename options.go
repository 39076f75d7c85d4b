package radixheap

// options holds the configurable parts of a Heap.
type options struct {
	capacity int
	logger   *Logger
	metrics  MetricsCollector
}

// Option configures a Heap at construction time.
type Option func(*options)

// WithCapacity pre-sizes every bucket with the given capacity hint. The hint
// is an allocation hint only, not a logical limit; buckets grow as needed.
// Negative values are treated as zero.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		if capacity < 0 {
			capacity = 0
		}
		o.capacity = capacity
	}
}

// WithLogger configures the logger used for debug output. Passing nil
// disables logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetricsCollector configures a metrics collector for monitoring push
// and pop behavior. Passing nil disables metrics collection.
func WithMetricsCollector(metrics MetricsCollector) Option {
	return func(o *options) {
		if metrics == nil {
			metrics = NoopMetricsCollector{}
		}
		o.metrics = metrics
	}
}
