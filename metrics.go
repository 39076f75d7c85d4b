package radixheap

import "sync/atomic"

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordPush is called after each push attempt. err is nil on success
	// and *ErrInvalidKey when the key was below the baseline.
	RecordPush(err error)

	// RecordPop is called after each successful pop. moved is the number of
	// entries relocated by the redistribution step (0 when the pop came out
	// of distance class 0 or emptied its bucket).
	RecordPop(moved int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector. Use
// this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordPush(error) {}
func (NoopMetricsCollector) RecordPop(int)    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	PushCount    atomic.Int64
	PushErrors   atomic.Int64
	PopCount     atomic.Int64
	MovedEntries atomic.Int64
}

// RecordPush implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPush(err error) {
	b.PushCount.Add(1)
	if err != nil {
		b.PushErrors.Add(1)
	}
}

// RecordPop implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPop(moved int) {
	b.PopCount.Add(1)
	b.MovedEntries.Add(int64(moved))
}
