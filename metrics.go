package setcover

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    coverCounter   prometheus.Counter
//	    coverHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordCover(mode setcover.Mode, sets, coverSize, rounds int, duration time.Duration, err error) {
//	    p.coverCounter.Inc()
//	    p.coverHistogram.Observe(duration.Seconds())
//	}
type MetricsCollector interface {
	// RecordCover is called after each cover computation.
	// sets is the number of input sets, coverSize the number of chosen sets,
	// rounds the number of greedy rounds that selected a set.
	// err is nil if successful.
	RecordCover(mode Mode, sets, coverSize, rounds int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCover(Mode, int, int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	CoverCount      atomic.Int64
	CoverErrors     atomic.Int64
	CoverTotalNanos atomic.Int64
	NaiveCount      atomic.Int64
	BitsetCount     atomic.Int64
	SetsScanned     atomic.Int64
	SetsChosen      atomic.Int64
	Rounds          atomic.Int64
}

// RecordCover implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCover(mode Mode, sets, coverSize, rounds int, duration time.Duration, err error) {
	b.CoverCount.Add(1)
	b.CoverTotalNanos.Add(duration.Nanoseconds())
	switch mode {
	case ModeNaive:
		b.NaiveCount.Add(1)
	case ModeBitset:
		b.BitsetCount.Add(1)
	}
	b.SetsScanned.Add(int64(sets))
	b.SetsChosen.Add(int64(coverSize))
	b.Rounds.Add(int64(rounds))
	if err != nil {
		b.CoverErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		CoverCount:    b.CoverCount.Load(),
		CoverErrors:   b.CoverErrors.Load(),
		CoverAvgNanos: b.getAvgCoverNanos(),
		NaiveCount:    b.NaiveCount.Load(),
		BitsetCount:   b.BitsetCount.Load(),
		SetsScanned:   b.SetsScanned.Load(),
		SetsChosen:    b.SetsChosen.Load(),
		Rounds:        b.Rounds.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgCoverNanos() int64 {
	count := b.CoverCount.Load()
	if count == 0 {
		return 0
	}
	return b.CoverTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	CoverCount    int64
	CoverErrors   int64
	CoverAvgNanos int64
	NaiveCount    int64
	BitsetCount   int64
	SetsScanned   int64
	SetsChosen    int64
	Rounds        int64
}
