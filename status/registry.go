package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Well-known metric keys
const (
	PathPlanned      = "path.planned"
	PathFallback     = "path.fallback"
	PathLength       = "path.length"
	LettersCollected = "letters.collected"
	LettersRejected  = "letters.rejected"
	WordsCompleted   = "words.completed"
	BodySegments     = "body.segments"
)

// Registry is the telemetry facade
// Systems cache pointers at construction; updates write directly to atomics
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Gauges   *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Gauges:   NewMetricMap[AtomicFloat](),
	}
}

// Counter returns the value of a counter, zero if never registered
func (r *Registry) Counter(key string) int64 {
	if !r.Counters.Has(key) {
		return 0
	}
	return r.Counters.Get(key).Load()
}

// Summary renders all metrics as "key=value" pairs in key order
func (r *Registry) Summary() string {
	var b strings.Builder
	r.Counters.Range(func(key string, v *atomic.Int64) {
		fmt.Fprintf(&b, "%s=%d ", key, v.Load())
	})
	r.Gauges.Range(func(key string, v *AtomicFloat) {
		fmt.Fprintf(&b, "%s=%.1f ", key, v.Get())
	})
	return strings.TrimSpace(b.String())
}
