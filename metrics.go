package mlfq

import (
	"sync/atomic"
)

// MetricsPolicy defines hooks used by the scheduler to report
// dispatch and queue-movement activity.
//
// All methods are expected to be lightweight and non-blocking.
type MetricsPolicy interface {

	// IncDispatched increments the dispatched processes counter.
	IncDispatched()

	// IncDemoted increments the demotions counter.
	IncDemoted()

	// IncCompleted increments the completed processes counter.
	IncCompleted()

	// IncRetired increments the counter of processes dropped
	// unfinished at the lowest tier.
	IncRetired()

	// AddBoosted adds n to the boosted processes counter.
	//
	// This is typically used when a priority boost moves a batch of
	// processes back to the highest tier.
	AddBoosted(n int64)
}

// AtomicMetrics is a lock-free metrics implementation backed by atomics.
//
// Writes are optimized for hot paths.
// Reads are intended for cold-path observation.
type AtomicMetrics struct {
	dispatched atomic.Uint64
	demoted    atomic.Uint64
	completed  atomic.Uint64
	retired    atomic.Uint64
	boosted    atomic.Uint64
}

// Dispatched returns the total number of dispatches that ran a process.
func (m *AtomicMetrics) Dispatched() uint64 { return m.dispatched.Load() }

// Demoted returns the total number of demotions to a lower tier.
func (m *AtomicMetrics) Demoted() uint64 { return m.demoted.Load() }

// Completed returns the total number of processes that finished.
func (m *AtomicMetrics) Completed() uint64 { return m.completed.Load() }

// Retired returns the total number of processes dropped unfinished at
// the lowest tier.
func (m *AtomicMetrics) Retired() uint64 { return m.retired.Load() }

// Boosted returns the total number of processes moved back to the
// highest tier by priority boosts.
func (m *AtomicMetrics) Boosted() uint64 { return m.boosted.Load() }

// IncDispatched increments the dispatched counter by one.
func (m *AtomicMetrics) IncDispatched() { m.dispatched.Add(1) }

// IncDemoted increments the demotions counter by one.
func (m *AtomicMetrics) IncDemoted() { m.demoted.Add(1) }

// IncCompleted increments the completed counter by one.
func (m *AtomicMetrics) IncCompleted() { m.completed.Add(1) }

// IncRetired increments the retired counter by one.
func (m *AtomicMetrics) IncRetired() { m.retired.Add(1) }

// AddBoosted adds n to the boosted counter.
func (m *AtomicMetrics) AddBoosted(n int64) { m.boosted.Add(uint64(n)) }

//------------- NoopMetrics ----------------------------------

// NoopMetrics is a MetricsPolicy implementation that discards
// all metric updates.
//
// It can be used when metrics collection is disabled and
// zero overhead is desired.
type NoopMetrics struct{}

func (m *NoopMetrics) IncDispatched()     {}
func (m *NoopMetrics) IncDemoted()        {}
func (m *NoopMetrics) IncCompleted()      {}
func (m *NoopMetrics) IncRetired()        {}
func (m *NoopMetrics) AddBoosted(n int64) {}
