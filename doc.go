// Package mlfq implements a multi-level feedback queue CPU scheduler
// simulation.
//
// Model
//
// A Scheduler owns an ordered table of priority tiers. Tier 0 is the
// highest priority; each tier has its own time quantum. Processes enter
// through AddProcess at the tier named by their Priority field, run one
// quantum at a time through ExecuteProcess, and drift downward: a
// process that does not finish within its quantum is demoted to the
// next lower tier. A global clock, advanced by dispatches and by
// UpdateTime, periodically triggers a priority boost that returns every
// queued process to tier 0 so that long-running work cannot starve.
//
// Dispatch order
//
// Within a tier, dispatch selects the most recently queued process
// (newest first). Demotion and boost append at the tail, so a process
// demoted into a tier is the next one dispatched from it unless more
// work arrives behind it. A process that exhausts its quantum at the
// lowest tier is retired from tracking rather than re-queued.
//
// Time
//
// Time is simulated in abstract work units. Every executed unit advances
// the scheduler clock; UpdateTime adds idle time on top. Whenever
// UpdateTime lands the clock on an exact multiple of the boost interval
// (100 units by default), a boost fires. The check is performed on each
// UpdateTime call, not only on the crossing transition.
//
// Concurrency
//
// The scheduler is synchronous and single-threaded. Every operation
// runs to completion before returning, holds no locks, and starts no
// goroutines. Callers sharing a Scheduler across goroutines must
// synchronize externally.
//
// Observability
//
// Dispatches emit ExecutionRecords through a pluggable TracePolicy, and
// counter updates flow through a MetricsPolicy. Both default to no-ops.
// Structured logging goes through an injected zap logger, a no-op
// logger by default. Building with the debug tag additionally enables
// package-level activity counters, see SnapshotStats and PrintStat.
//
// Intended use cases
//
// The package is a teaching-oriented simulator for scheduling
// fundamentals: ordering policy, demotion, and starvation avoidance.
// It does not model preemption by interrupt, I/O wait, multi-core
// execution, or dynamic arrival during a run.
package mlfq
