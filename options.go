package mlfq

import (
	"go.uber.org/zap"
)

const (
	// DefaultBoostInterval is the clock period, in work units, at which
	// queued processes are reset to the highest tier.
	DefaultBoostInterval = 100
)

// Options configure a Scheduler.
//
// All zero values are replaced with sensible defaults in FillDefaults.
type Options struct {
	// BoostInterval is the boost period in work units of the global
	// clock. UpdateTime triggers a priority boost whenever the clock
	// lands on an exact multiple of it.
	BoostInterval int

	// Logger receives structured dispatch, demotion, and boost events.
	Logger *zap.Logger

	// Trace receives one ExecutionRecord per dispatch that ran a process.
	Trace TracePolicy

	// Metrics receives counter updates for scheduler activity.
	Metrics MetricsPolicy
}

func (o *Options) FillDefaults() {
	if o.BoostInterval <= 0 {
		o.BoostInterval = DefaultBoostInterval
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Trace == nil {
		o.Trace = NoopTrace{}
	}
	if o.Metrics == nil {
		o.Metrics = &NoopMetrics{}
	}
}
