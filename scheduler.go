package mlfq

import (
	"fmt"

	"go.uber.org/zap"
)

// Scheduler is a multi-level feedback queue. It owns an ordered table of
// tiers (index 0 is the highest priority), a per-tier time quantum, and a
// global clock.
//
// The scheduler is synchronous and single-threaded: every operation runs
// to completion before returning, and no internal locking is provided.
// Sharing a Scheduler across goroutines requires external synchronization.
type Scheduler struct {
	tiers       []*tier
	numLevels   int
	timeQuanta  []int
	currentTime int

	boostInterval int
	logger        *zap.Logger
	trace         TracePolicy
	metrics       MetricsPolicy
}

// New creates a Scheduler with numLevels empty tiers and the given
// per-tier time quanta. The clock starts at zero.
//
// numLevels must be positive, len(timeQuanta) must equal numLevels, and
// every quantum must be non-negative. A zero quantum is legal: dispatch
// at that tier executes zero work units and demotes.
func New(numLevels int, timeQuanta []int, opts Options) (*Scheduler, error) {
	if numLevels <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLevels, numLevels)
	}
	if len(timeQuanta) != numLevels {
		return nil, fmt.Errorf("%w: %d quanta for %d levels", ErrQuantaMismatch, len(timeQuanta), numLevels)
	}
	for i, q := range timeQuanta {
		if q < 0 {
			return nil, fmt.Errorf("%w: quantum %d at level %d", ErrNegativeQuantum, q, i)
		}
	}
	opts.FillDefaults()

	tiers := make([]*tier, numLevels)
	for i := range tiers {
		tiers[i] = newTier(initialTierCapacity)
	}

	return &Scheduler{
		tiers:         tiers,
		numLevels:     numLevels,
		timeQuanta:    append([]int(nil), timeQuanta...),
		boostInterval: opts.BoostInterval,
		logger:        opts.Logger,
		trace:         opts.Trace,
		metrics:       opts.Metrics,
	}, nil
}

// AddProcess hands a process over to the scheduler.
//
// The process is appended at the tail of the tier named by its Priority
// field. An out-of-range priority is not an error: it is silently
// clamped to the nearest valid tier (too high lands on the lowest tier,
// negative on the highest). The Priority field itself is left untouched;
// tier membership is positional. The clock does not advance.
func (s *Scheduler) AddProcess(p *Process) {
	idx := p.Priority
	if idx >= s.numLevels {
		idx = s.numLevels - 1
	}
	if idx < 0 {
		idx = 0
	}
	s.tiers[idx].pushTail(p)
	s.logger.Debug("process queued",
		zap.Int("id", p.ID),
		zap.Int("tier", idx),
		zap.Int("remaining", p.RemainingTime),
	)
}

// ExecuteProcess runs one dispatch at the given tier.
//
// The most recently queued process at that tier is selected and executes
// for at most the tier's quantum. RemainingTime, TotalExecutedTime, and
// the global clock advance by the executed amount, and one
// ExecutionRecord is emitted through the trace hook.
//
// An unfinished process is demoted to the tail of the next lower tier.
// An unfinished process already at the lowest tier is retired from
// tracking instead of being re-queued. A finished process is never
// re-queued anywhere.
//
// Dispatching an empty tier is a no-op. A tier index outside
// [0, NumLevels) panics; unlike AddProcess, it is never clamped.
func (s *Scheduler) ExecuteProcess(tierIndex int) {
	p, ok := s.tiers[tierIndex].popTail()
	if !ok {
		return
	}

	executed := p.RemainingTime
	if quantum := s.timeQuanta[tierIndex]; executed > quantum {
		executed = quantum
	}
	p.RemainingTime -= executed
	p.TotalExecutedTime += executed
	s.currentTime += executed

	s.metrics.IncDispatched()
	statDispatched()
	s.trace.OnExecute(ExecutionRecord{
		ProcessID: p.ID,
		Executed:  executed,
		Remaining: p.RemainingTime,
	})
	s.logger.Debug("process dispatched",
		zap.Int("id", p.ID),
		zap.Int("tier", tierIndex),
		zap.Int("executed", executed),
		zap.Int("remaining", p.RemainingTime),
		zap.Int("time", s.currentTime),
	)

	switch {
	case p.RemainingTime == 0:
		s.metrics.IncCompleted()
		statCompleted()
		s.logger.Info("process completed",
			zap.Int("id", p.ID),
			zap.Int("total_executed", p.TotalExecutedTime),
			zap.Int("time", s.currentTime),
		)
	case tierIndex+1 < s.numLevels:
		p.Priority = tierIndex + 1
		s.tiers[tierIndex+1].pushTail(p)
		s.metrics.IncDemoted()
		statDemoted()
		s.logger.Debug("process demoted",
			zap.Int("id", p.ID),
			zap.Int("tier", tierIndex+1),
		)
	default:
		// Quantum exhausted at the lowest tier: the process leaves the
		// tier table unfinished and is no longer tracked.
		s.metrics.IncRetired()
		statRetired()
		s.logger.Warn("process retired unfinished at lowest tier",
			zap.Int("id", p.ID),
			zap.Int("remaining", p.RemainingTime),
		)
	}
}

// PriorityBoost drains every tier below the highest and re-queues each
// drained process at the tail of tier 0 with its Priority reset.
//
// Tier 0 is untouched. RemainingTime and TotalExecutedTime do not change,
// and neither does the clock.
func (s *Scheduler) PriorityBoost() {
	moved := 0
	for idx := 1; idx < s.numLevels; idx++ {
		for _, p := range s.tiers[idx].drain() {
			p.Priority = 0
			s.tiers[0].pushTail(p)
			moved++
		}
	}
	if moved > 0 {
		s.metrics.AddBoosted(int64(moved))
		statBoosted(moved)
	}
	s.logger.Debug("priority boost",
		zap.Int("moved", moved),
		zap.Int("time", s.currentTime),
	)
}

// UpdateTime advances the global clock by elapsed work units, which must
// be non-negative. If the clock lands on an exact multiple of the boost
// interval, a priority boost fires.
//
// The boundary check runs on every call: UpdateTime(0) on a clock already
// at a multiple of the interval boosts again, which is harmless on an
// already-boosted tier table.
func (s *Scheduler) UpdateTime(elapsed int) {
	s.currentTime += elapsed
	if s.currentTime%s.boostInterval == 0 {
		s.PriorityBoost()
	}
}

// NumLevels returns the number of priority tiers.
func (s *Scheduler) NumLevels() int { return s.numLevels }

// CurrentTime returns the global clock value.
func (s *Scheduler) CurrentTime() int { return s.currentTime }

// BoostInterval returns the configured boost period.
func (s *Scheduler) BoostInterval() int { return s.boostInterval }

// TimeQuantum returns the quantum of the given tier.
// It panics if the tier index is out of range.
func (s *Scheduler) TimeQuantum(tierIndex int) int { return s.timeQuanta[tierIndex] }

// Len returns the total number of processes queued across all tiers.
func (s *Scheduler) Len() int {
	n := 0
	for _, t := range s.tiers {
		n += t.len()
	}
	return n
}

// TierLen returns the number of processes queued at the given tier.
// It panics if the tier index is out of range.
func (s *Scheduler) TierLen(tierIndex int) int { return s.tiers[tierIndex].len() }

// Processes returns a copy of the given tier's contents in arrival order
// (dispatch pops from the end). The records themselves are shared, not
// copied. It panics if the tier index is out of range.
func (s *Scheduler) Processes(tierIndex int) []*Process {
	return s.tiers[tierIndex].snapshot()
}
