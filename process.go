package mlfq

import "fmt"

// Process is a single schedulable unit of work tracked by the Scheduler.
//
// Processes are created by the caller and handed over via AddProcess.
// The scheduler mutates them in place during dispatch and boost, and
// drops them from tracking once RemainingTime reaches zero. There is
// no completed list; a finished process simply leaves the tier table.
type Process struct {
	// ID is an opaque identifier assigned by the caller. The scheduler
	// never validates it for uniqueness and never reuses it.
	ID int

	// Priority is the tier index the process currently (or most recently)
	// belonged to. It is rewritten on demotion and boost. Membership is
	// positional: the tier holding the record is authoritative, not this field.
	Priority int

	// RemainingTime is the amount of work units left until completion.
	// It only decreases, and never below zero.
	RemainingTime int

	// TotalExecutedTime accumulates the work units consumed so far.
	TotalExecutedTime int
}

// Finished reports whether the process has no work left.
func (p *Process) Finished() bool { return p.RemainingTime == 0 }

func (p *Process) String() string {
	return fmt.Sprintf("{id:%d prio:%d rem:%d exec:%d}",
		p.ID, p.Priority, p.RemainingTime, p.TotalExecutedTime)
}
