package mlfq

// ExecutionRecord describes one dispatch: which process ran, how much
// work it consumed, and how much it has left.
type ExecutionRecord struct {
	ProcessID int
	Executed  int
	Remaining int
}

// TracePolicy receives an ExecutionRecord for every dispatch that runs
// a process. Dispatches on an empty tier emit nothing.
//
// The hook is invoked synchronously from ExecuteProcess and is expected
// to be lightweight.
type TracePolicy interface {
	OnExecute(rec ExecutionRecord)
}

// NoopTrace is a TracePolicy that discards all records.
//
// It is the default when no trace is configured.
type NoopTrace struct{}

func (NoopTrace) OnExecute(ExecutionRecord) {}

//------------- RecorderTrace ----------------------------------

// RecorderTrace is a TracePolicy that appends every record to an
// in-memory slice, in dispatch order.
//
// Not safe for concurrent use, same as the Scheduler itself.
type RecorderTrace struct {
	Records []ExecutionRecord
}

func (t *RecorderTrace) OnExecute(rec ExecutionRecord) {
	t.Records = append(t.Records, rec)
}

// Reset discards all recorded entries.
func (t *RecorderTrace) Reset() { t.Records = nil }
