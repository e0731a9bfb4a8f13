// tier.go
package mlfq

const (
	initialTierCapacity = 16
)

// tier is a growable ring buffer holding the processes queued at one
// priority level.
//
// Arrivals (AddProcess, demotion, boost) push at the tail. Dispatch also
// pops from the tail, so the most recently queued process runs next.
// The head end is only consumed when the tier is drained during a boost.
type tier struct {
	buf        []*Process // circular buffer
	head, tail int        // read/write indices
	size       int        // number of processes currently buffered
	capacity   int
}

// newTier creates an empty tier with the given initial capacity.
// The buffer grows as needed; pushes never drop.
func newTier(cap int) *tier {
	if cap <= 0 {
		cap = initialTierCapacity
	}
	return &tier{
		buf:      make([]*Process, cap),
		capacity: cap,
	}
}

// len returns the number of processes currently queued in the tier.
func (q *tier) len() int { return q.size }

// pushTail appends a process at the tail of the tier.
func (q *tier) pushTail(p *Process) {
	if q.size == q.capacity {
		q.grow()
	}
	q.buf[q.tail] = p
	q.tail++
	if q.tail == q.capacity {
		q.tail = 0
	}
	q.size++
}

// popTail removes and returns the most recently pushed process.
//
// If the tier is empty, returns nil and false.
func (q *tier) popTail() (*Process, bool) {
	if q.size == 0 {
		return nil, false
	}
	q.tail--
	if q.tail < 0 {
		q.tail = q.capacity - 1
	}
	p := q.buf[q.tail]
	q.buf[q.tail] = nil // avoid memory leak
	q.size--
	return p, true
}

// drain removes every process from the tier and returns them in pop
// order (tail first).
func (q *tier) drain() []*Process {
	if q.size == 0 {
		return nil
	}
	out := make([]*Process, 0, q.size)
	for {
		p, ok := q.popTail()
		if !ok {
			break
		}
		out = append(out, p)
	}
	q.head = 0
	q.tail = 0
	return out
}

// snapshot returns the queued processes in arrival order (head to tail).
// The returned slice is a copy; the buffer is not aliased.
func (q *tier) snapshot() []*Process {
	out := make([]*Process, 0, q.size)
	for i := 0; i < q.size; i++ {
		out = append(out, q.buf[(q.head+i)%q.capacity])
	}
	return out
}

// grow doubles the buffer, unwrapping the circular layout so that
// head restarts at index 0.
func (q *tier) grow() {
	newCap := q.capacity * 2
	buf := make([]*Process, newCap)
	for i := 0; i < q.size; i++ {
		buf[i] = q.buf[(q.head+i)%q.capacity]
	}
	q.buf = buf
	q.head = 0
	q.tail = q.size
	q.capacity = newCap
}
