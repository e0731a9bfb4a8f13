//go:build debug

package mlfq

import (
	"sync/atomic"
)

var (
	dbgDispatched atomic.Int64
	dbgDemoted    atomic.Int64
	dbgCompleted  atomic.Int64
	dbgRetired    atomic.Int64
	dbgBoosted    atomic.Int64
)

type Stats struct {
	Dispatched int64
	Demoted    int64
	Completed  int64
	Retired    int64
	Boosted    int64
}

func statDispatched()    { dbgDispatched.Add(1) }
func statDemoted()       { dbgDemoted.Add(1) }
func statCompleted()     { dbgCompleted.Add(1) }
func statRetired()       { dbgRetired.Add(1) }
func statBoosted(n int)  { dbgBoosted.Add(int64(n)) }

func SnapshotStats() Stats {
	return Stats{
		Dispatched: dbgDispatched.Load(),
		Demoted:    dbgDemoted.Load(),
		Completed:  dbgCompleted.Load(),
		Retired:    dbgRetired.Load(),
		Boosted:    dbgBoosted.Load(),
	}
}

func PrintStat() {

	println(
		"dispatched / demoted / completed / retired / boosted :",
		dbgDispatched.Load(),
		dbgDemoted.Load(),
		dbgCompleted.Load(),
		dbgRetired.Load(),
		dbgBoosted.Load(),
	)
}
