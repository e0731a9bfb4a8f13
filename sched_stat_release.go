//go:build !debug

package mlfq

type Stats struct{}

func statDispatched()   {}
func statDemoted()      {}
func statCompleted()    {}
func statRetired()      {}
func statBoosted(n int) {}

func SnapshotStats() Stats { return Stats{} }

func PrintStat() {}
