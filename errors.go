package mlfq

import "errors"

var (
	ErrInvalidLevels   = errors.New("mlfq: number of levels must be positive")
	ErrQuantaMismatch  = errors.New("mlfq: time quanta length does not match level count")
	ErrNegativeQuantum = errors.New("mlfq: time quantum must be non-negative")
)
