// Package scenario describes simulation runs for the mlfq scheduler:
// how many tiers to build, the per-tier quanta, and the processes to
// inject before the drain loop starts.
//
// Scenarios are plain YAML documents:
//
//	levels: 3
//	time_quanta: [2, 4, 8]
//	boost_interval: 100
//	post_run_elapsed: 100
//	processes:
//	  - id: 1
//	    priority: 0
//	    remaining_time: 10
package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidLevels    = errors.New("scenario: levels must be positive")
	ErrQuantaMismatch   = errors.New("scenario: time_quanta length does not match levels")
	ErrNegativeQuantum  = errors.New("scenario: time quantum must be non-negative")
	ErrNegativeTime     = errors.New("scenario: time value must be non-negative")
	ErrDuplicateProcess = errors.New("scenario: duplicate process id")
	ErrNoProcesses      = errors.New("scenario: at least one process is required")
)

// ProcessSpec is one process entry of a scenario file.
type ProcessSpec struct {
	ID            int `yaml:"id"`
	Priority      int `yaml:"priority"`
	RemainingTime int `yaml:"remaining_time"`
}

// Scenario is a complete simulation description.
type Scenario struct {
	// Levels is the number of priority tiers.
	Levels int `yaml:"levels"`

	// TimeQuanta holds one quantum per tier, highest priority first.
	TimeQuanta []int `yaml:"time_quanta"`

	// BoostInterval overrides the scheduler's boost period.
	// Zero means use the scheduler default.
	BoostInterval int `yaml:"boost_interval,omitempty"`

	// PostRunElapsed is the clock advance issued once the drain loop
	// has emptied every tier.
	PostRunElapsed int `yaml:"post_run_elapsed,omitempty"`

	// Processes are injected before the drain loop, in order.
	Processes []ProcessSpec `yaml:"processes"`
}

// Default returns the built-in scenario: three tiers with
// quanta 2/4/8, three processes, and a 100-unit clock advance after the
// drain loop.
func Default() *Scenario {
	return &Scenario{
		Levels:         3,
		TimeQuanta:     []int{2, 4, 8},
		PostRunElapsed: 100,
		Processes: []ProcessSpec{
			{ID: 1, Priority: 0, RemainingTime: 10},
			{ID: 2, Priority: 0, RemainingTime: 3},
			{ID: 3, Priority: 1, RemainingTime: 5},
		},
	}
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return s, nil
}

// Parse decodes a YAML scenario document and validates it.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scenario: parse: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the scenario for construction-time errors: the same
// conditions the scheduler rejects, plus file-level mistakes (duplicate
// ids, negative times) that the scheduler by design does not defend
// against.
func (s *Scenario) Validate() error {
	if s.Levels <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidLevels, s.Levels)
	}
	if len(s.TimeQuanta) != s.Levels {
		return fmt.Errorf("%w: %d quanta for %d levels", ErrQuantaMismatch, len(s.TimeQuanta), s.Levels)
	}
	for i, q := range s.TimeQuanta {
		if q < 0 {
			return fmt.Errorf("%w: quantum %d at level %d", ErrNegativeQuantum, q, i)
		}
	}
	if s.BoostInterval < 0 {
		return fmt.Errorf("%w: boost_interval %d", ErrNegativeTime, s.BoostInterval)
	}
	if s.PostRunElapsed < 0 {
		return fmt.Errorf("%w: post_run_elapsed %d", ErrNegativeTime, s.PostRunElapsed)
	}
	if len(s.Processes) == 0 {
		return ErrNoProcesses
	}
	seen := make(map[int]struct{}, len(s.Processes))
	for _, p := range s.Processes {
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateProcess, p.ID)
		}
		seen[p.ID] = struct{}{}
		if p.RemainingTime < 0 {
			return fmt.Errorf("%w: process %d remaining_time %d", ErrNegativeTime, p.ID, p.RemainingTime)
		}
	}
	return nil
}
