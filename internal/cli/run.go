package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/azargarov/mlfq"
	"github.com/azargarov/mlfq/scenario"
)

var flagScenario string

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a scheduling scenario to completion",
		Long: "Run builds a scheduler from a scenario file (or the built-in\n" +
			"default scenario), injects its processes, drains every tier in\n" +
			"priority order, applies the post-run clock advance, and prints the\n" +
			"final tier contents.",
		RunE: runScenario,
	}

	cmd.Flags().StringVar(&flagScenario, "scenario", "", "Scenario YAML file (default: built-in scenario)")

	return cmd
}

// consoleTrace prints one line per dispatch.
type consoleTrace struct {
	w io.Writer
}

func (t consoleTrace) OnExecute(rec mlfq.ExecutionRecord) {
	fmt.Fprintf(t.w, "Executed Process ID: %d, Time Executed: %d, Time Remaining: %d\n",
		rec.ProcessID, rec.Executed, rec.Remaining)
}

func runScenario(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	sc := scenario.Default()
	if flagScenario != "" {
		loaded, err := scenario.Load(flagScenario)
		if err != nil {
			return err
		}
		sc = loaded
	}

	logger, err := newLogger(flagLogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	var trace mlfq.TracePolicy = consoleTrace{w: out}
	if flagQuiet {
		trace = mlfq.NoopTrace{}
	}

	metrics := &mlfq.AtomicMetrics{}
	sched, err := mlfq.New(sc.Levels, sc.TimeQuanta, mlfq.Options{
		BoostInterval: sc.BoostInterval,
		Logger:        logger,
		Trace:         trace,
		Metrics:       metrics,
	})
	if err != nil {
		return err
	}

	for _, ps := range sc.Processes {
		sched.AddProcess(&mlfq.Process{
			ID:            ps.ID,
			Priority:      ps.Priority,
			RemainingTime: ps.RemainingTime,
		})
	}

	// Drain tier by tier in priority order.
	for tier := 0; tier < sched.NumLevels(); tier++ {
		for sched.TierLen(tier) > 0 {
			sched.ExecuteProcess(tier)
		}
	}

	if sc.PostRunElapsed > 0 {
		sched.UpdateTime(sc.PostRunElapsed)
	}

	for tier := 0; tier < sched.NumLevels(); tier++ {
		fmt.Fprintf(out, "Queue %d: %v\n", tier, sched.Processes(tier))
	}
	fmt.Fprintf(out, "clock=%d dispatched=%d demoted=%d completed=%d retired=%d boosted=%d\n",
		sched.CurrentTime(), metrics.Dispatched(), metrics.Demoted(),
		metrics.Completed(), metrics.Retired(), metrics.Boosted())

	return nil
}
