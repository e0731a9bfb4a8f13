package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRun_DefaultScenario(t *testing.T) {
	out, err := execute(t, "run")
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := strings.Join([]string{
		"Executed Process ID: 2, Time Executed: 2, Time Remaining: 1",
		"Executed Process ID: 1, Time Executed: 2, Time Remaining: 8",
		"Executed Process ID: 1, Time Executed: 4, Time Remaining: 4",
		"Executed Process ID: 2, Time Executed: 1, Time Remaining: 0",
		"Executed Process ID: 3, Time Executed: 4, Time Remaining: 1",
		"Executed Process ID: 3, Time Executed: 1, Time Remaining: 0",
		"Executed Process ID: 1, Time Executed: 4, Time Remaining: 0",
		"Queue 0: []",
		"Queue 1: []",
		"Queue 2: []",
		"clock=118 dispatched=7 demoted=4 completed=3 retired=0 boosted=0",
		"",
	}, "\n")
	if out != want {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRun_Quiet(t *testing.T) {
	out, err := execute(t, "run", "--quiet")
	if err != nil {
		t.Fatalf("run --quiet: %v", err)
	}
	if strings.Contains(out, "Executed Process ID") {
		t.Fatalf("quiet run still printed trace lines:\n%s", out)
	}
	if !strings.Contains(out, "clock=118") {
		t.Fatalf("missing summary line:\n%s", out)
	}
}

func TestRun_ScenarioFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "single.yaml")
	data := `
levels: 1
time_quanta: [2]
processes:
  - id: 9
    priority: 0
    remaining_time: 5
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}

	out, err := execute(t, "run", "--scenario", path)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	// A single tier: the process runs one quantum, then is retired
	// unfinished because there is no lower tier.
	if !strings.Contains(out, "Executed Process ID: 9, Time Executed: 2, Time Remaining: 3") {
		t.Fatalf("missing dispatch line:\n%s", out)
	}
	if !strings.Contains(out, "clock=2 dispatched=1 demoted=0 completed=0 retired=1 boosted=0") {
		t.Fatalf("missing summary line:\n%s", out)
	}
}

func TestRun_BadScenarioFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("levels: 0\n"), 0o644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}

	if _, err := execute(t, "run", "--scenario", path); err == nil {
		t.Fatalf("expected error for invalid scenario")
	}
}

func TestRun_BadLogLevel(t *testing.T) {
	if _, err := execute(t, "run", "--log-level", "noisy"); err == nil {
		t.Fatalf("expected error for bad log level")
	}
}
