package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		description string
		input       string
		expected    *Scenario
		expectedErr error
	}{
		{
			description: "default scenario",
			input: `
levels: 3
time_quanta: [2, 4, 8]
post_run_elapsed: 100
processes:
  - id: 1
    priority: 0
    remaining_time: 10
  - id: 2
    priority: 0
    remaining_time: 3
  - id: 3
    priority: 1
    remaining_time: 5
`,
			expected: Default(),
		},
		{
			description: "custom boost interval",
			input: `
levels: 2
time_quanta: [1, 2]
boost_interval: 10
processes:
  - id: 7
    priority: 0
    remaining_time: 4
`,
			expected: &Scenario{
				Levels:        2,
				TimeQuanta:    []int{1, 2},
				BoostInterval: 10,
				Processes: []ProcessSpec{
					{ID: 7, Priority: 0, RemainingTime: 4},
				},
			},
		},
		{
			description: "zero levels",
			input:       "levels: 0\ntime_quanta: []\n",
			expectedErr: ErrInvalidLevels,
		},
		{
			description: "quanta length mismatch",
			input:       "levels: 3\ntime_quanta: [2, 4]\nprocesses: [{id: 1, priority: 0, remaining_time: 1}]\n",
			expectedErr: ErrQuantaMismatch,
		},
		{
			description: "negative quantum",
			input:       "levels: 2\ntime_quanta: [2, -4]\nprocesses: [{id: 1, priority: 0, remaining_time: 1}]\n",
			expectedErr: ErrNegativeQuantum,
		},
		{
			description: "duplicate process id",
			input: `
levels: 1
time_quanta: [2]
processes:
  - id: 1
    priority: 0
    remaining_time: 1
  - id: 1
    priority: 0
    remaining_time: 2
`,
			expectedErr: ErrDuplicateProcess,
		},
		{
			description: "negative remaining time",
			input:       "levels: 1\ntime_quanta: [2]\nprocesses: [{id: 1, priority: 0, remaining_time: -1}]\n",
			expectedErr: ErrNegativeTime,
		},
		{
			description: "negative post run elapsed",
			input:       "levels: 1\ntime_quanta: [2]\npost_run_elapsed: -5\nprocesses: [{id: 1, priority: 0, remaining_time: 1}]\n",
			expectedErr: ErrNegativeTime,
		},
		{
			description: "no processes",
			input:       "levels: 1\ntime_quanta: [2]\n",
			expectedErr: ErrNoProcesses,
		},
		{
			description: "malformed yaml",
			input:       "levels: [not an int\n",
			expectedErr: nil, // yaml parse error, no sentinel
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			actual, err := Parse([]byte(tc.input))
			if tc.expected != nil {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, actual)
				return
			}
			require.Error(t, err)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			}
		})
	}
}

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")

	data := `
levels: 2
time_quanta: [3, 6]
processes:
  - id: 42
    priority: 1
    remaining_time: 9
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Levels)
	assert.Equal(t, []int{3, 6}, s.TimeQuanta)
	require.Len(t, s.Processes, 1)
	assert.Equal(t, ProcessSpec{ID: 42, Priority: 1, RemainingTime: 9}, s.Processes[0])
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
