package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/schedulers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestLoadCSV(t *testing.T) {
	input := "id,burst,arrival,priority\n1,5,0,2\n2, 3, 1, 1\n"

	request, err := LoadCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []requests.Job{
		{ProcessId: 1, BurstTime: 5, ArrivalTime: 0, Priority: intPtr(2)},
		{ProcessId: 2, BurstTime: 3, ArrivalTime: 1, Priority: intPtr(1)},
	}, request.Jobs)
}

func TestLoadCSV_WithoutPriority(t *testing.T) {
	request, err := LoadCSV(strings.NewReader("1,6,0\n2,2,1\n"))
	require.NoError(t, err)
	require.Len(t, request.Jobs, 2)
	assert.Nil(t, request.Jobs[0].Priority)
	assert.NoError(t, request.Validate(schedulers.ShortestJobFirst))
}

func TestLoadCSV_Errors(t *testing.T) {
	for name, input := range map[string]string{
		"not a number":   "1,x,0\n",
		"too few fields": "1,2\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := LoadCSV(strings.NewReader(input))
			assert.ErrorIs(t, err, schedulers.ErrInvalidInput)
		})
	}
}

func TestLoadJSON_RequestBody(t *testing.T) {
	data := `{"algorithm":"RR","time_quantum":3,"round_robin_mode":"queue","jobs":[{"arrival_time":0,"burst_time":4},{"arrival_time":2,"burst_time":1,"priority":5}]}`

	request, err := LoadJSON([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, "RR", request.Algorithm)
	assert.Equal(t, 3, request.TimeQuantum)
	assert.Equal(t, "queue", request.RoundRobinMode)
	assert.Equal(t, []requests.Job{
		{ArrivalTime: 0, BurstTime: 4},
		{ArrivalTime: 2, BurstTime: 1, Priority: intPtr(5)},
	}, request.Jobs)
}

func TestLoadJSON_BareArray(t *testing.T) {
	request, err := LoadJSON([]byte(`[{"arrival_time":1,"burst_time":2}]`))
	require.NoError(t, err)
	assert.Equal(t, []requests.Job{{ArrivalTime: 1, BurstTime: 2}}, request.Jobs)
}

func TestLoadJSON_WholeFloatsAccepted(t *testing.T) {
	request, err := LoadJSON([]byte(`{"time_quantum":2.0,"jobs":[{"arrival_time":1.0,"burst_time":3.0,"priority":2.0}]}`))
	require.NoError(t, err)
	assert.Equal(t, 2, request.TimeQuantum)
	assert.Equal(t, []requests.Job{{ArrivalTime: 1, BurstTime: 3, Priority: intPtr(2)}}, request.Jobs)
}

func TestLoadJSON_Errors(t *testing.T) {
	for name, input := range map[string]string{
		"malformed":        `{"jobs":[`,
		"jobs not array":   `{"jobs":3}`,
		"string burst":     `[{"arrival_time":0,"burst_time":"5"}]`,
		"string priority":  `[{"arrival_time":0,"burst_time":5,"priority":"high"}]`,
		"fractional times": `[{"arrival_time":0.9,"burst_time":2.7}]`,
		"fractional prio":  `[{"arrival_time":0,"burst_time":2,"priority":1.5}]`,
		"fractional id":    `[{"process_id":1.2,"arrival_time":0,"burst_time":2}]`,
		"fractional q":     `{"time_quantum":2.5,"jobs":[{"arrival_time":0,"burst_time":2}]}`,
		"string quantum":   `{"time_quantum":"2","jobs":[{"arrival_time":0,"burst_time":2}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := LoadJSON([]byte(input))
			assert.ErrorIs(t, err, schedulers.ErrInvalidInput)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "procs.csv")
	jsonPath := filepath.Join(dir, "procs.json")
	require.NoError(t, os.WriteFile(csvPath, []byte("1,5,0\n"), 0o644))
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"arrival_time":0,"burst_time":5}]`), 0o644))

	fromCSV, err := LoadFile(csvPath)
	require.NoError(t, err)
	fromJSON, err := LoadFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, fromCSV.ProcessSet().Processes(), fromJSON.ProcessSet().Processes())

	_, err = LoadFile(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}
