package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/responses"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testConfig = &config.SchedulerConfig{Port: 9095, RoundRobinTimeQuantum: 2, RoundRobinMode: "sweep"}

func post(t *testing.T, path, body string) (int, []byte) {
	t.Helper()
	app := NewApp(testConfig)
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestFirstComeFirstServeRoute(t *testing.T) {
	status, body := post(t, "/api/v1/fcfs", `{"jobs":[{"arrival_time":0,"burst_time":5},{"arrival_time":1,"burst_time":3}]}`)
	require.Equal(t, http.StatusOK, status, string(body))

	var response responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(body, &response))
	assert.Equal(t, "FCFS", response.Algorithm)
	require.Len(t, response.Details, 2)
	assert.Equal(t, 5, response.Details[0].CompletionTime)
	assert.Equal(t, 8, response.Details[1].CompletionTime)
	assert.Equal(t, 4, response.Details[1].WaitingTime)
	assert.Equal(t, []responses.SegmentResponse{{ProcessId: 1, Start: 0, End: 5}, {ProcessId: 2, Start: 5, End: 8}}, response.Timeline)
}

func TestRoundRobinRoute_UsesConfiguredQuantum(t *testing.T) {
	status, body := post(t, "/api/v1/rr", `{"jobs":[{"arrival_time":0,"burst_time":5},{"arrival_time":1,"burst_time":3}]}`)
	require.Equal(t, http.StatusOK, status, string(body))

	var response responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(body, &response))
	assert.Equal(t, 2, response.TimeQuantum)
	assert.Equal(t, "sweep", response.RoundRobinMode)
	assert.Equal(t, 7, response.Details[0].CompletionTime)
	assert.Equal(t, 8, response.Details[1].CompletionTime)
}

func TestSimulateRoute(t *testing.T) {
	body := `{"algorithm":"rr","time_quantum":2,"round_robin_mode":"queue","jobs":[{"arrival_time":0,"burst_time":5},{"arrival_time":1,"burst_time":3}]}`
	status, data := post(t, "/api/v1/simulate", body)
	require.Equal(t, http.StatusOK, status, string(data))

	var response responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(data, &response))
	assert.Equal(t, "queue", response.RoundRobinMode)
	assert.Equal(t, 8, response.Details[0].CompletionTime)
	assert.Equal(t, 7, response.Details[1].CompletionTime)
}

func TestSimulateRoute_UnsupportedAlgorithm(t *testing.T) {
	status, data := post(t, "/api/v1/simulate", `{"algorithm":"mlfq","jobs":[{"arrival_time":0,"burst_time":1}]}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(data), "unsupported algorithm")
}

func TestPriorityRoute_RequiresPriorities(t *testing.T) {
	status, data := post(t, "/api/v1/pp", `{"jobs":[{"arrival_time":0,"burst_time":1}]}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(data), "invalid input")
}

func TestInvalidBody(t *testing.T) {
	status, data := post(t, "/api/v1/sjf", `{"jobs":`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(data), "invalid request format")
}

func TestAllRoute(t *testing.T) {
	body := `{"jobs":[{"arrival_time":0,"burst_time":4,"priority":2},{"arrival_time":1,"burst_time":2,"priority":1}]}`
	status, data := post(t, "/api/v1/all", body)
	require.Equal(t, http.StatusOK, status, string(data))

	var response responses.AllResponse
	require.NoError(t, json.Unmarshal(data, &response))
	require.Len(t, response.Results, 6)
	names := make([]string, len(response.Results))
	for i, r := range response.Results {
		names[i] = r.Algorithm
	}
	assert.Equal(t, []string{"FCFS", "SJF", "SRTF", "RR", "Non-Preemptive Priority", "Preemptive Priority"}, names)
}

func TestAllRoute_RejectsZeroPriority(t *testing.T) {
	body := `{"jobs":[{"arrival_time":0,"burst_time":4,"priority":0},{"arrival_time":1,"burst_time":2,"priority":1}]}`
	status, data := post(t, "/api/v1/all", body)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(data), "priority must be positive")
}

func TestListAlgorithms(t *testing.T) {
	app := NewApp(testConfig)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/algorithms", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var list []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 6)
	assert.Equal(t, "rr", list[3]["slug"])
	assert.Equal(t, true, list[3]["needs_quantum"])
}
