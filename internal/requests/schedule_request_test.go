package requests

import (
	"testing"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/schedulers"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		algorithm schedulers.Algorithm
		request   ScheduleRequests
		wantErr   bool
	}{
		{
			name:      "valid fcfs",
			algorithm: schedulers.FirstComeFirstServe,
			request:   ScheduleRequests{Jobs: []Job{{ArrivalTime: 0, BurstTime: 5}, {ArrivalTime: 1, BurstTime: 3}}},
		},
		{
			name:      "no jobs",
			algorithm: schedulers.FirstComeFirstServe,
			request:   ScheduleRequests{},
			wantErr:   true,
		},
		{
			name:      "negative arrival",
			algorithm: schedulers.ShortestJobFirst,
			request:   ScheduleRequests{Jobs: []Job{{ArrivalTime: -1, BurstTime: 2}}},
			wantErr:   true,
		},
		{
			name:      "zero burst",
			algorithm: schedulers.ShortestJobFirst,
			request:   ScheduleRequests{Jobs: []Job{{ArrivalTime: 0, BurstTime: 0}}},
			wantErr:   true,
		},
		{
			name:      "mismatched process id",
			algorithm: schedulers.FirstComeFirstServe,
			request:   ScheduleRequests{Jobs: []Job{{ProcessId: 2, BurstTime: 1}}},
			wantErr:   true,
		},
		{
			name:      "priority missing",
			algorithm: schedulers.PreemptivePriority,
			request:   ScheduleRequests{Jobs: []Job{{BurstTime: 1, Priority: intPtr(1)}, {BurstTime: 1}}},
			wantErr:   true,
		},
		{
			name:      "priority zero",
			algorithm: schedulers.NonPreemptivePriority,
			request:   ScheduleRequests{Jobs: []Job{{BurstTime: 1, Priority: intPtr(0)}}},
			wantErr:   true,
		},
		{
			name:      "priority zero without priority algorithm",
			algorithm: schedulers.FirstComeFirstServe,
			request:   ScheduleRequests{Jobs: []Job{{BurstTime: 1, Priority: intPtr(1)}, {BurstTime: 2, Priority: intPtr(0)}}},
			wantErr:   true,
		},
		{
			name:      "valid priority",
			algorithm: schedulers.NonPreemptivePriority,
			request:   ScheduleRequests{Jobs: []Job{{BurstTime: 1, Priority: intPtr(2)}}},
		},
		{
			name:      "round robin without quantum",
			algorithm: schedulers.RoundRobin,
			request:   ScheduleRequests{Jobs: []Job{{BurstTime: 1}}},
			wantErr:   true,
		},
		{
			name:      "round robin bad mode",
			algorithm: schedulers.RoundRobin,
			request:   ScheduleRequests{TimeQuantum: 2, RoundRobinMode: "lottery", Jobs: []Job{{BurstTime: 1}}},
			wantErr:   true,
		},
		{
			name:      "round robin queue",
			algorithm: schedulers.RoundRobin,
			request:   ScheduleRequests{TimeQuantum: 2, RoundRobinMode: "queue", Jobs: []Job{{BurstTime: 1}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate(tt.algorithm)
			if tt.wantErr {
				assert.ErrorIs(t, err, schedulers.ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestProcessSet(t *testing.T) {
	request := ScheduleRequests{
		TimeQuantum:    3,
		RoundRobinMode: "queue",
		Jobs:           []Job{{ArrivalTime: 2, BurstTime: 4, Priority: intPtr(1)}, {ArrivalTime: 0, BurstTime: 1}},
	}

	set := request.ProcessSet()
	assert.Equal(t, []core.Process{
		{ID: 1, Arrival: 2, Burst: 4, Priority: 1},
		{ID: 2, Arrival: 0, Burst: 1},
	}, set.Processes())
	assert.Equal(t, schedulers.Options{TimeQuantum: 3, RoundRobinMode: schedulers.RoundRobinQueue}, request.Options())
}
