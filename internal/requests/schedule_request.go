package requests

import (
	"fmt"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/schedulers"
)

type Job struct {
	ProcessId   int  `json:"process_id,omitempty"`
	ArrivalTime int  `json:"arrival_time"`
	BurstTime   int  `json:"burst_time"`
	Priority    *int `json:"priority,omitempty"`
}

type ScheduleRequests struct {
	Algorithm      string `json:"algorithm,omitempty"`
	TimeQuantum    int    `json:"time_quantum,omitempty"`
	RoundRobinMode string `json:"round_robin_mode,omitempty"`
	Jobs           []Job  `json:"jobs"`
}

// Validate checks the request for algorithm. Processes are always numbered by
// position; a non-zero process_id must match it.
func (r *ScheduleRequests) Validate(algorithm schedulers.Algorithm) error {
	if len(r.Jobs) == 0 {
		return fmt.Errorf("%w: number of processes must be a positive integer", schedulers.ErrInvalidInput)
	}
	for i, job := range r.Jobs {
		if job.ProcessId != 0 && job.ProcessId != i+1 {
			return fmt.Errorf("%w: job %d has process_id %d, expected %d", schedulers.ErrInvalidInput, i+1, job.ProcessId, i+1)
		}
		if job.ArrivalTime < 0 {
			return fmt.Errorf("%w: process %d arrival time must be non-negative", schedulers.ErrInvalidInput, i+1)
		}
		if job.BurstTime <= 0 {
			return fmt.Errorf("%w: process %d burst time must be positive", schedulers.ErrInvalidInput, i+1)
		}
		if algorithm.UsesPriority() && (job.Priority == nil || *job.Priority <= 0) {
			return fmt.Errorf("%w: process %d needs a positive priority for %s", schedulers.ErrInvalidInput, i+1, algorithm)
		}
		if job.Priority != nil && *job.Priority <= 0 {
			return fmt.Errorf("%w: process %d priority must be positive", schedulers.ErrInvalidInput, i+1)
		}
	}
	if algorithm == schedulers.RoundRobin && r.TimeQuantum <= 0 {
		return fmt.Errorf("%w: time quantum must be a positive integer", schedulers.ErrInvalidInput)
	}
	if _, err := schedulers.ParseRoundRobinMode(r.RoundRobinMode); err != nil {
		return err
	}
	return nil
}

func (r *ScheduleRequests) ProcessSet() *core.ProcessSet {
	specs := make([]core.ProcessSpec, len(r.Jobs))
	for i, job := range r.Jobs {
		specs[i] = core.ProcessSpec{Arrival: job.ArrivalTime, Burst: job.BurstTime}
		if job.Priority != nil {
			specs[i].Priority = *job.Priority
		}
	}
	return core.NewProcessSet(specs)
}

func (r *ScheduleRequests) Options() schedulers.Options {
	return schedulers.Options{
		TimeQuantum:    r.TimeQuantum,
		RoundRobinMode: schedulers.RoundRobinMode(r.RoundRobinMode),
	}
}
