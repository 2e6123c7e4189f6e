package core

import (
	"errors"
	"fmt"
)

// ErrInternalInvariant marks a scheduling defect. It is raised by panic, never
// returned, because valid input can not produce it.
var ErrInternalInvariant = errors.New("internal invariant violated")

// ExecutionSegment is a slice of CPU ownership in [Start, End).
type ExecutionSegment struct {
	ProcessID int `json:"process_id"`
	Start     int `json:"start"`
	End       int `json:"end"`
}

func (s ExecutionSegment) Duration() int {
	return s.End - s.Start
}

// ScheduleResult is produced fresh by every run.
type ScheduleResult struct {
	Completion map[int]int
	Turnaround map[int]int
	Waiting    map[int]int
	Timeline   []ExecutionSegment
}

// Recorder collects the timeline and completion times while an algorithm
// runs. Algorithms only talk to the recorder; Finish derives the timings.
type Recorder struct {
	set        *ProcessSet
	completion map[int]int
	timeline   []ExecutionSegment
}

func NewRecorder(set *ProcessSet) *Recorder {
	return &Recorder{
		set:        set,
		completion: make(map[int]int, set.Len()),
		timeline:   make([]ExecutionSegment, 0, set.Len()),
	}
}

// Run records that process id owned the CPU in [start, end).
func (r *Recorder) Run(id, start, end int) {
	if end <= start {
		panic(fmt.Errorf("%w: empty segment for process %d at %d", ErrInternalInvariant, id, start))
	}
	if n := len(r.timeline); n > 0 && r.timeline[n-1].End > start {
		panic(fmt.Errorf("%w: segment for process %d starts at %d before previous end %d",
			ErrInternalInvariant, id, start, r.timeline[n-1].End))
	}
	r.timeline = append(r.timeline, ExecutionSegment{ProcessID: id, Start: start, End: end})
}

// Complete fixes the completion time of process id. It may happen only once.
func (r *Recorder) Complete(id, at int) {
	if prev, ok := r.completion[id]; ok {
		panic(fmt.Errorf("%w: process %d completed twice (%d, %d)", ErrInternalInvariant, id, prev, at))
	}
	r.completion[id] = at
}

func (r *Recorder) Completed() int {
	return len(r.completion)
}

// Finish checks every process finished with exactly its burst of CPU time and
// derives turnaround and waiting.
func (r *Recorder) Finish() ScheduleResult {
	result := ScheduleResult{
		Completion: make(map[int]int, r.set.Len()),
		Turnaround: make(map[int]int, r.set.Len()),
		Waiting:    make(map[int]int, r.set.Len()),
		Timeline:   r.timeline,
	}
	for _, p := range r.set.processes {
		completion, ok := r.completion[p.ID]
		if !ok {
			panic(fmt.Errorf("%w: process %d was never scheduled", ErrInternalInvariant, p.ID))
		}
		turnaround, waiting := CalculateTimes(p, completion)
		result.Completion[p.ID] = completion
		result.Turnaround[p.ID] = turnaround
		result.Waiting[p.ID] = waiting
	}
	if busy := MeasureCpu(r.timeline).UtilizationTime; busy != r.set.TotalBurst() {
		panic(fmt.Errorf("%w: cpu busy for %d ticks, processes need %d", ErrInternalInvariant, busy, r.set.TotalBurst()))
	}
	return result
}

// CalculateTimes derives turnaround and waiting time for p.
func CalculateTimes(p Process, completion int) (turnaround, waiting int) {
	turnaround = completion - p.Arrival
	waiting = turnaround - p.Burst
	if waiting < 0 {
		panic(fmt.Errorf("%w: process %d waits %d (arrival %d, burst %d, completion %d)",
			ErrInternalInvariant, p.ID, waiting, p.Arrival, p.Burst, completion))
	}
	return turnaround, waiting
}

// Coalesce merges adjacent gap-free segments of the same process.
func Coalesce(timeline []ExecutionSegment) []ExecutionSegment {
	merged := make([]ExecutionSegment, 0, len(timeline))
	for _, s := range timeline {
		if n := len(merged); n > 0 && merged[n-1].ProcessID == s.ProcessID && merged[n-1].End == s.Start {
			merged[n-1].End = s.End
			continue
		}
		merged = append(merged, s)
	}
	return merged
}

// FirstRun returns the first start time of every process in timeline.
func FirstRun(timeline []ExecutionSegment) map[int]int {
	first := make(map[int]int)
	for _, s := range timeline {
		if _, ok := first[s.ProcessID]; !ok {
			first[s.ProcessID] = s.Start
		}
	}
	return first
}
