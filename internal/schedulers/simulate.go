package schedulers

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"cpu-scheduler/internal/core"
)

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
)

type Algorithm string

const (
	FirstComeFirstServe        Algorithm = "FCFS"
	ShortestJobFirst           Algorithm = "SJF"
	ShortestRemainingTimeFirst Algorithm = "SRTF"
	RoundRobin                 Algorithm = "RR"
	NonPreemptivePriority      Algorithm = "Non-Preemptive Priority"
	PreemptivePriority         Algorithm = "Preemptive Priority"
)

// Algorithms lists every supported algorithm in presentation order.
var Algorithms = []Algorithm{
	FirstComeFirstServe,
	ShortestJobFirst,
	ShortestRemainingTimeFirst,
	RoundRobin,
	NonPreemptivePriority,
	PreemptivePriority,
}

var algorithmSlugs = map[Algorithm]string{
	FirstComeFirstServe:        "fcfs",
	ShortestJobFirst:           "sjf",
	ShortestRemainingTimeFirst: "srtf",
	RoundRobin:                 "rr",
	NonPreemptivePriority:      "npp",
	PreemptivePriority:         "pp",
}

// Slug is the short lower-case name used in routes and flags.
func (a Algorithm) Slug() string {
	return algorithmSlugs[a]
}

func (a Algorithm) UsesPriority() bool {
	return a == NonPreemptivePriority || a == PreemptivePriority
}

// ParseAlgorithm accepts the display name or the slug, case-insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.TrimSpace(name)
	for _, a := range Algorithms {
		if strings.EqualFold(name, string(a)) || strings.EqualFold(name, a.Slug()) {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
}

type RoundRobinMode string

const (
	// RoundRobinSweep serves every ready process once per sweep.
	RoundRobinSweep RoundRobinMode = "sweep"
	// RoundRobinQueue rotates a FIFO ready queue.
	RoundRobinQueue RoundRobinMode = "queue"
)

func ParseRoundRobinMode(mode string) (RoundRobinMode, error) {
	switch RoundRobinMode(strings.ToLower(strings.TrimSpace(mode))) {
	case "", RoundRobinSweep:
		return RoundRobinSweep, nil
	case RoundRobinQueue:
		return RoundRobinQueue, nil
	}
	return "", fmt.Errorf("%w: unknown round robin mode %q", ErrInvalidInput, mode)
}

// Options carries algorithm specific parameters.
type Options struct {
	TimeQuantum    int
	RoundRobinMode RoundRobinMode
}

// Simulate runs one algorithm over set. Every call works on its own state, so
// concurrent calls over the same set are safe.
func Simulate(algorithm Algorithm, set *core.ProcessSet, opts Options) (core.ScheduleResult, error) {
	if set == nil || set.Len() == 0 {
		return core.ScheduleResult{}, fmt.Errorf("%w: no processes", ErrInvalidInput)
	}
	if algorithm.UsesPriority() && !set.HasPriorities() {
		return core.ScheduleResult{}, fmt.Errorf("%w: %s needs a positive priority for every process", ErrInvalidInput, algorithm)
	}

	switch algorithm {
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(set), nil
	case ShortestJobFirst:
		return ScheduleShortestJobFirst(set), nil
	case ShortestRemainingTimeFirst:
		return ScheduleShortestRemainingTimeFirst(set), nil
	case RoundRobin:
		if opts.TimeQuantum <= 0 {
			return core.ScheduleResult{}, fmt.Errorf("%w: time quantum must be a positive integer", ErrInvalidInput)
		}
		mode, err := ParseRoundRobinMode(string(opts.RoundRobinMode))
		if err != nil {
			return core.ScheduleResult{}, err
		}
		if mode == RoundRobinQueue {
			return ScheduleRoundRobinQueue(set, opts.TimeQuantum), nil
		}
		return ScheduleRoundRobin(set, opts.TimeQuantum), nil
	case NonPreemptivePriority:
		return ScheduleNonPreemptivePriority(set), nil
	case PreemptivePriority:
		return SchedulePreemptivePriority(set), nil
	}
	return core.ScheduleResult{}, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
}

// Outcome is one algorithm's result in a SimulateAll run.
type Outcome struct {
	Algorithm Algorithm
	Result    core.ScheduleResult
}

// SimulateAll runs every algorithm that applies to set concurrently. Priority
// algorithms are skipped without priorities, round robin without a quantum.
func SimulateAll(set *core.ProcessSet, opts Options) ([]Outcome, error) {
	if set == nil || set.Len() == 0 {
		return nil, fmt.Errorf("%w: no processes", ErrInvalidInput)
	}
	applicable := make([]Algorithm, 0, len(Algorithms))
	for _, a := range Algorithms {
		if a.UsesPriority() && !set.HasPriorities() {
			continue
		}
		if a == RoundRobin && opts.TimeQuantum <= 0 {
			continue
		}
		applicable = append(applicable, a)
	}

	outcomes := make([]Outcome, len(applicable))
	errs := make([]error, len(applicable))

	var wg sync.WaitGroup
	wg.Add(len(applicable))
	for i, a := range applicable {
		go func(i int, a Algorithm) {
			defer wg.Done()
			result, err := Simulate(a, set, opts)
			outcomes[i] = Outcome{Algorithm: a, Result: result}
			errs[i] = err
		}(i, a)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return outcomes, nil
}
