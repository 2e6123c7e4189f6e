package schedulers

import (
	"fmt"
	"sort"

	"cpu-scheduler/internal/core"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
)

var log = logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "scheduler"))

// runState is the per-run bookkeeping shared by every algorithm. Indexes are
// zero-based positions in the ProcessSet.
type runState struct {
	set       *core.ProcessSet
	remaining []int
	finished  []bool
	recorder  *core.Recorder
}

func newRunState(set *core.ProcessSet) *runState {
	s := &runState{
		set:       set,
		remaining: make([]int, set.Len()),
		finished:  make([]bool, set.Len()),
		recorder:  core.NewRecorder(set),
	}
	for i := 0; i < set.Len(); i++ {
		s.remaining[i] = set.At(i).Burst
	}
	return s
}

func (s *runState) done() bool {
	return s.recorder.Completed() == s.set.Len()
}

func (s *runState) ready(i, now int) bool {
	return !s.finished[i] && s.set.At(i).Arrival <= now
}

// run gives process i the CPU for [start, end) and finishes it once its
// remaining burst is used up.
func (s *runState) run(i, start, end int) {
	id := s.set.At(i).ID
	s.recorder.Run(id, start, end)
	s.remaining[i] -= end - start
	if s.remaining[i] < 0 {
		panic(fmt.Errorf("%w: process %d remaining burst %d", core.ErrInternalInvariant, id, s.remaining[i]))
	}
	if s.remaining[i] == 0 {
		s.finished[i] = true
		s.recorder.Complete(id, end)
		log.Debugln("pid:", id, "completed at", end)
	}
}

// nextArrival is the earliest arrival among unfinished processes. When nothing
// is ready every unfinished process arrives after now, so jumping there gives
// the same schedule as stepping one idle tick at a time.
func (s *runState) nextArrival() int {
	next := -1
	for i := 0; i < s.set.Len(); i++ {
		if s.finished[i] {
			continue
		}
		if a := s.set.At(i).Arrival; next < 0 || a < next {
			next = a
		}
	}
	return next
}

// selectionKey ranks ready processes; the smallest key runs.
type selectionKey func(s *runState, i int) int

func byBurst(s *runState, i int) int     { return s.set.At(i).Burst }
func byRemaining(s *runState, i int) int { return s.remaining[i] }
func byPriority(s *runState, i int) int  { return s.set.At(i).Priority }

// precedes is the tie-break policy of every selection: smaller key first,
// then lower process ID.
func precedes(keyA, idA, keyB, idB int) bool {
	if keyA != keyB {
		return keyA < keyB
	}
	return idA < idB
}

// pick returns the index of the ready process that runs next, or -1.
func (s *runState) pick(now int, key selectionKey) int {
	best := -1
	for i := 0; i < s.set.Len(); i++ {
		if !s.ready(i, now) {
			continue
		}
		if best < 0 || precedes(key(s, i), s.set.At(i).ID, key(s, best), s.set.At(best).ID) {
			best = i
		}
	}
	return best
}

// arrivalOrder lists indexes by arrival time, ties by ID.
func arrivalOrder(set *core.ProcessSet) []int {
	order := make([]int, set.Len())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return precedes(set.At(order[a]).Arrival, set.At(order[a]).ID, set.At(order[b]).Arrival, set.At(order[b]).ID)
	})
	return order
}

// scheduleNonPreemptive runs the chosen process to completion at every
// decision point.
func scheduleNonPreemptive(set *core.ProcessSet, key selectionKey) core.ScheduleResult {
	s := newRunState(set)
	now := 0
	for !s.done() {
		i := s.pick(now, key)
		if i < 0 {
			log.Debugln("cpu idle from", now)
			now = s.nextArrival()
			continue
		}
		p := set.At(i)
		log.Debugln("pid:", p.ID, "runs from", now, "for", p.Burst)
		s.run(i, now, now+p.Burst)
		now += p.Burst
	}
	return s.recorder.Finish()
}

// schedulePreemptive re-selects every tick and records one unit segment per
// tick.
func schedulePreemptive(set *core.ProcessSet, key selectionKey) core.ScheduleResult {
	s := newRunState(set)
	now := 0
	for !s.done() {
		i := s.pick(now, key)
		if i < 0 {
			log.Debugln("cpu idle from", now)
			now = s.nextArrival()
			continue
		}
		s.run(i, now, now+1)
		now++
	}
	return s.recorder.Finish()
}
