package schedulers

import (
	"cpu-scheduler/internal/core"
)

// ScheduleRoundRobin serves ready processes in sweeps. Each sweep snapshots
// the arrived, unfinished processes in ID order and gives each one slice of
// at most timeQuantum ticks. A process arriving during a sweep is first
// served in the next sweep.
func ScheduleRoundRobin(set *core.ProcessSet, timeQuantum int) core.ScheduleResult {
	log.Debugln("running roundRobin algorithm with timeQuantum =", timeQuantum)
	s := newRunState(set)
	now := 0
	for !s.done() {
		sweep := make([]int, 0, set.Len())
		for i := 0; i < set.Len(); i++ {
			if s.ready(i, now) {
				sweep = append(sweep, i)
			}
		}
		if len(sweep) == 0 {
			log.Debugln("cpu idle from", now)
			now = s.nextArrival()
			continue
		}
		for _, i := range sweep {
			slice := min(timeQuantum, s.remaining[i])
			log.Debugln("pid:", set.At(i).ID, "runs from", now, "for", slice)
			s.run(i, now, now+slice)
			now += slice
		}
	}
	return s.recorder.Finish()
}

// ScheduleRoundRobinQueue is the ready-queue variant: one process per
// dequeue, arrivals enqueued at the tail as soon as they arrive and ahead of
// the process whose slice just ended.
func ScheduleRoundRobinQueue(set *core.ProcessSet, timeQuantum int) core.ScheduleResult {
	log.Debugln("running roundRobin queue algorithm with timeQuantum =", timeQuantum)
	s := newRunState(set)
	order := arrivalOrder(set)
	next := 0
	readyQueue := make([]int, 0, set.Len())

	admit := func(now int) {
		for next < len(order) && set.At(order[next]).Arrival <= now {
			readyQueue = append(readyQueue, order[next])
			next++
		}
	}

	now := 0
	admit(now)
	for !s.done() {
		if len(readyQueue) == 0 {
			now = set.At(order[next]).Arrival
			log.Debugln("cpu idle until", now)
			admit(now)
			continue
		}
		i := readyQueue[0]
		readyQueue = readyQueue[1:]

		slice := min(timeQuantum, s.remaining[i])
		log.Debugln("pid:", set.At(i).ID, "runs from", now, "for", slice)
		s.run(i, now, now+slice)
		now += slice

		admit(now)
		if !s.finished[i] {
			readyQueue = append(readyQueue, i)
		}
	}
	return s.recorder.Finish()
}
