package schedulers

import (
	"cpu-scheduler/internal/core"
)

// ScheduleFirstComeFirstServe runs processes by arrival, ties by lower ID.
// The CPU sits idle until the next process arrives.
func ScheduleFirstComeFirstServe(set *core.ProcessSet) core.ScheduleResult {
	log.Debugln("running fcfs algorithm ...")
	s := newRunState(set)
	now := 0
	for _, i := range arrivalOrder(set) {
		p := set.At(i)
		if now < p.Arrival {
			log.Debugln("cpu idle from", now, "to", p.Arrival)
			now = p.Arrival
		}
		log.Debugln("pid:", p.ID, "runs from", now, "for", p.Burst)
		s.run(i, now, now+p.Burst)
		now += p.Burst
	}
	return s.recorder.Finish()
}
