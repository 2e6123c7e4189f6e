package schedulers

import (
	"cpu-scheduler/internal/core"
)

// ScheduleShortestJobFirst is non-preemptive: the arrived process with the
// smallest burst runs to completion.
func ScheduleShortestJobFirst(set *core.ProcessSet) core.ScheduleResult {
	log.Debugln("running sjf algorithm ...")
	return scheduleNonPreemptive(set, byBurst)
}

// ScheduleShortestRemainingTimeFirst re-selects every tick by remaining burst.
func ScheduleShortestRemainingTimeFirst(set *core.ProcessSet) core.ScheduleResult {
	log.Debugln("running srtf algorithm ...")
	return schedulePreemptive(set, byRemaining)
}
