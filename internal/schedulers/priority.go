package schedulers

import (
	"cpu-scheduler/internal/core"
)

// ScheduleNonPreemptivePriority runs the arrived process with the lowest
// priority value to completion.
func ScheduleNonPreemptivePriority(set *core.ProcessSet) core.ScheduleResult {
	log.Debugln("running non-preemptive priority algorithm ...")
	return scheduleNonPreemptive(set, byPriority)
}

// SchedulePreemptivePriority re-selects every tick by priority value.
func SchedulePreemptivePriority(set *core.ProcessSet) core.ScheduleResult {
	log.Debugln("running preemptive priority algorithm ...")
	return schedulePreemptive(set, byPriority)
}
