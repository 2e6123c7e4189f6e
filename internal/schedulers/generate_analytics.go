package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

// GenerateResponse packages a result for the presentation layer: per-process
// details in ID order, averages and CPU figures.
func GenerateResponse(algorithm Algorithm, set *core.ProcessSet, opts Options, result core.ScheduleResult) responses.ScheduleResponse {
	proccessDetails := generateProcessDetails(set, result)
	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(proccessDetails)

	cpuMetric := core.MeasureCpu(result.Timeline)
	response := responses.ScheduleResponse{
		Algorithm:             string(algorithm),
		TotalTime:             cpuMetric.TotalTime,
		IdleTime:              cpuMetric.IdleTime,
		CpuUtilization:        cpuMetric.Utilization(),
		CpuThroughput:         cpuMetric.Throughput(set.Len()),
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		Details:               proccessDetails,
		Timeline:              segmentResponses(result.Timeline),
		Gantt:                 segmentResponses(core.Coalesce(result.Timeline)),
	}
	if algorithm == RoundRobin {
		mode, _ := ParseRoundRobinMode(string(opts.RoundRobinMode))
		response.TimeQuantum = opts.TimeQuantum
		response.RoundRobinMode = string(mode)
	}
	return response
}

func generateProcessDetails(set *core.ProcessSet, result core.ScheduleResult) []responses.ProcessResponse {
	firstRun := core.FirstRun(result.Timeline)
	details := make([]responses.ProcessResponse, 0, set.Len())
	for _, p := range set.Processes() {
		details = append(details, responses.ProcessResponse{
			ProcessId:      p.ID,
			ArrivalTime:    p.Arrival,
			BurstTime:      p.Burst,
			Priority:       p.Priority,
			CompletionTime: result.Completion[p.ID],
			TurnAroundTime: result.Turnaround[p.ID],
			WaitingTime:    result.Waiting[p.ID],
			ResponseTime:   firstRun[p.ID] - p.Arrival,
		})
	}
	return details
}

func segmentResponses(timeline []core.ExecutionSegment) []responses.SegmentResponse {
	segments := make([]responses.SegmentResponse, len(timeline))
	for i, s := range timeline {
		segments[i] = responses.SegmentResponse{ProcessId: s.ProcessID, Start: s.Start, End: s.End}
	}
	return segments
}
