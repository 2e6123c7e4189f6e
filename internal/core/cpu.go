package core

// CpuMetric summarises how the single CPU spent a run, in ticks.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// MeasureCpu walks a timeline from t=0 to the last segment end.
func MeasureCpu(timeline []ExecutionSegment) CpuMetric {
	var metric CpuMetric
	for _, s := range timeline {
		metric.UtilizationTime += s.Duration()
		if s.End > metric.TotalTime {
			metric.TotalTime = s.End
		}
	}
	metric.IdleTime = metric.TotalTime - metric.UtilizationTime
	return metric
}

// Utilization is the busy fraction of the run, 0 for an empty timeline.
func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime)
}

// Throughput is processes finished per tick.
func (m CpuMetric) Throughput(processCount int) float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(processCount) / float64(m.TotalTime)
}
