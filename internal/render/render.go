// Package render prints schedules for a terminal: a title, a Gantt strip and
// tablewriter tables.
package render

import (
	"fmt"
	"io"
	"strings"

	"cpu-scheduler/internal/responses"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

var (
	Bold     = color.New(color.Bold).SprintFunc()
	Dim      = color.New(color.Faint).SprintFunc()
	BoldCyan = color.New(color.Bold, color.FgCyan).SprintFunc()
)

// processColors tells processes apart in the Gantt strip.
var processColors = []func(a ...interface{}) string{
	color.New(color.Bold, color.FgMagenta).SprintFunc(),
	color.New(color.Bold, color.FgCyan).SprintFunc(),
	color.New(color.Bold, color.FgYellow).SprintFunc(),
	color.New(color.Bold, color.FgGreen).SprintFunc(),
	color.New(color.Bold, color.FgHiBlue).SprintFunc(),
	color.New(color.Bold, color.FgHiRed).SprintFunc(),
}

func processLabel(id int) string {
	return processColors[(id-1)%len(processColors)](fmt.Sprintf("P%d", id))
}

// Schedule writes one algorithm's result.
func Schedule(w io.Writer, response responses.ScheduleResponse) {
	title := response.Algorithm
	if response.TimeQuantum > 0 {
		title = fmt.Sprintf("%s (quantum %d, %s)", title, response.TimeQuantum, response.RoundRobinMode)
	}
	Title(w, title)
	Gantt(w, response.Gantt)
	Details(w, response)
	Timeline(w, response.Timeline)
}

func Title(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, Dim(strings.Repeat("-", len(title)*2)))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), BoldCyan(title))
	_, _ = fmt.Fprintln(w, Dim(strings.Repeat("-", len(title)*2)))
}

// Gantt prints one cell per segment with the start times underneath. Idle
// gaps get their own cell.
func Gantt(w io.Writer, gantt []responses.SegmentResponse) {
	_, _ = fmt.Fprintln(w, Bold("Gantt schedule"))
	if len(gantt) == 0 {
		_, _ = fmt.Fprintln(w)
		return
	}

	var cells, ticks strings.Builder
	cells.WriteString("|")
	prevEnd := 0
	for _, s := range gantt {
		if s.Start > prevEnd {
			cells.WriteString(Dim("  idle ") + "|")
			ticks.WriteString(fmt.Sprintf("%-8d", prevEnd))
		}
		cells.WriteString("  " + processLabel(s.ProcessId) + strings.Repeat(" ", max(0, 4-len(fmt.Sprint(s.ProcessId)))) + "|")
		ticks.WriteString(fmt.Sprintf("%-8d", s.Start))
		prevEnd = s.End
	}
	ticks.WriteString(fmt.Sprint(prevEnd))

	_, _ = fmt.Fprintln(w, cells.String())
	_, _ = fmt.Fprintln(w, ticks.String())
	_, _ = fmt.Fprintln(w)
}

func Details(w io.Writer, response responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, Bold("Schedule table"))
	rows := make([][]string, 0, len(response.Details))
	for _, d := range response.Details {
		priority := ""
		if d.Priority > 0 {
			priority = fmt.Sprint(d.Priority)
		}
		rows = append(rows, []string{
			fmt.Sprintf("P%d", d.ProcessId),
			priority,
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.CompletionTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.ResponseTime),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Process", "Priority", "Burst", "Arrival", "Completion", "Turnaround", "Waiting", "Response"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Idle %d/%d", response.IdleTime, response.TotalTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageResponseTime)})
	table.Render()
	_, _ = fmt.Fprintln(w)
}

// Timeline lists the execution order segment by segment.
func Timeline(w io.Writer, timeline []responses.SegmentResponse) {
	_, _ = fmt.Fprintln(w, Bold("Execution order"))
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "Start", "End"})
	for _, s := range timeline {
		table.Append([]string{fmt.Sprintf("P%d", s.ProcessId), fmt.Sprint(s.Start), fmt.Sprint(s.End)})
	}
	table.Render()
}

// Comparison summarises several algorithms over the same processes.
func Comparison(w io.Writer, results []responses.ScheduleResponse) {
	Title(w, "Algorithm comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg waiting", "Avg turnaround", "Avg response", "Total time", "Utilization", "Throughput"})
	for _, r := range results {
		table.Append([]string{
			r.Algorithm,
			fmt.Sprintf("%.2f", r.AverageWaitingTime),
			fmt.Sprintf("%.2f", r.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", r.AverageResponseTime),
			fmt.Sprint(r.TotalTime),
			fmt.Sprintf("%.0f%%", r.CpuUtilization*100),
			fmt.Sprintf("%.2f/t", r.CpuThroughput),
		})
	}
	table.Render()
}
