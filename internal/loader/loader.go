// Package loader reads process definitions from CSV or JSON files.
//
// CSV rows are "id,burst,arrival[,priority]"; a leading header row whose first
// cell is "id" is skipped. JSON is either a request body ({"jobs": [...]}) or
// a bare array of jobs.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/schedulers"

	"github.com/tidwall/gjson"
)

// LoadFile picks the decoder by extension.
func LoadFile(path string) (*requests.ScheduleRequests, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open process file: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("read process file: %w", err)
		}
		return LoadJSON(data)
	}
	return LoadCSV(f)
}

func LoadCSV(r io.Reader) (*requests.ScheduleRequests, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV: %v", schedulers.ErrInvalidInput, err)
	}
	if len(rows) > 0 && strings.EqualFold(strings.TrimSpace(rows[0][0]), "id") {
		rows = rows[1:]
	}

	request := &requests.ScheduleRequests{Jobs: make([]requests.Job, 0, len(rows))}
	for line, row := range rows {
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("%w: row %d has %d fields, want 3 or 4", schedulers.ErrInvalidInput, line+1, len(row))
		}
		values := make([]int, len(row))
		for i, cell := range row {
			v, err := strconv.Atoi(strings.TrimSpace(cell))
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %q is not an integer", schedulers.ErrInvalidInput, line+1, cell)
			}
			values[i] = v
		}
		job := requests.Job{ProcessId: values[0], BurstTime: values[1], ArrivalTime: values[2]}
		if len(values) == 4 {
			priority := values[3]
			job.Priority = &priority
		}
		request.Jobs = append(request.Jobs, job)
	}
	return request, nil
}

func LoadJSON(data []byte) (*requests.ScheduleRequests, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", schedulers.ErrInvalidInput)
	}
	root := gjson.ParseBytes(data)
	request := &requests.ScheduleRequests{}

	jobs := root
	if root.IsObject() {
		jobs = root.Get("jobs")
		request.Algorithm = root.Get("algorithm").String()
		request.RoundRobinMode = root.Get("round_robin_mode").String()
		if q := root.Get("time_quantum"); q.Exists() {
			quantum, ok := integer(q)
			if !ok {
				return nil, fmt.Errorf("%w: time_quantum must be an integer", schedulers.ErrInvalidInput)
			}
			request.TimeQuantum = quantum
		}
	}
	if !jobs.IsArray() {
		return nil, fmt.Errorf("%w: expected an array of jobs", schedulers.ErrInvalidInput)
	}

	var parseErr error
	jobs.ForEach(func(_, value gjson.Result) bool {
		n := len(request.Jobs) + 1
		arrival, okArrival := integer(value.Get("arrival_time"))
		burst, okBurst := integer(value.Get("burst_time"))
		if !okArrival || !okBurst {
			parseErr = fmt.Errorf("%w: job %d needs integer arrival_time and burst_time", schedulers.ErrInvalidInput, n)
			return false
		}
		job := requests.Job{ArrivalTime: arrival, BurstTime: burst}
		if id := value.Get("process_id"); id.Exists() {
			pid, ok := integer(id)
			if !ok {
				parseErr = fmt.Errorf("%w: job %d process_id is not an integer", schedulers.ErrInvalidInput, n)
				return false
			}
			job.ProcessId = pid
		}
		if p := value.Get("priority"); p.Exists() {
			priority, ok := integer(p)
			if !ok {
				parseErr = fmt.Errorf("%w: job %d priority is not an integer", schedulers.ErrInvalidInput, n)
				return false
			}
			job.Priority = &priority
		}
		request.Jobs = append(request.Jobs, job)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return request, nil
}

// integer accepts JSON numbers with no fractional part.
func integer(v gjson.Result) (int, bool) {
	if v.Type != gjson.Number || v.Num != float64(v.Int()) {
		return 0, false
	}
	return int(v.Int()), true
}
