package core

// Process is one entry of the static input. IDs are 1..N in input order.
// Priority 0 means no priority was supplied; lower values run first.
type Process struct {
	ID       int
	Arrival  int
	Burst    int
	Priority int
}

// ProcessSet is the immutable input of a simulation run.
type ProcessSet struct {
	processes []Process
}

// ProcessSpec describes a process before it is assigned an ID.
type ProcessSpec struct {
	Arrival  int
	Burst    int
	Priority int
}

// NewProcessSet numbers specs 1..N in the given order. Input is expected to be
// validated already (see requests.ScheduleRequests.Validate).
func NewProcessSet(specs []ProcessSpec) *ProcessSet {
	processes := make([]Process, len(specs))
	for i, s := range specs {
		processes[i] = Process{
			ID:       i + 1,
			Arrival:  s.Arrival,
			Burst:    s.Burst,
			Priority: s.Priority,
		}
	}
	return &ProcessSet{processes: processes}
}

func (s *ProcessSet) Len() int {
	return len(s.processes)
}

// At returns the process at zero-based index i (ID i+1).
func (s *ProcessSet) At(i int) Process {
	return s.processes[i]
}

// Processes returns a copy of the set in ID order.
func (s *ProcessSet) Processes() []Process {
	out := make([]Process, len(s.processes))
	copy(out, s.processes)
	return out
}

// HasPriorities reports whether every process carries a priority.
func (s *ProcessSet) HasPriorities() bool {
	for _, p := range s.processes {
		if p.Priority <= 0 {
			return false
		}
	}
	return len(s.processes) > 0
}

// TotalBurst is the CPU time needed to finish every process.
func (s *ProcessSet) TotalBurst() int {
	total := 0
	for _, p := range s.processes {
		total += p.Burst
	}
	return total
}
