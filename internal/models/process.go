package models

// MaxNameLen is the widest display name kept for a process, in bytes.
const MaxNameLen = 15

// Process is one process observed during a scan.
type Process struct {
	PID    int    `json:"pid"`
	Name   string `json:"name"`
	VmSize uint64 `json:"vm_size_kib"`
}

// ProcessList is the result of a single scan of the process root.
type ProcessList struct {
	Processes  []Process `json:"processes"`
	Candidates int       `json:"candidates"`
	Skipped    int       `json:"skipped"`
	MemTotal   uint64    `json:"mem_total_kib"` // kB, 0 when unknown
}

// Total returns the number of processes that produced a record.
func (l ProcessList) Total() int {
	return len(l.Processes)
}
