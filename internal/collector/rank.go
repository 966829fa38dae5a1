package collector

import (
	"sort"

	"github.com/prabalesh/memtop/internal/models"
)

// Rank orders procs by VmSize, largest first. Processes with equal sizes
// keep no particular order.
func Rank(procs []models.Process) {
	sort.Slice(procs, func(i, j int) bool {
		return procs[i].VmSize > procs[j].VmSize
	})
}

// Top returns at most limit leading entries of procs. A negative limit
// selects nothing.
func Top(procs []models.Process, limit int) []models.Process {
	if limit <= 0 {
		return nil
	}
	if limit > len(procs) {
		limit = len(procs)
	}
	return procs[:limit]
}
