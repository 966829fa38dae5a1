package collector

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/prabalesh/memtop/internal/models"
)

// Collect scans the process root once and returns every process that
// yielded a complete record, in directory order. Only a failure to open
// or list the root is returned as an error.
func (c *Collector) Collect() (models.ProcessList, error) {
	scanner, err := OpenDir(c.root, c.requireDir)
	if err != nil {
		return models.ProcessList{}, err
	}
	defer scanner.Close()

	if c.log != nil {
		c.log.Infoln("Scanning", c.root)
	}

	list := models.ProcessList{
		Processes: make([]models.Process, 0, initialCapacity),
	}
	for pid := range scanner.PIDs() {
		list.Candidates++

		proc, ok := c.ReadProcess(pid)
		if !ok {
			list.Skipped++
			continue
		}
		list.Processes = append(list.Processes, proc)
	}
	if err := scanner.Err(); err != nil {
		return models.ProcessList{}, err
	}

	list.MemTotal = c.MemTotal()

	if c.log != nil {
		c.log.Infoln("Scan complete,", list.Candidates, "candidates,", list.Total(), "records,", list.Skipped, "skipped")
	}
	return list, nil
}

// ReadProcess reads the status file of pid. It reports false when the
// file cannot be opened or does not hold both a name and a non-zero
// VmSize; the caller skips such processes.
func (c *Collector) ReadProcess(pid string) (models.Process, bool) {
	f, err := os.Open(StatusPath(c.root, pid))
	if err != nil {
		// Exited since the listing, or not ours to read.
		return models.Process{}, false
	}
	defer f.Close()

	name, vmSize, err := ParseStatus(f, c.parse)
	if err != nil {
		var fieldErr *FieldError
		if errors.As(err, &fieldErr) {
			c.debugf("Debug: PID=%s, invalid %s field\n", pid, fieldErr.Field)
		} else if c.log != nil {
			c.log.Debugln("Failed to read status of", pid, err)
		}
		return models.Process{}, false
	}
	if name == "" || vmSize == 0 {
		return models.Process{}, false
	}

	proc := models.Process{
		PID:    parsePID(pid),
		Name:   name,
		VmSize: vmSize,
	}
	c.debugf("Debug: PID=%d, Name=%s, VmSize=%d kB\n", proc.PID, proc.Name, proc.VmSize)
	return proc, true
}

// parsePID converts a directory name to a pid, falling back to 0 when it
// does not fit in an int.
func parsePID(s string) int {
	pid, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return pid
}

func (c *Collector) debugf(format string, args ...any) {
	if c.debug == nil {
		return
	}
	fmt.Fprintf(c.debug, format, args...)
}
