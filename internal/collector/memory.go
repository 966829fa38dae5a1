package collector

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// MemTotal returns MemTotal from the meminfo file under the process
// root, in kB. It returns 0 when the file is missing or unreadable.
func (c *Collector) MemTotal() uint64 {
	content, err := os.ReadFile(filepath.Join(c.root, "meminfo"))
	if err != nil {
		return 0
	}

	for _, line := range strings.Split(string(content), "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[0] == "MemTotal:" {
			if total, err := strconv.ParseUint(fields[1], 10, 64); err == nil {
				return total
			}
			return 0
		}
	}
	return 0
}
