package collector

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/prabalesh/memtop/internal/models"
)

const (
	nameLabel   = "Name:"
	vmSizeLabel = "VmSize:"
	sizeUnit    = "kB"
)

// ParseOptions tunes how a status file is read.
type ParseOptions struct {
	Strict   bool
	FullScan bool
}

// FieldError reports a labeled status line whose value is malformed.
type FieldError struct {
	Field string
	Line  string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("malformed %s field: %q", e.Field, e.Line)
}

// StatusPath returns the status file of the process pid under root.
func StatusPath(root, pid string) string {
	return filepath.Join(root, pid, "status")
}

// ParseStatus extracts the display name and VmSize (in kB) from the
// contents of a status file.
//
// Reading stops at the VmSize line unless opts.FullScan is set, so a Name
// line that follows VmSize is only seen with FullScan. In strict mode a
// label with a malformed value returns a *FieldError. Otherwise the
// field is left empty.
func ParseStatus(r io.Reader, opts ParseOptions) (string, uint64, error) {
	var (
		name   string
		vmSize uint64
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()

		switch {
		case strings.HasPrefix(line, nameLabel):
			fields := strings.Fields(line[len(nameLabel):])
			if len(fields) == 0 {
				if opts.Strict {
					return "", 0, &FieldError{Field: "Name", Line: line}
				}
				continue
			}
			name = truncateName(fields[0])

		case strings.HasPrefix(line, vmSizeLabel):
			size, ok := parseSize(line[len(vmSizeLabel):], opts.Strict)
			if !ok {
				return "", 0, &FieldError{Field: "VmSize", Line: line}
			}
			vmSize = size
			if !opts.FullScan {
				return name, vmSize, nil
			}
		}
	}
	if err := sc.Err(); err != nil {
		return "", 0, err
	}
	return name, vmSize, nil
}

// parseSize reads "<n> kB". Lenient parsing never fails and yields zero
// for anything it cannot read.
func parseSize(value string, strict bool) (uint64, bool) {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return 0, !strict
	}
	if !strict {
		return leadingUint(fields[0]), true
	}
	size, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil || len(fields) < 2 || fields[1] != sizeUnit {
		return 0, false
	}
	return size, true
}

// leadingUint reads the decimal digits at the start of s, so "12abc" is
// 12. No digits, or a value that overflows, yields 0.
func leadingUint(s string) uint64 {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.ParseUint(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func truncateName(name string) string {
	if len(name) <= models.MaxNameLen {
		return name
	}
	name = name[:models.MaxNameLen]
	for len(name) > 0 {
		r, size := utf8.DecodeLastRuneInString(name)
		if r != utf8.RuneError || size != 1 {
			break
		}
		name = name[:len(name)-1]
	}
	return name
}
