package collector

import (
	"fmt"
	"io"
	"iter"
	"os"
)

// readBatch is how many directory entries are read per call.
const readBatch = 128

// IsPIDName reports whether name looks like a process identifier:
// non-empty and made only of ASCII digits.
func IsPIDName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return false
		}
	}
	return true
}

// DirScanner lists the candidate process identifiers under a root.
type DirScanner struct {
	dir        *os.File
	requireDir bool
	err        error
}

// OpenDir opens root for scanning. Failing to open the root is the only
// error the scan cannot recover from.
func OpenDir(root string, requireDir bool) (*DirScanner, error) {
	dir, err := os.Open(root)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", root, err)
	}
	return &DirScanner{dir: dir, requireDir: requireDir}, nil
}

// PIDs yields entry names that qualify as process identifiers, in the
// order the directory listing returns them.
func (s *DirScanner) PIDs() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			entries, err := s.dir.ReadDir(readBatch)
			for _, entry := range entries {
				if !IsPIDName(entry.Name()) {
					continue
				}
				if s.requireDir && !entry.Type().IsDir() {
					continue
				}
				if !yield(entry.Name()) {
					return
				}
			}
			if err != nil {
				if err != io.EOF {
					s.err = fmt.Errorf("list %s: %w", s.dir.Name(), err)
				}
				return
			}
		}
	}
}

// Err returns the error that stopped the listing early, if any.
func (s *DirScanner) Err() error {
	return s.err
}

func (s *DirScanner) Close() error {
	return s.dir.Close()
}
