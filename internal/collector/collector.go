package collector

import (
	"io"

	"github.com/Moonlight-Companies/gologger/logger"
)

// DefaultRoot is where the kernel mounts the process pseudo-filesystem.
const DefaultRoot = "/proc"

// initialCapacity is the starting size of the record buffer.
const initialCapacity = 100

// Options controls how a Collector scans the process root.
type Options struct {
	// Root is the process pseudo-filesystem. Empty means DefaultRoot.
	Root string
	// RequireDir only accepts entries reported as directories.
	RequireDir bool
	// Strict skips a process whose Name or VmSize line is malformed.
	Strict bool
	// FullScan keeps reading a status file after VmSize has been seen.
	FullScan bool
	// Debug receives per-process diagnostics. Nil disables them.
	Debug io.Writer
	// Log receives scan lifecycle messages. Nil disables them.
	Log *logger.Logger
}

type Collector struct {
	root       string
	requireDir bool
	parse      ParseOptions
	debug      io.Writer
	log        *logger.Logger
}

func New(opts Options) *Collector {
	root := opts.Root
	if root == "" {
		root = DefaultRoot
	}
	return &Collector{
		root:       root,
		requireDir: opts.RequireDir,
		parse: ParseOptions{
			Strict:   opts.Strict,
			FullScan: opts.FullScan,
		},
		debug: opts.Debug,
		log:   opts.Log,
	}
}
