package config

import (
	"fmt"
	"strings"
)

func (v Verbosity) String() string {
	switch v {
	case Quiet:
		return "quiet"
	case Normal:
		return "normal"
	case Verbose:
		return "verbose"
	case Debug:
		return "debug"
	}
	return fmt.Sprintf("verbosity(%d)", int(v))
}

// UnmarshalText accepts the level names used in config files.
func (v *Verbosity) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "quiet":
		*v = Quiet
	case "normal", "":
		*v = Normal
	case "verbose":
		*v = Verbose
	case "debug":
		*v = Debug
	default:
		return fmt.Errorf("unknown verbosity %q", text)
	}
	return nil
}

func (v Verbosity) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
