package models

import "fmt"

// HumanSize renders a size given in kibibytes using the largest unit
// (GB, MB or KB) whose value is at least one.
func HumanSize(kib uint64) string {
	kb := float64(kib)
	mb := kb / 1024
	gb := mb / 1024

	switch {
	case gb >= 1:
		return fmt.Sprintf("%.2f GB", gb)
	case mb >= 1:
		return fmt.Sprintf("%.2f MB", mb)
	default:
		return fmt.Sprintf("%.2f KB", kb)
	}
}
