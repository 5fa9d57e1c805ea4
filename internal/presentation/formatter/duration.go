// Package formatter renders durations and day timelines for the two call
// sites that consume them: the insertion form's duration hint and the
// terminal timeline view. The flavors are separate named functions rather
// than one function with a mode flag, because their empty-value contracts
// differ: the form hint may disappear, a timeline bar always needs a label.
package formatter

import (
	"fmt"
	"strings"
)

// FormatDurationHint renders a millisecond duration for the insertion
// form's preview line. Zero or negative durations render as an empty
// string so the hint disappears entirely.
func FormatDurationHint(ms int64) string {
	if ms <= 0 {
		return ""
	}
	hours := ms / 3600000
	minutes := (ms % 3600000) / 60000
	if hours > 0 {
		return fmt.Sprintf("%d hr %d min", hours, minutes)
	}
	return fmt.Sprintf("%d min", minutes)
}

// FormatDurationBar renders a millisecond duration as a timeline bar
// label. A bar always carries a label, so invalid input renders as "0hr"
// rather than disappearing.
func FormatDurationBar(ms int64) string {
	if ms <= 0 {
		return "0hr"
	}
	hours := ms / 3600000
	minutes := (ms % 3600000) / 60000
	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

// FormatDurationSummary renders a millisecond duration for the per-status
// totals column, zero-padded for alignment. Invalid input renders as "00 hr".
func FormatDurationSummary(ms int64) string {
	if ms <= 0 {
		return "00 hr"
	}
	hours := ms / 3600000
	minutes := (ms % 3600000) / 60000
	if hours > 0 {
		return fmt.Sprintf("%02d hr %02dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// CleanDurationLabel normalizes a pre-formatted duration string that has
// already lost its numeric components: a literal "Ongoing" marker becomes
// empty and a trailing "00mins" fragment is stripped.
func CleanDurationLabel(label string) string {
	if label == "Ongoing" {
		return ""
	}
	label = strings.TrimSuffix(label, "00mins")
	return strings.TrimSpace(label)
}
