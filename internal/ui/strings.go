package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const ellipsis = "…"

// truncate shortens value to limit cells, adding an ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return ""
	}
	return ansi.Truncate(value, limit, ellipsis)
}

// truncateMiddle shortens value by cutting its middle, keeping both the
// scheme/host prefix and the tail of long URLs readable.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || ansi.StringWidth(value) <= limit {
		return value
	}
	if limit <= 2 {
		return ansi.Truncate(value, limit, "")
	}
	keep := limit - ansi.StringWidth(ellipsis)
	prefix := keep / 2
	suffix := keep - prefix
	head := ansi.Truncate(value, prefix, "")
	tail := ansi.TruncateLeft(value, ansi.StringWidth(value)-suffix, "")
	return head + ellipsis + tail
}

// padRight pads s with spaces to width cells.
func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if width <= 0 || w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// plural picks the singular or plural noun for n.
func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
