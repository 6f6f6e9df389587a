// ABOUTME: Small output helpers shared across CLI commands.
// ABOUTME: Plain string padding and truncation for aligned columns.
package main

import "strings"

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
