// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// string.go - Width-aware string helpers.

package util

import (
	"github.com/mattn/go-runewidth"
)

// UNICODE: cell formatting is width-aware so CJK model names and tags keep
// the table columns aligned.

// TruncateRunes truncates a string to a maximum number of runes.
// If the string is truncated, "..." is appended.
func TruncateRunes(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	if maxRunes <= 3 {
		return string(runes[:maxRunes])
	}
	return string(runes[:maxRunes-3]) + "..."
}

// PadCell fits s into a table cell of the given display width: wider
// strings are truncated with an ellipsis, narrower ones padded with spaces.
func PadCell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "...")
	}
	return runewidth.FillRight(s, width)
}

// CellWidth returns the display width needed for s.
func CellWidth(s string) int {
	return runewidth.StringWidth(s)
}
