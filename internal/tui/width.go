// ABOUTME: Display-width helpers: grapheme-aware measuring, truncate, pad
// ABOUTME: ASCII fast path; uniseg for measurement, runewidth for truncation

package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// VisibleWidth returns the display width of s in terminal cells.
func VisibleWidth(s string) int {
	if isASCII(s) {
		return len(s)
	}
	return uniseg.StringWidth(s)
}

// Truncate shortens s to at most w cells, appending "…" when cut.
func Truncate(s string, w int) string {
	if VisibleWidth(s) <= w {
		return s
	}
	if w <= 1 {
		return "…"
	}
	return runewidth.Truncate(s, w, "…")
}

// Pad right-pads s with spaces to exactly w cells, truncating when longer.
func Pad(s string, w int) string {
	s = Truncate(s, w)
	if gap := w - VisibleWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
