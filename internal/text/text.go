// Package text measures and joins strings that may contain ANSI escape
// sequences.
package text

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Width returns the number of terminal columns s occupies. Escape sequences
// take no space and wide characters take two columns.
func Width(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}

// Join joins the non-empty parts with single spaces.
func Join(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

// PadRight pads s with spaces to n columns. Strings already n columns wide
// or wider are returned unchanged.
func PadRight(s string, n int) string {
	w := Width(s)
	if w >= n {
		return s
	}
	return s + strings.Repeat(" ", n-w)
}
