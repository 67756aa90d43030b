// Package icons maps log types to the glyph and colour a reporter shows
// for them.
package icons

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/atomikpanda/tint/internal/color"
	"github.com/atomikpanda/tint/internal/platform"
)

// Type is a log-level tag.
type Type int

const (
	Fatal Type = iota
	Error
	Warn
	Log
	Info
	Success
	Fail
	Ready
	Start
	Box
	Debug
	Trace
	Verbose

	numTypes
)

type entry struct {
	name     string
	level    int
	glyph    string
	fallback string
	style    color.Style
	styled   bool
}

var entries = [numTypes]entry{
	Fatal:   {"fatal", 0, "✖", "×", color.Red, true},
	Error:   {"error", 0, "✖", "×", color.Red, true},
	Warn:    {"warn", 1, "⚠", "‼", color.Yellow, true},
	Log:     {"log", 2, "", "", color.White, true},
	Info:    {"info", 3, "ℹ", "i", color.Cyan, true},
	Success: {"success", 3, "✔", "√", color.Green, true},
	Fail:    {"fail", 3, "✖", "×", color.Red, true},
	Ready:   {"ready", 3, "✔", "√", color.Green, true},
	Start:   {"start", 3, "◐", "o", color.Magenta, true},
	Box:     {"box", 3, "", "", 0, false},
	Debug:   {"debug", 4, "⚙", "D", color.Blue, true},
	Trace:   {"trace", 5, "→", "→", color.Gray, true},
	Verbose: {"verbose", 5, "◓", "o", color.GreenBright, true},
}

// String returns the type name, e.g. "success".
func (t Type) String() string {
	if !t.valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return entries[t].name
}

func (t Type) valid() bool {
	return t >= 0 && t < numTypes
}

// Types returns every log type in declaration order.
func Types() []Type {
	all := make([]Type, numTypes)
	for i := range all {
		all[i] = Type(i)
	}
	return all
}

// Parse returns the Type called name.
func Parse(name string) (Type, error) {
	for i, e := range entries {
		if e.name == name {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("unknown log type %q", name)
}

// ParseLevel accepts either a type name ("debug") or a numeric level ("4").
func ParseLevel(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	t, err := Parse(s)
	if err != nil {
		return 0, fmt.Errorf("invalid level %q: %w", s, err)
	}
	return t.Level(), nil
}

// Level returns the verbosity at which t is shown; lower is more important.
func (t Type) Level() int {
	if !t.valid() {
		return entries[Log].level
	}
	return entries[t].level
}

// Glyph returns the icon for t, or its plain-ASCII fallback when unicode is
// false. Types without an icon return "".
func Glyph(t Type, unicode bool) string {
	if !t.valid() {
		return ""
	}
	if unicode {
		return entries[t].glyph
	}
	return entries[t].fallback
}

// StyleOf returns the colour used for t. The second result is false for
// types rendered without colour.
func StyleOf(t Type) (color.Style, bool) {
	if !t.valid() {
		return 0, false
	}
	return entries[t].style, entries[t].styled
}

// UnicodeSupported reports whether the terminal described by snap can be
// expected to render the unicode glyphs. Outside Windows only the Linux
// console is assumed not to; on Windows a known modern terminal is required.
func UnicodeSupported(snap platform.Snapshot) bool {
	term := snap.Get("TERM")
	if snap.OS != "windows" {
		return term != "linux"
	}
	return snap.Get("CI") != "" ||
		snap.Get("WT_SESSION") != "" ||
		snap.Get("TERMINUS_SUBLIME") != "" ||
		snap.Get("ConEmuTask") == "{cmd::Cmder}" ||
		slices.Contains([]string{"Terminus-Sublime", "vscode"}, snap.Get("TERM_PROGRAM")) ||
		slices.Contains([]string{"xterm-256color", "alacritty"}, term) ||
		snap.Get("TERMINAL_EMULATOR") == "JetBrains-JediTerm"
}
