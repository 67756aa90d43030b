package icons

import (
	"testing"

	"github.com/atomikpanda/tint/internal/color"
	"github.com/atomikpanda/tint/internal/platform"
)

func TestGlyph(t *testing.T) {
	tests := []struct {
		typ      Type
		unicode  string
		fallback string
	}{
		{Error, "✖", "×"},
		{Fatal, "✖", "×"},
		{Fail, "✖", "×"},
		{Ready, "✔", "√"},
		{Success, "✔", "√"},
		{Warn, "⚠", "‼"},
		{Info, "ℹ", "i"},
		{Debug, "⚙", "D"},
		{Trace, "→", "→"},
		{Start, "◐", "o"},
		{Verbose, "◓", "o"},
		{Log, "", ""},
		{Box, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			if got := Glyph(tt.typ, true); got != tt.unicode {
				t.Errorf("Glyph(%s, true) = %q, want %q", tt.typ, got, tt.unicode)
			}
			if got := Glyph(tt.typ, false); got != tt.fallback {
				t.Errorf("Glyph(%s, false) = %q, want %q", tt.typ, got, tt.fallback)
			}
		})
	}
}

func TestStyleOf(t *testing.T) {
	tests := []struct {
		typ    Type
		want   color.Style
		styled bool
	}{
		{Info, color.Cyan, true},
		{Fail, color.Red, true},
		{Success, color.Green, true},
		{Ready, color.Green, true},
		{Start, color.Magenta, true},
		{Warn, color.Yellow, true},
		{Error, color.Red, true},
		{Fatal, color.Red, true},
		{Debug, color.Blue, true},
		{Trace, color.Gray, true},
		{Log, color.White, true},
		{Verbose, color.GreenBright, true},
		{Box, 0, false},
		{Type(-1), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			got, ok := StyleOf(tt.typ)
			if ok != tt.styled || (ok && got != tt.want) {
				t.Errorf("StyleOf(%s) = %s, %v; want %s, %v", tt.typ, got, ok, tt.want, tt.styled)
			}
		})
	}
}

func TestParse(t *testing.T) {
	for _, typ := range Types() {
		got, err := Parse(typ.String())
		if err != nil || got != typ {
			t.Errorf("Parse(%q) = %v, %v", typ.String(), got, err)
		}
	}
	if _, err := Parse("notice"); err == nil {
		t.Error("Parse(notice) should fail")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"0", 0, false},
		{"4", 4, false},
		{"warn", 1, false},
		{"debug", 4, false},
		{"trace", 5, false},
		{"loud", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestUnicodeSupported(t *testing.T) {
	tests := []struct {
		name string
		os   string
		env  map[string]string
		want bool
	}{
		{"linux xterm", "linux", map[string]string{"TERM": "xterm"}, true},
		{"linux no term", "linux", nil, true},
		{"linux console", "linux", map[string]string{"TERM": "linux"}, false},
		{"darwin", "darwin", nil, true},
		{"windows plain", "windows", nil, false},
		{"windows terminal", "windows", map[string]string{"WT_SESSION": "abc"}, true},
		{"windows ci", "windows", map[string]string{"CI": "true"}, true},
		{"windows vscode", "windows", map[string]string{"TERM_PROGRAM": "vscode"}, true},
		{"windows cmder", "windows", map[string]string{"ConEmuTask": "{cmd::Cmder}"}, true},
		{"windows alacritty", "windows", map[string]string{"TERM": "alacritty"}, true},
		{"windows jetbrains", "windows", map[string]string{"TERMINAL_EMULATOR": "JetBrains-JediTerm"}, true},
		{"windows other term", "windows", map[string]string{"TERM": "cygwin"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := platform.Snapshot{Env: tt.env, OS: tt.os}
			if got := UnicodeSupported(snap); got != tt.want {
				t.Errorf("UnicodeSupported() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevelOrdering(t *testing.T) {
	if !(Fatal.Level() < Warn.Level() && Warn.Level() < Info.Level() && Info.Level() < Debug.Level() && Debug.Level() < Trace.Level()) {
		t.Error("levels should increase from fatal to trace")
	}
}
