package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestCurrent(t *testing.T) {
	got := Current()
	if got != runtime.GOOS {
		t.Errorf("Current() = %q, want %q", got, runtime.GOOS)
	}
}

func TestCaptureEnv(t *testing.T) {
	t.Setenv("TINT_TEST_VAR", "value")
	t.Setenv("TINT_TEST_EMPTY", "")

	snap := Capture([]string{"--color"})
	if got := snap.Get("TINT_TEST_VAR"); got != "value" {
		t.Errorf("Get(TINT_TEST_VAR) = %q, want %q", got, "value")
	}
	if !snap.Has("TINT_TEST_EMPTY") {
		t.Error("Has(TINT_TEST_EMPTY) = false, want true for empty value")
	}
	if snap.Has("TINT_TEST_MISSING") {
		t.Error("Has(TINT_TEST_MISSING) = true, want false")
	}
	if !snap.HasArg("--color") {
		t.Error("HasArg(--color) = false, want true")
	}
	if snap.OS != runtime.GOOS {
		t.Errorf("OS = %q, want %q", snap.OS, runtime.GOOS)
	}
}

func TestCaptureIsImmutable(t *testing.T) {
	t.Setenv("TINT_TEST_VAR", "before")
	args := []string{"--no-color"}
	snap := Capture(args)

	os.Setenv("TINT_TEST_VAR", "after")
	args[0] = "--color"

	if got := snap.Get("TINT_TEST_VAR"); got != "before" {
		t.Errorf("Get after env change = %q, want %q", got, "before")
	}
	if !snap.HasArg("--no-color") {
		t.Error("snapshot args changed after caller mutated its slice")
	}
}

func TestZeroSnapshot(t *testing.T) {
	var snap Snapshot
	if snap.Has("TERM") || snap.Get("TERM") != "" || snap.HasArg("--color") || snap.StdoutTTY {
		t.Error("zero Snapshot should report everything absent")
	}
}

func TestEnviron(t *testing.T) {
	env := environ([]string{"A=1", "B=", "C", "=C:=C:\\", "D=x=y"})
	tests := []struct {
		key    string
		want   string
		wantOK bool
	}{
		{"A", "1", true},
		{"B", "", true},
		{"C", "", true},
		{"D", "x=y", true},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := env[tt.key]
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("env[%q] = %q, %v; want %q, %v", tt.key, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	snap := Snapshot{Env: map[string]string{"XDG_CONFIG_HOME": "/xdg"}}
	if got, want := snap.ConfigDir(), filepath.Join("/xdg", "tint"); got != want {
		t.Errorf("ConfigDir() = %q, want %q", got, want)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("cannot determine home dir")
	}
	if got, want := (Snapshot{}).ConfigDir(), filepath.Join(home, ".config", "tint"); got != want {
		t.Errorf("ConfigDir() = %q, want %q", got, want)
	}
}

func TestConfigDirWithoutHome(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "plan9" {
		t.Skip("home dir is not read from HOME on this platform")
	}
	t.Setenv("HOME", "")
	if got, want := (Snapshot{}).ConfigDir(), filepath.Join(os.TempDir(), "tint"); got != want {
		t.Errorf("ConfigDir() = %q, want %q", got, want)
	}
}
