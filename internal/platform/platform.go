// Package platform captures the parts of the process environment that
// decide how terminal output is rendered.
package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/mattn/go-isatty"
)

// Current returns the runtime.GOOS value ("darwin", "windows", "linux", …).
func Current() string {
	return runtime.GOOS
}

// Snapshot is a read-only view of the environment taken at one point in time.
// The zero value describes a headless host: no variables, no arguments, no TTY.
type Snapshot struct {
	Env       map[string]string
	Args      []string
	OS        string // runtime.GOOS value
	StdoutTTY bool
}

// Capture records the current environment, args and stdout TTY state.
// Later changes to the process environment are not reflected in the result.
func Capture(args []string) Snapshot {
	fd := os.Stdout.Fd()
	return Snapshot{
		Env:       environ(os.Environ()),
		Args:      slices.Clone(args),
		OS:        Current(),
		StdoutTTY: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
}

// environ converts KEY=VALUE pairs into a map. Entries without '=' are kept
// with an empty value so that their presence can still be tested.
func environ(pairs []string) map[string]string {
	env := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		k, v, _ := strings.Cut(kv, "=")
		if k == "" {
			continue // windows per-drive entries such as "=C:"
		}
		env[k] = v
	}
	return env
}

// Has reports whether key is present, regardless of its value.
func (s Snapshot) Has(key string) bool {
	_, ok := s.Env[key]
	return ok
}

// Get returns the value of key, or "" when absent.
func (s Snapshot) Get(key string) string {
	return s.Env[key]
}

// HasArg reports whether the literal token arg was passed on the command line.
func (s Snapshot) HasArg(arg string) bool {
	return slices.Contains(s.Args, arg)
}

// ConfigDir returns the directory tint keeps its config file in:
// $XDG_CONFIG_HOME/tint, falling back to ~/.config/tint. Without a home
// directory it uses tint under the system temp dir.
func (s Snapshot) ConfigDir() string {
	if dir := s.Get("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "tint")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "tint")
	}
	return filepath.Join(home, ".config", "tint")
}
