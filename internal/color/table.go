package color

import (
	"os"
	"sync"

	"github.com/atomikpanda/tint/internal/platform"
)

// composed holds one Func per style, built once at init.
var composed = func() [numStyles]Func {
	var fns [numStyles]Func
	for s, d := range definitions {
		fns[s] = Compose(d.open, d.close, d.replace)
	}
	return fns
}()

// Table maps every Style to a Func. A disabled table returns its input
// unstyled, so callers never branch on whether colour is active.
type Table struct {
	enabled bool
}

// New returns the real style table when enabled is true, and a pass-through
// table otherwise.
func New(enabled bool) *Table {
	return &Table{enabled: enabled}
}

var (
	defaultOnce    sync.Once
	defaultEnabled bool
)

// DefaultEnabled detects colour support from the process environment. The
// result is computed once; later environment changes are not observed.
func DefaultEnabled() bool {
	defaultOnce.Do(func() {
		defaultEnabled = Detect(platform.Capture(os.Args[1:]))
	})
	return defaultEnabled
}

// Default returns a table for the detected capability of the current process.
func Default() *Table {
	return New(DefaultEnabled())
}

// Enabled reports whether the table emits escape sequences.
func (t *Table) Enabled() bool {
	return t != nil && t.enabled
}

// Func returns the styling function for s. Unknown styles get Plain.
func (t *Table) Func(s Style) Func {
	if !t.Enabled() || !s.valid() {
		return Plain
	}
	return composed[s]
}

// Apply styles v with s.
func (t *Table) Apply(s Style, v any) string {
	return t.Func(s)(v)
}

// Chain applies styles to v in order, so the first style is innermost.
func (t *Table) Chain(v any, styles ...Style) string {
	out := coerce(v)
	for _, s := range styles {
		out = t.Apply(s, out)
	}
	return out
}
