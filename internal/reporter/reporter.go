// Package reporter writes human-readable log lines decorated with a status
// icon and colour per log type.
package reporter

import (
	"fmt"
	"io"
	"sync"

	"github.com/atomikpanda/tint/internal/color"
	"github.com/atomikpanda/tint/internal/icons"
	"github.com/atomikpanda/tint/internal/text"
)

// Options control what a Reporter prints.
type Options struct {
	// Level is the highest icons.Type level that is printed.
	Level int
	// Unicode selects the unicode glyphs over their ASCII fallbacks.
	Unicode bool
}

// DefaultLevel shows everything up to info.
var DefaultLevel = icons.Info.Level()

// Reporter formats log entries and writes them to Out, one per line.
// A Reporter is safe for concurrent use.
type Reporter struct {
	mu     sync.Mutex
	out    io.Writer
	styles *color.Table
	opts   Options
}

// New returns a Reporter writing to out with styles.
func New(out io.Writer, styles *color.Table, opts Options) *Reporter {
	return &Reporter{out: out, styles: styles, opts: opts}
}

// Enabled reports whether entries of type t are printed.
func (r *Reporter) Enabled(t icons.Type) bool {
	return t.Level() <= r.opts.Level
}

// Log prints a formatted entry of type t.
func (r *Reporter) Log(t icons.Type, format string, args ...any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	r.write(t, msg, "")
}

func (r *Reporter) Info(format string, args ...any)    { r.Log(icons.Info, format, args...) }
func (r *Reporter) Success(format string, args ...any) { r.Log(icons.Success, format, args...) }
func (r *Reporter) Warn(format string, args ...any)    { r.Log(icons.Warn, format, args...) }
func (r *Reporter) Debug(format string, args ...any)   { r.Log(icons.Debug, format, args...) }

// Error prints err, prefixed with a formatted message when format is not empty.
func (r *Reporter) Error(err error, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if err != nil {
		msg = text.Join(msg, err.Error())
	}
	r.write(icons.Error, msg, "")
}

func (r *Reporter) write(t icons.Type, msg, suffix string) {
	if !r.Enabled(t) {
		return
	}
	line := r.Format(t, msg, suffix)

	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.out, line)
}

// Format renders one line: the styled icon, the message and a dim suffix.
// Failures also have their message coloured.
func (r *Reporter) Format(t icons.Type, msg, suffix string) string {
	glyph := icons.Glyph(t, r.opts.Unicode)
	if s, ok := icons.StyleOf(t); ok {
		glyph = r.styles.Apply(s, glyph)
		switch t {
		case icons.Fatal, icons.Error, icons.Fail:
			msg = r.styles.Apply(s, msg)
		}
	}
	return text.Join(glyph, msg, r.styles.Apply(color.Dim, suffix))
}
