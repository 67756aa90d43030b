package reporter

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/atomikpanda/tint/internal/icons"
)

// Handler returns a slog.Handler that prints records through r.
func (r *Reporter) Handler() slog.Handler {
	return &handler{r: r}
}

type handler struct {
	r      *Reporter
	prefix string   // group names joined with "."
	attrs  []string // preformatted key=value pairs from WithAttrs
}

// typeFor maps a slog level onto the closest log type.
func typeFor(level slog.Level) icons.Type {
	switch {
	case level < slog.LevelInfo:
		return icons.Debug
	case level < slog.LevelWarn:
		return icons.Info
	case level < slog.LevelError:
		return icons.Warn
	default:
		return icons.Error
	}
}

func (h *handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.r.Enabled(typeFor(level))
}

func (h *handler) Handle(_ context.Context, rec slog.Record) error {
	pairs := append([]string(nil), h.attrs...)
	rec.Attrs(func(a slog.Attr) bool {
		pairs = appendAttr(pairs, h.prefix, a)
		return true
	})
	h.r.write(typeFor(rec.Level), rec.Message, strings.Join(pairs, " "))
	return nil
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append([]string(nil), h.attrs...)
	for _, a := range attrs {
		next.attrs = appendAttr(next.attrs, h.prefix, a)
	}
	return &next
}

func (h *handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

func appendAttr(pairs []string, prefix string, a slog.Attr) []string {
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range v.Group() {
			pairs = appendAttr(pairs, prefix, ga)
		}
		return pairs
	}
	if a.Equal(slog.Attr{}) {
		return pairs
	}
	s := v.String()
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		s = strconv.Quote(s)
	}
	return append(pairs, prefix+a.Key+"="+s)
}
