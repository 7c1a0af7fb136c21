// Package logging provides a compact, line-oriented slog handler for programs
// built on lvroute:
//
//	2026/10/17 09:30:00 DEBUG itinerary resolved origin=CDMX destination=PE base=950
package logging

import (
	"context"
	"io"
	"strings"
	"sync"

	"golang.org/x/exp/slog"
)

const timeLayout = "2006/01/02 15:04:05"

// Handler writes one line per record: time, level, message, then key=value attributes.
// It is safe for concurrent use.
type Handler struct {
	level  slog.Leveler
	attrs  []slog.Attr
	prefix string // group prefix, "" or "a.b."
	mu     *sync.Mutex
	out    io.Writer
}

// NewHandler creates a Handler writing to o. Only opts.Level is honoured;
// nil opts means LevelInfo.
func NewHandler(o io.Writer, opts *slog.HandlerOptions) *Handler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &Handler{level: level, mu: &sync.Mutex{}, out: o}
}

// New is shorthand for slog.New(NewHandler(o, &slog.HandlerOptions{Level: level})).
func New(o io.Writer, level slog.Level) *slog.Logger {
	return slog.New(NewHandler(o, &slog.HandlerOptions{Level: level}))
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	nh.attrs = append(nh.attrs, h.attrs...)
	for _, a := range attrs {
		nh.attrs = append(nh.attrs, slog.Attr{Key: h.prefix + a.Key, Value: a.Value})
	}

	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.prefix = h.prefix + name + "."

	return &nh
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	if !r.Time.IsZero() {
		sb.WriteString(r.Time.Format(timeLayout))
		sb.WriteByte(' ')
	}
	sb.WriteString(r.Level.String())
	sb.WriteByte(' ')
	sb.WriteString(r.Message)

	for _, a := range h.attrs {
		writeAttr(&sb, a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&sb, h.prefix+a.Key, a.Value)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())

	return err
}

func writeAttr(sb *strings.Builder, key string, v slog.Value) {
	v = v.Resolve()
	if v.Kind() == slog.KindGroup {
		for _, ga := range v.Group() {
			writeAttr(sb, key+"."+ga.Key, ga.Value)
		}
		return
	}
	sb.WriteByte(' ')
	sb.WriteString(key)
	sb.WriteByte('=')
	s := v.String()
	if strings.ContainsAny(s, " \t\n\"=") {
		s = `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
	}
	sb.WriteString(s)
}
