// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/TylerBrock/colorjson"
	"github.com/matt-FFFFFF/celery/internal/color"
)

// TimeFormat is the format used for timestamps in console output.
const TimeFormat = "[15:04:05.000]"

var (
	// ErrMarshalAttribute is returned when the attributes of a record cannot be rendered.
	ErrMarshalAttribute = errors.New("error when marshaling attribute")
	// ErrIoWrite is returned when a record cannot be written to the output.
	ErrIoWrite = errors.New("error when writing to output")
)

var _ slog.Handler = (*PrettyHandler)(nil)

// PrettyHandler formats records for a human reading a terminal:
// timestamp, coloured level, message and the attributes as JSON.
type PrettyHandler struct {
	w      io.Writer
	mu     *sync.Mutex
	level  slog.Leveler
	attrs  []slog.Attr
	groups []string
}

// NewPrettyHandler creates a PrettyHandler writing to w. Only opts.Level is used.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	h := &PrettyHandler{w: w, mu: &sync.Mutex{}, level: slog.LevelInfo}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level
	}

	return h
}

// Enabled implements slog.Handler.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// WithAttrs implements slog.Handler.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := h.clone()
	for _, a := range attrs {
		c.attrs = append(c.attrs, c.qualify(a))
	}

	return c
}

// WithGroup implements slog.Handler.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := h.clone()
	c.groups = append(c.groups, name)

	return c
}

// Handle implements slog.Handler.
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]any, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		addAttr(attrs, a)
	}

	r.Attrs(func(a slog.Attr) bool {
		addAttr(attrs, h.qualify(a))
		return true
	})

	sb := strings.Builder{}

	if !r.Time.IsZero() {
		sb.WriteString(color.Colorize(r.Time.Format(TimeFormat), color.FgWhite))
		sb.WriteString(" ")
	}

	sb.WriteString(levelString(r.Level))
	sb.WriteString(" ")
	sb.WriteString(color.Colorize(r.Message, color.FgHiWhite))

	if len(attrs) > 0 {
		out, err := marshalAttrs(attrs)
		if err != nil {
			return errors.Join(ErrMarshalAttribute, err)
		}

		sb.WriteString(" ")
		sb.Write(out)
	}

	sb.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, err := io.WriteString(h.w, sb.String()); err != nil {
		return errors.Join(ErrIoWrite, err)
	}

	return nil
}

func (h *PrettyHandler) clone() *PrettyHandler {
	return &PrettyHandler{
		w:      h.w,
		mu:     h.mu,
		level:  h.level,
		attrs:  append([]slog.Attr(nil), h.attrs...),
		groups: append([]string(nil), h.groups...),
	}
}

// qualify nests a under the open groups, innermost last.
func (h *PrettyHandler) qualify(a slog.Attr) slog.Attr {
	for i := len(h.groups) - 1; i >= 0; i-- {
		a = slog.Group(h.groups[i], a)
	}

	return a
}

func levelString(l slog.Level) string {
	s := l.String() + ":"

	switch {
	case l < slog.LevelInfo:
		return color.Colorize(s, color.FgWhite)
	case l < slog.LevelWarn:
		return color.Colorize(s, color.FgCyan)
	case l < slog.LevelError:
		return color.Colorize(s, color.FgYellow)
	case l == slog.LevelError:
		return color.Colorize(s, color.FgRed)
	default:
		return color.Colorize(s, color.FgHiMagenta)
	}
}

func addAttr(dst map[string]any, a slog.Attr) {
	v := a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if v.Kind() != slog.KindGroup {
		dst[a.Key] = plainValue(v)
		return
	}

	group := v.Group()
	if len(group) == 0 {
		return
	}

	sub, ok := dst[a.Key].(map[string]any)
	if !ok || a.Key == "" {
		sub = make(map[string]any, len(group))
	}

	for _, ga := range group {
		addAttr(sub, ga)
	}

	if a.Key == "" {
		for k, gv := range sub {
			dst[k] = gv
		}

		return
	}

	dst[a.Key] = sub
}

func plainValue(v slog.Value) any {
	switch v.Kind() {
	case slog.KindTime:
		return v.Time().Format(time.RFC3339Nano)
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindAny:
		switch x := v.Any().(type) {
		case error:
			return x.Error()
		case fmt.Stringer:
			return x.String()
		}
	}

	return v.Any()
}

// marshalAttrs goes through encoding/json first because colorjson only understands
// the types json.Unmarshal produces.
func marshalAttrs(attrs map[string]any) ([]byte, error) {
	raw, err := json.Marshal(attrs)
	if err != nil {
		return nil, err
	}

	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}

	f := colorjson.NewFormatter()
	f.Indent = 2
	f.DisabledColor = !color.Enabled()

	return f.Marshal(generic)
}
