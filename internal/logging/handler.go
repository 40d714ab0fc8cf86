// Copyright (c) 2025-2026 OSCode
// SPDX-License-Identifier: GPL-3.0-or-later

// Package logging provides a custom slog handler that mirrors WARN level
// and above into the event_log collection for operator auditing.
package logging

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/oscode/platform-go/internal/model"
	"github.com/oscode/platform-go/internal/store"
)

const writeTimeout = 5 * time.Second

// LogEntry is the stored form of a mirrored log record.
type LogEntry struct {
	Level     string            `bson:"level" json:"level"`
	Message   string            `bson:"message" json:"message"`
	Attrs     map[string]string `bson:"attrs,omitempty" json:"attrs,omitempty"`
	CreatedAt time.Time         `bson:"created_at" json:"created_at"`
}

// EventLogHandler is a slog.Handler that wraps another handler and also
// writes WARN and ERROR level records to the document store.
type EventLogHandler struct {
	inner slog.Handler
	docs  store.Store
	level slog.Level
	attrs []slog.Attr
}

// NewEventLogHandler creates an EventLogHandler that wraps the given
// handler. Records at WARN and above are mirrored into the store.
func NewEventLogHandler(inner slog.Handler, docs store.Store) *EventLogHandler {
	return &EventLogHandler{
		inner: inner,
		docs:  docs,
		level: slog.LevelWarn,
	}
}

// Enabled implements slog.Handler.
func (h *EventLogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *EventLogHandler) Handle(ctx context.Context, r slog.Record) error {
	if err := h.inner.Handle(ctx, r); err != nil {
		return err
	}
	if r.Level >= h.level {
		h.writeToEventLog(r)
	}
	return nil
}

// WithAttrs implements slog.Handler.
func (h *EventLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &EventLogHandler{
		inner: h.inner.WithAttrs(attrs),
		docs:  h.docs,
		level: h.level,
		attrs: append(append([]slog.Attr{}, h.attrs...), attrs...),
	}
}

// WithGroup implements slog.Handler.
func (h *EventLogHandler) WithGroup(name string) slog.Handler {
	return &EventLogHandler{
		inner: h.inner.WithGroup(name),
		docs:  h.docs,
		level: h.level,
		attrs: h.attrs,
	}
}

// writeToEventLog inserts the record into the event_log collection. Best
// effort: a failed insert never fails the logging call.
func (h *EventLogHandler) writeToEventLog(r slog.Record) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	attrs := make(map[string]string)
	for _, a := range h.attrs {
		attrs[a.Key] = a.Value.String()
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.String()
		return true
	})

	entry := LogEntry{
		Level:     strings.ToLower(r.Level.String()),
		Message:   r.Message,
		Attrs:     attrs,
		CreatedAt: r.Time,
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	_, _ = h.docs.Insert(ctx, model.CollectionEventLog, entry)
}
