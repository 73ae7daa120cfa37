package logging

import (
	"context"
	"log/slog"
	"sync"
)

// Entry is a recorded warning or error
type Entry struct {
	Level   slog.Level
	Message string
	Attrs   map[string]string
}

// Recorder is a slog.Handler that keeps every record at or above a level
// while passing all records on to the next handler. The filter uses it to
// report non-fatal problems back to callers.
type Recorder struct {
	next  slog.Handler
	min   slog.Level
	store *entryStore
	attrs []slog.Attr
	group string
}

type entryStore struct {
	mu      sync.Mutex
	entries []Entry
}

// NewRecorder wraps next, recording records at slog.LevelWarn and above
func NewRecorder(next slog.Handler) *Recorder {
	return &Recorder{next: next, min: slog.LevelWarn, store: &entryStore{}}
}

func (r *Recorder) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= r.min || r.next.Enabled(ctx, level)
}

func (r *Recorder) Handle(ctx context.Context, rec slog.Record) error {
	if rec.Level >= r.min {
		e := Entry{Level: rec.Level, Message: rec.Message, Attrs: map[string]string{}}
		for _, a := range r.attrs {
			e.Attrs[a.Key] = a.Value.String()
		}
		rec.Attrs(func(a slog.Attr) bool {
			key := a.Key
			if r.group != "" {
				key = r.group + "." + key
			}
			e.Attrs[key] = a.Value.String()
			return true
		})
		r.store.mu.Lock()
		r.store.entries = append(r.store.entries, e)
		r.store.mu.Unlock()
	}
	if r.next.Enabled(ctx, rec.Level) {
		return r.next.Handle(ctx, rec)
	}
	return nil
}

func (r *Recorder) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *r
	c.next = r.next.WithAttrs(attrs)
	c.attrs = append(append([]slog.Attr{}, r.attrs...), attrs...)
	return &c
}

func (r *Recorder) WithGroup(name string) slog.Handler {
	c := *r
	c.next = r.next.WithGroup(name)
	if name != "" {
		if c.group != "" {
			c.group += "." + name
		} else {
			c.group = name
		}
	}
	return &c
}

// Take returns the recorded entries and clears the record
func (r *Recorder) Take() []Entry {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := r.store.entries
	r.store.entries = nil
	return out
}
