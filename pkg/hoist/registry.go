package hoist

import (
	"log/slog"
	"reflect"
	"slices"
	"strconv"

	"github.com/go-drift/hoist/pkg/core"
)

// sequencePrefix starts every sequence id.
const sequencePrefix = "lift-"

// Entry is one piece of hoisted content as seen by a Slot.
type Entry struct {
	// Identity names the Hoist that owns the entry.
	Identity Identity
	// SequenceID records insertion order ("lift-1", "lift-2", ...). It is
	// assigned on first upsert and kept for the life of the entry.
	SequenceID string
	// Content is the widget to render in the Slot.
	Content core.Widget
	// Priority orders entries; lower values come first.
	Priority int
}

// Registry stores the entries hoisted into one Provider and notifies
// listeners when they change.
//
// A Registry is confined to the goroutine that drives the widget tree and
// does no locking.
type Registry struct {
	name     string
	logger   *slog.Logger
	entries  map[Identity]*Entry
	notifier *core.Notifier
	nextSeq  int
	closed   bool
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithRegistryName sets the name used in log records.
func WithRegistryName(name string) RegistryOption {
	return func(r *Registry) {
		r.name = name
	}
}

// WithRegistryLogger sets the logger for debug records. Nil keeps the default.
func WithRegistryLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry creates an empty Registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		logger:   slog.Default(),
		entries:  make(map[Identity]*Entry),
		notifier: core.NewNotifier(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Upsert inserts or replaces the entry for id and notifies listeners.
//
// A new id gets the next sequence id. An existing id keeps its sequence id
// and has its content and priority replaced; if both are unchanged (content
// being the same comparable value) no notification is sent.
//
// Upsert panics on the zero Identity and does nothing after Close.
func (r *Registry) Upsert(id Identity, content core.Widget, priority int) {
	if id.IsZero() {
		panic("hoist: Registry.Upsert called with the zero Identity; use NewIdentity")
	}
	if r.closed {
		return
	}

	if entry, ok := r.entries[id]; ok {
		if entry.Priority == priority && sameContent(entry.Content, content) {
			return
		}
		entry.Content = content
		entry.Priority = priority
		r.logger.Debug("hoist entry updated", "registry", r.name, "id", id, "seq", entry.SequenceID, "priority", priority)
		r.notifier.Notify()
		return
	}

	r.nextSeq++
	entry := &Entry{
		Identity:   id,
		SequenceID: sequencePrefix + strconv.Itoa(r.nextSeq),
		Content:    content,
		Priority:   priority,
	}
	r.entries[id] = entry
	r.logger.Debug("hoist entry added", "registry", r.name, "id", id, "seq", entry.SequenceID, "priority", priority)
	r.notifier.Notify()
}

// Remove deletes the entry for id and notifies listeners. Removing an
// absent id does nothing.
func (r *Registry) Remove(id Identity) {
	entry, ok := r.entries[id]
	if !ok {
		return
	}
	delete(r.entries, id)
	r.logger.Debug("hoist entry removed", "registry", r.name, "id", id, "seq", entry.SequenceID)
	r.notifier.Notify()
}

// Lookup returns the entry for id.
func (r *Registry) Lookup(id Identity) (Entry, bool) {
	entry, ok := r.entries[id]
	if !ok {
		return Entry{}, false
	}
	return *entry, true
}

// Snapshot returns the live entries in render order: priority ascending,
// then insertion order. The slice is freshly allocated on every call.
func (r *Registry) Snapshot() []Entry {
	out := make([]Entry, 0, len(r.entries))
	for _, entry := range r.entries {
		out = append(out, *entry)
	}
	slices.SortFunc(out, compareEntries)
	return out
}

// Subscribe registers listener to be called after every change. Listeners
// run synchronously in subscription order. The returned function removes
// the listener and may be called any number of times.
func (r *Registry) Subscribe(listener func()) (unsubscribe func()) {
	if r.closed {
		return func() {}
	}
	return r.notifier.AddListener(listener)
}

// AddListener is Subscribe, satisfying [core.Listenable].
func (r *Registry) AddListener(listener func()) func() {
	return r.Subscribe(listener)
}

// Len returns the number of live entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// ListenerCount returns the number of subscribed listeners.
func (r *Registry) ListenerCount() int {
	return r.notifier.ListenerCount()
}

// Close discards all entries and listeners without notifying. Later
// upserts and subscriptions are ignored.
func (r *Registry) Close() {
	if r.closed {
		return
	}
	r.closed = true
	clear(r.entries)
	r.notifier.Clear()
	r.logger.Debug("hoist registry closed", "registry", r.name)
}

// Dispose is Close, so a Registry can be owned with [core.UseController].
func (r *Registry) Dispose() {
	r.Close()
}

// Closed reports whether Close has been called.
func (r *Registry) Closed() bool {
	return r.closed
}

// sameContent reports whether a and b are the same comparable widget value.
// Widgets whose dynamic type is not comparable are never the same.
func sameContent(a, b core.Widget) (same bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	t := reflect.TypeOf(a)
	if t != reflect.TypeOf(b) || !t.Comparable() {
		return false
	}
	// A comparable struct can still hold a non-comparable value in an
	// interface field, which makes == panic.
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}
