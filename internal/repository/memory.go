package repository

import (
	"io"
	"log/slog"
	"reflect"
	"strings"
	"sync"
)

// Memory holds at most one item per identity. The first item added under an
// identity is kept until it is deleted; later adds with the same identity
// are rejected whatever their other fields hold.
type Memory[T any] struct {
	mu       sync.RWMutex
	identity IdentityFunc[T]
	items    map[string]T
	order    []string

	name     string
	logger   *slog.Logger
	recorder Recorder
}

// Option configures a Memory repository.
type Option func(*options)

type options struct {
	name     string
	logger   *slog.Logger
	recorder Recorder
}

// WithName sets the label used in log lines and metrics.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithLogger sets the logger that receives rejected writes.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithMetrics sets the recorder notified of every add and delete.
func WithMetrics(recorder Recorder) Option {
	return func(o *options) { o.recorder = recorder }
}

// NewMemory creates an empty repository keyed by identity.
func NewMemory[T any](identity IdentityFunc[T], opts ...Option) (*Memory[T], error) {
	if identity == nil {
		return nil, ErrNilIdentityFunc
	}
	o := options{name: "items"}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Memory[T]{
		identity: identity,
		items:    make(map[string]T),
		name:     o.name,
		logger:   o.logger.With(slog.String("repository", o.name)),
		recorder: o.recorder,
	}, nil
}

// Add stores item unless it is nil, has a blank identity, or its identity
// is already taken.
func (m *Memory[T]) Add(item T) AddResult {
	result, key := m.add(item)
	switch result {
	case Added:
		m.logger.Debug("item added", slog.String("identity", key))
	case RejectedInvalid:
		m.logger.Warn("rejected item without usable identity", slog.String("identity", key))
	case RejectedDuplicate:
		m.logger.Warn("rejected duplicate identity", slog.String("identity", key))
	}
	if m.recorder != nil {
		m.recorder.RecordAdd(m.name, result.String())
	}
	return result
}

func (m *Memory[T]) add(item T) (AddResult, string) {
	if isNil(item) {
		return RejectedInvalid, ""
	}
	key := m.identity(item)
	if isBlank(key) {
		return RejectedInvalid, key
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.items[key]; exists {
		return RejectedDuplicate, key
	}
	m.items[key] = item
	m.order = append(m.order, key)
	return Added, key
}

// Delete removes the item stored under identity and reports whether one
// was there. Blank identities never match.
func (m *Memory[T]) Delete(identity string) bool {
	found := m.remove(identity)
	if found {
		m.logger.Debug("item deleted", slog.String("identity", identity))
	}
	if m.recorder != nil {
		m.recorder.RecordDelete(m.name, found)
	}
	return found
}

func (m *Memory[T]) remove(identity string) bool {
	if isBlank(identity) {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[identity]; !ok {
		return false
	}
	delete(m.items, identity)
	for i, key := range m.order {
		if key == identity {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true
}

// FindByIdentity returns the item stored under identity.
func (m *Memory[T]) FindByIdentity(identity string) (T, bool) {
	var zero T
	if isBlank(identity) {
		return zero, false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	item, ok := m.items[identity]
	if !ok {
		return zero, false
	}
	return item, true
}

// GetAll returns a snapshot of every stored item in insertion order.
// Changing the returned slice does not affect the repository.
func (m *Memory[T]) GetAll() []T {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]T, 0, len(m.order))
	for _, key := range m.order {
		out = append(out, m.items[key])
	}
	return out
}

func (m *Memory[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// isNil reports whether item is a nil pointer, map, slice, interface, func
// or channel. Identity functions are never called with such values.
func isNil[T any](item T) bool {
	v := reflect.ValueOf(any(item))
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
