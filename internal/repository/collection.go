package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Dirk1989/Ideal/internal/domain"
	"github.com/Dirk1989/Ideal/internal/logger"
	"github.com/Dirk1989/Ideal/internal/metrics"
)

// Collection is an in-memory record set persisted wholesale to a Backend.
// Mutations and the save that follows them run under one lock, so writers
// to the same collection are serialized.
type Collection[T Record[T]] struct {
	mu      sync.RWMutex
	kind    domain.Collection
	backend Backend
	records []T
	lastID  int64
	now     func() time.Time
}

// Option configures a Collection.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock sets the clock used for ids and document timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// Open loads kind from backend. Missing or unreadable data is logged and the
// seed records are used instead; seed records are not written back until the
// first mutation.
func Open[T Record[T]](ctx context.Context, backend Backend, kind domain.Collection, seed []T, opts ...Option) *Collection[T] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Collection[T]{
		kind:    kind,
		backend: backend,
		now:     o.now,
	}

	log := logger.WithCollection(string(kind))
	records, err := c.load(ctx)
	switch {
	case errors.Is(err, ErrNotStored):
		log.Info("No stored collection, using seed data", slog.Int("records", len(seed)))
		records = seed
	case err != nil:
		log.Error("Failed to load collection, using seed data", slog.String("error", err.Error()))
		records = seed
	default:
		log.Info("Loaded collection", slog.Int("records", len(records)))
	}

	c.records = make([]T, 0, len(records))
	for _, r := range records {
		c.records = append(c.records, r.Clone())
		if id := r.RecordID(); id > c.lastID {
			c.lastID = id
		}
	}
	metrics.SetRecordCount(string(kind), len(c.records))
	return c
}

func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	data, err := c.backend.Load(ctx, c.kind)
	if err != nil {
		return nil, err
	}
	return DecodeDocument[T](c.kind, data)
}

// Kind returns the collection name.
func (c *Collection[T]) Kind() domain.Collection {
	return c.kind
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// List returns copies of all records in insertion order.
func (c *Collection[T]) List(_ context.Context) []T {
	return c.Filter(nil)
}

// Filter returns copies of the records for which keep reports true.
// A nil keep returns every record.
func (c *Collection[T]) Filter(keep func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.records))
	for _, r := range c.records {
		if keep == nil || keep(r) {
			out = append(out, r.Clone())
		}
	}
	return out
}

// Get returns a copy of the record with id.
func (c *Collection[T]) Get(_ context.Context, id int64) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.indexOf(id); i >= 0 {
		return c.records[i].Clone(), nil
	}
	var zero T
	return zero, ErrNotFound
}

// Create assigns a fresh id, stores the record built for it and saves.
func (c *Collection[T]) Create(ctx context.Context, build func(id int64) T) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	record := build(c.nextID())
	c.records = append(c.records, record.Clone())
	c.save(ctx)
	return record.Clone(), nil
}

// Update replaces the record with id by fn's result and saves. An error from
// fn leaves the collection unchanged.
func (c *Collection[T]) Update(ctx context.Context, id int64, fn func(T) (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return zero, ErrNotFound
	}
	updated, err := fn(c.records[i].Clone())
	if err != nil {
		return zero, err
	}
	if updated.RecordID() != id {
		return zero, fmt.Errorf("update %s %d: record id changed to %d", c.kind, id, updated.RecordID())
	}
	c.records[i] = updated.Clone()
	c.save(ctx)
	return updated.Clone(), nil
}

// Delete removes the record with id, saves, and returns the removed record.
func (c *Collection[T]) Delete(ctx context.Context, id int64) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return zero, ErrNotFound
	}
	removed := c.records[i]
	c.records = append(c.records[:i], c.records[i+1:]...)
	c.save(ctx)
	return removed, nil
}

func (c *Collection[T]) indexOf(id int64) int {
	for i, r := range c.records {
		if r.RecordID() == id {
			return i
		}
	}
	return -1
}

// nextID derives an id from the clock, bumped past the last issued id.
func (c *Collection[T]) nextID() int64 {
	id := c.now().UnixMilli()
	if id <= c.lastID {
		id = c.lastID + 1
	}
	c.lastID = id
	return id
}

// save persists the whole collection. Failures are logged and counted only.
func (c *Collection[T]) save(ctx context.Context) {
	timer := metrics.NewTimer()
	metrics.SetRecordCount(string(c.kind), len(c.records))

	doc, err := EncodeDocument(c.kind, c.records, c.now())
	if err == nil {
		// Saves complete even when the request was cancelled.
		err = c.backend.Save(context.WithoutCancel(ctx), c.kind, doc)
	}
	metrics.ObserveSave(string(c.kind), timer.Seconds(), err)
	if err != nil {
		logger.WithCollection(string(c.kind)).ErrorContext(ctx, "Failed to save collection",
			slog.Int("records", len(c.records)),
			slog.String("error", err.Error()),
		)
	}
}
