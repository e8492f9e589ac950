package repository

//go:generate mockgen -package=repository -destination=mock_repository.go -source=repository.go DocumentStore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"marketplace-admin/internal/adminerrors"
)

// Document is a raw record as held by the store. ID is the store key and is
// never part of Data.
type Document struct {
	ID   string
	Data map[string]any
}

// DocumentStore defines the document storage interface for the admin console
type DocumentStore interface {
	GetByID(ctx context.Context, collection, id string) (Document, error)
	GetAll(ctx context.Context, collection string) ([]Document, error)
	Query(ctx context.Context, collection string, q Query) ([]Document, error)
	UpdateFields(ctx context.Context, collection, id string, fields map[string]any) error
	Delete(ctx context.Context, collection, id string) error
	Put(ctx context.Context, collection string, doc Document) error
}

// MemoryRepo is a concurrency-safe in-memory implementation of DocumentStore
type MemoryRepo struct {
	mu          sync.RWMutex
	collections map[string]map[string]map[string]any // key: collection -> id -> body
	clock       func() time.Time
	lastStamp   time.Time
}

// MemoryOption configures a MemoryRepo
type MemoryOption func(*MemoryRepo)

// WithClock sets the clock used for server timestamps
func WithClock(clock func() time.Time) MemoryOption {
	return func(r *MemoryRepo) {
		r.clock = clock
	}
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo(opts ...MemoryOption) *MemoryRepo {
	r := &MemoryRepo{
		collections: make(map[string]map[string]map[string]any),
		clock:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GetByID returns a copy of a single document
func (r *MemoryRepo) GetByID(ctx context.Context, collection, id string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	body, ok := r.collections[collection][id]
	if !ok {
		return Document{}, fmt.Errorf("get %s/%s: %w", collection, id, adminerrors.ErrNotFound)
	}
	return Document{ID: id, Data: cloneMap(body)}, nil
}

// GetAll returns every document of a collection ordered by ID
func (r *MemoryRepo) GetAll(ctx context.Context, collection string) ([]Document, error) {
	return r.Query(ctx, collection, Query{})
}

// Query evaluates filters, ordering, cursor and limit over a snapshot of the collection
func (r *MemoryRepo) Query(ctx context.Context, collection string, q Query) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}
	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}

	r.mu.RLock()
	docs := make([]Document, 0, len(r.collections[collection]))
	for id, body := range r.collections[collection] {
		docs = append(docs, Document{ID: id, Data: cloneMap(body)})
	}
	r.mu.RUnlock()

	return Evaluate(docs, q), nil
}

// UpdateFields merges fields into an existing document, resolving write transforms
func (r *MemoryRepo) UpdateFields(ctx context.Context, collection, id string, fields map[string]any) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	body, ok := r.collections[collection][id]
	if !ok {
		return fmt.Errorf("update %s/%s: %w", collection, id, adminerrors.ErrNotFound)
	}
	r.collections[collection][id] = ApplyPatch(body, fields, r.stamp())
	return nil
}

// Delete physically removes a document
func (r *MemoryRepo) Delete(ctx context.Context, collection, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.collections[collection][id]; !ok {
		return fmt.Errorf("delete %s/%s: %w", collection, id, adminerrors.ErrNotFound)
	}
	delete(r.collections[collection], id)
	return nil
}

// Put creates or replaces a document. Write transforms are resolved as in UpdateFields.
func (r *MemoryRepo) Put(ctx context.Context, collection string, doc Document) error {
	if doc.ID == "" {
		return fmt.Errorf("put %s: %w - empty document id", collection, adminerrors.ErrInvalidInput)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("put %s/%s: %w", collection, doc.ID, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.collections[collection]; !ok {
		r.collections[collection] = make(map[string]map[string]any)
	}
	r.collections[collection][doc.ID] = ApplyPatch(nil, doc.Data, r.stamp())
	return nil
}

// stamp returns a strictly increasing server time. Caller must hold the write lock.
func (r *MemoryRepo) stamp() time.Time {
	now := r.clock().UTC()
	if !now.After(r.lastStamp) {
		now = r.lastStamp.Add(time.Microsecond)
	}
	r.lastStamp = now
	return now
}
