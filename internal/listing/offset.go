package listing

import (
	"context"
	"fmt"
	"sort"
	"time"

	"marketplace-admin/internal/adminerrors"
	"marketplace-admin/internal/repository"
)

// Page is one slice of an offset-paginated listing. NextCursor is nil on the last page.
type Page[T any] struct {
	Records    []T  `json:"records"`
	NextCursor *int `json:"nextCursor"`
}

// FetchFunc loads the full matching set of primary documents
type FetchFunc func(ctx context.Context) ([]repository.Document, error)

// AssembleFunc turns a batch of primary documents into view-models, resolving
// references as needed. It must return one record per document, in any order.
type AssembleFunc[T any] func(ctx context.Context, docs []repository.Document) []T

// OffsetLister pages through a freshly fetched and sorted snapshot. The cursor is an
// index into that snapshot, so writes between calls can shift records across pages.
type OffsetLister[T any] struct {
	fetch     FetchFunc
	assemble  AssembleFunc[T]
	createdAt func(T) time.Time
	id        func(T) string
}

// NewOffsetLister builds a lister ordering records by createdAt descending, id ascending
func NewOffsetLister[T any](fetch FetchFunc, assemble AssembleFunc[T], createdAt func(T) time.Time, id func(T) string) *OffsetLister[T] {
	return &OffsetLister[T]{
		fetch:     fetch,
		assemble:  assemble,
		createdAt: createdAt,
		id:        id,
	}
}

// List returns records [cursor, cursor+pageSize). A nil cursor starts from the top
// of a fresh scan.
func (l *OffsetLister[T]) List(ctx context.Context, pageSize int, cursor *int) (Page[T], error) {
	if pageSize <= 0 {
		return Page[T]{}, fmt.Errorf("listing: %w - page size must be positive, got %d", adminerrors.ErrInvalidInput, pageSize)
	}
	start := 0
	if cursor != nil {
		start = *cursor
	}
	if start < 0 {
		return Page[T]{}, fmt.Errorf("listing: %w - negative offset %d", adminerrors.ErrInvalidCursor, start)
	}

	docs, err := l.fetch(ctx)
	if err != nil {
		return Page[T]{}, fmt.Errorf("listing: failed to fetch primary collection: %w", err)
	}

	records := l.assemble(ctx, docs)
	sort.SliceStable(records, func(i, j int) bool {
		ti, tj := l.createdAt(records[i]), l.createdAt(records[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return l.id(records[i]) < l.id(records[j])
	})

	if start >= len(records) {
		return Page[T]{Records: []T{}}, nil
	}
	end := min(start+pageSize, len(records))

	page := Page[T]{Records: records[start:end]}
	if end < len(records) {
		next := end
		page.NextCursor = &next
	}
	return page, nil
}
