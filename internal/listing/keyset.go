package listing

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"sort"

	"github.com/vmihailenco/msgpack/v5"

	"marketplace-admin/internal/adminerrors"
	"marketplace-admin/internal/repository"
)

// KeysetPage is one page of a keyset listing. NextToken is empty on the last page.
type KeysetPage[T any] struct {
	Records   []T    `json:"records"`
	NextToken string `json:"nextToken,omitempty"`
}

// SortKeyFunc derives the sort value of a raw document, for collections whose
// documents spell or encode the sort field differently
type SortKeyFunc func(repository.Document) any

// KeysetLister pages with the store's own ordered cursor on (sortField desc, id asc).
// Only the documents of the requested page are fetched and assembled.
//
// With a SortKeyFunc the ordering is done in process over every matching document,
// since the store cannot order on a derived value.
type KeysetLister[T any] struct {
	store      repository.DocumentStore
	collection string
	sortField  string
	sortKey    SortKeyFunc
	filters    []repository.Filter
	assemble   AssembleFunc[T]
}

// NewKeysetLister creates a lister over collection ordered by sortField descending
func NewKeysetLister[T any](store repository.DocumentStore, collection, sortField string, assemble AssembleFunc[T], filters ...repository.Filter) *KeysetLister[T] {
	return &KeysetLister[T]{
		store:      store,
		collection: collection,
		sortField:  sortField,
		filters:    filters,
		assemble:   assemble,
	}
}

// WithSortKey orders by key instead of the raw sortField value
func (l *KeysetLister[T]) WithSortKey(key SortKeyFunc) *KeysetLister[T] {
	l.sortKey = key
	return l
}

// List returns the page following token; an empty token starts at the top
func (l *KeysetLister[T]) List(ctx context.Context, pageSize int, token string) (KeysetPage[T], error) {
	if pageSize <= 0 {
		return KeysetPage[T]{}, fmt.Errorf("listing: %w - page size must be positive, got %d", adminerrors.ErrInvalidInput, pageSize)
	}

	var after []any
	if token != "" {
		var err error
		if after, err = DecodeToken(token); err != nil {
			return KeysetPage[T]{}, err
		}
	}

	docs, err := l.fetch(ctx, after, pageSize+1)
	if err != nil {
		return KeysetPage[T]{}, fmt.Errorf("listing: failed to query %s: %w", l.collection, err)
	}

	var page KeysetPage[T]
	if len(docs) > pageSize {
		docs = docs[:pageSize]
		last := docs[len(docs)-1]
		if page.NextToken, err = EncodeToken(l.keyOf(last), last.ID); err != nil {
			return KeysetPage[T]{}, err
		}
	}
	page.Records = l.assemble(ctx, docs)
	return page, nil
}

func (l *KeysetLister[T]) keyOf(d repository.Document) any {
	if l.sortKey != nil {
		return l.sortKey(d)
	}
	return d.Data[l.sortField]
}

func (l *KeysetLister[T]) fetch(ctx context.Context, after []any, limit int) ([]repository.Document, error) {
	if l.sortKey == nil {
		return l.store.Query(ctx, l.collection, repository.Query{
			Filters:    l.filters,
			OrderBy:    []repository.Order{{Field: l.sortField, Desc: true}, {Field: repository.FieldID}},
			StartAfter: after,
			Limit:      limit,
		})
	}

	docs, err := l.store.Query(ctx, l.collection, repository.Query{Filters: l.filters})
	if err != nil {
		return nil, err
	}
	keys := make(map[string]any, len(docs))
	for _, d := range docs {
		keys[d.ID] = l.sortKey(d)
	}
	sort.SliceStable(docs, func(i, j int) bool {
		return keysetBefore(keys[docs[i].ID], docs[i].ID, keys[docs[j].ID], docs[j].ID)
	})

	start := 0
	if after != nil {
		afterID, _ := after[1].(string)
		start = len(docs)
		for i, d := range docs {
			if keysetBefore(after[0], afterID, keys[d.ID], d.ID) {
				start = i
				break
			}
		}
	}
	docs = docs[start:]
	if len(docs) > limit {
		docs = docs[:limit]
	}
	return docs, nil
}

// keysetBefore orders by key descending, then id ascending
func keysetBefore(keyA any, idA string, keyB any, idB string) bool {
	if c := repository.CompareValues(keyA, keyB); c != 0 {
		return c > 0
	}
	return idA < idB
}

// EncodeToken packs the position after (sortValue, id) into an opaque URL-safe string
func EncodeToken(sortValue any, id string) (string, error) {
	b, err := msgpack.Marshal([]any{sortValue, id})
	if err != nil {
		return "", fmt.Errorf("listing: failed to encode cursor: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// DecodeToken reverses EncodeToken
func DecodeToken(token string) ([]any, error) {
	b, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("listing: %w - malformed token", adminerrors.ErrInvalidCursor)
	}

	dec := msgpack.NewDecoder(bytes.NewReader(b))
	dec.UseLooseInterfaceDecoding(true)
	var pos []any
	if err := dec.Decode(&pos); err != nil {
		return nil, fmt.Errorf("listing: %w - undecodable token", adminerrors.ErrInvalidCursor)
	}
	if len(pos) != 2 {
		return nil, fmt.Errorf("listing: %w - token has %d parts", adminerrors.ErrInvalidCursor, len(pos))
	}
	if _, ok := pos[1].(string); !ok {
		return nil, fmt.Errorf("listing: %w - token id is not a string", adminerrors.ErrInvalidCursor)
	}
	return pos, nil
}
