package filtersort

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"marketplace-admin/internal/adminerrors"
)

// KeyKind selects the comparator of a sort key
type KeyKind int

const (
	KindString KeyKind = iota
	KindNumber
	KindTime
)

// SortKey extracts one sortable value from a record. Only the accessor matching Kind is used.
type SortKey[T any] struct {
	Kind   KeyKind
	String func(T) string
	Number func(T) float64
	Time   func(T) time.Time
}

// Schema declares what a record type can be searched and sorted by
type Schema[T any] struct {
	Searchable []func(T) string
	Sorts      map[string]SortKey[T]
}

// SortOption is a parsed "{field}_{asc|desc}" value
type SortOption struct {
	Field string
	Desc  bool
}

func (o SortOption) String() string {
	if o.Desc {
		return o.Field + "_desc"
	}
	return o.Field + "_asc"
}

// Engine filters and sorts in-memory records of one type
type Engine[T any] struct {
	schema Schema[T]
	tag    language.Tag
}

// NewEngine creates an engine comparing strings with the collation rules of tag
func NewEngine[T any](schema Schema[T], tag language.Tag) *Engine[T] {
	return &Engine[T]{schema: schema, tag: tag}
}

// ParseSort validates a sort option against the schema. An empty value means no sorting.
func (e *Engine[T]) ParseSort(s string) (*SortOption, error) {
	if s == "" {
		return nil, nil
	}
	field, dir, ok := cutLast(s, "_")
	if !ok {
		return nil, fmt.Errorf("filtersort: %w - %q", adminerrors.ErrInvalidSort, s)
	}
	if _, known := e.schema.Sorts[field]; !known {
		return nil, fmt.Errorf("filtersort: %w - unknown field %q", adminerrors.ErrInvalidSort, field)
	}
	switch dir {
	case "asc":
		return &SortOption{Field: field}, nil
	case "desc":
		return &SortOption{Field: field, Desc: true}, nil
	}
	return nil, fmt.Errorf("filtersort: %w - unknown direction %q", adminerrors.ErrInvalidSort, dir)
}

// Options lists every accepted sort value
func (e *Engine[T]) Options() []string {
	out := make([]string, 0, 2*len(e.schema.Sorts))
	for field := range e.schema.Sorts {
		out = append(out, SortOption{Field: field}.String(), SortOption{Field: field, Desc: true}.String())
	}
	sort.Strings(out)
	return out
}

// Apply filters records by term and then sorts them by opt. A blank term keeps every
// record and a nil opt keeps the order; with both the input slice is returned as is.
// The sort is stable, so records with equal keys keep their relative order.
func (e *Engine[T]) Apply(records []T, term string, opt *SortOption) []T {
	term = strings.TrimSpace(term)
	if term == "" && opt == nil {
		return records
	}

	var out []T
	if term != "" {
		out = e.filter(records, term)
	} else {
		out = append([]T(nil), records...)
	}

	if opt != nil {
		if key, ok := e.schema.Sorts[opt.Field]; ok {
			e.sort(out, key, opt.Desc)
		}
	}
	return out
}

func (e *Engine[T]) filter(records []T, term string) []T {
	// Casers and collators keep internal buffers and must not be shared across goroutines
	fold := cases.Fold()
	needle := fold.String(term)

	out := make([]T, 0, len(records))
	for _, r := range records {
		for _, field := range e.schema.Searchable {
			if strings.Contains(fold.String(field(r)), needle) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

func (e *Engine[T]) sort(records []T, key SortKey[T], desc bool) {
	var cmp func(a, b T) int
	switch key.Kind {
	case KindString:
		col := collate.New(e.tag, collate.IgnoreCase)
		cmp = func(a, b T) int { return col.CompareString(key.String(a), key.String(b)) }
	case KindNumber:
		cmp = func(a, b T) int { return compareFloat(key.Number(a), key.Number(b)) }
	case KindTime:
		cmp = func(a, b T) int { return key.Time(a).Compare(key.Time(b)) }
	}

	sort.SliceStable(records, func(i, j int) bool {
		c := cmp(records[i], records[j])
		if desc {
			return c > 0
		}
		return c < 0
	})
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cutLast(s, sep string) (before, after string, found bool) {
	i := strings.LastIndex(s, sep)
	if i <= 0 || i == len(s)-1 {
		return s, "", false
	}
	return s[:i], s[i+len(sep):], true
}
