package repository

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cast"

	"marketplace-admin/internal/adminerrors"
)

// FieldID addresses the document key in filters and orderings.
const FieldID = "__id__"

// Operator is a filter comparison
type Operator string

const (
	OpEqual         Operator = "=="
	OpNotEqual      Operator = "!="
	OpLess          Operator = "<"
	OpLessEqual     Operator = "<="
	OpGreater       Operator = ">"
	OpGreaterEqual  Operator = ">="
	OpArrayContains Operator = "array-contains"
)

// Filter restricts a query to documents whose field satisfies Op against Value.
// Documents missing the field never match.
type Filter struct {
	Field string
	Op    Operator
	Value any
}

// Order is one sort key of a query
type Order struct {
	Field string
	Desc  bool
}

// Query describes a filtered, ordered and optionally paginated read.
// StartAfter holds the sort values of the last document of the previous page,
// aligned with OrderBy.
type Query struct {
	Filters    []Filter
	OrderBy    []Order
	StartAfter []any
	Limit      int
}

// Where appends an equality-style filter
func (q Query) Where(field string, op Operator, value any) Query {
	q.Filters = append(append([]Filter(nil), q.Filters...), Filter{Field: field, Op: op, Value: value})
	return q
}

// Validate checks the query for structural mistakes
func (q Query) Validate() error {
	for _, f := range q.Filters {
		switch f.Op {
		case OpEqual, OpNotEqual, OpLess, OpLessEqual, OpGreater, OpGreaterEqual, OpArrayContains:
		default:
			return fmt.Errorf("%w - unsupported operator %q", adminerrors.ErrInvalidInput, f.Op)
		}
		if f.Field == "" {
			return fmt.Errorf("%w - empty filter field", adminerrors.ErrInvalidInput)
		}
	}
	if len(q.StartAfter) > len(q.OrderBy) {
		return fmt.Errorf("%w - cursor has more values than order keys", adminerrors.ErrInvalidInput)
	}
	if q.Limit < 0 {
		return fmt.Errorf("%w - negative limit", adminerrors.ErrInvalidInput)
	}
	return nil
}

// Evaluate applies q to docs in process. Stores without a query engine use it directly.
// An ascending FieldID key is appended when the ordering does not already contain one,
// so results are always totally ordered.
func Evaluate(docs []Document, q Query) []Document {
	out := make([]Document, 0, len(docs))
	for _, d := range docs {
		if matchesAll(d, q.Filters) {
			out = append(out, d)
		}
	}

	order := withIDTieBreak(q.OrderBy)
	sort.SliceStable(out, func(i, j int) bool {
		return compareDocs(out[i], out[j], order) < 0
	})

	if len(q.StartAfter) > 0 {
		start := len(out)
		for i, d := range out {
			if compareToCursor(d, order, q.StartAfter) > 0 {
				start = i
				break
			}
		}
		out = out[start:]
	}

	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out
}

func withIDTieBreak(order []Order) []Order {
	for _, o := range order {
		if o.Field == FieldID {
			return order
		}
	}
	return append(append([]Order(nil), order...), Order{Field: FieldID})
}

func matchesAll(d Document, filters []Filter) bool {
	for _, f := range filters {
		if !matches(d, f) {
			return false
		}
	}
	return true
}

func matches(d Document, f Filter) bool {
	v, ok := fieldValue(d, f.Field)
	if !ok {
		return false
	}
	switch f.Op {
	case OpEqual:
		return equalValues(v, f.Value)
	case OpNotEqual:
		return !equalValues(v, f.Value)
	case OpArrayContains:
		for _, el := range toAnySlice(v) {
			if equalValues(el, f.Value) {
				return true
			}
		}
		return false
	}

	if typeRank(v) != typeRank(f.Value) {
		return false
	}
	c := compareValues(v, f.Value)
	switch f.Op {
	case OpLess:
		return c < 0
	case OpLessEqual:
		return c <= 0
	case OpGreater:
		return c > 0
	case OpGreaterEqual:
		return c >= 0
	}
	return false
}

// fieldValue resolves a dotted path inside the document body.
func fieldValue(d Document, field string) (any, bool) {
	if field == FieldID {
		return d.ID, true
	}
	var cur any = d.Data
	for _, part := range strings.Split(field, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func compareDocs(a, b Document, order []Order) int {
	for _, o := range order {
		av, _ := fieldValue(a, o.Field)
		bv, _ := fieldValue(b, o.Field)
		c := compareValues(av, bv)
		if o.Desc {
			c = -c
		}
		if c != 0 {
			return c
		}
	}
	return 0
}

func compareToCursor(d Document, order []Order, cursor []any) int {
	for i, v := range cursor {
		dv, _ := fieldValue(d, order[i].Field)
		c := compareValues(dv, v)
		if order[i].Desc {
			c = -c
		}
		if c != 0 {
			return c
		}
	}
	return 0
}

// typeRank orders values of different kinds: null, bool, number, string, time, other.
func typeRank(v any) int {
	switch v.(type) {
	case nil:
		return 0
	case bool:
		return 1
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return 2
	case string:
		return 3
	case time.Time:
		return 4
	default:
		return 5
	}
}

// CompareValues orders two stored values the way query orderings do
func CompareValues(a, b any) int {
	return compareValues(a, b)
}

func compareValues(a, b any) int {
	ra, rb := typeRank(a), typeRank(b)
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	switch av := a.(type) {
	case nil:
		return 0
	case bool:
		bv := b.(bool)
		switch {
		case av == bv:
			return 0
		case !av:
			return -1
		default:
			return 1
		}
	case string:
		return strings.Compare(av, b.(string))
	case time.Time:
		return av.Compare(b.(time.Time))
	}
	if ra == 2 {
		af, bf := cast.ToFloat64(a), cast.ToFloat64(b)
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func equalValues(a, b any) bool {
	ra := typeRank(a)
	if ra != typeRank(b) {
		return false
	}
	if ra == 5 {
		return reflect.DeepEqual(a, b)
	}
	return compareValues(a, b) == 0
}

func toAnySlice(v any) []any {
	switch s := v.(type) {
	case []any:
		return s
	case nil:
		return nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}
