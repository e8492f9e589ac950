package aggregation

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"marketplace-admin/internal/repository"
)

// ReferenceRule says where a foreign ID lives inside a document and which collection
// it points to. Path segments are separated by "."; a segment ending in "[]" iterates
// an array, e.g. "bid_history[].user_id" or "members[]".
type ReferenceRule struct {
	Path       string
	Collection string
}

// IDSet is a de-duplicated set of document IDs
type IDSet map[string]struct{}

// Add inserts id, ignoring the empty "no reference" sentinel
func (s IDSet) Add(id string) {
	if id == "" {
		return
	}
	s[id] = struct{}{}
}

// Sorted returns the IDs in ascending order
func (s IDSet) Sorted() []string {
	ids := lo.Keys(s)
	sort.Strings(ids)
	return ids
}

// Collect walks every record with every rule and groups the referenced IDs by
// target collection. Null, empty and non-string values are skipped.
func Collect(records []repository.Document, rules []ReferenceRule) map[string]IDSet {
	out := make(map[string]IDSet)
	for _, rule := range rules {
		segments := strings.Split(rule.Path, ".")
		for _, rec := range records {
			for _, v := range extract(rec.Data, segments) {
				id, ok := v.(string)
				if !ok || id == "" {
					continue
				}
				set, ok := out[rule.Collection]
				if !ok {
					set = make(IDSet)
					out[rule.Collection] = set
				}
				set.Add(id)
			}
		}
	}
	return out
}

// Merge folds src into dst
func Merge(dst, src map[string]IDSet) map[string]IDSet {
	if dst == nil {
		dst = make(map[string]IDSet)
	}
	for coll, ids := range src {
		if _, ok := dst[coll]; !ok {
			dst[coll] = make(IDSet)
		}
		for id := range ids {
			dst[coll].Add(id)
		}
	}
	return dst
}

func extract(v any, segments []string) []any {
	if len(segments) == 0 {
		return []any{v}
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}

	seg := segments[0]
	name, iterate := strings.CutSuffix(seg, "[]")
	next, ok := m[name]
	if !ok || next == nil {
		return nil
	}
	if !iterate {
		return extract(next, segments[1:])
	}

	var out []any
	for _, el := range asSlice(next) {
		out = append(out, extract(el, segments[1:])...)
	}
	return out
}
