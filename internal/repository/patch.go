package repository

import (
	"time"
)

// Transform is a field value the store resolves at write time.
type Transform interface {
	transform()
}

type serverTimestamp struct{}

type arrayUnion struct {
	values []any
}

type arrayRemove struct {
	values []any
}

func (serverTimestamp) transform() {}
func (arrayUnion) transform()      {}
func (arrayRemove) transform()     {}

// ServerTimestamp is replaced by the store's own write time.
func ServerTimestamp() Transform {
	return serverTimestamp{}
}

// ArrayUnion appends the values that are not yet present in the array field.
func ArrayUnion(values ...any) Transform {
	return arrayUnion{values: values}
}

// ArrayRemove drops every occurrence of the values from the array field.
func ArrayRemove(values ...any) Transform {
	return arrayRemove{values: values}
}

// ApplyPatch merges top-level fields into a copy of current, resolving transforms
// against now. current is never modified.
func ApplyPatch(current map[string]any, fields map[string]any, now time.Time) map[string]any {
	out := cloneMap(current)
	if out == nil {
		out = make(map[string]any, len(fields))
	}
	for k, v := range fields {
		out[k] = resolveTransform(out[k], v, now)
	}
	return out
}

func resolveTransform(existing, v any, now time.Time) any {
	switch t := v.(type) {
	case serverTimestamp:
		return now
	case arrayUnion:
		merged := append([]any(nil), toAnySlice(existing)...)
		for _, val := range t.values {
			if !containsValue(merged, val) {
				merged = append(merged, val)
			}
		}
		return merged
	case arrayRemove:
		kept := make([]any, 0)
		for _, el := range toAnySlice(existing) {
			if !containsValue(t.values, el) {
				kept = append(kept, el)
			}
		}
		return kept
	default:
		return cloneValue(v)
	}
}

func containsValue(values []any, v any) bool {
	for _, el := range values {
		if equalValues(el, v) {
			return true
		}
	}
	return false
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case []any:
		out := make([]any, len(t))
		for i, el := range t {
			out[i] = cloneValue(el)
		}
		return out
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}
