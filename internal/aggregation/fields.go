package aggregation

import (
	"reflect"

	"github.com/spf13/cast"
)

// Storage field names drift between snake_case and camelCase. The helpers below take
// the aliases in priority order and fall back to the zero value of the view-model.

func lookup(data map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := data[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// str returns the first non-empty scalar value rendered as a string
func str(data map[string]any, keys ...string) string {
	for _, k := range keys {
		v, ok := data[k]
		if !ok || v == nil {
			continue
		}
		switch v.(type) {
		case map[string]any, []any:
			continue
		}
		s, err := cast.ToStringE(v)
		if err == nil && s != "" {
			return s
		}
	}
	return ""
}

func num(data map[string]any, keys ...string) float64 {
	for _, k := range keys {
		v, ok := data[k]
		if !ok || v == nil {
			continue
		}
		if f, err := cast.ToFloat64E(v); err == nil {
			return f
		}
	}
	return 0
}

func integer(data map[string]any, keys ...string) int {
	return int(num(data, keys...))
}

// boolean falls back to def when no alias holds a boolean-like value
func boolean(data map[string]any, def bool, keys ...string) bool {
	for _, k := range keys {
		v, ok := data[k]
		if !ok || v == nil {
			continue
		}
		if b, err := cast.ToBoolE(v); err == nil {
			return b
		}
	}
	return def
}

// strs returns the string elements of the first array alias, never nil
func strs(data map[string]any, keys ...string) []string {
	v, ok := lookup(data, keys...)
	if !ok {
		return []string{}
	}
	out := make([]string, 0)
	for _, el := range asSlice(v) {
		if s, ok := el.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

func maps(data map[string]any, keys ...string) []map[string]any {
	v, ok := lookup(data, keys...)
	if !ok {
		return nil
	}
	var out []map[string]any
	for _, el := range asSlice(v) {
		if m, ok := el.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func asSlice(v any) []any {
	switch s := v.(type) {
	case []any:
		return s
	case []string:
		out := make([]any, len(s))
		for i, el := range s {
			out[i] = el
		}
		return out
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

// firstNonEmpty evaluates aliases in order; array aliases contribute their first element
func firstNonEmpty(data map[string]any, keys ...string) string {
	for _, k := range keys {
		v, ok := data[k]
		if !ok || v == nil {
			continue
		}
		if s, ok := v.(string); ok && s != "" {
			return s
		}
		if items := asSlice(v); len(items) > 0 {
			if s, ok := items[0].(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}
