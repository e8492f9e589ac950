package aggregation

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// parseTime recognizes every timestamp representation found in stored documents:
// native times, {seconds, nanoseconds} objects (with or without a leading underscore),
// ISO strings and epoch milliseconds given as numbers or numeric strings.
// Zero and negative epochs are the legacy "unset" marker.
func parseTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		if t.IsZero() {
			return time.Time{}, false
		}
		return t.UTC(), true
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return parseTime(*t)
	case map[string]any:
		return parseSecondsObject(t)
	case string:
		return parseTimeString(t)
	case bool:
		return time.Time{}, false
	}

	ms, err := cast.ToFloat64E(v)
	if err != nil || ms <= 0 {
		return time.Time{}, false
	}
	return fromEpochMillis(ms), true
}

func parseSecondsObject(m map[string]any) (time.Time, bool) {
	secs, ok := lookup(m, "seconds", "_seconds")
	if !ok {
		return time.Time{}, false
	}
	s, err := cast.ToInt64E(secs)
	if err != nil {
		return time.Time{}, false
	}
	var ns int64
	if nanos, ok := lookup(m, "nanoseconds", "_nanoseconds"); ok {
		ns = cast.ToInt64(nanos)
	}
	return time.Unix(s, ns).UTC(), true
}

func parseTimeString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if ms, err := strconv.ParseFloat(s, 64); err == nil {
		if ms <= 0 {
			return time.Time{}, false
		}
		return fromEpochMillis(ms), true
	}
	t, err := cast.ToTimeInDefaultLocationE(s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

func fromEpochMillis(ms float64) time.Time {
	return time.UnixMilli(int64(ms)).UTC()
}

// TimeOf returns the first parseable timestamp among keys
func TimeOf(data map[string]any, keys ...string) (time.Time, bool) {
	for _, k := range keys {
		if t, ok := parseTime(data[k]); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// requiredTime is used for creation-like fields: unparseable or missing values fall back to asOf
func (a *Assembler) requiredTime(data map[string]any, keys ...string) time.Time {
	if t, ok := TimeOf(data, keys...); ok {
		return t
	}
	return a.asOf
}

// optionalTime is used for activity fields: unparseable or missing values stay absent
func optionalTime(data map[string]any, keys ...string) *time.Time {
	for _, k := range keys {
		if t, ok := parseTime(data[k]); ok {
			return &t
		}
	}
	return nil
}
