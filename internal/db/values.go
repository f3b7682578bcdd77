package db

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var timeFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05 -0700 MST",
	"2006-01-02 15:04:05 +0000 UTC",
	"2006-01-02",
}

// parseTimeString parses zone-less values in loc.
func parseTimeString(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, format := range timeFormats {
		if t, err := time.ParseInLocation(format, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// asTime converts a scanned column value into a time.
// ok is false for NULL or unparseable values.
func asTime(v any, loc *time.Location) (time.Time, bool) {
	switch val := v.(type) {
	case time.Time:
		return val, true
	case string:
		return parseTimeString(val, loc)
	case []byte:
		return parseTimeString(string(val), loc)
	case int64:
		return time.Unix(val, 0).In(loc), true
	default:
		return time.Time{}, false
	}
}

// asInt64 converts a scanned column value into an integer. NULL is zero.
func asInt64(v any) (int64, error) {
	switch val := v.(type) {
	case nil:
		return 0, nil
	case int64:
		return val, nil
	case int:
		return int64(val), nil
	case float64:
		return int64(val), nil
	case bool:
		if val {
			return 1, nil
		}
		return 0, nil
	case []byte:
		return parseIntString(string(val))
	case string:
		return parseIntString(val)
	default:
		return 0, fmt.Errorf("unsupported numeric value %T", v)
	}
}

func parseIntString(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return int64(f), nil
}

// asOptionalInt returns nil for NULL.
func asOptionalInt(v any) (*int, error) {
	if v == nil {
		return nil, nil
	}
	n, err := asInt64(v)
	if err != nil {
		return nil, err
	}
	i := int(n)
	return &i, nil
}

// asString converts a scanned column value into text. NULL is empty.
func asString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return fmt.Sprint(val)
	}
}
