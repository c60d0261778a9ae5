package util

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var ErrBadDateTime = errors.New("expected ISO date-time")

func ParseIntDefault(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(strings.TrimSpace(s))
}

func ParseID(s string) (uint, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return 0, errors.New("id must be positive")
	}
	return uint(v), nil
}

// OptionalID parses an id query value; blank means absent.
func OptionalID(s string) (*uint, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	v, err := ParseID(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// OptionalDateTime parses an ISO-8601 date-time. Values without an offset are
// read in loc.
func OptionalDateTime(s string, loc *time.Location) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return &t, nil
		}
	}
	return nil, ErrBadDateTime
}
