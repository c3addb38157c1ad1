package dataset

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	errUnrecognizedTimestamp = errors.New("unrecognized timestamp format")
	errNotAYear              = errors.New("not a valid year")
)

// timestampLayouts are tried in order. Fractional seconds are accepted after
// the seconds field by time.Parse without being named in the layout.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
}

func parseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errUnrecognizedTimestamp
}

// parseYear reads a birth year. Empty cells mean unknown and yield 0.
// Values such as "1992.0" are accepted.
func parseYear(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) {
		return 0, nil
	}
	if f != math.Trunc(f) || f <= 0 {
		return 0, errNotAYear
	}
	return int(f), nil
}
