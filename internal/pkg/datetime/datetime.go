// Package datetime implements the wire format used for booking and comment timestamps.
package datetime

import (
	"bytes"
	"fmt"
	"time"
)

// Layout is the local date-time layout used on the wire. Values are interpreted as UTC.
const Layout = "2006-01-02T15:04:05"

var inputLayouts = []string{
	Layout,
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
}

// DateTime is a time.Time that marshals to Layout and accepts Layout or RFC 3339 on input.
type DateTime struct {
	time.Time
}

// New truncates t to whole seconds in UTC.
func New(t time.Time) DateTime {
	return DateTime{Time: t.UTC().Truncate(time.Second)}
}

// Parse parses s using any of the accepted layouts.
func Parse(s string) (DateTime, error) {
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateTime{Time: t.UTC()}, nil
		}
	}
	return DateTime{}, fmt.Errorf("invalid date-time %q, expected %s", s, Layout)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.UTC().Format(Layout) + `"`), nil
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("date-time must be a string, got %s", data)
	}
	parsed, err := Parse(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d DateTime) String() string {
	return d.UTC().Format(Layout)
}
