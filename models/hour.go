package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Hour is an hour of day in the range 0-23. Reservation slots are always
// whole hours; the zero-padded "HH:00" label is only produced at the JSON
// and BSON boundary.
type Hour int

// ParseHour parses a label of the form "HH:00".
func ParseHour(label string) (Hour, error) {
	parts := strings.Split(label, ":")
	if len(parts) != 2 || parts[1] != "00" {
		return 0, fmt.Errorf("invalid hour label %q: want HH:00", label)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour label %q: %w", label, err)
	}
	if h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour label %q: hour out of range", label)
	}
	return Hour(h), nil
}

// ParseHours parses a list of labels, rejecting the whole list on the first
// malformed entry.
func ParseHours(labels []string) ([]Hour, error) {
	hours := make([]Hour, 0, len(labels))
	for _, label := range labels {
		h, err := ParseHour(label)
		if err != nil {
			return nil, err
		}
		hours = append(hours, h)
	}
	return hours, nil
}

// String formats the hour as its zero-padded wire label, e.g. "07:00".
func (h Hour) String() string {
	return fmt.Sprintf("%02d:00", int(h))
}

// Next returns the following hour, wrapping 23 to 0.
func (h Hour) Next() Hour {
	return (h + 1) % 24
}

// HourOf returns the hour-of-day label slot for the given wall-clock time.
func HourOf(t time.Time) Hour {
	return Hour(t.Hour())
}

// Slot is the half-open interval [Start, End) occupied by a reservation.
// End equal to 00:00 means end of day: a slot starting at 23:00 ends at the
// day boundary, not before it starts.
type Slot struct {
	Start Hour
	End   Hour
}

// SlotAt returns the one-hour slot beginning at h.
func SlotAt(h Hour) Slot {
	return Slot{Start: h, End: h.Next()}
}

// bounds maps the slot onto plain integers with the day boundary at 24, so
// interval arithmetic never compares across the midnight wrap.
func (s Slot) bounds() (int, int) {
	start := int(s.Start)
	end := int(s.End)
	if end <= start {
		end += 24
	}
	return start, end
}

// Empty reports whether the slot spans no time. Slots always cover exactly
// one hour, so Start == End only occurs for the zero value.
func (s Slot) Empty() bool {
	return s.Start == s.End
}

// Overlaps reports whether two half-open slots intersect.
func (s Slot) Overlaps(other Slot) bool {
	if s.Empty() || other.Empty() {
		return false
	}
	s1, e1 := s.bounds()
	s2, e2 := other.bounds()
	return s1 < e2 && s2 < e1
}
