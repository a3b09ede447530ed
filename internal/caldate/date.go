// Package caldate implements a calendar date without clock or timezone.
//
// Every itinerary computation runs on Date values. A Date is converted to a
// time.Time (UTC midnight) only for arithmetic, so daylight-saving transitions
// and local offsets can never move a stay by a day.
package caldate

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
)

// ForbiddenTravelWeekday is the weekday on which inter-city travel is not allowed.
const ForbiddenTravelWeekday = time.Friday

// WeekendWeekdays are the nights priced as weekend nights.
var WeekendWeekdays = []time.Weekday{time.Thursday, time.Friday}

// Date is a year/month/day triple. The zero value is the invalid marker.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

var zero Date

// New returns the normalized date for the given fields, so New(2025, 1, 32)
// is 1 February 2025.
func New(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime returns the calendar date of t in t's own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// FromUnixMilli returns the local calendar date of a millisecond timestamp.
func FromUnixMilli(ms int64) Date {
	return FromTime(time.UnixMilli(ms).In(time.Local))
}

// Time returns the date as UTC midnight.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether d is the invalid marker.
func (d Date) IsZero() bool {
	return d == zero
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// AddDays returns d shifted by n days. n may be negative.
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after other.
func (d Date) Compare(other Date) int {
	return d.Time().Compare(other.Time())
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }

// String returns the ISO form (YYYY-MM-DD), or "Invalid" for the zero date.
func (d Date) String() string {
	if d.IsZero() {
		return invalidISO
	}
	return d.Time().Format(time.DateOnly)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var v *string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v == nil || *v == "" {
		*d = zero
		return nil
	}
	parsed, err := Parse(*v)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

var (
	isoDateOnly  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	hasClockPart = regexp.MustCompile(`[TtZz]`)
)

// layouts carrying a clock component; the zoned ones keep their offset,
// the rest are read in the caller's location.
var (
	zonedLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04Z07:00"}
	localLayouts = []string{"2006-01-02T15:04:05.999999999", "2006-01-02T15:04:05", "2006-01-02T15:04"}
)

// looser human forms accepted as a last resort
var fallbackLayouts = []string{
	"2006/01/02",
	"2006-1-2",
	"Jan 2 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"Mon Jan 2 2006",
	"Mon, 02 Jan 2006",
}

// Parse reads a date string. A bare YYYY-MM-DD is taken as a calendar date
// as-is; a string with a clock component is parsed as an instant and
// truncated to the local calendar date.
func Parse(s string) (Date, error) {
	return parseIn(s, time.Local)
}

func parseIn(s string, loc *time.Location) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return zero, fmt.Errorf("empty date")
	}

	if isoDateOnly.MatchString(s) {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return zero, fmt.Errorf("invalid date %q", s)
		}
		return FromTime(t), nil
	}

	if hasClockPart.MatchString(s) {
		for _, layout := range zonedLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return FromTime(t.In(loc)), nil
			}
		}
		for _, layout := range localLayouts {
			if t, err := time.ParseInLocation(layout, s, loc); err == nil {
				return FromTime(t), nil
			}
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return FromTime(t), nil
		}
	}

	return zero, fmt.Errorf("unrecognized date %q", s)
}

// ParseValue accepts a Date, a time.Time, a millisecond timestamp or a
// string. It never panics; ok is false when v cannot be read as a date.
func ParseValue(v any) (d Date, ok bool) {
	switch x := v.(type) {
	case nil:
		return zero, false
	case Date:
		return x, !x.IsZero()
	case *Date:
		if x == nil || x.IsZero() {
			return zero, false
		}
		return *x, true
	case time.Time:
		if x.IsZero() {
			return zero, false
		}
		return FromTime(x), true
	case int:
		return FromUnixMilli(int64(x)), true
	case int64:
		return FromUnixMilli(x), true
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return zero, false
		}
		return FromUnixMilli(int64(x)), true
	case string:
		parsed, err := Parse(x)
		if err != nil {
			return zero, false
		}
		return parsed, true
	}
	return zero, false
}

// DiffDaysInclusive counts the days from a to b with both ends included.
// It is used to turn an explicit exit date into a night count.
func DiffDaysInclusive(a, b Date) int {
	days := b.Time().Sub(a.Time()).Hours() / 24
	return int(math.Round(days)) + 1
}

// Range returns every date from first to last inclusive. It is empty when last is before first.
func Range(first, last Date) []Date {
	if last.Before(first) {
		return nil
	}
	out := make([]Date, 0, DiffDaysInclusive(first, last))
	for d := first; !d.After(last); d = d.AddDays(1) {
		out = append(out, d)
	}
	return out
}

// IsForbiddenTravelDay reports whether travel between cities is disallowed on d.
func IsForbiddenTravelDay(d Date) bool {
	return !d.IsZero() && d.Weekday() == ForbiddenTravelWeekday
}

// IsWeekendNight reports whether a night spent on d is a weekend night.
func IsWeekendNight(d Date) bool {
	if d.IsZero() {
		return false
	}
	wd := d.Weekday()
	for _, w := range WeekendWeekdays {
		if wd == w {
			return true
		}
	}
	return false
}
