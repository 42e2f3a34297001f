// dates/dates.go
package dates

import (
	"time"

	verrors "github.com/dalemusser/viewkit/pantry/errors"
)

// CalendarError is returned when text has a recognized shape but its fields
// do not form a real date or time, e.g. "2020-13-45" or "31/02/2020".
// Go's time package rejects out-of-range fields instead of rolling them over,
// so nothing is ever clamped.
type CalendarError struct {
	Text   string
	Layout string
	Err    error
}

func (e *CalendarError) Error() string {
	return "dates: " + e.Text + " is not a valid calendar value: " + e.Err.Error()
}

func (e *CalendarError) Unwrap() error { return e.Err }

// Is lets errors.Is match the coded ErrCalendarInvalid sentinel.
func (e *CalendarError) Is(target error) bool {
	return target == verrors.ErrCalendarInvalid
}

// Parse resolves s into a time in the local zone. See ParseInLocation.
func Parse(s string, withSeconds bool) (time.Time, bool, error) {
	return ParseInLocation(s, withSeconds, time.Local)
}

// ParseInLocation resolves s using a fixed priority: US date, US datetime,
// US datetime-local, BR date, BR datetime. The first matching shape wins,
// which settles the ambiguity between the two conventions in favor of the
// ISO-ordered forms.
//
// ok is false when s is empty or matches no shape; err is then nil.
// When a shape matches but the fields are out of range, ok is true and err
// is a *CalendarError. Date-only inputs resolve to midnight.
func ParseInLocation(s string, withSeconds bool, loc *time.Location) (t time.Time, ok bool, err error) {
	layout, ok := Layout(s, withSeconds)
	if !ok {
		return time.Time{}, false, nil
	}
	if loc == nil {
		loc = time.Local
	}

	t, err = time.ParseInLocation(layout, s, loc)
	if err != nil {
		return time.Time{}, true, &CalendarError{Text: s, Layout: layout, Err: err}
	}
	return t, true, nil
}

// MustParse is like Parse but panics on a calendar error or no match.
// Intended for fixtures and package-level values.
func MustParse(s string, withSeconds bool) time.Time {
	t, ok, err := Parse(s, withSeconds)
	if err != nil {
		panic(err)
	}
	if !ok {
		panic("dates: no known format matches " + s)
	}
	return t
}

// FormatBR renders t as DD/MM/YYYY.
func FormatBR(t time.Time) string {
	return t.Format(LayoutBRDate)
}

// FormatBRDateTime renders t as DD/MM/YYYY HH:MM, adding :SS when withSeconds is set.
func FormatBRDateTime(t time.Time, withSeconds bool) string {
	if withSeconds {
		return t.Format(LayoutBRDateTimeSeconds)
	}
	return t.Format(LayoutBRDateTime)
}
