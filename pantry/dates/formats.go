// dates/formats.go
package dates

import "regexp"

// Shape regexes. Each is anchored at both ends and uses fixed-width ASCII
// digit groups; none of them checks calendar legality.
var (
	usDate                 = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)
	usDateTime             = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2} [0-9]{2}:[0-9]{2}$`)
	usDateTimeSeconds      = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2} [0-9]{2}:[0-9]{2}:[0-9]{2}$`)
	usDateTimeLocal        = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}T[0-9]{2}:[0-9]{2}$`)
	usDateTimeLocalSeconds = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}T[0-9]{2}:[0-9]{2}:[0-9]{2}$`)
	brDate                 = regexp.MustCompile(`^[0-9]{2}/[0-9]{2}/[0-9]{4}$`)
	brDateTime             = regexp.MustCompile(`^[0-9]{2}/[0-9]{2}/[0-9]{4} [0-9]{2}:[0-9]{2}$`)
	brDateTimeSeconds      = regexp.MustCompile(`^[0-9]{2}/[0-9]{2}/[0-9]{4} [0-9]{2}:[0-9]{2}:[0-9]{2}$`)
)

// Go layouts for each shape.
const (
	LayoutUSDate                 = "2006-01-02"
	LayoutUSDateTime             = "2006-01-02 15:04"
	LayoutUSDateTimeSeconds      = "2006-01-02 15:04:05"
	LayoutUSDateTimeLocal        = "2006-01-02T15:04"
	LayoutUSDateTimeLocalSeconds = "2006-01-02T15:04:05"
	LayoutBRDate                 = "02/01/2006"
	LayoutBRDateTime             = "02/01/2006 15:04"
	LayoutBRDateTimeSeconds      = "02/01/2006 15:04:05"
)

// HasUSDateFormat reports whether s is exactly YYYY-MM-DD.
func HasUSDateFormat(s string) bool {
	return usDate.MatchString(s)
}

// HasUSDateTimeFormat reports whether s is exactly "YYYY-MM-DD HH:MM",
// or "YYYY-MM-DD HH:MM:SS" when withSeconds is set.
func HasUSDateTimeFormat(s string, withSeconds bool) bool {
	if withSeconds {
		return usDateTimeSeconds.MatchString(s)
	}
	return usDateTime.MatchString(s)
}

// HasUSDateTimeLocalFormat is HasUSDateTimeFormat with a "T" separator, the
// shape an <input type="datetime-local"> submits.
func HasUSDateTimeLocalFormat(s string, withSeconds bool) bool {
	if withSeconds {
		return usDateTimeLocalSeconds.MatchString(s)
	}
	return usDateTimeLocal.MatchString(s)
}

// HasBRDateFormat reports whether s is exactly DD/MM/YYYY.
func HasBRDateFormat(s string) bool {
	return brDate.MatchString(s)
}

// HasBRDateTimeFormat reports whether s is exactly "DD/MM/YYYY HH:MM",
// or "DD/MM/YYYY HH:MM:SS" when withSeconds is set.
func HasBRDateTimeFormat(s string, withSeconds bool) bool {
	if withSeconds {
		return brDateTimeSeconds.MatchString(s)
	}
	return brDateTime.MatchString(s)
}

// Layout returns the time layout the resolver would use for s.
// US shapes are tried before BR shapes; ok is false when nothing matches.
func Layout(s string, withSeconds bool) (layout string, ok bool) {
	switch {
	case s == "":
		return "", false
	case HasUSDateFormat(s):
		return LayoutUSDate, true
	case HasUSDateTimeFormat(s, withSeconds):
		if withSeconds {
			return LayoutUSDateTimeSeconds, true
		}
		return LayoutUSDateTime, true
	case HasUSDateTimeLocalFormat(s, withSeconds):
		if withSeconds {
			return LayoutUSDateTimeLocalSeconds, true
		}
		return LayoutUSDateTimeLocal, true
	case HasBRDateFormat(s):
		return LayoutBRDate, true
	case HasBRDateTimeFormat(s, withSeconds):
		if withSeconds {
			return LayoutBRDateTimeSeconds, true
		}
		return LayoutBRDateTime, true
	}
	return "", false
}
