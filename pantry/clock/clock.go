// clock/clock.go
package clock

import (
	"fmt"
	"regexp"
	"strconv"

	verrors "github.com/dalemusser/viewkit/pantry/errors"
)

var hhmm = regexp.MustCompile(`^([0-9]{2}):([0-9]{2})$`)

// IsHHMM reports whether s is exactly two digits, a colon, and two digits.
func IsHHMM(s string) bool {
	return hhmm.MatchString(s)
}

// Sum adds HH:MM durations and returns the total as HH:MM.
// Minutes carry into hours and hours are never wrapped, so the hour field
// grows past two digits when needed ("99:59" + "00:01" = "100:00").
// Inputs are only checked for shape; "00:75" is accepted and carries.
// Sum with no arguments returns "00:00".
func Sum(times ...string) (string, error) {
	total, err := Minutes(times...)
	if err != nil {
		return "", err
	}
	return Format(total), nil
}

// Minutes returns the total number of minutes in times.
func Minutes(times ...string) (int, error) {
	total := 0
	for _, t := range times {
		m := hhmm.FindStringSubmatch(t)
		if m == nil {
			return 0, verrors.InvalidInput(fmt.Sprintf("time %q must be formatted as HH:MM", t)).
				WithDetail("time", t)
		}
		h, _ := strconv.Atoi(m[1])
		mi, _ := strconv.Atoi(m[2])
		total += h*60 + mi
	}
	return total, nil
}

// Format renders a minute count as zero-padded HH:MM.
func Format(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
