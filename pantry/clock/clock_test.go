package clock

import (
	"testing"

	verrors "github.com/dalemusser/viewkit/pantry/errors"
)

func TestSum(t *testing.T) {
	tests := []struct {
		name  string
		times []string
		want  string
	}{
		{"example", []string{"06:15", "06:15"}, "12:30"},
		{"carry", []string{"00:45", "00:30"}, "01:15"},
		{"no input", nil, "00:00"},
		{"single", []string{"07:05"}, "07:05"},
		{"past a day", []string{"20:00", "10:00"}, "30:00"},
		{"three digit hours", []string{"99:59", "00:01"}, "100:00"},
		{"minutes over 59 carry", []string{"00:75"}, "01:15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sum(tt.times...)
			if err != nil {
				t.Fatalf("Sum(%q) error: %v", tt.times, err)
			}
			if got != tt.want {
				t.Errorf("Sum(%q) = %q, want %q", tt.times, got, tt.want)
			}
		})
	}
}

func TestSumCommutative(t *testing.T) {
	pairs := [][2]string{
		{"06:15", "01:50"},
		{"00:00", "23:59"},
		{"12:34", "56:07"},
	}
	for _, p := range pairs {
		ab, err1 := Sum(p[0], p[1])
		ba, err2 := Sum(p[1], p[0])
		if err1 != nil || err2 != nil {
			t.Fatalf("unexpected errors: %v, %v", err1, err2)
		}
		if ab != ba {
			t.Errorf("Sum(%q, %q) = %q but reversed = %q", p[0], p[1], ab, ba)
		}
	}
}

func TestSumInvalid(t *testing.T) {
	for _, in := range []string{"6:15", "06-15", "", "06:15:00", "aa:bb", " 06:15"} {
		_, err := Sum("01:00", in)
		if !verrors.Is(err, verrors.ErrInvalidInput) {
			t.Errorf("Sum(%q) error = %v, want invalid input", in, err)
		}
	}
}

func TestIsHHMM(t *testing.T) {
	if !IsHHMM("00:00") || IsHHMM("0:00") {
		t.Error("IsHHMM shape check is wrong")
	}
}
