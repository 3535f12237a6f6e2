package clock

import (
	"testing"
	"time"
)

// TestFromUnix tests epoch to civil date conversion.
func TestFromUnix(t *testing.T) {
	tests := []struct {
		name string
		sec  int64
		want Time
	}{
		{
			name: "epoch start",
			sec:  0,
			want: Time{1970, 1, 1, 0, 0, 0},
		},
		{
			name: "last second of first day",
			sec:  86399,
			want: Time{1970, 1, 1, 23, 59, 59},
		},
		{
			name: "second day is not off by one",
			sec:  86400,
			want: Time{1970, 1, 2, 0, 0, 0},
		},
		{
			name: "millennium boundary",
			sec:  946684800,
			want: Time{2000, 1, 1, 0, 0, 0},
		},
		{
			name: "leap day",
			sec:  1582934400,
			want: Time{2020, 2, 29, 0, 0, 0},
		},
		{
			name: "end of 2020",
			sec:  1609459199,
			want: Time{2020, 12, 31, 23, 59, 59},
		},
		{
			name: "end of four digit years",
			sec:  253402300799,
			want: Time{9999, 12, 31, 23, 59, 59},
		},
		{
			name: "negative clamps to epoch",
			sec:  -1,
			want: Time{1970, 1, 1, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromUnix(tt.sec)
			if got != tt.want {
				t.Errorf("FromUnix(%d) = %+v, want %+v", tt.sec, got, tt.want)
			}
		})
	}
}

// TestFromUnix_RoundTrip verifies Unix is the inverse of FromUnix.
func TestFromUnix_RoundTrip(t *testing.T) {
	epochs := []int64{
		0, 1, 59, 3600, 86399, 86400, 946684800,
		951782400,   // 2000-02-29, leap day in a %400 year
		1078012800,  // 2004-02-29
		1582934400,  // 2020-02-29
		1609459199,  // 2020-12-31 23:59:59
		4107542399,  // 2100-02-28 23:59:59, 2100 is not a leap year
		253402300799,
	}
	for _, e := range epochs {
		if got := FromUnix(e).Unix(); got != e {
			t.Errorf("round trip for %d: got %d", e, got)
		}
	}
}

// TestFromUnix_MatchesStdlib cross-checks the hand-rolled conversion
// against the standard library over a spread of epochs.
func TestFromUnix_MatchesStdlib(t *testing.T) {
	// Step close to a day but not aligned to it, to hit varied
	// times of day across month and year boundaries.
	for e := int64(0); e < 4200000000; e += 86161 {
		got := FromUnix(e)
		want := time.Unix(e, 0).UTC()
		if got.Year != want.Year() || got.Month != int(want.Month()) || got.Day != want.Day() ||
			got.Hour != want.Hour() || got.Minute != want.Minute() || got.Second != want.Second() {
			t.Fatalf("FromUnix(%d) = %+v, want %v", e, got, want)
		}
	}
}

// TestString tests the timestamp text format.
func TestString(t *testing.T) {
	tests := []struct {
		name string
		in   Time
		want string
	}{
		{
			name: "zero pads two digit fields",
			in:   Time{2020, 2, 9, 4, 5, 6},
			want: "2020-02-09 04:05:06",
		},
		{
			name: "epoch start",
			in:   Time{1970, 1, 1, 0, 0, 0},
			want: "1970-01-01 00:00:00",
		},
		{
			name: "year is not padded",
			in:   Time{9999, 12, 31, 23, 59, 59},
			want: "9999-12-31 23:59:59",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestIsLeapYear tests the Gregorian leap year rule.
func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{1970, false},
		{1972, true},
		{1900, false},
		{2000, true},
		{2020, true},
		{2100, false},
		{2400, true},
	}

	for _, tt := range tests {
		if got := isLeapYear(tt.year); got != tt.want {
			t.Errorf("isLeapYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

// TestNow sanity checks that Now produces a plausible current date.
func TestNow(t *testing.T) {
	got := Now()
	want := time.Now().UTC()
	if got.Year != want.Year() {
		t.Errorf("Now().Year = %d, want %d", got.Year, want.Year())
	}
}
