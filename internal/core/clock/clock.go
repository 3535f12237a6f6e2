// Package clock converts Unix epoch timestamps into proleptic Gregorian
// civil date-times without going through a calendar library. The store
// persists timestamps as "YYYY-MM-DD HH:MM:SS" text in UTC, so the
// conversion here is the single source of truth for that format.
package clock

import (
	"fmt"
	"time"
)

// Time is a civil date-time in UTC. Month and Day are 1-indexed.
type Time struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// daysInMonth holds the month lengths for a non-leap year.
var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// isLeapYear implements the Gregorian rule: divisible by 400 is a leap
// year; otherwise divisible by 100 is not; otherwise divisible by 4 is.
func isLeapYear(year int) bool {
	if year%400 == 0 {
		return true
	}
	if year%100 == 0 {
		return false
	}
	return year%4 == 0
}

func yearLength(year int) int {
	if isLeapYear(year) {
		return 366
	}
	return 365
}

func monthLength(year, month int) int {
	if month == 2 && isLeapYear(year) {
		return 29
	}
	return daysInMonth[month-1]
}

// FromUnix converts seconds since 1970-01-01T00:00:00Z into a civil Time.
// It is total over non-negative input; negative (pre-epoch) values are
// clamped to the epoch.
func FromUnix(sec int64) Time {
	if sec < 0 {
		sec = 0
	}

	days := sec / 86400
	rem := int(sec % 86400)

	year := 1970
	for days >= int64(yearLength(year)) {
		days -= int64(yearLength(year))
		year++
	}

	month := 1
	for days >= int64(monthLength(year, month)) {
		days -= int64(monthLength(year, month))
		month++
	}

	return Time{
		Year:   year,
		Month:  month,
		Day:    int(days) + 1,
		Hour:   rem / 3600,
		Minute: rem % 3600 / 60,
		Second: rem % 60,
	}
}

// Now returns the current civil time in UTC.
func Now() Time {
	return FromUnix(time.Now().Unix())
}

// Unix converts t back to seconds since the epoch. It is the inverse of
// FromUnix for in-range values.
func (t Time) Unix() int64 {
	var days int64
	for y := 1970; y < t.Year; y++ {
		days += int64(yearLength(y))
	}
	for m := 1; m < t.Month; m++ {
		days += int64(monthLength(t.Year, m))
	}
	days += int64(t.Day - 1)
	return days*86400 + int64(t.Hour)*3600 + int64(t.Minute)*60 + int64(t.Second)
}

// String renders t as "YYYY-MM-DD HH:MM:SS" with zero-padded two-digit
// fields and an unpadded year.
func (t Time) String() string {
	return fmt.Sprintf("%d-%02d-%02d %02d:%02d:%02d",
		t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second)
}
