// Package calendar knows which days the US equity market trades on and
// derives the dashboard's default date range from it.
package calendar

import (
	"time"

	"github.com/guttosm/mag7pulse/internal/domain/models"
)

// LastNBusinessDays returns the last n US business days on or before from
// (most recent first).
func LastNBusinessDays(n int, from time.Time) []time.Time {
	out := make([]time.Time, 0, n)
	d := Truncate(from)

	for len(out) < n {
		if IsBusinessDay(d) {
			out = append(out, d)
		}
		d = d.AddDate(0, 0, -1)
	}
	return out
}

// LastBusinessDay returns the most recent US business day on or before t.
func LastBusinessDay(t time.Time) time.Time {
	return LastNBusinessDays(1, t)[0]
}

// DefaultRange ends on the last business day on or before now and starts
// days calendar days earlier.
func DefaultRange(now time.Time, days int) models.DateRange {
	end := LastBusinessDay(now)
	return models.DateRange{Start: end.AddDate(0, 0, -days), End: end}
}

// Truncate drops the clock part of t, keeping its calendar date in UTC.
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsBusinessDay reports whether the NYSE holds a full session on d.
func IsBusinessDay(d time.Time) bool {
	d = Truncate(d)
	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false
	}
	_, holiday := holidays(d.Year())[d]
	return !holiday
}

// holidays returns the observed NYSE full-day holidays of a year.
func holidays(year int) map[time.Time]struct{} {
	out := map[time.Time]struct{}{}
	add := func(t time.Time) { out[t] = struct{}{} }

	// A Saturday New Year's Day is not observed on Dec 31.
	newYear := date(year, time.January, 1)
	if newYear.Weekday() == time.Sunday {
		add(newYear.AddDate(0, 0, 1))
	} else if newYear.Weekday() != time.Saturday {
		add(newYear)
	}

	add(nthWeekday(year, time.January, time.Monday, 3))  // Martin Luther King Jr. Day
	add(nthWeekday(year, time.February, time.Monday, 3)) // Washington's Birthday
	add(easterSunday(year).AddDate(0, 0, -2))            // Good Friday
	add(lastWeekday(year, time.May, time.Monday))        // Memorial Day
	if year >= 2022 {
		add(observed(date(year, time.June, 19))) // Juneteenth
	}
	add(observed(date(year, time.July, 4)))                // Independence Day
	add(nthWeekday(year, time.September, time.Monday, 1))  // Labor Day
	add(nthWeekday(year, time.November, time.Thursday, 4)) // Thanksgiving
	add(observed(date(year, time.December, 25)))           // Christmas

	return out
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// observed shifts a Saturday holiday to Friday and a Sunday one to Monday.
func observed(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, -1)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	}
	return d
}

func nthWeekday(year int, month time.Month, wd time.Weekday, n int) time.Time {
	d := date(year, month, 1)
	for d.Weekday() != wd {
		d = d.AddDate(0, 0, 1)
	}
	return d.AddDate(0, 0, 7*(n-1))
}

func lastWeekday(year int, month time.Month, wd time.Weekday) time.Time {
	d := date(year, month+1, 1).AddDate(0, 0, -1)
	for d.Weekday() != wd {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

// easterSunday returns the date of Easter Sunday for a given year
// (Meeus/Jones/Butcher algorithm).
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return date(year, time.Month(month), day)
}
