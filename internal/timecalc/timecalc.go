package timecalc

import (
	"fmt"
	"strconv"
	"time"
)

// futureHorizonYears pushes the upper bound of a "days back" range far into
// the future so that future-dated entries are always included.
const futureHorizonYears = 10

// DaySlot returns the day-of-week slot index for t using the service's
// Sunday=0 … Saturday=6 convention.
func DaySlot(t time.Time) int {
	return int(t.Weekday())
}

// SundayWeekStart returns midnight of the Sunday on or before t together
// with t's slot index. For every date D: weekStart(D) <= D < weekStart(D)+7d.
func SundayWeekStart(t time.Time) (time.Time, int) {
	slot := DaySlot(t)
	start := t.AddDate(0, 0, -slot)
	return StartOfDay(start), slot
}

// WeekRange returns the Monday and Sunday of the ISO week containing t.
func WeekRange(t time.Time) (time.Time, time.Time) {
	// Go's weekday: Sunday=0, Monday=1, …, Saturday=6
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // treat Sunday as 7 (ISO)
	}
	monday := StartOfDay(t.AddDate(0, 0, -(wd - 1)))
	sunday := StartOfDay(monday.AddDate(0, 0, 6))
	return monday, sunday
}

// MonthRange returns the first and last day of the month containing t.
func MonthRange(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return first, last
}

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ResolveRange turns a report range argument into a (from, to) date pair.
// The argument is either an integer number of days back from now, or one of
// the named periods week, lastweek, month, lastmonth.
func ResolveRange(now time.Time, arg string) (time.Time, time.Time, error) {
	switch arg {
	case "week":
		from, to := WeekRange(now)
		return from, to, nil
	case "lastweek":
		from, to := WeekRange(now.AddDate(0, 0, -7))
		return from, to, nil
	case "month":
		from, to := MonthRange(now)
		return from, to, nil
	case "lastmonth":
		// Anchor on the last day of the previous month so day overflow near
		// month ends (e.g. May 31 minus one month) cannot skip a month.
		firstOfThis, _ := MonthRange(now)
		from, to := MonthRange(firstOfThis.AddDate(0, 0, -1))
		return from, to, nil
	}

	days, err := strconv.Atoi(arg)
	if err != nil || days < 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid range %q: expected a day count or one of week, lastweek, month, lastmonth", arg)
	}
	from := StartOfDay(now.AddDate(0, 0, -days))
	to := StartOfDay(now.AddDate(futureHorizonYears, 0, 0))
	return from, to, nil
}

// entryDateLayouts are the accepted add/edit date formats: YYMMDD and
// DD-MM-YYYY.
var entryDateLayouts = []string{"060102", "02-01-2006"}

// ParseEntryDate parses an add/edit date argument. "today" resolves to now's
// calendar day.
func ParseEntryDate(arg string, now time.Time) (time.Time, error) {
	if arg == "today" {
		return StartOfDay(now), nil
	}
	for _, layout := range entryDateLayouts {
		if t, err := time.Parse(layout, arg); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: expected YYMMDD, DD-MM-YYYY or today", arg)
}
