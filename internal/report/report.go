// Package report renders time-entry listings as fixed-width text tables
// with aggregate workday statistics.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rickar/cal/v2"

	"acetime/internal/model"
	"acetime/internal/timecalc"
)

// Column widths. Name columns truncate to keep rows aligned; comments wrap
// instead of truncating.
const (
	colLine    = 8
	colDate    = 10
	colClient  = 10
	colProject = 21
	colTask    = 10
	colHours   = 5
	colComment = 40
)

// Stats aggregates a report over its effective date range.
type Stats struct {
	TotalHours float64
	Workdays   int
	From       time.Time
	To         time.Time
}

// Average returns hours per workday. ok is false when the range holds no
// workdays, in which case no average is defined.
func (s Stats) Average() (avg float64, ok bool) {
	if s.Workdays == 0 {
		return 0, false
	}
	return s.TotalHours / float64(s.Workdays), true
}

// Compute totals the rows and counts Monday through Friday workdays in the range.
// When the nominal range end lies in the future, the date of the last
// returned entry becomes the effective end, so partial-period averages are
// not diluted by unworked future days.
func Compute(rows []model.ReportRow, from, to, now time.Time) Stats {
	s := Stats{
		From: timecalc.StartOfDay(from),
		To:   timecalc.StartOfDay(to),
	}

	var last time.Time
	for _, r := range rows {
		s.TotalHours += r.Hours
		if r.Date.After(last) {
			last = r.Date
		}
	}

	today := timecalc.StartOfDay(now)
	if s.To.After(today) {
		if !last.IsZero() {
			s.To = timecalc.StartOfDay(last)
		} else {
			s.To = today
		}
	}

	bc := cal.NewBusinessCalendar()
	for d := s.From; !d.After(s.To); d = d.AddDate(0, 0, 1) {
		if bc.IsWorkday(d) {
			s.Workdays++
		}
	}
	return s
}

// Render writes one table row per entry followed by the range statistics.
// Comments longer than their column wrap onto continuation rows with every
// other column blank; row order is preserved.
func Render(w io.Writer, rows []model.ReportRow, from, to, now time.Time) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No entries found.")
		return
	}

	writeLine(w, "LINE", "DATE", "CLIENT", "PROJECT", "TASK", "HOURS", "COMMENT")
	fmt.Fprintln(w, strings.Repeat("-", colLine+colDate+colClient+colProject+colTask+colHours+colComment+12))

	for _, r := range rows {
		hours := strconv.FormatFloat(r.Hours, 'f', -1, 64)
		lines := wrapText(r.Comment, colComment)
		writeLine(w,
			truncate(r.LineID, colLine),
			r.Date.Format("2006-01-02"),
			truncate(r.Client, colClient),
			truncate(r.Project, colProject),
			truncate(r.Task, colTask),
			truncate(hours, colHours),
			lines[0])
		for _, cont := range lines[1:] {
			writeLine(w, "", "", "", "", "", "", cont)
		}
	}

	stats := Compute(rows, from, to, now)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total: %s hours over %d workdays (%s – %s)\n",
		strconv.FormatFloat(stats.TotalHours, 'f', -1, 64),
		stats.Workdays,
		stats.From.Format("2006-01-02"),
		stats.To.Format("2006-01-02"))
	if avg, ok := stats.Average(); ok {
		fmt.Fprintf(w, "Average: %.1f hours/workday\n", avg)
	} else {
		fmt.Fprintln(w, "Average: n/a (no workdays in range)")
	}
}

func writeLine(w io.Writer, line, date, client, project, task, hours, comment string) {
	fmt.Fprintf(w, "%-*s  %-*s  %-*s  %-*s  %-*s  %*s  %s\n",
		colLine, line,
		colDate, date,
		colClient, client,
		colProject, project,
		colTask, task,
		colHours, hours,
		comment)
}

// truncate cuts s to at most width runes.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}

// wrapText greedily word-wraps s at the given width. Words longer than a
// full line are hard-split so no content is ever dropped. The result always
// holds at least one line.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	cur := ""
	for _, word := range words {
		for len(word) > width {
			if cur != "" {
				lines = append(lines, cur)
				cur = ""
			}
			lines = append(lines, word[:width])
			word = word[width:]
		}
		switch {
		case cur == "":
			cur = word
		case len(cur)+1+len(word) <= width:
			cur += " " + word
		default:
			lines = append(lines, cur)
			cur = word
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
