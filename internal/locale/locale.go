// Package locale renders dates the way the portal displays them: French,
// matching the original fr-FR formatting of charts and tables. All stored
// dates stay ISO-8601; these helpers are display-only.
package locale

import "time"

var frMonths = [13]string{
	"",
	"janvier",
	"février",
	"mars",
	"avril",
	"mai",
	"juin",
	"juillet",
	"août",
	"septembre",
	"octobre",
	"novembre",
	"décembre",
}

// MonthLabel returns the fr-FR month/year label used as the revenue
// grouping key, e.g. "janvier 2025".
func MonthLabel(t time.Time) string {
	return frMonths[int(t.Month())] + " " + t.Format("2006")
}

// FormatDate renders a date as dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatDateTime renders a timestamp as dd/mm/yyyy hh:mm.
func FormatDateTime(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}
