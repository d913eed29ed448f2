package model

import "time"

// ReportRow is one read-only entry of a time report listing.
type ReportRow struct {
	LineID  string
	Date    time.Time
	Client  string
	Project string
	Task    string
	Hours   float64
	Comment string
}
