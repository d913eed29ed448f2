package model

import "time"

// WorkItem is one timesheet line to create or update. The remote service
// stores hours per week, so Date is mapped to a (week start, day slot)
// pair at submission time.
type WorkItem struct {
	Date      time.Time
	Hours     float64
	Comment   string
	ProjectID int
	// TaskID is optional; 0 means the entry is not bound to a task.
	TaskID int
	// LineID targets an existing timesheet line. 0 creates a new one.
	LineID int
}

// IsEdit reports whether the item updates an existing timesheet line.
func (w WorkItem) IsEdit() bool {
	return w.LineID != 0
}

// Project is one row of a project listing.
type Project struct {
	ID   int
	Name string
}

// Task is one row of a task listing.
type Task struct {
	ID   int
	Name string
}
