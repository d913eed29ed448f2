package cmd

import (
	"testing"
	"time"
)

func TestParseWorkItemArgs(t *testing.T) {
	now := time.Date(2026, 2, 27, 10, 0, 0, 0, time.UTC)

	item, err := parseWorkItemArgs([]string{"5", "NA", "250310", "4.5", "demo"}, 0, now)
	if err != nil {
		t.Fatalf("parseWorkItemArgs: %v", err)
	}
	if item.ProjectID != 5 {
		t.Errorf("ProjectID = %d, want 5", item.ProjectID)
	}
	if item.TaskID != 0 {
		t.Errorf("TaskID = %d, want 0 for NA", item.TaskID)
	}
	if item.Hours != 4.5 {
		t.Errorf("Hours = %g, want 4.5", item.Hours)
	}
	if !item.Date.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Date = %v, want 2025-03-10", item.Date)
	}
	if item.IsEdit() {
		t.Error("IsEdit = true for lineID 0")
	}
}

func TestParseWorkItemArgsJoinsComment(t *testing.T) {
	now := time.Now()
	item, err := parseWorkItemArgs([]string{"5", "31", "today", "8", "fixed", "the", "build"}, 77, now)
	if err != nil {
		t.Fatalf("parseWorkItemArgs: %v", err)
	}
	if item.Comment != "fixed the build" {
		t.Errorf("Comment = %q, want %q", item.Comment, "fixed the build")
	}
	if item.TaskID != 31 {
		t.Errorf("TaskID = %d, want 31", item.TaskID)
	}
	if item.LineID != 77 || !item.IsEdit() {
		t.Errorf("LineID = %d, want 77 (edit)", item.LineID)
	}
}

func TestParseWorkItemArgsRejectsBadInput(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		args []string
	}{
		{"project id not a number", []string{"x", "NA", "today", "4", "c"}},
		{"task id not a number", []string{"5", "abc", "today", "4", "c"}},
		{"bad date", []string{"5", "NA", "2025-03-10", "4", "c"}},
		{"nonexistent date", []string{"5", "NA", "251301", "4", "c"}},
		{"hours not a number", []string{"5", "NA", "today", "4h", "c"}},
		{"zero hours", []string{"5", "NA", "today", "0", "c"}},
		{"negative hours", []string{"5", "NA", "today", "-2", "c"}},
		{"empty comment", []string{"5", "NA", "today", "4", "  "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseWorkItemArgs(tt.args, 0, now); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestExitCodeMapping(t *testing.T) {
	// Unknown errors fall back to the usage exit code.
	if got := exitCode(errDummy{}); got != exitUsage {
		t.Errorf("exitCode(unknown) = %d, want %d", got, exitUsage)
	}
}

type errDummy struct{}

func (errDummy) Error() string { return "dummy" }
