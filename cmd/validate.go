package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"acetime/internal/model"
	"acetime/internal/timecalc"
)

// parseWorkItemArgs validates the shared add/edit positional arguments
// (projectID, taskID|NA, date, hours, comment...) before any network call
// is made. lineID is zero for add.
func parseWorkItemArgs(args []string, lineID int, now time.Time) (model.WorkItem, error) {
	projectID, err := strconv.Atoi(args[0])
	if err != nil {
		return model.WorkItem{}, fmt.Errorf("invalid project id %q: not a number", args[0])
	}

	taskID := 0
	if args[1] != "NA" {
		taskID, err = strconv.Atoi(args[1])
		if err != nil {
			return model.WorkItem{}, fmt.Errorf("invalid task id %q: not a number or NA", args[1])
		}
	}

	date, err := timecalc.ParseEntryDate(args[2], now)
	if err != nil {
		return model.WorkItem{}, err
	}

	hours, err := strconv.ParseFloat(args[3], 64)
	if err != nil || hours <= 0 {
		return model.WorkItem{}, fmt.Errorf("invalid hours %q: expected a positive number", args[3])
	}

	comment := strings.TrimSpace(strings.Join(args[4:], " "))
	if comment == "" {
		return model.WorkItem{}, fmt.Errorf("the comment field is empty")
	}

	return model.WorkItem{
		Date:      date,
		Hours:     hours,
		Comment:   comment,
		ProjectID: projectID,
		TaskID:    taskID,
		LineID:    lineID,
	}, nil
}
