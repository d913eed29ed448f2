package aceproject

import (
	"context"
	"net/url"
	"strconv"

	"acetime/internal/model"
	"acetime/internal/timecalc"
)

// hoursdayParams are the seven per-day hour parameters of a week record,
// indexed by the service's Sunday=0 … Saturday=6 slot convention.
var hoursdayParams = [7]string{
	"hoursday1", // Sunday
	"hoursday2",
	"hoursday3",
	"hoursday4",
	"hoursday5",
	"hoursday6",
	"hoursday7", // Saturday
}

// WorkItemParams serializes a work item into the saveworkitem parameter
// set. The service stores a whole week per record: the item's date maps to
// a (week start, day slot) pair and only that slot's hours parameter is
// non-zero. Submitting twice for the same week overwrites; the call never
// accumulates hours.
func WorkItemParams(item model.WorkItem) url.Values {
	weekStart, slot := timecalc.SundayWeekStart(item.Date)

	params := url.Values{
		"weekstart":  {weekStart.Format("2006-01-02")},
		"projectid":  {strconv.Itoa(item.ProjectID)},
		"timetypeid": {"1"},
		"comments":   {item.Comment},
	}
	for i, name := range hoursdayParams {
		if i == slot {
			params.Set(name, strconv.FormatFloat(item.Hours, 'f', -1, 64))
		} else {
			params.Set(name, "0")
		}
	}
	if item.TaskID != 0 {
		params.Set("taskid", strconv.Itoa(item.TaskID))
	}
	if item.IsEdit() {
		params.Set("timesheetlineid", strconv.Itoa(item.LineID))
	}
	return params
}

// SubmitWorkItem creates or updates one weekly timesheet line. Create vs.
// update is decided solely by the item's LineID. In dry-run mode the
// parameters are printed and no network call is made.
func (c *Client) SubmitWorkItem(ctx context.Context, token Token, item model.WorkItem) error {
	params := WorkItemParams(item)

	if c.dryRun {
		c.printParams("saveworkitem", params)
		c.log.Info("dry run enabled, work item not sent")
		return nil
	}

	_, err := c.Do(ctx, "saveworkitem", token, params)
	return err
}
