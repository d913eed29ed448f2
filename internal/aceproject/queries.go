package aceproject

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"acetime/internal/model"
)

// ResolveUserID looks up a user id by exact username. The service returns
// an empty set for unknown usernames rather than an error, so an empty
// result maps to *NotFoundError here. When several records match, the
// first row wins.
func (c *Client) ResolveUserID(ctx context.Context, token Token, username string) (int, error) {
	rows, err := c.Do(ctx, "getusers", token, url.Values{
		"FilterUserName": {username},
	})
	if err != nil {
		return 0, err
	}

	raw, ok := findField(rows, "USER_ID")
	if !ok {
		return 0, &NotFoundError{Kind: "user", Key: username}
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &NotFoundError{Kind: "user", Key: username}
	}
	return id, nil
}

// ListProjects returns the active projects assigned to a user. An empty
// result is a valid outcome, not an error.
func (c *Client) ListProjects(ctx context.Context, token Token, userID int) ([]model.Project, error) {
	rows, err := c.Do(ctx, "getprojects", token, url.Values{
		"Filterassigneduserid":   {strconv.Itoa(userID)},
		"Filtercompletedproject": {"False"},
		"SortOrder":              {"PROJECT_ID"},
	})
	if err != nil {
		return nil, err
	}

	var projects []model.Project
	for _, r := range rows {
		if !r.Has("PROJECT_ID") {
			continue
		}
		id, err := strconv.Atoi(r.Get("PROJECT_ID"))
		if err != nil {
			continue
		}
		projects = append(projects, model.Project{ID: id, Name: r.Get("PROJECT_NAME")})
	}
	return projects, nil
}

// ListTasks returns the tasks of a project. An empty result is a valid
// outcome, not an error.
func (c *Client) ListTasks(ctx context.Context, token Token, projectID int) ([]model.Task, error) {
	rows, err := c.Do(ctx, "gettasks", token, url.Values{
		"projectid": {strconv.Itoa(projectID)},
		"forcombo":  {"true"},
	})
	if err != nil {
		return nil, err
	}

	var tasks []model.Task
	for _, r := range rows {
		if !r.Has("TASK_ID") {
			continue
		}
		id, err := strconv.Atoi(r.Get("TASK_ID"))
		if err != nil {
			continue
		}
		tasks = append(tasks, model.Task{ID: id, Name: r.Get("TASK_RESUME")})
	}
	return tasks, nil
}

// TimeReport fetches the time entries a user logged in [from, to].
func (c *Client) TimeReport(ctx context.Context, token Token, userID int, from, to time.Time) ([]model.ReportRow, error) {
	rows, err := c.Do(ctx, "GetTimeReport", token, url.Values{
		"View":                    {"1"},
		"FilterMyWorkItems":       {"False"},
		"FilterTimeCreatorUserId": {strconv.Itoa(userID)},
		"FilterDateFrom":          {from.Format("2006-01-02")},
		"FilterDateTo":            {to.Format("2006-01-02")},
		"format":                  {"xml"},
	})
	if err != nil {
		return nil, err
	}

	var report []model.ReportRow
	for _, r := range rows {
		if !r.Has("DATE_WORKED") {
			continue
		}
		report = append(report, reportRowFrom(r))
	}
	return report, nil
}

// reportRowFrom projects one raw result row into a ReportRow. The service
// sends DATE_WORKED as a timestamp; only the date part is meaningful.
func reportRowFrom(r Row) model.ReportRow {
	raw := r.Get("DATE_WORKED")
	if len(raw) > 10 {
		raw = raw[:10]
	}
	date, _ := time.Parse("2006-01-02", strings.TrimSpace(raw))

	hours, _ := strconv.ParseFloat(r.Get("TOTAL"), 64)

	return model.ReportRow{
		LineID:  r.Get("TIMESHEET_LINE_ID"),
		Date:    date,
		Client:  r.Get("CLIENT_NAME"),
		Project: r.Get("PROJECT_NAME"),
		Task:    r.Get("TASK_RESUME"),
		Hours:   hours,
		Comment: r.Get("COMMENT"),
	}
}
