package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <projectID> <taskID|NA> <date|today> <hours> <comment...>",
	Short: "Add a time entry to the weekly timesheet",
	Args:  cobra.MinimumNArgs(5),
	RunE:  runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	item, err := parseWorkItemArgs(args, 0, time.Now())
	if err != nil {
		return err
	}

	client, token, err := session(cmd)
	if err != nil {
		return err
	}

	if err := client.SubmitWorkItem(cmd.Context(), token, item); err != nil {
		return err
	}
	if dryRun {
		return nil
	}
	fmt.Printf("Logged %g hours on %s for project %d.\n",
		item.Hours, item.Date.Format("2006-01-02"), item.ProjectID)
	return nil
}
