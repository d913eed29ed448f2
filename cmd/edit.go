package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <lineID> <projectID> <taskID|NA> <date> <hours> <comment...>",
	Short: "Update an existing time entry by its line id",
	Args:  cobra.MinimumNArgs(6),
	RunE:  runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	lineID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid line id %q: not a number", args[0])
	}

	item, err := parseWorkItemArgs(args[1:], lineID, time.Now())
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
	fmt.Printf("Updated line %d: %g hours on %s for project %d.\n",
		item.LineID, item.Hours, item.Date.Format("2006-01-02"), item.ProjectID)
	return nil
}
