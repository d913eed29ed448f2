package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks <projectID>",
	Short: "List the tasks of a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runTasks,
}

func runTasks(cmd *cobra.Command, args []string) error {
	projectID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid project id %q: not a number", args[0])
	}

	client, token, err := session(cmd)
	if err != nil {
		return err
	}

	tasks, err := client.ListTasks(cmd.Context(), token, projectID)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		fmt.Printf("No tasks found for project %d.\n", projectID)
		return nil
	}

	fmt.Printf("Tasks for project %d:\n", projectID)
	for _, t := range tasks {
		fmt.Printf("%5d: %s\n", t.ID, t.Name)
	}
	return nil
}
