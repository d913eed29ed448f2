package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:   "projects <username>",
	Short: "List the active projects assigned to a user",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjects,
}

func runProjects(cmd *cobra.Command, args []string) error {
	username := args[0]

	client, token, err := session(cmd)
	if err != nil {
		return err
	}

	userID, err := client.ResolveUserID(cmd.Context(), token, username)
	if err != nil {
		return err
	}

	projects, err := client.ListProjects(cmd.Context(), token, userID)
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		fmt.Printf("No active projects found for %q.\n", username)
		return nil
	}

	fmt.Printf("Active projects for %q (user id %d):\n", username, userID)
	for _, p := range projects {
		fmt.Printf("%5d: %s\n", p.ID, p.Name)
	}
	return nil
}
