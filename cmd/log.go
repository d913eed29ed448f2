package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"acetime/internal/report"
	"acetime/internal/timecalc"
)

var logCmd = &cobra.Command{
	Use:   "log <username> <days|week|lastweek|month|lastmonth>",
	Short: "Print a formatted activity log for a date range",
	Args:  cobra.ExactArgs(2),
	RunE:  runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	username := args[0]
	now := time.Now()

	from, to, err := timecalc.ResolveRange(now, args[1])
	if err != nil {
		return err
	}

	client, token, err := session(cmd)
	if err != nil {
		return err
	}

	userID, err := client.ResolveUserID(cmd.Context(), token, username)
	if err != nil {
		return err
	}

	rows, err := client.TimeReport(cmd.Context(), token, userID, from, to)
	if err != nil {
		return err
	}

	report.Render(os.Stdout, rows, from, to, now)
	return nil
}
