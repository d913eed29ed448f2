package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"acetime/internal/aceproject"
	"acetime/internal/config"
	"acetime/internal/dump"
	"acetime/internal/logging"
)

var (
	cfgPath       string
	verbose       bool
	dryRun        bool
	dumpResponses bool
	apiURL        string
)

var rootCmd = &cobra.Command{
	Use:   "acetime",
	Short: "AceProject timesheet command-line client",
	Long: `acetime is a command-line client for the AceProject timesheet service.
It reads credentials from a three-line config file (account, username,
password), logs in, and performs one operation per invocation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Exit codes by error kind. Every remote error is terminal for the run.
const (
	exitUsage     = 1
	exitConfig    = 2
	exitAuth      = 3
	exitTransport = 4
	exitNotFound  = 5
	exitRemote    = 6
)

// Execute is the entry point called from main. It is the single place that
// maps error kinds to exit codes and messages.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var (
		cfgErr       *config.Error
		authErr      *aceproject.AuthError
		transportErr *aceproject.TransportError
		notFoundErr  *aceproject.NotFoundError
		remoteErr    *aceproject.RemoteError
	)
	switch {
	case errors.As(err, &cfgErr):
		return exitConfig
	case errors.As(err, &authErr):
		// Checked before transport: login wraps its transport failures.
		return exitAuth
	case errors.As(err, &transportErr):
		return exitTransport
	case errors.As(err, &notFoundErr):
		return exitNotFound
	case errors.As(err, &remoteErr):
		return exitRemote
	}
	return exitUsage
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath, "Path to the credentials file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Print the work item parameters without sending them")
	rootCmd.PersistentFlags().BoolVar(&dumpResponses, "dump", false, "Write each raw XML response to a timestamped file")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Override the service base URL")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(logCmd)
}

// session loads credentials, builds the API client, and logs in. The
// session token lives in memory for the rest of the run; there is no
// expiry handling, an expired token surfaces as a downstream error.
func session(cmd *cobra.Command) (*aceproject.Client, aceproject.Token, error) {
	logger := logging.Setup(verbose)

	creds, err := config.Load(cfgPath)
	if err != nil {
		return nil, "", err
	}

	opts := aceproject.Options{Logger: logger, DryRun: dryRun}
	if dumpResponses {
		opts.Dump = &dump.Writer{Dir: "."}
	}
	client := aceproject.New(apiURL, opts)

	logger.Info("logging in", "account", creds.Account, "username", creds.Username)
	token, err := client.Login(cmd.Context(), creds.Account, creds.Username, creds.Password)
	if err != nil {
		return nil, "", err
	}
	return client, token, nil
}
