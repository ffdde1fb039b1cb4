package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"task-tracker.com/task-tracker/internal/services"
	"task-tracker.com/task-tracker/internal/ui"
)

var execCmd = &cobra.Command{
	Use:     "exec <command> [args...]",
	Short:   "Run a single tracker command and exit",
	Example: "  task-tracker exec deadline Submit report /by 2024-08-28 1800",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := bootstrap()
		if err != nil {
			return err
		}
		defer app.close()

		console := ui.NewConsole(strings.NewReader(""), cmd.OutOrStdout())
		session, err := services.NewSessionService(cmd.Context(), app.store, console, app.cfg.SaveTimeout())
		if err != nil {
			return err
		}

		session.Execute(cmd.Context(), strings.Join(args, " "))
		return nil
	},
}

func init() {
	// Flags end at the tracker keyword so "exec mark -1" reaches the parser.
	execCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(execCmd)
}
