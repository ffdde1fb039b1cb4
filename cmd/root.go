package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"task-tracker.com/task-tracker/internal/services"
	"task-tracker.com/task-tracker/internal/ui"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:           "task-tracker",
	Short:         "Track to-dos, deadlines and events from the terminal",
	Long:          "Starts an interactive session. Type commands such as 'todo Buy milk' or 'list'; 'bye' ends the session.",
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		app, err := bootstrap()
		if err != nil {
			return err
		}
		defer app.close()

		console := ui.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
		session, err := services.NewSessionService(ctx, app.store, console, app.cfg.SaveTimeout())
		if err != nil {
			return err
		}

		if err := session.Run(ctx); err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		rootCmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
