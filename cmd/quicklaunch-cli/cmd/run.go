package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"quicklaunch/internal/application/commands"
	"quicklaunch/internal/logging"
)

var runCmd = &cobra.Command{
	Use:   "run <id-or-name>",
	Short: "Run a shortcut",
	Long: `Run a shortcut by its ID or display name.

Programs are spawned detached, folders open in the file manager, and
URLs open in the configured browser.

Examples:
  quicklaunch-cli run 3f1a...
  quicklaunch-cli run "Editor"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.New()

		runCmd := commands.NewRunCommand(GetStore(), GetLauncher(), args[0])
		result, err := runCmd.Execute(context.Background())
		if err != nil {
			logger.Error().Err(err).Str("ref", args[0]).Msg("launch failed")
			return err
		}

		logger.Info().
			Str("id", result.Shortcut.ID).
			Str("type", result.Shortcut.Type.String()).
			Str("target", result.Shortcut.Target).
			Msg("launched shortcut")
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
