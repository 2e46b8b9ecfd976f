package cmd

import (
	"context"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"quicklaunch/internal/application/commands"
)

var rmYes bool

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a shortcut",
	Long: `Remove a shortcut from the store.

Asks for confirmation unless --yes is given.

Examples:
  quicklaunch-cli rm 3f1a...
  quicklaunch-cli rm 3f1a... --yes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		ctx := context.Background()

		shortcut, err := commands.NewGetCommand(GetStore(), id).Execute(ctx)
		if err != nil {
			return err
		}

		if !rmYes {
			var confirmed bool
			prompt := &survey.Confirm{
				Message: fmt.Sprintf("Delete shortcut %q (%s)?", shortcut.Name, shortcut.Target),
			}
			if err := survey.AskOne(prompt, &confirmed); err != nil {
				return err
			}
			if !confirmed {
				fmt.Println("Aborted.")
				return nil
			}
		}

		result, err := commands.NewDeleteCommand(GetStore(), id).Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
	rmCmd.Flags().BoolVarP(&rmYes, "yes", "y", false, "skip the confirmation prompt")
}
