package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"quicklaunch/internal/application/commands"
	"quicklaunch/internal/domain"
	"quicklaunch/internal/ports"
)

var (
	editName    string
	editType    string
	editTarget  string
	editGesture string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an existing shortcut",
	Long: `Edit fields of an existing shortcut. Only the flags you pass are
changed; everything else keeps its stored value.

Examples:
  quicklaunch-cli edit 3f1a... --name "New name"
  quicklaunch-cli edit 3f1a... --type url --target https://example.com
  quicklaunch-cli edit 3f1a... --gesture ""    # clear the gesture`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var fields ports.ShortcutFields
		if cmd.Flags().Changed("name") {
			fields.Name = &editName
		}
		if cmd.Flags().Changed("type") {
			typ := domain.ParseType(editType)
			fields.Type = &typ
		}
		if cmd.Flags().Changed("target") {
			fields.Target = &editTarget
		}
		if cmd.Flags().Changed("gesture") {
			fields.Gesture = &editGesture
		}

		updateCmd := commands.NewUpdateCommand(GetStore(), args[0], fields)
		result, err := updateCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editName, "name", "", "new display name")
	editCmd.Flags().StringVar(&editType, "type", "", "new type: program, folder, or url")
	editCmd.Flags().StringVar(&editTarget, "target", "", "new target path or URL")
	editCmd.Flags().StringVar(&editGesture, "gesture", "", "new key gesture; empty clears it")
}
