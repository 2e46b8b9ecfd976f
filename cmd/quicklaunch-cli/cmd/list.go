package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"quicklaunch/internal/application/commands"
	"quicklaunch/internal/domain"
)

var listCmd = &cobra.Command{
	Use:   "list [all|program|folder|url]",
	Short: "List shortcuts",
	Long: `List shortcuts, optionally filtered by type.

Examples:
  quicklaunch-cli list
  quicklaunch-cli list program
  quicklaunch-cli list url`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := domain.FilterAll
		if len(args) > 0 {
			filter = domain.ParseFilter(args[0])
		}

		listCmd := commands.NewListCommand(GetStore(), filter)
		shortcuts, err := listCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		if len(shortcuts) == 0 {
			fmt.Println("No shortcuts.")
			return nil
		}

		for _, sc := range shortcuts {
			printShortcut(sc)
		}
		return nil
	},
}

func printShortcut(sc domain.Shortcut) {
	line := fmt.Sprintf("%s  [%s]  %s → %s", sc.ID, sc.Type, sc.Name, sc.Target)
	if sc.Gesture != "" {
		line += fmt.Sprintf("  (%s)", sc.Gesture)
	}
	fmt.Println(line)
}

func init() {
	rootCmd.AddCommand(listCmd)
}
