package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"quicklaunch/internal/adapters/sqlite"
	"quicklaunch/internal/application/commands"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search shortcuts",
	Long: `Search shortcuts by keyword. Matches names and targets,
case-insensitively.

Examples:
  quicklaunch-cli search editor
  quicklaunch-cli search example.com`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index := sqlite.NewIndex()
		if err := index.Open(GetStore().Path()); err != nil {
			return fmt.Errorf("failed to open search index: %w", err)
		}
		defer index.Close()

		searchCmd := commands.NewSearchCommand(GetStore(), index, args[0])
		results, err := searchCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Println("No results found.")
			return nil
		}

		for _, sc := range results {
			printShortcut(sc)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
