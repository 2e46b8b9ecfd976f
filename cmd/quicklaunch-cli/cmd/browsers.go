package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var browsersCmd = &cobra.Command{
	Use:   "browsers",
	Short: "List detected web browsers",
	Long: `List the web browsers detected on this machine. The ID column is
what the defaultBrowser setting accepts.

Examples:
  quicklaunch-cli browsers`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		browsers := GetLocator().Detect()
		if len(browsers) == 0 {
			fmt.Println("No browsers detected.")
			return nil
		}

		for _, b := range browsers {
			fmt.Printf("%-12s %-20s %s\n", b.ID, b.Name, b.Path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(browsersCmd)
}
