package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quicklaunch/internal/adapters/browser"
	"quicklaunch/internal/adapters/jsonstore"
	"quicklaunch/internal/adapters/launcher"
	"quicklaunch/internal/config"
	"quicklaunch/internal/ports"
)

var (
	dataPath string
	store    ports.ShortcutStore
	locator  ports.BrowserLocator
)

var rootCmd = &cobra.Command{
	Use:   "quicklaunch-cli",
	Short: "CLI for managing launch shortcuts",
	Long: `quicklaunch-cli is a command-line interface for managing named
shortcuts to programs, folders, and URLs.

It provides commands to add, list, edit, remove, run, and search
shortcuts, and to pick the browser used for url shortcuts.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		store = jsonstore.NewStore(dataPath)
		locator = browser.NewLocator()
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataPath, "data", "d", config.DataPath(), "path to the shortcut data file")
}

// GetStore returns the initialized shortcut store
func GetStore() ports.ShortcutStore {
	return store
}

// GetLocator returns the initialized browser locator
func GetLocator() ports.BrowserLocator {
	return locator
}

// GetLauncher builds a launch dispatcher over the initialized adapters
func GetLauncher() ports.Launcher {
	return launcher.NewLauncher(store, locator)
}
