package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"quicklaunch/internal/adapters/browser"
	"quicklaunch/internal/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change settings",
	Long: `Show or change stored settings.

Known keys:
  lastFilter         last type filter used in the UI
  defaultBrowser     auto, custom, or a detected browser ID
  customBrowserPath  browser executable used when defaultBrowser=custom

Examples:
  quicklaunch-cli settings
  quicklaunch-cli settings get defaultBrowser
  quicklaunch-cli settings set defaultBrowser firefox`,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, key := range domain.SettingKeys {
			fmt.Printf("%-18s %s\n", key, GetStore().Setting(key, ""))
		}
		return nil
	},
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		if !domain.KnownSettingKey(key) {
			return fmt.Errorf("unknown setting: %s", key)
		}
		fmt.Println(GetStore().Setting(key, ""))
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if !domain.KnownSettingKey(key) {
			return fmt.Errorf("unknown setting: %s", key)
		}

		switch key {
		case domain.SettingCustomBrowserPath:
			if !browser.ValidatePath(value) {
				return fmt.Errorf("not a browser executable: %s", value)
			}
		case domain.SettingDefaultBrowser:
			if value != domain.BrowserAuto && value != domain.BrowserCustom && GetLocator().Resolve(value) == "" {
				return fmt.Errorf("unknown browser: %s (see quicklaunch-cli browsers)", value)
			}
		case domain.SettingLastFilter:
			value = domain.ParseFilter(value).String()
		}

		if err := GetStore().SetSetting(key, value); err != nil {
			return err
		}
		fmt.Printf("%s = %s\n", key, value)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}
