package cmd

import (
	"context"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"quicklaunch/internal/application/commands"
	"quicklaunch/internal/domain"
)

var (
	addType    string
	addTarget  string
	addGesture string
)

var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new shortcut",
	Long: `Add a new shortcut to the store.

Missing fields are prompted for interactively.

Examples:
  quicklaunch-cli add "Editor" --type program --target /usr/bin/vim
  quicklaunch-cli add "News" --type url --target https://news.example.com --gesture ctrl+1
  quicklaunch-cli add`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) > 0 {
			name = args[0]
		}

		name, typ, target, err := promptMissing(name, addType, addTarget)
		if err != nil {
			return err
		}

		addCmd := commands.NewAddCommand(GetStore(), name, typ, target, addGesture)
		result, err := addCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		fmt.Printf("ID: %s\n", result.Shortcut.ID)
		return nil
	},
}

func promptMissing(name, typStr, target string) (string, domain.Type, string, error) {
	if name == "" {
		if err := survey.AskOne(&survey.Input{Message: "Shortcut name:"}, &name, survey.WithValidator(survey.Required)); err != nil {
			return "", "", "", err
		}
	}
	if typStr == "" {
		if err := survey.AskOne(&survey.Select{
			Message: "Shortcut type:",
			Options: []string{domain.TypeProgram.String(), domain.TypeFolder.String(), domain.TypeURL.String()},
		}, &typStr); err != nil {
			return "", "", "", err
		}
	}
	if target == "" {
		if err := survey.AskOne(&survey.Input{Message: "Target:"}, &target, survey.WithValidator(survey.Required)); err != nil {
			return "", "", "", err
		}
	}

	return name, domain.ParseType(typStr), target, nil
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addType, "type", "t", "", "shortcut type: program, folder, or url")
	addCmd.Flags().StringVar(&addTarget, "target", "", "executable path, folder path, or URL")
	addCmd.Flags().StringVarP(&addGesture, "gesture", "g", "", "key gesture for the shortcut, e.g. ctrl+1")
}
