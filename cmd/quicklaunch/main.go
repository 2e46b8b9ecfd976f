package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"quicklaunch/internal/adapters/browser"
	"quicklaunch/internal/adapters/jsonstore"
	"quicklaunch/internal/adapters/launcher"
	"quicklaunch/internal/adapters/tui"
	"quicklaunch/internal/config"
)

func main() {
	// Initialize adapters
	store := jsonstore.NewStore(config.DataPath())
	locator := browser.NewLocator()
	dispatcher := launcher.NewLauncher(store, locator)

	// Create and run TUI app
	app := tui.NewApp(store, dispatcher, locator)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
