package launcher

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"quicklaunch/internal/application"
	"quicklaunch/internal/domain"
	"quicklaunch/internal/ports"
)

// Launcher implements ports.Launcher by mapping a shortcut's type to an
// OS-level launch action: spawn a process, open a folder via the shell,
// or open a URL through the resolved browser.
type Launcher struct {
	store    ports.ShortcutStore
	browsers ports.BrowserLocator
}

// Ensure Launcher implements the port
var _ ports.Launcher = (*Launcher)(nil)

// NewLauncher creates a launcher reading browser settings from the store
func NewLauncher(store ports.ShortcutStore, browsers ports.BrowserLocator) *Launcher {
	return &Launcher{
		store:    store,
		browsers: browsers,
	}
}

// Launch starts the shortcut's target and returns the announcement
func (l *Launcher) Launch(shortcut domain.Shortcut) (string, error) {
	cmd, message, err := l.Command(shortcut)
	if err != nil {
		return "", err
	}

	if err := cmd.Start(); err != nil {
		return "", &application.LaunchError{
			Name:   shortcut.Name,
			Target: shortcut.Target,
			Reason: err.Error(),
		}
	}

	// Detach: the launched target outlives this process
	go cmd.Wait()

	return message, nil
}

// Command returns the exec.Cmd that Launch would start, without
// starting it. Useful for tests and for bubbletea integration.
func (l *Launcher) Command(shortcut domain.Shortcut) (*exec.Cmd, string, error) {
	target := strings.TrimSpace(shortcut.Target)
	if target == "" {
		return nil, "", application.ErrEmptyTarget
	}

	switch shortcut.Type {
	case domain.TypeProgram:
		info, err := os.Stat(target)
		if err != nil || info.IsDir() {
			return nil, "", &application.LaunchError{
				Name:   shortcut.Name,
				Target: target,
				Reason: "program not found",
			}
		}
		return exec.Command(target), fmt.Sprintf("Launching %s", shortcut.Name), nil

	case domain.TypeFolder:
		if _, err := os.Stat(target); err != nil {
			return nil, "", &application.LaunchError{
				Name:   shortcut.Name,
				Target: target,
				Reason: "folder not found",
			}
		}
		return openPathCommand(target), fmt.Sprintf("Opening %s", shortcut.Name), nil

	case domain.TypeURL:
		if path := l.resolveBrowser(); path != "" {
			return exec.Command(path, target), fmt.Sprintf("Opening %s", shortcut.Name), nil
		}
		return defaultURLCommand(target), fmt.Sprintf("Opening %s", shortcut.Name), nil

	default:
		return nil, "", &application.LaunchError{
			Name:   shortcut.Name,
			Target: target,
			Reason: fmt.Sprintf("unknown shortcut type: %s", shortcut.Type),
		}
	}
}

// resolveBrowser maps the defaultBrowser setting to an executable path.
// An empty result means "use the system default handler".
func (l *Launcher) resolveBrowser() string {
	choice := l.store.Setting(domain.SettingDefaultBrowser, domain.BrowserAuto)

	switch choice {
	case domain.BrowserAuto:
		return ""

	case domain.BrowserCustom:
		custom := l.store.Setting(domain.SettingCustomBrowserPath, "")
		if custom == "" {
			return ""
		}
		if info, err := os.Stat(custom); err != nil || info.IsDir() {
			return ""
		}
		return custom

	default:
		return l.browsers.Resolve(choice)
	}
}
