//go:build !windows && !darwin

package launcher

import "os/exec"

// openPathCommand opens a folder in the desktop file manager
func openPathCommand(path string) *exec.Cmd {
	return exec.Command("xdg-open", path)
}

// defaultURLCommand opens a URL with the system default handler
func defaultURLCommand(url string) *exec.Cmd {
	return exec.Command("xdg-open", url)
}
