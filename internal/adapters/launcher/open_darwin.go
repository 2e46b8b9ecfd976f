//go:build darwin

package launcher

import "os/exec"

// openPathCommand opens a folder in Finder
func openPathCommand(path string) *exec.Cmd {
	return exec.Command("open", path)
}

// defaultURLCommand opens a URL with the system default handler
func defaultURLCommand(url string) *exec.Cmd {
	return exec.Command("open", url)
}
