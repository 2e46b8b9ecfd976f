//go:build windows

package launcher

import "os/exec"

// openPathCommand opens a folder in Explorer
func openPathCommand(path string) *exec.Cmd {
	return exec.Command("explorer", path)
}

// defaultURLCommand opens a URL with the system default handler
func defaultURLCommand(url string) *exec.Cmd {
	return exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
}
