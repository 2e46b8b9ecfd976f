//go:build !windows

package browser

import "os"

// isExecutable checks the execute bits
func isExecutable(_ string, info os.FileInfo) bool {
	return info.Mode()&0o111 != 0
}
