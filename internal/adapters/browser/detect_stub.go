//go:build !windows

package browser

import "quicklaunch/internal/domain"

// detectExtra has no extra sources outside Windows
func detectExtra() []domain.Browser {
	return nil
}
