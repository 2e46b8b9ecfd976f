//go:build windows

package browser

import (
	"os"
	"strings"

	"golang.org/x/sys/windows/registry"

	"quicklaunch/internal/domain"
)

const startMenuInternetKey = `SOFTWARE\Clients\StartMenuInternet`

// detectExtra enumerates browsers registered under the StartMenuInternet
// key. Registry failures are non-fatal; detection falls back to the
// known-path table alone.
func detectExtra() []domain.Browser {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, startMenuInternetKey, registry.READ)
	if err != nil {
		return nil
	}
	defer key.Close()

	names, err := key.ReadSubKeyNames(-1)
	if err != nil {
		return nil
	}

	var found []domain.Browser
	for _, name := range names {
		b, ok := readRegisteredBrowser(name)
		if !ok {
			continue
		}
		found = append(found, b)
	}
	return found
}

// readRegisteredBrowser resolves one StartMenuInternet entry to a
// browser with an existing executable.
func readRegisteredBrowser(subkey string) (domain.Browser, bool) {
	nameKey, err := registry.OpenKey(registry.LOCAL_MACHINE, startMenuInternetKey+`\`+subkey, registry.READ)
	if err != nil {
		return domain.Browser{}, false
	}
	defer nameKey.Close()

	displayName, _, err := nameKey.GetStringValue("")
	if err != nil || displayName == "" {
		displayName = subkey
	}

	cmdKey, err := registry.OpenKey(registry.LOCAL_MACHINE, startMenuInternetKey+`\`+subkey+`\shell\open\command`, registry.READ)
	if err != nil {
		return domain.Browser{}, false
	}
	defer cmdKey.Close()

	command, _, err := cmdKey.GetStringValue("")
	if err != nil {
		return domain.Browser{}, false
	}

	path := ParseCommandPath(command)
	if path == "" {
		return domain.Browser{}, false
	}
	if _, err := os.Stat(path); err != nil {
		return domain.Browser{}, false
	}

	return domain.Browser{
		ID:   registryBrowserID(displayName),
		Name: displayName,
		Path: path,
	}, true
}

// registryBrowserID derives a stable ID from a display name. A name
// the known-path table also lists reuses its ID, so the two sources
// dedupe to a single entry.
func registryBrowserID(displayName string) string {
	for _, c := range knownBrowsers() {
		if strings.EqualFold(c.name, displayName) {
			return c.id
		}
	}
	id := strings.ToLower(displayName)
	return strings.ReplaceAll(id, " ", "_")
}
