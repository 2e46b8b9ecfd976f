package domain

// Settings keys stored alongside the shortcut list
const (
	SettingLastFilter        = "lastFilter"
	SettingDefaultBrowser    = "defaultBrowser"
	SettingCustomBrowserPath = "customBrowserPath"
)

// Sentinel values for the defaultBrowser setting
const (
	BrowserAuto   = "auto"   // system default URL handler
	BrowserCustom = "custom" // executable from customBrowserPath
)

// DefaultSettings returns the settings map for a fresh store
func DefaultSettings() map[string]string {
	return map[string]string{
		SettingLastFilter:        FilterAll.String(),
		SettingDefaultBrowser:    BrowserAuto,
		SettingCustomBrowserPath: "",
	}
}

// SettingKeys lists the settings the tools know how to edit
var SettingKeys = []string{
	SettingLastFilter,
	SettingDefaultBrowser,
	SettingCustomBrowserPath,
}

// KnownSettingKey reports whether key is one of the editable settings
func KnownSettingKey(key string) bool {
	for _, k := range SettingKeys {
		if k == key {
			return true
		}
	}
	return false
}
