package models

// Settings is the user preference map. It is kept schemaless so that keys
// written by newer clients survive a round trip through older ones.
type Settings map[string]any

// Well-known settings keys.
const (
	SettingMaxItems           = "maxItems"
	SettingAutoCategorize     = "autoCategorize"
	SettingShowPreviews       = "showPreviews"
	SettingSoundNotifications = "soundNotifications"
	SettingTheme              = "theme"
)

// DefaultSettings returns the preferences used before the user changes anything.
func DefaultSettings() Settings {
	return Settings{
		SettingMaxItems:           100,
		SettingAutoCategorize:     true,
		SettingShowPreviews:       true,
		SettingSoundNotifications: false,
		SettingTheme:              "auto",
	}
}

// Clone returns a shallow copy.
func (s Settings) Clone() Settings {
	if s == nil {
		return nil
	}
	out := make(Settings, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Int reads a numeric setting. JSON numbers decode as float64, so both
// representations are accepted.
func (s Settings) Int(key string) (int, bool) {
	switch v := s[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}

// Bool reads a boolean setting.
func (s Settings) Bool(key string) (bool, bool) {
	v, ok := s[key].(bool)
	return v, ok
}

// String reads a string setting.
func (s Settings) String(key string) (string, bool) {
	v, ok := s[key].(string)
	return v, ok
}
