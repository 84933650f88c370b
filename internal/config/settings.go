package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage     = "app_language"
	KeyLinkedTags   = "focus_linked_tags"
	KeyCloseDelayMS = "popup_close_delay_ms"
	KeyGroupFile    = "settings_group_file"
	KeyCatalogFile  = "message_catalog_file"
)

// Default values
const (
	DefaultLanguage     = "system"
	DefaultCloseDelayMS = 1500
	MaxCloseDelayMS     = 10000
)

// DefaultLinkedTags are the focus-group tags shared by the panel's windows
var DefaultLinkedTags = []string{"qss"}

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLinkedTags returns the tags treated as one focus group
func (s *Settings) GetLinkedTags() []string {
	tags := s.app.Preferences().StringListWithFallback(KeyLinkedTags, nil)
	if len(tags) == 0 {
		return append([]string(nil), DefaultLinkedTags...)
	}
	return tags
}

// SetLinkedTags sets the focus-group tags. Empty tags are dropped; an empty
// list restores the default.
func (s *Settings) SetLinkedTags(tags []string) {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag != "" {
			cleaned = append(cleaned, tag)
		}
	}
	if len(cleaned) == 0 {
		s.app.Preferences().RemoveValue(KeyLinkedTags)
		return
	}
	s.app.Preferences().SetStringList(KeyLinkedTags, cleaned)
}

// GetCloseDelay returns how long a committed popup stays open
func (s *Settings) GetCloseDelay() time.Duration {
	ms := s.app.Preferences().IntWithFallback(KeyCloseDelayMS, DefaultCloseDelayMS)
	return time.Duration(clampDelay(ms)) * time.Millisecond
}

// SetCloseDelay sets the popup close delay, clamped to 0..MaxCloseDelayMS
func (s *Settings) SetCloseDelay(d time.Duration) {
	s.app.Preferences().SetInt(KeyCloseDelayMS, clampDelay(int(d/time.Millisecond)))
}

func clampDelay(ms int) int {
	if ms < 0 {
		return 0
	}
	if ms > MaxCloseDelayMS {
		return MaxCloseDelayMS
	}
	return ms
}

// GetGroupFile returns the settings group file path, "" for the built-in group
func (s *Settings) GetGroupFile() string {
	return s.app.Preferences().String(KeyGroupFile)
}

// SetGroupFile sets the settings group file path
func (s *Settings) SetGroupFile(path string) {
	s.app.Preferences().SetString(KeyGroupFile, path)
}

// GetCatalogFile returns the message catalog path, "" for the embedded one
func (s *Settings) GetCatalogFile() string {
	return s.app.Preferences().String(KeyCatalogFile)
}

// SetCatalogFile sets the message catalog path
func (s *Settings) SetCatalogFile(path string) {
	s.app.Preferences().SetString(KeyCatalogFile, path)
}
