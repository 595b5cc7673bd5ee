package config

import (
	"strings"

	"fyne.io/fyne/v2"
	"github.com/ytget/workbench/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyStartDirectory = "start_directory"
	KeyLanguage       = "app_language"
	KeyClock24h       = "clock_24h"
	KeyLogLevel       = "log_level"
)

// Default values
const (
	DefaultLanguage = "system"
	DefaultClock24h = true
	DefaultLogLevel = "info"
)

// Clock layouts
const (
	Clock24hLayout = "15:04:05"
	Clock12hLayout = "03:04:05 PM"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetStartDirectory returns the directory the explorer opens at
func (s *Settings) GetStartDirectory() string {
	dir := s.app.Preferences().String(KeyStartDirectory)
	if dir == "" {
		defaultDir := platform.HomeDir()
		s.SetStartDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetStartDirectory sets the explorer start directory
func (s *Settings) SetStartDirectory(dir string) {
	s.app.Preferences().SetString(KeyStartDirectory, strings.TrimSpace(dir))
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
	if _, ok := s.GetLanguageOptions()[lang]; !ok {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetClock24h returns whether the taskbar clock uses 24-hour time
func (s *Settings) GetClock24h() bool {
	return s.app.Preferences().BoolWithFallback(KeyClock24h, DefaultClock24h)
}

// SetClock24h sets the taskbar clock mode
func (s *Settings) SetClock24h(enabled bool) {
	s.app.Preferences().SetBool(KeyClock24h, enabled)
}

// GetClockLayout returns the time layout for the taskbar clock
func (s *Settings) GetClockLayout() string {
	if s.GetClock24h() {
		return Clock24hLayout
	}
	return Clock12hLayout
}

// GetLogLevel returns the configured log level name
func (s *Settings) GetLogLevel() string {
	level := s.app.Preferences().String(KeyLogLevel)
	if level == "" {
		s.SetLogLevel(DefaultLogLevel)
		return DefaultLogLevel
	}
	return level
}

// SetLogLevel sets the log level name
func (s *Settings) SetLogLevel(level string) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		level = DefaultLogLevel
	}
	s.app.Preferences().SetString(KeyLogLevel, level)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
	}
}
