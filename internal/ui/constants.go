package ui

import (
	"time"

	"fyne.io/fyne/v2"
)

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconStart      = "🟢"
	IconExplorer   = "📁"
	IconNotepad    = "📝"
	IconCalculator = "🧮"
	IconSettings   = "⚙️"
	IconAbout      = "❓"
	IconShutdown   = "🔴"
	IconClose      = "✕"
)

// Default window sizes per app
var (
	ExplorerSize   = fyne.NewSize(800, 500)
	NotepadSize    = fyne.NewSize(700, 500)
	CalculatorSize = fyne.NewSize(300, 400)
	SettingsSize   = fyne.NewSize(500, 400)
)

// Desktop layout sizing
const (
	DesktopWidth  float32 = 1000
	DesktopHeight float32 = 600

	WallpaperTextSize float32 = 40
	CalculatorText    float32 = 18
	ExplorerTreeWidth float32 = 320

	StartMenuWidth  float32 = 300
	StartMenuHeight float32 = 500
	StartMenuMargin float32 = 10
)

// Clock behavior
const (
	ClockInterval = time.Second
)
