package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Desktop palette
var (
	WallpaperColor  = color.RGBA{R: 15, G: 59, B: 95, A: 255}
	TaskbarColor    = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	HeaderColor     = color.RGBA{R: 26, G: 26, B: 26, A: 255}
	WelcomeColor    = color.White
)

// DesktopTheme is a dark theme in the desktop palette with compact spacing
type DesktopTheme struct{}

// NewDesktopTheme creates a new desktop theme
func NewDesktopTheme() fyne.Theme {
	return &DesktopTheme{}
}

// Color returns theme colors; the desktop is always dark
func (t *DesktopTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.RGBA{R: 30, G: 30, B: 30, A: 255}
	case theme.ColorNameButton:
		return color.RGBA{R: 51, G: 51, B: 51, A: 255}
	case theme.ColorNameInputBackground:
		return color.RGBA{R: 30, G: 30, B: 30, A: 255}
	case theme.ColorNameForeground:
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 0, G: 122, B: 204, A: 255} // Save button blue
	case theme.ColorNameSuccess:
		return color.RGBA{R: 16, G: 137, B: 62, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *DesktopTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *DesktopTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *DesktopTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameInputRadius:
		return 3
	case theme.SizeNameSelectionRadius:
		return 2
	}

	return theme.DefaultTheme().Size(name)
}
