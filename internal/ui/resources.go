package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	AppIcon = "workbench.png"
)

// LoadAppIcon loads the application icon from disk, falling back to the
// theme's computer icon when the file is not shipped next to the binary.
func LoadAppIcon() fyne.Resource {
	res, err := fyne.LoadResourceFromPath(AppIcon)
	if err != nil {
		return theme.ComputerIcon()
	}
	return res
}
