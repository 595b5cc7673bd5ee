package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Wallpaper is the desktop background. Double tapping it runs OnDoubleTapped.
type Wallpaper struct {
	widget.BaseWidget

	background *canvas.Rectangle
	caption    *canvas.Text

	OnDoubleTapped func()
}

// NewWallpaper creates the desktop background with a welcome caption
func NewWallpaper(caption string, onDoubleTapped func()) *Wallpaper {
	w := &Wallpaper{
		background:     canvas.NewRectangle(WallpaperColor),
		caption:        canvas.NewText(caption, WelcomeColor),
		OnDoubleTapped: onDoubleTapped,
	}
	w.caption.TextSize = WallpaperTextSize
	w.caption.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	w.caption.Alignment = fyne.TextAlignCenter
	w.ExtendBaseWidget(w)
	return w
}

// DoubleTapped implements fyne.DoubleTappable
func (w *Wallpaper) DoubleTapped(_ *fyne.PointEvent) {
	if w.OnDoubleTapped != nil {
		w.OnDoubleTapped()
	}
}

// CreateRenderer creates the widget renderer
func (w *Wallpaper) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(w.background, container.NewCenter(w.caption)))
}
