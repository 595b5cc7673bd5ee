package ui

import (
	"context"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Taskbar is the bottom strip: start button, quick launch, one button per
// open window and the clock.
type Taskbar struct {
	container   *fyne.Container
	startButton *widget.Button
	windowBox   *fyne.Container
	clock       *Clock
}

// NewTaskbar creates the taskbar. onStart runs when the start button is tapped.
func NewTaskbar(startLabel string, quickLaunch []appEntry, onStart func(), clock *Clock) *Taskbar {
	tb := &Taskbar{
		startButton: widget.NewButton(startLabel, onStart),
		windowBox:   container.NewHBox(),
		clock:       clock,
	}
	tb.startButton.Importance = widget.SuccessImportance

	quick := container.NewHBox()
	for _, app := range quickLaunch {
		btn := widget.NewButton(app.icon, app.open)
		btn.Importance = widget.LowImportance
		quick.Add(btn)
	}

	row := container.NewHBox(
		tb.startButton,
		quick,
		widget.NewSeparator(),
		tb.windowBox,
		layout.NewSpacer(),
		clock.label,
	)
	tb.container = container.NewStack(canvas.NewRectangle(TaskbarColor), row)
	return tb
}

// Container returns the taskbar canvas object
func (tb *Taskbar) Container() fyne.CanvasObject {
	return tb.container
}

// SetWindows rebuilds the window buttons from titles
func (tb *Taskbar) SetWindows(titles []string, focus func(title string)) {
	tb.windowBox.RemoveAll()
	for _, title := range titles {
		title := title
		tb.windowBox.Add(widget.NewButton(title, func() { focus(title) }))
	}
	tb.windowBox.Refresh()
}

// WindowCount returns the number of window buttons shown
func (tb *Taskbar) WindowCount() int {
	return len(tb.windowBox.Objects)
}

// Clock is the taskbar clock label
type Clock struct {
	label  *widget.Label
	layout func() string
	now    func() time.Time
}

// NewClock creates a clock that formats the time with the layout returned
// by layoutFn, so settings changes apply on the next tick.
func NewClock(layoutFn func() string) *Clock {
	c := &Clock{
		label:  widget.NewLabelWithStyle("", fyne.TextAlignTrailing, fyne.TextStyle{Monospace: true}),
		layout: layoutFn,
		now:    time.Now,
	}
	c.Tick()
	return c
}

// Tick updates the label to the current time. Call it on the UI goroutine.
func (c *Clock) Tick() {
	c.label.SetText(c.now().Format(c.layout()))
}

// Text returns the displayed time
func (c *Clock) Text() string {
	return c.label.Text
}

// Start updates the clock every ClockInterval until ctx is done
func (c *Clock) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(ClockInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				fyne.Do(c.Tick)
			}
		}
	}()
}
