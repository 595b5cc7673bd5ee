package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"github.com/ytget/workbench/internal/config"
	"github.com/ytget/workbench/internal/filetree"
	"github.com/ytget/workbench/internal/platform"
	"github.com/ytget/workbench/internal/wm"
)

// appEntry is a launchable item of the start menu and the quick launch bar
type appEntry struct {
	icon  string
	label string
	open  func()
}

// Desktop is the shell: wallpaper, taskbar, start menu and the app windows.
type Desktop struct {
	app          fyne.App
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	logger       *logrus.Entry
	version      string

	windows   *wm.Registry[fyne.Window]
	taskbar   *Taskbar
	startMenu *StartMenu
	launcher  filetree.Launcher

	stopClock context.CancelFunc
}

// NewDesktop creates the desktop inside window and wires the app windows
// to a fresh registry.
func NewDesktop(app fyne.App, window fyne.Window, settings *config.Settings, logger *logrus.Entry, version string) *Desktop {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	d := &Desktop{
		app:          app,
		window:       window,
		settings:     settings,
		localization: localization,
		logger:       logger.WithField("component", "desktop"),
		version:      version,
		launcher:     platform.Launcher{},
	}
	d.windows = wm.NewRegistry(d.newAppWindow, logger)
	d.windows.OnChanged = d.onWindowsChanged

	window.SetTitle(localization.GetText(KeyAppTitle))
	d.setupUI()

	d.logger.WithFields(logrus.Fields{
		"language":  localization.GetCurrentLanguage(),
		"start_dir": settings.GetStartDirectory(),
	}).Info("desktop initialized")
	return d
}

// Start begins the periodic work of the desktop (the taskbar clock). It
// stops when the app stops or Quit is called.
func (d *Desktop) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	d.stopClock = cancel
	d.app.Lifecycle().SetOnStopped(cancel)
	d.taskbar.clock.Start(ctx)
}

// setupUI creates and arranges the desktop components
func (d *Desktop) setupUI() {
	wallpaper := NewWallpaper(d.localization.GetText(KeyWelcome), d.OpenExplorer)

	d.startMenu = NewStartMenu(
		d.localization.GetText(KeyAppTitle),
		d.localization.GetText(KeySearchApps),
		d.menuApps(),
		d.window.Canvas(),
	)

	d.taskbar = NewTaskbar(
		fmt.Sprintf("%s %s", IconStart, d.localization.GetText(KeyStartMenu)),
		d.quickLaunchApps(),
		d.startMenu.Toggle,
		NewClock(d.settings.GetClockLayout),
	)

	d.window.SetContent(container.NewBorder(nil, d.taskbar.Container(), nil, nil, wallpaper))

	// Closing the main window is a shutdown request
	d.window.SetCloseIntercept(d.Shutdown)
}

// quickLaunchApps returns the taskbar shortcuts
func (d *Desktop) quickLaunchApps() []appEntry {
	return []appEntry{
		{IconExplorer, d.localization.GetText(KeyExplorer), d.OpenExplorer},
		{IconNotepad, d.localization.GetText(KeyNotepad), d.OpenNotepad},
		{IconCalculator, d.localization.GetText(KeyCalculator), d.OpenCalculator},
	}
}

// menuApps returns the start menu entries
func (d *Desktop) menuApps() []appEntry {
	return append(d.quickLaunchApps(),
		appEntry{IconSettings, d.localization.GetText(KeySettings), d.OpenSettings},
		appEntry{IconAbout, d.localization.GetText(KeyAbout), d.ShowAbout},
		appEntry{IconShutdown, d.localization.GetText(KeyShutdown), d.Shutdown},
	)
}

// newAppWindow is the registry factory for app windows
func (d *Desktop) newAppWindow(title string, size fyne.Size) fyne.Window {
	w := d.app.NewWindow(title)
	w.SetIcon(LoadAppIcon())
	w.Resize(size)
	return w
}

// frame wraps app content in the standard window chrome: a header with the
// title and a close button that goes through the registry.
func (d *Desktop) frame(title string, content fyne.CanvasObject) fyne.CanvasObject {
	closeBtn := widget.NewButton(IconClose, func() { d.windows.Close(title) })
	closeBtn.Importance = widget.DangerImportance

	header := container.NewStack(
		canvas.NewRectangle(HeaderColor),
		container.NewHBox(widget.NewLabel(title), layout.NewSpacer(), closeBtn),
	)
	return container.NewBorder(header, nil, nil, nil, container.NewPadded(content))
}

// onWindowsChanged keeps the taskbar in sync with the registry
func (d *Desktop) onWindowsChanged() {
	d.taskbar.SetWindows(d.windows.Titles(), func(title string) {
		d.windows.Focus(title)
	})
}

// languageTag returns the collation language of the UI
func (d *Desktop) languageTag() language.Tag {
	tag, err := language.Parse(d.localization.GetCurrentLanguage())
	if err != nil {
		return language.English
	}
	return tag
}

// showError reports a non-fatal failure in parent
func (d *Desktop) showError(err error, parent fyne.Window) {
	if err == nil {
		return
	}
	d.logger.WithError(err).Warn("action failed")
	if parent == nil {
		parent = d.window
	}
	dlg := dialog.NewError(err, parent)
	dlg.SetDismissText(d.localization.GetText(KeyClose))
	dlg.Show()
}

// ShowAbout shows the about dialog
func (d *Desktop) ShowAbout() {
	d.startMenu.Hide()
	about := dialog.NewInformation(
		d.localization.GetText(KeyAbout),
		fmt.Sprintf(d.localization.GetText(KeyAboutText), d.version),
		d.window,
	)
	about.SetDismissText(d.localization.GetText(KeyClose))
	about.Show()
}

// Shutdown asks for confirmation and quits
func (d *Desktop) Shutdown() {
	d.startMenu.Hide()
	dialog.ShowConfirm(
		d.localization.GetText(KeyShutdown),
		d.localization.GetText(KeyShutdownConfirm),
		func(confirmed bool) {
			if confirmed {
				d.Quit()
			}
		},
		d.window,
	)
}

// Quit closes every app window and stops the application
func (d *Desktop) Quit() {
	d.logger.WithField("open_windows", d.windows.Len()).Info("shutting down")
	if d.stopClock != nil {
		d.stopClock()
	}
	d.windows.CloseAll()
	d.app.Quit()
}
