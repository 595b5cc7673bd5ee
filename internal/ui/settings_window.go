package ui

import (
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"
)

// settingsView edits the persisted preferences
type settingsView struct {
	desktop *Desktop
	window  fyne.Window

	// UI components
	startDirEntry  *widget.Entry
	languageSelect *widget.Select
	clockCheck     *widget.Check
	logLevelSelect *widget.Select
}

// OpenSettings opens the settings window or raises the existing one
func (d *Desktop) OpenSettings() {
	d.startMenu.Hide()
	title := d.localization.GetText(KeySettings)
	w, created := d.windows.Open(title, SettingsSize)
	if !created {
		return
	}
	sv := newSettingsView(d, w)
	sv.loadCurrentSettings()
	w.SetContent(d.frame(title, sv.content()))
}

func newSettingsView(d *Desktop, w fyne.Window) *settingsView {
	sv := &settingsView{desktop: d, window: w}

	sv.startDirEntry = widget.NewEntry()

	languageOptions := make([]string, 0, len(d.settings.GetLanguageOptions()))
	for code := range d.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sv.languageSelect = widget.NewSelect(languageOptions, nil)

	sv.clockCheck = widget.NewCheck(d.localization.GetText(KeyClock24h), nil)

	levels := make([]string, 0, len(logrus.AllLevels))
	for _, level := range logrus.AllLevels {
		levels = append(levels, level.String())
	}
	sv.logLevelSelect = widget.NewSelect(levels, nil)
	return sv
}

func (sv *settingsView) content() fyne.CanvasObject {
	loc := sv.desktop.localization

	browseBtn := widget.NewButton(loc.GetText(KeyBrowse), sv.onBrowseDirectory)
	startDirRow := container.NewBorder(nil, nil, nil, browseBtn, sv.startDirEntry)

	saveBtn := widget.NewButton(loc.GetText(KeySave), sv.onSave)
	saveBtn.Importance = widget.HighImportance
	cancelBtn := widget.NewButton(loc.GetText(KeyCancel), sv.onCancel)

	return container.NewVBox(
		widget.NewLabel(loc.GetText(KeyStartDirectory)),
		startDirRow,
		widget.NewLabel(loc.GetText(KeyLanguage)),
		sv.languageSelect,
		sv.clockCheck,
		widget.NewLabel(loc.GetText(KeyLogLevel)),
		sv.logLevelSelect,
		widget.NewSeparator(),
		widget.NewLabelWithStyle(loc.GetText(KeyRestartNote), fyne.TextAlignLeading, fyne.TextStyle{Italic: true}),
		container.NewHBox(layout.NewSpacer(), cancelBtn, saveBtn),
	)
}

// loadCurrentSettings loads current settings into the UI
func (sv *settingsView) loadCurrentSettings() {
	s := sv.desktop.settings
	sv.startDirEntry.SetText(s.GetStartDirectory())
	sv.languageSelect.SetSelected(s.GetLanguage())
	sv.clockCheck.SetChecked(s.GetClock24h())
	sv.logLevelSelect.SetSelected(s.GetLogLevel())
}

// onBrowseDirectory handles directory browsing
func (sv *settingsView) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sv.startDirEntry.SetText(uri.Path())
	}, sv.window)
}

// onCancel closes the window without saving
func (sv *settingsView) onCancel() {
	sv.desktop.windows.Close(sv.desktop.localization.GetText(KeySettings))
}

// onSave stores the form. Clock and log level apply immediately, language
// on the next start.
func (sv *settingsView) onSave() {
	s := sv.desktop.settings

	if dir := strings.TrimSpace(sv.startDirEntry.Text); dir != "" {
		s.SetStartDirectory(dir)
	}
	if sv.languageSelect.Selected != "" {
		s.SetLanguage(sv.languageSelect.Selected)
	}
	s.SetClock24h(sv.clockCheck.Checked)
	sv.desktop.taskbar.clock.Tick()

	if sv.logLevelSelect.Selected != "" {
		s.SetLogLevel(sv.logLevelSelect.Selected)
		if level, err := logrus.ParseLevel(s.GetLogLevel()); err == nil {
			sv.desktop.logger.Logger.SetLevel(level)
		}
	}

	sv.desktop.logger.WithFields(logrus.Fields{
		"start_dir": s.GetStartDirectory(),
		"language":  s.GetLanguage(),
		"clock_24h": s.GetClock24h(),
		"log_level": s.GetLogLevel(),
	}).Info("settings saved")

	dialog.ShowInformation(
		sv.desktop.localization.GetText(KeySettings),
		sv.desktop.localization.GetText(KeySettingsSaved),
		sv.window,
	)
}
