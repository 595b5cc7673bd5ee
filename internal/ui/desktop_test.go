package ui

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/workbench/internal/calc"
	"github.com/ytget/workbench/internal/config"
	"github.com/ytget/workbench/internal/notepad"
)

func newTestDesktop(t *testing.T, lang string) *Desktop {
	t.Helper()
	app := test.NewApp()
	settings := config.NewSettings(app)
	settings.SetStartDirectory(t.TempDir())
	settings.SetLanguage(lang)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	window := app.NewWindow("main")
	window.Resize(fyne.NewSize(DesktopWidth, DesktopHeight))
	return NewDesktop(app, window, settings, logrus.NewEntry(logger), "test")
}

func TestDesktop_OpenTwiceKeepsOneWindow(t *testing.T) {
	d := newTestDesktop(t, "en")

	d.OpenNotepad()
	first, ok := d.windows.Get("Notepad")
	require.True(t, ok)

	d.OpenNotepad()
	second, _ := d.windows.Get("Notepad")

	assert.Equal(t, 1, d.windows.Len())
	assert.Same(t, first, second)
	assert.Equal(t, 1, d.taskbar.WindowCount())
}

func TestDesktop_CloseUpdatesTaskbar(t *testing.T) {
	d := newTestDesktop(t, "en")

	d.OpenCalculator()
	d.OpenExplorer()
	assert.Equal(t, []string{"Calculator", "Explorer"}, d.windows.Titles())
	assert.Equal(t, 2, d.taskbar.WindowCount())

	d.windows.Close("Calculator")
	assert.Equal(t, []string{"Explorer"}, d.windows.Titles())
	assert.Equal(t, 1, d.taskbar.WindowCount())

	d.OpenCalculator()
	assert.Equal(t, 2, d.windows.Len())
}

// findButton returns the first button labelled text under obj
func findButton(obj fyne.CanvasObject, text string) *widget.Button {
	switch o := obj.(type) {
	case *widget.Button:
		if o.Text == text {
			return o
		}
	case *fyne.Container:
		for _, child := range o.Objects {
			if btn := findButton(child, text); btn != nil {
				return btn
			}
		}
	}
	return nil
}

func TestDesktop_ChromeCloseButton(t *testing.T) {
	d := newTestDesktop(t, "en")

	d.OpenCalculator()
	w, ok := d.windows.Get("Calculator")
	require.True(t, ok)

	closeBtn := findButton(w.Content(), IconClose)
	require.NotNil(t, closeBtn)
	test.Tap(closeBtn)

	assert.Equal(t, 0, d.windows.Len())
	assert.Equal(t, 0, d.taskbar.WindowCount())

	d.OpenCalculator()
	assert.Equal(t, 1, d.windows.Len())
}

func TestSettingsView_CancelClosesWindow(t *testing.T) {
	d := newTestDesktop(t, "en")

	d.OpenSettings()
	w, ok := d.windows.Get("Settings")
	require.True(t, ok)

	cancelBtn := findButton(w.Content(), "Cancel")
	require.NotNil(t, cancelBtn)
	test.Tap(cancelBtn)

	assert.Equal(t, 0, d.windows.Len())
}

func TestDesktop_DestroyedWindowIsForgotten(t *testing.T) {
	d := newTestDesktop(t, "en")

	d.OpenSettings()
	w, ok := d.windows.Get("Settings")
	require.True(t, ok)

	w.Close()
	assert.Equal(t, 0, d.windows.Len())
	assert.Equal(t, 0, d.taskbar.WindowCount())
}

func TestDesktop_LocalizedTitles(t *testing.T) {
	d := newTestDesktop(t, "ru")

	d.OpenNotepad()
	assert.Equal(t, "ru", d.localization.GetCurrentLanguage())
	assert.Equal(t, []string{"Блокнот"}, d.windows.Titles())
}

func TestDesktop_QuitClosesEverything(t *testing.T) {
	d := newTestDesktop(t, "en")
	d.OpenNotepad()
	d.OpenCalculator()

	d.Quit()
	assert.Equal(t, 0, d.windows.Len())
}

func TestWallpaper_DoubleTapOpensExplorer(t *testing.T) {
	d := newTestDesktop(t, "en")
	opened := 0
	wp := NewWallpaper("welcome", func() { opened++ })

	test.DoubleTap(wp)
	assert.Equal(t, 1, opened)

	wp.OnDoubleTapped = d.OpenExplorer
	test.DoubleTap(wp)
	_, ok := d.windows.Get("Explorer")
	assert.True(t, ok)
}

func TestStartMenu_Filter(t *testing.T) {
	d := newTestDesktop(t, "en")
	m := d.startMenu

	assert.Len(t, m.Filter(""), 6)
	assert.Len(t, m.Filter("   "), 6)

	found := m.Filter("calc")
	require.NotEmpty(t, found)
	assert.Equal(t, "Calculator", found[0].label)

	found = m.Filter(" NOTE ")
	require.Len(t, found, 1)
	assert.Equal(t, "Notepad", found[0].label)

	assert.Empty(t, m.Filter("zzz"))
}

func TestStartMenu_ToggleAndLaunch(t *testing.T) {
	d := newTestDesktop(t, "en")
	m := d.startMenu

	assert.False(t, m.Visible())
	m.Toggle()
	assert.True(t, m.Visible())
	m.Toggle()
	assert.False(t, m.Visible())

	m.Show()
	m.launch(m.Filter("explorer")[0])
	assert.False(t, m.Visible())
	_, ok := d.windows.Get("Explorer")
	assert.True(t, ok)
}

func TestClock_Tick(t *testing.T) {
	layout := config.Clock24hLayout
	c := NewClock(func() string { return layout })
	c.now = func() time.Time { return time.Date(2024, 5, 1, 13, 5, 9, 0, time.UTC) }

	c.Tick()
	assert.Equal(t, "13:05:09", c.Text())

	layout = config.Clock12hLayout
	c.Tick()
	assert.Equal(t, "01:05:09 PM", c.Text())
}

func TestCalculatorView_Keypad(t *testing.T) {
	v := newCalculatorView(calc.NewCalculator(nil))

	for _, key := range []string{"2", "+", "3", "="} {
		test.Tap(v.buttons[key])
	}
	assert.Equal(t, "5", v.display.Text)

	test.Tap(v.buttons["/"])
	test.Tap(v.buttons["0"])
	test.Tap(v.buttons["="])
	assert.Equal(t, calc.ErrorToken, v.display.Text)

	test.Tap(v.buttons["7"])
	test.Tap(v.buttons[calc.ClearKey])
	assert.Equal(t, "", v.display.Text)
}

func TestExplorerView_ListsFoldersOnly(t *testing.T) {
	d := newTestDesktop(t, "en")
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "beta", "inner"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(root, "alpha"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644))

	w := test.NewWindow(nil)
	defer w.Close()
	e := newExplorerView(d, w, root)

	children := e.tree.Children(e.tree.Root())
	require.Len(t, children, 2)
	assert.Equal(t, "alpha", e.tree.Name(children[0]))
	assert.Equal(t, "beta", e.tree.Name(children[1]))

	beta := children[1]
	e.activate(e.tree.UID(beta))
	assert.True(t, e.tree.State(beta).IsExpanded())
	assert.Equal(t, filepath.Join(root, "beta"), e.location.Text)
	require.Len(t, e.tree.Children(beta), 1)
	assert.Equal(t, beta, e.selected)
}

func TestNotepadView_SaveAsAddsExtension(t *testing.T) {
	d := newTestDesktop(t, "en")
	dir := t.TempDir()
	w := test.NewWindow(nil)
	defer w.Close()

	n := newNotepadView(d, w, "Notepad", notepad.NewDocument(nil, nil))
	n.editor.SetText("line one\n\n")

	// The save dialog leaves an empty placeholder under the chosen name
	n.saveStartedAt = time.Now()
	placeholder := filepath.Join(dir, "note")
	require.NoError(t, os.WriteFile(placeholder, nil, 0o644))

	n.store(placeholder)

	data, err := os.ReadFile(placeholder + ".txt")
	require.NoError(t, err)
	assert.Equal(t, "line one\n\n", string(data))
	assert.NoFileExists(t, placeholder)
	assert.Equal(t, "note.txt - Notepad", w.Title())

	n.editor.SetText("changed")
	n.save()
	data, err = os.ReadFile(placeholder + ".txt")
	require.NoError(t, err)
	assert.Equal(t, "changed", string(data))
}

func TestNotepadView_SaveAsKeepsExistingEmptyFile(t *testing.T) {
	d := newTestDesktop(t, "en")
	dir := t.TempDir()
	w := test.NewWindow(nil)
	defer w.Close()

	todo := filepath.Join(dir, "TODO")
	require.NoError(t, os.WriteFile(todo, nil, 0o644))
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(todo, old, old))

	n := newNotepadView(d, w, "Notepad", notepad.NewDocument(nil, nil))
	n.editor.SetText("buy milk")
	n.saveStartedAt = time.Now()
	n.store(todo)

	assert.FileExists(t, todo)
	data, err := os.ReadFile(todo + ".txt")
	require.NoError(t, err)
	assert.Equal(t, "buy milk", string(data))
}

func TestNotepadView_StoreWithoutDialogKeepsFile(t *testing.T) {
	d := newTestDesktop(t, "en")
	w := test.NewWindow(nil)
	defer w.Close()

	empty := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))

	n := newNotepadView(d, w, "Notepad", notepad.NewDocument(nil, nil))
	n.store(empty)

	assert.FileExists(t, empty)
	assert.FileExists(t, empty+".txt")
}

func TestNotepadView_Load(t *testing.T) {
	d := newTestDesktop(t, "en")
	path := filepath.Join(t.TempDir(), "readme.md")
	require.NoError(t, os.WriteFile(path, []byte("# title\n"), 0o644))
	w := test.NewWindow(nil)
	defer w.Close()

	n := newNotepadView(d, w, "Notepad", notepad.NewDocument(nil, nil))
	n.load(path)
	assert.Equal(t, "# title\n", n.editor.Text)
	assert.Equal(t, path, n.doc.Path())

	n.load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Equal(t, "# title\n", n.editor.Text)
	assert.Equal(t, path, n.doc.Path())
}

func TestSettingsView_Save(t *testing.T) {
	d := newTestDesktop(t, "en")
	w := test.NewWindow(nil)
	defer w.Close()

	sv := newSettingsView(d, w)
	sv.loadCurrentSettings()
	assert.True(t, sv.clockCheck.Checked)

	dir := t.TempDir()
	sv.startDirEntry.SetText("  " + dir + "  ")
	sv.languageSelect.SetSelected("ru")
	sv.clockCheck.SetChecked(false)
	sv.logLevelSelect.SetSelected("debug")
	sv.onSave()

	assert.Equal(t, dir, d.settings.GetStartDirectory())
	assert.Equal(t, "ru", d.settings.GetLanguage())
	assert.False(t, d.settings.GetClock24h())
	assert.Equal(t, logrus.DebugLevel, d.logger.Logger.GetLevel())
	// Language applies after restart
	assert.Equal(t, "en", d.localization.GetCurrentLanguage())
}
