package ui

import (
	"errors"
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"

	"github.com/ytget/workbench/internal/notepad"
)

// notepadView is a plain text editor bound to at most one file
type notepadView struct {
	desktop *Desktop
	window  fyne.Window
	title   string
	doc     *notepad.Document
	editor  *widget.Entry

	// saveStartedAt is when the current save dialog was shown
	saveStartedAt time.Time
}

// OpenNotepad opens the notepad window or raises the existing one
func (d *Desktop) OpenNotepad() {
	d.startMenu.Hide()
	title := d.localization.GetText(KeyNotepad)
	w, created := d.windows.Open(title, NotepadSize)
	if !created {
		return
	}
	n := newNotepadView(d, w, title, notepad.NewDocument(nil, d.logger))
	w.SetContent(d.frame(title, n.content()))
}

func newNotepadView(d *Desktop, w fyne.Window, title string, doc *notepad.Document) *notepadView {
	editor := widget.NewMultiLineEntry()
	editor.Wrapping = fyne.TextWrapWord
	return &notepadView{desktop: d, window: w, title: title, doc: doc, editor: editor}
}

func (n *notepadView) content() fyne.CanvasObject {
	loc := n.desktop.localization
	toolbar := container.NewHBox(
		widget.NewButtonWithIcon(loc.GetText(KeyOpen), theme.FolderOpenIcon(), n.open),
		widget.NewButtonWithIcon(loc.GetText(KeySave), theme.DocumentSaveIcon(), n.save),
		widget.NewButtonWithIcon(loc.GetText(KeySaveAs), theme.DocumentSaveIcon(), n.saveAs),
	)
	return container.NewBorder(toolbar, nil, nil, nil, n.editor)
}

// open replaces the editor content with a chosen file
func (n *notepadView) open() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			n.desktop.showError(err, n.window)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()
		n.load(path)
	}, n.window)
}

func (n *notepadView) load(path string) {
	text, err := n.doc.Open(path)
	if err != nil {
		n.desktop.showError(err, n.window)
		return
	}
	n.editor.SetText(text)
	n.window.SetTitle(n.doc.Title(n.title))
}

// save writes to the bound file, or asks for one first
func (n *notepadView) save() {
	err := n.doc.Save(n.editor.Text)
	switch {
	case errors.Is(err, notepad.ErrNoPath):
		n.saveAs()
	case err != nil:
		n.desktop.showError(err, n.window)
	default:
		n.showSaved(n.doc.Path())
	}
}

// saveAs asks for a target file and writes to it
func (n *notepadView) saveAs() {
	n.saveStartedAt = time.Now()
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			n.desktop.showError(err, n.window)
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		_ = writer.Close()
		n.store(path)
	}, n.window)
	fd.SetFileName("untitled" + notepad.DefaultExtension)
	fd.Show()
}

func (n *notepadView) store(path string) {
	written, err := n.doc.SaveAs(path, n.editor.Text)
	if err != nil {
		n.desktop.showError(err, n.window)
		return
	}
	if written != path {
		removePlaceholder(path, n.saveStartedAt)
	}
	n.window.SetTitle(n.doc.Title(n.title))
	n.showSaved(written)
}

func (n *notepadView) showSaved(path string) {
	size := humanize.Bytes(uint64(len(n.editor.Text)))
	dialog.ShowInformation(
		n.desktop.localization.GetText(KeySaved),
		fmt.Sprintf(n.desktop.localization.GetText(KeySavedMessage), path, size),
		n.window,
	)
}

// removePlaceholder drops the empty file the save dialog created at path
// when the document ends up written under a different name. Files last
// modified before the dialog was shown are left alone.
func removePlaceholder(path string, since time.Time) {
	if since.IsZero() {
		return
	}
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() || info.Size() != 0 {
		return
	}
	// Coarse filesystem clocks round mtimes down to the second
	if info.ModTime().Before(since.Truncate(time.Second)) {
		return
	}
	_ = os.Remove(path)
}
