package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/workbench/internal/filetree"
	"github.com/ytget/workbench/internal/platform"
)

// explorerView shows a lazily expanded directory tree
type explorerView struct {
	desktop  *Desktop
	window   fyne.Window
	tree     *filetree.Tree
	view     *widget.Tree
	location *widget.Label
	selected filetree.NodeID
}

// OpenExplorer opens the explorer window or raises the existing one
func (d *Desktop) OpenExplorer() {
	d.startMenu.Hide()
	title := d.localization.GetText(KeyExplorer)
	w, created := d.windows.Open(title, ExplorerSize)
	if !created {
		return
	}
	e := newExplorerView(d, w, d.settings.GetStartDirectory())
	w.SetContent(d.frame(title, e.content()))
}

func newExplorerView(d *Desktop, w fyne.Window, root string) *explorerView {
	tree, err := filetree.New(root,
		filetree.WithLauncher(d.launcher),
		filetree.WithLanguage(d.languageTag()),
		filetree.WithLogger(d.logger),
	)
	if err != nil {
		// The tree is still usable, the root just shows no children
		d.showError(err, w)
	}

	e := &explorerView{
		desktop:  d,
		window:   w,
		tree:     tree,
		location: widget.NewLabel(tree.Path(tree.Root())),
		selected: tree.Root(),
	}
	e.location.Truncation = fyne.TextTruncateEllipsis

	e.view = widget.NewTree(
		tree.ChildUIDs,
		tree.IsBranchUID,
		func(bool) fyne.CanvasObject {
			return container.NewHBox(widget.NewIcon(theme.FolderIcon()), widget.NewLabel(""))
		},
		func(uid widget.TreeNodeID, _ bool, obj fyne.CanvasObject) {
			id, ok := tree.Lookup(uid)
			if !ok {
				return
			}
			row := obj.(*fyne.Container)
			row.Objects[1].(*widget.Label).SetText(tree.Name(id))
		},
	)
	e.view.OnBranchOpened = e.expand
	e.view.OnSelected = e.activate
	e.view.OpenBranch(tree.UID(tree.Root()))
	return e
}

func (e *explorerView) content() fyne.CanvasObject {
	openBtn := widget.NewButtonWithIcon(e.desktop.localization.GetText(KeyOpenFile), theme.FileIcon(), e.openFile)
	openBtn.Importance = widget.HighImportance
	managerBtn := widget.NewButtonWithIcon(e.desktop.localization.GetText(KeyShowInManager), theme.FolderOpenIcon(), e.showInManager)

	header := widget.NewLabelWithStyle(e.desktop.localization.GetText(KeyFolders), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	split := container.NewHSplit(
		container.NewBorder(header, nil, nil, nil, e.view),
		container.NewVBox(openBtn, managerBtn),
	)
	split.Offset = float64(ExplorerTreeWidth / ExplorerSize.Width)
	return container.NewBorder(nil, e.location, nil, nil, split)
}

// expand loads the children of a branch the first time it is opened
func (e *explorerView) expand(uid widget.TreeNodeID) {
	id, ok := e.tree.Lookup(uid)
	if !ok {
		return
	}
	if err := e.tree.Expand(id); err != nil {
		e.desktop.showError(err, e.window)
	}
	e.view.Refresh()
}

// activate expands a selected directory or opens a selected file
func (e *explorerView) activate(uid widget.TreeNodeID) {
	id, ok := e.tree.Lookup(uid)
	if !ok {
		return
	}
	e.selected = id
	e.location.SetText(e.tree.Path(id))

	if err := e.tree.Activate(id); err != nil {
		e.desktop.showError(err, e.window)
	}
	if e.tree.State(id).IsExpanded() {
		e.view.OpenBranch(uid)
	}
	e.view.Refresh()
}

// openFile picks any file and hands it to the system default application
func (e *explorerView) openFile() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			e.desktop.showError(err, e.window)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()

		if err := e.tree.ActivateLeaf(path); err != nil {
			e.desktop.showError(err, e.window)
		}
	}, e.window)
}

// showInManager opens the selected directory in the system file manager
func (e *explorerView) showInManager() {
	if err := platform.OpenInFileManager(e.tree.Path(e.selected)); err != nil {
		e.desktop.showError(err, e.window)
	}
}
