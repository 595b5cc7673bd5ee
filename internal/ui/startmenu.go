package ui

import (
	"fmt"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// StartMenu is the popup launcher above the start button
type StartMenu struct {
	items  []appEntry
	search *widget.Entry
	list   *fyne.Container
	popup  *widget.PopUp
	canvas fyne.Canvas
}

// NewStartMenu creates a hidden start menu on canvas
func NewStartMenu(title, searchPlaceholder string, items []appEntry, c fyne.Canvas) *StartMenu {
	m := &StartMenu{
		items:  items,
		search: widget.NewEntry(),
		list:   container.NewVBox(),
		canvas: c,
	}
	m.search.SetPlaceHolder(searchPlaceholder)
	m.search.OnChanged = func(query string) { m.showItems(m.Filter(query)) }
	m.search.OnSubmitted = func(query string) {
		if found := m.Filter(query); len(found) > 0 {
			m.launch(found[0])
		}
	}
	m.showItems(items)

	header := widget.NewLabelWithStyle(title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	content := container.NewBorder(
		container.NewVBox(header, m.search, widget.NewSeparator()),
		nil, nil, nil,
		container.NewVScroll(m.list),
	)
	m.popup = widget.NewPopUp(content, c)
	m.popup.Resize(fyne.NewSize(StartMenuWidth, StartMenuHeight))
	m.popup.Hide()
	return m
}

// Filter returns the entries matching query, best match first. An empty
// query matches everything in menu order.
func (m *StartMenu) Filter(query string) []appEntry {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return m.items
	}

	labels := make([]string, len(m.items))
	for i, item := range m.items {
		labels[i] = item.label
	}

	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	sort.Stable(ranks)

	found := make([]appEntry, 0, len(ranks))
	for _, r := range ranks {
		found = append(found, m.items[r.OriginalIndex])
	}
	return found
}

// Toggle shows the menu when hidden and hides it when shown
func (m *StartMenu) Toggle() {
	if m.popup.Visible() {
		m.Hide()
		return
	}
	m.Show()
}

// Show opens the menu at the bottom left corner of the canvas
func (m *StartMenu) Show() {
	m.search.SetText("")
	y := m.canvas.Size().Height - StartMenuHeight - StartMenuMargin*4
	if y < 0 {
		y = 0
	}
	m.popup.ShowAtPosition(fyne.NewPos(StartMenuMargin, y))
	m.canvas.Focus(m.search)
}

// Hide closes the menu
func (m *StartMenu) Hide() {
	m.popup.Hide()
}

// Visible reports whether the menu is shown
func (m *StartMenu) Visible() bool {
	return m.popup.Visible()
}

func (m *StartMenu) showItems(items []appEntry) {
	m.list.RemoveAll()
	for _, item := range items {
		item := item
		btn := widget.NewButton(fmt.Sprintf("%s %s", item.icon, item.label), func() { m.launch(item) })
		btn.Alignment = widget.ButtonAlignLeading
		m.list.Add(btn)
	}
	m.list.Refresh()
}

func (m *StartMenu) launch(item appEntry) {
	m.Hide()
	item.open()
}
