package wm

import (
	"fmt"
	"sort"
	"time"

	"fyne.io/fyne/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// InstanceIDPrefix prefixes window instance ids in logs
const InstanceIDPrefix = "win_"

// Window is the part of fyne.Window the registry drives.
type Window interface {
	Show()
	RequestFocus()
	Close()
	SetCloseIntercept(func())
	SetOnClosed(func())
}

// Factory builds a new, not yet shown window for title.
type Factory[W Window] func(title string, size fyne.Size) W

type entry[W Window] struct {
	id       string
	window   W
	openedAt time.Time
}

// Registry tracks live windows by logical title.
//
// It is driven from the UI goroutine only and therefore holds no locks.
type Registry[W Window] struct {
	entries   map[string]*entry[W]
	newWindow Factory[W]
	logger    *logrus.Entry

	// OnChanged runs after a window is registered or removed
	OnChanged func()
}

// NewRegistry creates an empty registry that builds windows with factory
func NewRegistry[W Window](factory func(title string, size fyne.Size) W, logger *logrus.Entry) *Registry[W] {
	if logger == nil {
		logger = logrus.NewEntry(logrus.New())
	}
	return &Registry[W]{
		entries:   make(map[string]*entry[W]),
		newWindow: factory,
		logger:    logger.WithField("component", "wm"),
	}
}

// Open returns the live window for title, creating it if needed. The
// second result is true only when a new window was built, so callers fill
// in content exactly once. An existing window is raised and returned as is.
func (r *Registry[W]) Open(title string, size fyne.Size) (W, bool) {
	if e, ok := r.entries[title]; ok {
		e.window.Show()
		e.window.RequestFocus()
		r.logger.WithFields(logrus.Fields{"title": title, "id": e.id}).Debug("window raised")
		return e.window, false
	}

	w := r.newWindow(title, size)
	e := &entry[W]{id: generateInstanceID(), window: w, openedAt: time.Now()}
	r.entries[title] = e

	// User close requests go through the same path as programmatic ones
	w.SetCloseIntercept(func() { r.Close(title) })
	// Any other destruction path must not leave a stale entry behind
	w.SetOnClosed(func() { r.forget(title, e) })

	w.Show()
	r.logger.WithFields(logrus.Fields{
		"title":  title,
		"id":     e.id,
		"width":  size.Width,
		"height": size.Height,
	}).Info("window opened")
	r.notifyChanged()
	return w, true
}

// Close destroys the window registered for title. Unknown titles are ignored.
func (r *Registry[W]) Close(title string) {
	e, ok := r.entries[title]
	if !ok {
		return
	}

	// Drop the slot first so OnClosed callbacks see a consistent registry
	delete(r.entries, title)
	e.window.Close()

	r.logger.WithFields(logrus.Fields{
		"title":    title,
		"id":       e.id,
		"lifetime": time.Since(e.openedAt).Round(time.Millisecond).String(),
	}).Info("window closed")
	r.notifyChanged()
}

// CloseAll closes every registered window
func (r *Registry[W]) CloseAll() {
	for _, title := range r.Titles() {
		r.Close(title)
	}
}

// Get returns the live window registered for title
func (r *Registry[W]) Get(title string) (W, bool) {
	e, ok := r.entries[title]
	if !ok {
		var zero W
		return zero, false
	}
	return e.window, true
}

// Focus raises the window for title and reports whether it exists
func (r *Registry[W]) Focus(title string) bool {
	e, ok := r.entries[title]
	if !ok {
		return false
	}
	e.window.Show()
	e.window.RequestFocus()
	return true
}

// Titles returns the registered titles in sorted order
func (r *Registry[W]) Titles() []string {
	titles := make([]string, 0, len(r.entries))
	for title := range r.entries {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	return titles
}

// Len returns the number of live windows
func (r *Registry[W]) Len() int {
	return len(r.entries)
}

// forget drops the slot for title if it still belongs to e
func (r *Registry[W]) forget(title string, e *entry[W]) {
	current, ok := r.entries[title]
	if !ok || current != e {
		return
	}
	delete(r.entries, title)
	r.logger.WithFields(logrus.Fields{"title": title, "id": e.id}).Info("window destroyed externally")
	r.notifyChanged()
}

func (r *Registry[W]) notifyChanged() {
	if r.OnChanged != nil {
		r.OnChanged()
	}
}

// generateInstanceID returns a time-ordered id for a window instance
func generateInstanceID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(InstanceIDPrefix+"%d", time.Now().UnixNano())
	}
	return InstanceIDPrefix + id.String()
}
