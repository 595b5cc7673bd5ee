package wm

import (
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWindow mimics the fyne.Window close semantics: Close fires OnClosed,
// a user close request fires the intercept instead.
type fakeWindow struct {
	title     string
	size      fyne.Size
	shown     int
	focused   int
	closed    int
	intercept func()
	onClosed  func()
}

func (w *fakeWindow) Show()                      { w.shown++ }
func (w *fakeWindow) RequestFocus()              { w.focused++ }
func (w *fakeWindow) SetCloseIntercept(f func()) { w.intercept = f }
func (w *fakeWindow) SetOnClosed(f func())       { w.onClosed = f }

func (w *fakeWindow) Close() {
	w.closed++
	if w.onClosed != nil {
		w.onClosed()
	}
}

// requestClose simulates the user clicking the window's close button
func (w *fakeWindow) requestClose() {
	if w.intercept != nil {
		w.intercept()
		return
	}
	w.Close()
}

func newFakeRegistry() (*Registry[*fakeWindow], *[]*fakeWindow) {
	created := &[]*fakeWindow{}
	r := NewRegistry(func(title string, size fyne.Size) *fakeWindow {
		w := &fakeWindow{title: title, size: size}
		*created = append(*created, w)
		return w
	}, nil)
	return r, created
}

func TestOpen_CreatesAndShows(t *testing.T) {
	r, created := newFakeRegistry()

	w, isNew := r.Open("Notepad", fyne.NewSize(700, 500))
	require.True(t, isNew)
	require.Len(t, *created, 1)
	assert.Equal(t, "Notepad", w.title)
	assert.Equal(t, fyne.NewSize(700, 500), w.size)
	assert.Equal(t, 1, w.shown)
	assert.NotNil(t, w.intercept, "close intercept should be installed")
	assert.Equal(t, 1, r.Len())
}

func TestOpen_SameTitleFocusesExisting(t *testing.T) {
	r, created := newFakeRegistry()

	first, _ := r.Open("Notepad", fyne.NewSize(700, 500))
	second, isNew := r.Open("Notepad", fyne.NewSize(100, 100))

	assert.False(t, isNew)
	assert.Same(t, first, second)
	assert.Len(t, *created, 1, "no duplicate window should be built")
	assert.Equal(t, 1, first.focused)
	assert.Equal(t, fyne.NewSize(700, 500), first.size, "existing window is returned unchanged")
	assert.Equal(t, 1, r.Len())
}

func TestOpen_DifferentTitlesAreIndependent(t *testing.T) {
	r, created := newFakeRegistry()

	r.Open("Notepad", fyne.NewSize(700, 500))
	r.Open("Calculator", fyne.NewSize(300, 400))

	assert.Len(t, *created, 2)
	assert.Equal(t, []string{"Calculator", "Notepad"}, r.Titles())
}

func TestClose_RemovesEntryAndIsIdempotent(t *testing.T) {
	r, _ := newFakeRegistry()
	w, _ := r.Open("Explorer", fyne.NewSize(800, 500))

	r.Close("Explorer")
	assert.Equal(t, 1, w.closed)
	assert.Equal(t, 0, r.Len())
	_, ok := r.Get("Explorer")
	assert.False(t, ok)

	r.Close("Explorer")
	assert.Equal(t, 1, w.closed, "second close must be a no-op")
	r.Close("Never opened")
}

func TestUserCloseRoutesThroughRegistry(t *testing.T) {
	r, _ := newFakeRegistry()
	w, _ := r.Open("Calculator", fyne.NewSize(300, 400))

	w.requestClose()

	assert.Equal(t, 1, w.closed)
	assert.Equal(t, 0, r.Len())

	reopened, isNew := r.Open("Calculator", fyne.NewSize(300, 400))
	assert.True(t, isNew, "a closed title must open a fresh window")
	assert.NotSame(t, w, reopened)
}

func TestExternalDestroyDropsEntry(t *testing.T) {
	r, _ := newFakeRegistry()
	w, _ := r.Open("Settings", fyne.NewSize(500, 400))

	// Destroyed without going through the registry, e.g. on app shutdown
	w.onClosed()

	assert.Equal(t, 0, r.Len())
}

func TestStaleOnClosedDoesNotDropNewEntry(t *testing.T) {
	r, _ := newFakeRegistry()
	old, _ := r.Open("Notepad", fyne.NewSize(700, 500))
	staleOnClosed := old.onClosed

	r.Close("Notepad")
	fresh, _ := r.Open("Notepad", fyne.NewSize(700, 500))
	staleOnClosed()

	got, ok := r.Get("Notepad")
	require.True(t, ok)
	assert.Same(t, fresh, got)
}

func TestOnChangedFires(t *testing.T) {
	r, _ := newFakeRegistry()
	changes := 0
	r.OnChanged = func() { changes++ }

	r.Open("Notepad", fyne.NewSize(700, 500))
	r.Open("Notepad", fyne.NewSize(700, 500))
	r.Close("Notepad")
	r.Close("Notepad")

	assert.Equal(t, 2, changes)
}

func TestFocusAndCloseAll(t *testing.T) {
	r, _ := newFakeRegistry()
	a, _ := r.Open("A", fyne.NewSize(10, 10))
	b, _ := r.Open("B", fyne.NewSize(10, 10))

	assert.True(t, r.Focus("A"))
	assert.False(t, r.Focus("C"))
	assert.Equal(t, 1, a.focused)

	r.CloseAll()
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 1, a.closed)
	assert.Equal(t, 1, b.closed)
}

func TestRegistryWithFyneWindows(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	r := NewRegistry(func(title string, size fyne.Size) fyne.Window {
		w := app.NewWindow(title)
		w.Resize(size)
		return w
	}, nil)

	first, _ := r.Open("Explorer", fyne.NewSize(800, 500))
	second, isNew := r.Open("Explorer", fyne.NewSize(800, 500))

	assert.False(t, isNew)
	assert.Equal(t, first, second)
	assert.Equal(t, "Explorer", first.Title())
	assert.Equal(t, 1, r.Len())

	r.Close("Explorer")
	assert.Equal(t, 0, r.Len())
}

func TestGenerateInstanceID(t *testing.T) {
	a := generateInstanceID()
	b := generateInstanceID()

	assert.True(t, strings.HasPrefix(a, InstanceIDPrefix))
	assert.NotEqual(t, a, b)
}
