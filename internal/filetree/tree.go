package filetree

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ytget/workbench/internal/model"
	"github.com/ytget/workbench/internal/platform"
)

// NodeID identifies a node inside a Tree
type NodeID int

// RootID is the id of the tree root
const RootID NodeID = 0

// noParent marks the root node
const noParent NodeID = -1

// Lister reads the immediate entries of a directory.
type Lister interface {
	List(path string) ([]model.DirEntry, error)
}

// ListerFunc adapts a function to Lister
type ListerFunc func(path string) ([]model.DirEntry, error)

// List calls f(path)
func (f ListerFunc) List(path string) ([]model.DirEntry, error) {
	return f(path)
}

// Launcher opens a file with the host's default application.
type Launcher interface {
	Launch(path string) error
}

type node struct {
	name     string
	path     string
	kind     model.NodeKind
	state    model.NodeState
	parent   NodeID
	children []NodeID
}

// Tree is the lazily populated directory tree behind the explorer.
type Tree struct {
	nodes    []node
	lister   Lister
	launcher Launcher
	isDir    func(path string) bool
	collator *collate.Collator
	logger   *logrus.Entry
}

// Option configures a Tree
type Option func(*Tree)

// WithLister replaces the filesystem lister
func WithLister(l Lister) Option {
	return func(t *Tree) { t.lister = l }
}

// WithLauncher replaces the default-application launcher
func WithLauncher(l Launcher) Option {
	return func(t *Tree) { t.launcher = l }
}

// WithDirCheck replaces the check used to tell directories from files on activation
func WithDirCheck(isDir func(path string) bool) Option {
	return func(t *Tree) { t.isDir = isDir }
}

// WithLanguage orders children with the collation rules of tag
func WithLanguage(tag language.Tag) Option {
	return func(t *Tree) { t.collator = collate.New(tag, collate.IgnoreCase, collate.Numeric) }
}

// WithLogger sets the logger
func WithLogger(logger *logrus.Entry) Option {
	return func(t *Tree) { t.logger = logger }
}

// New builds a tree rooted at root and lists its first level. The tree is
// returned even when that listing fails; the root then stays Unexpanded and
// can be expanded again later.
func New(root string, opts ...Option) (*Tree, error) {
	t := &Tree{
		lister:   ListerFunc(platform.ListDir),
		launcher: platform.Launcher{},
		isDir:    platform.IsDir,
		collator: collate.New(language.English, collate.IgnoreCase, collate.Numeric),
		logger:   logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.logger = t.logger.WithField("component", "filetree")

	t.nodes = append(t.nodes, node{
		name:   root,
		path:   filepath.Clean(root),
		kind:   model.KindDirectory,
		state:  model.NodeUnexpanded,
		parent: noParent,
	})

	return t, t.Expand(RootID)
}

// Root returns the root node id
func (t *Tree) Root() NodeID {
	return RootID
}

// Len returns the number of nodes in the tree
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Name returns the display name of id
func (t *Tree) Name(id NodeID) string {
	if !t.valid(id) {
		return ""
	}
	return t.nodes[id].name
}

// Path returns the absolute path of id, derived from its ancestors
func (t *Tree) Path(id NodeID) string {
	if !t.valid(id) {
		return ""
	}
	return t.nodes[id].path
}

// Kind returns the node kind of id
func (t *Tree) Kind(id NodeID) model.NodeKind {
	if !t.valid(id) {
		return ""
	}
	return t.nodes[id].kind
}

// State returns the lazy-loading state of id
func (t *Tree) State(id NodeID) model.NodeState {
	if !t.valid(id) {
		return ""
	}
	return t.nodes[id].state
}

// Parent returns the parent of id; the root has none
func (t *Tree) Parent(id NodeID) (NodeID, bool) {
	if !t.valid(id) || t.nodes[id].parent == noParent {
		return 0, false
	}
	return t.nodes[id].parent, true
}

// Children returns the loaded children of id in display order
func (t *Tree) Children(id NodeID) []NodeID {
	if !t.valid(id) {
		return nil
	}
	children := make([]NodeID, len(t.nodes[id].children))
	copy(children, t.nodes[id].children)
	return children
}

// IsBranch reports whether id can hold children. Unexpanded directories are
// branches too, which is what gives them an expander before they are listed.
func (t *Tree) IsBranch(id NodeID) bool {
	return t.valid(id) && t.nodes[id].kind == model.KindDirectory
}

// Expand lists an Unexpanded directory and marks it Expanded. Expanding an
// already expanded node does nothing. When the listing fails with anything
// but a permission error the node stays Unexpanded and the error is returned.
func (t *Tree) Expand(id NodeID) error {
	if !t.valid(id) {
		return fmt.Errorf("unknown node %d", id)
	}
	n := &t.nodes[id]
	if n.kind != model.KindDirectory || !n.state.CanTransitionTo(model.NodeExpanded) {
		return nil
	}

	if err := t.populateChildren(id); err != nil {
		t.logger.WithFields(logrus.Fields{"path": t.nodes[id].path, "error": err}).Warn("directory listing failed")
		return err
	}
	t.nodes[id].state = model.NodeExpanded
	return nil
}

// Activate handles a user activation of id: directories are expanded, and
// a node whose path is no longer a directory is handed to the launcher.
func (t *Tree) Activate(id NodeID) error {
	if !t.valid(id) {
		return fmt.Errorf("unknown node %d", id)
	}
	path := t.nodes[id].path
	if t.nodes[id].kind == model.KindDirectory && t.isDir(path) {
		return t.Expand(id)
	}
	return t.ActivateLeaf(path)
}

// ActivateLeaf opens path with the default application. Tree state is not
// touched whatever the outcome.
func (t *Tree) ActivateLeaf(path string) error {
	t.logger.WithField("path", path).Info("launching file")
	if err := t.launcher.Launch(path); err != nil {
		t.logger.WithFields(logrus.Fields{"path": path, "error": err}).Warn("launch failed")
		return fmt.Errorf("%w: %s: %w", model.ErrFileOpenFailed, path, err)
	}
	return nil
}

// populateChildren inserts one Unexpanded child per subdirectory of id.
func (t *Tree) populateChildren(id NodeID) error {
	parentPath := t.nodes[id].path
	entries, err := t.lister.List(parentPath)
	if errors.Is(err, model.ErrPermissionDenied) {
		// Unreadable folders expand to nothing
		t.logger.WithField("path", parentPath).Debug("permission denied, listing skipped")
		return nil
	}
	if err != nil {
		return err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Kind() == model.KindDirectory {
			names = append(names, entry.Name)
		}
	}
	sort.SliceStable(names, func(i, j int) bool {
		return t.collator.CompareString(names[i], names[j]) < 0
	})

	for _, name := range names {
		child := NodeID(len(t.nodes))
		t.nodes = append(t.nodes, node{
			name:   name,
			path:   filepath.Join(parentPath, name),
			kind:   model.KindDirectory,
			state:  model.NodeUnexpanded,
			parent: id,
		})
		t.nodes[id].children = append(t.nodes[id].children, child)
	}

	t.logger.WithFields(logrus.Fields{
		"path":    parentPath,
		"entries": len(entries),
		"folders": len(names),
	}).Debug("directory listed")
	return nil
}

// UID returns the widget id for a node
func (t *Tree) UID(id NodeID) string {
	return strconv.Itoa(int(id))
}

// Lookup resolves a widget id back to a node
func (t *Tree) Lookup(uid string) (NodeID, bool) {
	n, err := strconv.Atoi(uid)
	if err != nil || !t.valid(NodeID(n)) {
		return 0, false
	}
	return NodeID(n), true
}

// ChildUIDs returns widget ids of the children of uid. The empty id is the
// widget's invisible top level, whose only child is the root.
func (t *Tree) ChildUIDs(uid string) []string {
	if uid == "" {
		return []string{t.UID(RootID)}
	}
	id, ok := t.Lookup(uid)
	if !ok {
		return nil
	}
	children := t.nodes[id].children
	uids := make([]string, len(children))
	for i, child := range children {
		uids[i] = t.UID(child)
	}
	return uids
}

// IsBranchUID is IsBranch keyed by widget id
func (t *Tree) IsBranchUID(uid string) bool {
	if uid == "" {
		return true
	}
	id, ok := t.Lookup(uid)
	return ok && t.IsBranch(id)
}

func (t *Tree) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}
