package model

// NodeKind tells directories from plain files in the explorer tree.
type NodeKind string

const (
	KindDirectory NodeKind = "directory"
	KindFile      NodeKind = "file"
)

// String returns the string representation of NodeKind
func (k NodeKind) String() string {
	return string(k)
}

// NodeState is the lazy-loading state of a directory node.
//
// A directory starts Unexpanded (its listing has not been read yet) and moves
// to Expanded exactly once. There is no transition back.
type NodeState string

const (
	// NodeUnexpanded means the directory has not been listed yet
	NodeUnexpanded NodeState = "Unexpanded"

	// NodeExpanded means the children reflect the real directory entries
	NodeExpanded NodeState = "Expanded"
)

// String returns the string representation of NodeState
func (s NodeState) String() string {
	return string(s)
}

// IsExpanded returns true once the node listing has been loaded
func (s NodeState) IsExpanded() bool {
	return s == NodeExpanded
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s NodeState) CanTransitionTo(next NodeState) bool {
	return s == NodeUnexpanded && next == NodeExpanded
}

// DirEntry is a single item returned by a directory listing.
type DirEntry struct {
	Name  string
	IsDir bool
}

// Kind returns the node kind matching the entry.
func (e DirEntry) Kind() NodeKind {
	if e.IsDir {
		return KindDirectory
	}
	return KindFile
}
