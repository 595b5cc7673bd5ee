package filetree

// Package filetree models the explorer's lazily populated directory tree.
//
// Nodes live in an arena and refer to each other by NodeID. A directory node
// starts Unexpanded and is listed the first time it is expanded; files are
// never inserted. Each node stores the path derived from its ancestor chain
// when it is inserted, so the tree never needs a separate path index.
