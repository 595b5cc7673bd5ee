package model

// Package model defines domain data structures shared across the desktop:
// directory entries, tree node kinds and states, and the error taxonomy
// reported by the apps. Types carry explicit state transitions so the UI can
// render them without keeping parallel bookkeeping.
