package notepad

// Package notepad holds the text editor's document state: which file the
// buffer belongs to and how it is opened and saved.
