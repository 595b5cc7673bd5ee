package wm

// Package wm keeps the desktop's single-instance window registry: at most
// one live window per logical title, with focus-or-raise on reopen and a
// single close path shared by programmatic and user-initiated closes.
