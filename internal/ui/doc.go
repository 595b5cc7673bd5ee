package ui

// Package ui contains the Fyne-based desktop shell: wallpaper, taskbar with
// clock and start menu, and the embedded apps (explorer, notepad, calculator,
// settings). App windows are opened through the single-instance registry in
// package wm. All UI strings are localized via Localization.
