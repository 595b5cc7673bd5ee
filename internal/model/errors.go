package model

import "errors"

// Error taxonomy shared by the apps. Boundaries wrap these with %w so the UI
// can pick a dialog with errors.Is.
var (
	// ErrPermissionDenied marks listings that are skipped silently
	ErrPermissionDenied = errors.New("permission denied")

	// ErrFileOpenFailed is reported when a file cannot be read or launched
	ErrFileOpenFailed = errors.New("failed to open file")

	// ErrFileSaveFailed is reported when a buffer cannot be written
	ErrFileSaveFailed = errors.New("failed to save file")

	// ErrExpressionEvaluation is reported by the calculator evaluator
	ErrExpressionEvaluation = errors.New("expression evaluation failed")
)
