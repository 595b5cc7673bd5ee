package platform

// Package platform contains OS integration glue used by the desktop apps:
// directory listing, plain-text read/write, and launching files or folders
// with the host's default handler.
