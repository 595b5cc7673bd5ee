package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/ytget/workbench/internal/model"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultFilePermissions = 0644
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	CmdCommand      = "cmd"
	StartCommand    = "start"
)

// Command parameters
const (
	WindowsCmdFlag = "/c"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// execCommand is swapped in tests.
var execCommand = exec.Command

// ListDir returns the immediate entries of path. Listings the user is not
// allowed to read fail with model.ErrPermissionDenied.
func ListDir(path string) ([]model.DirEntry, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("%w: %s", model.ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("failed to list %s: %w", path, err)
	}

	result := make([]model.DirEntry, 0, len(entries))
	for _, entry := range entries {
		isDir := entry.IsDir()
		// Follow symlinks so linked folders stay browsable
		if entry.Type()&fs.ModeSymlink != 0 {
			if info, err := os.Stat(filepath.Join(path, entry.Name())); err == nil {
				isDir = info.IsDir()
			}
		}
		result = append(result, model.DirEntry{Name: entry.Name(), IsDir: isDir})
	}
	return result, nil
}

// IsDir reports whether path currently points at a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ReadText reads the whole file as text
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", model.ErrFileOpenFailed, err)
	}
	return string(data), nil
}

// WriteText replaces the file content with text, byte for byte
func WriteText(path, text string) error {
	if err := os.WriteFile(path, []byte(text), DefaultFilePermissions); err != nil {
		return fmt.Errorf("%w: %w", model.ErrFileSaveFailed, err)
	}
	return nil
}

// HomeDir returns the user home directory, or the filesystem root when it
// cannot be determined.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return string(filepath.Separator)
	}
	return home
}

// Launcher hands files to the host's default application.
type Launcher struct{}

// Launch opens path with the default application
func (Launcher) Launch(path string) error {
	return OpenWithDefaultApp(path)
}

// OpenWithDefaultApp opens the file with the default system application
func OpenWithDefaultApp(filePath string) error {
	if filePath == "" {
		return fmt.Errorf("%w: file path is empty", model.ErrFileOpenFailed)
	}
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("%w: %w", model.ErrFileOpenFailed, err)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("%w: failed to get absolute path: %w", model.ErrFileOpenFailed, err)
	}

	name, args, err := defaultAppCommand(runtime.GOOS, absPath)
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrFileOpenFailed, err)
	}
	if err := execCommand(name, args...).Run(); err != nil {
		return fmt.Errorf("%w: %s: %w", model.ErrFileOpenFailed, name, err)
	}
	return nil
}

// defaultAppCommand returns the command line that opens path on goos
func defaultAppCommand(goos, path string) (string, []string, error) {
	switch goos {
	case OSDarwin:
		return OpenCommand, []string{path}, nil
	case OSWindows:
		return CmdCommand, []string{WindowsCmdFlag, StartCommand, "", path}, nil
	case OSLinux:
		return XDGOpenCommand, []string{path}, nil
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// OpenInFileManager opens dir in the system file manager
func OpenInFileManager(dir string) error {
	if !IsDir(dir) {
		return fmt.Errorf("%w: not a directory: %s", model.ErrFileOpenFailed, dir)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return execCommand(OpenCommand, dir).Run()
	case OSWindows:
		return execCommand(ExplorerCommand, dir).Run()
	case OSLinux:
		return openInManagerLinux(dir)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openInManagerLinux tries xdg-open first and then known file managers
func openInManagerLinux(dir string) error {
	if err := execCommand(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return execCommand(fm, dir).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}
