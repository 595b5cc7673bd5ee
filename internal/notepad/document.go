package notepad

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/ytget/workbench/internal/platform"
)

// DefaultExtension is appended on save-as when the name has none
const DefaultExtension = ".txt"

// ErrNoPath is returned by Save when the buffer has never been saved
var ErrNoPath = errors.New("document has no file path")

// Storage reads and writes whole text files.
type Storage interface {
	ReadText(path string) (string, error)
	WriteText(path, text string) error
}

type fileStorage struct{}

func (fileStorage) ReadText(path string) (string, error) { return platform.ReadText(path) }
func (fileStorage) WriteText(path, text string) error    { return platform.WriteText(path, text) }

// Document is an editor buffer bound to an optional file path.
type Document struct {
	path    string
	storage Storage
	logger  *logrus.Entry
}

// NewDocument creates an unsaved document. A nil storage uses the filesystem.
func NewDocument(storage Storage, logger *logrus.Entry) *Document {
	if storage == nil {
		storage = fileStorage{}
	}
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Document{storage: storage, logger: logger.WithField("component", "notepad")}
}

// Path returns the file the document is bound to, or "" for a new buffer
func (d *Document) Path() string {
	return d.path
}

// Name returns the base name of the bound file, or "" for a new buffer
func (d *Document) Name() string {
	if d.path == "" {
		return ""
	}
	return filepath.Base(d.path)
}

// Save writes text to the bound file. It returns ErrNoPath when the
// document has none, in which case the caller asks for one and uses SaveAs.
func (d *Document) Save(text string) error {
	if d.path == "" {
		return ErrNoPath
	}
	if err := d.storage.WriteText(d.path, text); err != nil {
		d.logger.WithFields(logrus.Fields{"path": d.path, "error": err}).Warn("save failed")
		return err
	}
	d.logger.WithFields(logrus.Fields{"path": d.path, "bytes": len(text)}).Info("document saved")
	return nil
}

// SaveAs writes text to path and binds the document to it. The binding only
// changes when the write succeeds. It returns the path actually written.
func (d *Document) SaveAs(path, text string) (string, error) {
	if path == "" {
		return "", ErrNoPath
	}
	path = WithDefaultExtension(path)
	if err := d.storage.WriteText(path, text); err != nil {
		d.logger.WithFields(logrus.Fields{"path": path, "error": err}).Warn("save as failed")
		return "", err
	}
	d.path = path
	d.logger.WithFields(logrus.Fields{"path": path, "bytes": len(text)}).Info("document saved as")
	return path, nil
}

// Open reads path and binds the document to it. On failure the document
// keeps its previous binding.
func (d *Document) Open(path string) (string, error) {
	text, err := d.storage.ReadText(path)
	if err != nil {
		d.logger.WithFields(logrus.Fields{"path": path, "error": err}).Warn("open failed")
		return "", err
	}
	d.path = path
	d.logger.WithFields(logrus.Fields{"path": path, "bytes": len(text)}).Info("document opened")
	return text, nil
}

// WithDefaultExtension appends DefaultExtension when path has no extension
func WithDefaultExtension(path string) string {
	if filepath.Ext(path) == "" {
		return path + DefaultExtension
	}
	return path
}

// Title returns the window caption for the document
func (d *Document) Title(appName string) string {
	if d.path == "" {
		return appName
	}
	return fmt.Sprintf("%s - %s", d.Name(), appName)
}
