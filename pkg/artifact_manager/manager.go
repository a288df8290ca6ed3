package artifact_manager

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dtnitsch/pageqr/pkg/storage"
)

const (
	DefaultBaseDir = "qr_codes"
	QRCodePrefix   = "qr_code_"
	QRCodeExt      = ".png"
)

// ErrInvalidFilename is returned when a page filename cannot be used as a
// single path element inside the base directory.
var ErrInvalidFilename = errors.New("invalid page filename")

// QRCodeName returns the artifact file name for a page index.
// Example: qr_code_42.png
func QRCodeName(pageIndex int64) string {
	return fmt.Sprintf("%s%d%s", QRCodePrefix, pageIndex, QRCodeExt)
}

// GetQRCodePath returns the full path for a page's QR artifact.
// Example: qr_codes/qr_code_42.png
func GetQRCodePath(baseDir string, pageIndex int64) string {
	if baseDir == "" {
		baseDir = DefaultBaseDir
	}
	return filepath.Join(baseDir, QRCodeName(pageIndex))
}

// Manager handles storage of generated page artifacts under one base directory.
type Manager struct {
	baseDir string
	store   *storage.Storage
}

// NewManager creates a new Artifact Manager instance.
// It ensures the base directory exists; an existing directory is not an error,
// but an existing non-directory at that path is.
func NewManager(baseDir string) (*Manager, error) {
	if baseDir == "" {
		baseDir = DefaultBaseDir
	}
	if err := os.MkdirAll(baseDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", baseDir, err)
	}

	return &Manager{baseDir: baseDir, store: &storage.Storage{}}, nil
}

// BaseDir returns the directory artifacts are written to.
func (m *Manager) BaseDir() string {
	return m.baseDir
}

// QRCodePath returns where the QR artifact for pageIndex is written.
func (m *Manager) QRCodePath(pageIndex int64) string {
	return GetQRCodePath(m.baseDir, pageIndex)
}

// SaveQRCode writes a PNG for pageIndex, replacing any previous artifact
// for the same index. Returns the path written.
func (m *Manager) SaveQRCode(pageIndex int64, png []byte) (string, error) {
	path := m.QRCodePath(pageIndex)
	if err := m.store.SaveFile(path, png); err != nil {
		return "", err
	}
	return path, nil
}

// Stat reports the on-disk size of a written artifact.
func (m *Manager) Stat(path string) (*storage.FileStats, error) {
	return m.store.GetFileStats(path)
}

// PagePath returns where the landing page for filename is written.
// Only bare file names are accepted so a page can never escape the base directory.
func (m *Manager) PagePath(filename string) (string, error) {
	if filename == "" || filename == "." || filename == ".." ||
		strings.ContainsAny(filename, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilename, filename)
	}
	return filepath.Join(m.baseDir, filename), nil
}

// SavePage writes a landing page document under the base directory.
func (m *Manager) SavePage(filename string, data []byte) (string, error) {
	path, err := m.PagePath(filename)
	if err != nil {
		return "", err
	}
	if err := m.store.SaveFile(path, data); err != nil {
		return "", err
	}
	return path, nil
}
