package savefile

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Store defines the file operations a savefile needs.
type Store interface {
	// Open opens a file for reading.
	Open(name string) (io.ReadCloser, error)
	// Create creates or truncates a file for writing.
	Create(name string) (io.WriteCloser, error)
	// Stat returns file information.
	Stat(name string) (fs.FileInfo, error)
}

// OSStore is a Store on the local filesystem.
type OSStore struct{}

func (OSStore) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// Create also creates missing parent directories.
func (OSStore) Create(name string) (io.WriteCloser, error) {
	if dir := filepath.Dir(name); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return os.Create(name)
}

func (OSStore) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// BackupSuffix is appended to the name of a backup copy.
const BackupSuffix = ".bak"

// Backup copies name to name+BackupSuffix and returns the backup name.
func Backup(store Store, name string) (string, error) {
	src, err := store.Open(name)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer src.Close()

	target := name + BackupSuffix
	dst, err := store.Create(target)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", target, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", fmt.Errorf("failed to copy %s: %w", name, err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", target, err)
	}
	return target, nil
}

// HasExtension reports whether name ends with one of exts, ignoring case.
func HasExtension(name string, exts []string) bool {
	ext := filepath.Ext(name)
	if ext == "" {
		return false
	}
	for _, e := range exts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}
