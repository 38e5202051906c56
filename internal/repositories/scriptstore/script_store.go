package scriptstore

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/AntonioJCosta/batc-install/internal/core/ports"
)

const dirMode os.FileMode = 0755

// FileScriptStore implements ports.ScriptStore on the local filesystem.
type FileScriptStore struct{}

// NewFileScriptStore creates a new FileScriptStore.
func NewFileScriptStore() ports.ScriptStore {
	return &FileScriptStore{}
}

// EnsureDir creates path and any missing parents.
func (s *FileScriptStore) EnsureDir(path string) error {
	if err := os.MkdirAll(path, dirMode); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// Exists reports whether path exists. Only errors other than "not exist"
// are returned.
func (s *FileScriptStore) Exists(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return true, nil
}

func (s *FileScriptStore) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// MakeExecutable adds the execute bit for owner, group and others.
func (s *FileScriptStore) MakeExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if err := os.Chmod(path, info.Mode().Perm()|0111); err != nil {
		return fmt.Errorf("failed to make %s executable: %w", path, err)
	}
	return nil
}

// Move renames src to dst, replacing dst. When the two paths are on
// different filesystems the file is copied and the source removed.
func (s *FileScriptStore) Move(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return fmt.Errorf("failed to move %s to %s: %w", src, dst, err)
	}

	if err := copyFile(src, dst); err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("copied %s but failed to remove source: %w", src, err)
	}
	return nil
}

// RemoveFile deletes path; a missing file is not an error.
func (s *FileScriptStore) RemoveFile(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}

// RemoveTree deletes path and everything below it.
func (s *FileScriptStore) RemoveTree(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}
