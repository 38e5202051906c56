package ports

import "os"

/*
ScriptStore defines the filesystem operations the installer performs on the
script, the destination directory and the repository checkout.
*/
type ScriptStore interface {
	EnsureDir(path string) error
	Exists(path string) (bool, error)
	Stat(path string) (os.FileInfo, error)
	MakeExecutable(path string) error
	// Move relocates src to dst, replacing dst if it exists.
	Move(src, dst string) error
	// RemoveFile deletes a single file; a missing file is not an error.
	RemoveFile(path string) error
	RemoveTree(path string) error
}
