package filesystem

import (
	"os"
)

// FileSystemInterface defines the file system operations used to read and
// write dictionaries
type FileSystemInterface interface {
	// Directory operations
	MkdirAll(path string, perm os.FileMode) error

	// File content operations
	WriteFile(filename string, data []byte, perm os.FileMode) error
	ReadFile(filename string) ([]byte, error)

	// Utility operations
	Exists(path string) bool
	IsDir(path string) bool
}

// StandardFileSystem implements FileSystemInterface using standard library
type StandardFileSystem struct{}

// NewStandardFileSystem creates a new StandardFileSystem
func NewStandardFileSystem() *StandardFileSystem {
	return &StandardFileSystem{}
}

// MkdirAll creates a directory path
func (fs *StandardFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// WriteFile writes data to a file, truncating it if it exists
func (fs *StandardFileSystem) WriteFile(filename string, data []byte, perm os.FileMode) error {
	return os.WriteFile(filename, data, perm)
}

// ReadFile reads file contents
func (fs *StandardFileSystem) ReadFile(filename string) ([]byte, error) {
	return os.ReadFile(filename)
}

// Exists checks if a path exists
func (fs *StandardFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir checks if a path is a directory
func (fs *StandardFileSystem) IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
