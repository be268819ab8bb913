// Package iohelper provides helper functions for file I/O: size-capped
// reads of untrusted input files and atomic output writes.
package iohelper

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Size limits for the file classes the tool touches.
const (
	// MaxTemplateSize caps template DOCX reads (50MB). Templates are
	// loaded fully into memory before appending content.
	MaxTemplateSize int64 = 50 * 1024 * 1024

	// MaxImageSize caps chart image reads (10MB).
	MaxImageSize int64 = 10 * 1024 * 1024
)

// ReadFileLimited reads the file at path, rejecting files larger than
// maxSize. This keeps a corrupt or hostile input from exhausting
// memory, since callers hold the whole file at once.
func ReadFileLimited(path string, maxSize int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxSize {
		return nil, fmt.Errorf("iohelper: %s exceeds %d byte limit", path, maxSize)
	}
	return data, nil
}

// WriteFileAtomic writes data to path via a temp file in the same
// directory followed by a rename, so a failed run never leaves a
// truncated output document behind.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
