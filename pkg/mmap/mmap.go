// Package mmap provides a read-only, memory-mapped view of a regular file.
package mmap

import (
	"errors"
	"fmt"
	"os"
)

// ErrEmptyFile is returned when the input file has zero length. A
// zero-byte measurements file is a fatal condition, not an empty result.
var ErrEmptyFile = errors.New("empty file")

// File is a read-only byte view covering a whole regular file.
type File struct {
	// Data holds the file's bytes. It must not be modified.
	Data []byte

	path string
}

// Path returns the path the view was opened from.
func (f *File) Path() string { return f.path }

// Close drops the reference to the bytes without unmapping them.
// Releasing the mapping is deliberately left to process teardown: the
// process exits right after the result line is written, and an munmap of a
// mapping this large only delays that exit.
func (f *File) Close() error {
	f.Data = nil
	return nil
}

// open validates that path names a non-empty regular file and returns the
// open descriptor along with the file size.
func open(path string) (*os.File, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, 0, fmt.Errorf("%s: not a regular file", path)
	}
	if info.Size() == 0 {
		f.Close()
		return nil, 0, fmt.Errorf("%s: %w", path, ErrEmptyFile)
	}

	return f, info.Size(), nil
}
