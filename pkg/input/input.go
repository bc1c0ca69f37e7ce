// Package input resolves a measurements path into an in-memory byte view.
//
// Plain files are memory mapped. Files with a .zst extension are
// decompressed fully into memory first, so the engine always scans a plain
// byte slice regardless of how the input is stored on disk.
package input

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/eunmann/brcagg/pkg/mmap"
	"github.com/klauspost/compress/zstd"
)

// Source is the byte view of a measurements file.
type Source struct {
	// Data covers the decoded file contents. It must not be modified.
	Data []byte

	path   string
	mapped *mmap.File
}

// Path returns the path the source was opened from.
func (s *Source) Path() string { return s.path }

// Compressed reports whether the source was decoded from a compressed file.
func (s *Source) Compressed() bool { return s.mapped == nil }

// Close releases the source. For mapped files this follows the mmap
// package's no-unmap policy; for decoded buffers it just drops the
// reference.
func (s *Source) Close() error {
	s.Data = nil
	if s.mapped != nil {
		return s.mapped.Close()
	}
	return nil
}

// Open returns the byte view for path.
func Open(path string) (*Source, error) {
	if strings.HasSuffix(path, ".zst") {
		return openZstd(path)
	}

	f, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	return &Source{Data: f.Data, path: path, mapped: f}, nil
}

func openZstd(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: not a regular file", path)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("%s: %w", path, mmap.ErrEmptyFile)
	}

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("zstd reader %s: %w", path, err)
	}
	defer dec.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(dec); err != nil {
		return nil, fmt.Errorf("decompress %s: %w", path, err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", path, mmap.ErrEmptyFile)
	}

	return &Source{Data: buf.Bytes(), path: path}, nil
}
