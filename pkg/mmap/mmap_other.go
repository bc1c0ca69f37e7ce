//go:build !unix

package mmap

import (
	"fmt"
	"io"
)

// Open reads the whole file into memory on platforms without mmap support.
// The File contract is identical; only the acquisition differs.
func Open(path string) (*File, error) {
	f, _, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return &File{Data: data, path: path}, nil
}
