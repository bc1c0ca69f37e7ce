//go:build unix

package mmap

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Open maps path read-only into the process address space.
func Open(path string) (*File, error) {
	f, size, err := open(path)
	if err != nil {
		return nil, err
	}
	// The mapping outlives the descriptor.
	defer f.Close()

	if size != int64(int(size)) {
		return nil, fmt.Errorf("mmap %s: file too large for address space (%d bytes)", path, size)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}

	// Each worker reads its partition front to back.
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)

	return &File{Data: data, path: path}, nil
}
