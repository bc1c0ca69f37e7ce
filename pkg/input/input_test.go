package input

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/eunmann/brcagg/pkg/mmap"
	"github.com/klauspost/compress/zstd"
)

func writeZstd(t *testing.T, path string, content []byte) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := enc.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestOpenPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.txt")
	content := []byte("Adelaide;17.3\nJakarta;26.7\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	src, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer src.Close()

	if !bytes.Equal(src.Data, content) {
		t.Errorf("data mismatch: got %q, want %q", src.Data, content)
	}
	if src.Compressed() {
		t.Error("plain file reported as compressed")
	}
}

func TestOpenZstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.txt.zst")
	content := []byte("Adelaide;17.3\nJakarta;26.7\n")
	writeZstd(t, path, content)

	src, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer src.Close()

	if !bytes.Equal(src.Data, content) {
		t.Errorf("decoded data mismatch: got %q, want %q", src.Data, content)
	}
	if !src.Compressed() {
		t.Error("zstd file not reported as compressed")
	}
}

func TestOpenZstdEmptyPayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.txt.zst")
	writeZstd(t, path, nil)

	_, err := Open(path)
	if !errors.Is(err, mmap.ErrEmptyFile) {
		t.Fatalf("expected ErrEmptyFile, got: %v", err)
	}
}

func TestOpenEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Open(path)
	if !errors.Is(err, mmap.ErrEmptyFile) {
		t.Fatalf("expected ErrEmptyFile, got: %v", err)
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got: %v", err)
	}
}

func TestOpenZstdGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.txt.zst")
	if err := os.WriteFile(path, []byte("not zstd at all"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Open(path); err == nil {
		t.Fatal("expected error for corrupt zstd input")
	}
}
