package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func assertOnlyFile(t *testing.T, dir, name string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	for _, entry := range entries {
		if entry.Name() != name {
			t.Errorf("Unexpected file in directory: %s", entry.Name())
		}
	}
}

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	statsFile := filepath.Join(tmpDir, "stats.json")

	if err := WriteFileAtomic(statsFile, []byte(`{"games":1}`), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}

	data, err := os.ReadFile(statsFile)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(data) != `{"games":1}` {
		t.Errorf("File content mismatch: got %q", string(data))
	}

	info, err := os.Stat(statsFile)
	if err != nil {
		t.Fatalf("Failed to stat file: %v", err)
	}
	if info.Mode().Perm() != 0o644 {
		t.Errorf("File permissions mismatch: got %o, want %o", info.Mode().Perm(), 0o644)
	}

	assertOnlyFile(t, tmpDir, "stats.json")
}

func TestWriteAtomicStreams(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	statsFile := filepath.Join(tmpDir, "stats.txt")

	err := WriteAtomic(statsFile, 0o600, func(w io.Writer) error {
		for i := range 3 {
			if _, err := fmt.Fprintf(w, "game %d\n", i); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WriteAtomic failed: %v", err)
	}

	data, err := os.ReadFile(statsFile)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(data) != "game 0\ngame 1\ngame 2\n" {
		t.Errorf("File content mismatch: got %q", string(data))
	}
}

func TestWriteAtomicFailureKeepsOldFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	statsFile := filepath.Join(tmpDir, "stats.json")
	if err := WriteFileAtomic(statsFile, []byte("initial"), 0o644); err != nil {
		t.Fatalf("Initial write failed: %v", err)
	}

	boom := errors.New("boom")
	err := WriteAtomic(statsFile, 0o644, func(w io.Writer) error {
		_, _ = w.Write([]byte("partial"))
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Expected writer error, got %v", err)
	}

	data, err := os.ReadFile(statsFile)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(data) != "initial" {
		t.Errorf("Old content should survive a failed write, got %q", string(data))
	}
	assertOnlyFile(t, tmpDir, "stats.json")
}

func TestWriteFileAtomicInvalidDir(t *testing.T) {
	t.Parallel()

	err := WriteFileAtomic(filepath.Join(t.TempDir(), "missing", "stats.json"), []byte("data"), 0o644)
	if err == nil {
		t.Error("Expected error when writing to non-existent directory")
	}
}
