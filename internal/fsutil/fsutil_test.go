package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureFile(t *testing.T) {
	t.Run("creates missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "a.lock")
		if err := EnsureFile(path); err != nil {
			t.Fatalf("EnsureFile failed: %v", err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("file was not created: %v", err)
		}
		if info.Size() != 0 {
			t.Errorf("new file has size %d, want 0", info.Size())
		}
	})

	t.Run("preserves existing content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "a.lock")
		if err := os.WriteFile(path, []byte("content"), 0o644); err != nil {
			t.Fatalf("seeding file: %v", err)
		}
		if err := EnsureFile(path); err != nil {
			t.Fatalf("EnsureFile failed: %v", err)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading file: %v", err)
		}
		if string(got) != "content" {
			t.Errorf("content changed to %q", got)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope", "a.lock")
		if err := EnsureFile(path); err == nil {
			t.Error("expected error for missing directory, got nil")
		}
	})
}

func TestRemoveFile(t *testing.T) {
	t.Run("existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "a.lock")
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatalf("seeding file: %v", err)
		}
		removed, err := RemoveFile(path)
		if err != nil {
			t.Fatalf("RemoveFile failed: %v", err)
		}
		if !removed {
			t.Error("RemoveFile returned false for an existing file")
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("file still present: %v", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		removed, err := RemoveFile(filepath.Join(t.TempDir(), "missing"))
		if err != nil {
			t.Fatalf("RemoveFile failed: %v", err)
		}
		if removed {
			t.Error("RemoveFile returned true for a missing file")
		}
	})
}

func TestCheckDirectoryIsWritable(t *testing.T) {
	t.Run("writable directory", func(t *testing.T) {
		if err := CheckDirectoryIsWritable(t.TempDir()); err != nil {
			t.Errorf("expected nil for writable temp dir, got %v", err)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		if err := CheckDirectoryIsWritable(filepath.Join(t.TempDir(), "nope")); err == nil {
			t.Error("expected error for missing path, got nil")
		}
	})

	t.Run("not a directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file")
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatalf("seeding file: %v", err)
		}
		if err := CheckDirectoryIsWritable(path); err == nil {
			t.Error("expected error for non-directory path, got nil")
		}
	})

	t.Run("leaves no probe file behind", func(t *testing.T) {
		dir := t.TempDir()
		if err := CheckDirectoryIsWritable(dir); err != nil {
			t.Fatalf("CheckDirectoryIsWritable failed: %v", err)
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("reading dir: %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("probe file left behind: %v", entries)
		}
	})
}
