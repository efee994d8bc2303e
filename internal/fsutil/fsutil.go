// Package fsutil provides the small set of filesystem operations the locking
// code needs: lock-file creation, removal and directory writability checks.
package fsutil

import (
	"fmt"
	"os"
)

// EnsureFile creates the file at path if it does not exist, opening it for
// append and closing it immediately. Existing content is left untouched.
func EnsureFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		if os.IsPermission(err) {
			return fmt.Errorf("permission denied creating file %s: %w", path, err)
		}
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close file %s: %w", path, err)
	}
	return nil
}

// RemoveFile deletes the file at path. It returns false if the file did not
// exist, true if it was removed; any other failure is an error.
func RemoveFile(path string) (bool, error) {
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to remove file %s: %w", path, err)
	}
	return true, nil
}

// CheckDirectoryIsWritable performs a robust check if a directory is writable
// by creating and removing a probe file in it.
func CheckDirectoryIsWritable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("path does not exist: %s: %w", path, err)
		}
		return fmt.Errorf("could not stat path %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	probe, err := os.CreateTemp(path, ".writable_test_*")
	if err != nil {
		if os.IsPermission(err) {
			return fmt.Errorf("permission denied to write in directory %s: %w", path, err)
		}
		return fmt.Errorf("error creating probe file in %s: %w", path, err)
	}
	name := probe.Name()
	_ = probe.Close()
	_ = os.Remove(name)
	return nil
}
