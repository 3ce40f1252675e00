package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteScript writes an executable shell script that exits successfully.
// t is the active test; dir is the output directory; name is the file name.
func WriteScript(t *testing.T, dir string, name string) string {
	t.Helper()
	return WriteScriptWithExit(t, dir, name, 0)
}

// WriteScriptWithExit writes an executable shell script exiting with code.
func WriteScriptWithExit(t *testing.T, dir string, name string, code int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte(fmt.Sprintf("#!/bin/sh\nexit %d\n", code))
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

// WriteDataFile writes a non-executable regular file.
func WriteDataFile(t *testing.T, dir string, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("echo data\n"), 0o644); err != nil {
		t.Fatalf("write data file: %v", err)
	}
	return path
}
