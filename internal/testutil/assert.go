package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ReadFile reads dir/name and fails the test on error.
func ReadFile(t *testing.T, dir, name string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("failed to read file %s: %v", name, err)
	}
	return string(content)
}

// AssertFileExists fails the test if dir/name does not exist.
func AssertFileExists(t *testing.T, dir, name string) {
	t.Helper()
	if _, err := os.Stat(filepath.Join(dir, name)); os.IsNotExist(err) {
		t.Errorf("expected file to exist: %s", name)
	}
}

// AssertFileNotExists fails the test if dir/name exists.
func AssertFileNotExists(t *testing.T, dir, name string) {
	t.Helper()
	if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
		t.Errorf("expected file to not exist: %s", name)
	}
}

// AssertFileContent fails the test unless dir/name holds exactly want.
func AssertFileContent(t *testing.T, dir, name, want string) {
	t.Helper()
	got := ReadFile(t, dir, name)
	if got != want {
		t.Errorf("file %s:\ngot:\n%s\nwant:\n%s", name, got, want)
	}
}

// AssertFileContains fails the test if dir/name does not contain substr.
func AssertFileContains(t *testing.T, dir, name, substr string) {
	t.Helper()
	content := ReadFile(t, dir, name)
	if !strings.Contains(content, substr) {
		t.Errorf("expected file %s to contain %q, got:\n%s", name, substr, content)
	}
}

// AssertFileCount fails the test unless dir holds exactly n regular files.
func AssertFileCount(t *testing.T, dir string, n int) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir %s: %v", dir, err)
	}
	count := 0
	for _, e := range entries {
		if e.Type().IsRegular() {
			count++
		}
	}
	if count != n {
		t.Errorf("expected %d files in %s, got %d", n, dir, count)
	}
}
