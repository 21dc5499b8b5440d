package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// checkInput verifies the export path before any graph work starts.
func checkInput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return fmt.Errorf("%w: %s: %v", ErrInputUnreadable, path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrInputNotFile, path)
	}
	if !strings.HasSuffix(path, ".json") {
		return fmt.Errorf("%w: %s", ErrInputNotJSON, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInputUnreadable, path, err)
	}
	return f.Close()
}

// checkOutput verifies the output path is free to receive pages: no file
// extension, and either absent or an empty directory.
func checkOutput(path string) error {
	base := filepath.Base(filepath.Clean(path))
	if base != "." && base != ".." && filepath.Ext(base) != "" {
		return fmt.Errorf("%w: %s", ErrOutputHasExtension, path)
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat output %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrOutputNotDir, path)
	}

	empty, err := isEmptyDir(path)
	if err != nil {
		return fmt.Errorf("read output %s: %w", path, err)
	}
	if !empty {
		return fmt.Errorf("%w: %s", ErrOutputNotEmpty, path)
	}
	return nil
}

func isEmptyDir(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	_, err = f.Readdirnames(1)
	if err == io.EOF {
		return true, nil
	}
	return false, err
}
