package report

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteProof writes the marker file recording the working directory and
// the resolved binary path. It runs before any network activity so a
// caller can confirm the process started even when everything downstream
// fails.
func WriteProof(path string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolving executable path: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating dir for %s: %w", path, err)
	}
	content := fmt.Sprintf("Executed from: %s\nBinary path: %s\n", wd, exe)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("writing proof file %s: %w", path, err)
	}
	return nil
}
