package reportfiles

import (
	"os"
	"path/filepath"
)

// Write stores the report at path, creating parent directories as needed.
// The content is staged in a temp file and renamed into place, so the
// report at path is always complete, never truncated.
func Write(path, content string) error {
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Temp file lives next to the target so the rename stays on one filesystem
	tmp, err := os.CreateTemp(dir, ".report-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() { _ = tmp.Close(); _ = os.Remove(tmpPath) }()

	if _, err := tmp.WriteString(content); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	// Atomic replace (POSIX)
	return os.Rename(tmpPath, path)
}
