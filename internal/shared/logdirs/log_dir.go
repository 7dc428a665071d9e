package logdirs

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// ListLogFiles returns the full paths of the entries in dir, sorted by name.
// Subdirectories are not descended into. Entry names that are not valid
// UTF-8 are skipped, so not every file in the directory is guaranteed to be
// included.
func ListLogFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read log directory: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !utf8.ValidString(name) {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}

	return files, nil
}
