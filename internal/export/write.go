package export

import (
	"os"
	"path/filepath"
)

// ensureDir creates dir and any missing parents.
func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newError(KindFilesystem, "create directory", err)
	}
	return nil
}

// writeNote writes content to dir/filename, replacing any existing file.
// Returns the written path.
func writeNote(dir, filename, content string) (string, error) {
	if err := ensureDir(dir); err != nil {
		return "", err
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", newError(KindFilesystem, "write note", err)
	}
	return path, nil
}
