package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer performs file writes for the generation engine. It owns no state;
// every call is an independent effect.
type Writer struct{}

// Write writes content to path, creating parent directories as needed and
// overwriting unconditionally. No rollback is provided: an I/O failure
// partway through an entry may leave earlier artifacts on disk, and the
// documented recovery path is a rerun through the completeness gate.
func (Writer) Write(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
