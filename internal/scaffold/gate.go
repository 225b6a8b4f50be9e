package scaffold

import (
	"fmt"
	"os"
)

// DefaultThreshold is the completeness threshold: a destination directory
// already holding this many files is treated as hand-completed and skipped.
const DefaultThreshold = 3

// ShouldSkip reports whether a destination directory should be left alone.
// A missing directory is never skipped. An existing directory is skipped iff
// the number of files directly inside it is at or above threshold. The check
// is a listing only: contents are never read, so the heuristic is cheap and
// content-agnostic. It cannot distinguish hand-completed work from leftover
// files; see the force option on the runner for the escape hatch.
func ShouldSkip(dir string, threshold int) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("inspecting destination %s: %w", dir, err)
	}

	count := 0
	for _, e := range entries {
		if !e.IsDir() {
			count++
		}
	}
	return count >= threshold, nil
}
