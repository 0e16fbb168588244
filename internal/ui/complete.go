package ui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// completePath extends input to the longest unambiguous directory prefix and
// returns the candidate directories. An empty input starts from home.
func completePath(input, home string) (string, []string) {
	sep := string(filepath.Separator)
	trimmed := strings.TrimSpace(input)
	fallback := input
	if trimmed == "" {
		if home == "" {
			return input, nil
		}
		trimmed = strings.TrimSuffix(home, sep) + sep
		fallback = trimmed
	}
	dir := filepath.Dir(trimmed)
	base := filepath.Base(trimmed)
	if strings.HasSuffix(trimmed, sep) {
		dir = trimmed
		base = ""
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fallback, nil
	}
	matches := []string{}
	for _, entry := range entries {
		if !isDirEntry(dir, entry) {
			continue
		}
		name := entry.Name()
		if base == "" && strings.HasPrefix(name, ".") {
			continue
		}
		if strings.HasPrefix(name, base) {
			matches = append(matches, name)
		}
	}
	if len(matches) == 0 {
		return fallback, nil
	}
	sort.Strings(matches)

	paths := make([]string, 0, len(matches))
	for _, match := range matches {
		paths = append(paths, filepath.Join(dir, match))
	}
	prefix := commonPrefix(matches)
	if len(matches) > 1 && prefix == base {
		return fallback, paths
	}
	completed := filepath.Join(dir, prefix)
	if len(matches) == 1 {
		completed += sep
	}
	return completed, paths
}

func isDirEntry(dir string, entry os.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	return err == nil && info.IsDir()
}

func commonPrefix(values []string) string {
	if len(values) == 0 {
		return ""
	}
	prefix := values[0]
	for _, value := range values[1:] {
		for !strings.HasPrefix(value, prefix) && prefix != "" {
			prefix = prefix[:len(prefix)-1]
		}
		if prefix == "" {
			return ""
		}
	}
	return prefix
}
