package state

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"syncwizard/internal/domain"
)

const (
	warnNoLocalDir  = "No local directory selected!"
	warnEmptyAlias  = "The alias can not be empty. Please provide a descriptive alias word."
	warnDupPathFmt  = "The local path %s is already an upload folder. Please pick another one!"
	warnDupAliasFmt = "The alias %s is already in use. Please change it to something different."
)

type SourcePage struct {
	LocalPath string
	Alias     string
}

// Check reports whether the page may be left and, if not, every reason why.
// The directory test gates the duplicate path scan; the alias checks always run.
func (page SourcePage) Check(folders domain.FolderSet) (bool, string) {
	var warnings []string

	ok := isDir(page.LocalPath)
	if !ok {
		warnings = append(warnings, warnNoLocalDir)
	}

	if ok && folders != nil {
		selected := canonicalPath(page.LocalPath)
		folders.Each(func(pair domain.FolderPair) bool {
			if canonicalPath(pair.LocalPath) == selected {
				ok = false
				warnings = append(warnings, fmt.Sprintf(warnDupPathFmt, selected))
			}
			return true
		})
	}

	if page.Alias == "" {
		ok = false
		warnings = append(warnings, warnEmptyAlias)
	}

	if folders != nil && page.Alias != "" {
		taken := false
		folders.Each(func(pair domain.FolderPair) bool {
			if pair.Alias == page.Alias {
				taken = true
			}
			return true
		})
		if taken {
			ok = false
			warnings = append(warnings, fmt.Sprintf(warnDupAliasFmt, page.Alias))
		}
	}

	return ok, strings.Join(warnings, "\n")
}

func isDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// canonicalPath makes two spellings of the same directory compare equal.
// Symlinks are only resolved when the target exists.
func canonicalPath(path string) string {
	if path == "" {
		return ""
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
