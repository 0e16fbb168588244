package state

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syncwizard/internal/domain"
)

func TestSourceCheckMissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	ok, warning := SourcePage{LocalPath: missing, Alias: "docs"}.Check(domain.FolderList{})

	assert.False(t, ok)
	assert.Contains(t, warning, warnNoLocalDir)
}

func TestSourceCheckFileIsNotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	ok, _ := SourcePage{LocalPath: file, Alias: "docs"}.Check(nil)
	assert.False(t, ok)
}

func TestSourceCheckValid(t *testing.T) {
	dir := t.TempDir()
	folders := domain.FolderList{{LocalPath: filepath.Join(dir, "other"), Alias: "other"}}

	ok, warning := SourcePage{LocalPath: dir, Alias: "docs"}.Check(folders)

	assert.True(t, ok)
	assert.Empty(t, warning)
}

func TestSourceCheckDuplicatePathAfterCanonicalization(t *testing.T) {
	dir := t.TempDir()
	folders := domain.FolderList{{LocalPath: dir, Alias: "existing"}}

	ok, warning := SourcePage{LocalPath: dir + string(filepath.Separator) + ".", Alias: "docs"}.Check(folders)

	assert.False(t, ok)
	assert.Contains(t, warning, "is already an upload folder")
}

func TestSourceCheckDuplicatePathThroughSymlink(t *testing.T) {
	dir := t.TempDir()
	real := filepath.Join(dir, "real")
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Mkdir(real, 0o755))
	if err := os.Symlink(real, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	folders := domain.FolderList{{LocalPath: real, Alias: "existing"}}

	ok, _ := SourcePage{LocalPath: link, Alias: "docs"}.Check(folders)
	assert.False(t, ok)
}

func TestSourceCheckDuplicatePathReportsEveryMatch(t *testing.T) {
	dir := t.TempDir()
	folders := domain.FolderList{
		{LocalPath: dir, Alias: "one"},
		{LocalPath: dir, Alias: "two"},
	}

	_, warning := SourcePage{LocalPath: dir, Alias: "docs"}.Check(folders)

	lines := 0
	for _, line := range strings.Split(warning, "\n") {
		if line != "" {
			lines++
		}
	}
	assert.Equal(t, 2, lines)
}

func TestSourceCheckDuplicateAliasWithValidPath(t *testing.T) {
	dir := t.TempDir()
	folders := domain.FolderList{{LocalPath: filepath.Join(dir, "elsewhere"), Alias: "docs"}}

	ok, warning := SourcePage{LocalPath: dir, Alias: "docs"}.Check(folders)

	assert.False(t, ok)
	assert.Contains(t, warning, "The alias docs is already in use")
}

func TestSourceCheckEmptyAlias(t *testing.T) {
	dir := t.TempDir()

	ok, warning := SourcePage{LocalPath: dir, Alias: ""}.Check(domain.FolderList{})

	assert.False(t, ok)
	assert.Equal(t, warnEmptyAlias, warning)
}

func TestSourceCheckCollectsAllMessages(t *testing.T) {
	dir := t.TempDir()
	folders := domain.FolderList{
		{LocalPath: dir, Alias: "photos"},
		{LocalPath: filepath.Join(dir, "elsewhere"), Alias: "docs"},
	}

	ok, warning := SourcePage{LocalPath: dir, Alias: "docs"}.Check(folders)

	assert.False(t, ok)
	assert.Equal(t, []string{
		fmt.Sprintf(warnDupPathFmt, canonicalPath(dir)),
		fmt.Sprintf(warnDupAliasFmt, "docs"),
	}, strings.Split(warning, "\n"))

	missing := filepath.Join(dir, "missing")
	ok, warning = SourcePage{LocalPath: missing, Alias: ""}.Check(folders)

	assert.False(t, ok)
	assert.Equal(t, []string{warnNoLocalDir, warnEmptyAlias}, strings.Split(warning, "\n"))
}

func TestSourceCheckEmptyAliasIsNotADuplicate(t *testing.T) {
	dir := t.TempDir()
	folders := domain.FolderList{{LocalPath: filepath.Join(dir, "elsewhere"), Alias: ""}}

	_, warning := SourcePage{LocalPath: dir, Alias: ""}.Check(folders)

	assert.Equal(t, warnEmptyAlias, warning)
	assert.NotContains(t, warning, "already in use")
}
