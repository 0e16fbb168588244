package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syncwizard/internal/config"
	"syncwizard/internal/domain"
	"syncwizard/internal/services"
)

func TestNewRemotePicksImplementation(t *testing.T) {
	cfg := config.DefaultConfigFor("/home/ana", "ana")

	cfg.Mock = true
	mock, ok := newRemote(cfg, zerolog.Nop()).(*services.MockRemote)
	require.True(t, ok)
	assert.True(t, mock.IsConfigured())

	cfg.Service.URL = "https://cloud.example.com"
	mock, ok = newRemote(cfg, zerolog.Nop()).(*services.MockRemote)
	require.True(t, ok)
	assert.True(t, mock.IsConfigured())
	assert.Equal(t, cfg.Service.URL, mock.Endpoint().URL)

	cfg.Mock = false
	cfg.Service.URL = ""
	client, ok := newRemote(cfg, zerolog.Nop()).(*services.WebDAVClient)
	require.True(t, ok)
	assert.False(t, client.IsConfigured())
}

func TestLoadFoldersUsesConfiguredFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folders.yaml")
	data := "folders:\n  - localPath: /data/photos\n    alias: Photos\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg := config.DefaultConfigFor("/home/ana", "ana")
	cfg.FoldersFile = path
	folders, err := loadFolders(cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, domain.FolderList{{LocalPath: "/data/photos", Alias: "Photos"}}, folders)
}

func TestWriteResultOmitsPassword(t *testing.T) {
	var buf bytes.Buffer
	err := WriteResult(&buf, domain.FolderDefinition{
		Alias:        "Docs",
		SourcePath:   "/home/ana/Docs",
		Target:       domain.TargetRemoteFolder,
		RemoteFolder: "Documents",
		Service: &domain.ServiceEndpoint{
			URL:      "https://cloud.example.com",
			User:     "ana",
			Password: "secret",
		},
	})
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "alias: Docs")
	assert.Contains(t, output, "target: remote")
	assert.Contains(t, output, "remoteFolder: Documents")
	assert.Contains(t, output, "url: https://cloud.example.com")
	assert.NotContains(t, output, "secret")
	assert.NotContains(t, output, "targetPath")
}
