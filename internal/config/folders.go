package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"syncwizard/internal/domain"
)

const foldersFileName = "folders.yaml"

type foldersFile struct {
	Folders []domain.FolderPair `yaml:"folders"`
}

// FoldersPath is the configured folder list, or folders.yaml next to the config file.
func FoldersPath(config Config) (string, error) {
	if config.FoldersFile != "" {
		return config.FoldersFile, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, foldersFileName), nil
}

// LoadFolders reads the already configured sync pairs. The wizard never writes this file.
func LoadFolders(path string) (domain.FolderList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.FolderList{}, nil
		}
		return nil, fmt.Errorf("read folders %s: %w", path, err)
	}
	var stored foldersFile
	if err := yaml.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("parse folders %s: %w", path, err)
	}
	return domain.FolderList(stored.Folders), nil
}
