package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"syncwizard/internal/domain"
)

const (
	configDirName  = "syncwizard"
	configFileName = "config.yaml"

	defaultAlias = "ownCloud"
	defaultProbe = 10 * time.Second
)

// For tests.
var (
	osUserConfigDir = os.UserConfigDir
	osUserHomeDir   = os.UserHomeDir
	osGetenv        = os.Getenv
)

// DefaultConfig resolves the environment dependent defaults once.
func DefaultConfig() Config {
	home, err := osUserHomeDir()
	if err != nil {
		home = "."
	}
	return DefaultConfigFor(home, osGetenv("USER"))
}

// DefaultConfigFor leaves the service URL empty: no remote service is
// configured until the user sets one.
func DefaultConfigFor(home, user string) Config {
	return Config{
		SourcePath:   filepath.Join(home, defaultAlias),
		Alias:        defaultAlias,
		Theme:        "dark",
		ProbeTimeout: defaultProbe,
		Service: domain.ServiceEndpoint{
			User:  user,
			Alias: defaultAlias,
		},
	}
}

func ConfigDir() (string, error) {
	base, err := osUserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, configDirName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

func LoadConfig() (Config, error) {
	config := DefaultConfig()
	path, err := ConfigPath()
	if err != nil {
		return config, err
	}
	return LoadConfigFrom(path, config)
}

// LoadConfigFrom layers the file at path over base. A missing file is not an error.
func LoadConfigFrom(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return base, nil
		}
		return base, fmt.Errorf("read config %s: %w", path, err)
	}
	var stored fileConfig
	if err := yaml.Unmarshal(data, &stored); err != nil {
		return base, fmt.Errorf("parse config %s: %w", path, err)
	}
	return mergeConfig(base, stored), nil
}

func SaveConfig(config Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveConfigTo(path, config)
}

func SaveConfigTo(path string, config Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func mergeConfig(base Config, stored fileConfig) Config {
	merged := base
	if stored.SourcePath != nil {
		merged.SourcePath = *stored.SourcePath
	}
	if stored.Alias != nil {
		merged.Alias = *stored.Alias
	}
	if stored.Theme != nil {
		merged.Theme = *stored.Theme
	}
	if stored.FoldersFile != nil {
		merged.FoldersFile = *stored.FoldersFile
	}
	if stored.LogFile != nil {
		merged.LogFile = *stored.LogFile
	}
	if stored.ProbeTimeout != nil && *stored.ProbeTimeout > 0 {
		merged.ProbeTimeout = *stored.ProbeTimeout
	}
	if stored.Service != nil {
		if stored.Service.URL != nil {
			merged.Service.URL = *stored.Service.URL
		}
		if stored.Service.User != nil {
			merged.Service.User = *stored.Service.User
		}
		if stored.Service.Alias != nil {
			merged.Service.Alias = *stored.Service.Alias
		}
	}
	return merged
}
