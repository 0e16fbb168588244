package config

import (
	"time"

	"syncwizard/internal/domain"
)

type Config struct {
	SourcePath   string                 `yaml:"sourcePath"`
	Alias        string                 `yaml:"alias"`
	Theme        string                 `yaml:"theme"`
	FoldersFile  string                 `yaml:"foldersFile,omitempty"`
	LogFile      string                 `yaml:"logFile,omitempty"`
	ProbeTimeout time.Duration          `yaml:"probeTimeout"`
	Service      domain.ServiceEndpoint `yaml:"service"`

	SetupService bool `yaml:"-"`
	Mock         bool `yaml:"-"`
	Debug        bool `yaml:"-"`
}

type fileConfig struct {
	SourcePath   *string              `yaml:"sourcePath"`
	Alias        *string              `yaml:"alias"`
	Theme        *string              `yaml:"theme"`
	FoldersFile  *string              `yaml:"foldersFile"`
	LogFile      *string              `yaml:"logFile"`
	ProbeTimeout *time.Duration       `yaml:"probeTimeout"`
	Service      *fileServiceEndpoint `yaml:"service"`
}

type fileServiceEndpoint struct {
	URL   *string `yaml:"url"`
	User  *string `yaml:"user"`
	Alias *string `yaml:"alias"`
}
