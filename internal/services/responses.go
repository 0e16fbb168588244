package services

import "time"

type DirCheckResult struct {
	Path     string
	Exists   bool
	Duration time.Duration
}

type ServiceInfo struct {
	URL     string
	Version string
}
