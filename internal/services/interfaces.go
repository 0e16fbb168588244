package services

import (
	"context"
	"errors"

	"syncwizard/internal/domain"
)

var (
	ErrNotConfigured = errors.New("remote service not configured")
	ErrNotInstalled  = errors.New("remote service not installed")
)

// DirChecker answers whether a folder exists on the remote service.
type DirChecker interface {
	CheckDirectory(ctx context.Context, req DirCheckRequest) (DirCheckResult, error)
}

// InstallationChecker is optionally implemented by a DirChecker that can
// tell whether the remote service is set up and reachable.
type InstallationChecker interface {
	IsConfigured() bool
	CheckInstallation(ctx context.Context) (ServiceInfo, error)
}

// EndpointConfigurer is optionally implemented by a DirChecker whose endpoint
// can be replaced after construction.
type EndpointConfigurer interface {
	Configure(endpoint domain.ServiceEndpoint)
}
