package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"syncwizard/internal/domain"
)

// MockRemote is an in-memory remote service.
type MockRemote struct {
	Latency    time.Duration
	Info       ServiceInfo
	Configured bool
	Installed  bool

	mu       sync.Mutex
	folders  map[string]bool
	calls    []string
	endpoint domain.ServiceEndpoint
}

func NewMockRemote(folders ...string) *MockRemote {
	remote := &MockRemote{
		Latency:    150 * time.Millisecond,
		Info:       ServiceInfo{URL: "mock://remote", Version: "mock"},
		Configured: true,
		Installed:  true,
		folders:    make(map[string]bool),
	}
	for _, folder := range folders {
		remote.folders[normalizeFolder(folder)] = true
	}
	return remote
}

func (remote *MockRemote) CheckDirectory(ctx context.Context, req DirCheckRequest) (DirCheckResult, error) {
	start := time.Now()
	remote.mu.Lock()
	remote.calls = append(remote.calls, req.Path)
	exists := remote.folders[normalizeFolder(req.Path)]
	remote.mu.Unlock()

	if remote.Latency > 0 {
		select {
		case <-ctx.Done():
			return DirCheckResult{}, ctx.Err()
		case <-time.After(remote.Latency):
		}
	}

	return DirCheckResult{
		Path:     req.Path,
		Exists:   exists,
		Duration: time.Since(start),
	}, nil
}

func (remote *MockRemote) IsConfigured() bool {
	return remote.Configured
}

func (remote *MockRemote) CheckInstallation(ctx context.Context) (ServiceInfo, error) {
	if !remote.Configured {
		return ServiceInfo{}, ErrNotConfigured
	}
	if !remote.Installed {
		return ServiceInfo{}, ErrNotInstalled
	}
	return remote.Info, nil
}

func (remote *MockRemote) Configure(endpoint domain.ServiceEndpoint) {
	remote.mu.Lock()
	defer remote.mu.Unlock()
	remote.endpoint = endpoint
	remote.Configured = endpoint.URL != ""
}

func (remote *MockRemote) AddFolder(path string) {
	remote.mu.Lock()
	defer remote.mu.Unlock()
	remote.folders[normalizeFolder(path)] = true
}

// Calls returns the paths queried so far, in order.
func (remote *MockRemote) Calls() []string {
	remote.mu.Lock()
	defer remote.mu.Unlock()
	return append([]string{}, remote.calls...)
}

func (remote *MockRemote) Endpoint() domain.ServiceEndpoint {
	remote.mu.Lock()
	defer remote.mu.Unlock()
	return remote.endpoint
}

func normalizeFolder(path string) string {
	return strings.Trim(path, "/")
}
