package services

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"

	"syncwizard/internal/domain"
)

const (
	webdavRoot = "remote.php/webdav"
	statusPath = "status.php"

	propfindBody = `<?xml version="1.0" encoding="utf-8"?>` +
		`<d:propfind xmlns:d="DAV:"><d:prop><d:resourcetype/></d:prop></d:propfind>`
)

// WebDAVClient checks folders on an ownCloud style server.
type WebDAVClient struct {
	mu       sync.RWMutex
	endpoint domain.ServiceEndpoint
	http     *retryablehttp.Client
	logger   zerolog.Logger
}

func NewWebDAVClient(endpoint domain.ServiceEndpoint, logger zerolog.Logger) *WebDAVClient {
	client := retryablehttp.NewClient()
	client.RetryMax = 2
	client.RetryWaitMin = 200 * time.Millisecond
	client.RetryWaitMax = 2 * time.Second
	client.Logger = &retryLogger{logger: logger}

	return &WebDAVClient{
		endpoint: endpoint,
		http:     client,
		logger:   logger,
	}
}

func (client *WebDAVClient) Configure(endpoint domain.ServiceEndpoint) {
	client.mu.Lock()
	defer client.mu.Unlock()
	client.endpoint = endpoint
}

func (client *WebDAVClient) IsConfigured() bool {
	client.mu.RLock()
	defer client.mu.RUnlock()
	return client.endpoint.URL != ""
}

type statusReply struct {
	Installed     bool   `json:"installed"`
	Version       string `json:"version"`
	VersionString string `json:"versionstring"`
}

func (client *WebDAVClient) CheckInstallation(ctx context.Context) (ServiceInfo, error) {
	endpoint := client.currentEndpoint()
	if endpoint.URL == "" {
		return ServiceInfo{}, ErrNotConfigured
	}
	req, err := client.newRequest(ctx, http.MethodGet, joinURL(endpoint.URL, statusPath), nil, endpoint)
	if err != nil {
		return ServiceInfo{}, err
	}
	resp, err := client.http.Do(req)
	if err != nil {
		return ServiceInfo{}, fmt.Errorf("query status: %w", err)
	}
	defer drain(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return ServiceInfo{}, fmt.Errorf("query status: unexpected status %s", resp.Status)
	}
	var status statusReply
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return ServiceInfo{}, fmt.Errorf("decode status: %w", err)
	}
	if !status.Installed {
		return ServiceInfo{}, ErrNotInstalled
	}
	version := status.VersionString
	if version == "" {
		version = status.Version
	}
	return ServiceInfo{URL: endpoint.URL, Version: version}, nil
}

type multistatus struct {
	XMLName   xml.Name `xml:"DAV: multistatus"`
	Responses []struct {
		Propstat []struct {
			Prop struct {
				ResourceType struct {
					Collection *struct{} `xml:"DAV: collection"`
				} `xml:"DAV: resourcetype"`
			} `xml:"DAV: prop"`
		} `xml:"DAV: propstat"`
	} `xml:"DAV: response"`
}

func (ms multistatus) isCollection() bool {
	for _, response := range ms.Responses {
		for _, propstat := range response.Propstat {
			if propstat.Prop.ResourceType.Collection != nil {
				return true
			}
		}
	}
	return false
}

// CheckDirectory issues a depth 0 PROPFIND. A 404 is a normal "does not exist"
// answer; a path that exists but is a file does not count either.
func (client *WebDAVClient) CheckDirectory(ctx context.Context, request DirCheckRequest) (DirCheckResult, error) {
	start := time.Now()
	endpoint := client.currentEndpoint()
	if endpoint.URL == "" {
		return DirCheckResult{}, ErrNotConfigured
	}
	target := joinURL(endpoint.URL, webdavRoot+"/"+escapeFolder(request.Path))
	req, err := client.newRequest(ctx, "PROPFIND", target, strings.NewReader(propfindBody), endpoint)
	if err != nil {
		return DirCheckResult{}, err
	}
	req.Header.Set("Depth", "0")
	req.Header.Set("Content-Type", "application/xml; charset=utf-8")

	resp, err := client.http.Do(req)
	if err != nil {
		return DirCheckResult{}, fmt.Errorf("check %q: %w", request.Path, err)
	}
	defer drain(resp.Body)

	result := DirCheckResult{Path: request.Path}
	switch resp.StatusCode {
	case http.StatusMultiStatus:
		var ms multistatus
		if err := xml.NewDecoder(resp.Body).Decode(&ms); err != nil {
			return DirCheckResult{}, fmt.Errorf("decode propfind for %q: %w", request.Path, err)
		}
		result.Exists = ms.isCollection()
	case http.StatusNotFound:
		result.Exists = false
	case http.StatusUnauthorized, http.StatusForbidden:
		return DirCheckResult{}, fmt.Errorf("check %q: access denied (%s)", request.Path, resp.Status)
	default:
		return DirCheckResult{}, fmt.Errorf("check %q: unexpected status %s", request.Path, resp.Status)
	}
	result.Duration = time.Since(start)
	client.logger.Debug().
		Str("path", request.Path).
		Bool("exists", result.Exists).
		Dur("took", result.Duration).
		Msg("remote folder checked")
	return result, nil
}

func (client *WebDAVClient) currentEndpoint() domain.ServiceEndpoint {
	client.mu.RLock()
	defer client.mu.RUnlock()
	return client.endpoint
}

func (client *WebDAVClient) newRequest(ctx context.Context, method, target string, body io.Reader, endpoint domain.ServiceEndpoint) (*retryablehttp.Request, error) {
	var raw interface{}
	if body != nil {
		raw = body
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, target, raw)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", method, err)
	}
	if endpoint.User != "" {
		req.SetBasicAuth(endpoint.User, endpoint.Password)
	}
	return req, nil
}

func joinURL(base, path string) string {
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}

func escapeFolder(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}

func drain(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}

// retryLogger implements retryablehttp.LeveledLogger on top of zerolog.
type retryLogger struct {
	logger zerolog.Logger
}

func (l *retryLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error().Fields(keysAndValues).Msg(msg)
}

func (l *retryLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l *retryLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Trace().Fields(keysAndValues).Msg(msg)
}

func (l *retryLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn().Fields(keysAndValues).Msg(msg)
}
