package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syncwizard/internal/domain"
)

const collectionReply = `<?xml version="1.0"?>
<d:multistatus xmlns:d="DAV:">
  <d:response>
    <d:href>/remote.php/webdav/Docs/</d:href>
    <d:propstat>
      <d:prop><d:resourcetype><d:collection/></d:resourcetype></d:prop>
      <d:status>HTTP/1.1 200 OK</d:status>
    </d:propstat>
  </d:response>
</d:multistatus>`

const fileReply = `<?xml version="1.0"?>
<d:multistatus xmlns:d="DAV:">
  <d:response>
    <d:href>/remote.php/webdav/notes.txt</d:href>
    <d:propstat>
      <d:prop><d:resourcetype/></d:prop>
      <d:status>HTTP/1.1 200 OK</d:status>
    </d:propstat>
  </d:response>
</d:multistatus>`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/status.php", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"installed":true,"version":"10.13.0.1","versionstring":"10.13.0"}`))
	})
	mux.HandleFunc("/remote.php/webdav/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "PROPFIND" || r.Header.Get("Depth") != "0" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "alice" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.URL.Path {
		case "/remote.php/webdav/Docs", "/remote.php/webdav/My Files":
			w.WriteHeader(http.StatusMultiStatus)
			_, _ = w.Write([]byte(collectionReply))
		case "/remote.php/webdav/notes.txt":
			w.WriteHeader(http.StatusMultiStatus)
			_, _ = w.Write([]byte(fileReply))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestClient(url string) *WebDAVClient {
	return NewWebDAVClient(domain.ServiceEndpoint{URL: url, User: "alice", Password: "secret"}, zerolog.Nop())
}

func TestWebDAVCheckDirectory(t *testing.T) {
	server := newTestServer(t)
	client := newTestClient(server.URL + "/")

	cases := []struct {
		path   string
		exists bool
	}{
		{"Docs", true},
		{"/Docs/", true},
		{"My Files", true},
		{"notes.txt", false},
		{"Missing", false},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			result, err := client.CheckDirectory(context.Background(), DirCheckRequest{Path: tc.path})
			require.NoError(t, err)
			assert.Equal(t, tc.exists, result.Exists)
			assert.Equal(t, tc.path, result.Path)
		})
	}
}

func TestWebDAVCheckDirectoryUnauthorized(t *testing.T) {
	server := newTestServer(t)
	client := NewWebDAVClient(domain.ServiceEndpoint{URL: server.URL, User: "alice", Password: "wrong"}, zerolog.Nop())

	_, err := client.CheckDirectory(context.Background(), DirCheckRequest{Path: "Docs"})
	assert.ErrorContains(t, err, "access denied")
}

func TestWebDAVNotConfigured(t *testing.T) {
	client := NewWebDAVClient(domain.ServiceEndpoint{}, zerolog.Nop())

	assert.False(t, client.IsConfigured())
	_, err := client.CheckDirectory(context.Background(), DirCheckRequest{Path: "Docs"})
	assert.True(t, errors.Is(err, ErrNotConfigured))
	_, err = client.CheckInstallation(context.Background())
	assert.True(t, errors.Is(err, ErrNotConfigured))
}

func TestWebDAVCheckInstallation(t *testing.T) {
	server := newTestServer(t)
	client := NewWebDAVClient(domain.ServiceEndpoint{}, zerolog.Nop())
	client.Configure(domain.ServiceEndpoint{URL: server.URL})

	require.True(t, client.IsConfigured())
	info, err := client.CheckInstallation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "10.13.0", info.Version)
	assert.Equal(t, server.URL, info.URL)
}

func TestWebDAVCheckInstallationNotInstalled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"installed":false}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).CheckInstallation(context.Background())
	assert.True(t, errors.Is(err, ErrNotInstalled))
}

func TestEscapeFolder(t *testing.T) {
	assert.Equal(t, "a/b%20c", escapeFolder("/a/b c/"))
	assert.Equal(t, "%25", escapeFolder("%"))
}
