package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syncwizard/internal/config"
	"syncwizard/internal/domain"
)

func newTestState(t *testing.T) *State {
	t.Helper()
	cfg := config.DefaultConfigFor(t.TempDir(), "alice")
	cfg.SourcePath = t.TempDir()
	cfg.Alias = "docs"
	return NewState(cfg, domain.FolderList{})
}

func TestWizardPagesWithoutService(t *testing.T) {
	appState := newTestState(t)

	assert.Equal(t, []PageID{PageSource, PageTarget}, appState.Pages())
	assert.Equal(t, PageSource, appState.Page())
	assert.True(t, appState.IsFirst())
}

func TestWizardNetworkPageFollowsShareTarget(t *testing.T) {
	appState := newTestState(t)
	appState.Target.SetKind(domain.TargetNetworkShare)

	assert.Equal(t, []PageID{PageSource, PageTarget, PageNetwork}, appState.Pages())
}

func TestWizardNextRequiresCompletePage(t *testing.T) {
	appState := newTestState(t)
	appState.Source.Alias = ""

	assert.False(t, appState.Next())
	assert.Equal(t, PageSource, appState.Page())

	appState.Source.Alias = "docs"
	require.True(t, appState.Next())
	assert.Equal(t, PageTarget, appState.Page())
	assert.True(t, appState.IsLast())
	assert.False(t, appState.Next())
}

func TestWizardBack(t *testing.T) {
	appState := newTestState(t)
	assert.False(t, appState.Back())

	require.True(t, appState.Next())
	assert.True(t, appState.Back())
	assert.Equal(t, PageSource, appState.Page())
}

func TestWizardPageClampsWhenNetworkPageDisappears(t *testing.T) {
	appState := newTestState(t)
	appState.Target.SetKind(domain.TargetNetworkShare)
	appState.Index = 2
	require.Equal(t, PageNetwork, appState.Page())

	appState.Target.SetKind(domain.TargetLocal)
	assert.Equal(t, PageTarget, appState.Page())
}

func TestWizardServicePage(t *testing.T) {
	cfg := config.DefaultConfigFor(t.TempDir(), "alice")
	cfg.SetupService = true
	appState := NewState(cfg, nil)

	assert.Equal(t, PageService, appState.Page())
	assert.True(t, appState.PageComplete())
	assert.Equal(t, "alice", appState.Service.User)
	assert.Equal(t, DefaultServiceURL, appState.Service.URL)
	assert.Empty(t, appState.endpoint.URL)

	appState.Service.URL = "not a url"
	assert.False(t, appState.PageComplete())
	appState.Service.URL = "https://cloud.example.com"
	appState.Service.Alias = ""
	assert.False(t, appState.PageComplete())
}

func TestWizardResultForRemoteFolder(t *testing.T) {
	cfg := config.DefaultConfigFor(t.TempDir(), "alice")
	cfg.SourcePath = t.TempDir()
	cfg.Service.URL = "https://cloud.example.com"
	cfg.Service.Password = "secret"
	appState := NewState(cfg, nil)
	appState.Target.SetKind(domain.TargetRemoteFolder)
	gen, _ := appState.Target.Probe.Edit("Docs")
	text, _ := appState.Target.Probe.Fire(gen)
	appState.Target.Probe.Resolve(gen, text, true, nil)

	result := appState.Result()

	assert.Equal(t, domain.TargetRemoteFolder, result.Target)
	assert.Equal(t, "Docs", result.RemoteFolder)
	require.NotNil(t, result.Service)
	assert.Empty(t, result.Service.Password)
	assert.Equal(t, "https://cloud.example.com", result.Service.URL)
}

func TestWizardResultWithoutServiceEndpoint(t *testing.T) {
	appState := newTestState(t)
	appState.Target.SetKind(domain.TargetRemoteFolder)

	result := appState.Result()

	assert.Equal(t, domain.TargetRemoteFolder, result.Target)
	assert.Nil(t, result.Service)
}

func TestServicePageKeepsConfiguredURL(t *testing.T) {
	page := NewServicePage(domain.ServiceEndpoint{URL: "https://cloud.example.com"})
	assert.Equal(t, "https://cloud.example.com", page.URL)
	assert.Equal(t, DefaultServiceURL, NewServicePage(domain.ServiceEndpoint{}).URL)
}

func TestWizardResultForNetworkShare(t *testing.T) {
	appState := newTestState(t)
	appState.Target.SetKind(domain.TargetNetworkShare)
	appState.Target.NetworkURL = "smb://nas/share"
	appState.Network.OnlyLocalNetwork = true

	result := appState.Result()

	assert.Equal(t, "smb://nas/share", result.TargetURL)
	assert.True(t, result.OnlyLocalNetwork)
	assert.Nil(t, result.Service)
}

func TestServicePageEndpoint(t *testing.T) {
	page := NewServicePage(domain.ServiceEndpoint{URL: "https://c", User: "u", Alias: "a"})
	page.Password = "p"

	endpoint := page.Endpoint()
	assert.Equal(t, domain.ServiceEndpoint{URL: "https://c", User: "u", Password: "p", Alias: "a"}, endpoint)
	assert.True(t, NetworkPage{}.Complete())
}
