package state

import (
	"syncwizard/internal/config"
	"syncwizard/internal/domain"
)

type PageID int

const (
	PageService PageID = iota
	PageSource
	PageTarget
	PageNetwork
)

func (id PageID) Title() string {
	switch id {
	case PageService:
		return "Remote service"
	case PageSource:
		return "Source folder"
	case PageTarget:
		return "Target"
	case PageNetwork:
		return "Network"
	default:
		return ""
	}
}

type Preferences struct {
	Theme string
}

type State struct {
	Index       int
	WithService bool
	Service     ServicePage
	Source      SourcePage
	Target      TargetPage
	Network     NetworkPage
	Folders     domain.FolderSet
	Prefs       Preferences
	endpoint    domain.ServiceEndpoint
}

func NewState(cfg config.Config, folders domain.FolderSet) *State {
	if folders == nil {
		folders = domain.FolderList{}
	}
	return &State{
		WithService: cfg.SetupService,
		Service:     NewServicePage(cfg.Service),
		Source: SourcePage{
			LocalPath: cfg.SourcePath,
			Alias:     cfg.Alias,
		},
		Target: TargetPage{
			RemoteEnabled: true,
		},
		Folders:  folders,
		Prefs:    Preferences{Theme: cfg.Theme},
		endpoint: cfg.Service,
	}
}

// Pages lists the pages of the current run; the network page only follows a network share target.
func (appState *State) Pages() []PageID {
	pages := make([]PageID, 0, 4)
	if appState.WithService {
		pages = append(pages, PageService)
	}
	pages = append(pages, PageSource, PageTarget)
	if appState.Target.Kind == domain.TargetNetworkShare {
		pages = append(pages, PageNetwork)
	}
	return pages
}

func (appState *State) Page() PageID {
	pages := appState.Pages()
	if appState.Index >= len(pages) {
		appState.Index = len(pages) - 1
	}
	if appState.Index < 0 {
		appState.Index = 0
	}
	return pages[appState.Index]
}

func (appState *State) IsFirst() bool {
	return appState.Index == 0
}

func (appState *State) IsLast() bool {
	return appState.Index >= len(appState.Pages())-1
}

func (appState *State) PageComplete() bool {
	complete, _ := appState.CheckPage()
	return complete
}

// CheckPage evaluates the current page and returns its inline warning.
func (appState *State) CheckPage() (bool, string) {
	switch appState.Page() {
	case PageService:
		return appState.Service.Complete(), ""
	case PageSource:
		return appState.Source.Check(appState.Folders)
	case PageTarget:
		return appState.Target.Complete(), appState.Target.Warning()
	case PageNetwork:
		return appState.Network.Complete(), ""
	default:
		return false, ""
	}
}

// Next advances when the current page is complete.
func (appState *State) Next() bool {
	if !appState.PageComplete() || appState.IsLast() {
		return false
	}
	appState.Index++
	return true
}

func (appState *State) Back() bool {
	if appState.IsFirst() {
		return false
	}
	appState.Index--
	return true
}

// Endpoint is the remote service endpoint in effect: the service page when it
// is part of this run, the configured one otherwise.
func (appState *State) Endpoint() domain.ServiceEndpoint {
	if appState.WithService {
		return appState.Service.Endpoint()
	}
	return appState.endpoint
}

func (appState *State) Result() domain.FolderDefinition {
	result := domain.FolderDefinition{
		Alias:      appState.Source.Alias,
		SourcePath: canonicalPath(appState.Source.LocalPath),
		Target:     appState.Target.Kind,
	}
	switch appState.Target.Kind {
	case domain.TargetLocal:
		result.TargetPath = canonicalPath(appState.Target.LocalPath)
	case domain.TargetNetworkShare:
		result.TargetURL = appState.Target.NetworkURL
		result.OnlyNetwork = appState.Network.OnlyNetwork
		result.OnlyLocalNetwork = appState.Network.OnlyLocalNetwork
	case domain.TargetRemoteFolder:
		result.RemoteFolder = appState.Target.RemoteFolder()
		endpoint := appState.Endpoint()
		endpoint.Password = ""
		if endpoint.URL != "" {
			result.Service = &endpoint
		}
	}
	return result
}
