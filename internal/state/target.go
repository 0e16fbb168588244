package state

import (
	"net/url"
	"strings"

	"syncwizard/internal/domain"
)

var shareSchemes = map[string]bool{
	"sftp": true,
	"smb":  true,
}

type TargetPage struct {
	Kind          domain.TargetKind
	LocalPath     string
	NetworkURL    string
	Probe         Probe
	RemoteEnabled bool
	RemoteLabel   string
}

// SetKind selects the target kind. Selecting the remote folder while the
// remote service is unavailable is refused.
func (page *TargetPage) SetKind(kind domain.TargetKind) bool {
	if kind == domain.TargetRemoteFolder && !page.RemoteEnabled {
		return false
	}
	page.Kind = kind
	return true
}

// DisableRemote turns the remote folder option off, dropping the selection if it was active.
func (page *TargetPage) DisableRemote() {
	page.RemoteEnabled = false
	page.RemoteLabel = ""
	if page.Kind == domain.TargetRemoteFolder {
		page.Kind = domain.TargetNone
	}
}

func (page *TargetPage) RemoteFolder() string {
	return page.Probe.Text
}

func (page *TargetPage) Complete() bool {
	switch page.Kind {
	case domain.TargetLocal:
		return isDir(page.LocalPath)
	case domain.TargetNetworkShare:
		return ValidShareURL(page.NetworkURL)
	case domain.TargetRemoteFolder:
		return page.Probe.Satisfied()
	default:
		return false
	}
}

// Warning is the inline warning for the current selection, if any.
func (page *TargetPage) Warning() string {
	if page.Kind != domain.TargetRemoteFolder || page.Probe.Text == "" {
		return ""
	}
	return page.Probe.Warning
}

// ValidShareURL accepts sftp and smb URLs. A host is required: a share URL
// without a server cannot be mounted.
func ValidShareURL(raw string) bool {
	if raw == "" {
		return false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return shareSchemes[strings.ToLower(parsed.Scheme)] && parsed.Host != ""
}
