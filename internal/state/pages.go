package state

import (
	"net/url"

	"syncwizard/internal/domain"
)

// DefaultServiceURL pre-fills the service page when no endpoint is configured.
const DefaultServiceURL = "http://localhost/owncloud"

type NetworkPage struct {
	OnlyNetwork      bool
	OnlyLocalNetwork bool
}

func (page NetworkPage) Complete() bool {
	return true
}

type ServicePage struct {
	URL      string
	User     string
	Password string
	Alias    string
}

func NewServicePage(defaults domain.ServiceEndpoint) ServicePage {
	if defaults.URL == "" {
		defaults.URL = DefaultServiceURL
	}
	return ServicePage{
		URL:      defaults.URL,
		User:     defaults.User,
		Password: defaults.Password,
		Alias:    defaults.Alias,
	}
}

func (page ServicePage) Complete() bool {
	if page.Alias == "" || page.URL == "" {
		return false
	}
	parsed, err := url.Parse(page.URL)
	if err != nil {
		return false
	}
	return parsed.Scheme != "" && parsed.Host != ""
}

func (page ServicePage) Endpoint() domain.ServiceEndpoint {
	return domain.ServiceEndpoint{
		URL:      page.URL,
		User:     page.User,
		Password: page.Password,
		Alias:    page.Alias,
	}
}
