package domain

// FolderPair is one already configured sync pair.
type FolderPair struct {
	LocalPath string `yaml:"localPath"`
	Alias     string `yaml:"alias"`
}

// FolderSet is a read-only view over configured pairs owned by someone else.
// Each stops as soon as fn returns false.
type FolderSet interface {
	Each(fn func(FolderPair) bool)
}

type FolderList []FolderPair

func (list FolderList) Each(fn func(FolderPair) bool) {
	for _, pair := range list {
		if !fn(pair) {
			return
		}
	}
}

type ServiceEndpoint struct {
	URL      string `yaml:"url,omitempty"`
	User     string `yaml:"user,omitempty"`
	Password string `yaml:"-"`
	Alias    string `yaml:"alias,omitempty"`
}

// FolderDefinition is what a finished wizard produces.
type FolderDefinition struct {
	Alias            string           `yaml:"alias"`
	SourcePath       string           `yaml:"sourcePath"`
	Target           TargetKind       `yaml:"target"`
	TargetPath       string           `yaml:"targetPath,omitempty"`
	TargetURL        string           `yaml:"targetUrl,omitempty"`
	RemoteFolder     string           `yaml:"remoteFolder,omitempty"`
	OnlyNetwork      bool             `yaml:"onlyNetwork,omitempty"`
	OnlyLocalNetwork bool             `yaml:"onlyLocalNetwork,omitempty"`
	Service          *ServiceEndpoint `yaml:"service,omitempty"`
}
