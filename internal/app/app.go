package app

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"syncwizard/internal/config"
	"syncwizard/internal/domain"
	"syncwizard/internal/services"
	"syncwizard/internal/state"
	"syncwizard/internal/ui"
)

// mockFolders are the folders the in-memory remote service knows about.
var mockFolders = []string{"Documents", "Photos", "Shared/Projects"}

// Run drives the wizard with cfg, the config with flags applied, and writes the
// resulting folder definition to out. When the wizard finishes, the user's
// choices are saved over stored, the config as read from disk; a nil stored
// skips saving. A cancelled wizard writes and saves nothing and is not an error.
func Run(cfg config.Config, stored *config.Config, logger zerolog.Logger, out io.Writer) error {
	folders, err := loadFolders(cfg, logger)
	if err != nil {
		return err
	}
	home, err := os.UserHomeDir()
	if err != nil {
		logger.Warn().Err(err).Msg("no home directory, completion starts at the working directory")
	}

	initialState := state.NewState(cfg, folders)
	remote := newRemote(cfg, logger)
	model := ui.NewModel(initialState, remote, ui.Options{
		Home:         home,
		ProbeTimeout: cfg.ProbeTimeout,
		Logger:       logger,
	})

	logger.Info().
		Bool("setupService", cfg.SetupService).
		Bool("mock", cfg.Mock).
		Int("pages", len(initialState.Pages())).
		Msg("wizard started")
	program := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("run wizard: %w", err)
	}

	provider, ok := finalModel.(ui.ResultProvider)
	if !ok {
		return nil
	}
	definition, ok := provider.Result()
	if !ok {
		logger.Info().Msg("nothing saved")
		return nil
	}
	if stored != nil {
		if err := saveSnapshot(finalModel, *stored); err != nil {
			logger.Warn().Err(err).Msg("config not saved")
		}
	}
	return WriteResult(out, definition)
}

func saveSnapshot(final tea.Model, stored config.Config) error {
	provider, ok := final.(ui.ConfigProvider)
	if !ok {
		return nil
	}
	path, err := config.ConfigPath()
	if err != nil {
		return err
	}
	return config.SaveConfigTo(path, provider.ConfigSnapshot(stored))
}

func loadFolders(cfg config.Config, logger zerolog.Logger) (domain.FolderList, error) {
	path, err := config.FoldersPath(cfg)
	if err != nil {
		return nil, err
	}
	folders, err := config.LoadFolders(path)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("path", path).Int("count", len(folders)).Msg("loaded folder list")
	return folders, nil
}

func newRemote(cfg config.Config, logger zerolog.Logger) services.DirChecker {
	if cfg.Mock {
		remote := services.NewMockRemote(mockFolders...)
		if cfg.Service.URL != "" {
			remote.Configure(cfg.Service)
		}
		return remote
	}
	return services.NewWebDAVClient(cfg.Service, logger)
}

// WriteResult prints the folder definition as YAML.
func WriteResult(out io.Writer, definition domain.FolderDefinition) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(definition); err != nil {
		return fmt.Errorf("write folder definition: %w", err)
	}
	return encoder.Close()
}
