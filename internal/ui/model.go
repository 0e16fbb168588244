package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"syncwizard/internal/config"
	"syncwizard/internal/domain"
	"syncwizard/internal/services"
	"syncwizard/internal/state"
)

type item int

const (
	itemServiceURL item = iota
	itemServiceUser
	itemServicePassword
	itemServiceAlias
	itemSourcePath
	itemSourceAlias
	itemTargetLocal
	itemTargetURL
	itemRemoteFolder
	inputCount
)

const (
	itemTargetKind item = inputCount + iota
	itemOnlyNetwork
	itemOnlyLocalNetwork
)

func (it item) isInput() bool {
	return it >= 0 && it < inputCount
}

func (it item) isPath() bool {
	return it == itemSourcePath || it == itemTargetLocal
}

type Options struct {
	Home         string
	ProbeTimeout time.Duration
	Logger       zerolog.Logger
}

type Model struct {
	state        *state.State
	remote       services.DirChecker
	installation services.InstallationChecker
	configurer   services.EndpointConfigurer
	logger       zerolog.Logger
	keys         KeyMap
	inputs       []textinput.Model
	focus        int
	home         string
	probeTimeout time.Duration
	suggestions  []string
	showHelp     bool
	themeChanged bool
	status       string
	checking     bool
	finished     bool
	cancelled    bool
	width        int
	height       int
}

type ConfigProvider interface {
	ConfigSnapshot(base config.Config) config.Config
}

type ResultProvider interface {
	Result() (domain.FolderDefinition, bool)
}

func NewModel(appState *state.State, remote services.DirChecker, opts Options) Model {
	timeout := opts.ProbeTimeout
	if timeout <= 0 {
		timeout = state.DefaultProbeTimeout
	}
	model := Model{
		state:        appState,
		remote:       remote,
		installation: installationChecker(remote),
		configurer:   endpointConfigurer(remote),
		logger:       opts.Logger,
		keys:         DefaultKeyMap(),
		inputs:       newInputs(appState),
		home:         opts.Home,
		probeTimeout: timeout,
		width:        100,
		height:       30,
	}
	model.setFocus(0)
	return model
}

func newInputs(appState *state.State) []textinput.Model {
	inputs := make([]textinput.Model, inputCount)
	for i := range inputs {
		input := textinput.New()
		input.Prompt = ""
		input.CharLimit = 4096
		input.Width = 60
		inputs[i] = input
	}
	inputs[itemServiceURL].Placeholder = "https://cloud.example.com"
	inputs[itemServicePassword].EchoMode = textinput.EchoPassword
	inputs[itemSourcePath].Placeholder = "tab to browse from your home folder"
	inputs[itemTargetLocal].Placeholder = "tab to browse from your home folder"
	inputs[itemTargetURL].Placeholder = "sftp://host/path or smb://server/share"
	inputs[itemRemoteFolder].Placeholder = "empty for the root folder"

	inputs[itemServiceURL].SetValue(appState.Service.URL)
	inputs[itemServiceUser].SetValue(appState.Service.User)
	inputs[itemServicePassword].SetValue(appState.Service.Password)
	inputs[itemServiceAlias].SetValue(appState.Service.Alias)
	inputs[itemSourcePath].SetValue(appState.Source.LocalPath)
	inputs[itemSourceAlias].SetValue(appState.Source.Alias)
	inputs[itemTargetLocal].SetValue(appState.Target.LocalPath)
	inputs[itemTargetURL].SetValue(appState.Target.NetworkURL)
	inputs[itemRemoteFolder].SetValue(appState.Target.RemoteFolder())
	return inputs
}

// ConfigSnapshot layers what the user chose in the wizard over base, the
// config as stored on disk. Values that only came from flags stay out.
func (model Model) ConfigSnapshot(base config.Config) config.Config {
	base.SourcePath = model.state.Source.LocalPath
	if model.themeChanged {
		base.Theme = model.state.Prefs.Theme
	}
	if model.state.WithService {
		endpoint := model.state.Service.Endpoint()
		endpoint.Password = ""
		base.Service = endpoint
	}
	return base
}

// Result returns the folder definition when the wizard was finished, not cancelled.
func (model Model) Result() (domain.FolderDefinition, bool) {
	if !model.finished || model.cancelled {
		return domain.FolderDefinition{}, false
	}
	return model.state.Result(), true
}

func (model Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, model.enterPageCmd())
}

func (model Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return model.handleKey(typed)
	case tea.WindowSizeMsg:
		model.width = typed.Width
		model.height = typed.Height
		return model, nil
	case probeTickMsg:
		return model.fireProbe(typed.gen)
	case probeReplyMsg:
		return model.applyProbeReply(typed)
	case installationMsg:
		return model.applyInstallation(typed)
	default:
		it := model.focused()
		if !it.isInput() {
			return model, nil
		}
		var cmd tea.Cmd
		model.inputs[it], cmd = model.inputs[it].Update(msg)
		return model, cmd
	}
}

func (model Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, model.keys.Quit):
		model.cancelled = true
		model.logger.Info().Msg("wizard cancelled")
		return model, tea.Quit
	case key.Matches(msg, model.keys.Help):
		model.showHelp = !model.showHelp
		return model, nil
	case key.Matches(msg, model.keys.Theme):
		model.toggleTheme()
		return model, nil
	case model.showHelp:
		return model, nil
	case key.Matches(msg, model.keys.Next):
		return model.next()
	case key.Matches(msg, model.keys.Back):
		return model.back()
	case key.Matches(msg, model.keys.Up):
		cmd := model.moveFocus(-1)
		return model, cmd
	case key.Matches(msg, model.keys.Down):
		cmd := model.moveFocus(1)
		return model, cmd
	case key.Matches(msg, model.keys.Complete):
		var cmd tea.Cmd
		if it := model.focused(); it.isPath() {
			cmd = model.completeInput(it)
		} else {
			cmd = model.moveFocus(1)
		}
		return model, cmd
	}

	switch it := model.focused(); it {
	case itemTargetKind:
		return model.handleKindKey(msg)
	case itemOnlyNetwork, itemOnlyLocalNetwork:
		if key.Matches(msg, model.keys.Toggle) {
			model.toggle(it)
		}
		return model, nil
	default:
		return model.updateInput(it, msg)
	}
}

func (model Model) handleKindKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, model.keys.Left):
		model.cycleKind(-1)
	case key.Matches(msg, model.keys.Right), key.Matches(msg, model.keys.Toggle):
		model.cycleKind(1)
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
		index := int(msg.Runes[0] - '1')
		if index >= 0 && index < len(domain.TargetKinds) {
			model.selectKind(domain.TargetKinds[index])
		}
	}
	return model, nil
}

func (model Model) next() (tea.Model, tea.Cmd) {
	complete, warning := model.state.CheckPage()
	if !complete {
		model.status = "Page incomplete"
		if warning != "" {
			model.status = "Please fix the warnings above"
		}
		return model, nil
	}
	if model.state.Page() == state.PageService && model.configurer != nil {
		endpoint := model.state.Endpoint()
		model.configurer.Configure(endpoint)
		model.logger.Info().Str("url", endpoint.URL).Str("user", endpoint.User).Msg("remote endpoint configured")
	}
	if model.state.IsLast() {
		model.finished = true
		model.logger.Info().
			Str("alias", model.state.Source.Alias).
			Str("target", string(model.state.Target.Kind)).
			Msg("wizard finished")
		return model, tea.Quit
	}
	model.state.Next()
	model.setFocus(0)
	model.status = ""
	model.suggestions = nil
	cmd := model.enterPageCmd()
	return model, cmd
}

func (model Model) back() (tea.Model, tea.Cmd) {
	if !model.state.Back() {
		model.cancelled = true
		model.logger.Info().Msg("wizard cancelled")
		return model, tea.Quit
	}
	model.setFocus(0)
	model.status = ""
	model.suggestions = nil
	cmd := model.enterPageCmd()
	return model, cmd
}

// enterPageCmd runs the page initialization: the target page asks the remote
// service whether it is installed and reachable.
func (model *Model) enterPageCmd() tea.Cmd {
	focusCmd := model.setFocus(model.focus)
	if model.state.Page() != state.PageTarget || model.installation == nil || model.checking {
		return focusCmd
	}
	if !model.installation.IsConfigured() {
		model.state.Target.DisableRemote()
		model.logger.Info().Msg("no remote service configured")
		return focusCmd
	}
	model.checking = true
	installation := model.installation
	timeout := model.probeTimeout
	return tea.Batch(focusCmd, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		info, err := installation.CheckInstallation(ctx)
		return installationMsg{info: info, err: err}
	})
}

func (model Model) applyInstallation(msg installationMsg) (tea.Model, tea.Cmd) {
	model.checking = false
	if msg.err != nil {
		model.logger.Warn().Err(msg.err).Msg("remote service not found")
		model.state.Target.DisableRemote()
		model.clampFocus()
		return model, nil
	}
	model.logger.Info().Str("url", msg.info.URL).Str("version", msg.info.Version).Msg("remote service found")
	model.state.Target.RemoteEnabled = true
	model.state.Target.RemoteLabel = fmt.Sprintf("to your remote service at %s (version %s)", msg.info.URL, msg.info.Version)
	return model, nil
}

func (model Model) fireProbe(gen uint64) (tea.Model, tea.Cmd) {
	text, ok := model.state.Target.Probe.Fire(gen)
	if !ok {
		return model, nil
	}
	model.logger.Debug().Str("folder", text).Uint64("gen", gen).Msg("querying remote folder")
	return model, model.probeCmd(gen, text)
}

func (model Model) probeCmd(gen uint64, path string) tea.Cmd {
	remote := model.remote
	timeout := model.probeTimeout
	return func() tea.Msg {
		if remote == nil {
			return probeReplyMsg{gen: gen, path: path, err: services.ErrNotConfigured}
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		result, err := remote.CheckDirectory(ctx, services.DirCheckRequest{Path: path})
		return probeReplyMsg{gen: gen, path: path, result: result, err: err}
	}
}

func (model Model) applyProbeReply(msg probeReplyMsg) (tea.Model, tea.Cmd) {
	applied := model.state.Target.Probe.Resolve(msg.gen, msg.path, msg.result.Exists, msg.err)
	event := model.logger.Debug()
	if msg.err != nil {
		event = model.logger.Warn().Err(msg.err)
	}
	event.Str("folder", msg.path).
		Bool("exists", msg.result.Exists).
		Bool("applied", applied).
		Msg("remote folder reply")
	return model, nil
}

func debounceCmd(gen uint64) tea.Cmd {
	return tea.Tick(state.DebounceInterval, func(time.Time) tea.Msg {
		return probeTickMsg{gen: gen}
	})
}

func (model Model) updateInput(it item, msg tea.Msg) (tea.Model, tea.Cmd) {
	if !it.isInput() {
		return model, nil
	}
	before := model.inputs[it].Value()
	var cmd tea.Cmd
	model.inputs[it], cmd = model.inputs[it].Update(msg)
	after := model.inputs[it].Value()
	if after == before {
		return model, cmd
	}
	changed := model.fieldChanged(it, after)
	return model, tea.Batch(cmd, changed)
}

// fieldChanged copies an edited value into the page state. Only the remote
// folder has a side effect: it rearms the debounce timer.
func (model *Model) fieldChanged(it item, value string) tea.Cmd {
	switch it {
	case itemServiceURL:
		model.state.Service.URL = value
	case itemServiceUser:
		model.state.Service.User = value
	case itemServicePassword:
		model.state.Service.Password = value
	case itemServiceAlias:
		model.state.Service.Alias = value
	case itemSourcePath:
		model.state.Source.LocalPath = value
		model.suggestions = nil
	case itemSourceAlias:
		model.state.Source.Alias = value
	case itemTargetLocal:
		model.state.Target.LocalPath = value
		model.suggestions = nil
	case itemTargetURL:
		model.state.Target.NetworkURL = value
	case itemRemoteFolder:
		gen, arm := model.state.Target.Probe.Edit(value)
		if arm {
			return debounceCmd(gen)
		}
	}
	return nil
}

func (model *Model) completeInput(it item) tea.Cmd {
	value := model.inputs[it].Value()
	completed, suggestions := completePath(value, model.home)
	model.suggestions = suggestions
	if completed == value {
		return nil
	}
	model.inputs[it].SetValue(completed)
	model.inputs[it].CursorEnd()
	cmd := model.fieldChanged(it, completed)
	model.suggestions = suggestions
	return cmd
}

func (model *Model) cycleKind(delta int) {
	kinds := domain.TargetKinds
	current := -1
	for i, kind := range kinds {
		if kind == model.state.Target.Kind {
			current = i
		}
	}
	if current < 0 && delta < 0 {
		current = len(kinds)
	}
	for step := 1; step <= len(kinds); step++ {
		index := ((current+delta*step)%len(kinds) + len(kinds)) % len(kinds)
		if model.state.Target.SetKind(kinds[index]) {
			model.status = ""
			return
		}
	}
}

func (model *Model) selectKind(kind domain.TargetKind) {
	if !model.state.Target.SetKind(kind) {
		model.status = "The remote service is not available"
		return
	}
	model.status = ""
}

func (model *Model) toggle(it item) {
	switch it {
	case itemOnlyNetwork:
		model.state.Network.OnlyNetwork = !model.state.Network.OnlyNetwork
	case itemOnlyLocalNetwork:
		model.state.Network.OnlyLocalNetwork = !model.state.Network.OnlyLocalNetwork
	}
}

func (model *Model) toggleTheme() {
	if strings.ToLower(model.state.Prefs.Theme) == "light" {
		model.state.Prefs.Theme = "dark"
	} else {
		model.state.Prefs.Theme = "light"
	}
	model.themeChanged = true
}

func (model Model) pageItems() []item {
	switch model.state.Page() {
	case state.PageService:
		return []item{itemServiceURL, itemServiceUser, itemServicePassword, itemServiceAlias}
	case state.PageSource:
		return []item{itemSourcePath, itemSourceAlias}
	case state.PageTarget:
		items := []item{itemTargetKind}
		switch model.state.Target.Kind {
		case domain.TargetLocal:
			items = append(items, itemTargetLocal)
		case domain.TargetNetworkShare:
			items = append(items, itemTargetURL)
		case domain.TargetRemoteFolder:
			items = append(items, itemRemoteFolder)
		}
		return items
	case state.PageNetwork:
		return []item{itemOnlyNetwork, itemOnlyLocalNetwork}
	default:
		return nil
	}
}

func (model Model) focused() item {
	items := model.pageItems()
	if len(items) == 0 {
		return -1
	}
	index := model.focus
	if index >= len(items) {
		index = len(items) - 1
	}
	if index < 0 {
		index = 0
	}
	return items[index]
}

func (model *Model) moveFocus(delta int) tea.Cmd {
	items := model.pageItems()
	if len(items) == 0 {
		return nil
	}
	index := ((model.focus+delta)%len(items) + len(items)) % len(items)
	model.suggestions = nil
	return model.setFocus(index)
}

func (model *Model) clampFocus() {
	model.setFocus(model.focus)
}

func (model *Model) setFocus(index int) tea.Cmd {
	items := model.pageItems()
	if index >= len(items) {
		index = len(items) - 1
	}
	if index < 0 {
		index = 0
	}
	model.focus = index
	for i := range model.inputs {
		model.inputs[i].Blur()
	}
	it := model.focused()
	if !it.isInput() {
		return nil
	}
	return model.inputs[it].Focus()
}

func installationChecker(remote services.DirChecker) services.InstallationChecker {
	checker, _ := remote.(services.InstallationChecker)
	return checker
}

func endpointConfigurer(remote services.DirChecker) services.EndpointConfigurer {
	configurer, _ := remote.(services.EndpointConfigurer)
	return configurer
}
