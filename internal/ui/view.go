package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"syncwizard/internal/domain"
	"syncwizard/internal/state"
)

const maxSuggestions = 6

type uiStyles struct {
	headerStyle   lipgloss.Style
	mutedStyle    lipgloss.Style
	statusStyle   lipgloss.Style
	warnStyle     lipgloss.Style
	cursorStyle   lipgloss.Style
	selectedStyle lipgloss.Style
	panelBorder   lipgloss.Style
}

func stylesFor(model Model) uiStyles {
	if strings.ToLower(model.state.Prefs.Theme) == "light" {
		return uiStyles{
			headerStyle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("235")),
			mutedStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
			statusStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true),
			warnStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("124")).Bold(true),
			cursorStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("90")).Bold(true),
			selectedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
			panelBorder:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		}
	}
	return uiStyles{
		headerStyle:   lipgloss.NewStyle().Bold(true),
		mutedStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		statusStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("69")).Bold(true),
		warnStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true),
		cursorStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		selectedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		panelBorder:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

func (model Model) View() string {
	styles := stylesFor(model)
	if model.showHelp {
		return renderHelpView(model, styles)
	}
	body := renderPanel(model, styles)
	footer := renderFooter(model, styles)
	return strings.Join([]string{body, footer}, "\n")
}

func renderPanel(model Model, styles uiStyles) string {
	width := maxInt(model.width-2, 20)
	pages := model.state.Pages()
	page := model.state.Page()
	step := fmt.Sprintf("Step %d/%d: %s", model.state.Index+1, len(pages), page.Title())
	header := padLine(styles.headerStyle.Render("Add folder"), styles.statusStyle.Render(step), width)

	var lines []string
	switch page {
	case state.PageService:
		lines = renderServicePage(model, styles)
	case state.PageSource:
		lines = renderSourcePage(model, styles)
	case state.PageTarget:
		lines = renderTargetPage(model, styles)
	case state.PageNetwork:
		lines = renderNetworkPage(model, styles)
	}

	_, warning := model.state.CheckPage()
	if warning != "" {
		lines = append(lines, "")
		for _, line := range strings.Split(warning, "\n") {
			lines = append(lines, styles.warnStyle.Render(line))
		}
	}

	content := strings.Join(append([]string{header, ""}, lines...), "\n")
	return styles.panelBorder.Width(width).Render(content)
}

func renderServicePage(model Model, styles uiStyles) []string {
	return []string{
		styles.mutedStyle.Render("Connect to your remote service."),
		"",
		renderField(model, styles, itemServiceURL, "URL"),
		renderField(model, styles, itemServiceUser, "User"),
		renderField(model, styles, itemServicePassword, "Password"),
		renderField(model, styles, itemServiceAlias, "Alias"),
	}
}

func renderSourcePage(model Model, styles uiStyles) []string {
	lines := []string{
		styles.mutedStyle.Render("Pick the local folder to synchronize and a name for it."),
		"",
		renderField(model, styles, itemSourcePath, "Local folder"),
	}
	if model.focused() == itemSourcePath {
		lines = append(lines, renderSuggestions(model, styles)...)
	}
	return append(lines, renderField(model, styles, itemSourceAlias, "Alias"))
}

func renderTargetPage(model Model, styles uiStyles) []string {
	lines := []string{
		styles.mutedStyle.Render("Choose where the folder is synchronized to."),
		"",
		renderKindSelector(model, styles),
	}
	target := model.state.Target
	switch target.Kind {
	case domain.TargetLocal:
		lines = append(lines, "", renderField(model, styles, itemTargetLocal, "Target folder"))
		if model.focused() == itemTargetLocal {
			lines = append(lines, renderSuggestions(model, styles)...)
		}
	case domain.TargetNetworkShare:
		lines = append(lines, "", renderField(model, styles, itemTargetURL, "Share URL"))
	case domain.TargetRemoteFolder:
		lines = append(lines, "", renderField(model, styles, itemRemoteFolder, "Remote folder"))
		lines = append(lines, "  "+probeLabel(target.Probe, styles))
	}
	if target.RemoteLabel != "" {
		lines = append(lines, "", styles.mutedStyle.Render(target.RemoteLabel))
	}
	if model.checking {
		lines = append(lines, styles.mutedStyle.Render("Looking for your remote service..."))
	}
	return lines
}

func renderKindSelector(model Model, styles uiStyles) string {
	options := make([]string, 0, len(domain.TargetKinds))
	for i, kind := range domain.TargetKinds {
		mark := "( )"
		if kind == model.state.Target.Kind {
			mark = "(•)"
		}
		label := fmt.Sprintf("%d %s %s", i+1, mark, kind.Label())
		switch {
		case kind == domain.TargetRemoteFolder && !model.state.Target.RemoteEnabled:
			label = styles.mutedStyle.Render(label + " (unavailable)")
		case kind == model.state.Target.Kind:
			label = styles.selectedStyle.Render(label)
		}
		options = append(options, label)
	}
	return cursorMark(model, styles, itemTargetKind) + strings.Join(options, "   ")
}

func renderNetworkPage(model Model, styles uiStyles) []string {
	network := model.state.Network
	return []string{
		styles.mutedStyle.Render("Restrict when the share is synchronized."),
		"",
		cursorMark(model, styles, itemOnlyNetwork) + checkbox(network.OnlyNetwork) + " Only sync while online",
		cursorMark(model, styles, itemOnlyLocalNetwork) + checkbox(network.OnlyLocalNetwork) + " Only sync inside this local network",
	}
}

func renderField(model Model, styles uiStyles, it item, label string) string {
	return fmt.Sprintf("%s%-14s %s", cursorMark(model, styles, it), label, model.inputs[it].View())
}

func renderSuggestions(model Model, styles uiStyles) []string {
	if len(model.suggestions) < 2 {
		return nil
	}
	lines := []string{}
	for i, suggestion := range model.suggestions {
		if i == maxSuggestions {
			lines = append(lines, styles.mutedStyle.Render(fmt.Sprintf("                 ... %d more", len(model.suggestions)-maxSuggestions)))
			break
		}
		lines = append(lines, styles.mutedStyle.Render("                 "+suggestion))
	}
	return lines
}

func cursorMark(model Model, styles uiStyles, it item) string {
	if model.focused() == it {
		return styles.cursorStyle.Render("› ")
	}
	return "  "
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

func probeLabel(probe state.Probe, styles uiStyles) string {
	switch probe.Phase {
	case state.ProbeIdle:
		return styles.mutedStyle.Render("root folder")
	case state.ProbeArmed, state.ProbeQuerying:
		return styles.mutedStyle.Render("checking...")
	default:
		if probe.Exists {
			return styles.selectedStyle.Render("folder exists")
		}
		return ""
	}
}

func renderFooter(model Model, styles uiStyles) string {
	statusLine := trimStatus(model.status, model.width)
	statusStyle := styles.mutedStyle
	if model.status != "" {
		statusStyle = styles.warnStyle
	}
	statusLine = statusStyle.Render(statusLine)

	next := "enter next"
	if model.state.IsLast() {
		next = "enter finish"
	}
	if !model.state.PageComplete() {
		next = styles.mutedStyle.Render(next + " (incomplete)")
	}
	back := "esc back"
	if model.state.IsFirst() {
		back = "esc cancel"
	}
	keys := "↑/↓ field  tab complete  f1 help  ctrl+c quit"
	switch model.focused() {
	case itemTargetKind:
		keys = "←/→ or 1-3 choose  " + keys
	case itemOnlyNetwork, itemOnlyLocalNetwork:
		keys = "space toggle  " + keys
	}
	footerLine := padLine(next+"  "+back, keys, model.width)
	return strings.Join([]string{statusLine, footerLine}, "\n")
}

func renderHelpView(model Model, styles uiStyles) string {
	lines := []string{styles.headerStyle.Render("Folder wizard help"), ""}
	lines = append(lines, "Each page must be complete before you can go on.")
	lines = append(lines, "The remote folder is checked half a second after you stop typing.")
	lines = append(lines, "", styles.headerStyle.Render("Keys"))
	for _, binding := range model.keys.helpBindings() {
		keysLabel := strings.Join(binding.Keys(), ", ")
		lines = append(lines, fmt.Sprintf("%-18s %s", keysLabel, binding.Help().Desc))
	}
	lines = append(lines, "", "Press f1 to close help")
	content := strings.Join(lines, "\n")
	width := model.width
	if width <= 0 {
		width = 80
	}
	return styles.panelBorder.Width(maxInt(width-2, 10)).Render(content)
}

func padLine(left, right string, width int) string {
	if width <= 0 {
		return left
	}
	space := width - lipgloss.Width(left) - lipgloss.Width(right)
	if space < 1 {
		return left + " " + right
	}
	return left + strings.Repeat(" ", space) + right
}

func trimStatus(message string, width int) string {
	if width <= 0 {
		return message
	}
	max := width - 4
	if max <= 0 || len(message) <= max {
		return message
	}
	return message[:max] + "..."
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
