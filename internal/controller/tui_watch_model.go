package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/routelint/internal/model"
)

var (
	accentColor = lipgloss.Color("6")

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 0, 1, 2)

	countStyle   = lipgloss.NewStyle().Foreground(accentColor)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Padding(0, 2)
	faintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// brokenItemDelegate renders one broken group per line.
type brokenItemDelegate struct{}

func (d brokenItemDelegate) Height() int  { return 1 }
func (d brokenItemDelegate) Spacing() int { return 0 }
func (d brokenItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d brokenItemDelegate) Render(w io.Writer, l list.Model, index int, item list.Item) {
	broken, ok := item.(brokenItem)
	if !ok {
		return
	}

	// Reserve room for the reference count and the suggestion.
	targetWidth := max(l.Width()-36, 12)
	targetStyle, refStyle, suggestionStyle := d.styles(index == l.Index(), targetWidth)

	suggestion := "none"
	if broken.link.Suggestion != nil {
		suggestion = broken.link.Suggestion.RawPattern
	}

	line := fmt.Sprintf("%s  %s  %s",
		targetStyle.Render(truncateText(broken.link.Group.NormalizedTarget, targetWidth)),
		refStyle.Render(fmt.Sprintf("%4d refs", len(broken.link.Group.Occurrences))),
		suggestionStyle.Render(truncateText("→ "+suggestion, 20)),
	)
	_, _ = fmt.Fprint(w, line)
}

func (d brokenItemDelegate) styles(selected bool, targetWidth int) (lipgloss.Style, lipgloss.Style, lipgloss.Style) {
	if selected {
		base := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(accentColor).
			Bold(true)

		return base.Width(targetWidth), base.Width(9), base
	}

	return lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true).Width(targetWidth),
		lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Width(9),
		lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
}

// watchModel is the Bubble Tea model behind the interactive watch screen.
type watchModel struct {
	width          int
	height         int
	spinner        spinner.Model
	brokenList     list.Model
	maxOccurrences int

	root         m.Path
	checking     bool
	watching     bool
	hasReport    bool
	report       m.BrokenLinkReport
	lastErr      error
	runs         int
	routes       int
	showDetail   bool
	lastSelected int
}

func newWatchModel(cfg Config) watchModel {
	spin := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(accentColor)),
	)

	brokenList := list.New([]list.Item{}, brokenItemDelegate{}, 80, 20)
	brokenList.SetShowPagination(false)
	brokenList.SetShowFilter(true)
	brokenList.SetShowHelp(false)
	brokenList.SetShowTitle(false)
	brokenList.SetShowStatusBar(false)
	brokenList.FilterInput.Placeholder = "Filter targets…"

	return watchModel{
		width:          80,
		height:         24,
		spinner:        spin,
		brokenList:     brokenList,
		maxOccurrences: cfg.maxOccurrences,
		routes:         -1,
	}
}

func (wm watchModel) Init() tea.Cmd {
	return tea.SetWindowTitle("routelint watch")
}

func (wm watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		wm = wm.handleWindowSize(msg)

	case tea.KeyMsg:
		wm, cmd = wm.handleKeyMsg(msg)

	case spinner.TickMsg:
		if wm.checking {
			wm.spinner, cmd = wm.spinner.Update(msg)
		}

	case checkingMsg:
		wm.root = msg.root
		wm.checking = true
		wm.watching = false
		cmd = wm.spinner.Tick

	case reportMsg:
		wm, cmd = wm.handleReport(msg)

	case errorMsg:
		wm.checking = false
		wm.lastErr = msg.err

	case watchingMsg:
		wm.root = msg.root
		wm.checking = false
		wm.watching = true

	case routesMsg:
		wm.routes = len(msg.routes)
	}

	return wm, cmd
}

func (wm watchModel) handleWindowSize(msg tea.WindowSizeMsg) watchModel {
	wm.width = msg.Width
	wm.height = msg.Height

	return wm
}

func (wm watchModel) handleReport(msg reportMsg) (watchModel, tea.Cmd) {
	wm.checking = false
	wm.lastErr = nil
	wm.hasReport = true
	wm.report = msg.report
	wm.runs++

	items := make([]list.Item, 0, len(msg.report.Broken))
	for _, link := range msg.report.Broken {
		items = append(items, brokenItem{link: link})
	}

	cmd := wm.brokenList.SetItems(items)
	if wm.brokenList.Index() >= len(items) {
		wm.brokenList.ResetSelected()
	}

	if len(items) == 0 {
		wm.showDetail = false
	}

	return wm, cmd
}

func (wm watchModel) handleKeyMsg(msg tea.KeyMsg) (watchModel, tea.Cmd) {
	var cmd tea.Cmd

	// Keys belong to the filter input while it is being edited.
	if wm.brokenList.SettingFilter() {
		if msg.String() == "ctrl+c" {
			return wm, tea.Quit
		}

		wm.brokenList, cmd = wm.brokenList.Update(msg)

		return wm, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return wm, tea.Quit
	case "enter", " ":
		wm.showDetail = !wm.showDetail && wm.brokenList.SelectedItem() != nil

		return wm, nil
	}

	wm.brokenList, cmd = wm.brokenList.Update(msg)

	if wm.brokenList.Index() != wm.lastSelected {
		wm.lastSelected = wm.brokenList.Index()
		wm.showDetail = false
	}

	return wm, cmd
}

func (wm watchModel) View() string {
	title := titleStyle.Render("routelint watch • " + string(wm.root))

	footer := faintStyle.
		Align(lipgloss.Center).
		Width(wm.width).
		Render("↑/k up • ↓/j down • / filter • enter/space details • q quit")

	parts := []string{title, wm.statusLine()}
	if body := wm.renderBody(); body != "" {
		parts = append(parts, body)
	}

	parts = append(parts, footer)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (wm watchModel) statusLine() string {
	switch {
	case wm.checking:
		return statusStyle.Render(fmt.Sprintf("%s checking %s…", wm.spinner.View(), wm.root))
	case wm.lastErr != nil:
		return statusStyle.Render(warningStyle.Render("error: " + wm.lastErr.Error()))
	case !wm.hasReport && wm.routes >= 0:
		return statusStyle.Render(fmt.Sprintf("%d routes declared, waiting for the first check…", wm.routes))
	case !wm.hasReport:
		return statusStyle.Render("waiting for the first check…")
	}

	summary := fmt.Sprintf("Broken: %s  •  References: %s  •  Routes: %s  •  Runs: %s",
		countStyle.Render(fmt.Sprintf("%d", len(wm.report.Broken))),
		countStyle.Render(fmt.Sprintf("%d", wm.report.TotalReferences)),
		countStyle.Render(fmt.Sprintf("%d", wm.report.DeclaredRoutes)),
		countStyle.Render(fmt.Sprintf("%d", wm.runs)),
	)

	if wm.report.NoRoutesDeclared() {
		summary += "\n" + warningStyle.Render(fmt.Sprintf("no routes declared in %s", wm.report.Router))
	}

	if wm.watching {
		summary += "\n" + faintStyle.Render("watching for changes")
	}

	return statusStyle.Render(summary)
}

func (wm watchModel) renderBody() string {
	if !wm.hasReport {
		return ""
	}

	if !wm.report.HasBroken() {
		return successStyle.Render("No broken route references found.")
	}

	listWidth := max(wm.width-4, 20)
	detail := wm.renderDetail(listWidth)

	listHeight := max(wm.height-10-lipgloss.Height(detail), 3)
	if detail == "" {
		listHeight = max(wm.height-10, 3)
	}

	wm.brokenList.SetSize(listWidth, listHeight)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(0, 1).
		Render(wm.brokenList.View())

	if detail == "" {
		return box
	}

	return lipgloss.JoinVertical(lipgloss.Left, box, detail)
}

// renderDetail lists the occurrences and the suggestion of the selected
// group, or returns "" when the detail box is closed.
func (wm watchModel) renderDetail(width int) string {
	if !wm.showDetail {
		return ""
	}

	item, ok := wm.brokenList.SelectedItem().(brokenItem)
	if !ok {
		return ""
	}

	contentWidth := max(width-4, 10)
	group := item.link.Group
	occurrences := group.Occurrences

	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(truncateText(group.NormalizedTarget, contentWidth)),
		faintStyle.Render(truncateText("raw: "+strings.Join(group.RawTargets(), ", "), contentWidth)),
	}

	shown := min(len(occurrences), wm.maxOccurrences)
	for _, ref := range occurrences[:shown] {
		lines = append(lines, truncateText(fmt.Sprintf("%s:%d [%s]  %s", ref.File, ref.Line, ref.Kind, ref.Snippet), contentWidth))
	}

	if rest := len(occurrences) - shown; rest > 0 {
		lines = append(lines, faintStyle.Render(fmt.Sprintf("... and %d more", rest)))
	}

	suggestion := "suggestion: none"
	if item.link.Suggestion != nil {
		suggestion = "suggestion: " + item.link.Suggestion.RawPattern
	}

	lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(suggestion))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(0, 1).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	ellipsis := "…"
	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}
