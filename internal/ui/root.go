package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dori/ckanban/internal/app"
	"github.com/dori/ckanban/internal/ui/theme"
	"github.com/dori/ckanban/internal/ui/views"
)

// Debug logging (enable by setting CKANBAN_DEBUG=1)
var rootDebugLog *os.File

func init() {
	if os.Getenv("CKANBAN_DEBUG") == "1" {
		rootDebugLog, _ = os.OpenFile("/tmp/ckanban-debug.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	}
}

func rootDebugf(format string, args ...interface{}) {
	if rootDebugLog != nil {
		fmt.Fprintf(rootDebugLog, format+"\n", args...)
		rootDebugLog.Sync()
	}
}

// RootModel is the main application model that manages views
type RootModel struct {
	app    *app.App
	keys   KeyMap
	help   help.Model
	width  int
	height int

	currentView   View
	boardView     views.BoardView
	reviewView    views.ReviewView
	bookmarksView views.BookmarksView
	helpVisible   bool

	statusMsg string
	errorMsg  string
}

// NewRootModel creates a new root model
func NewRootModel(application *app.App, initial View) RootModel {
	h := help.New()
	h.ShowAll = false

	return RootModel{
		app:           application,
		keys:          DefaultKeyMap(),
		help:          h,
		currentView:   initial,
		boardView:     views.NewBoardView(application.Store),
		reviewView:    views.NewReviewView(application.Store),
		bookmarksView: views.NewBookmarksView(application.Store),
	}
}

// Init initializes the model
func (m RootModel) Init() tea.Cmd {
	return m.boardView.Init()
}

// Update handles messages
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	rootDebugf("RootModel.Update received msg type: %T", msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		// Reserve space for header and footer
		contentHeight := m.height - 4
		m.boardView = m.boardView.SetSize(m.width, contentHeight)
		m.reviewView = m.reviewView.SetSize(m.width, contentHeight)
		m.bookmarksView = m.bookmarksView.SetSize(m.width, contentHeight)

	case BoardChangedMsg:
		// A committed snapshot from the store's subscription bus; every
		// view gets it so switching views never shows stale state.
		m.boardView = m.boardView.SetBoard(msg.Board)
		m.reviewView = m.reviewView.SetBoard(msg.Board)
		m.bookmarksView = m.bookmarksView.SetBoard(msg.Board)
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""
		m.errorMsg = ""

		isInputMode := false
		switch m.currentView {
		case ViewBoard:
			isInputMode = m.boardView.IsInputMode()
		case ViewReview:
			isInputMode = m.reviewView.IsInputMode()
		case ViewBookmarks:
			isInputMode = m.bookmarksView.IsInputMode()
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			// ctrl+c always quits, 'q' only outside input mode
			if msg.String() == "ctrl+c" || !isInputMode {
				return m, tea.Quit
			}

		case key.Matches(msg, m.keys.ThemeCycle):
			m.statusMsg = fmt.Sprintf("Theme: %s", theme.Cycle())
			return m, nil
		}

		if isInputMode {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Help):
			m.helpVisible = !m.helpVisible
			m.help.ShowAll = m.helpVisible
			return m, nil

		case key.Matches(msg, m.keys.BoardView):
			m.currentView = ViewBoard
			return m, m.boardView.Init()
		case key.Matches(msg, m.keys.ReviewView):
			m.currentView = ViewReview
			return m, m.reviewView.Init()
		case key.Matches(msg, m.keys.BookmarksView):
			m.currentView = ViewBookmarks
			return m, m.bookmarksView.Init()
		}

	case ErrorMsg:
		m.errorMsg = msg.Err.Error()
		return m, nil

	case StatusMsg:
		m.statusMsg = msg.Message
		return m, nil

	case ThemeChangedMsg:
		m.statusMsg = fmt.Sprintf("Theme: %s", msg.ThemeName)
		return m, nil
	}

	switch m.currentView {
	case ViewBoard:
		var cmd tea.Cmd
		m.boardView, cmd = m.boardView.Update(msg)
		cmds = append(cmds, cmd)
	case ViewReview:
		var cmd tea.Cmd
		m.reviewView, cmd = m.reviewView.Update(msg)
		cmds = append(cmds, cmd)
	case ViewBookmarks:
		var cmd tea.Cmd
		m.bookmarksView, cmd = m.bookmarksView.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the UI
func (m RootModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	contentHeight := m.height - 4
	if m.errorMsg != "" || m.statusMsg != "" {
		contentHeight--
	}

	var content string
	if m.helpVisible {
		content = m.renderHelp()
	} else {
		switch m.currentView {
		case ViewBoard:
			content = m.boardView.View()
		case ViewReview:
			content = m.reviewView.View()
		case ViewBookmarks:
			content = m.bookmarksView.View()
		}
	}

	contentLines := strings.Count(content, "\n") + 1
	if contentLines < contentHeight {
		content += strings.Repeat("\n", contentHeight-contentLines)
	}
	sections = append(sections, content)
	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

// renderHeader renders the header bar
func (m RootModel) renderHeader() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	title := styles.Header.Render("ckanban")

	indicatorStyle := lipgloss.NewStyle().
		Foreground(t.Subtle).
		Padding(0, 1)
	viewIndicator := indicatorStyle.Render(fmt.Sprintf("[%s]", m.currentView.String()))
	themeIndicator := indicatorStyle.Render(fmt.Sprintf("theme: %s", t.Name))

	leftSide := lipgloss.JoinHorizontal(lipgloss.Center, title, viewIndicator)
	gap := m.width - lipgloss.Width(leftSide) - lipgloss.Width(themeIndicator)
	if gap < 0 {
		gap = 0
	}

	return leftSide + strings.Repeat(" ", gap) + themeIndicator
}

// renderFooter renders the status line plus context-aware key hints
func (m RootModel) renderFooter() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	hint := func(k, desc string) string {
		return styles.HelpKey.Render(k) + styles.HelpDesc.Render(" "+desc)
	}
	sep := styles.Label.Render(" │ ")

	var statusLine string
	if m.errorMsg != "" {
		statusLine = lipgloss.NewStyle().Foreground(t.Error).Render(m.errorMsg)
	} else if m.statusMsg != "" {
		statusLine = lipgloss.NewStyle().Foreground(t.Secondary).Render(m.statusMsg)
	}

	var line1, line2 string
	switch m.currentView {
	case ViewBoard:
		if m.boardView.IsInputMode() {
			line1 = hint("enter", "confirm") + sep + hint("esc", "cancel")
		} else {
			line1 = hint("a", "card") + sep +
				hint("A", "project") + sep +
				hint("o", "link") + sep +
				hint("e", "edit") + sep +
				hint("t", "time") + sep +
				hint("d/D", "delete") + sep +
				hint("h/j/k/l", "navigate")
			line2 = hint("H/L", "move card") + sep +
				hint("J/K", "reorder") + sep +
				hint("tab", "project") + sep +
				hint("[/]", "reorder project") + sep +
				hint("c", "collapse") + sep +
				hint("1-3", "views") + sep +
				hint("?", "help")
		}

	case ViewReview:
		line1 = hint("←/→", "change day") + sep + hint("t", "today")
		line2 = hint("1-3", "views") + sep + hint("ctrl+t", "theme") + sep + hint("?", "help")

	case ViewBookmarks:
		if m.bookmarksView.IsInputMode() {
			line1 = hint("enter", "confirm") + sep + hint("esc", "cancel")
		} else {
			line1 = hint("a", "add") + sep + hint("d", "delete") + sep + hint("j/k", "navigate")
			line2 = hint("1-3", "views") + sep + hint("ctrl+t", "theme") + sep + hint("?", "help")
		}
	}

	var lines []string
	if statusLine != "" {
		lines = append(lines, statusLine)
	}
	if line1 != "" {
		lines = append(lines, line1)
	}
	if line2 != "" {
		lines = append(lines, line2)
	}
	return strings.Join(lines, "\n")
}

// renderHelp renders the help overlay
func (m RootModel) renderHelp() string {
	t := theme.Current.Theme

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Secondary).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Foreground).
		Bold(true).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(t.Subtle)

	section := func(b *strings.Builder, title string, keys [][]string) {
		b.WriteString(sectionStyle.Render(title))
		b.WriteString("\n")
		for _, kv := range keys {
			b.WriteString(keyStyle.Render(kv[0]))
			b.WriteString(descStyle.Render(kv[1]))
			b.WriteString("\n")
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("ckanban Help"))
	b.WriteString("\n\n")

	section(&b, "Navigation", [][]string{
		{"↑/k ↓/j", "Move between cards"},
		{"←/h →/l", "Move between columns"},
		{"tab", "Next project"},
		{"g / G", "Top / bottom of column"},
	})

	section(&b, "Board", [][]string{
		{"a", "Add card to backlog"},
		{"A", "Add project"},
		{"o", "Add link card"},
		{"e", "Edit card title"},
		{"t", "Log time on card"},
		{"H / L", "Move card across columns"},
		{"J / K", "Reorder card in column"},
		{"d / D", "Delete card / project"},
	})

	section(&b, "Projects", [][]string{
		{"r", "Rename project"},
		{"N", "Edit project notes"},
		{"x", "Cycle project color"},
		{"c / C", "Collapse project / all"},
		{"[ / ]", "Reorder project"},
	})

	section(&b, "Views", [][]string{
		{"1", "Board"},
		{"2", "Daily review"},
		{"3", "Bookmarks"},
		{"?", "Toggle this help"},
	})

	section(&b, "System", [][]string{
		{"ctrl+t", "Cycle theme"},
		{"q / ctrl+c", "Quit"},
	})

	b.WriteString("\n")
	b.WriteString(descStyle.Render("Press ? to close"))

	return b.String()
}
