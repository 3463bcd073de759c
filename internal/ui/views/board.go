package views

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dori/ckanban/internal/model"
	"github.com/dori/ckanban/internal/store"
	"github.com/dori/ckanban/internal/ui/theme"
)

// BoardMode represents the current input mode of the board view
type BoardMode int

const (
	BoardModeNormal BoardMode = iota
	BoardModeAddProject
	BoardModeRenameProject
	BoardModeAddCard
	BoardModeAddLinkName
	BoardModeAddLinkURL
	BoardModeEditCard
	BoardModeNotes
	BoardModeTimeDate
	BoardModeTimeHours
	BoardModeConfirmDeleteCard
	BoardModeConfirmDeleteProject
)

// BoardView renders the project board and drives every board mutation.
// It never touches the document directly: all changes go through the
// store and come back as new snapshots.
type BoardView struct {
	store  *store.Store
	board  *model.Board
	width  int
	height int

	// Cursor: project row, column, card row
	projIdx int
	colIdx  int
	rowIdx  int

	mode      BoardMode
	textInput textinput.Model

	// Carries the link name or the entry date between two-step inputs
	pending string

	statusMsg string
}

// NewBoardView creates the board view around the store
func NewBoardView(st *store.Store) BoardView {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 256

	return BoardView{
		store:     st,
		board:     st.Get(),
		textInput: ti,
	}
}

// Init initializes the board view
func (v BoardView) Init() tea.Cmd {
	return nil
}

// SetSize sets the view dimensions
func (v BoardView) SetSize(width, height int) BoardView {
	v.width = width
	v.height = height
	return v
}

// SetBoard installs a freshly committed snapshot
func (v BoardView) SetBoard(b *model.Board) BoardView {
	v.board = b
	v.clampCursor()
	return v
}

// IsInputMode reports whether the view is capturing text input
func (v BoardView) IsInputMode() bool {
	return v.mode != BoardModeNormal
}

func (v *BoardView) clampCursor() {
	projects := v.board.SortedProjects()
	if v.projIdx >= len(projects) {
		v.projIdx = len(projects) - 1
	}
	if v.projIdx < 0 {
		v.projIdx = 0
	}
	if v.colIdx < 0 {
		v.colIdx = 0
	}
	if v.colIdx > 4 {
		v.colIdx = 4
	}
	col := v.currentColumn()
	if v.rowIdx >= len(col) {
		v.rowIdx = len(col) - 1
	}
	if v.rowIdx < 0 {
		v.rowIdx = 0
	}
}

func (v *BoardView) currentProject() *model.Project {
	projects := v.board.SortedProjects()
	if v.projIdx < 0 || v.projIdx >= len(projects) {
		return nil
	}
	return projects[v.projIdx]
}

func (v *BoardView) currentStatus() model.Status {
	return model.Statuses()[v.colIdx]
}

func (v *BoardView) currentColumn() []string {
	proj := v.currentProject()
	if proj == nil {
		return nil
	}
	return proj.Columns.Get(v.currentStatus())
}

func (v *BoardView) currentCard() *model.Card {
	col := v.currentColumn()
	if v.rowIdx < 0 || v.rowIdx >= len(col) {
		return nil
	}
	return v.board.Cards[col[v.rowIdx]]
}

// refresh re-reads the snapshot right after a mutation so the cursor
// math works against the committed state
func (v *BoardView) refresh() {
	v.board = v.store.Get()
	v.clampCursor()
}

// Update handles messages
func (v BoardView) Update(msg tea.Msg) (BoardView, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	if v.mode != BoardModeNormal {
		return v.updateInput(keyMsg)
	}

	v.statusMsg = ""
	switch keyMsg.String() {
	case "j", "down":
		if v.rowIdx < len(v.currentColumn())-1 {
			v.rowIdx++
		}
	case "k", "up":
		if v.rowIdx > 0 {
			v.rowIdx--
		}
	case "h", "left":
		if v.colIdx > 0 {
			v.colIdx--
			v.clampCursor()
		}
	case "l", "right":
		if v.colIdx < 4 {
			v.colIdx++
			v.clampCursor()
		}
	case "g":
		v.rowIdx = 0
	case "G":
		v.rowIdx = len(v.currentColumn()) - 1
		if v.rowIdx < 0 {
			v.rowIdx = 0
		}
	case "tab":
		if v.projIdx < len(v.board.Projects)-1 {
			v.projIdx++
			v.rowIdx = 0
			v.clampCursor()
		}
	case "shift+tab":
		if v.projIdx > 0 {
			v.projIdx--
			v.rowIdx = 0
			v.clampCursor()
		}

	case "A":
		return v.startInput(BoardModeAddProject, "New project name", "")
	case "a":
		if v.currentProject() != nil {
			return v.startInput(BoardModeAddCard, "New card title", "")
		}
	case "o":
		if v.currentProject() != nil {
			return v.startInput(BoardModeAddLinkName, "Link display name", "")
		}
	case "e":
		if card := v.currentCard(); card != nil {
			return v.startInput(BoardModeEditCard, "Edit title", card.Title)
		}
	case "r":
		if proj := v.currentProject(); proj != nil {
			return v.startInput(BoardModeRenameProject, "Rename project", proj.Name)
		}
	case "N":
		if proj := v.currentProject(); proj != nil {
			return v.startInput(BoardModeNotes, "Project notes", proj.Notes.Text)
		}
	case "t":
		if card := v.currentCard(); card != nil && !card.IsLink() {
			return v.startInput(BoardModeTimeDate, "Date (YYYY-MM-DD)", model.DateOf(time.Now()))
		}
	case "d":
		if v.currentCard() != nil {
			v.mode = BoardModeConfirmDeleteCard
		}
	case "D":
		if v.currentProject() != nil {
			v.mode = BoardModeConfirmDeleteProject
		}

	case "c":
		if proj := v.currentProject(); proj != nil {
			v.store.ToggleProjectCollapse(proj.ID)
			v.refresh()
		}
	case "C":
		allCollapsed := len(v.board.Projects) > 0
		for _, p := range v.board.Projects {
			if !p.Collapsed {
				allCollapsed = false
				break
			}
		}
		v.store.SetAllProjectsCollapsed(!allCollapsed)
		v.refresh()
	case "x":
		if proj := v.currentProject(); proj != nil {
			v.store.SetProjectColor(proj.ID, theme.Current.Theme.NextProjectColor(proj.Color))
			v.refresh()
		}

	case "J":
		v.moveCardWithin(1)
	case "K":
		v.moveCardWithin(-1)
	case "L":
		v.moveCardAcross(1)
	case "H":
		v.moveCardAcross(-1)
	case "]":
		v.reorderProject(false)
	case "[":
		v.reorderProject(true)
	}

	return v, nil
}

func (v BoardView) startInput(mode BoardMode, prompt, value string) (BoardView, tea.Cmd) {
	v.mode = mode
	v.textInput.Placeholder = prompt
	v.textInput.SetValue(value)
	v.textInput.CursorEnd()
	return v, v.textInput.Focus()
}

func (v BoardView) updateInput(msg tea.KeyMsg) (BoardView, tea.Cmd) {
	switch v.mode {
	case BoardModeConfirmDeleteCard:
		switch msg.String() {
		case "y", "Y":
			if card := v.currentCard(); card != nil {
				v.store.DeleteCard(card.ID)
				v.refresh()
			}
			v.mode = BoardModeNormal
		case "n", "N", "esc":
			v.mode = BoardModeNormal
		}
		return v, nil

	case BoardModeConfirmDeleteProject:
		switch msg.String() {
		case "y", "Y":
			if proj := v.currentProject(); proj != nil {
				v.store.DeleteProject(proj.ID)
				v.refresh()
			}
			v.mode = BoardModeNormal
		case "n", "N", "esc":
			v.mode = BoardModeNormal
		}
		return v, nil
	}

	switch msg.String() {
	case "esc":
		v.mode = BoardModeNormal
		v.textInput.Blur()
		return v, nil
	case "enter":
		return v.commitInput()
	}

	var cmd tea.Cmd
	v.textInput, cmd = v.textInput.Update(msg)
	return v, cmd
}

func (v BoardView) commitInput() (BoardView, tea.Cmd) {
	value := v.textInput.Value()
	proj := v.currentProject()

	switch v.mode {
	case BoardModeAddProject:
		v.store.AddProject(value)
	case BoardModeRenameProject:
		if proj != nil {
			v.store.RenameProject(proj.ID, value)
		}
	case BoardModeAddCard:
		if proj != nil {
			v.store.AddCard(proj.ID, value)
		}
	case BoardModeAddLinkName:
		if strings.TrimSpace(value) == "" {
			break
		}
		v.pending = value
		return v.startInput(BoardModeAddLinkURL, "Link URL (https://...)", "")
	case BoardModeAddLinkURL:
		if proj != nil {
			v.store.AddLink(proj.ID, v.pending, value)
		}
	case BoardModeEditCard:
		if card := v.currentCard(); card != nil {
			v.store.EditCard(card.ID, value)
		}
	case BoardModeNotes:
		if proj != nil {
			v.store.UpdateProjectNotes(proj.ID, value)
		}
	case BoardModeTimeDate:
		if model.CanonicalDate(value) == "" {
			v.statusMsg = "invalid date"
			break
		}
		v.pending = value
		return v.startInput(BoardModeTimeHours, "Hours", "")
	case BoardModeTimeHours:
		hours, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || !model.ValidHours(hours) {
			v.statusMsg = "invalid hours"
		} else if card := v.currentCard(); card != nil {
			v.store.AddTimeEntry(card.ID, v.pending, hours)
			v.statusMsg = fmt.Sprintf("logged %.2fh on %s", model.RoundHours(hours), model.CanonicalDate(v.pending))
		}
	}

	v.mode = BoardModeNormal
	v.textInput.Blur()
	v.refresh()
	return v, nil
}

func (v *BoardView) moveCardWithin(delta int) {
	proj := v.currentProject()
	card := v.currentCard()
	if proj == nil || card == nil {
		return
	}
	target := v.rowIdx + delta
	if target < 0 || target >= len(v.currentColumn()) {
		return
	}
	v.store.MoveCard(card.ID, proj.ID, v.currentStatus(), v.currentStatus(), target)
	v.refresh()
	v.rowIdx = target
}

func (v *BoardView) moveCardAcross(delta int) {
	proj := v.currentProject()
	card := v.currentCard()
	if proj == nil || card == nil {
		return
	}
	targetCol := v.colIdx + delta
	if targetCol < 0 || targetCol > 4 {
		return
	}
	from := v.currentStatus()
	to := model.Statuses()[targetCol]
	v.store.MoveCard(card.ID, proj.ID, from, to, -1)
	v.refresh()
	v.colIdx = targetCol
	v.rowIdx = len(v.currentColumn()) - 1
	v.clampCursor()
}

func (v *BoardView) reorderProject(up bool) {
	projects := v.board.SortedProjects()
	if v.projIdx < 0 || v.projIdx >= len(projects) {
		return
	}
	neighbor := v.projIdx + 1
	if up {
		neighbor = v.projIdx - 1
	}
	if neighbor < 0 || neighbor >= len(projects) {
		return
	}
	v.store.ReorderProjects(projects[v.projIdx].ID, projects[neighbor].ID, up)
	v.refresh()
	v.projIdx = neighbor
}

// View renders the board
func (v BoardView) View() string {
	styles := theme.Current.Styles

	projects := v.board.SortedProjects()
	if len(projects) == 0 {
		empty := styles.Empty.Render("No projects yet. Press A to add one.")
		return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, empty)
	}

	var rows []string
	for i, proj := range projects {
		rows = append(rows, v.renderProjectHeader(proj, i == v.projIdx))
		if i == v.projIdx && !proj.Collapsed {
			rows = append(rows, v.renderColumns(proj))
		}
	}

	content := strings.Join(rows, "\n")
	if v.mode != BoardModeNormal {
		content += "\n" + v.renderInput()
	} else if v.statusMsg != "" {
		content += "\n" + styles.Label.Render(v.statusMsg)
	}
	return content
}

func (v BoardView) renderProjectHeader(proj *model.Project, selected bool) string {
	styles := theme.Current.Styles

	marker := "▸"
	if !proj.Collapsed {
		marker = "▾"
	}
	count := 0
	for _, status := range model.Statuses() {
		count += len(proj.Columns.Get(status))
	}

	name := lipgloss.NewStyle().Foreground(lipgloss.Color(proj.Color)).Bold(true).Render(proj.Name)
	line := fmt.Sprintf("%s %s %s", marker, name, styles.Label.Render(fmt.Sprintf("(%d)", count)))
	if proj.Notes.Text != "" {
		note := strings.SplitN(proj.Notes.Text, "\n", 2)[0]
		line += "  " + styles.Subtitle.Render(truncate(note, 40))
	}

	if selected {
		return styles.ProjectSelected.Render("› ") + line
	}
	if proj.Collapsed {
		return "  " + styles.ProjectCollapsed.Render(marker) + " " + name + " " + styles.Label.Render(fmt.Sprintf("(%d)", count))
	}
	return "  " + line
}

func (v BoardView) renderColumns(proj *model.Project) string {
	styles := theme.Current.Styles

	colWidth := v.width/5 - 1
	if colWidth < 12 {
		colWidth = 12
	}

	var cols []string
	for i, status := range model.Statuses() {
		titleStyle := styles.ColumnTitle
		if i == v.colIdx {
			titleStyle = styles.ColumnSelected
		}
		title := titleStyle.Foreground(theme.Current.Theme.ColumnColor(status)).
			Render(fmt.Sprintf("%s %d", status.Label(), len(proj.Columns.Get(status))))

		lines := []string{title}
		ids := proj.Columns.Get(status)
		if len(ids) == 0 {
			lines = append(lines, styles.Empty.Render("empty"))
		}
		for row, id := range ids {
			card := v.board.Cards[id]
			if card == nil {
				continue
			}
			label := truncate(card.Title, colWidth-4)
			if !card.IsLink() {
				if total := card.TotalHours(); total > 0 {
					label = fmt.Sprintf("%s %s", label, styles.Label.Render(fmt.Sprintf("%.4gh", total)))
				}
			}
			style := styles.Card
			if card.IsLink() {
				style = styles.LinkCard
			}
			if i == v.colIdx && row == v.rowIdx {
				style = styles.CardSelected
			}
			lines = append(lines, style.MaxWidth(colWidth).Render(label))
		}

		col := lipgloss.NewStyle().Width(colWidth).Render(strings.Join(lines, "\n"))
		cols = append(cols, col)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (v BoardView) renderInput() string {
	styles := theme.Current.Styles

	switch v.mode {
	case BoardModeConfirmDeleteCard:
		return styles.ErrorText.Render("Delete card? (y/n)")
	case BoardModeConfirmDeleteProject:
		return styles.ErrorText.Render("Delete project and all its cards? (y/n)")
	}
	return styles.InputFocused.Render(v.textInput.Placeholder+": ") + v.textInput.View()
}

func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return string(r[:max])
	}
	return string(r[:max-1]) + "…"
}
