package views

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dori/ckanban/internal/model"
	"github.com/dori/ckanban/internal/report"
	"github.com/dori/ckanban/internal/store"
	"github.com/dori/ckanban/internal/ui/theme"
)

// ReviewView shows what moved and how many hours were logged on a
// given day. Left/right page through dates, t jumps back to today.
type ReviewView struct {
	store  *store.Store
	board  *model.Board
	date   string
	width  int
	height int
}

// NewReviewView creates the review view anchored on today
func NewReviewView(st *store.Store) ReviewView {
	return ReviewView{
		store: st,
		board: st.Get(),
		date:  model.DateOf(time.Now()),
	}
}

// Init initializes the review view
func (v ReviewView) Init() tea.Cmd {
	return nil
}

// SetSize sets the view dimensions
func (v ReviewView) SetSize(width, height int) ReviewView {
	v.width = width
	v.height = height
	return v
}

// SetBoard installs a freshly committed snapshot
func (v ReviewView) SetBoard(b *model.Board) ReviewView {
	v.board = b
	return v
}

// IsInputMode reports whether the view is capturing text input
func (v ReviewView) IsInputMode() bool {
	return false
}

func (v *ReviewView) shiftDate(days int) {
	t, err := time.Parse(model.DateLayout, v.date)
	if err != nil {
		v.date = model.DateOf(time.Now())
		return
	}
	v.date = model.DateOf(t.AddDate(0, 0, days))
}

// Update handles messages
func (v ReviewView) Update(msg tea.Msg) (ReviewView, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch keyMsg.String() {
	case "h", "left":
		v.shiftDate(-1)
	case "l", "right":
		v.shiftDate(1)
	case "t":
		v.date = model.DateOf(time.Now())
	}
	return v, nil
}

// View renders the review
func (v ReviewView) View() string {
	styles := theme.Current.Styles

	var b strings.Builder
	title := v.date
	if v.date == model.DateOf(time.Now()) {
		title += " (today)"
	}
	b.WriteString(styles.Title.Render("Review — "+title) + "\n\n")

	activity := report.ActivityOn(v.board, v.date)
	if activity.Total == 0 {
		b.WriteString(styles.Empty.Render("No cards changed state on this day.") + "\n")
	} else {
		for _, status := range model.Statuses() {
			if status == model.StatusLinks {
				continue
			}
			cards := activity.ByState[status]
			if len(cards) == 0 {
				continue
			}
			header := lipgloss.NewStyle().
				Bold(true).
				Foreground(theme.Current.Theme.ColumnColor(status)).
				Render(fmt.Sprintf("%s (%d)", status.Label(), len(cards)))
			b.WriteString(header + "\n")
			for _, card := range cards {
				line := "  • " + card.Title
				if proj := v.board.FindProject(card.ProjectID); proj != nil {
					line += "  " + styles.Label.Render(proj.Name)
				}
				b.WriteString(line + "\n")
			}
			b.WriteString("\n")
		}
	}

	entries := report.HoursOn(v.board, v.date)
	b.WriteString(styles.Subtitle.Render("Hours logged") + "\n")
	if len(entries.Cards) == 0 {
		b.WriteString(styles.Empty.Render("No time entries on this day.") + "\n")
	} else {
		for _, ch := range entries.Cards {
			line := fmt.Sprintf("  %5.2fh  %s", ch.Hours, ch.Card.Title)
			if proj := v.board.FindProject(ch.Card.ProjectID); proj != nil {
				line += "  " + styles.Label.Render(proj.Name)
			}
			b.WriteString(line + "\n")
		}
		b.WriteString(styles.Label.Render(fmt.Sprintf("  total %.2fh", entries.Total)) + "\n")
	}

	b.WriteString("\n" + styles.Footer.Render("←/→ change day · t today"))
	return b.String()
}
