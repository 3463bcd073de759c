package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dori/ckanban/internal/model"
	"github.com/dori/ckanban/internal/store"
	"github.com/dori/ckanban/internal/ui/theme"
)

// BookmarksMode represents the current input mode of the bookmarks view
type BookmarksMode int

const (
	BookmarksModeNormal BookmarksMode = iota
	BookmarksModeAddName
	BookmarksModeAddURL
	BookmarksModeConfirmDelete
)

// BookmarksView renders the global bookmark list
type BookmarksView struct {
	store  *store.Store
	board  *model.Board
	cursor int
	width  int
	height int

	mode      BookmarksMode
	textInput textinput.Model
	pending   string
}

// NewBookmarksView creates the bookmarks view
func NewBookmarksView(st *store.Store) BookmarksView {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 256

	return BookmarksView{
		store:     st,
		board:     st.Get(),
		textInput: ti,
	}
}

// Init initializes the bookmarks view
func (v BookmarksView) Init() tea.Cmd {
	return nil
}

// SetSize sets the view dimensions
func (v BookmarksView) SetSize(width, height int) BookmarksView {
	v.width = width
	v.height = height
	return v
}

// SetBoard installs a freshly committed snapshot
func (v BookmarksView) SetBoard(b *model.Board) BookmarksView {
	v.board = b
	if v.cursor >= len(b.Bookmarks) {
		v.cursor = len(b.Bookmarks) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
	return v
}

// IsInputMode reports whether the view is capturing text input
func (v BookmarksView) IsInputMode() bool {
	return v.mode != BookmarksModeNormal
}

func (v *BookmarksView) current() *model.Bookmark {
	if v.cursor < 0 || v.cursor >= len(v.board.Bookmarks) {
		return nil
	}
	return v.board.Bookmarks[v.cursor]
}

// Update handles messages
func (v BookmarksView) Update(msg tea.Msg) (BookmarksView, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch v.mode {
	case BookmarksModeConfirmDelete:
		switch keyMsg.String() {
		case "y", "Y":
			if bm := v.current(); bm != nil {
				v.store.DeleteBookmark(bm.ID)
				v.board = v.store.Get()
				if v.cursor >= len(v.board.Bookmarks) && v.cursor > 0 {
					v.cursor--
				}
			}
			v.mode = BookmarksModeNormal
		case "n", "N", "esc":
			v.mode = BookmarksModeNormal
		}
		return v, nil

	case BookmarksModeAddName, BookmarksModeAddURL:
		switch keyMsg.String() {
		case "esc":
			v.mode = BookmarksModeNormal
			v.textInput.Blur()
			return v, nil
		case "enter":
			value := v.textInput.Value()
			if v.mode == BookmarksModeAddName {
				if strings.TrimSpace(value) == "" {
					v.mode = BookmarksModeNormal
					v.textInput.Blur()
					return v, nil
				}
				v.pending = value
				v.mode = BookmarksModeAddURL
				v.textInput.Placeholder = "Bookmark URL (https://...)"
				v.textInput.SetValue("")
				return v, v.textInput.Focus()
			}
			v.store.AddBookmark(v.pending, value)
			v.board = v.store.Get()
			v.cursor = len(v.board.Bookmarks) - 1
			v.mode = BookmarksModeNormal
			v.textInput.Blur()
			return v, nil
		}
		var cmd tea.Cmd
		v.textInput, cmd = v.textInput.Update(keyMsg)
		return v, cmd
	}

	switch keyMsg.String() {
	case "j", "down":
		if v.cursor < len(v.board.Bookmarks)-1 {
			v.cursor++
		}
	case "k", "up":
		if v.cursor > 0 {
			v.cursor--
		}
	case "g":
		v.cursor = 0
	case "G":
		if n := len(v.board.Bookmarks); n > 0 {
			v.cursor = n - 1
		}
	case "a":
		v.mode = BookmarksModeAddName
		v.textInput.Placeholder = "Bookmark name"
		v.textInput.SetValue("")
		return v, v.textInput.Focus()
	case "d":
		if v.current() != nil {
			v.mode = BookmarksModeConfirmDelete
		}
	}
	return v, nil
}

// View renders the bookmarks
func (v BookmarksView) View() string {
	styles := theme.Current.Styles

	var b strings.Builder
	b.WriteString(styles.Title.Render("Bookmarks") + "\n\n")

	if len(v.board.Bookmarks) == 0 {
		b.WriteString(styles.Empty.Render("No bookmarks yet. Press a to add one.") + "\n")
	}
	for i, bm := range v.board.Bookmarks {
		line := fmt.Sprintf("%s  %s", bm.Title, styles.Label.Render(bm.URL))
		if i == v.cursor {
			b.WriteString(styles.CardSelected.Render("› "+line) + "\n")
		} else {
			b.WriteString(styles.Card.Render("  "+line) + "\n")
		}
	}

	switch v.mode {
	case BookmarksModeConfirmDelete:
		b.WriteString("\n" + styles.ErrorText.Render("Delete bookmark? (y/n)"))
	case BookmarksModeAddName, BookmarksModeAddURL:
		b.WriteString("\n" + styles.InputFocused.Render(v.textInput.Placeholder+": ") + v.textInput.View())
	default:
		b.WriteString("\n" + styles.Footer.Render("a add · d delete · j/k move"))
	}
	return b.String()
}
