package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dori/ckanban/internal/model"
)

// Theme defines the color scheme for the UI
type Theme struct {
	Name string

	// Base colors
	Background lipgloss.Color
	Foreground lipgloss.Color
	Subtle     lipgloss.Color
	Highlight  lipgloss.Color
	Border     lipgloss.Color

	// Semantic colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color

	// Column accent colors
	ColumnLinks      lipgloss.Color
	ColumnBacklog    lipgloss.Color
	ColumnInProgress lipgloss.Color
	ColumnOnHold     lipgloss.Color
	ColumnComplete   lipgloss.Color

	// Project color palette, cycled by the color keybinding
	ProjectPalette []string
}

// ColumnColor returns the accent color for a board column
func (t Theme) ColumnColor(s model.Status) lipgloss.Color {
	switch s {
	case model.StatusLinks:
		return t.ColumnLinks
	case model.StatusBacklog:
		return t.ColumnBacklog
	case model.StatusInProgress:
		return t.ColumnInProgress
	case model.StatusOnHold:
		return t.ColumnOnHold
	case model.StatusComplete:
		return t.ColumnComplete
	default:
		return t.Foreground
	}
}

// NextProjectColor returns the palette entry after the given color,
// wrapping around; unknown colors start the palette over.
func (t Theme) NextProjectColor(current string) string {
	for i, c := range t.ProjectPalette {
		if c == current {
			return t.ProjectPalette[(i+1)%len(t.ProjectPalette)]
		}
	}
	if len(t.ProjectPalette) == 0 {
		return model.DefaultColor
	}
	return t.ProjectPalette[0]
}

// Styles holds pre-computed lipgloss styles based on theme
type Styles struct {
	Header lipgloss.Style
	Footer lipgloss.Style

	ProjectHeader    lipgloss.Style
	ProjectSelected  lipgloss.Style
	ProjectCollapsed lipgloss.Style

	ColumnTitle    lipgloss.Style
	ColumnSelected lipgloss.Style

	Card         lipgloss.Style
	CardSelected lipgloss.Style
	LinkCard     lipgloss.Style
	Empty        lipgloss.Style

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style

	Input        lipgloss.Style
	InputFocused lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	StatusBar lipgloss.Style
	ErrorText lipgloss.Style
}

// NewStyles creates styles from a theme
func NewStyles(t Theme) Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(t.Subtle).
			Padding(0, 1),

		ProjectHeader: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Bold(true),

		ProjectSelected: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		ProjectCollapsed: lipgloss.NewStyle().
			Foreground(t.Subtle),

		ColumnTitle: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1),

		ColumnSelected: lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Padding(0, 1),

		Card: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Padding(0, 1),

		CardSelected: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Background(t.Highlight).
			Padding(0, 1),

		LinkCard: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Underline(true).
			Padding(0, 1),

		Empty: lipgloss.NewStyle().
			Foreground(t.Subtle).
			Italic(true).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Italic(true),

		Label: lipgloss.NewStyle().
			Foreground(t.Subtle),

		Input: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		InputFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Primary).
			Padding(0, 1),

		HelpKey: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(t.Subtle),

		StatusBar: lipgloss.NewStyle().
			Background(t.Highlight).
			Foreground(t.Foreground).
			Padding(0, 1),

		ErrorText: lipgloss.NewStyle().
			Foreground(t.Error).
			Bold(true),
	}
}

// Current holds the current active theme and styles
var Current = struct {
	Theme  Theme
	Styles Styles
}{
	Theme:  Nord,
	Styles: NewStyles(Nord),
}

// SetTheme changes the current theme
func SetTheme(t Theme) {
	Current.Theme = t
	Current.Styles = NewStyles(t)
}

// Available returns all available themes
func Available() []Theme {
	return []Theme{
		Nord,
		Dracula,
	}
}

// ByName returns a theme by its name
func ByName(name string) (Theme, bool) {
	for _, t := range Available() {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// Cycle switches to the next available theme and returns its name
func Cycle() string {
	themes := Available()
	for i, t := range themes {
		if t.Name == Current.Theme.Name {
			next := themes[(i+1)%len(themes)]
			SetTheme(next)
			return next.Name
		}
	}
	SetTheme(themes[0])
	return themes[0].Name
}
