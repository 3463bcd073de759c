package theme

import "github.com/charmbracelet/lipgloss"

// Dracula theme
// https://draculatheme.com/
var Dracula = Theme{
	Name: "dracula",

	Background: lipgloss.Color("#282A36"),
	Foreground: lipgloss.Color("#F8F8F2"),
	Subtle:     lipgloss.Color("#6272A4"),
	Highlight:  lipgloss.Color("#44475A"),
	Border:     lipgloss.Color("#6272A4"),

	Primary:   lipgloss.Color("#BD93F9"), // Purple
	Secondary: lipgloss.Color("#8BE9FD"), // Cyan

	Success: lipgloss.Color("#50FA7B"), // Green
	Warning: lipgloss.Color("#F1FA8C"), // Yellow
	Error:   lipgloss.Color("#FF5555"), // Red

	// Column accents
	ColumnLinks:      lipgloss.Color("#8BE9FD"),
	ColumnBacklog:    lipgloss.Color("#6272A4"),
	ColumnInProgress: lipgloss.Color("#BD93F9"),
	ColumnOnHold:     lipgloss.Color("#F1FA8C"),
	ColumnComplete:   lipgloss.Color("#50FA7B"),

	ProjectPalette: []string{
		"#BD93F9", "#8BE9FD", "#50FA7B", "#F1FA8C", "#FFB86C", "#FF79C6",
	},
}
