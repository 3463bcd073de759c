package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dori/ckanban/internal/app"
	"github.com/dori/ckanban/internal/model"
	"github.com/dori/ckanban/internal/ui"
	"github.com/dori/ckanban/internal/ui/theme"
)

var (
	version = "0.1.0"
)

func main() {
	// Subcommand handling
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "add":
			handleAdd(os.Args[2:])
			return
		case "export":
			handleExport(os.Args[2:])
			return
		case "import":
			handleImport(os.Args[2:])
			return
		case "clear":
			handleClear()
			return
		case "version":
			fmt.Printf("ckanban v%s\n", version)
			return
		case "help", "-h", "--help":
			printHelp()
			return
		}
	}

	// Parse flags for TUI mode
	viewFlag := flag.String("view", "board", "Starting view (board, review, bookmarks)")
	themeFlag := flag.String("theme", "", "Theme name (nord, dracula)")
	flag.Parse()

	if err := runTUI(*viewFlag, *themeFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	help := `ckanban - A personal kanban board

Usage:
  ckanban                        Start the TUI
  ckanban add <project> <title>  Quick add a card to a project's backlog
  ckanban export [path]          Export the board as kanban.v1 JSON (stdout by default)
  ckanban import <path>          Replace the board with a kanban.v1 JSON file
  ckanban clear                  Reset the board to empty
  ckanban version                Show version
  ckanban help                   Show this help

Quick Add:
  The project is matched by case-insensitive name prefix.

  ckanban add work "Review the deploy runbook"
  ckanban add gar "Water the tomatoes"     (matches "Garden")

TUI Options:
  --view <name>     Starting view (board, review, bookmarks)
  --theme <name>    Theme (nord, dracula)

Keybindings:
  Navigation:   h/j/k/l       Move between columns and cards
                tab           Next project
                g/G           Top/bottom of column

  Board:        a             Add card
                A             Add project
                o             Add link card
                t             Log time
                H/L           Move card across columns
                J/K           Reorder card in column
                d/D           Delete card/project (with confirm)

  Views:        1-3           Board, review, bookmarks
                ?             Help
                q             Quit`

	fmt.Println(help)
}

// openApp builds the full application for CLI subcommands. They go
// through the same store and debounced saver as the TUI, so Close
// flushes whatever the subcommand changed.
func openApp() *app.App {
	application, err := app.New(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return application
}

func handleAdd(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: ckanban add <project> <title>")
		fmt.Fprintln(os.Stderr, "Example: ckanban add work \"Review the deploy runbook\"")
		os.Exit(1)
	}

	application := openApp()
	defer application.Close()

	proj := matchProject(application.Store.Get(), args[0])
	if proj == nil {
		fmt.Fprintf(os.Stderr, "Error: no project matching %q\n", args[0])
		os.Exit(1)
	}

	title := strings.Join(args[1:], " ")
	before := len(proj.Columns.Get(model.StatusBacklog))
	application.Store.AddCard(proj.ID, title)

	after := application.Store.Get().FindProject(proj.ID)
	if after == nil || len(after.Columns.Get(model.StatusBacklog)) == before {
		fmt.Fprintln(os.Stderr, "Error: card not added (empty title?)")
		os.Exit(1)
	}
	fmt.Printf("Added to %s: %s\n", proj.Name, strings.TrimSpace(title))
}

// matchProject finds a project by case-insensitive name prefix,
// preferring an exact match
func matchProject(b *model.Board, name string) *model.Project {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil
	}
	var prefix *model.Project
	for _, p := range b.SortedProjects() {
		lower := strings.ToLower(p.Name)
		if lower == needle {
			return p
		}
		if prefix == nil && strings.HasPrefix(lower, needle) {
			prefix = p
		}
	}
	return prefix
}

func handleExport(args []string) {
	application := openApp()
	defer application.Close()

	data, err := application.Store.Export()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting board: %v\n", err)
		os.Exit(1)
	}

	if len(args) == 0 {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(args[0], data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", args[0], err)
		os.Exit(1)
	}
	fmt.Printf("Exported board to %s\n", args[0])
}

func handleImport(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: ckanban import <path>")
		os.Exit(1)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", args[0], err)
		os.Exit(1)
	}

	application := openApp()
	defer application.Close()

	if err := application.Store.Import(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error importing board: %v\n", err)
		os.Exit(1)
	}

	b := application.Store.Get()
	fmt.Printf("Imported %d projects, %d cards\n", len(b.Projects), len(b.Cards))
}

func handleClear() {
	application := openApp()
	defer application.Close()

	application.Store.Clear()
	fmt.Println("Board cleared")
}

func runTUI(startView, themeName string) error {
	application, err := app.New(nil)
	if err != nil {
		return err
	}
	defer application.Close()

	if themeName != "" {
		if t, ok := theme.ByName(themeName); ok {
			theme.SetTheme(t)
		} else {
			return fmt.Errorf("unknown theme %q", themeName)
		}
	}

	initial := ui.ViewBoard
	switch startView {
	case "", "board":
	case "review":
		initial = ui.ViewReview
	case "bookmarks":
		initial = ui.ViewBookmarks
	default:
		return fmt.Errorf("unknown view %q", startView)
	}

	p := tea.NewProgram(
		ui.NewRootModel(application, initial),
		tea.WithAltScreen(),
	)

	// Committed snapshots flow into the running program; the saver has
	// its own subscription, so this only feeds the views.
	unsub := application.Store.Subscribe(func(b *model.Board) {
		p.Send(ui.BoardChangedMsg{Board: b})
	})
	defer unsub()

	_, err = p.Run()
	return err
}
