package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/noborus/ov/oviewer"

	"termdeck/internal/domain"
)

// notesPagerMsg contains the result of a notes pager command
type notesPagerMsg struct {
	err error
}

// NotesOps opens speaker notes in the ov pager, outside the main screen.
type NotesOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewNotesOps creates a new notes operations instance
func NewNotesOps(program *tea.Program) *NotesOps {
	return &NotesOps{
		program: program,
	}
}

// ShowNotesInPager renders the slide's notes as markdown and pages them
// with ov. The Bubble Tea program gives up the terminal for the duration.
func (n *NotesOps) ShowNotesInPager(slide domain.Slide, width int) error {
	if n.program == nil {
		return fmt.Errorf("program not set")
	}

	content, err := renderNotesMarkdown(slide, width)
	if err != nil {
		return err
	}

	// Release terminal control to run ov
	if err := n.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = n.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	cfg := oviewer.NewConfig()
	cfg.IsWriteOnExit = false
	cfg.IsWriteOriginal = false
	cfg.QuitSmall = true
	root.SetConfig(cfg)

	return root.Run()
}

// renderNotesMarkdown formats notes for the pager. Notes are authored as
// markdown, so they go through glamour rather than the plain frame path.
func renderNotesMarkdown(slide domain.Slide, width int) (string, error) {
	if width < 20 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		return "", err
	}

	doc := fmt.Sprintf("# Speaker notes: %s\n\n%s\n", slide.Title, slide.Notes)
	return r.Render(doc)
}
