// Package ui wires terminal input, the navigation session, and the frame
// renderer into a Bubble Tea program.
package ui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"termdeck/internal/config"
	"termdeck/internal/deck"
	"termdeck/internal/discovery"
	"termdeck/internal/session"
	"termdeck/internal/ui/input"
	"termdeck/internal/ui/input/types"
	"termdeck/internal/ui/views"
)

// Model is the top-level Bubble Tea model.
type Model struct {
	sess     *session.Session
	handler  *input.Handler
	renderer *views.Renderer
	prog     progress.Model
	cfg      *config.Config

	sourceDir string
	titles    []views.IndexEntry
	notice    string // model-level status message, e.g. reload results
	notesOps  *NotesOps
}

// NewModel builds the model around an already-constructed deck.
func NewModel(d *deck.Deck, cfg *config.Config, sourceDir string) *Model {
	m := &Model{
		handler:   input.New(),
		renderer:  views.NewRenderer(),
		prog:      progress.New(progress.WithDefaultGradient()),
		cfg:       cfg,
		sourceDir: sourceDir,
		notesOps:  NewNotesOps(nil),
	}
	m.adoptDeck(d)
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.notesOps.program = p
}

// adoptDeck points the model at a deck, rebuilding the session and the
// index entries. Used at startup and after a reload.
func (m *Model) adoptDeck(d *deck.Deck) {
	m.sess = session.New(d)
	m.sess.SetOverlayExtentFunc(func(mode session.ViewMode) int {
		slide, _ := m.sess.Current()
		return m.renderer.OverlayExtent(mode, slide, m.sess.Width())
	})

	m.titles = m.titles[:0]
	for idx, title := range d.Titles() {
		m.titles = append(m.titles, views.IndexEntry{Index: idx, Title: title})
	}
}

// inputContext exposes the session state the key handler needs.
type inputContext struct {
	s *session.Session
}

func (c inputContext) ViewMode() session.ViewMode { return c.s.Mode() }
func (c inputContext) IndexCursor() int           { return c.s.IndexCursor() }
func (c inputContext) SlideCount() int            { return c.s.Deck().Count() }

func (m *Model) Init() tea.Cmd {
	return m.progressCmd()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if err := m.sess.Apply(session.ResizeCommand{Width: msg.Width, Height: msg.Height}); err != nil {
			log.Printf("Resize failed: %v", err)
		}
		m.prog.Width = msg.Width - 4
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case progress.FrameMsg:
		progressModel, cmd := m.prog.Update(msg)
		m.prog = progressModel.(progress.Model)
		return m, cmd

	case notesPagerMsg:
		if msg.err != nil {
			log.Printf("Notes pager failed: %v", msg.err)
			m.notice = "pager failed, see log"
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	actions, inputCmd := m.handler.HandleKey(msg, inputContext{m.sess})

	cmds := []tea.Cmd{inputCmd}
	for _, action := range actions {
		switch a := action.(type) {
		case session.RefreshCommand:
			m.reloadDeck()

		case session.Command:
			if err := m.sess.Apply(a); err != nil {
				log.Printf("Command %s rejected: %v", a.Type(), err)
			}

		case types.OpenNotesPagerAction:
			cmds = append(cmds, m.openNotesPager())

		default:
			log.Printf("Unhandled input action %s", action.Type())
		}
	}

	if m.sess.Quitting() {
		return m, tea.Quit
	}

	cmds = append(cmds, m.progressCmd())
	return m, tea.Batch(cmds...)
}

// progressCmd animates the bar toward the current slide's position.
func (m *Model) progressCmd() tea.Cmd {
	count := m.sess.Deck().Count()
	if !m.cfg.UISettings.ShowProgressBar || count == 0 {
		return nil
	}
	return m.prog.SetPercent(float64(m.sess.CurrentIndex()+1) / float64(count))
}

// reloadDeck re-reads the slide directory so edits show up without a
// restart. The current position is kept where the new deck still has it.
func (m *Model) reloadDeck() {
	docs, title, err := discovery.LoadDir(m.sourceDir)
	if err != nil {
		log.Printf("Reload failed: %v", err)
		m.notice = "reload failed, see log"
		return
	}

	d, problems, err := deck.Build(docs, deck.Options{
		Title:         title,
		AllowEmpty:    true, // a live-edited deck may be momentarily empty
		SkipMalformed: m.cfg.SkipMalformed(),
	})
	if err != nil {
		log.Printf("Reload failed: %v", err)
		m.notice = "reload failed, see log"
		return
	}

	width, height := m.sess.Width(), m.sess.Height()
	position := m.sess.CurrentIndex()
	mode := m.sess.Mode()

	m.adoptDeck(d)
	_ = m.sess.Apply(session.ResizeCommand{Width: width, Height: height})

	// Carry the position over, clamped when the deck shrank, and reopen
	// whatever overlay was active.
	if d.Count() > 0 {
		if position >= d.Count() {
			position = d.Count() - 1
		}
		_ = m.sess.Apply(session.GotoCommand{N: position + 1})
	}
	switch mode {
	case session.ModeNotes:
		_ = m.sess.Apply(session.ToggleNotesCommand{})
	case session.ModeIndex:
		_ = m.sess.Apply(session.ToggleIndexCommand{})
	case session.ModeHelp:
		_ = m.sess.Apply(session.ToggleHelpCommand{})
	}

	m.notice = fmt.Sprintf("reloaded %d slides", d.Count())
	if len(problems) > 0 {
		m.notice = fmt.Sprintf("reloaded %d slides, skipped %d", d.Count(), len(problems))
	}
}

func (m *Model) openNotesPager() tea.Cmd {
	slide, ok := m.sess.Current()
	if !ok || !slide.HasNotes() {
		return nil
	}
	return func() tea.Msg {
		return notesPagerMsg{err: m.notesOps.ShowNotesInPager(slide, m.sess.Width())}
	}
}

func (m *Model) View() string {
	slide, hasSlide := m.sess.Current()

	flash := m.sess.Flash()
	if m.notice != "" {
		flash = m.notice
	}

	prompt := ""
	if ti := m.handler.TextInput(); ti != nil {
		prompt = ti.View()
	}

	ctx := views.FrameContext{
		Slide:         slide,
		HasSlide:      hasSlide,
		Count:         m.sess.Deck().Count(),
		Titles:        m.titles,
		DeckTitle:     m.sess.Deck().Title(),
		Width:         m.sess.Width(),
		Height:        m.sess.Height(),
		Mode:          m.sess.Mode(),
		Scroll:        m.sess.Scroll(),
		IndexCursor:   m.sess.IndexCursor(),
		OverlayScroll: m.sess.OverlayScroll(),
		Flash:         flash,
		Prompt:        prompt,
		ProgressView:  m.prog.View(),
		ShowProgress:  m.cfg.UISettings.ShowProgressBar,
		ShowTitle:     m.cfg.UISettings.ShowDeckTitle,
	}
	return m.renderer.Render(ctx)
}
