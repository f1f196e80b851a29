// Package session holds the navigation state machine for a running
// presentation: which slide is current, how far it is scrolled, and which
// view mode is active. It consumes decoded commands and never touches the
// terminal; rendering is the views package's job.
package session

import (
	"fmt"

	"termdeck/internal/deck"
	"termdeck/internal/domain"
)

// ViewMode selects what the viewport shows. Notes, index and help are
// overlays on top of the current slide; they never change which slide is
// current.
type ViewMode int

const (
	ModeNormal ViewMode = iota
	ModeNotes
	ModeIndex
	ModeHelp
)

// String returns the mode name for logs and status display.
func (m ViewMode) String() string {
	switch m {
	case ModeNotes:
		return "notes"
	case ModeIndex:
		return "index"
	case ModeHelp:
		return "help"
	default:
		return "normal"
	}
}

// Frame chrome, in rows. The header carries slide identity; the footer is
// the status bar plus the progress bar. Overflow indicators replace the
// first/last visible body row, so they do not change the row count.
const (
	HeaderRows = 1
	FooterRows = 2
)

// BodyRows returns how many content rows fit in a viewport of the given
// height once the chrome is accounted for.
func BodyRows(height int) int {
	rows := height - HeaderRows - FooterRows
	if rows < 1 {
		rows = 1
	}
	return rows
}

// Session is the single piece of mutable state in the core. It owns the
// cursor into the (read-only) deck and applies one command at a time;
// there are no concurrent mutation paths.
type Session struct {
	deck *deck.Deck

	current int // 0-based slide position; meaningless when the deck is empty
	scroll  int // body lines scrolled past the top of the current slide
	mode    ViewMode

	width  int
	height int

	// Overlay state. Each overlay gets a fresh scroll baseline on entry;
	// the slide's own scroll offset is untouched by overlay browsing.
	indexCursor   int
	overlayScroll int

	// overlayExtentFn reports how many content lines the active overlay
	// renders to, so overlay scrolling can be clamped without the session
	// knowing how overlays are laid out.
	overlayExtentFn func(mode ViewMode) int

	flash    string
	quitting bool
}

// New creates a session over a deck with a default viewport size. The
// real dimensions arrive with the first ResizeCommand.
func New(d *deck.Deck) *Session {
	return &Session{
		deck:   d,
		width:  80,
		height: 24,
	}
}

// SetOverlayExtentFunc installs the content-length probe used to clamp
// scrolling inside the notes and help overlays.
func (s *Session) SetOverlayExtentFunc(fn func(mode ViewMode) int) {
	s.overlayExtentFn = fn
}

// Deck returns the deck being presented.
func (s *Session) Deck() *deck.Deck { return s.deck }

// Current returns the current slide. ok is false when the deck is empty.
func (s *Session) Current() (domain.Slide, bool) {
	if s.deck.Count() == 0 {
		return domain.Slide{}, false
	}
	slide, err := s.deck.SlideAt(s.current)
	if err != nil {
		return domain.Slide{}, false
	}
	return slide, true
}

// CurrentIndex returns the 0-based position of the current slide.
func (s *Session) CurrentIndex() int { return s.current }

// Scroll returns the body scroll offset of the current slide.
func (s *Session) Scroll() int { return s.scroll }

// Mode returns the active view mode.
func (s *Session) Mode() ViewMode { return s.mode }

// IndexCursor returns the highlighted entry in the index overlay.
func (s *Session) IndexCursor() int { return s.indexCursor }

// OverlayScroll returns the scroll offset of the active overlay.
func (s *Session) OverlayScroll() int { return s.overlayScroll }

// Width returns the last known viewport width.
func (s *Session) Width() int { return s.width }

// Height returns the last known viewport height.
func (s *Session) Height() int { return s.height }

// Flash returns the transient status message, if any. It is replaced on
// the next applied command.
func (s *Session) Flash() string { return s.flash }

// Quitting reports whether a QuitCommand has been applied.
func (s *Session) Quitting() bool { return s.quitting }

// Apply runs one command to completion. Navigation past either end of the
// deck is a no-op, never an error; the only error Apply returns is
// ErrInvalidTarget for a GotoCommand naming a slide that does not exist,
// and state is left unchanged in that case.
func (s *Session) Apply(cmd Command) error {
	if s.quitting {
		return nil
	}
	s.flash = ""

	switch c := cmd.(type) {
	case NextCommand:
		s.stepForward()
	case PrevCommand:
		s.stepBackward()
	case ScrollDownCommand:
		s.scrollBy(1)
	case ScrollUpCommand:
		s.scrollBy(-1)
	case GotoCommand:
		return s.gotoSlide(c.N)
	case FirstCommand:
		s.jump(0)
	case LastCommand:
		s.jump(s.deck.Count() - 1)
	case ToggleNotesCommand:
		s.toggle(ModeNotes)
	case ToggleIndexCommand:
		s.toggle(ModeIndex)
	case ToggleHelpCommand:
		s.toggle(ModeHelp)
	case ResizeCommand:
		s.resize(c.Width, c.Height)
	case RefreshCommand:
		// Redraw with identical state; recovers from terminal corruption.
	case QuitCommand:
		s.quitting = true
	}
	return nil
}

// stepForward advances one slide, or moves the index selection down when
// the index overlay is open. Help ignores slide navigation entirely.
func (s *Session) stepForward() {
	switch s.mode {
	case ModeIndex:
		if s.indexCursor < s.deck.Count()-1 {
			s.indexCursor++
		}
	case ModeHelp:
		// Browsing help is scroll-only.
	default:
		if s.current < s.deck.Count()-1 {
			s.setCurrent(s.current + 1)
		}
	}
}

func (s *Session) stepBackward() {
	switch s.mode {
	case ModeIndex:
		if s.indexCursor > 0 {
			s.indexCursor--
		}
	case ModeHelp:
	default:
		if s.current > 0 {
			s.setCurrent(s.current - 1)
		}
	}
}

func (s *Session) scrollBy(delta int) {
	if s.mode == ModeNormal {
		s.scroll = clamp(s.scroll+delta, 0, s.maxBodyScroll())
		return
	}
	if s.mode == ModeIndex {
		// The index keeps its cursor visible itself; plain scrolling moves
		// the selection, which is what presenters expect from j/k there.
		if delta > 0 {
			s.stepForward()
		} else {
			s.stepBackward()
		}
		return
	}
	s.overlayScroll = clamp(s.overlayScroll+delta, 0, s.maxOverlayScroll())
}

func (s *Session) gotoSlide(n int) error {
	if n < 1 || n > s.deck.Count() {
		s.flash = fmt.Sprintf("no slide %d", n)
		return domain.ErrInvalidTarget
	}
	s.setCurrent(n - 1)
	s.mode = ModeNormal
	return nil
}

func (s *Session) jump(target int) {
	if s.deck.Count() == 0 {
		return
	}
	if s.mode == ModeIndex {
		s.indexCursor = clamp(target, 0, s.deck.Count()-1)
		return
	}
	if s.mode == ModeHelp {
		return
	}
	s.setCurrent(clamp(target, 0, s.deck.Count()-1))
}

// setCurrent changes the current slide and resets its scroll; a new slide
// always starts unscrolled. The notes overlay baseline resets with it.
func (s *Session) setCurrent(i int) {
	s.current = i
	s.scroll = 0
	s.overlayScroll = 0
}

func (s *Session) toggle(target ViewMode) {
	if s.mode == target {
		s.mode = ModeNormal
		s.overlayScroll = 0
		return
	}
	s.mode = target
	s.overlayScroll = 0
	if target == ModeIndex {
		s.indexCursor = s.current
		if s.deck.Count() == 0 {
			s.indexCursor = 0
		}
	}
}

func (s *Session) resize(w, h int) {
	if w > 0 {
		s.width = w
	}
	if h > 0 {
		s.height = h
	}
	s.scroll = clamp(s.scroll, 0, s.maxBodyScroll())
	s.overlayScroll = clamp(s.overlayScroll, 0, s.maxOverlayScroll())
}

func (s *Session) maxBodyScroll() int {
	slide, ok := s.Current()
	if !ok {
		return 0
	}
	return max(0, len(slide.BodyLines)-BodyRows(s.height))
}

func (s *Session) maxOverlayScroll() int {
	if s.overlayExtentFn == nil {
		return 0
	}
	return max(0, s.overlayExtentFn(s.mode)-BodyRows(s.height))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
