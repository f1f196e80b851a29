package session

// Command is a decoded presenter input. Raw key handling lives in the
// input adapter; the session only ever sees this closed set.
type Command interface {
	Type() string
}

// NextCommand advances to the next slide, or moves the selection down
// inside the index overlay.
type NextCommand struct{}

func (c NextCommand) Type() string { return "next" }

// PrevCommand moves to the previous slide, or moves the selection up
// inside the index overlay.
type PrevCommand struct{}

func (c PrevCommand) Type() string { return "prev" }

// ScrollDownCommand scrolls the current view down one line.
type ScrollDownCommand struct{}

func (c ScrollDownCommand) Type() string { return "scroll_down" }

// ScrollUpCommand scrolls the current view up one line.
type ScrollUpCommand struct{}

func (c ScrollUpCommand) Type() string { return "scroll_up" }

// GotoCommand jumps to a 1-based slide number.
type GotoCommand struct {
	N int
}

func (c GotoCommand) Type() string { return "goto" }

// FirstCommand jumps to the first slide (or the top of the index overlay).
type FirstCommand struct{}

func (c FirstCommand) Type() string { return "first" }

// LastCommand jumps to the last slide (or the bottom of the index overlay).
type LastCommand struct{}

func (c LastCommand) Type() string { return "last" }

// ToggleNotesCommand switches the speaker-notes view on or off.
type ToggleNotesCommand struct{}

func (c ToggleNotesCommand) Type() string { return "toggle_notes" }

// ToggleIndexCommand switches the slide-index view on or off.
type ToggleIndexCommand struct{}

func (c ToggleIndexCommand) Type() string { return "toggle_index" }

// ToggleHelpCommand switches the help view on or off.
type ToggleHelpCommand struct{}

func (c ToggleHelpCommand) Type() string { return "toggle_help" }

// ResizeCommand records new terminal dimensions.
type ResizeCommand struct {
	Width  int
	Height int
}

func (c ResizeCommand) Type() string { return "resize" }

// RefreshCommand forces a redraw with unchanged state.
type RefreshCommand struct{}

func (c RefreshCommand) Type() string { return "refresh" }

// QuitCommand ends the presentation; no further commands are processed.
type QuitCommand struct{}

func (c QuitCommand) Type() string { return "quit" }
