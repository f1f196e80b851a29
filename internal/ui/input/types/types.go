package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"termdeck/internal/session"
)

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeGoto
)

// Action represents something the model should act on. Session commands
// satisfy this directly; the remaining actions are input-layer concerns.
type Action interface {
	Type() string
}

// Context provides read-only access to presentation state needed for
// key handling
type Context interface {
	ViewMode() session.ViewMode
	IndexCursor() int
	SlideCount() int
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
