package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"termdeck/internal/session"
	"termdeck/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{session.QuitCommand{}}, true

	case tea.KeyEsc:
		// Esc closes whatever overlay is open; from the normal view it quits
		switch ctx.ViewMode() {
		case session.ModeNotes:
			return []types.Action{session.ToggleNotesCommand{}}, true
		case session.ModeIndex:
			return []types.Action{session.ToggleIndexCommand{}}, true
		case session.ModeHelp:
			return []types.Action{session.ToggleHelpCommand{}}, true
		default:
			return []types.Action{session.QuitCommand{}}, true
		}

	case tea.KeyUp:
		return []types.Action{session.ScrollUpCommand{}}, true

	case tea.KeyDown:
		return []types.Action{session.ScrollDownCommand{}}, true

	case tea.KeyLeft:
		return []types.Action{session.PrevCommand{}}, true

	case tea.KeyRight:
		return []types.Action{session.NextCommand{}}, true

	case tea.KeyPgUp:
		return []types.Action{session.PrevCommand{}}, true

	case tea.KeyPgDown:
		return []types.Action{session.NextCommand{}}, true

	case tea.KeyHome:
		return []types.Action{session.FirstCommand{}}, true

	case tea.KeyEnd:
		return []types.Action{session.LastCommand{}}, true

	case tea.KeyBackspace:
		return []types.Action{session.PrevCommand{}}, true

	case tea.KeySpace:
		return []types.Action{session.NextCommand{}}, true

	case tea.KeyEnter:
		// Enter jumps to the highlighted slide when the index is open
		if ctx.ViewMode() == session.ModeIndex {
			return []types.Action{session.GotoCommand{N: ctx.IndexCursor() + 1}}, true
		}
		return []types.Action{session.NextCommand{}}, true
	}

	switch msg.String() {
	case "n":
		return []types.Action{session.NextCommand{}}, true

	case "p":
		return []types.Action{session.PrevCommand{}}, true

	case "j":
		return []types.Action{session.ScrollDownCommand{}}, true

	case "k":
		return []types.Action{session.ScrollUpCommand{}}, true

	case "f":
		return []types.Action{session.FirstCommand{}}, true

	case "l":
		return []types.Action{session.LastCommand{}}, true

	case "g":
		if ctx.SlideCount() == 0 {
			return nil, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeGoto}}, true

	case "s":
		return []types.Action{session.ToggleNotesCommand{}}, true

	case "N":
		if ctx.ViewMode() == session.ModeNotes {
			return []types.Action{types.OpenNotesPagerAction{}}, true
		}
		return nil, false

	case "i":
		return []types.Action{session.ToggleIndexCommand{}}, true

	case "h", "?":
		return []types.Action{session.ToggleHelpCommand{}}, true

	case "r":
		return []types.Action{session.RefreshCommand{}}, true

	case "q", "x":
		return []types.Action{session.QuitCommand{}}, true
	}

	return nil, false
}
