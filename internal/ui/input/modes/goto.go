package modes

import (
	"strconv"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"termdeck/internal/session"
	"termdeck/internal/ui/input/types"
)

// GotoMode collects a slide number and submits it as a jump.
type GotoMode struct {
	textInput *textinput.Model
}

func NewGotoMode(ti *textinput.Model) *GotoMode {
	return &GotoMode{textInput: ti}
}

func (m *GotoMode) Name() string {
	return "goto"
}

func (m *GotoMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Reset()
		m.textInput.Focus()
		m.textInput.Prompt = "go to slide: "
		m.textInput.CharLimit = 4
	}
	return nil
}

func (m *GotoMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
		m.textInput.Reset()
	}
	return nil
}

func (m *GotoMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{session.QuitCommand{}}, true
	case "esc":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "enter":
		text := ""
		if m.textInput != nil {
			text = m.textInput.Value()
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			// Nothing usable typed; just close the prompt.
			return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
		}
		return []types.Action{
			session.GotoCommand{N: n},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	default:
		// Only digits may reach the text input; swallow other runes.
		if msg.Type == tea.KeyRunes {
			for _, r := range msg.Runes {
				if !unicode.IsDigit(r) {
					return nil, true
				}
			}
		}
		// Let the main handler update the text input
		return nil, false
	}
}
