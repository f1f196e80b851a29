package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"termdeck/internal/ui/input/modes"
	"termdeck/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // Shared text input for text modes
}

func New() *Handler {
	ti := textinput.New()

	h := &Handler{
		currentMode: types.ModeNormal,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeGoto] = modes.NewGotoMode(h.textInput)

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var cmd tea.Cmd
	var allActions []types.Action

	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	// Handle mode changes
	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			if h.modes[h.currentMode] != nil {
				allActions = append(allActions, h.modes[h.currentMode].Exit(ctx)...)
			}

			h.currentMode = changeMode.Mode

			if h.modes[h.currentMode] != nil {
				allActions = append(allActions, h.modes[h.currentMode].Enter(ctx)...)
			}

			if h.isTextMode(h.currentMode) {
				cmd = textinput.Blink
			}
		} else {
			allActions = append(allActions, action)
		}
	}

	// If we're in a text mode and the mode handler didn't consume the key,
	// feed it to the text input
	if h.isTextMode(h.currentMode) && !consumed {
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
	}

	return allActions, cmd
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// TextInput returns the prompt input when a text mode is active, nil
// otherwise.
func (h *Handler) TextInput() *textinput.Model {
	if h.isTextMode(h.currentMode) {
		return h.textInput
	}
	return nil
}

func (h *Handler) Reset() {
	h.currentMode = types.ModeNormal
	h.textInput.Reset()
	h.textInput.Blur()
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeGoto
}
