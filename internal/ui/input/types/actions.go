package types

// ChangeModeAction switches the input mode. The input handler consumes
// these itself; they never reach the model.
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// OpenNotesPagerAction asks the model to open the current slide's speaker
// notes in the external pager.
type OpenNotesPagerAction struct{}

func (a OpenNotesPagerAction) Type() string { return "open_notes_pager" }
