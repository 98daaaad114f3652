package keymap

import tea "github.com/charmbracelet/bubbletea"

// Default returns the default key bindings.
func Default() *Keymap {
	return &Keymap{
		Name: "default",
		Modes: map[Mode]*ModeBindings{
			ModeNormal:   defaultNormalBindings(),
			ModeNote:     defaultInputBindings(ModeNote),
			ModeTimer:    defaultInputBindings(ModeTimer),
			ModeEdit:     defaultInputBindings(ModeEdit),
			ModeServings: defaultServingsBindings(),
			ModeConfirm:  defaultConfirmBindings(),
			ModeHelp:     defaultHelpBindings(),
		},
	}
}

func defaultNormalBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeNormal,
		Bindings: []KeyBinding{
			// Step navigation
			{KeyType: tea.KeyRight, Command: CmdNextStep, Description: "Next step", Category: "Steps"},
			{KeyType: tea.KeyRunes, Rune: 'l', Command: CmdNextStep, Description: "Next step", Category: "Steps"},
			{KeyType: tea.KeyRunes, Rune: 'n', Command: CmdNextStep, Description: "Next step", Category: "Steps"},
			{KeyType: tea.KeyLeft, Command: CmdPrevStep, Description: "Previous step", Category: "Steps"},
			{KeyType: tea.KeyRunes, Rune: 'h', Command: CmdPrevStep, Description: "Previous step", Category: "Steps"},
			{KeyType: tea.KeyRunes, Rune: 'p', Command: CmdPrevStep, Description: "Previous step", Category: "Steps"},
			{KeyType: tea.KeyEnter, Command: CmdToggleDone, Description: "Mark step done", Category: "Steps"},
			{KeyType: tea.KeyRunes, Rune: 'd', Command: CmdToggleDone, Description: "Mark step done", Category: "Steps"},

			// Detected timer
			{KeyType: tea.KeyRunes, Rune: ' ', Command: CmdStartPauseTimer, Description: "Start/pause timer", Category: "Timers"},
			{KeyType: tea.KeyRunes, Rune: 'r', Command: CmdResetTimer, Description: "Reset timer", Category: "Timers"},
			{KeyType: tea.KeyRunes, Rune: 'e', Command: CmdEditTimer, Description: "Edit timer duration", Category: "Timers"},

			// Custom timers
			{KeyType: tea.KeyRunes, Rune: 't', Command: CmdAddTimer, Description: "Add custom timer", Category: "Timers"},
			{KeyType: tea.KeyRunes, Rune: '1', Command: CmdToggleTimer, Description: "Toggle timer 1", Category: "Timers"},
			{KeyType: tea.KeyRunes, Rune: '2', Command: CmdToggleTimer, Description: "Toggle timer 2", Category: "Timers"},
			{KeyType: tea.KeyRunes, Rune: '3', Command: CmdToggleTimer, Description: "Toggle timer 3", Category: "Timers"},
			{KeyType: tea.KeyRunes, Rune: '4', Command: CmdToggleTimer, Description: "Toggle timer 4", Category: "Timers"},
			{KeyType: tea.KeyRunes, Rune: '5', Command: CmdToggleTimer, Description: "Toggle timer 5", Category: "Timers"},
			{KeyType: tea.KeyRunes, Rune: '6', Command: CmdToggleTimer, Description: "Toggle timer 6", Category: "Timers"},
			{KeyType: tea.KeyRunes, Rune: '7', Command: CmdToggleTimer, Description: "Toggle timer 7", Category: "Timers"},
			{KeyType: tea.KeyRunes, Rune: '8', Command: CmdToggleTimer, Description: "Toggle timer 8", Category: "Timers"},
			{KeyType: tea.KeyRunes, Rune: '9', Command: CmdToggleTimer, Description: "Toggle timer 9", Category: "Timers"},
			{KeyType: tea.KeyRunes, Rune: 'x', Command: CmdRemoveTimer, Description: "Remove last timer", Category: "Timers"},

			// Hands-free pacing
			{KeyType: tea.KeyRunes, Rune: 'f', Command: CmdToggleHandsFree, Description: "Toggle hands-free", Category: "Pacing"},
			{KeyType: tea.KeyRunes, Rune: 'P', Command: CmdPausePacer, Description: "Pause auto-advance", Category: "Pacing"},

			// Session
			{KeyType: tea.KeyRunes, Rune: 'o', Command: CmdEditNote, Description: "Edit step note", Category: "Session"},
			{KeyType: tea.KeyRunes, Rune: 's', Command: CmdSetServings, Description: "Set servings", Category: "Session"},
			{KeyType: tea.KeyRunes, Rune: 'D', Command: CmdDeduct, Description: "Deduct ingredients", Category: "Session"},
			{KeyType: tea.KeyRunes, Rune: '?', Command: CmdToggleHelp, Description: "Toggle help", Category: "Session"},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "Quit", Category: "Session"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Session"},
		},
	}
}

// defaultInputBindings covers every text-entry mode: the text input widget
// consumes printable keys, so only confirm and cancel are bound here.
func defaultInputBindings(mode Mode) *ModeBindings {
	return &ModeBindings{
		Mode: mode,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEnter, Command: CmdConfirm, Description: "Confirm", Category: "Input"},
			{KeyType: tea.KeyEsc, Command: CmdCancel, Description: "Cancel", Category: "Input"},
			{KeyType: tea.KeyCtrlC, Command: CmdCancel, Description: "Cancel", Category: "Input"},
		},
	}
}

func defaultServingsBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeServings,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyRight, Command: CmdNextStep, Description: "Next option", Category: "Servings"},
			{KeyType: tea.KeyLeft, Command: CmdPrevStep, Description: "Previous option", Category: "Servings"},
			{KeyType: tea.KeyEnter, Command: CmdConfirm, Description: "Apply", Category: "Servings"},
			{KeyType: tea.KeyEsc, Command: CmdCancel, Description: "Cancel", Category: "Servings"},
		},
	}
}

func defaultConfirmBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeConfirm,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyRunes, Rune: 'y', Command: CmdConfirm, Description: "Confirm", Category: "Confirm"},
			{KeyType: tea.KeyEnter, Command: CmdConfirm, Description: "Confirm", Category: "Confirm"},
			{KeyType: tea.KeyRunes, Rune: 'n', Command: CmdCancel, Description: "Cancel", Category: "Confirm"},
			{KeyType: tea.KeyEsc, Command: CmdCancel, Description: "Cancel", Category: "Confirm"},
		},
	}
}

func defaultHelpBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeHelp,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyRunes, Rune: '?', Command: CmdToggleHelp, Description: "Close help", Category: "Help"},
			{KeyType: tea.KeyEsc, Command: CmdToggleHelp, Description: "Close help", Category: "Help"},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "Quit", Category: "Help"},
		},
	}
}
