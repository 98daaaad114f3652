// Package keymap provides key binding definitions and lookup for the TUI.
// Bindings are declared per input mode so the Update loop stays a simple
// command dispatch.
package keymap

import tea "github.com/charmbracelet/bubbletea"

// Mode represents the current input mode of the TUI.
// Different modes have different key bindings active.
type Mode string

const (
	ModeNormal   Mode = "normal"   // Default cooking view
	ModeNote     Mode = "note"     // Typing a step note
	ModeTimer    Mode = "timer"    // Entering a custom timer duration
	ModeEdit     Mode = "edit"     // Editing the detected timer duration
	ModeServings Mode = "servings" // Picking a serving multiplier
	ModeConfirm  Mode = "confirm"  // Confirming a repeat pantry deduction
	ModeHelp     Mode = "help"     // Full help overlay
)

// Command represents a named action that can be triggered by a key binding.
type Command string

// Normal mode commands
const (
	// Step navigation
	CmdNextStep   Command = "next_step"
	CmdPrevStep   Command = "prev_step"
	CmdToggleDone Command = "toggle_done"

	// Detected timer
	CmdStartPauseTimer Command = "start_pause_timer"
	CmdResetTimer      Command = "reset_timer"
	CmdEditTimer       Command = "edit_timer"

	// Custom timers
	CmdAddTimer    Command = "add_timer"
	CmdToggleTimer Command = "toggle_timer" // 1-9 keys
	CmdRemoveTimer Command = "remove_timer"

	// Hands-free pacing
	CmdToggleHandsFree Command = "toggle_hands_free"
	CmdPausePacer      Command = "pause_pacer"

	// Session
	CmdEditNote    Command = "edit_note"
	CmdSetServings Command = "set_servings"
	CmdDeduct      Command = "deduct"
	CmdToggleHelp  Command = "toggle_help"
	CmdQuit        Command = "quit"
)

// Input mode commands
const (
	CmdConfirm Command = "confirm"
	CmdCancel  Command = "cancel"
)

// KeyBinding represents a single key binding configuration.
type KeyBinding struct {
	// KeyType is the key type; use tea.KeyRunes with Rune for characters.
	KeyType tea.KeyType

	// Rune is the character for rune-based keys.
	Rune rune

	// Command is the action to execute when this binding is triggered.
	Command Command

	// Description is a human-readable description for help display.
	Description string

	// Category groups related bindings together in help display.
	Category string
}

// Matches checks if a tea.KeyMsg matches this binding.
func (kb KeyBinding) Matches(msg tea.KeyMsg) bool {
	if kb.KeyType != tea.KeyRunes {
		return msg.Type == kb.KeyType
	}
	if msg.Type != tea.KeyRunes || len(msg.Runes) == 0 {
		return false
	}
	return msg.Runes[0] == kb.Rune
}

// String returns a human-readable representation of the key binding.
func (kb KeyBinding) String() string {
	if kb.KeyType != tea.KeyRunes {
		return kb.KeyType.String()
	}
	if kb.Rune == ' ' {
		return "space"
	}
	return string(kb.Rune)
}

// ModeBindings holds all key bindings for a specific mode.
type ModeBindings struct {
	Mode     Mode
	Bindings []KeyBinding
}

// GetBinding looks up a command for a key in this mode.
func (mb *ModeBindings) GetBinding(msg tea.KeyMsg) (Command, bool) {
	for _, binding := range mb.Bindings {
		if binding.Matches(msg) {
			return binding.Command, true
		}
	}
	return "", false
}

// Keymap contains all key bindings organized by mode.
type Keymap struct {
	Name  string
	Modes map[Mode]*ModeBindings
}

// GetBinding looks up a command for a key in a specific mode.
func (km *Keymap) GetBinding(msg tea.KeyMsg, mode Mode) (Command, bool) {
	mb, ok := km.Modes[mode]
	if !ok {
		return "", false
	}
	return mb.GetBinding(msg)
}

// GetModeBindings returns all bindings for a specific mode.
func (km *Keymap) GetModeBindings(mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}
	return mb.Bindings
}
