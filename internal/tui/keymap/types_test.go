package keymap

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyBinding_Matches(t *testing.T) {
	tests := []struct {
		name    string
		binding KeyBinding
		msg     tea.KeyMsg
		want    bool
	}{
		{
			name:    "rune match",
			binding: KeyBinding{KeyType: tea.KeyRunes, Rune: 'n'},
			msg:     runeMsg('n'),
			want:    true,
		},
		{
			name:    "rune mismatch",
			binding: KeyBinding{KeyType: tea.KeyRunes, Rune: 'n'},
			msg:     runeMsg('p'),
			want:    false,
		},
		{
			name:    "special key match",
			binding: KeyBinding{KeyType: tea.KeyEnter},
			msg:     tea.KeyMsg{Type: tea.KeyEnter},
			want:    true,
		},
		{
			name:    "special key vs rune",
			binding: KeyBinding{KeyType: tea.KeyEnter},
			msg:     runeMsg('x'),
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.binding.Matches(tt.msg); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKeymap_GetBinding(t *testing.T) {
	km := Default()

	cmd, ok := km.GetBinding(runeMsg('n'), ModeNormal)
	if !ok || cmd != CmdNextStep {
		t.Errorf("GetBinding(n, normal) = %q, %v", cmd, ok)
	}

	cmd, ok = km.GetBinding(tea.KeyMsg{Type: tea.KeyEsc}, ModeNote)
	if !ok || cmd != CmdCancel {
		t.Errorf("GetBinding(esc, note) = %q, %v", cmd, ok)
	}

	if _, ok := km.GetBinding(runeMsg('Z'), ModeNormal); ok {
		t.Error("unbound key reported a command")
	}

	if _, ok := km.GetBinding(runeMsg('n'), Mode("bogus")); ok {
		t.Error("unknown mode reported a command")
	}
}

func TestKeymap_EveryModeHasQuitPath(t *testing.T) {
	km := Default()
	for mode, mb := range km.Modes {
		found := false
		for _, b := range mb.Bindings {
			if b.Command == CmdQuit || b.Command == CmdCancel || b.Command == CmdToggleHelp {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("mode %s has no way back out", mode)
		}
	}
}

func TestKeyBinding_String(t *testing.T) {
	if got := (KeyBinding{KeyType: tea.KeyRunes, Rune: ' '}).String(); got != "space" {
		t.Errorf("String() = %q, want space", got)
	}
	if got := (KeyBinding{KeyType: tea.KeyRunes, Rune: 'f'}).String(); got != "f" {
		t.Errorf("String() = %q, want f", got)
	}
}
