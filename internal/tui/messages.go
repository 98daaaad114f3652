package tui

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"souschef/internal/event"
)

// tickMsg is sent periodically to refresh timer and countdown displays
type tickMsg time.Time

// sessionEventMsg carries a session bus event into the Update loop. The
// bus publishes synchronously under the controller's mutex, so the app
// forwards events through program.Send instead of handling them inline.
type sessionEventMsg struct {
	event event.Event
}

// errMsg wraps an error for display in the UI
type errMsg struct {
	err error
}

// deductionDoneMsg is sent when an async pantry deduction finishes
type deductionDoneMsg struct {
	err error
}

// tick returns a command that sends a tickMsg after a short delay.
// This drives the periodic redraw of countdowns; the session's own clock
// advances them independently.
func tick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// ringBell sounds the terminal bell. Written to stderr so it bypasses the
// alt-screen renderer.
func ringBell() tea.Msg {
	fmt.Fprint(os.Stderr, "\a")
	return nil
}
