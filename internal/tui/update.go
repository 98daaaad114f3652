package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"souschef/internal/event"
	"souschef/internal/tui/keymap"
)

// Init starts the redraw ticker.
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update handles incoming messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progressBar.Width = min(msg.Width-4, 60)
		m.ready = true
		return m, nil

	case tickMsg:
		m.refresh()
		if m.banner != nil && time.Now().After(m.banner.expiresAt) {
			m.banner = nil
		}
		if m.quitting {
			return m, nil
		}
		return m, tick()

	case sessionEventMsg:
		return m.handleSessionEvent(msg.event)

	case deductionDoneMsg:
		m.refresh()
		if msg.err != nil {
			m.errorMessage = msg.err.Error()
		} else {
			m.errorMessage = ""
			m.showBanner(bannerCompletion, "Pantry updated", "Ingredients deducted from stock.")
		}
		return m, nil

	case errMsg:
		m.errorMessage = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleSessionEvent reacts to controller events forwarded by the app.
func (m Model) handleSessionEvent(e event.Event) (tea.Model, tea.Cmd) {
	m.refresh()

	switch e := e.(type) {
	case event.TimerCompletedEvent:
		m.showBanner(bannerTimer, "Timer done", e.Label)
		return m, ringBell

	case event.ReminderShownEvent:
		m.reminder = e.Message

	case event.StepChangedEvent:
		// Reminders are per step; a stale toast would mislead.
		m.reminder = ""
		m.errorMessage = ""

	case event.MilestoneReachedEvent:
		m.showBanner(bannerMilestone, e.Title, e.Message)

	case event.SessionCompletedEvent:
		m.showBanner(bannerCompletion, "Recipe complete!",
			"Every step done. Press D to deduct ingredients, q to finish.")
	}

	return m, nil
}

// handleKey dispatches a key press through the mode's bindings.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case keymap.ModeNote, keymap.ModeTimer, keymap.ModeEdit:
		return m.handleInputKey(msg)
	case keymap.ModeServings:
		return m.handleServingsKey(msg)
	case keymap.ModeConfirm:
		return m.handleConfirmKey(msg)
	case keymap.ModeHelp:
		return m.handleHelpKey(msg)
	default:
		return m.handleNormalKey(msg)
	}
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ok := m.keys.GetBinding(msg, keymap.ModeNormal)
	if !ok {
		return m, nil
	}

	switch cmd {
	case keymap.CmdNextStep:
		m.controller.Next()
	case keymap.CmdPrevStep:
		m.controller.Previous()
	case keymap.CmdToggleDone:
		m.controller.ToggleStepComplete()

	case keymap.CmdStartPauseTimer:
		m.toggleDetected()
	case keymap.CmdResetTimer:
		if err := m.controller.ResetDetectedTimer(); err != nil {
			m.errorMessage = err.Error()
		}
	case keymap.CmdEditTimer:
		if !m.snap.HasDetected {
			m.errorMessage = "no timer on this step"
			break
		}
		m.editInput.SetValue("")
		m.editInput.Focus()
		m.mode = keymap.ModeEdit

	case keymap.CmdAddTimer:
		m.timerInput.SetValue("")
		m.timerInput.Focus()
		m.mode = keymap.ModeTimer
	case keymap.CmdToggleTimer:
		m.toggleCustomByDigit(msg)
	case keymap.CmdRemoveTimer:
		m.removeLastCustom()

	case keymap.CmdToggleHandsFree:
		m.controller.SetHandsFree(!m.snap.AutoAdvance.Active)
	case keymap.CmdPausePacer:
		m.controller.TogglePacerPause()

	case keymap.CmdEditNote:
		m.noteInput.SetValue(m.currentStep().Note)
		m.noteInput.Focus()
		m.mode = keymap.ModeNote
	case keymap.CmdSetServings:
		m.servingIdx = servingIndex(m.snap.Multiplier)
		m.mode = keymap.ModeServings
	case keymap.CmdDeduct:
		return m.requestDeduction()

	case keymap.CmdToggleHelp:
		m.mode = keymap.ModeHelp
	case keymap.CmdQuit:
		m.quitting = true
		m.controller.Close()
		return m, tea.Quit
	}

	m.refresh()
	return m, nil
}

// toggleDetected starts or pauses the detected timer depending on its
// state.
func (m *Model) toggleDetected() {
	if !m.snap.HasDetected {
		m.errorMessage = "no timer on this step"
		return
	}
	var err error
	if m.snap.Detected.Running {
		err = m.controller.PauseDetectedTimer()
	} else {
		err = m.controller.StartDetectedTimer()
	}
	if err != nil {
		m.errorMessage = err.Error()
	}
}

// toggleCustomByDigit maps the 1-9 keys onto custom timers in display
// order.
func (m *Model) toggleCustomByDigit(msg tea.KeyMsg) {
	if len(msg.Runes) == 0 {
		return
	}
	idx := int(msg.Runes[0] - '1')
	if idx < 0 || idx >= len(m.snap.Custom) {
		return
	}
	if err := m.controller.ToggleCustomTimer(m.snap.Custom[idx].ID); err != nil {
		m.errorMessage = err.Error()
	}
}

func (m *Model) removeLastCustom() {
	if len(m.snap.Custom) == 0 {
		return
	}
	last := m.snap.Custom[len(m.snap.Custom)-1]
	if err := m.controller.RemoveCustomTimer(last.ID); err != nil {
		m.errorMessage = err.Error()
	}
}

// requestDeduction kicks off a pantry deduction, or asks for confirmation
// when one already happened this session.
func (m Model) requestDeduction() (tea.Model, tea.Cmd) {
	if m.snap.CompletedCount != len(m.snap.Steps) {
		m.errorMessage = "complete every step before deducting ingredients"
		return m, nil
	}
	if m.snap.HasDeducted {
		m.mode = keymap.ModeConfirm
		return m, nil
	}
	return m, deductCmd(m, false)
}

// deductCmd runs the gateway call off the Update loop.
func deductCmd(m Model, confirm bool) tea.Cmd {
	c := m.controller
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return deductionDoneMsg{err: c.RequestDeduction(ctx, confirm)}
	}
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, bound := m.keys.GetBinding(msg, m.mode)
	if bound {
		switch cmd {
		case keymap.CmdConfirm:
			return m.confirmInput()
		case keymap.CmdCancel:
			m.blurInputs()
			m.mode = keymap.ModeNormal
			return m, nil
		}
	}

	// Everything else goes to the focused widget.
	var teaCmd tea.Cmd
	switch m.mode {
	case keymap.ModeNote:
		m.noteInput, teaCmd = m.noteInput.Update(msg)
	case keymap.ModeTimer:
		m.timerInput, teaCmd = m.timerInput.Update(msg)
	case keymap.ModeEdit:
		m.editInput, teaCmd = m.editInput.Update(msg)
	}
	return m, teaCmd
}

// confirmInput applies the focused widget's value.
func (m Model) confirmInput() (tea.Model, tea.Cmd) {
	switch m.mode {
	case keymap.ModeNote:
		m.controller.SetNote(m.noteInput.Value())

	case keymap.ModeTimer:
		label, minutes, ok := parseTimerEntry(m.timerInput.Value())
		if !ok {
			m.errorMessage = "enter minutes first, e.g. \"5 pasta\""
			return m, nil
		}
		if _, err := m.controller.AddCustomTimer(label, minutes); err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}

	case keymap.ModeEdit:
		seconds, ok := parseDurationEntry(m.editInput.Value())
		if !ok {
			m.errorMessage = "enter a duration like \"8:30\" or \"12\""
			return m, nil
		}
		if err := m.controller.EditDetectedTimer(seconds); err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}
	}

	m.errorMessage = ""
	m.blurInputs()
	m.mode = keymap.ModeNormal
	m.refresh()
	return m, nil
}

func (m *Model) blurInputs() {
	m.noteInput.Blur()
	m.timerInput.Blur()
	m.editInput.Blur()
}

func (m Model) handleServingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ok := m.keys.GetBinding(msg, keymap.ModeServings)
	if !ok {
		return m, nil
	}

	options := servingOptions()
	switch cmd {
	case keymap.CmdNextStep:
		if m.servingIdx < len(options)-1 {
			m.servingIdx++
		}
	case keymap.CmdPrevStep:
		if m.servingIdx > 0 {
			m.servingIdx--
		}
	case keymap.CmdConfirm:
		if err := m.controller.SetServingMultiplier(options[m.servingIdx]); err != nil {
			m.errorMessage = err.Error()
		}
		m.mode = keymap.ModeNormal
		m.refresh()
	case keymap.CmdCancel:
		m.mode = keymap.ModeNormal
	}
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ok := m.keys.GetBinding(msg, keymap.ModeConfirm)
	if !ok {
		return m, nil
	}

	m.mode = keymap.ModeNormal
	if cmd == keymap.CmdConfirm {
		return m, deductCmd(m, true)
	}
	return m, nil
}

func (m Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ok := m.keys.GetBinding(msg, keymap.ModeHelp)
	if !ok {
		return m, nil
	}

	switch cmd {
	case keymap.CmdToggleHelp:
		m.mode = keymap.ModeNormal
	case keymap.CmdQuit:
		m.quitting = true
		m.controller.Close()
		return m, tea.Quit
	}
	return m, nil
}
