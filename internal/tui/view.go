package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"souschef/internal/recipe"
	"souschef/internal/tui/keymap"
	"souschef/internal/tui/styles"
)

// View renders the whole screen
func (m Model) View() string {
	if m.quitting {
		return "Happy cooking!\n"
	}
	if !m.ready {
		return "Loading..."
	}
	if m.mode == keymap.ModeHelp {
		return m.renderHelp()
	}

	sections := []string{
		m.renderHeader(),
		m.renderStep(),
		m.renderTimers(),
	}
	if list := m.renderStepList(); list != "" {
		sections = append(sections, list)
	}
	if m.errorMessage != "" {
		sections = append(sections, styles.Error.Render(m.errorMessage))
	}
	sections = append(sections, m.renderFooter())

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if m.banner != nil {
		return m.renderBanner() + "\n" + body
	}
	return body
}

func (m Model) renderHeader() string {
	title := styles.Title.Render(m.snap.Recipe)

	pct := 0.0
	if len(m.snap.Steps) > 0 {
		pct = float64(m.snap.CompletedCount) / float64(len(m.snap.Steps))
	}
	bar := m.progressBar.ViewAs(pct)

	meta := styles.Subtitle.Render(fmt.Sprintf("%d/%d steps · %gx servings",
		m.snap.CompletedCount, len(m.snap.Steps), m.snap.Multiplier))

	badges := m.renderPacerBadge()
	line := title
	if badges != "" {
		line = lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", badges)
	}

	return lipgloss.JoinVertical(lipgloss.Left, line, bar, meta)
}

// renderPacerBadge shows the hands-free countdown state.
func (m Model) renderPacerBadge() string {
	aa := m.snap.AutoAdvance
	if !aa.Active {
		return ""
	}
	if aa.Paused {
		return styles.TimerPaused.Render("hands-free paused")
	}
	if m.snap.HasDetected {
		return styles.Muted.Render("hands-free: waiting on timer")
	}
	return styles.CountdownBadge.Render(
		fmt.Sprintf("auto-advance in %ds", aa.CountdownRemaining))
}

func (m Model) renderStep() string {
	step := m.currentStep()

	header := fmt.Sprintf("Step %d of %d", step.Index+1, len(m.snap.Steps))
	if step.Critical {
		header += styles.Warning.Render("  ⚠ critical")
	}
	if step.Completed {
		header += styles.Secondary.Render("  ✓ done")
	}

	lines := []string{styles.Subtitle.Render(header), "", styles.Text.Render(step.Instruction)}

	if m.reminder != "" {
		lines = append(lines, "", styles.Reminder.Render("💡 "+m.reminder))
	}
	if step.Note != "" {
		lines = append(lines, "", styles.Muted.Render("note: "+step.Note))
	}

	switch m.mode {
	case keymap.ModeNote:
		lines = append(lines, "", "Note: "+m.noteInput.View())
	case keymap.ModeEdit:
		lines = append(lines, "", "New duration: "+m.editInput.View())
	}

	box := styles.StepBox
	if step.Critical {
		box = styles.CriticalStepBox
	}
	if m.width > 8 {
		box = box.Width(min(m.width-2, 80))
	}
	return box.Render(strings.Join(lines, "\n"))
}

func (m Model) renderTimers() string {
	var lines []string

	if m.snap.HasDetected {
		d := m.snap.Detected
		style := styles.TimerPaused
		label := "paused"
		switch {
		case d.RemainingSeconds == 0:
			style, label = styles.TimerDone, "done"
		case d.Running:
			style, label = styles.TimerRunning, "running"
		}
		lines = append(lines, fmt.Sprintf("⏱  %s  %s",
			style.Render(recipe.FormatClock(d.RemainingSeconds)),
			styles.Muted.Render("step timer · "+label)))
	}

	for i, t := range m.snap.Custom {
		style := styles.TimerPaused
		switch {
		case t.RemainingSeconds == 0:
			style = styles.TimerDone
		case t.Running:
			style = styles.TimerRunning
		}
		lines = append(lines, fmt.Sprintf("[%d] %s  %s",
			i+1,
			style.Render(recipe.FormatClock(t.RemainingSeconds)),
			styles.Muted.Render(t.Label)))
	}

	if m.mode == keymap.ModeTimer {
		lines = append(lines, "New timer: "+m.timerInput.View())
	}
	if m.mode == keymap.ModeServings {
		lines = append(lines, m.renderServingPicker())
	}

	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderServingPicker() string {
	var parts []string
	for i, opt := range servingOptions() {
		text := fmt.Sprintf("%gx", opt)
		if i == m.servingIdx {
			parts = append(parts, styles.Banner.Render(text))
		} else {
			parts = append(parts, styles.Muted.Render(text))
		}
	}
	return "Servings: " + strings.Join(parts, " ")
}

func (m Model) renderStepList() string {
	if m.height < 20 || len(m.snap.Steps) < 2 {
		return ""
	}

	var lines []string
	for _, s := range m.snap.Steps {
		marker := "  "
		style := styles.StepPending
		switch {
		case s.Index == m.snap.Current:
			marker = "▶ "
			style = styles.StepCurrent
		case s.Completed:
			marker = "✓ "
			style = styles.StepDone
		}
		text := s.Instruction
		if m.width > 10 && len(text) > m.width-6 {
			text = text[:m.width-7] + "…"
		}
		lines = append(lines, marker+style.Render(text))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderBanner() string {
	style := styles.Banner
	if m.banner.kind == bannerCompletion {
		style = styles.CompletionBanner
	}
	text := m.banner.title
	if m.banner.message != "" {
		text += "  " + m.banner.message
	}
	return style.Render(text)
}

func (m Model) renderFooter() string {
	switch m.mode {
	case keymap.ModeNote, keymap.ModeTimer, keymap.ModeEdit:
		return styles.HelpBar.Render("enter confirm · esc cancel")
	case keymap.ModeServings:
		return styles.HelpBar.Render("←/→ choose · enter apply · esc cancel")
	case keymap.ModeConfirm:
		return styles.Warning.Render("Ingredients already deducted once. Deduct again? (y/n)")
	}

	pairs := []struct{ key, desc string }{
		{"←/→", "steps"},
		{"enter", "done"},
		{"space", "timer"},
		{"t", "+timer"},
		{"f", "hands-free"},
		{"s", "servings"},
		{"D", "deduct"},
		{"?", "help"},
		{"q", "quit"},
	}
	var parts []string
	for _, p := range pairs {
		parts = append(parts, styles.HelpKey.Render(p.key)+" "+styles.HelpBar.Render(p.desc))
	}
	return strings.Join(parts, styles.HelpBar.Render(" · "))
}

func (m Model) renderHelp() string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("souschef keys") + "\n\n")

	var category string
	for _, b := range m.keys.GetModeBindings(keymap.ModeNormal) {
		if b.Category != category {
			category = b.Category
			sb.WriteString("\n" + styles.Subtitle.Render(category) + "\n")
		}
		sb.WriteString(fmt.Sprintf("  %s  %s\n",
			styles.HelpKey.Render(fmt.Sprintf("%-7s", b.String())),
			styles.HelpBar.Render(b.Description)))
	}

	sb.WriteString("\n" + styles.HelpBar.Render("? or esc to close"))
	return sb.String()
}
