package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"souschef/internal/cooking"
	"souschef/internal/event"
	"souschef/internal/recipe"
	"souschef/internal/tui/keymap"
)

func testModel(t *testing.T) Model {
	t.Helper()
	r := &recipe.Recipe{
		Name:     "Test Dish",
		Servings: 2,
		Ingredients: []recipe.Ingredient{
			{Name: "rice", Quantity: 200, Unit: "g"},
		},
		Steps: []string{
			"Rinse the rice",
			"Simmer for 12 minutes",
			"Serve",
		},
	}
	c, err := cooking.NewController(r, event.NewBus(), cooking.Options{
		TickInterval: time.Hour,
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(c.Close)
	c.Start()

	m := NewModel(c, ModelOptions{})
	m.ready = true
	m.width = 100
	m.height = 40
	return m
}

func press(t *testing.T, m Model, r rune) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return next.(Model)
}

func TestUpdate_StepNavigation(t *testing.T) {
	m := testModel(t)

	m = press(t, m, 'n')
	if m.snap.Current != 1 {
		t.Errorf("Current = %d, want 1 after 'n'", m.snap.Current)
	}

	m = press(t, m, 'p')
	if m.snap.Current != 0 {
		t.Errorf("Current = %d, want 0 after 'p'", m.snap.Current)
	}
}

func TestUpdate_ToggleDone(t *testing.T) {
	m := testModel(t)

	m = press(t, m, 'd')
	if !m.snap.Steps[0].Completed {
		t.Error("step 0 not completed after 'd'")
	}
	if m.snap.Current != 1 {
		t.Errorf("Current = %d, want advanced to 1", m.snap.Current)
	}
}

func TestUpdate_HandsFreeToggle(t *testing.T) {
	m := testModel(t)

	m = press(t, m, 'f')
	if !m.snap.AutoAdvance.Active {
		t.Error("hands-free not active after 'f'")
	}
	m = press(t, m, 'f')
	if m.snap.AutoAdvance.Active {
		t.Error("hands-free still active after second 'f'")
	}
}

func TestUpdate_TimerInputFlow(t *testing.T) {
	m := testModel(t)

	m = press(t, m, 't')
	if m.mode != keymap.ModeTimer {
		t.Fatalf("mode = %s, want timer entry", m.mode)
	}

	for _, r := range "5 pasta" {
		m = press(t, m, r)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	if m.mode != keymap.ModeNormal {
		t.Errorf("mode = %s, want normal after confirm", m.mode)
	}
	if len(m.snap.Custom) != 1 || m.snap.Custom[0].Label != "pasta" {
		t.Fatalf("custom timers = %+v, want one labeled pasta", m.snap.Custom)
	}
	if m.snap.Custom[0].TotalSeconds != 300 {
		t.Errorf("TotalSeconds = %d, want 300", m.snap.Custom[0].TotalSeconds)
	}
}

func TestUpdate_TimerInputRejectsGarbage(t *testing.T) {
	m := testModel(t)

	m = press(t, m, 't')
	for _, r := range "soon" {
		m = press(t, m, r)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	if m.mode != keymap.ModeTimer {
		t.Error("invalid entry should keep the input open")
	}
	if m.errorMessage == "" {
		t.Error("invalid entry should surface an error")
	}
	if len(m.snap.Custom) != 0 {
		t.Error("no timer should be added")
	}
}

func TestUpdate_NoteFlow(t *testing.T) {
	m := testModel(t)

	m = press(t, m, 'o')
	if m.mode != keymap.ModeNote {
		t.Fatalf("mode = %s, want note entry", m.mode)
	}
	for _, r := range "less salt" {
		m = press(t, m, r)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	if got := m.snap.Steps[0].Note; got != "less salt" {
		t.Errorf("Note = %q, want %q", got, "less salt")
	}
}

func TestUpdate_EscapeCancelsInput(t *testing.T) {
	m := testModel(t)

	m = press(t, m, 'o')
	for _, r := range "scratch this" {
		m = press(t, m, r)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)

	if m.mode != keymap.ModeNormal {
		t.Errorf("mode = %s, want normal after esc", m.mode)
	}
	if got := m.snap.Steps[0].Note; got != "" {
		t.Errorf("Note = %q, canceled input must not apply", got)
	}
}

func TestUpdate_ServingsFlow(t *testing.T) {
	m := testModel(t)

	m = press(t, m, 's')
	if m.mode != keymap.ModeServings {
		t.Fatalf("mode = %s, want servings", m.mode)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	if m.snap.Multiplier != 1.5 {
		t.Errorf("Multiplier = %v, want 1.5", m.snap.Multiplier)
	}
	if m.mode != keymap.ModeNormal {
		t.Errorf("mode = %s, want normal", m.mode)
	}
}

func TestUpdate_SessionEvents(t *testing.T) {
	m := testModel(t)

	next, _ := m.Update(sessionEventMsg{
		event: event.NewMilestoneReachedEvent("halfway", "Halfway there!", "2 of 4.", 2, 4),
	})
	m = next.(Model)
	if m.banner == nil || m.banner.title != "Halfway there!" {
		t.Fatalf("banner = %+v, want the milestone", m.banner)
	}

	next, _ = m.Update(sessionEventMsg{
		event: event.NewReminderShownEvent(0, "boil", "Watch for boil-over."),
	})
	m = next.(Model)
	if m.reminder != "Watch for boil-over." {
		t.Errorf("reminder = %q", m.reminder)
	}

	// Changing steps clears the toast.
	next, _ = m.Update(sessionEventMsg{event: event.NewStepChangedEvent(0, 1, false)})
	m = next.(Model)
	if m.reminder != "" {
		t.Errorf("reminder = %q, want cleared on step change", m.reminder)
	}
}

func TestUpdate_TickExpiresBanner(t *testing.T) {
	m := testModel(t)
	m.showBanner(bannerTimer, "Timer done", "pasta")
	m.banner.expiresAt = time.Now().Add(-time.Second)

	next, _ := m.Update(tickMsg(time.Now()))
	m = next.(Model)
	if m.banner != nil {
		t.Error("expired banner still showing")
	}
}

func TestUpdate_DeductBeforeCompletion(t *testing.T) {
	m := testModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'D'}})
	m = next.(Model)
	if cmd != nil {
		t.Error("no deduction command should run before completion")
	}
	if m.errorMessage == "" {
		t.Error("expected an error message")
	}
}

func TestView_RendersCurrentStep(t *testing.T) {
	m := testModel(t)

	out := m.View()
	if !strings.Contains(out, "Rinse the rice") {
		t.Error("view missing current step instruction")
	}
	if !strings.Contains(out, "Test Dish") {
		t.Error("view missing recipe title")
	}
}
