package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"

	"souschef/internal/cooking"
	"souschef/internal/recipe"
	"souschef/internal/tui/keymap"
)

// bannerKind selects the banner's styling.
type bannerKind int

const (
	bannerMilestone bannerKind = iota
	bannerCompletion
	bannerTimer
)

// banner is a transient overlay. A new banner replaces an unshown one;
// nothing queues.
type banner struct {
	kind      bannerKind
	title     string
	message   string
	expiresAt time.Time
}

// Model holds the TUI application state
type Model struct {
	// Core components
	controller *cooking.Controller
	keys       *keymap.Keymap

	// Session view, refreshed from the controller on every message
	snap cooking.Snapshot

	// UI state
	mode         keymap.Mode
	width        int
	height       int
	ready        bool
	quitting     bool
	errorMessage string

	// Transient surfaces
	banner   *banner
	reminder string

	// Input widgets
	noteInput  textinput.Model
	timerInput textinput.Model
	editInput  textinput.Model
	servingIdx int

	// Rendering helpers
	progressBar    progress.Model
	bannerDuration time.Duration
}

// ModelOptions tunes display behavior.
type ModelOptions struct {
	// BannerDuration is how long milestone and completion banners stay
	// up. Zero means 4 seconds.
	BannerDuration time.Duration
}

// NewModel creates a new TUI model bound to a running session controller.
func NewModel(c *cooking.Controller, opts ModelOptions) Model {
	if opts.BannerDuration <= 0 {
		opts.BannerDuration = 4 * time.Second
	}

	note := textinput.New()
	note.Placeholder = "note for this step"
	note.CharLimit = 200

	timer := textinput.New()
	timer.Placeholder = "minutes [label]  e.g. \"5 pasta\""
	timer.CharLimit = 40

	edit := textinput.New()
	edit.Placeholder = "new duration  e.g. \"8:30\" or \"12\""
	edit.CharLimit = 10

	return Model{
		controller:     c,
		keys:           keymap.Default(),
		snap:           c.Snapshot(),
		mode:           keymap.ModeNormal,
		noteInput:      note,
		timerInput:     timer,
		editInput:      edit,
		progressBar:    progress.New(progress.WithDefaultGradient()),
		bannerDuration: opts.BannerDuration,
	}
}

// refresh pulls a fresh session snapshot.
func (m *Model) refresh() {
	m.snap = m.controller.Snapshot()
}

// currentStep returns the step under the cursor.
func (m Model) currentStep() cooking.StepState {
	return m.snap.Steps[m.snap.Current]
}

// showBanner replaces any pending banner.
func (m *Model) showBanner(kind bannerKind, title, message string) {
	m.banner = &banner{
		kind:      kind,
		title:     title,
		message:   message,
		expiresAt: time.Now().Add(m.bannerDuration),
	}
}

// servingOptions mirrors the supported multiplier set.
func servingOptions() []float64 {
	return recipe.ServingMultipliers
}

// servingIndex finds the option index for the session's current
// multiplier.
func servingIndex(multiplier float64) int {
	for i, m := range servingOptions() {
		if m == multiplier {
			return i
		}
	}
	return 1 // 1x
}

// parseTimerEntry parses custom timer input: leading whole minutes, with
// everything after the first space as an optional label.
func parseTimerEntry(input string) (label string, minutes int, ok bool) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return "", 0, false
	}
	minutes, err := strconv.Atoi(fields[0])
	if err != nil || minutes <= 0 {
		return "", 0, false
	}
	return strings.Join(fields[1:], " "), minutes, true
}

// parseDurationEntry parses detected-timer edits: "m:ss" or whole
// minutes.
func parseDurationEntry(input string) (seconds int, ok bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, false
	}

	if before, after, found := strings.Cut(input, ":"); found {
		mins, err1 := strconv.Atoi(before)
		secs, err2 := strconv.Atoi(after)
		if err1 != nil || err2 != nil || mins < 0 || secs < 0 || secs > 59 {
			return 0, false
		}
		total := mins*60 + secs
		return total, total > 0
	}

	mins, err := strconv.Atoi(input)
	if err != nil || mins <= 0 {
		return 0, false
	}
	return mins * 60, true
}
