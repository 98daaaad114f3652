package cooking

// DefaultAutoAdvanceSeconds is the fixed countdown the pacer resets to on
// activation, on any step change, and after each automatic advance. The
// value is deliberately constant for a session; it does not scale with step
// length or detected duration.
const DefaultAutoAdvanceSeconds = 10

// AutoAdvanceState is a snapshot of the pacer for display.
type AutoAdvanceState struct {
	Active             bool
	Paused             bool
	CountdownRemaining int
}

// Pacer is the hands-free auto-advance scheduler. While the host signals a
// hands-free display mode it counts down on the shared clock and requests a
// step advance at zero. It models a kitchen display: the cook glances at a
// countdown badge instead of tapping "next", keeps a one-tap pause
// override, and is disarmed whenever a real timer needs attention.
//
// Thread Safety: like the Engine, the Pacer is serialized by the session
// controller and is not internally locked.
type Pacer struct {
	countdownStart int
	active         bool
	paused         bool
	countdown      int
}

// NewPacer creates a pacer with the given countdown duration in seconds.
// Non-positive values fall back to DefaultAutoAdvanceSeconds.
func NewPacer(countdownSeconds int) *Pacer {
	if countdownSeconds <= 0 {
		countdownSeconds = DefaultAutoAdvanceSeconds
	}
	return &Pacer{
		countdownStart: countdownSeconds,
		countdown:      countdownSeconds,
	}
}

// Activate arms the pacer: countdown restarts from the full duration and
// any previous pause is cleared.
func (p *Pacer) Activate() {
	p.active = true
	p.paused = false
	p.countdown = p.countdownStart
}

// Deactivate disarms the pacer. Idempotent.
func (p *Pacer) Deactivate() {
	p.active = false
}

// TogglePause flips the pause state. It has no effect while the pacer is
// inactive.
func (p *Pacer) TogglePause() {
	if !p.active {
		return
	}
	p.paused = !p.paused
}

// ResetCountdown restarts the countdown from the full duration. Called on
// every step change, manual or automatic.
func (p *Pacer) ResetCountdown() {
	p.countdown = p.countdownStart
}

// Eligible is the guard predicate evaluated each tick: the countdown only
// decrements while the pacer is active and unpaused, the session is not on
// its final step, and no detected timer is present for the current step.
func (p *Pacer) Eligible(detectedPresent, finalStep bool) bool {
	return p.active && !p.paused && !finalStep && !detectedPresent
}

// Tick decrements the countdown when eligible. It reports true when the
// countdown reached zero, in which case the countdown has already been
// reset and the caller should advance the session by one step.
func (p *Pacer) Tick(detectedPresent, finalStep bool) (advance bool) {
	if !p.Eligible(detectedPresent, finalStep) {
		return false
	}

	p.countdown--
	if p.countdown > 0 {
		return false
	}

	p.countdown = p.countdownStart
	return true
}

// State returns a display snapshot of the pacer.
func (p *Pacer) State() AutoAdvanceState {
	return AutoAdvanceState{
		Active:             p.active,
		Paused:             p.paused,
		CountdownRemaining: p.countdown,
	}
}
