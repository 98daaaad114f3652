package cooking

import (
	"fmt"

	"github.com/google/uuid"

	"souschef/internal/errors"
	"souschef/internal/event"
	"souschef/internal/logging"
	"souschef/internal/recipe"
)

// DetectedTimer is the zero-or-one timer bound to the current step, derived
// from the step's instruction text. It is replaced, never merged, whenever
// the step changes.
type DetectedTimer struct {
	TotalSeconds     int
	RemainingSeconds int
	Running          bool
	Step             int // zero-based step the timer is bound to
}

// CustomTimer is a user-created timer. It is unbound to any step lifecycle
// and survives navigation until explicitly removed or the session ends.
type CustomTimer struct {
	ID               string
	Label            string
	TotalSeconds     int
	RemainingSeconds int
	Running          bool
	OriginStep       int // step the timer was created on, metadata only
}

// Engine owns the detected timer and the set of custom timers, decrementing
// every running timer in one pass per clock tick. Each run-to-zero emits
// exactly one TimerCompletedEvent; a timer resting at zero never re-fires.
//
// Thread Safety: the Engine is NOT internally locked. The session
// controller serializes all access under its own mutex, matching the
// single-writer model of a cooking session.
type Engine struct {
	bus    *event.Bus
	logger *logging.Logger

	detected *DetectedTimer
	custom   map[string]*CustomTimer
	order    []string // insertion order for stable display
	seq      int      // for default labels
}

// NewEngine creates a timer engine publishing completions on bus.
func NewEngine(bus *event.Bus, logger *logging.Logger) *Engine {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Engine{
		bus:    bus,
		logger: logger,
		custom: make(map[string]*CustomTimer),
	}
}

// BindStep recomputes the detected timer from the given step's instruction
// text. Any previous detected timer is discarded, running or not. Steps
// with no parseable duration leave the engine with no detected timer.
func (e *Engine) BindStep(step int, text string) {
	secs, ok := recipe.ParseDuration(text)
	if !ok {
		e.detected = nil
		return
	}

	e.detected = &DetectedTimer{
		TotalSeconds:     secs,
		RemainingSeconds: secs,
		Step:             step,
	}
	e.logger.Debug("detected timer bound", "step", step, "seconds", secs)
}

// HasDetected reports whether a detected timer exists for the current step.
// The auto-advance pacer uses this as its suppression guard.
func (e *Engine) HasDetected() bool {
	return e.detected != nil
}

// Detected returns a copy of the detected timer, if present.
func (e *Engine) Detected() (DetectedTimer, bool) {
	if e.detected == nil {
		return DetectedTimer{}, false
	}
	return *e.detected, true
}

// StartDetected starts the detected timer. Starting a timer already at
// zero is a no-op.
func (e *Engine) StartDetected() error {
	if e.detected == nil {
		return errors.ErrNoDetectedTimer
	}
	if e.detected.RemainingSeconds == 0 {
		return nil
	}
	e.detected.Running = true
	return nil
}

// PauseDetected pauses the detected timer without resetting progress.
func (e *Engine) PauseDetected() error {
	if e.detected == nil {
		return errors.ErrNoDetectedTimer
	}
	e.detected.Running = false
	return nil
}

// ResetDetected restores the detected timer to its full duration and stops
// it, independent of current countdown progress.
func (e *Engine) ResetDetected() error {
	if e.detected == nil {
		return errors.ErrNoDetectedTimer
	}
	e.detected.RemainingSeconds = e.detected.TotalSeconds
	e.detected.Running = false
	return nil
}

// EditDetected replaces both the total and remaining duration of the
// detected timer and stops it. Non-positive totals are rejected with no
// state change. The step binding is unchanged.
func (e *Engine) EditDetected(totalSeconds int) error {
	if e.detected == nil {
		return errors.ErrNoDetectedTimer
	}
	if totalSeconds <= 0 {
		return errors.NewValidationError("timer duration must be positive").
			WithField("totalSeconds").WithValue(totalSeconds)
	}
	e.detected.TotalSeconds = totalSeconds
	e.detected.RemainingSeconds = totalSeconds
	e.detected.Running = false
	return nil
}

// AddCustom creates a stopped custom timer and returns its ID. Non-positive
// minute counts are rejected. An empty label gets a generated one.
func (e *Engine) AddCustom(label string, minutes int, originStep int) (string, error) {
	if minutes <= 0 {
		return "", errors.NewValidationError("timer duration must be positive").
			WithField("minutes").WithValue(minutes)
	}

	e.seq++
	if label == "" {
		label = fmt.Sprintf("Timer %d", e.seq)
	}

	t := &CustomTimer{
		ID:               uuid.NewString(),
		Label:            label,
		TotalSeconds:     minutes * 60,
		RemainingSeconds: minutes * 60,
		OriginStep:       originStep,
	}
	e.custom[t.ID] = t
	e.order = append(e.order, t.ID)

	e.logger.Debug("custom timer added", "timer_id", t.ID, "label", label, "minutes", minutes)
	return t.ID, nil
}

// Toggle flips a custom timer's running state. Toggling a timer resting at
// zero is a no-op so it cannot go negative or re-fire.
func (e *Engine) Toggle(id string) error {
	t, ok := e.custom[id]
	if !ok {
		return errors.ErrTimerNotFound
	}
	if t.RemainingSeconds == 0 {
		return nil
	}
	t.Running = !t.Running
	return nil
}

// ResetCustom restores a custom timer to its full duration and stops it.
func (e *Engine) ResetCustom(id string) error {
	t, ok := e.custom[id]
	if !ok {
		return errors.ErrTimerNotFound
	}
	t.RemainingSeconds = t.TotalSeconds
	t.Running = false
	return nil
}

// Remove discards a custom timer regardless of running state. No further
// ticks are delivered to it.
func (e *Engine) Remove(id string) error {
	if _, ok := e.custom[id]; !ok {
		return errors.ErrTimerNotFound
	}
	delete(e.custom, id)
	for i, oid := range e.order {
		if oid == id {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
	return nil
}

// Custom returns copies of all custom timers in creation order.
func (e *Engine) Custom() []CustomTimer {
	timers := make([]CustomTimer, 0, len(e.order))
	for _, id := range e.order {
		timers = append(timers, *e.custom[id])
	}
	return timers
}

// Tick decrements every running timer by one second in a single pass.
// A timer reaching zero stops and emits exactly one TimerCompletedEvent.
// Decrements within one tick are logically simultaneous; no ordering is
// guaranteed between timers.
func (e *Engine) Tick() {
	if d := e.detected; d != nil && d.Running {
		d.RemainingSeconds--
		if d.RemainingSeconds <= 0 {
			d.RemainingSeconds = 0
			d.Running = false
			label := fmt.Sprintf("Step %d", d.Step+1)
			e.logger.Info("detected timer completed", "step", d.Step)
			e.bus.Publish(event.NewTimerCompletedEvent("", label, false, d.Step))
		}
	}

	for _, id := range e.order {
		t := e.custom[id]
		if !t.Running {
			continue
		}
		t.RemainingSeconds--
		if t.RemainingSeconds <= 0 {
			t.RemainingSeconds = 0
			t.Running = false
			e.logger.Info("custom timer completed", "timer_id", t.ID, "label", t.Label)
			e.bus.Publish(event.NewTimerCompletedEvent(t.ID, t.Label, true, t.OriginStep))
		}
	}
}
