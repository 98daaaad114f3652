// Package cooking implements the guided-cooking session orchestrator: a
// controller that walks the cook through a recipe's steps while running
// step-detected and custom countdown timers, an unattended auto-advance
// pacing mode, keyword-driven reminders, and milestone progress feedback.
//
// One Clock drives every countdown. The Controller is the sole writer of
// session state; the timer Engine and the auto-advance Pacer own their own
// counters and report back through one-shot events on the session bus.
package cooking

import (
	"context"
	"sync"
	"time"

	"souschef/internal/errors"
	"souschef/internal/event"
	"souschef/internal/logging"
	"souschef/internal/recipe"
)

// Options configures a session Controller.
type Options struct {
	// TickInterval is the shared clock period. Defaults to one second.
	TickInterval time.Duration
	// AutoAdvanceSeconds is the pacer countdown. Defaults to 10.
	AutoAdvanceSeconds int
	// Gateway handles ingredient deduction. Defaults to NopGateway.
	Gateway DeductionGateway
	// Logger receives structured session logs. Defaults to a nop logger.
	Logger *logging.Logger
}

// Controller is the top-level state holder for one cooking session. It owns
// the current step index, the completed-step set, per-step notes, the
// serving multiplier, reminder and milestone dispatch, and teardown. It is
// created when cooking mode opens and destroyed on close; session state is
// never persisted.
//
// All exported methods are safe for concurrent use: user actions and clock
// ticks serialize on one mutex, so every operation either fully applies or
// fully rejects. Events publish synchronously while that mutex is held, so
// bus handlers must not call back into the Controller; hand off to another
// goroutine (e.g. tea.Program.Send) instead.
type Controller struct {
	rec     *recipe.Recipe
	bus     *event.Bus
	logger  *logging.Logger
	gateway DeductionGateway

	clock  *Clock
	engine *Engine
	pacer  *Pacer

	mu             sync.Mutex
	current        int
	completed      map[int]bool
	notes          map[int]string
	multiplier     float64
	remindersShown map[int]bool
	critical       map[int]bool
	hasDeducted    bool
	closed         bool
}

// NewController creates a session for the given recipe. The session does
// not tick until Start is called.
func NewController(r *recipe.Recipe, bus *event.Bus, opts Options) (*Controller, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if bus == nil {
		bus = event.NewBus()
	}
	if opts.Gateway == nil {
		opts.Gateway = NopGateway()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NopLogger()
	}

	logger := opts.Logger.WithRecipe(r.Name)

	c := &Controller{
		rec:            r,
		bus:            bus,
		logger:         logger,
		gateway:        opts.Gateway,
		engine:         NewEngine(bus, logger),
		pacer:          NewPacer(opts.AutoAdvanceSeconds),
		completed:      make(map[int]bool),
		notes:          make(map[int]string),
		multiplier:     1,
		remindersShown: make(map[int]bool),
		critical:       recipe.CriticalSteps(r.Steps),
	}
	c.clock = NewClock(opts.TickInterval, c.tick)

	return c, nil
}

// Bus returns the session's event bus, for subscribers such as the TUI's
// notification layer.
func (c *Controller) Bus() *event.Bus { return c.bus }

// Recipe returns the immutable recipe this session walks through.
func (c *Controller) Recipe() *recipe.Recipe { return c.rec }

// Start begins the shared clock and enters the first step: its detected
// timer is bound and its reminder, if any, dispatched.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.enterStepLocked(c.current)
	c.clock.Start()
	c.logger.Info("session started", "steps", len(c.rec.Steps))
}

// Close tears the session down: the clock stops, so no timer, pacer, or
// reminder event is emitted afterwards. Idempotent.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	c.clock.Stop()
	c.logger.Info("session closed",
		"completed", len(c.completed), "steps", len(c.rec.Steps))
}

// tick is the shared clock callback: one pass over every running countdown.
func (c *Controller) tick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.engine.Tick()

	final := c.current == len(c.rec.Steps)-1
	if c.pacer.Tick(c.engine.HasDetected(), final) {
		from := c.current
		c.bus.Publish(event.NewAdvanceRequestedEvent(from))
		c.moveToLocked(c.current+1, true)
	}
}

// Next moves to the following step. A no-op on the final step.
func (c *Controller) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.current >= len(c.rec.Steps)-1 {
		return
	}
	c.moveToLocked(c.current+1, false)
}

// Previous moves to the preceding step. A no-op on the first step.
func (c *Controller) Previous() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.current <= 0 {
		return
	}
	c.moveToLocked(c.current-1, false)
}

// moveToLocked changes the current step index and performs the entry work
// for the new step. The caller holds the mutex and has validated bounds.
func (c *Controller) moveToLocked(to int, auto bool) {
	from := c.current
	c.current = to
	c.pacer.ResetCountdown()
	c.enterStepLocked(to)
	c.bus.Publish(event.NewStepChangedEvent(from, to, auto))
}

// enterStepLocked binds the detected timer for the step and dispatches its
// reminder if one exists and has not been shown this session.
func (c *Controller) enterStepLocked(step int) {
	c.engine.BindStep(step, c.rec.Steps[step])

	if c.remindersShown[step] {
		return
	}
	if rem, ok := recipe.ReminderFor(c.rec.Steps[step]); ok {
		c.remindersShown[step] = true
		c.logger.Debug("reminder dispatched", "step", step, "category", rem.Category)
		c.bus.Publish(event.NewReminderShownEvent(step, rem.Category, rem.Message))
	}
}

// ToggleStepComplete toggles the current step's completion. Completing a
// step evaluates achievements, resets the auto-advance countdown, and moves
// to the next step unless this was the final one. Completing the last
// remaining step emits the session completion banner instead of a
// milestone. Un-completing has no side effects.
func (c *Controller) ToggleStepComplete() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	step := c.current
	if c.completed[step] {
		delete(c.completed, step)
		c.logger.Debug("step unmarked", "step", step)
		return
	}

	c.completed[step] = true
	c.logger.Info("step completed", "step", step, "done", len(c.completed))

	total := len(c.rec.Steps)
	done := len(c.completed)
	if done == total {
		c.bus.Publish(event.NewSessionCompletedEvent(c.rec.Name, total))
	} else if m, ok := EvaluateMilestone(done, total); ok {
		c.bus.Publish(event.NewMilestoneReachedEvent(m.Kind, m.Title, m.Message, done, total))
	}

	c.pacer.ResetCountdown()
	if step < total-1 {
		c.moveToLocked(step+1, false)
	}
}

// SetNote attaches a free-text note to the current step. An empty note
// clears the entry.
func (c *Controller) SetNote(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	if text == "" {
		delete(c.notes, c.current)
		return
	}
	c.notes[c.current] = text
}

// SetServingMultiplier sets the serving-size multiplier, validated against
// the fixed supported set.
func (c *Controller) SetServingMultiplier(m float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return errors.ErrSessionClosed
	}
	if !recipe.ValidMultiplier(m) {
		return errors.NewValidationError("unsupported serving multiplier").
			WithField("multiplier").WithValue(m).WithCause(errors.ErrInvalidMultiplier)
	}
	c.multiplier = m
	return nil
}

// RequestDeduction asks the gateway to deduct the recipe's scaled
// ingredients. It is allowed only once every step is completed. When a
// deduction already succeeded, repeating it requires confirm=true. The
// deducted flag is set only on gateway success; a failure leaves all state
// unchanged and is retryable.
func (c *Controller) RequestDeduction(ctx context.Context, confirm bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return errors.ErrSessionClosed
	}
	if len(c.completed) != len(c.rec.Steps) {
		return errors.NewSessionError("complete every step before deducting ingredients",
			errors.ErrStepsRemaining).WithRecipe(c.rec.Name)
	}
	if c.hasDeducted && !confirm {
		return errors.NewSessionError("ingredients were already deducted",
			errors.ErrConfirmRequired).WithRecipe(c.rec.Name)
	}

	ingredients := c.rec.ScaledIngredients(c.multiplier)
	if err := c.gateway.Deduct(ctx, ingredients); err != nil {
		c.logger.Warn("ingredient deduction failed", "error", err)
		var gw *errors.GatewayError
		if errors.As(err, &gw) {
			return err
		}
		return errors.NewGatewayError("ingredient deduction failed", err)
	}

	c.hasDeducted = true
	c.logger.Info("ingredients deducted", "count", len(ingredients))
	c.bus.Publish(event.NewPantryDeductedEvent(c.rec.Name, len(ingredients)))
	return nil
}

// SetHandsFree arms or disarms the auto-advance pacer. The host's
// hands-free signal is an untrusted trigger: arming never bypasses the
// pacer's own eligibility guard.
func (c *Controller) SetHandsFree(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	if on {
		c.pacer.Activate()
	} else {
		c.pacer.Deactivate()
	}
}

// TogglePacerPause flips the pacer's pause state; a no-op while hands-free
// mode is off.
func (c *Controller) TogglePacerPause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.pacer.TogglePause()
}

// --- Timer operations, delegated to the engine under the session mutex ---

// StartDetectedTimer starts the current step's detected timer.
func (c *Controller) StartDetectedTimer() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errors.ErrSessionClosed
	}
	return c.engine.StartDetected()
}

// PauseDetectedTimer pauses the current step's detected timer.
func (c *Controller) PauseDetectedTimer() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errors.ErrSessionClosed
	}
	return c.engine.PauseDetected()
}

// ResetDetectedTimer resets the current step's detected timer.
func (c *Controller) ResetDetectedTimer() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errors.ErrSessionClosed
	}
	return c.engine.ResetDetected()
}

// EditDetectedTimer replaces the detected timer's duration.
func (c *Controller) EditDetectedTimer(totalSeconds int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errors.ErrSessionClosed
	}
	return c.engine.EditDetected(totalSeconds)
}

// AddCustomTimer creates a custom timer originating at the current step.
func (c *Controller) AddCustomTimer(label string, minutes int) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return "", errors.ErrSessionClosed
	}
	return c.engine.AddCustom(label, minutes, c.current)
}

// ToggleCustomTimer flips a custom timer's running state.
func (c *Controller) ToggleCustomTimer(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errors.ErrSessionClosed
	}
	return c.engine.Toggle(id)
}

// ResetCustomTimer resets a custom timer to its full duration.
func (c *Controller) ResetCustomTimer(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errors.ErrSessionClosed
	}
	return c.engine.ResetCustom(id)
}

// RemoveCustomTimer discards a custom timer.
func (c *Controller) RemoveCustomTimer(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errors.ErrSessionClosed
	}
	return c.engine.Remove(id)
}

// --- Snapshot ---

// StepState is one step's view for rendering.
type StepState struct {
	Index       int
	Instruction string
	Completed   bool
	Critical    bool
	Note        string
}

// Snapshot is an immutable view of the whole session for rendering.
type Snapshot struct {
	Recipe         string
	Steps          []StepState
	Current        int
	CompletedCount int
	Multiplier     float64
	Detected       DetectedTimer
	HasDetected    bool
	Custom         []CustomTimer
	AutoAdvance    AutoAdvanceState
	HasDeducted    bool
	Closed         bool
}

// Snapshot returns a copy of the session state for display. The returned
// value shares nothing with the controller.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	steps := make([]StepState, len(c.rec.Steps))
	for i, instruction := range c.rec.Steps {
		steps[i] = StepState{
			Index:       i,
			Instruction: instruction,
			Completed:   c.completed[i],
			Critical:    c.critical[i],
			Note:        c.notes[i],
		}
	}

	detected, hasDetected := c.engine.Detected()

	return Snapshot{
		Recipe:         c.rec.Name,
		Steps:          steps,
		Current:        c.current,
		CompletedCount: len(c.completed),
		Multiplier:     c.multiplier,
		Detected:       detected,
		HasDetected:    hasDetected,
		Custom:         c.engine.Custom(),
		AutoAdvance:    c.pacer.State(),
		HasDeducted:    c.hasDeducted,
		Closed:         c.closed,
	}
}
