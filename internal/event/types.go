// Package event defines event types for decoupling components in souschef.
// These events enable communication between the cooking session controller,
// the timer engine, the auto-advance pacer, and the TUI without requiring
// direct dependencies.
package event

import "time"

// Event type identifiers. Convention: "category.action".
const (
	TypeTimerCompleted   = "timer.completed"
	TypeStepChanged      = "step.changed"
	TypeReminderShown    = "reminder.shown"
	TypeMilestoneReached = "milestone.reached"
	TypeSessionCompleted = "session.completed"
	TypeAdvanceRequested = "pacer.advance"
	TypePantryDeducted   = "pantry.deducted"
)

// Event is the interface that all events must implement.
// It provides a common way to identify and timestamp events.
type Event interface {
	// EventType returns a string identifier for this event type.
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// baseEvent provides common fields for all events.
// Embed this in concrete event types to satisfy the Event interface.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

// newBaseEvent creates a baseEvent with the current time.
func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// -----------------------------------------------------------------------------
// Timer Events
// -----------------------------------------------------------------------------

// TimerCompletedEvent is emitted exactly once when a running timer reaches
// zero. It fires for both the step-bound detected timer and custom timers.
type TimerCompletedEvent struct {
	baseEvent
	TimerID string // Empty for the detected timer
	Label   string // Display label ("Step 3" or the custom label)
	Custom  bool   // True for user-created timers
	Step    int    // Step the timer was created on (metadata only)
}

// NewTimerCompletedEvent creates a TimerCompletedEvent.
func NewTimerCompletedEvent(timerID, label string, custom bool, step int) TimerCompletedEvent {
	return TimerCompletedEvent{
		baseEvent: newBaseEvent(TypeTimerCompleted),
		TimerID:   timerID,
		Label:     label,
		Custom:    custom,
		Step:      step,
	}
}

// -----------------------------------------------------------------------------
// Session Events
// -----------------------------------------------------------------------------

// StepChangedEvent is emitted whenever the current step index changes,
// whether by manual navigation, completion auto-advance, or the pacer.
type StepChangedEvent struct {
	baseEvent
	From int
	To   int
	Auto bool // True when the change was requested by the pacer
}

// NewStepChangedEvent creates a StepChangedEvent.
func NewStepChangedEvent(from, to int, auto bool) StepChangedEvent {
	return StepChangedEvent{
		baseEvent: newBaseEvent(TypeStepChanged),
		From:      from,
		To:        to,
		Auto:      auto,
	}
}

// ReminderShownEvent is emitted at most once per step per session when a
// classified reminder is dispatched for the newly entered step.
type ReminderShownEvent struct {
	baseEvent
	Step     int
	Category string
	Message  string
}

// NewReminderShownEvent creates a ReminderShownEvent.
func NewReminderShownEvent(step int, category, message string) ReminderShownEvent {
	return ReminderShownEvent{
		baseEvent: newBaseEvent(TypeReminderShown),
		Step:      step,
		Category:  category,
		Message:   message,
	}
}

// MilestoneReachedEvent is emitted when the achievement evaluator fires a
// milestone after a step completion. A new milestone replaces an unshown
// one; milestones never queue.
type MilestoneReachedEvent struct {
	baseEvent
	Milestone      string // "first-step", "halfway", "almost-done", "streak"
	Title          string
	Message        string
	CompletedSteps int
	TotalSteps     int
}

// NewMilestoneReachedEvent creates a MilestoneReachedEvent.
func NewMilestoneReachedEvent(milestone, title, message string, completed, total int) MilestoneReachedEvent {
	return MilestoneReachedEvent{
		baseEvent:      newBaseEvent(TypeMilestoneReached),
		Milestone:      milestone,
		Title:          title,
		Message:        message,
		CompletedSteps: completed,
		TotalSteps:     total,
	}
}

// SessionCompletedEvent is emitted when the final step is completed.
// The TUI shows an auto-dismissing completion banner in place of a
// milestone.
type SessionCompletedEvent struct {
	baseEvent
	Recipe     string
	TotalSteps int
}

// NewSessionCompletedEvent creates a SessionCompletedEvent.
func NewSessionCompletedEvent(recipe string, totalSteps int) SessionCompletedEvent {
	return SessionCompletedEvent{
		baseEvent:  newBaseEvent(TypeSessionCompleted),
		Recipe:     recipe,
		TotalSteps: totalSteps,
	}
}

// -----------------------------------------------------------------------------
// Pacer Events
// -----------------------------------------------------------------------------

// AdvanceRequestedEvent is emitted by the auto-advance pacer when its
// countdown reaches zero and the session should move to the next step.
type AdvanceRequestedEvent struct {
	baseEvent
	FromStep int
}

// NewAdvanceRequestedEvent creates an AdvanceRequestedEvent.
func NewAdvanceRequestedEvent(fromStep int) AdvanceRequestedEvent {
	return AdvanceRequestedEvent{
		baseEvent: newBaseEvent(TypeAdvanceRequested),
		FromStep:  fromStep,
	}
}

// -----------------------------------------------------------------------------
// Pantry Events
// -----------------------------------------------------------------------------

// PantryDeductedEvent is emitted after a successful ingredient deduction.
type PantryDeductedEvent struct {
	baseEvent
	Recipe      string
	Ingredients int // Number of ingredient lines deducted
}

// NewPantryDeductedEvent creates a PantryDeductedEvent.
func NewPantryDeductedEvent(recipe string, ingredients int) PantryDeductedEvent {
	return PantryDeductedEvent{
		baseEvent:   newBaseEvent(TypePantryDeducted),
		Recipe:      recipe,
		Ingredients: ingredients,
	}
}
