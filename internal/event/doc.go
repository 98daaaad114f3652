// Package event provides a synchronous publish-subscribe event bus and the
// typed events exchanged between souschef components.
//
// # Design
//
// The bus is deliberately synchronous: handlers run on the publisher's
// goroutine, in registration order, before Publish returns. This keeps the
// cooking session's one-shot semantics (a TimerCompletedEvent is observed
// before the next clock tick) without any queueing or goroutine fan-out.
//
// Handlers that panic are recovered and logged so one bad subscriber cannot
// stop delivery to the rest.
//
// # Usage
//
//	bus := event.NewBus()
//	id := bus.Subscribe(event.TypeTimerCompleted, func(e event.Event) {
//		done := e.(event.TimerCompletedEvent)
//		fmt.Println("timer done:", done.Label)
//	})
//	defer bus.Unsubscribe(id)
//
//	bus.Publish(event.NewTimerCompletedEvent("", "Step 3", false, 2))
package event
