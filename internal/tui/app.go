package tui

import (
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"souschef/internal/cooking"
	"souschef/internal/event"
)

// App wraps the Bubbletea program
type App struct {
	program    *tea.Program
	model      Model
	controller *cooking.Controller
}

// New creates a new TUI application for a cooking session. The controller
// should already be started.
func New(c *cooking.Controller, opts ModelOptions) *App {
	return &App{
		model:      NewModel(c, opts),
		controller: c,
	}
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	// The session must stop ticking when the TUI exits, however it exits.
	defer a.controller.Close()

	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
	)

	// Bus events arrive under the controller's mutex; program.Send hands
	// them to the Update loop without calling back into the controller.
	subID := a.controller.Bus().SubscribeAll(func(e event.Event) {
		a.program.Send(sessionEventMsg{event: e})
	})
	defer a.controller.Bus().Unsubscribe(subID)

	// Graceful shutdown on signals so the clock goroutine is stopped.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	go func() {
		<-sigChan
		if a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()

	_, err := a.program.Run()
	return err
}
