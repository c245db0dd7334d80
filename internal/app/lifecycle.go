package app

import (
	"fyne.io/fyne/v2"

	"caesar-encoder/internal/gui"
	"caesar-encoder/internal/logger"
	"caesar-encoder/internal/models"
	"caesar-encoder/internal/shutdown"
)

// Lifecycle stops the application's components in reverse dependency order.
type Lifecycle struct {
	manager *shutdown.Manager
	logger  logger.Logger
}

func NewLifecycle(fyneApp fyne.App, session *models.Session, gm *gui.Manager, log logger.Logger) *Lifecycle {
	manager := shutdown.NewManager(log)

	manager.Register("session", shutdown.Func(func() {
		snap := session.Snapshot()
		log.Debug("Lifecycle", "session discarded", map[string]interface{}{
			"input_bytes":  len(snap.Input),
			"output_bytes": len(snap.Output),
			"last_action":  snap.LastAction.String(),
		})
	}))
	manager.Register("gui", gm)
	manager.Register("fyne", shutdown.Func(func() {
		fyne.Do(fyneApp.Quit)
	}))

	return &Lifecycle{
		manager: manager,
		logger:  log,
	}
}

// Listen shuts the application down on SIGINT or SIGTERM.
func (l *Lifecycle) Listen() {
	l.manager.Listen()
}

func (l *Lifecycle) Shutdown() {
	l.manager.Shutdown()
}

func (l *Lifecycle) Done() <-chan struct{} {
	return l.manager.Done()
}
