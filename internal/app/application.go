package app

import (
	"runtime"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"caesar-encoder/internal/config"
	"caesar-encoder/internal/gui"
	"caesar-encoder/internal/logger"
	"caesar-encoder/internal/models"
)

const (
	AppName    = "Caesar Cipher Encoder"
	AppID      = "com.caesarcipher.encoder"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	session    *models.Session
	guiManager *gui.Manager
	handlers   *Handlers
	lifecycle  *Lifecycle
	logger     logger.Logger
}

// NewApplication creates the Fyne application and its main window.
func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	return NewApplicationWith(fyneapp.NewWithID(AppID), cfg, log)
}

// NewApplicationWith builds the window on an existing Fyne app, such as the test driver.
func NewApplicationWith(fyneApp fyne.App, cfg config.Config, log logger.Logger) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	window := fyneApp.NewWindow(gui.WindowTitle)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  cfg.WindowWidth,
		"window_height": cfg.WindowHeight,
		"default_shift": cfg.DefaultShift,
		"go_version":    runtime.Version(),
	})

	session := models.NewSession(cfg.DefaultShift)
	guiManager := gui.NewManager(window, log, session.ShiftText())
	handlers := NewHandlers(session, guiManager, log, fyne.Do)
	lifecycle := NewLifecycle(fyneApp, session, guiManager, log)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		session:    session,
		guiManager: guiManager,
		handlers:   handlers,
		lifecycle:  lifecycle,
		logger:     log,
	}

	application.setupHandlers()
	window.SetContent(guiManager.GetMainContainer())

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) setupHandlers() {
	h := a.handlers

	a.guiManager.SetLoadHandler(h.HandleLoad)
	a.guiManager.SetEncodeHandler(h.HandleEncode)
	a.guiManager.SetDecodeHandler(h.HandleDecode)

	a.guiManager.SetupMenu(gui.MenuHandlers{
		Open:        h.HandleLoad,
		Save:        h.HandleSave,
		Quit:        a.lifecycle.Shutdown,
		ClearInput:  h.HandleClearInput,
		ClearOutput: h.HandleClearOutput,
		BruteForce:  h.HandleBruteForce,
	})

	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
	})
}

func (a *Application) Window() fyne.Window {
	return a.window
}

func (a *Application) GUI() *gui.Manager {
	return a.guiManager
}

func (a *Application) Session() *models.Session {
	return a.session
}

// Run shows the window and blocks in the Fyne event loop until the app quits.
func (a *Application) Run() error {
	a.lifecycle.Listen()

	a.window.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.lifecycle.Shutdown()
	return nil
}
