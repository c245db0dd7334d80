package gui

import (
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"

	"caesar-encoder/internal/gui/components"
	"caesar-encoder/internal/logger"
	"caesar-encoder/internal/textio"
)

const WindowTitle = "Caesar Cipher Encoder"

var (
	ClearInputShortcut  = &desktop.CustomShortcut{KeyName: fyne.KeyI, Modifier: fyne.KeyModifierShortcutDefault}
	ClearOutputShortcut = &desktop.CustomShortcut{KeyName: fyne.KeyL, Modifier: fyne.KeyModifierShortcutDefault}
)

// MenuHandlers are the actions reachable from the main menu.
type MenuHandlers struct {
	Open        func()
	Save        func()
	Quit        func()
	ClearInput  func()
	ClearOutput func()
	BruteForce  func()
}

type Manager struct {
	window     fyne.Window
	logger     logger.Logger
	isShutdown atomic.Bool

	editor    *components.Editor
	toolbar   *components.Toolbar
	statusBar *components.StatusBar
}

func NewManager(window fyne.Window, log logger.Logger, initialShift string) *Manager {
	editor := components.NewEditor()
	toolbar := components.NewToolbar(initialShift)
	statusBar := components.NewStatusBar()

	editor.SetCountsHandler(statusBar.SetCounts)

	manager := &Manager{
		window:    window,
		logger:    log,
		editor:    editor,
		toolbar:   toolbar,
		statusBar: statusBar,
	}

	log.Debug("GUIManager", "initialized", map[string]interface{}{
		"shift": initialShift,
	})

	return manager
}

func (m *Manager) GetMainContainer() fyne.CanvasObject {
	panes := container.NewVSplit(
		m.editor.InputContainer(),
		container.NewBorder(m.toolbar.GetContainer(), nil, nil, nil, m.editor.OutputContainer()),
	)
	panes.SetOffset(0.5)

	return container.NewBorder(nil, m.statusBar.GetContainer(), nil, nil, panes)
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

func (m *Manager) Toolbar() *components.Toolbar {
	return m.toolbar
}

func (m *Manager) Editor() *components.Editor {
	return m.editor
}

// SetupMenu installs the File and Text menus and binds the clear shortcuts on the canvas.
func (m *Manager) SetupMenu(h MenuHandlers) {
	clearInput := fyne.NewMenuItem("Clear Input", h.ClearInput)
	clearInput.Shortcut = ClearInputShortcut
	clearOutput := fyne.NewMenuItem("Clear Output", h.ClearOutput)
	clearOutput.Shortcut = ClearOutputShortcut

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Text File...", h.Open),
		fyne.NewMenuItem("Save Output...", h.Save),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", h.Quit),
	)
	fileMenu.Items[len(fileMenu.Items)-1].IsQuit = true

	textMenu := fyne.NewMenu("Text",
		clearInput,
		clearOutput,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Brute Force", h.BruteForce),
	)

	m.window.SetMainMenu(fyne.NewMainMenu(fileMenu, textMenu))

	canvas := m.window.Canvas()
	canvas.AddShortcut(ClearInputShortcut, func(fyne.Shortcut) { h.ClearInput() })
	canvas.AddShortcut(ClearOutputShortcut, func(fyne.Shortcut) { h.ClearOutput() })
}

func (m *Manager) SetLoadHandler(handler func()) {
	m.toolbar.SetLoadHandler(handler)
}

func (m *Manager) SetEncodeHandler(handler func()) {
	m.toolbar.SetEncodeHandler(handler)
}

func (m *Manager) SetDecodeHandler(handler func()) {
	m.toolbar.SetDecodeHandler(handler)
}

func (m *Manager) InputText() string {
	return m.editor.InputText()
}

func (m *Manager) SetInputText(text string) {
	m.editor.SetInputText(text)
}

func (m *Manager) ShiftText() string {
	return m.toolbar.ShiftEntry.Text
}

func (m *Manager) OutputText() string {
	return m.editor.OutputText()
}

func (m *Manager) SetOutputText(text string) {
	m.editor.SetOutputText(text)
}

func (m *Manager) Status() string {
	return m.statusBar.Status()
}

func (m *Manager) UpdateStatus(status string) {
	m.statusBar.SetStatus(status)
	m.logger.Debug("GUIManager", "status updated", map[string]interface{}{
		"status": status,
	})
}

func (m *Manager) ShowError(title string, err error) {
	m.logger.Error("GUIManager", err, map[string]interface{}{
		"title": title,
	})
	dialog.ShowError(err, m.window)
}

func (m *Manager) ShowOpenDialog(callback func(fyne.URIReadCloser, error)) {
	d := dialog.NewFileOpen(callback, m.window)
	d.SetFilter(storage.NewExtensionFileFilter(textio.Extensions))
	d.Show()
}

func (m *Manager) ShowSaveDialog(callback func(fyne.URIWriteCloser, error)) {
	d := dialog.NewFileSave(callback, m.window)
	d.SetFileName("output.txt")
	d.Show()
}

func (m *Manager) Shutdown() {
	if !m.isShutdown.CompareAndSwap(false, true) {
		return
	}

	m.logger.Info("GUIManager", "shutdown initiated", nil)
}
