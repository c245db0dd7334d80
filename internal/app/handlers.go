package app

import (
	"errors"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"

	"caesar-encoder/internal/cipher"
	"caesar-encoder/internal/logger"
	"caesar-encoder/internal/models"
	"caesar-encoder/internal/textio"
)

var ErrNothingToSave = errors.New("there is no output to save")

// View is the part of the window the handlers drive.
type View interface {
	InputText() string
	SetInputText(text string)
	ShiftText() string
	OutputText() string
	SetOutputText(text string)
	UpdateStatus(status string)
	ShowError(title string, err error)
	ShowOpenDialog(callback func(fyne.URIReadCloser, error))
	ShowSaveDialog(callback func(fyne.URIWriteCloser, error))
}

type Handlers struct {
	session  *models.Session
	view     View
	logger   logger.Logger
	dispatch func(func())
}

// NewHandlers binds the session to a view. dispatch runs a function on the UI
// goroutine; it is fyne.Do in the running application.
func NewHandlers(session *models.Session, view View, log logger.Logger, dispatch func(func())) *Handlers {
	return &Handlers{
		session:  session,
		view:     view,
		logger:   log,
		dispatch: dispatch,
	}
}

func (h *Handlers) HandleEncode() {
	h.apply(cipher.Forward)
}

func (h *Handlers) HandleDecode() {
	h.apply(cipher.Backward)
}

func (h *Handlers) apply(dir cipher.Direction) {
	h.session.SetInput(h.view.InputText())
	h.session.SetShiftText(h.view.ShiftText())

	result, err := h.session.Apply(dir)
	if err != nil {
		h.view.ShowError("Cipher Error", err)
		return
	}

	h.view.SetOutputText(result.Output)

	verb := "Encoded"
	if dir == cipher.Backward {
		verb = "Decoded"
	}
	status := fmt.Sprintf("%s with shift %d", verb, result.Shift)
	if result.UsedFallback {
		status = fmt.Sprintf("Invalid shift %q, using %d. %s", h.session.ShiftText(), result.Shift, status)
	}
	h.view.UpdateStatus(status)

	h.logger.Debug("Handlers", "text transformed", map[string]interface{}{
		"direction":     dir.String(),
		"shift":         result.Shift,
		"used_fallback": result.UsedFallback,
		"bytes":         len(result.Output),
		"duration":      result.Duration.String(),
	})
}

// HandleBruteForce lists every possible decoding of the input, one per line.
func (h *Handlers) HandleBruteForce() {
	input := h.view.InputText()
	h.session.SetInput(input)

	candidates := cipher.BruteForce(input)
	lines := make([]string, 0, len(candidates))
	for _, c := range candidates {
		lines = append(lines, fmt.Sprintf("%02d: %s", c.Shift, c.Text))
	}
	output := strings.Join(lines, "\n")

	h.session.SetOutput(output, models.ActionBruteForce)
	h.view.SetOutputText(output)
	h.view.UpdateStatus(fmt.Sprintf("Listed %d candidate shifts", len(candidates)))
}

func (h *Handlers) HandleClearInput() {
	h.session.ClearInput()
	h.view.SetInputText("")
	h.view.UpdateStatus("Input cleared")
}

func (h *Handlers) HandleClearOutput() {
	h.session.ClearOutput()
	h.view.SetOutputText("")
	h.view.UpdateStatus("Output cleared")
}

func (h *Handlers) HandleLoad() {
	h.view.ShowOpenDialog(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			h.view.ShowError("File Load Error", err)
			return
		}
		if reader == nil {
			return
		}

		h.view.UpdateStatus("Loading text...")

		go func() {
			text, loadErr := textio.Load(reader)
			uri := reader.URI()
			reader.Close()

			h.dispatch(func() {
				if loadErr != nil {
					h.view.ShowError("File Load Error", fmt.Errorf("%s: %w", uri.Name(), loadErr))
					h.view.UpdateStatus("Ready")
					return
				}

				h.session.SetInput(text)
				h.view.SetInputText(text)
				h.view.UpdateStatus("Loaded " + uri.Name())

				h.logger.Info("Handlers", "text file loaded", map[string]interface{}{
					"path":  uri.Path(),
					"bytes": len(text),
				})
			})
		}()
	})
}

func (h *Handlers) HandleSave() {
	output := h.view.OutputText()
	if output == "" {
		h.view.ShowError("Save Error", ErrNothingToSave)
		return
	}

	h.view.ShowSaveDialog(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			h.view.ShowError("File Save Error", err)
			return
		}
		if writer == nil {
			return
		}

		h.view.UpdateStatus("Saving output...")

		go func() {
			saveErr := textio.Save(writer, output)
			if closeErr := writer.Close(); saveErr == nil && closeErr != nil {
				saveErr = fmt.Errorf("failed to close file: %w", closeErr)
			}
			uri := writer.URI()

			h.dispatch(func() {
				if saveErr != nil {
					h.view.ShowError("File Save Error", saveErr)
					h.view.UpdateStatus("Ready")
					return
				}
				h.view.UpdateStatus("Saved " + uri.Name())
			})
		}()
	})
}
