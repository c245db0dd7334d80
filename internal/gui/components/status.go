package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	inputLabel  *widget.Label
	outputLabel *widget.Label
}

func NewStatusBar() *StatusBar {
	statusLabel := widget.NewLabel("Ready")
	inputLabel := widget.NewLabel("")
	outputLabel := widget.NewLabel("")

	countsContainer := container.NewHBox(
		inputLabel,
		widget.NewSeparator(),
		outputLabel,
	)

	mainContainer := container.NewBorder(
		nil, nil,
		statusLabel,
		countsContainer,
	)

	sb := &StatusBar{
		container:   mainContainer,
		statusLabel: statusLabel,
		inputLabel:  inputLabel,
		outputLabel: outputLabel,
	}
	sb.SetCounts(0, 0)
	return sb
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) Status() string {
	return sb.statusLabel.Text
}

// SetCounts shows the character counts of the input and output areas.
func (sb *StatusBar) SetCounts(input, output int) {
	sb.inputLabel.SetText(fmt.Sprintf("Input: %d chars", input))
	sb.outputLabel.SetText(fmt.Sprintf("Output: %d chars", output))
}
