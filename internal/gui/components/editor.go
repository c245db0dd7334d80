package components

import (
	"unicode/utf8"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Editor holds the editable input area and the read-only output area.
type Editor struct {
	Input  *widget.Entry
	Output *widget.Entry

	output          string
	onCountsChanged func(input, output int)
}

func NewEditor() *Editor {
	e := &Editor{}

	e.Input = widget.NewMultiLineEntry()
	e.Input.SetPlaceHolder("Type or load text to encode or decode")
	e.Input.Wrapping = fyne.TextWrapWord
	e.Input.OnChanged = func(string) { e.countsChanged() }

	e.Output = widget.NewMultiLineEntry()
	e.Output.Wrapping = fyne.TextWrapWord
	// Read-only: any edit is reverted to the last rendered output.
	e.Output.OnChanged = func(text string) {
		if text != e.output {
			e.Output.SetText(e.output)
		}
	}

	return e
}

// InputContainer and OutputContainer are laid out separately so the toolbar can sit between them.
func (e *Editor) InputContainer() fyne.CanvasObject {
	return container.NewBorder(widget.NewLabel("Input"), nil, nil, nil, e.Input)
}

func (e *Editor) OutputContainer() fyne.CanvasObject {
	return container.NewBorder(widget.NewLabel("Output"), nil, nil, nil, e.Output)
}

func (e *Editor) InputText() string {
	return e.Input.Text
}

func (e *Editor) SetInputText(text string) {
	e.Input.SetText(text)
	e.countsChanged()
}

func (e *Editor) OutputText() string {
	return e.output
}

func (e *Editor) SetOutputText(text string) {
	e.output = text
	e.Output.SetText(text)
	e.countsChanged()
}

func (e *Editor) SetCountsHandler(handler func(input, output int)) {
	e.onCountsChanged = handler
}

func (e *Editor) countsChanged() {
	if e.onCountsChanged != nil {
		e.onCountsChanged(utf8.RuneCountInString(e.Input.Text), utf8.RuneCountInString(e.output))
	}
}
