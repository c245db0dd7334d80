package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ShiftEntryWidth keeps the shift field narrow, as it only ever holds a few digits.
const ShiftEntryWidth = 64

type Toolbar struct {
	container    *fyne.Container
	LoadButton   *widget.Button
	EncodeButton *widget.Button
	DecodeButton *widget.Button
	ShiftEntry   *widget.Entry

	loadHandler   func()
	encodeHandler func()
	decodeHandler func()
}

func NewToolbar(initialShift string) *Toolbar {
	toolbar := &Toolbar{}
	toolbar.setupToolbar(initialShift)
	return toolbar
}

func (t *Toolbar) setupToolbar(initialShift string) {
	t.LoadButton = widget.NewButton("Load Text File", t.onLoad)

	t.EncodeButton = widget.NewButton("Encode", t.onEncode)
	t.EncodeButton.Importance = widget.HighImportance
	t.DecodeButton = widget.NewButton("Decode", t.onDecode)
	t.DecodeButton.Importance = widget.HighImportance

	t.ShiftEntry = widget.NewEntry()
	t.ShiftEntry.SetText(initialShift)
	t.ShiftEntry.SetPlaceHolder("shift")

	// Grid-wrap pins the entry width; HBox would shrink it to MinSize.
	shiftField := container.NewGridWrap(
		fyne.NewSize(ShiftEntryWidth, t.ShiftEntry.MinSize().Height),
		t.ShiftEntry,
	)

	t.container = container.NewHBox(
		t.LoadButton,
		t.EncodeButton,
		t.DecodeButton,
		widget.NewLabel("Shift:"),
		shiftField,
	)
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

func (t *Toolbar) SetLoadHandler(handler func()) {
	t.loadHandler = handler
}

func (t *Toolbar) SetEncodeHandler(handler func()) {
	t.encodeHandler = handler
}

func (t *Toolbar) SetDecodeHandler(handler func()) {
	t.decodeHandler = handler
}

func (t *Toolbar) onLoad() {
	if t.loadHandler != nil {
		t.loadHandler()
	}
}

func (t *Toolbar) onEncode() {
	if t.encodeHandler != nil {
		t.encodeHandler()
	}
}

func (t *Toolbar) onDecode() {
	if t.decodeHandler != nil {
		t.decodeHandler()
	}
}
