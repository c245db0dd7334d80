package app

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caesar-encoder/internal/logger"
	"caesar-encoder/internal/models"
	"caesar-encoder/internal/textio"
)

// dataReader serves in-memory bytes as a file picked from the open dialog.
type dataReader struct {
	data   []byte
	pos    int
	uri    fyne.URI
	closed bool
}

func (dr *dataReader) Read(p []byte) (n int, err error) {
	if dr.pos >= len(dr.data) {
		return 0, io.EOF
	}
	n = copy(p, dr.data[dr.pos:])
	dr.pos += n
	return n, nil
}

func (dr *dataReader) Close() error {
	dr.closed = true
	return nil
}

func (dr *dataReader) URI() fyne.URI {
	return dr.uri
}

type dataWriter struct {
	bytes.Buffer
	uri      fyne.URI
	closed   bool
	closeErr error
}

func (dw *dataWriter) Close() error {
	dw.closed = true
	return dw.closeErr
}

func (dw *dataWriter) URI() fyne.URI {
	return dw.uri
}

type fakeView struct {
	input  string
	shift  string
	output string
	status []string
	errs   []error

	openReader fyne.URIReadCloser
	openErr    error
	saveWriter fyne.URIWriteCloser
	saveErr    error
	dialogs    int
}

func (v *fakeView) InputText() string         { return v.input }
func (v *fakeView) SetInputText(text string)  { v.input = text }
func (v *fakeView) ShiftText() string         { return v.shift }
func (v *fakeView) OutputText() string        { return v.output }
func (v *fakeView) SetOutputText(text string) { v.output = text }
func (v *fakeView) UpdateStatus(s string)     { v.status = append(v.status, s) }

func (v *fakeView) ShowError(_ string, err error) { v.errs = append(v.errs, err) }

func (v *fakeView) ShowOpenDialog(callback func(fyne.URIReadCloser, error)) {
	v.dialogs++
	callback(v.openReader, v.openErr)
}

func (v *fakeView) ShowSaveDialog(callback func(fyne.URIWriteCloser, error)) {
	v.dialogs++
	callback(v.saveWriter, v.saveErr)
}

func (v *fakeView) lastStatus() string {
	if len(v.status) == 0 {
		return ""
	}
	return v.status[len(v.status)-1]
}

// syncDispatcher runs dispatched functions inline and reports each completion.
type syncDispatcher struct {
	done chan struct{}
}

func newSyncDispatcher() *syncDispatcher {
	return &syncDispatcher{done: make(chan struct{}, 4)}
}

func (d *syncDispatcher) Do(fn func()) {
	fn()
	d.done <- struct{}{}
}

func (d *syncDispatcher) wait(t *testing.T) {
	t.Helper()
	select {
	case <-d.done:
	case <-time.After(2 * time.Second):
		t.Fatal("background work did not finish")
	}
}

func newTestHandlers(view *fakeView) (*Handlers, *models.Session, *syncDispatcher) {
	session := models.NewSession(models.DefaultShift)
	dispatcher := newSyncDispatcher()
	return NewHandlers(session, view, logger.NoOp{}, dispatcher.Do), session, dispatcher
}

func TestHandleEncode(t *testing.T) {
	view := &fakeView{input: "Attack at Dawn!", shift: "4"}
	h, session, _ := newTestHandlers(view)

	h.HandleEncode()

	assert.Equal(t, "Exxego ex Hear!", view.output)
	assert.Equal(t, "Encoded with shift 4", view.lastStatus())
	assert.Equal(t, models.ActionEncode, session.LastAction())
	assert.Empty(t, view.errs)
}

func TestHandleDecode(t *testing.T) {
	view := &fakeView{input: "BCD", shift: "1"}
	h, session, _ := newTestHandlers(view)

	h.HandleDecode()

	assert.Equal(t, "ABC", view.output)
	assert.Equal(t, "Decoded with shift 1", view.lastStatus())
	assert.Equal(t, models.ActionDecode, session.LastAction())
}

func TestHandleEncode_InvalidShiftFallsBack(t *testing.T) {
	view := &fakeView{input: "abc", shift: "lots"}
	h, _, _ := newTestHandlers(view)

	h.HandleEncode()

	assert.Equal(t, "efg", view.output)
	assert.Equal(t, `Invalid shift "lots", using 4. Encoded with shift 4`, view.lastStatus())
	assert.Empty(t, view.errs, "a bad shift must not raise an error dialog")
}

func TestHandleBruteForce(t *testing.T) {
	view := &fakeView{input: "Dwwdfn"}
	h, session, _ := newTestHandlers(view)

	h.HandleBruteForce()

	lines := strings.Split(view.output, "\n")
	require.Len(t, lines, 25)
	assert.Equal(t, "01: Cvvcem", lines[0])
	assert.Equal(t, "03: Attack", lines[2])
	assert.Equal(t, models.ActionBruteForce, session.LastAction())
	assert.Equal(t, "Listed 25 candidate shifts", view.lastStatus())
}

func TestHandleClear(t *testing.T) {
	view := &fakeView{input: "hello", shift: "4"}
	h, session, _ := newTestHandlers(view)
	h.HandleEncode()

	h.HandleClearOutput()
	assert.Empty(t, view.output)
	assert.Empty(t, session.Output())
	assert.Equal(t, "hello", view.input)
	assert.Equal(t, "Output cleared", view.lastStatus())

	h.HandleClearInput()
	assert.Empty(t, view.input)
	assert.Empty(t, session.Input())
	assert.Equal(t, "Input cleared", view.lastStatus())
}

func TestHandleLoad(t *testing.T) {
	reader := &dataReader{
		data: []byte("\xEF\xBB\xBFSecret message\n"),
		uri:  storage.NewFileURI("/tmp/secret.txt"),
	}
	view := &fakeView{openReader: reader}
	h, session, dispatcher := newTestHandlers(view)

	h.HandleLoad()
	dispatcher.wait(t)

	assert.Equal(t, "Secret message\n", view.input)
	assert.Equal(t, "Secret message\n", session.Input())
	assert.Equal(t, "Loaded secret.txt", view.lastStatus())
	assert.True(t, reader.closed)
	assert.Empty(t, view.errs)
}

func TestHandleLoad_InvalidFile(t *testing.T) {
	reader := &dataReader{
		data: []byte{0xC3, 0x28},
		uri:  storage.NewFileURI("/tmp/binary.dat"),
	}
	view := &fakeView{input: "keep me", openReader: reader}
	h, _, dispatcher := newTestHandlers(view)

	h.HandleLoad()
	dispatcher.wait(t)

	require.Len(t, view.errs, 1)
	assert.ErrorIs(t, view.errs[0], textio.ErrInvalidUTF8)
	assert.Equal(t, "keep me", view.input)
	assert.Equal(t, "Ready", view.lastStatus())
}

func TestHandleLoad_DialogError(t *testing.T) {
	view := &fakeView{openErr: errors.New("portal unavailable")}
	h, _, _ := newTestHandlers(view)

	h.HandleLoad()

	require.Len(t, view.errs, 1)
	assert.EqualError(t, view.errs[0], "portal unavailable")
}

func TestHandleLoad_Cancelled(t *testing.T) {
	view := &fakeView{}
	h, _, _ := newTestHandlers(view)

	h.HandleLoad()

	assert.Equal(t, 1, view.dialogs)
	assert.Empty(t, view.errs)
	assert.Empty(t, view.status)
}

func TestHandleSave(t *testing.T) {
	writer := &dataWriter{uri: storage.NewFileURI("/tmp/out.txt")}
	view := &fakeView{output: "Exxego ex Hear!", saveWriter: writer}
	h, _, dispatcher := newTestHandlers(view)

	h.HandleSave()
	dispatcher.wait(t)

	assert.Equal(t, "Exxego ex Hear!", writer.String())
	assert.True(t, writer.closed)
	assert.Equal(t, "Saved out.txt", view.lastStatus())
}

func TestHandleSave_CloseError(t *testing.T) {
	writer := &dataWriter{uri: storage.NewFileURI("/tmp/out.txt"), closeErr: errors.New("disk full")}
	view := &fakeView{output: "data", saveWriter: writer}
	h, _, dispatcher := newTestHandlers(view)

	h.HandleSave()
	dispatcher.wait(t)

	require.Len(t, view.errs, 1)
	assert.ErrorContains(t, view.errs[0], "disk full")
}

func TestHandleSave_NothingToSave(t *testing.T) {
	view := &fakeView{}
	h, _, _ := newTestHandlers(view)

	h.HandleSave()

	require.Len(t, view.errs, 1)
	assert.ErrorIs(t, view.errs[0], ErrNothingToSave)
	assert.Zero(t, view.dialogs)
}
