package models

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"caesar-encoder/internal/cipher"
)

// DefaultShift is used when no configured default is supplied
const DefaultShift = 4

// Action identifies the last operation applied to the session
type Action int

const (
	ActionNone Action = iota
	ActionEncode
	ActionDecode
	ActionBruteForce
)

func (a Action) String() string {
	switch a {
	case ActionEncode:
		return "encode"
	case ActionDecode:
		return "decode"
	case ActionBruteForce:
		return "brute-force"
	default:
		return "none"
	}
}

// Result describes the outcome of applying the cipher to the session input
type Result struct {
	Output       string
	Shift        int
	UsedFallback bool
	Duration     time.Duration
}

// Snapshot is a consistent copy of the session state
type Snapshot struct {
	Input      string
	ShiftText  string
	Output     string
	LastAction Action
}

// Session holds the editor state shared between the window and its handlers
type Session struct {
	mu           sync.RWMutex
	input        string
	shiftText    string
	output       string
	lastAction   Action
	defaultShift int
}

// NewSession creates a session whose shift field starts at defaultShift
func NewSession(defaultShift int) *Session {
	return &Session{
		shiftText:    strconv.Itoa(defaultShift),
		defaultShift: defaultShift,
	}
}

// ParseShift reads a base-10 integer shift. On malformed input it returns
// fallback and false instead of an error.
func ParseShift(raw string, fallback int) (int, bool) {
	shift, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback, false
	}
	return shift, true
}

// DefaultShift returns the fallback used for unparsable shift text
func (s *Session) DefaultShift() int {
	return s.defaultShift
}

// Input returns the current input buffer
func (s *Session) Input() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.input
}

// SetInput replaces the input buffer
func (s *Session) SetInput(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.input = text
}

// ShiftText returns the raw contents of the shift field
func (s *Session) ShiftText() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shiftText
}

// SetShiftText records the raw contents of the shift field
func (s *Session) SetShiftText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shiftText = text
}

// Shift parses the shift field, falling back to the session default
func (s *Session) Shift() (int, bool) {
	return ParseShift(s.ShiftText(), s.defaultShift)
}

// Output returns the output buffer
func (s *Session) Output() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.output
}

// SetOutput replaces the output buffer
func (s *Session) SetOutput(text string, action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.output = text
	s.lastAction = action
}

// ClearInput empties the input buffer
func (s *Session) ClearInput() {
	s.SetInput("")
}

// ClearOutput empties the output buffer and forgets the last action
func (s *Session) ClearOutput() {
	s.SetOutput("", ActionNone)
}

// LastAction reports which operation produced the current output
func (s *Session) LastAction() Action {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastAction
}

// Snapshot copies the whole state under one lock
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Input:      s.input,
		ShiftText:  s.shiftText,
		Output:     s.output,
		LastAction: s.lastAction,
	}
}

// Apply runs the cipher over the input in the given direction and stores the output
func (s *Session) Apply(dir cipher.Direction) (Result, error) {
	start := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	shift, ok := ParseShift(s.shiftText, s.defaultShift)
	s.output = cipher.Transform(s.input, shift, dir)
	s.lastAction = actionFor(dir)

	return Result{
		Output:       s.output,
		Shift:        shift,
		UsedFallback: !ok,
		Duration:     time.Since(start),
	}, nil
}

func actionFor(dir cipher.Direction) Action {
	if dir == cipher.Backward {
		return ActionDecode
	}
	return ActionEncode
}
