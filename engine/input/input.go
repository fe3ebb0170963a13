// Package input decouples camera-driving logic from any specific windowing backend.
// The window package implements Source on top of GLFW; State is an in-memory
// implementation for tests and scripted input.
package input

import "sync"

// Source exposes polled keyboard and mouse state.
type Source interface {
	// KeyPressed reports whether the key is currently held down.
	//
	// Parameters:
	//   - key: the virtual key code (see common.Key*)
	//
	// Returns:
	//   - bool: true if the key is pressed
	KeyPressed(key uint32) bool

	// MouseButtonPressed reports whether the mouse button is currently held down.
	//
	// Parameters:
	//   - button: the mouse button code (see common.MouseButton*)
	//
	// Returns:
	//   - bool: true if the button is pressed
	MouseButtonPressed(button uint32) bool

	// CursorPosition returns the cursor position in window coordinates.
	//
	// Returns:
	//   - x, y: cursor position in pixels, origin at the top-left corner
	CursorPosition() (x, y float64)

	// ScrollDelta returns the vertical scroll accumulated since the previous call and resets it.
	//
	// Returns:
	//   - float64: accumulated scroll offset (positive = wheel up)
	ScrollDelta() float64
}

// State is a mutable, in-memory Source.
type State struct {
	mu      sync.Mutex
	keys    map[uint32]bool
	buttons map[uint32]bool
	x, y    float64
	scroll  float64
}

var _ Source = &State{}

// NewState creates an empty State with no keys or buttons pressed.
//
// Returns:
//   - *State: the new input state
func NewState() *State {
	return &State{
		keys:    make(map[uint32]bool),
		buttons: make(map[uint32]bool),
	}
}

func (s *State) KeyPressed(key uint32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keys[key]
}

func (s *State) MouseButtonPressed(button uint32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buttons[button]
}

func (s *State) CursorPosition() (x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.x, s.y
}

func (s *State) ScrollDelta() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.scroll
	s.scroll = 0
	return d
}

// SetKey marks a key as pressed or released.
//
// Parameters:
//   - key: the virtual key code
//   - pressed: true if held down
func (s *State) SetKey(key uint32, pressed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[key] = pressed
}

// SetMouseButton marks a mouse button as pressed or released.
//
// Parameters:
//   - button: the mouse button code
//   - pressed: true if held down
func (s *State) SetMouseButton(button uint32, pressed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buttons[button] = pressed
}

// MoveCursor sets the cursor position.
//
// Parameters:
//   - x, y: cursor position in pixels
func (s *State) MoveCursor(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.x, s.y = x, y
}

// Scroll accumulates a vertical scroll offset.
//
// Parameters:
//   - dy: scroll offset to add
func (s *State) Scroll(dy float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scroll += dy
}

// Release clears every key and button.
func (s *State) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.keys)
	clear(s.buttons)
}
