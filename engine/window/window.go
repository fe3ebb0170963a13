package window

import (
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/input"
)

// Window provides platform windowing, a current OpenGL context and polled input.
// Wraps platform-specific window implementations with a common interface.
// Every method must be called from the thread that created the window.
type Window interface {
	input.Source

	// SetResizeCallback sets the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetCursorHidden hides and captures the cursor, or shows it again.
	//
	// Parameters:
	//   - hidden: true to hide the cursor
	SetCursorHidden(hidden bool)

	// CursorHidden reports whether the cursor is currently hidden.
	CursorHidden() bool

	// Time returns the seconds elapsed since the window system was initialized.
	//
	// Returns:
	//   - float64: monotonic time in seconds
	Time() float64

	// SwapBuffers presents the back buffer.
	SwapBuffers()

	// PollEvents processes pending window events without blocking.
	PollEvents()

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if a close was requested
	IsRunning() bool

	// RequestClose asks the window to close at the end of the current frame.
	RequestClose()

	// Close destroys the window and releases platform resources.
	//
	// Returns:
	//   - error: error if the window was never created
	Close() error

	// Width returns the current framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int

	// Title returns the window title.
	Title() string
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, platform state, and event callbacks.
type engineWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// maxWidth and maxHeight limit resizing; 0 means unlimited.
	maxWidth, maxHeight int

	// minWidth and minHeight limit resizing; 0 means unlimited.
	minWidth, minHeight int

	// width and height are the current framebuffer size in pixels.
	width, height int

	// vsync enables a swap interval of 1.
	vsync bool

	// resizable allows the user to resize the window.
	resizable bool

	// cursorHidden tracks the cursor mode set through SetCursorHidden.
	cursorHidden bool

	// scroll accumulates vertical scroll offsets until ScrollDelta drains it.
	scroll float64

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// onResize is called when the framebuffer is resized.
	onResize func(width, height int)
}

var _ Window = &engineWindow{}

// NewWindow creates a window with a current OpenGL 4.1 core context.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the created window
//   - error: if the window system or the window cannot be initialized
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	w := &engineWindow{
		title:     "LearnOpenGL",
		width:     800,
		height:    600,
		vsync:     true,
		resizable: true,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetCursorHidden(hidden bool) {
	if w.cursorHidden == hidden {
		return
	}
	w.cursorHidden = hidden
	platformSetCursorHidden(w, hidden)
}

func (w *engineWindow) CursorHidden() bool {
	return w.cursorHidden
}

func (w *engineWindow) Time() float64 {
	return platformTime()
}

func (w *engineWindow) SwapBuffers() {
	platformSwapBuffers(w)
}

func (w *engineWindow) PollEvents() {
	platformPollEvents()
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) RequestClose() {
	platformRequestClose(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

func (w *engineWindow) Title() string {
	return w.title
}

func (w *engineWindow) KeyPressed(key uint32) bool {
	return platformKeyPressed(w, key)
}

func (w *engineWindow) MouseButtonPressed(button uint32) bool {
	return platformMouseButtonPressed(w, button)
}

func (w *engineWindow) CursorPosition() (x, y float64) {
	return platformCursorPosition(w)
}

func (w *engineWindow) ScrollDelta() float64 {
	d := w.scroll
	w.scroll = 0
	return d
}

// handleResize records the new framebuffer size and notifies the resize callback.
func (w *engineWindow) handleResize(width, height int) {
	w.width = width
	w.height = height
	if w.onResize != nil {
		w.onResize(width, height)
	}
}

// handleScroll accumulates a vertical scroll offset.
func (w *engineWindow) handleScroll(yoff float64) {
	w.scroll += yoff
}
