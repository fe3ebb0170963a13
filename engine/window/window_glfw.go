package window

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
)

// glfwWindow holds the GLFW-specific window state.
type glfwWindow struct {
	parent *engineWindow
	window *glfw.Window
}

// newPlatformWindow creates the GLFW window with a current OpenGL 4.1 core context,
// registers the event callbacks and stores it as the internal window.
// The caller must have locked the goroutine to the main OS thread.
//
// GLFW reference: https://www.glfw.org/docs/latest/window_guide.html
// go-gl/glfw: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw
func newPlatformWindow(w *engineWindow) error {
	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize GLFW")
	}

	// Reference: https://www.glfw.org/docs/latest/window_guide.html#window_hints_ctx
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfwBool(w.resizable))

	win, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return errors.Wrap(err, "failed to create GLFW window")
	}
	win.MakeContextCurrent()
	if w.vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if w.minWidth > 0 || w.minHeight > 0 || w.maxWidth > 0 || w.maxHeight > 0 {
		win.SetSizeLimits(sizeLimit(w.minWidth), sizeLimit(w.minHeight), sizeLimit(w.maxWidth), sizeLimit(w.maxHeight))
	}

	gw := &glfwWindow{
		parent: w,
		window: win,
	}
	w.internalWindow = gw

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetScrollCallback
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		w.handleScroll(yoff)
	})

	// Use framebuffer size callback for pixel-accurate resize events.
	// On high-DPI displays (e.g., macOS Retina), framebuffer size differs from window size.
	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetFramebufferSizeCallback
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.handleResize(width, height)
	})

	// Update stored dimensions to reflect actual framebuffer size (may differ from requested on high-DPI).
	w.width, w.height = win.GetFramebufferSize()

	return nil
}

func platformWindow(w *engineWindow) *glfw.Window {
	if w.internalWindow == nil {
		return nil
	}
	return w.internalWindow.(*glfwWindow).window
}

// platformIsRunningCheck returns whether the GLFW window is still active.
//
// Parameters:
//   - w: the engineWindow to check
//
// Returns:
//   - bool: true if the window exists and no close was requested
func platformIsRunningCheck(w *engineWindow) bool {
	win := platformWindow(w)
	return win != nil && !win.ShouldClose()
}

func platformRequestClose(w *engineWindow) {
	if win := platformWindow(w); win != nil {
		win.SetShouldClose(true)
	}
}

// platformCloseWindow destroys the GLFW window and terminates the GLFW library.
// Returns an error if the internal window has not been initialized.
//
// Parameters:
//   - w: the engineWindow to close
//
// Returns:
//   - error: error if the window is not initialized
func platformCloseWindow(w *engineWindow) error {
	win := platformWindow(w)
	if win == nil {
		return errors.New("window is not initialized")
	}
	win.Destroy()
	w.internalWindow = nil
	glfw.Terminate()
	return nil
}

// platformPollEvents polls GLFW for pending events without blocking.
//
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#PollEvents
func platformPollEvents() {
	glfw.PollEvents()
}

func platformSwapBuffers(w *engineWindow) {
	if win := platformWindow(w); win != nil {
		win.SwapBuffers()
	}
}

func platformTime() float64 {
	return glfw.GetTime()
}

func platformSetCursorHidden(w *engineWindow, hidden bool) {
	win := platformWindow(w)
	if win == nil {
		return
	}
	mode := glfw.CursorNormal
	if hidden {
		mode = glfw.CursorHidden
	}
	win.SetInputMode(glfw.CursorMode, mode)
}

func platformKeyPressed(w *engineWindow, key uint32) bool {
	win := platformWindow(w)
	return win != nil && win.GetKey(glfw.Key(key)) == glfw.Press
}

func platformMouseButtonPressed(w *engineWindow, button uint32) bool {
	win := platformWindow(w)
	return win != nil && win.GetMouseButton(glfw.MouseButton(button)) == glfw.Press
}

func platformCursorPosition(w *engineWindow) (x, y float64) {
	win := platformWindow(w)
	if win == nil {
		return 0, 0
	}
	return win.GetCursorPos()
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// sizeLimit maps 0 (unlimited) onto GLFW's DontCare.
func sizeLimit(v int) int {
	if v <= 0 {
		return glfw.DontCare
	}
	return v
}
