package opengl

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-gltut/gltut"
	"github.com/go-gltut/gltut/glutil"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
	defaultTitle  = "gltut"
)

type config struct {
	title   string
	width   int
	height  int
	vsync   bool
	visible bool
}

// WindowOption configures NewWindow.
type WindowOption func(*config)

// WithTitle sets the window title.
func WithTitle(title string) WindowOption {
	return func(c *config) { c.title = title }
}

// WithSize sets the window size in logical units.
func WithSize(width, height int) WindowOption {
	return func(c *config) { c.width, c.height = width, height }
}

// WithVSync controls whether buffer swaps wait for the vertical retrace.
// Default on.
func WithVSync(enabled bool) WindowOption {
	return func(c *config) { c.vsync = enabled }
}

// WithVisible controls whether the window is shown. Hidden windows still
// provide a full GL context, which the tests rely on.
func WithVisible(visible bool) WindowOption {
	return func(c *config) { c.visible = visible }
}

// Window owns a GLFW window with a current OpenGL 4.1 core context. It
// implements gltut.Window and gltut.Surface.
type Window struct {
	glw         *glfw.Window
	needsRedraw atomic.Bool
}

// NewWindow initializes GLFW, opens a window and makes its GL context
// current. It must be called from the main goroutine with the OS thread
// locked, and only one Window may exist at a time.
func NewWindow(opts ...WindowOption) (*Window, error) {
	cfg := config{
		title:   defaultTitle,
		width:   defaultWidth,
		height:  defaultHeight,
		vsync:   true,
		visible: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if !cfg.visible {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	glw, err := glfw.CreateWindow(cfg.width, cfg.height, cfg.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	glw.MakeContextCurrent()
	if cfg.vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		glw.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	slog.Debug("opengl context ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	return &Window{glw: glw}, nil
}

// GL returns the OpenGL entry points of this window's context.
func (w *Window) GL() glutil.API { return api{} }

// Surface returns the presentation surface of this window.
func (w *Window) Surface() gltut.Surface { return w }

// RequestRedraw marks the window for redraw and wakes the event loop. It
// is safe to call from any goroutine.
func (w *Window) RequestRedraw() {
	w.needsRedraw.Store(true)
	glfw.PostEmptyEvent()
}

// PrePresentNotify is a no-op; GLFW has no pre-present hook.
func (w *Window) PrePresentNotify() {}

// SignalExit makes Run return once the current event batch is handled.
func (w *Window) SignalExit() {
	w.glw.SetShouldClose(true)
}

// Resize is a no-op; GLFW resizes the default framebuffer together with
// the window.
func (w *Window) Resize(width, height int) {}

// SwapBuffers presents the back buffer. GLFW has no failure reporting for
// the swap, so the error is always nil.
func (w *Window) SwapBuffers() error {
	w.glw.SwapBuffers()
	return nil
}

// Run wires the window callbacks to app and services events until
// SignalExit is called or the window is closed. The loop blocks between
// events; continuous animation comes from RequestRedraw waking it. Run
// must be called on the thread that created the window.
func (w *Window) Run(app *gltut.App) {
	w.glw.SetCloseCallback(func(*glfw.Window) {
		app.HandleEvent(gltut.Event{Kind: gltut.CloseRequested})
	})
	w.glw.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		app.HandleEvent(gltut.Event{Kind: gltut.Resized, Width: width, Height: height})
	})
	w.glw.SetRefreshCallback(func(*glfw.Window) {
		w.needsRedraw.Store(true)
	})

	// Deliver the initial geometry and first frame up front; a fresh
	// window may produce no damage events at all.
	fbw, fbh := w.glw.GetFramebufferSize()
	app.HandleEvent(gltut.Event{Kind: gltut.Resized, Width: fbw, Height: fbh})
	app.HandleEvent(gltut.Event{Kind: gltut.RedrawRequested})

	for !w.glw.ShouldClose() {
		glfw.WaitEvents()
		if w.needsRedraw.Swap(false) && !w.glw.ShouldClose() {
			app.HandleEvent(gltut.Event{Kind: gltut.RedrawRequested})
		}
	}
}

// Destroy tears down the window and the GLFW library. The Window must not
// be used afterward.
func (w *Window) Destroy() {
	w.glw.Destroy()
	glfw.Terminate()
}
