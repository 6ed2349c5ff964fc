package gltut

import (
	"fmt"

	"github.com/go-gltut/gltut/glutil"
)

// Window is the platform window an App drives.
type Window interface {
	// RequestRedraw schedules a RedrawRequested event. Calling it from
	// Display keeps frames coming, which is how the animated examples
	// run. Implementations must make it safe from any goroutine.
	RequestRedraw()
	// PrePresentNotify hints that a frame is about to be presented.
	// Platforms without such a hook implement it as a no-op.
	PrePresentNotify()
	// SignalExit asks the event loop to stop and return.
	SignalExit()
}

// Surface presents rendered frames.
type Surface interface {
	// Resize matches the surface to a new framebuffer size in physical
	// pixels. Platforms that track the window automatically implement
	// it as a no-op.
	Resize(width, height int)
	// SwapBuffers presents the back buffer.
	SwapBuffers() error
}

// App ties a window, its presentation surface and a GL context to a
// Handler, translating window events into drawing callbacks.
type App struct {
	win     Window
	surface Surface
	gl      glutil.API

	funcs   funcHandler
	handler Handler

	exiting bool
}

// New creates an App over a window, surface and GL context triple. The
// backend package creates all three from one opened window.
func New(win Window, surface Surface, gl glutil.API, opts ...Option) *App {
	a := &App{win: win, surface: surface, gl: gl}
	for _, opt := range opts {
		opt(a)
	}
	if a.handler == nil {
		a.handler = &a.funcs
	}
	return a
}

// GL returns the GL entry points of the context this App draws with.
func (a *App) GL() glutil.API { return a.gl }

// RequestRedraw schedules another frame.
func (a *App) RequestRedraw() { a.win.RequestRedraw() }

// Exiting reports whether a CloseRequested event has been handled.
func (a *App) Exiting() bool { return a.exiting }

// HandleEvent dispatches one window event.
//
// CloseRequested marks the app as exiting and signals the loop; once that
// has happened every further event is dropped, so no Handler callback runs
// on an exiting app. RedrawRequested runs Display, flushes the pipeline,
// raises the pre-present hint and swaps buffers; a failed swap panics
// because the program has lost its presentation surface. Resized resizes
// the surface first and then runs Reshape exactly once. Unrecognized
// kinds are ignored.
func (a *App) HandleEvent(ev Event) {
	if a.exiting {
		return
	}
	switch ev.Kind {
	case CloseRequested:
		a.exiting = true
		a.win.SignalExit()
	case RedrawRequested:
		a.handler.Display(a)
		a.gl.Flush()
		a.win.PrePresentNotify()
		if err := a.surface.SwapBuffers(); err != nil {
			panic(fmt.Sprintf("gltut: present frame: %v", err))
		}
	case Resized:
		a.surface.Resize(ev.Width, ev.Height)
		a.handler.Reshape(a, ev.Width, ev.Height)
	}
}
