package gltut

// Handler receives the drawing callbacks of a running App.
//
// Display draws one frame. Reshape reacts to a framebuffer size change,
// with width and height in physical pixels. Both run on the thread that
// owns the GL context.
type Handler interface {
	Display(app *App)
	Reshape(app *App, width, height int)
}

// funcHandler adapts the WithDisplay/WithReshape closures to Handler,
// substituting default behavior for unset callbacks.
type funcHandler struct {
	display func(*App)
	reshape func(*App, int, int)
}

func (h *funcHandler) Display(app *App) {
	if h.display != nil {
		h.display(app)
	}
}

func (h *funcHandler) Reshape(app *App, width, height int) {
	if h.reshape != nil {
		h.reshape(app, width, height)
		return
	}
	app.GL().Viewport(0, 0, int32(width), int32(height))
}

// Option configures an App instance.
type Option func(*App)

// WithDisplay sets the frame drawing callback. When unset, redraws swap
// buffers without drawing anything.
func WithDisplay(fn func(app *App)) Option {
	return func(a *App) { a.funcs.display = fn }
}

// WithReshape sets the size change callback. When unset, the viewport is
// set to cover the full framebuffer.
func WithReshape(fn func(app *App, width, height int)) Option {
	return func(a *App) { a.funcs.reshape = fn }
}

// WithHandler installs a complete Handler. It takes precedence over
// WithDisplay and WithReshape.
func WithHandler(h Handler) Option {
	return func(a *App) { a.handler = h }
}
