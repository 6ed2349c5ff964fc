package gltut

import "fmt"

// EventKind discriminates the window events an App consumes.
type EventKind int32

const (
	// CloseRequested reports that the user asked to close the window.
	CloseRequested EventKind = iota + 1
	// RedrawRequested reports that the window contents must be drawn.
	RedrawRequested
	// Resized reports a new framebuffer size.
	Resized
)

// String returns the kind name for logs and diagnostics.
func (k EventKind) String() string {
	switch k {
	case CloseRequested:
		return "close-requested"
	case RedrawRequested:
		return "redraw-requested"
	case Resized:
		return "resized"
	default:
		return fmt.Sprintf("EventKind(%d)", int32(k))
	}
}

// Event is one window event. Width and Height are only meaningful for
// Resized and are physical pixels, not logical window units.
type Event struct {
	Kind          EventKind
	Width, Height int
}
