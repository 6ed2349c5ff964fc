/*
Package gltut provides a minimal windowed application shell and OpenGL
object utilities for working through classic OpenGL tutorials.

# Overview

The module has three layers. Package glutil wraps shader, program and
vertex buffer objects in owning handles with explicit error reporting,
all behind a small API interface that stands for the GL context. This
package turns window events into the two callbacks a tutorial program
cares about, Display and Reshape. Package backend/opengl binds both
layers to GLFW and OpenGL 4.1 core.

# Quick Start

	func init() { runtime.LockOSThread() }

	func main() {
		if err := run(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	func run() error {
		win, err := opengl.NewWindow(opengl.WithTitle("triangle"))
		if err != nil {
			return err
		}
		defer win.Destroy()

		app := gltut.New(win, win.Surface(), win.GL(),
			gltut.WithDisplay(func(app *gltut.App) {
				gl := app.GL()
				gl.ClearColor(0, 0, 0, 1)
				gl.Clear(glutil.ColorBufferBit)
				// draw here
			}),
		)
		win.Run(app)
		return nil
	}

# Events

An App consumes three event kinds. CloseRequested marks the app as
exiting and stops the loop; no callback runs after it. RedrawRequested
runs Display, flushes the pipeline and swaps buffers; a failed swap
panics, since a tutorial program cannot recover from losing its
presentation surface. Resized resizes the surface and then runs Reshape
with the new size in physical pixels. Every other event is ignored.

# Delegates

Programs either pass closures through WithDisplay and WithReshape or
implement the two-method Handler interface and install it with
WithHandler. When Reshape is unset the full framebuffer becomes the
viewport, which is the right answer for most tutorials. When Display is
unset a redraw just swaps buffers.

# Threads

OpenGL contexts are bound to an OS thread. Programs lock the main
goroutine with runtime.LockOSThread in init and create the window, the
App and all GL objects from it. Window.RequestRedraw is the one call
that is safe from other goroutines.
*/
package gltut
