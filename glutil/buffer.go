package glutil

import "fmt"

// BufferUsage hints how buffer contents will be accessed. Its value is the
// matching GL usage enum.
type BufferUsage uint32

const (
	// StaticDraw marks contents set once and drawn many times.
	StaticDraw BufferUsage = 0x88E4
	// StreamDraw marks contents rewritten for nearly every draw.
	StreamDraw BufferUsage = 0x88E0
	// DynamicDraw marks contents modified repeatedly between draws.
	DynamicDraw BufferUsage = 0x88E8
)

// Buffer owns a GL buffer object holding vertex attribute data.
type Buffer struct {
	gl API
	id uint32
}

// NewVertexBuffer creates a buffer object and uploads data with the given
// usage hint, leaving ArrayBuffer unbound.
//
// Allocation failure is recoverable: when the GL reports an error after the
// upload, typically OutOfMemory, the buffer object is deleted and an error
// carrying the GL error code is returned. This is the only point at which
// the package checks the GL error state.
func NewVertexBuffer(gl API, data []float32, usage BufferUsage) (*Buffer, error) {
	var id uint32
	gl.GenBuffers(1, &id)
	gl.BindBuffer(ArrayBuffer, id)
	gl.BufferData(ArrayBuffer, data, uint32(usage))
	gl.BindBuffer(ArrayBuffer, 0)
	if code := gl.GetError(); code != NoError {
		gl.DeleteBuffers(1, &id)
		return nil, fmt.Errorf("vertex buffer upload failed: gl error 0x%04X", code)
	}
	return &Buffer{gl: gl, id: id}, nil
}

// ID returns the underlying GL buffer name, or zero after Release.
func (b *Buffer) ID() uint32 { return b.id }

// Update replaces the buffer contents from offset zero. The data must fit
// within the allocation made at creation; the GL error state is not
// consulted here, so overruns surface as GL errors on later calls.
func (b *Buffer) Update(data []float32) {
	b.gl.BindBuffer(ArrayBuffer, b.id)
	b.gl.BufferSubData(ArrayBuffer, 0, data)
	b.gl.BindBuffer(ArrayBuffer, 0)
}

// Release deletes the GL buffer object. Calling it again is a no-op.
func (b *Buffer) Release() {
	if b.id != 0 {
		b.gl.DeleteBuffers(1, &b.id)
		b.id = 0
	}
}
