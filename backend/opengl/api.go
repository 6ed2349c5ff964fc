// Package opengl binds the gltut application shell and the glutil object
// helpers to GLFW and OpenGL 4.1 core.
package opengl

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// api implements glutil.API on the go-gl 4.1 core bindings. The zero value
// is ready to use once a context is current on the calling thread.
type api struct{}

func (api) CreateShader(xtype uint32) uint32 { return gl.CreateShader(xtype) }

func (api) ShaderSource(shader uint32, source string) {
	// gl.Strs needs NUL-terminated input; glutil guarantees the source
	// has no interior NUL.
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (api) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (api) GetShaderiv(shader uint32, pname uint32, params *int32) {
	gl.GetShaderiv(shader, pname, params)
}

func (api) GetShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
	return strings.TrimRight(string(log), "\x00\n")
}

func (api) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (api) CreateProgram() uint32 { return gl.CreateProgram() }

func (api) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (api) LinkProgram(program uint32) { gl.LinkProgram(program) }

func (api) GetProgramiv(program uint32, pname uint32, params *int32) {
	gl.GetProgramiv(program, pname, params)
}

func (api) GetProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetProgramInfoLog(program, logLength, nil, &log[0])
	return strings.TrimRight(string(log), "\x00\n")
}

func (api) DetachShader(program, shader uint32) { gl.DetachShader(program, shader) }

func (api) UseProgram(program uint32) { gl.UseProgram(program) }

func (api) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (api) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (api) Uniform1f(location int32, v0 float32) { gl.Uniform1f(location, v0) }

func (api) Uniform2f(location int32, v0, v1 float32) { gl.Uniform2f(location, v0, v1) }

func (api) GenBuffers(n int32, buffers *uint32) { gl.GenBuffers(n, buffers) }

func (api) DeleteBuffers(n int32, buffers *uint32) { gl.DeleteBuffers(n, buffers) }

func (api) BindBuffer(target, buffer uint32) { gl.BindBuffer(target, buffer) }

func (api) BufferData(target uint32, data []float32, usage uint32) {
	gl.BufferData(target, 4*len(data), floatPtr(data), usage)
}

func (api) BufferSubData(target uint32, offset int, data []float32) {
	gl.BufferSubData(target, offset, 4*len(data), floatPtr(data))
}

// floatPtr avoids gl.Ptr panicking on empty slices.
func floatPtr(data []float32) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return gl.Ptr(data)
}

func (api) GenVertexArrays(n int32, arrays *uint32) { gl.GenVertexArrays(n, arrays) }

func (api) DeleteVertexArrays(n int32, arrays *uint32) { gl.DeleteVertexArrays(n, arrays) }

func (api) BindVertexArray(array uint32) { gl.BindVertexArray(array) }

func (api) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, uintptr(offset))
}

func (api) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (api) DisableVertexAttribArray(index uint32) { gl.DisableVertexAttribArray(index) }

func (api) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (api) Clear(mask uint32) { gl.Clear(mask) }

func (api) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

func (api) DrawArrays(mode uint32, first, count int32) { gl.DrawArrays(mode, first, count) }

func (api) Flush() { gl.Flush() }

func (api) GetError() uint32 { return gl.GetError() }

func (api) GetString(name uint32) string { return gl.GoStr(gl.GetString(name)) }
