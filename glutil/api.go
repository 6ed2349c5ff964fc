// Package glutil provides small ownership-aware wrappers around OpenGL
// shaders, programs and vertex buffers.
//
// Every operation takes an explicit API value instead of reaching into a
// global binding. That keeps the context dependency visible at the call
// site and lets tests substitute an in-memory implementation.
package glutil

const (
	// ColorBufferBit is a mask used with Clear to clear the color buffer.
	ColorBufferBit = 0x00004000

	// Triangles is a primitive type for drawing independent triangles.
	Triangles = 0x0004

	// Float is a data type indicating 32-bit floating point values.
	Float = 0x1406

	// ArrayBuffer is the target for vertex buffer objects.
	ArrayBuffer = 0x8892

	// Shader/program status queries.
	CompileStatus = 0x8B81
	LinkStatus    = 0x8B82

	// Boolean query results.
	False = 0
	True  = 1

	// GetError return values.
	NoError          = 0
	InvalidEnum      = 0x0500
	InvalidValue     = 0x0501
	InvalidOperation = 0x0502
	OutOfMemory      = 0x0505

	// GetString parameters.
	//
	// Version returns the GL version string of the current context.
	Version = 0x1F02
	// ShadingLanguageVersion returns the GLSL version string.
	ShadingLanguageVersion = 0x8B8C
)

// API describes the subset of OpenGL entry points used by this module.
//
// Implementations typically wrap platform-specific GL bindings. All methods
// operate on the GL context current to the calling thread, so values
// created through an API must stay on the thread that owns its context.
type API interface {
	// Shader operations
	CreateShader(xtype uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderiv(shader uint32, pname uint32, params *int32)
	// GetShaderInfoLog returns the shader's info log with trailing
	// padding removed.
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	// Program operations
	CreateProgram() uint32
	AttachShader(program uint32, shader uint32)
	LinkProgram(program uint32)
	GetProgramiv(program uint32, pname uint32, params *int32)
	// GetProgramInfoLog returns the program's info log with trailing
	// padding removed.
	GetProgramInfoLog(program uint32) string
	DetachShader(program uint32, shader uint32)
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	// Uniform operations
	GetUniformLocation(program uint32, name string) int32
	Uniform1f(location int32, v0 float32)
	Uniform2f(location int32, v0, v1 float32)

	// Buffer operations. Bulk data travels as tightly packed 32-bit
	// floats; offsets are in bytes.
	GenBuffers(n int32, buffers *uint32)
	DeleteBuffers(n int32, buffers *uint32)
	BindBuffer(target uint32, buffer uint32)
	BufferData(target uint32, data []float32, usage uint32)
	BufferSubData(target uint32, offset int, data []float32)

	// Vertex array operations. The VertexAttribPointer offset is a byte
	// offset into the buffer bound to ArrayBuffer.
	GenVertexArrays(n int32, arrays *uint32)
	DeleteVertexArrays(n int32, arrays *uint32)
	BindVertexArray(array uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int)
	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)

	// Drawing and framebuffer state
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	Viewport(x, y, width, height int32)
	DrawArrays(mode uint32, first int32, count int32)
	Flush()

	// Queries
	GetError() uint32
	GetString(name uint32) string
}
