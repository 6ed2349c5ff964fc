package glutil_test

import (
	"fmt"
	"strings"

	"github.com/go-gltut/gltut/glutil"
)

// fakeAPI implements glutil.API against in-memory state, recording every
// call so tests can assert on counts and arguments.
type fakeAPI struct {
	trace []string

	failCompileLog string // when non-empty, compilations fail with this log
	failLinkLog    string // when non-empty, links fail with this log
	errAfterUpload uint32 // GetError result following a BufferData upload

	nextID     uint32
	pendingErr uint32
	uniforms   map[string]int32
}

func (f *fakeAPI) record(format string, args ...any) {
	f.trace = append(f.trace, fmt.Sprintf(format, args...))
}

// count reports how many recorded calls start with prefix.
func (f *fakeAPI) count(prefix string) int {
	n := 0
	for _, c := range f.trace {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (f *fakeAPI) alloc() uint32 {
	f.nextID++
	return f.nextID
}

func (f *fakeAPI) CreateShader(xtype uint32) uint32 {
	id := f.alloc()
	f.record("CreateShader(%d)", xtype)
	return id
}

func (f *fakeAPI) ShaderSource(shader uint32, source string) {
	f.record("ShaderSource(%d, %q)", shader, source)
}

func (f *fakeAPI) CompileShader(shader uint32) {
	f.record("CompileShader(%d)", shader)
}

func (f *fakeAPI) GetShaderiv(shader uint32, pname uint32, params *int32) {
	f.record("GetShaderiv(%d, %d)", shader, pname)
	if pname == glutil.CompileStatus {
		if f.failCompileLog != "" {
			*params = glutil.False
		} else {
			*params = glutil.True
		}
	}
}

func (f *fakeAPI) GetShaderInfoLog(shader uint32) string {
	f.record("GetShaderInfoLog(%d)", shader)
	return f.failCompileLog
}

func (f *fakeAPI) DeleteShader(shader uint32) {
	f.record("DeleteShader(%d)", shader)
}

func (f *fakeAPI) CreateProgram() uint32 {
	id := f.alloc()
	f.record("CreateProgram()")
	return id
}

func (f *fakeAPI) AttachShader(program, shader uint32) {
	f.record("AttachShader(%d, %d)", program, shader)
}

func (f *fakeAPI) LinkProgram(program uint32) {
	f.record("LinkProgram(%d)", program)
}

func (f *fakeAPI) GetProgramiv(program uint32, pname uint32, params *int32) {
	f.record("GetProgramiv(%d, %d)", program, pname)
	if pname == glutil.LinkStatus {
		if f.failLinkLog != "" {
			*params = glutil.False
		} else {
			*params = glutil.True
		}
	}
}

func (f *fakeAPI) GetProgramInfoLog(program uint32) string {
	f.record("GetProgramInfoLog(%d)", program)
	return f.failLinkLog
}

func (f *fakeAPI) DetachShader(program, shader uint32) {
	f.record("DetachShader(%d, %d)", program, shader)
}

func (f *fakeAPI) UseProgram(program uint32) {
	f.record("UseProgram(%d)", program)
}

func (f *fakeAPI) DeleteProgram(program uint32) {
	f.record("DeleteProgram(%d)", program)
}

func (f *fakeAPI) GetUniformLocation(program uint32, name string) int32 {
	f.record("GetUniformLocation(%d, %q)", program, name)
	loc, ok := f.uniforms[name]
	if !ok {
		return -1
	}
	return loc
}

func (f *fakeAPI) Uniform1f(location int32, v0 float32) {
	f.record("Uniform1f(%d, %g)", location, v0)
}

func (f *fakeAPI) Uniform2f(location int32, v0, v1 float32) {
	f.record("Uniform2f(%d, %g, %g)", location, v0, v1)
}

func (f *fakeAPI) GenBuffers(n int32, buffers *uint32) {
	*buffers = f.alloc()
	f.record("GenBuffers(%d)", n)
}

func (f *fakeAPI) DeleteBuffers(n int32, buffers *uint32) {
	f.record("DeleteBuffers(%d)", *buffers)
}

func (f *fakeAPI) BindBuffer(target, buffer uint32) {
	f.record("BindBuffer(%d, %d)", target, buffer)
}

func (f *fakeAPI) BufferData(target uint32, data []float32, usage uint32) {
	f.record("BufferData(%d, len=%d, usage=%d)", target, len(data), usage)
	f.pendingErr = f.errAfterUpload
}

func (f *fakeAPI) BufferSubData(target uint32, offset int, data []float32) {
	f.record("BufferSubData(%d, off=%d, len=%d)", target, offset, len(data))
}

func (f *fakeAPI) GenVertexArrays(n int32, arrays *uint32) {
	*arrays = f.alloc()
	f.record("GenVertexArrays(%d)", n)
}

func (f *fakeAPI) DeleteVertexArrays(n int32, arrays *uint32) {
	f.record("DeleteVertexArrays(%d)", *arrays)
}

func (f *fakeAPI) BindVertexArray(array uint32) {
	f.record("BindVertexArray(%d)", array)
}

func (f *fakeAPI) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	f.record("VertexAttribPointer(%d, %d, off=%d)", index, size, offset)
}

func (f *fakeAPI) EnableVertexAttribArray(index uint32) {
	f.record("EnableVertexAttribArray(%d)", index)
}

func (f *fakeAPI) DisableVertexAttribArray(index uint32) {
	f.record("DisableVertexAttribArray(%d)", index)
}

func (f *fakeAPI) ClearColor(r, g, b, a float32) {
	f.record("ClearColor(%g, %g, %g, %g)", r, g, b, a)
}

func (f *fakeAPI) Clear(mask uint32) {
	f.record("Clear(%d)", mask)
}

func (f *fakeAPI) Viewport(x, y, width, height int32) {
	f.record("Viewport(%d, %d, %d, %d)", x, y, width, height)
}

func (f *fakeAPI) DrawArrays(mode uint32, first, count int32) {
	f.record("DrawArrays(%d, %d, %d)", mode, first, count)
}

func (f *fakeAPI) Flush() {
	f.record("Flush()")
}

func (f *fakeAPI) GetError() uint32 {
	f.record("GetError()")
	code := f.pendingErr
	f.pendingErr = 0
	return code
}

func (f *fakeAPI) GetString(name uint32) string {
	f.record("GetString(%d)", name)
	return "fake"
}
