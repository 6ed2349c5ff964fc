package glutil

import (
	"fmt"
	"strings"
)

// ShaderKind identifies a programmable pipeline stage. Its value is the
// matching GL shader type enum.
type ShaderKind uint32

const (
	VertexShader   ShaderKind = 0x8B31
	FragmentShader ShaderKind = 0x8B30
)

// String returns the lowercase stage name as it appears in diagnostics.
func (k ShaderKind) String() string {
	switch k {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	default:
		return fmt.Sprintf("ShaderKind(0x%04X)", uint32(k))
	}
}

// Shader owns a compiled GL shader object.
type Shader struct {
	gl   API
	id   uint32
	kind ShaderKind
}

// CompileShader compiles source as a shader of the given kind.
//
// The source must not contain NUL bytes; if it does, CompileShader fails
// with an error wrapping ErrSourceEncoding before any GL call is made. On
// compilation failure the shader object is deleted and the returned error
// is a *CompileError carrying the compiler log.
func CompileShader(gl API, kind ShaderKind, source string) (*Shader, error) {
	if strings.ContainsRune(source, 0) {
		return nil, fmt.Errorf("compile %s shader: %w", kind, ErrSourceEncoding)
	}
	id := gl.CreateShader(uint32(kind))
	if id == 0 {
		return nil, fmt.Errorf("compile %s shader: CreateShader failed (gl error 0x%04X)", kind, gl.GetError())
	}
	gl.ShaderSource(id, source)
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, CompileStatus, &status)
	if status == False {
		err := &CompileError{Kind: kind, Log: gl.GetShaderInfoLog(id)}
		gl.DeleteShader(id)
		return nil, err
	}
	return &Shader{gl: gl, id: id, kind: kind}, nil
}

// MustCompileShader is like CompileShader but panics on error. Intended for
// programs whose sources are known good, like the examples in this
// repository.
func MustCompileShader(gl API, kind ShaderKind, source string) *Shader {
	s, err := CompileShader(gl, kind, source)
	if err != nil {
		panic(err)
	}
	return s
}

// ID returns the underlying GL shader name, or zero after Release.
func (s *Shader) ID() uint32 { return s.id }

// Kind returns the stage this shader was compiled for.
func (s *Shader) Kind() ShaderKind { return s.kind }

// Release deletes the GL shader object. Calling it again is a no-op.
func (s *Shader) Release() {
	if s.id != 0 {
		s.gl.DeleteShader(s.id)
		s.id = 0
	}
}
