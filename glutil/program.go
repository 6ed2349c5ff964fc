package glutil

import "fmt"

// Program owns a linked GL program object.
type Program struct {
	gl API
	id uint32
}

// LinkProgram links the given shaders into a new program.
//
// The shaders are attached only for the duration of the link and remain
// owned by the caller, which may Release them as soon as LinkProgram
// returns. On link failure the program object is deleted and the returned
// error is a *LinkError carrying the linker log.
func LinkProgram(gl API, shaders ...*Shader) (*Program, error) {
	id := gl.CreateProgram()
	if id == 0 {
		return nil, fmt.Errorf("link program: CreateProgram failed (gl error 0x%04X)", gl.GetError())
	}
	for _, s := range shaders {
		gl.AttachShader(id, s.ID())
	}
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, LinkStatus, &status)
	if status == False {
		err := &LinkError{Log: gl.GetProgramInfoLog(id)}
		for _, s := range shaders {
			gl.DetachShader(id, s.ID())
		}
		gl.DeleteProgram(id)
		return nil, err
	}
	for _, s := range shaders {
		gl.DetachShader(id, s.ID())
	}
	return &Program{gl: gl, id: id}, nil
}

// MustLinkProgram is like LinkProgram but panics on error.
func MustLinkProgram(gl API, shaders ...*Shader) *Program {
	p, err := LinkProgram(gl, shaders...)
	if err != nil {
		panic(err)
	}
	return p
}

// ID returns the underlying GL program name, or zero after Release.
func (p *Program) ID() uint32 { return p.id }

// UniformLocation returns the location of the named uniform, or -1 when the
// linked program has no active uniform of that name.
func (p *Program) UniformLocation(name string) int32 {
	return p.gl.GetUniformLocation(p.id, name)
}

// Release deletes the GL program object. Calling it again is a no-op.
func (p *Program) Release() {
	if p.id != 0 {
		p.gl.DeleteProgram(p.id)
		p.id = 0
	}
}
