package glutil

import (
	"errors"
	"fmt"
)

// ErrSourceEncoding reports shader source text that cannot be handed to the
// GL, such as source containing an interior NUL byte. It is detected before
// any GL call is made and is distinct from a compilation failure.
var ErrSourceEncoding = errors.New("shader source contains a NUL byte")

// CompileError reports a failed shader compilation.
type CompileError struct {
	Kind ShaderKind // stage that failed to compile
	Log  string     // compiler diagnostic as reported by the driver
}

func (e *CompileError) Error() string {
	if e.Log == "" {
		return fmt.Sprintf("compile %s shader failed", e.Kind)
	}
	return fmt.Sprintf("compile %s shader: %s", e.Kind, e.Log)
}

// LinkError reports a failed program link.
type LinkError struct {
	Log string // linker diagnostic as reported by the driver
}

func (e *LinkError) Error() string {
	if e.Log == "" {
		return "link program failed"
	}
	return fmt.Sprintf("link program: %s", e.Log)
}
