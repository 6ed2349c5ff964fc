package glutil_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-gltut/gltut/glutil"
)

func TestNewVertexBuffer(t *testing.T) {
	gl := &fakeAPI{}
	data := []float32{0, 0.5, 0, 1, 0.5, -0.366, 0, 1, -0.5, -0.366, 0, 1}
	buf, err := glutil.NewVertexBuffer(gl, data, glutil.StaticDraw)
	require.NoError(t, err)
	assert.NotZero(t, buf.ID())
	assert.Contains(t, gl.trace,
		fmt.Sprintf("BufferData(%d, len=%d, usage=%d)", glutil.ArrayBuffer, len(data), glutil.StaticDraw))
	assert.Contains(t, gl.trace,
		fmt.Sprintf("BindBuffer(%d, 0)", glutil.ArrayBuffer), "buffer must be unbound after the upload")
	assert.Zero(t, gl.count("DeleteBuffers"))
}

func TestNewVertexBufferAllocFailure(t *testing.T) {
	gl := &fakeAPI{errAfterUpload: glutil.OutOfMemory}
	buf, err := glutil.NewVertexBuffer(gl, make([]float32, 1024), glutil.StaticDraw)
	require.Error(t, err)
	assert.Nil(t, buf)
	assert.Contains(t, err.Error(), "0x0505")
	assert.Equal(t, 1, gl.count("DeleteBuffers"), "failed buffer name must be deleted")
}

func TestBufferUpdate(t *testing.T) {
	gl := &fakeAPI{}
	buf, err := glutil.NewVertexBuffer(gl, make([]float32, 8), glutil.StreamDraw)
	require.NoError(t, err)

	gl.trace = nil
	buf.Update([]float32{1, 2, 3})
	assert.Equal(t, []string{
		fmt.Sprintf("BindBuffer(%d, %d)", glutil.ArrayBuffer, buf.ID()),
		fmt.Sprintf("BufferSubData(%d, off=0, len=3)", glutil.ArrayBuffer),
		fmt.Sprintf("BindBuffer(%d, 0)", glutil.ArrayBuffer),
	}, gl.trace)
}

func TestBufferReleaseIdempotent(t *testing.T) {
	gl := &fakeAPI{}
	buf, err := glutil.NewVertexBuffer(gl, make([]float32, 8), glutil.StaticDraw)
	require.NoError(t, err)
	buf.Release()
	buf.Release()
	assert.Equal(t, 1, gl.count("DeleteBuffers"))
	assert.Zero(t, buf.ID())
}
