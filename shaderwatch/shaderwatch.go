// Package shaderwatch rebuilds shader programs when their source files
// change on disk. It watches a vertex/fragment pair and hands out a
// coalesced change signal, leaving the actual rebuild to whichever
// goroutine owns the GL context.
package shaderwatch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"

	"github.com/go-gltut/gltut/glutil"
)

// Watcher tracks a vertex and fragment shader source pair on disk.
type Watcher struct {
	vertPath string
	fragPath string

	fs      *fsnotify.Watcher
	changed chan struct{}
	pending atomic.Bool
}

// New starts watching the given vertex and fragment source files. The
// parent directories are watched rather than the files themselves, so
// editors that save by writing a temp file and renaming it over the
// original are still caught.
func New(vertPath, fragPath string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("shader watcher: %w", err)
	}

	w := &Watcher{
		vertPath: filepath.Clean(vertPath),
		fragPath: filepath.Clean(fragPath),
		fs:       fs,
		changed:  make(chan struct{}, 1),
	}

	watched := make(map[string]bool, 2)
	for _, p := range []string{w.vertPath, w.fragPath} {
		dir := filepath.Dir(p)
		if watched[dir] {
			continue
		}
		if err := fs.Add(dir); err != nil {
			fs.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
		watched[dir] = true
	}

	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.changed)
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.affects(ev) {
				continue
			}
			w.pending.Store(true)
			select {
			case w.changed <- struct{}{}:
			default:
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			slog.Warn("shader watch error", "error", err)
		}
	}
}

// affects reports whether ev touches one of the two watched sources.
func (w *Watcher) affects(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	name := filepath.Clean(ev.Name)
	return name == w.vertPath || name == w.fragPath
}

// Changed returns a channel that receives one value per burst of source
// changes and is closed when the watcher is closed. Receiving from it is
// a wake-up only; check Pending and call Reload on the GL context thread.
func (w *Watcher) Changed() <-chan struct{} { return w.changed }

// Pending reports whether the sources changed since the last Reload.
func (w *Watcher) Pending() bool { return w.pending.Load() }

// Reload reads both sources and builds a fresh program on gl. It must
// run on the thread that owns the GL context. The pending flag is
// cleared up front, so a change landing mid-reload marks the watcher
// pending again. On error the caller keeps its current program.
func (w *Watcher) Reload(gl glutil.API) (*glutil.Program, error) {
	w.pending.Store(false)

	vertSrc, err := os.ReadFile(w.vertPath)
	if err != nil {
		return nil, fmt.Errorf("reload shaders: %w", err)
	}
	fragSrc, err := os.ReadFile(w.fragPath)
	if err != nil {
		return nil, fmt.Errorf("reload shaders: %w", err)
	}

	vs, err := glutil.CompileShader(gl, glutil.VertexShader, string(vertSrc))
	if err != nil {
		return nil, err
	}
	defer vs.Release()

	fs, err := glutil.CompileShader(gl, glutil.FragmentShader, string(fragSrc))
	if err != nil {
		return nil, err
	}
	defer fs.Release()

	return glutil.LinkProgram(gl, vs, fs)
}

// Close stops watching and closes the Changed channel, releasing any
// goroutine that ranges over it. Calling Close more than once is safe.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
