package shader

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/Carmen-Shannon/oxy-gl/engine/device/devicetest"
	"github.com/Carmen-Shannon/oxy-gl/engine/loader"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func reloadFS() fstest.MapFS {
	return fstest.MapFS{
		"lit.vert": {Data: []byte("void main() { gl_Position = vec4(0.0); }")},
		"lit.frag": {Data: []byte("void main() {}")},
	}
}

func TestReloadableProgramSwapsOnSuccess(t *testing.T) {
	dev := devicetest.New()
	fsys := reloadFS()
	r, err := NewReloadableProgram(dev, loader.NewFSSource(fsys), []string{"lit.vert", "lit.frag"}, WithName("lit"))
	require.NoError(t, err)

	first := r.Program()
	fsys["lit.frag"] = &fstest.MapFile{Data: []byte("//@oxy:define VARIANT 2\nvoid main() {}")}
	require.NoError(t, r.Reload())

	assert.NotSame(t, first, r.Program())
	assert.True(t, first.Released())
	v, ok := r.Program().Define("VARIANT")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	r.Release()
	assert.True(t, r.Program().Released())
}

func TestReloadableProgramKeepsOldOnFailure(t *testing.T) {
	dev := devicetest.New()
	dev.FailCompile("BROKEN", "syntax error")
	fsys := reloadFS()
	r, err := NewReloadableProgram(dev, loader.NewFSSource(fsys), []string{"lit.vert", "lit.frag"})
	require.NoError(t, err)
	first := r.Program()

	fsys["lit.frag"] = &fstest.MapFile{Data: []byte("BROKEN")}
	err = r.Reload()
	require.ErrorIs(t, err, ErrCompile)
	assert.Same(t, first, r.Program())
	assert.False(t, first.Released())

	delete(fsys, "lit.vert")
	assert.ErrorIs(t, r.Reload(), loader.ErrNotFound)
	assert.Same(t, first, r.Program())
}

func TestNewReloadableProgramFailsOnFirstBuild(t *testing.T) {
	_, err := NewReloadableProgram(devicetest.New(), loader.NewFSSource(reloadFS()), []string{"nope.vert"})
	assert.ErrorIs(t, err, loader.ErrNotFound)
}

func TestReloadableProgramUses(t *testing.T) {
	r, err := NewReloadableProgram(devicetest.New(), loader.NewFSSource(reloadFS()), []string{"lit.vert", "lit.frag"})
	require.NoError(t, err)
	assert.True(t, r.Uses("lit.frag"))
	assert.False(t, r.Uses("lamp.frag"))

	paths := r.Paths()
	paths[0] = "changed"
	assert.Equal(t, "lit.vert", r.Paths()[0])
}

func TestWatcherReportsWrites(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "shaders"), 0o755))
	target := filepath.Join(root, "shaders", "lit.frag")
	require.NoError(t, os.WriteFile(target, []byte("void main() {}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "shaders", "other.txt"), nil, 0o644))

	w, err := NewWatcher(root, zap.NewNop())
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Add("shaders/lit.frag"))

	require.NoError(t, os.WriteFile(filepath.Join(root, "shaders", "other.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(target, []byte("void main() { }"), 0o644))

	var pending []string
	require.Eventually(t, func() bool {
		pending = append(pending, w.Pending()...)
		return len(pending) > 0
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "shaders/lit.frag", pending[0])
	assert.NotContains(t, pending, "shaders/other.txt")

	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
