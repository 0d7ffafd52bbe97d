package scene

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/assets"
	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/Carmen-Shannon/oxy-gl/engine/device"
	"github.com/Carmen-Shannon/oxy-gl/engine/device/devicetest"
	"github.com/Carmen-Shannon/oxy-gl/engine/game_object"
	"github.com/Carmen-Shannon/oxy-gl/engine/input"
	"github.com/Carmen-Shannon/oxy-gl/engine/light"
	"github.com/Carmen-Shannon/oxy-gl/engine/model"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/shader"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sceneUniforms = []string{
	"view", "projection", "viewPos", "model", "normalMatrix",
	"lightColor", "diffuse", "reflected",
	"fog.color", "fog.start", "fog.end", "fog.use",
	"blinn", "night",
	"DirectionalLightsCount", "PointLightsCount", "FlashLightsCount",
}

func newTestRenderer(t *testing.T, dev *devicetest.Device, keys ...string) renderer.Renderer {
	t.Helper()
	programs := map[string][]string{
		ProgramLit:    assets.PhongProgram,
		ProgramLamp:   assets.LampProgram,
		ProgramMirror: assets.MirrorProgram,
	}
	r := renderer.NewRenderer(dev, renderer.WithSize(800, 600))
	for _, key := range keys {
		p, err := shader.NewReloadableProgram(dev, assets.Source(), programs[key])
		require.NoError(t, err)
		r.RegisterProgram(key, p)
	}
	return r
}

func newTestCamera(position mgl32.Vec3) camera.Camera {
	return camera.NewCamera(camera.NewFlyControl(position, mgl32.Vec3{}), camera.NewPerspectiveProjection())
}

func newTestScene(t *testing.T, options ...SceneBuilderOption) (*devicetest.Device, Scene) {
	t.Helper()
	dev := devicetest.New()
	dev.HiddenUniforms = sceneUniforms
	r := newTestRenderer(t, dev, ProgramLit, ProgramLamp, ProgramMirror)
	cams := camera.NewCameraRotation(newTestCamera(mgl32.Vec3{0, 0, 10}))
	return dev, NewScene("test", r, cams, options...)
}

func newCubeObject(t *testing.T, dev device.Device, options ...game_object.GameObjectBuilderOption) game_object.GameObject {
	t.Helper()
	cube, err := model.NewCube(dev)
	require.NoError(t, err)
	return game_object.NewGameObject(append([]game_object.GameObjectBuilderOption{game_object.WithMesh(cube)}, options...)...)
}

func TestAddBindsAttachedLight(t *testing.T) {
	_, s := newTestScene(t)
	l := light.NewLight(light.LightTypePoint)
	obj := game_object.NewGameObject(
		game_object.WithName("sphere"),
		game_object.WithPosition(mgl32.Vec3{5, 5, 5}),
		game_object.WithLight(l),
	)

	id := s.Add(obj)
	assert.Equal(t, uint64(1), id)
	assert.Same(t, obj, s.Get(id))
	assert.True(t, l.Position().IsDynamic())
	require.Len(t, s.Lighting().Lights(light.LightTypePoint), 1)

	b := s.Lighting().Bindings()
	pos, ok := b.Lookup("object.sphere")
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{5, 5, 5}, pos)

	obj.SetPosition(mgl32.Vec3{1, 2, 3})
	pos, _ = b.Lookup("object.sphere")
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, pos)

	assert.True(t, s.Remove(id))
	assert.False(t, s.Remove(id))
	_, ok = b.Lookup("object.sphere")
	assert.False(t, ok)
	assert.Empty(t, s.Lighting().Lights(light.LightTypePoint))
	assert.Zero(t, s.Count())
}

func TestAddReassignsTakenIDs(t *testing.T) {
	_, s := newTestScene(t)
	a := game_object.NewGameObject(game_object.WithID(7))
	b := game_object.NewGameObject(game_object.WithID(7))
	c := game_object.NewGameObject()

	assert.Equal(t, uint64(7), s.Add(a))
	assert.Equal(t, uint64(8), s.Add(b))
	assert.Equal(t, uint64(9), s.AddLamp(c))

	assert.Equal(t, []game_object.GameObject{a, b}, s.Objects())
	assert.Equal(t, []game_object.GameObject{c}, s.Lamps())
	assert.Equal(t, 3, s.Count())

	s.Clear()
	assert.Zero(t, s.Count())
	assert.Empty(t, s.Objects())
}

func TestCameraBindingsFollowActiveCamera(t *testing.T) {
	dev := devicetest.New()
	first := newTestCamera(mgl32.Vec3{0, 0, 10})
	second := newTestCamera(mgl32.Vec3{4, 0, 0})
	s := NewScene("cams", newTestRenderer(t, dev), camera.NewCameraRotation(first, second))

	b := s.Lighting().Bindings()
	pos, ok := b.Lookup(CameraPositionSource)
	require.True(t, ok)
	assert.Equal(t, first.Position(), pos)
	fwd, _ := b.Lookup(CameraForwardSource)
	assert.Equal(t, first.Forward(), fwd)

	s.SwitchCamera()
	assert.Same(t, second, s.Camera())
	pos, _ = b.Lookup(CameraPositionSource)
	assert.Equal(t, second.Position(), pos)
}

func TestRenderDrawsMirrorPassFirst(t *testing.T) {
	dev, s := newTestScene(t)
	red := light.NewLight(light.LightTypePoint, light.WithColor(mgl32.Vec3{1, 0, 0}))
	s.Add(newCubeObject(t, dev))
	s.AddLamp(newCubeObject(t, dev, game_object.WithLight(red)))

	plane, err := model.NewPlane(dev)
	require.NoError(t, err)
	surface := game_object.NewGameObject(game_object.WithMesh(plane), game_object.WithPosition(mgl32.Vec3{0, 0, -20}))
	m, err := NewMirror(dev, surface, 128, nil)
	require.NoError(t, err)
	s.SetMirror(m)

	passes := s.Passes()
	require.Len(t, passes, 2)
	assert.Equal(t, "mirror", passes[0].Name)
	assert.True(t, passes[0].Offscreen())

	require.NoError(t, s.Render())

	lamp := s.Renderer().Program(ProgramLamp).Handle()
	lit := s.Renderer().Program(ProgramLit).Handle()
	mirror := s.Renderer().Program(ProgramMirror).Handle()

	require.Len(t, dev.Draws, 5)
	for _, d := range dev.Draws[:2] {
		assert.Equal(t, m.Target().Handle(), d.Framebuffer)
	}
	for _, d := range dev.Draws[2:] {
		assert.Equal(t, device.InvalidHandle, d.Framebuffer)
	}
	assert.Equal(t, []device.Handle{lamp, lit, lamp, lit, mirror}, []device.Handle{
		dev.Draws[0].Program, dev.Draws[1].Program, dev.Draws[2].Program, dev.Draws[3].Program, dev.Draws[4].Program,
	})

	color, ok := dev.LastUpload("lightColor")
	require.True(t, ok)
	assert.Equal(t, []float32{1, 0, 0}, color.Floats)
	reflected, ok := dev.LastUpload("reflected")
	require.True(t, ok)
	assert.Equal(t, []int32{1}, reflected.Ints)
	assert.Equal(t, 2, dev.UploadCount("PointLightsCount"))
}

func TestRenderWithoutLitProgram(t *testing.T) {
	dev := devicetest.New()
	s := NewScene("bare", newTestRenderer(t, dev), camera.NewCameraRotation(newTestCamera(mgl32.Vec3{0, 0, 5})))
	s.Add(newCubeObject(t, dev))

	err := s.Render()
	require.ErrorIs(t, err, ErrMissingProgram)
	assert.Contains(t, err.Error(), ProgramLit)
	assert.Empty(t, dev.Draws)
	assert.Equal(t, device.InvalidHandle, dev.BoundFramebuffer)
}

func TestClearColorFollowsFog(t *testing.T) {
	m := light.NewManager(light.WithFog(light.NewFog(10, 50)))
	dev, s := newTestScene(t, WithLighting(m))

	assert.Equal(t, DefaultBackground, s.ClearColor())

	assert.True(t, s.ToggleFog())
	assert.Equal(t, mgl32.Vec4{0.7, 0.7, 0.7, 1}, s.ClearColor())
	use, ok := dev.LastUpload("fog.use")
	require.True(t, ok)
	assert.Equal(t, []int32{1}, use.Ints)

	assert.False(t, s.ToggleFog())
	assert.Equal(t, DefaultBackground, s.ClearColor())
}

func TestToggleWithoutFog(t *testing.T) {
	_, s := newTestScene(t)
	assert.False(t, s.ToggleFog())
	assert.True(t, s.ToggleBlinn())
	assert.True(t, s.ToggleNight())
	assert.False(t, s.ToggleNight())
}

func TestUpdateHandlesKeys(t *testing.T) {
	dev := devicetest.New()
	first := newTestCamera(mgl32.Vec3{0, 0, 10})
	second := newTestCamera(mgl32.Vec3{4, 0, 0})
	s := NewScene("keys", newTestRenderer(t, dev), camera.NewCameraRotation(first, second))

	s.Update(0.016, input.NewSnapshot(input.WithKeysPressed(common.KeySpace, common.KeyN)))
	assert.Same(t, second, s.Camera())
	assert.True(t, s.Lighting().Night())
	assert.False(t, s.Lighting().Blinn())

	s.Update(0.016, input.NewSnapshot(input.WithKeysDown(common.KeySpace)))
	assert.Same(t, second, s.Camera())
}

func TestUpdateWithoutControls(t *testing.T) {
	dev := devicetest.New()
	first := newTestCamera(mgl32.Vec3{0, 0, 10})
	second := newTestCamera(mgl32.Vec3{4, 0, 0})
	s := NewScene("keys", newTestRenderer(t, dev), camera.NewCameraRotation(first, second), WithControls(Controls{}))

	s.Update(0.016, input.NewSnapshot(input.WithKeysPressed(common.KeySpace, common.KeyB)))
	assert.Same(t, first, s.Camera())
	assert.False(t, s.Lighting().Blinn())
}

func TestResizeUpdatesAspect(t *testing.T) {
	_, s := newTestScene(t)
	s.Resize(1600, 900)
	assert.InDelta(t, 16.0/9.0, s.Camera().Aspect(), 1e-6)
	w, h := s.Renderer().Size()
	assert.Equal(t, 1600, w)
	assert.Equal(t, 900, h)
}

func TestMirrorView(t *testing.T) {
	dev := devicetest.New()
	plane, err := model.NewPlane(dev)
	require.NoError(t, err)
	surface := game_object.NewGameObject(
		game_object.WithMesh(plane),
		game_object.WithPosition(mgl32.Vec3{0, 0, -20}),
		game_object.WithScale(mgl32.Vec3{5, 5, 5}),
	)
	m, err := NewMirror(dev, surface, 0, nil)
	require.NoError(t, err)

	w, h := m.Target().Size()
	assert.Equal(t, DefaultMirrorSize, w)
	assert.Equal(t, DefaultMirrorSize, h)

	assert.Equal(t, mgl32.Vec3{0, 0, -17}, m.Eye())
	want := mgl32.LookAtV(mgl32.Vec3{0, 0, -17}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0})
	assert.True(t, want.ApproxEqual(m.ViewMatrix()))

	frame := m.FrameMatrix()
	assert.InDelta(t, -20.05, frame.At(2, 3), 1e-5)
	assert.InDelta(t, 5.5, frame.At(0, 0), 1e-5)
	assert.InDelta(t, 5, frame.At(2, 2), 1e-5)

	tex, err := m.Texture()
	require.NoError(t, err)
	assert.False(t, tex.Released())

	m.Release()
	assert.True(t, m.Target().Released())

	_, err = NewMirror(dev, game_object.NewGameObject(), 16, nil)
	assert.Error(t, err)
}

func TestReloadShadersWithoutPathsRebuildsAll(t *testing.T) {
	_, s := newTestScene(t)
	n, err := s.ReloadShaders(nil)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = s.ReloadShaders([]string{"shaders/lamp.frag"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
