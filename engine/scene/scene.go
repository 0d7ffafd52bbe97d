package scene

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/Carmen-Shannon/oxy-gl/engine/game_object"
	"github.com/Carmen-Shannon/oxy-gl/engine/input"
	"github.com/Carmen-Shannon/oxy-gl/engine/light"
	"github.com/Carmen-Shannon/oxy-gl/engine/logger"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/shader"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Program keys the scene looks up in its renderer.
const (
	ProgramLit    = "lit"
	ProgramLamp   = "lamp"
	ProgramMirror = "mirror"
)

// Binding ids published by every scene. They always follow the active camera.
const (
	CameraPositionSource light.SourceID = "camera.position"
	CameraForwardSource  light.SourceID = "camera.forward"
)

// ErrMissingProgram is returned when a frame needs a program the renderer does not hold.
var ErrMissingProgram = errors.New("program not registered")

// DefaultBackground is the clear color used while fog is off.
var DefaultBackground = mgl32.Vec4{0.1, 0.1, 0.1, 1}

// Controls maps keys to the scene's toggles. A zero key disables the action.
type Controls struct {
	SwitchCamera uint32
	ToggleFog    uint32
	ToggleBlinn  uint32
	ToggleNight  uint32
}

// entry is one registered object.
type entry struct {
	obj  game_object.GameObject
	lamp bool
}

type scene struct {
	mu *sync.Mutex

	name   string
	active bool

	registry map[uint64]entry
	order    []uint64
	nextID   uint64

	cameras  *camera.CameraRotation
	r        renderer.Renderer
	lighting light.Manager
	mirror   *Mirror

	background mgl32.Vec4
	controls   Controls

	// initial holds objects passed as options until the lighting manager exists.
	initial []entry

	log *zap.Logger
}

// Scene owns the objects, lamps, cameras and lighting of one world and turns them into
// render passes. Objects with an attached light publish their position as a binding so the
// light follows them. Scenes can be hot-swapped through the Active flag.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently active for rendering.
	Active() bool

	// SetActive sets whether this scene is active for rendering.
	SetActive(active bool)

	// Renderer returns the scene's renderer.
	Renderer() renderer.Renderer

	// Camera returns the active camera.
	Camera() camera.Camera

	// Cameras returns the camera rotation.
	Cameras() *camera.CameraRotation

	// SwitchCamera activates the next waiting camera.
	SwitchCamera()

	// Lighting returns the light manager.
	Lighting() light.Manager

	// Count returns the number of registered objects, lamps included.
	Count() int

	// Add registers an object drawn with the lit program. Objects without an ID, or with an
	// ID already taken, are assigned a new one. An attached light is added to the lighting
	// manager and bound to the object's position.
	//
	// Parameters:
	//   - obj: the object to add
	//
	// Returns:
	//   - uint64: the object's ID
	Add(obj game_object.GameObject) uint64

	// AddLamp registers an object drawn unlit in its attached light's diffuse color, white
	// when it has no light.
	//
	// Parameters:
	//   - obj: the lamp object
	//
	// Returns:
	//   - uint64: the object's ID
	AddLamp(obj game_object.GameObject) uint64

	// Get returns a registered object, or nil.
	//
	// Parameters:
	//   - id: the object's ID
	//
	// Returns:
	//   - game_object.GameObject: the object or nil
	Get(id uint64) game_object.GameObject

	// Objects returns the lit objects in insertion order.
	Objects() []game_object.GameObject

	// Lamps returns the lamp objects in insertion order.
	Lamps() []game_object.GameObject

	// Remove unregisters an object, unbinding and removing its attached light.
	//
	// Parameters:
	//   - id: the object's ID
	//
	// Returns:
	//   - bool: false if no object had the ID
	Remove(id uint64) bool

	// Clear removes every object and lamp.
	Clear()

	// Mirror returns the mirror, or nil.
	Mirror() *Mirror

	// SetMirror installs a mirror, replacing and releasing the previous one.
	//
	// Parameters:
	//   - m: the mirror, nil to remove
	SetMirror(m *Mirror)

	// SetBackground sets the clear color used while fog is off.
	SetBackground(c mgl32.Vec4)

	// ClearColor returns the fog color while fog is on, the background otherwise.
	ClearColor() mgl32.Vec4

	// ToggleFog flips fog and uploads the new flag to the lit program.
	//
	// Returns:
	//   - bool: the new state, false when the scene has no fog
	ToggleFog() bool

	// ToggleBlinn flips between Phong and Blinn-Phong specular.
	ToggleBlinn() bool

	// ToggleNight flips the night flag.
	ToggleNight() bool

	// Update feeds input to the active camera, advances it by dt and handles the toggle keys.
	//
	// Parameters:
	//   - dt: the frame time in seconds
	//   - in: the input snapshot of the frame
	Update(dt float32, in input.Snapshot)

	// Passes returns the passes of one frame: the mirror pass when a mirror is installed,
	// then the main pass.
	Passes() []renderer.Pass

	// Render draws one frame through the renderer.
	//
	// Returns:
	//   - error: the first pass error
	Render() error

	// Resize updates the renderer size and the cameras' aspect ratio.
	//
	// Parameters:
	//   - width: framebuffer width in pixels
	//   - height: framebuffer height in pixels
	Resize(width, height int)

	// ReloadShaders rebuilds the programs that use any of paths, every program when paths is
	// empty.
	//
	// Returns:
	//   - int: programs rebuilt
	//   - error: joined rebuild errors
	ReloadShaders(paths []string) (int, error)

	// Release releases the renderer's programs and the mirror target.
	Release()
}

var _ Scene = &scene{}

// NewScene creates a scene over a renderer and a camera rotation. Both are required and
// NewScene panics if either is nil.
//
// Parameters:
//   - name: the name of the scene
//   - r: the renderer holding the lit, lamp and mirror programs
//   - cameras: the camera rotation
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, r renderer.Renderer, cameras *camera.CameraRotation, options ...SceneBuilderOption) Scene {
	if r == nil {
		panic("scene: NewScene requires a non-nil Renderer")
	}
	if cameras == nil || cameras.Active() == nil {
		panic("scene: NewScene requires an active Camera")
	}

	s := &scene{
		mu:         &sync.Mutex{},
		name:       name,
		registry:   make(map[uint64]entry),
		nextID:     1,
		cameras:    cameras,
		r:          r,
		background: DefaultBackground,
		controls: Controls{
			SwitchCamera: uint32(common.KeySpace),
			ToggleFog:    uint32(common.KeyF),
			ToggleBlinn:  uint32(common.KeyB),
			ToggleNight:  uint32(common.KeyN),
		},
		log: logger.Log,
	}

	for _, option := range options {
		option(s)
	}
	if s.lighting == nil {
		s.lighting = light.NewManager(light.WithLogger(s.log))
	}

	b := s.lighting.Bindings()
	b.Bind(CameraPositionSource, func() mgl32.Vec3 { return s.cameras.Active().Position() })
	b.Bind(CameraForwardSource, func() mgl32.Vec3 { return s.cameras.Active().Forward() })

	for _, e := range s.initial {
		s.add(e.obj, e.lamp)
	}
	s.initial = nil
	return s
}

func (s *scene) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Renderer() renderer.Renderer {
	return s.r
}

func (s *scene) Camera() camera.Camera {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cameras.Active()
}

func (s *scene) Cameras() *camera.CameraRotation {
	return s.cameras
}

func (s *scene) SwitchCamera() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cameras.SwitchActive()
	s.log.Debug("camera switched", zap.String("scene", s.name), zap.Int("waiting", s.cameras.Len()))
}

func (s *scene) Lighting() light.Manager {
	return s.lighting
}

func (s *scene) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.registry)
}

func (s *scene) Add(obj game_object.GameObject) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(obj, false)
}

func (s *scene) AddLamp(obj game_object.GameObject) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(obj, true)
}

func (s *scene) add(obj game_object.GameObject, lamp bool) uint64 {
	if _, taken := s.registry[obj.ID()]; obj.ID() == 0 || taken {
		obj.SetID(s.nextID)
	}
	if obj.ID() >= s.nextID {
		s.nextID = obj.ID() + 1
	}
	s.registry[obj.ID()] = entry{obj: obj, lamp: lamp}
	s.order = append(s.order, obj.ID())

	if l := obj.Light(); l != nil {
		src := obj.SourceID()
		s.lighting.Bindings().Bind(src, obj.Position)
		if l.Type() != light.LightTypeDirectional {
			l.SetPosition(light.Bound(src, obj.Position()))
		}
		s.lighting.Add(l)
	}
	return obj.ID()
}

func (s *scene) Get(id uint64) game_object.GameObject {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry[id].obj
}

func (s *scene) Objects() []game_object.GameObject {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collect(false)
}

func (s *scene) Lamps() []game_object.GameObject {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collect(true)
}

func (s *scene) collect(lamp bool) []game_object.GameObject {
	out := make([]game_object.GameObject, 0, len(s.order))
	for _, id := range s.order {
		if e := s.registry[id]; e.lamp == lamp {
			out = append(out, e.obj)
		}
	}
	return out
}

func (s *scene) Remove(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.registry[id]
	if !ok {
		return false
	}
	s.detach(e.obj)
	delete(s.registry, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *scene) detach(obj game_object.GameObject) {
	l := obj.Light()
	if l == nil {
		return
	}
	s.lighting.Bindings().Unbind(obj.SourceID())
	s.lighting.Remove(l)
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.order {
		s.detach(s.registry[id].obj)
	}
	s.registry = make(map[uint64]entry)
	s.order = nil
}

func (s *scene) Mirror() *Mirror {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mirror
}

func (s *scene) SetMirror(m *Mirror) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mirror != nil && s.mirror != m {
		s.mirror.Release()
	}
	s.mirror = m
}

func (s *scene) SetBackground(c mgl32.Vec4) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.background = c
}

func (s *scene) ClearColor() mgl32.Vec4 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearColor()
}

func (s *scene) clearColor() mgl32.Vec4 {
	if f := s.lighting.Fog(); f != nil && f.Enabled {
		return f.Color.Vec4(1)
	}
	return s.background
}

func (s *scene) ToggleFog() bool {
	on := s.lighting.ToggleFog(s.toggleTarget())
	s.log.Info("fog toggled", zap.Bool("enabled", on))
	return on
}

func (s *scene) ToggleBlinn() bool {
	on := s.lighting.ToggleBlinn(s.toggleTarget())
	s.log.Info("blinn toggled", zap.Bool("enabled", on))
	return on
}

func (s *scene) ToggleNight() bool {
	on := s.lighting.ToggleNight(s.toggleTarget())
	s.log.Info("night toggled", zap.Bool("enabled", on))
	return on
}

// toggleTarget binds the lit program so a toggle can upload its flag right away.
func (s *scene) toggleTarget() light.UniformLoader {
	p := s.r.Program(ProgramLit)
	if p == nil {
		return discard{}
	}
	p.Use()
	return p
}

func (s *scene) Update(dt float32, in input.Snapshot) {
	s.mu.Lock()
	c := s.controls
	s.mu.Unlock()

	if pressed(in, c.SwitchCamera) {
		s.SwitchCamera()
	}
	if pressed(in, c.ToggleFog) {
		s.ToggleFog()
	}
	if pressed(in, c.ToggleBlinn) {
		s.ToggleBlinn()
	}
	if pressed(in, c.ToggleNight) {
		s.ToggleNight()
	}

	cam := s.Camera()
	cam.HandleInput(dt, in)
	cam.Update(dt)
}

func pressed(in input.Snapshot, key uint32) bool {
	return key != 0 && in.KeyPressed(key)
}

func (s *scene) Passes() []renderer.Pass {
	s.mu.Lock()
	m := s.mirror
	s.mu.Unlock()

	passes := make([]renderer.Pass, 0, 2)
	if m != nil {
		passes = append(passes, renderer.Pass{
			Name:   "mirror",
			Target: m.Target(),
			Draw: func() error {
				s.mu.Lock()
				defer s.mu.Unlock()
				cam := s.cameras.Active()
				return s.drawWorld(m.ViewMatrix(), cam.ProjectionMatrix(), m.Eye())
			},
		})
	}
	passes = append(passes, renderer.Pass{
		Name: "main",
		Draw: func() error {
			s.mu.Lock()
			defer s.mu.Unlock()
			cam := s.cameras.Active()
			if err := s.drawWorld(cam.ViewMatrix(), cam.ProjectionMatrix(), cam.Position()); err != nil {
				return err
			}
			if s.mirror == nil {
				return nil
			}
			return s.drawMirror(cam)
		},
	})
	return passes
}

func (s *scene) Render() error {
	s.r.SetClearColor(s.ClearColor())
	return s.r.RenderFrame(s.Passes()...)
}

// drawWorld draws the lamps, then every lit object, from one point of view.
func (s *scene) drawWorld(view, projection mgl32.Mat4, eye mgl32.Vec3) error {
	lamps := s.collect(true)
	if len(lamps) > 0 {
		p, err := s.program(ProgramLamp)
		if err != nil {
			return err
		}
		p.Use()
		loadView(p, view, projection, eye)
		s.lighting.ApplyFog(p)
		for _, obj := range lamps {
			if !obj.Enabled() || obj.Mesh() == nil {
				continue
			}
			color := mgl32.Vec3{1, 1, 1}
			if l := obj.Light(); l != nil {
				color = l.Diffuse()
			}
			p.LoadVec3("lightColor", color)
			p.LoadMat4("model", obj.ModelMatrix(), false)
			obj.Mesh().Draw()
		}
	}

	p, err := s.program(ProgramLit)
	if err != nil {
		return err
	}
	p.Use()
	loadView(p, view, projection, eye)
	s.lighting.Apply(p)
	for _, obj := range s.collect(false) {
		obj.Draw(p)
	}
	return nil
}

// drawMirror maps the mirror texture onto the surface and draws the frame behind it.
func (s *scene) drawMirror(cam camera.Camera) error {
	p, err := s.program(ProgramMirror)
	if err != nil {
		return err
	}
	tex, err := s.mirror.Texture()
	if err != nil {
		return fmt.Errorf("mirror texture: %w", err)
	}
	surface := s.mirror.Surface()

	p.Use()
	cam.Apply(p)
	s.lighting.ApplyFog(p)
	p.LoadInt("diffuse", 0)

	tex.BindUnit(0)
	p.LoadBool("reflected", true)
	p.LoadMat4("model", surface.ModelMatrix(), false)
	surface.Mesh().Draw()

	if frame := s.mirror.Frame(); frame != nil {
		frame.BindUnit(0)
		p.LoadBool("reflected", false)
		p.LoadMat4("model", s.mirror.FrameMatrix(), false)
		surface.Mesh().Draw()
	}
	tex.UnbindUnit(0)
	return nil
}

func (s *scene) program(key string) (shader.Program, error) {
	p := s.r.Program(key)
	if p == nil {
		return nil, fmt.Errorf("%s: %w", key, ErrMissingProgram)
	}
	return p, nil
}

func loadView(p shader.Program, view, projection mgl32.Mat4, eye mgl32.Vec3) {
	p.LoadMat4("view", view, false)
	p.LoadMat4("projection", projection, false)
	p.LoadVec3("viewPos", eye)
}

func (s *scene) Resize(width, height int) {
	s.r.Resize(width, height)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cameras.SetAspect(s.r.Aspect())
}

func (s *scene) ReloadShaders(paths []string) (int, error) {
	if len(paths) == 0 {
		seen := make(map[string]bool)
		for _, p := range s.r.Programs() {
			for _, path := range p.Paths() {
				if !seen[path] {
					seen[path] = true
					paths = append(paths, path)
				}
			}
		}
		sort.Strings(paths)
	}
	n, err := s.r.ReloadChanged(paths)
	if n > 0 {
		s.log.Info("shaders reloaded", zap.String("scene", s.name), zap.Int("programs", n))
	}
	return n, err
}

func (s *scene) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mirror != nil {
		s.mirror.Release()
		s.mirror = nil
	}
	s.r.Release()
}

// discard swallows uploads when no lit program is registered.
type discard struct{}

func (discard) LoadInt(string, int32)       {}
func (discard) LoadBool(string, bool)       {}
func (discard) LoadFloat(string, float32)   {}
func (discard) LoadVec3(string, mgl32.Vec3) {}
