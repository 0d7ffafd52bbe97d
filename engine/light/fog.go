package light

import (
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultFogColor is the light grey used by NewFog.
var DefaultFogColor = mgl32.Vec3{0.7, 0.7, 0.7}

// Fog is linear distance fog between Start and End, blended towards Color.
type Fog struct {
	Color   mgl32.Vec3
	Start   float32
	End     float32
	Enabled bool
}

// NewFog creates disabled fog with the default color.
//
// Parameters:
//   - start: distance where fog begins
//   - end: distance where fog is opaque
//
// Returns:
//   - *Fog: the new fog
func NewFog(start, end float32) *Fog {
	return &Fog{Color: DefaultFogColor, Start: start, End: end}
}

// Apply uploads fog.color, fog.start, fog.end and fog.use.
//
// Parameters:
//   - p: the program receiving the uniforms
func (f *Fog) Apply(p UniformLoader) {
	p.LoadVec3("fog.color", f.Color)
	p.LoadFloat("fog.start", f.Start)
	p.LoadFloat("fog.end", f.End)
	p.LoadBool("fog.use", f.Enabled)
}
