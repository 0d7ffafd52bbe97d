// Package assets embeds the shader programs and textures of the demo scenes.
package assets

import (
	"embed"

	"github.com/Carmen-Shannon/oxy-gl/engine/loader"
)

//go:embed shaders textures
var files embed.FS

// Shader stage paths, relative to Source.
var (
	PhongProgram  = []string{"shaders/phong.vert", "shaders/phong.frag"}
	LampProgram   = []string{"shaders/lamp.vert", "shaders/lamp.frag"}
	MirrorProgram = []string{"shaders/mirror.vert", "shaders/mirror.frag"}
)

// Texture paths, relative to Source.
const (
	BoxDiffuse   = "textures/box-diffuse.png"
	BoxSpecular  = "textures/box-specular.png"
	RockDiffuse  = "textures/rock-diffuse.png"
	RockSpecular = "textures/rock-specular.png"
	Stone        = "textures/stone.png"
	Metal        = "textures/metal.png"
)

// Source returns the embedded assets as a loader source.
//
// Returns:
//   - loader.Source: a source rooted at this package
func Source() loader.Source {
	return loader.NewFSSource(files)
}

// Textures lists every embedded texture path.
func Textures() []string {
	return []string{BoxDiffuse, BoxSpecular, RockDiffuse, RockSpecular, Stone, Metal}
}
