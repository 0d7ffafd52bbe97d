package renderer

import (
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/resource"
	"github.com/go-gl/mathgl/mgl32"
)

// Pass is one step of a frame. A nil Target draws into the default framebuffer.
type Pass struct {
	Name   string
	Target resource.RenderTarget
	// ClearColor overrides the renderer's clear color when set.
	ClearColor *mgl32.Vec4
	Draw       func() error
}

// Offscreen reports whether the pass draws into a render target.
func (p Pass) Offscreen() bool {
	return p.Target != nil
}

// orderPasses moves off-screen passes ahead of on-screen ones, keeping the given order inside
// each group.
func orderPasses(passes []Pass) []Pass {
	out := make([]Pass, 0, len(passes))
	for _, p := range passes {
		if p.Offscreen() {
			out = append(out, p)
		}
	}
	for _, p := range passes {
		if !p.Offscreen() {
			out = append(out, p)
		}
	}
	return out
}
