package resource

import (
	"slices"

	"github.com/Carmen-Shannon/oxy-gl/engine/device"
)

// renderTarget is the implementation of the RenderTarget interface.
type renderTarget struct {
	resource
	width, height int
	textures      map[device.AttachmentSlot]Texture
	renderBuffers map[device.AttachmentSlot]RenderBuffer
}

// RenderTarget is a framebuffer that owns its attachments. Releasing it releases every
// attachment and then the framebuffer.
type RenderTarget interface {
	GpuResource

	// Size returns the drawable size used for the viewport when the target is bound.
	Size() (width, height int)

	// AttachTexture attaches a texture at slot. A previous attachment at that slot is detached
	// but not released; the target owns tex from now on.
	//
	// Parameters:
	//   - slot: the attachment point
	//   - tex: the texture to attach
	//
	// Returns:
	//   - error: ErrReleased if the target was released
	AttachTexture(slot device.AttachmentSlot, tex Texture) error

	// AttachRenderBuffer attaches a render buffer at slot with the same replacement rules as AttachTexture.
	//
	// Parameters:
	//   - slot: the attachment point
	//   - rb: the render buffer to attach
	//
	// Returns:
	//   - error: ErrReleased if the target was released
	AttachRenderBuffer(slot device.AttachmentSlot, rb RenderBuffer) error

	// Texture returns the texture attached at slot.
	//
	// Parameters:
	//   - slot: the attachment point
	//
	// Returns:
	//   - Texture: the attached texture
	//   - error: ErrNoAttachment if no texture was attached at slot
	Texture(slot device.AttachmentSlot) (Texture, error)

	// CheckCompleteness verifies that every required kind is provided by an attachment, that
	// every attachment format fits its slot and that the device agrees. Call it once after
	// building the target.
	//
	// Parameters:
	//   - required: the attachment kinds the passes drawing into this target need
	//
	// Returns:
	//   - error: an *IncompleteError matching ErrIncomplete, or nil
	CheckCompleteness(required ...device.AttachmentKind) error

	// Bind makes the target the draw destination and sets the viewport to its size.
	Bind()

	// Unbind restores the window framebuffer.
	Unbind()
}

var _ RenderTarget = &renderTarget{}

// NewRenderTarget creates a framebuffer without attachments.
//
// Parameters:
//   - dev: the device that owns the framebuffer
//   - width: the drawable width in pixels
//   - height: the drawable height in pixels
//
// Returns:
//   - RenderTarget: the new render target
func NewRenderTarget(dev device.Device, width, height int) RenderTarget {
	return &renderTarget{
		resource:      newResource(dev, dev.CreateFramebuffer(), dev.DeleteFramebuffer),
		width:         width,
		height:        height,
		textures:      make(map[device.AttachmentSlot]Texture),
		renderBuffers: make(map[device.AttachmentSlot]RenderBuffer),
	}
}

// NewColorDepthTarget builds the usual off-screen target: an RGBA8 color texture that can be
// sampled afterwards and a depth-stencil render buffer. The target is checked for completeness
// and released again if the check fails.
//
// Parameters:
//   - dev: the device that owns the target
//   - width: the width in pixels
//   - height: the height in pixels
//
// Returns:
//   - RenderTarget: the complete render target
//   - error: an *IncompleteError if the device rejects the target
func NewColorDepthTarget(dev device.Device, width, height int) (RenderTarget, error) {
	rt := NewRenderTarget(dev, width, height)
	color := NewTexture(dev, device.TextureDescriptor{
		Width:     width,
		Height:    height,
		Format:    device.TextureFormatRGBA8,
		MinFilter: device.FilterLinear,
		MagFilter: device.FilterLinear,
		Wrap:      device.WrapClampToEdge,
	})
	_ = rt.AttachTexture(device.AttachmentColor0, color)
	_ = rt.AttachRenderBuffer(device.AttachmentDepthStencil, NewRenderBuffer(dev, device.TextureFormatDepth24Stencil8, width, height))
	if err := rt.CheckCompleteness(device.AttachmentKindColor, device.AttachmentKindDepth); err != nil {
		rt.Release()
		return nil, err
	}
	return rt, nil
}

func (r *renderTarget) Size() (int, int) {
	return r.width, r.height
}

func (r *renderTarget) AttachTexture(slot device.AttachmentSlot, tex Texture) error {
	if r.Released() {
		return ErrReleased
	}
	delete(r.renderBuffers, slot)
	r.textures[slot] = tex
	r.dev.FramebufferTexture(r.handle, slot, tex.Handle())
	return nil
}

func (r *renderTarget) AttachRenderBuffer(slot device.AttachmentSlot, rb RenderBuffer) error {
	if r.Released() {
		return ErrReleased
	}
	delete(r.textures, slot)
	r.renderBuffers[slot] = rb
	r.dev.FramebufferRenderBuffer(r.handle, slot, rb.Handle())
	return nil
}

func (r *renderTarget) Texture(slot device.AttachmentSlot) (Texture, error) {
	tex, ok := r.textures[slot]
	if !ok {
		return nil, ErrNoAttachment
	}
	return tex, nil
}

func (r *renderTarget) CheckCompleteness(required ...device.AttachmentKind) error {
	if r.Released() {
		return ErrReleased
	}
	formats := r.attachedFormats()

	var missing []device.AttachmentKind
	for _, want := range required {
		found := false
		for _, f := range formats {
			if f.Kind().Satisfies(want) {
				found = true
				break
			}
		}
		if !found && !slices.Contains(missing, want) {
			missing = append(missing, want)
		}
	}

	var mismatched []device.AttachmentSlot
	for slot, f := range formats {
		if !f.Kind().Satisfies(slot.Kind()) {
			mismatched = append(mismatched, slot)
		}
	}
	slices.Sort(mismatched)

	status := r.dev.FramebufferStatus(r.handle)
	if len(missing) == 0 && len(mismatched) == 0 && status == device.FramebufferComplete {
		return nil
	}
	return &IncompleteError{Missing: missing, Mismatched: mismatched, Status: status}
}

func (r *renderTarget) attachedFormats() map[device.AttachmentSlot]device.TextureFormat {
	formats := make(map[device.AttachmentSlot]device.TextureFormat, len(r.textures)+len(r.renderBuffers))
	for slot, t := range r.textures {
		formats[slot] = t.Descriptor().Format
	}
	for slot, rb := range r.renderBuffers {
		formats[slot] = rb.Format()
	}
	return formats
}

func (r *renderTarget) Bind() {
	r.dev.BindFramebuffer(r.handle)
	r.dev.Viewport(0, 0, r.width, r.height)
}

func (r *renderTarget) Unbind() {
	r.dev.BindFramebuffer(device.InvalidHandle)
}

func (r *renderTarget) Release() {
	if r.Released() {
		return
	}
	for slot, t := range r.textures {
		t.Release()
		delete(r.textures, slot)
	}
	for slot, rb := range r.renderBuffers {
		rb.Release()
		delete(r.renderBuffers, slot)
	}
	r.resource.Release()
}
