package camera

// CameraRotation cycles through cameras: one is active, the rest wait in FIFO order.
type CameraRotation struct {
	active Camera
	queue  []Camera
}

// NewCameraRotation creates a rotation with an active camera and any number of waiting ones.
//
// Parameters:
//   - active: the initially active camera
//   - queued: cameras waiting in switch order
//
// Returns:
//   - *CameraRotation: the new rotation
func NewCameraRotation(active Camera, queued ...Camera) *CameraRotation {
	return &CameraRotation{
		active: active,
		queue:  append([]Camera(nil), queued...),
	}
}

// Active returns the active camera.
func (r *CameraRotation) Active() Camera {
	return r.active
}

// Enqueue appends a camera to the back of the waiting queue.
//
// Parameters:
//   - cam: the camera to add
func (r *CameraRotation) Enqueue(cam Camera) {
	r.queue = append(r.queue, cam)
}

// Len returns how many cameras are waiting, not counting the active one.
func (r *CameraRotation) Len() int {
	return len(r.queue)
}

// SwitchActive moves the active camera to the back of the queue and activates the front one,
// copying the outgoing aspect ratio onto it. Does nothing when no camera is waiting.
func (r *CameraRotation) SwitchActive() {
	if len(r.queue) == 0 {
		return
	}
	outgoing := r.active
	r.queue = append(r.queue, outgoing)
	r.active = r.queue[0]
	r.queue[0] = nil
	r.queue = r.queue[1:]
	r.active.SetAspect(outgoing.Aspect())
}

// SetAspect updates the aspect ratio of the active camera. Waiting cameras pick it up when
// they are switched in.
//
// Parameters:
//   - aspect: the new width / height ratio
func (r *CameraRotation) SetAspect(aspect float32) {
	r.active.SetAspect(aspect)
}
