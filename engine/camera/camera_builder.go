package camera

// rig holds the tuning shared by the interactive controls.
type rig struct {
	speed         float32
	rotationSpeed float32
	zoomSpeed     float32
	distance      float32
}

func newRig(options ...ControlBuilderOption) rig {
	r := rig{
		speed:         1,
		rotationSpeed: 1,
		zoomSpeed:     1,
		distance:      10,
	}
	for _, opt := range options {
		opt(&r)
	}
	return r
}

// ControlBuilderOption configures the speeds of a FlyControl or OrbitControl.
type ControlBuilderOption func(*rig)

// WithSpeed sets the translation speed in units per second.
//
// Parameters:
//   - speed: units per second
//
// Returns:
//   - ControlBuilderOption: a function that sets the translation speed
func WithSpeed(speed float32) ControlBuilderOption {
	return func(r *rig) {
		r.speed = speed
	}
}

// WithRotationSpeed sets the radians turned per pixel of mouse movement per second.
//
// Parameters:
//   - speed: radians per pixel per second
//
// Returns:
//   - ControlBuilderOption: a function that sets the rotation speed
func WithRotationSpeed(speed float32) ControlBuilderOption {
	return func(r *rig) {
		r.rotationSpeed = speed
	}
}

// WithZoomSpeed sets the base of the exponential orbit zoom.
//
// Parameters:
//   - speed: the zoom factor is (1+speed)^delta
//
// Returns:
//   - ControlBuilderOption: a function that sets the zoom speed
func WithZoomSpeed(speed float32) ControlBuilderOption {
	return func(r *rig) {
		r.zoomSpeed = speed
	}
}

// WithDistance sets the initial orbit distance.
func WithDistance(d float32) ControlBuilderOption {
	return func(r *rig) {
		r.distance = d
	}
}

// ProjectionBuilderOption configures a PerspectiveProjection or OrthographicProjection.
type ProjectionBuilderOption func(*lens)

// WithAspect sets the initial width / height ratio.
//
// Parameters:
//   - aspect: the aspect ratio
//
// Returns:
//   - ProjectionBuilderOption: a function that sets the aspect ratio
func WithAspect(aspect float32) ProjectionBuilderOption {
	return func(l *lens) {
		l.aspect = aspect
	}
}

// WithClip sets the near and far clipping distances.
//
// Parameters:
//   - near: near plane distance
//   - far: far plane distance
//
// Returns:
//   - ProjectionBuilderOption: a function that sets the clipping planes
func WithClip(near, far float32) ProjectionBuilderOption {
	return func(l *lens) {
		l.near = near
		l.far = far
	}
}

// WithSensitivity sets how strongly scrolling zooms.
//
// Parameters:
//   - s: the zoom factor per scroll step is (1+s)
//
// Returns:
//   - ProjectionBuilderOption: a function that sets the scroll sensitivity
func WithSensitivity(s float32) ProjectionBuilderOption {
	return func(l *lens) {
		l.sensitivity = s
	}
}

// WithZoom sets the zoomed parameter: the vertical field of view in radians for a perspective
// projection, the visible height for an orthographic one.
//
// Parameters:
//   - v: the initial value
//
// Returns:
//   - ProjectionBuilderOption: a function that sets the zoomed parameter
func WithZoom(v float32) ProjectionBuilderOption {
	return func(l *lens) {
		l.zoom = v
	}
}
