package camera

import _ "embed"

// GLSLCameraSource declares the view, projection and viewPos uniforms uploaded by Camera.Apply.
//
//go:embed assets/camera.glsl
var GLSLCameraSource string
