package light

import _ "embed"

// GLSLLightSource declares the DirLight, PointLight and FlashLight structs, the uniform arrays
// LightingManager uploads into and the calcLighting helper used by lit fragment shaders.
// The array bounds default to MAX_DIRECTIONAL_LIGHTS, MAX_POINT_LIGHTS and MAX_FLASH_LIGHTS
// and can be overridden with //@oxy:define before the include.
//
//go:embed assets/light.glsl
var GLSLLightSource string

// GLSLFogSource declares the Fog struct, the fog uniform and the applyFog helper.
//
//go:embed assets/fog.glsl
var GLSLFogSource string
