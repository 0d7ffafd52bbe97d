package material

import _ "embed"

// GLSLMaterialSource declares the Material struct (diffuse and specular samplers plus shininess)
// and the material uniform uploaded by Material.Apply.
//
//go:embed assets/material.glsl
var GLSLMaterialSource string
