package shader

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/Carmen-Shannon/oxy-gl/engine/device"
	"github.com/Carmen-Shannon/oxy-gl/engine/light"
	"github.com/Carmen-Shannon/oxy-gl/engine/loader"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreProcessorInclude(t *testing.T) {
	pp := NewPreProcessor()
	out, err := pp.Process("#version 450 core\n//@oxy:include light\n//@oxy:include fog\n//@oxy:include light\nvoid main() {}")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "#version 450 core\n"))
	assert.Contains(t, out, "struct PointLight")
	assert.Contains(t, out, "applyFog")
	assert.Equal(t, 1, strings.Count(out, strings.TrimRight(light.GLSLLightSource, "\n")), "blocks are injected once")
	assert.NotContains(t, out, "@oxy")
	assert.True(t, strings.HasSuffix(out, "void main() {}"))
}

func TestPreProcessorDefine(t *testing.T) {
	pp := NewPreProcessor()
	out, err := pp.Process("  //@oxy:define MAX_POINT_LIGHTS 32\n")
	require.NoError(t, err)
	assert.Contains(t, out, "#define MAX_POINT_LIGHTS 32")

	decls := pp.Declarations()
	require.Len(t, decls, 1)
	assert.Equal(t, AnnotationTypeDefine, decls[0].Type)
	assert.Equal(t, AnnotationArg("MAX_POINT_LIGHTS"), decls[0].Args[0])
	assert.Equal(t, 32, decls[0].Value)
	assert.Equal(t, 1, decls[0].Line)
}

func TestPreProcessorIgnoresPlainComments(t *testing.T) {
	src := "// regular comment\nfloat x = 1.0; // @oxy:include light is only honored at line start\n"
	out, err := NewPreProcessor().Process(src)
	require.NoError(t, err)
	assert.Equal(t, src, out)
}

func TestPreProcessorErrors(t *testing.T) {
	cases := map[string]string{
		"unknown block":  "//@oxy:include shadows",
		"missing block":  "//@oxy:include",
		"empty":          "//@oxy:",
		"unknown type":   "//@oxy:binding 0 0",
		"bad macro name": "//@oxy:define 9LIVES 9",
		"bad value":      "//@oxy:define LIVES nine",
		"missing value":  "//@oxy:define LIVES",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewPreProcessor().Process("void main() {}\n" + src)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "line 2")
		})
	}
}

func TestStageTypeFromPath(t *testing.T) {
	cases := map[string]device.ShaderStage{
		"shaders/phong.vert": device.ShaderStageVertex,
		"a.VS":               device.ShaderStageVertex,
		"shaders/phong.frag": device.ShaderStageFragment,
		"b.fs":               device.ShaderStageFragment,
		"c.geom":             device.ShaderStageGeometry,
	}
	for p, want := range cases {
		got, ok := StageTypeFromPath(p)
		assert.True(t, ok, p)
		assert.Equal(t, want, got, p)
	}
	_, ok := StageTypeFromPath("shader.glsl")
	assert.False(t, ok)
}

func TestLoadStages(t *testing.T) {
	src := loader.NewFSSource(fstest.MapFS{
		"s/lit.vert": {Data: []byte("//@oxy:include camera\nvoid main() {}")},
		"s/lit.frag": {Data: []byte("//@oxy:include material\nvoid main() {}")},
	})

	stages, err := LoadStages(src, "s/lit.vert", "s/lit.frag")
	require.NoError(t, err)
	require.Len(t, stages, 2)
	assert.Equal(t, device.ShaderStageVertex, stages[0].Type)
	assert.Contains(t, stages[0].Source, "uniform mat4 projection")
	assert.Contains(t, stages[1].Source, "uniform Material material")

	_, err = LoadStages(src, "s/missing.vert")
	assert.ErrorIs(t, err, loader.ErrNotFound)

	_, err = LoadStages(src, "s/lit.glsl")
	assert.Error(t, err)
}
