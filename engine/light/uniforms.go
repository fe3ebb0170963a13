package light

import (
	_ "embed"

	"github.com/Carmen-Shannon/oxy-lightcaster/common"
	"github.com/go-gl/mathgl/mgl32"
)

// GLSLSource is the canonical GLSL definition of the Light struct and the kind constants.
// Field names match the Uniform* constants below.
//
//go:embed assets/light.glsl
var GLSLSource string

// Field names of the Light struct in the lit cube fragment shader.
const (
	UniformKind        = "kind"
	UniformPosition    = "position"
	UniformDirection   = "direction"
	UniformAmbient     = "ambient"
	UniformDiffuse     = "diffuse"
	UniformSpecular    = "specular"
	UniformConstant    = "constant"
	UniformLinear      = "linear"
	UniformQuadratic   = "quadratic"
	UniformCutOff      = "cutOff"
	UniformOuterCutOff = "outerCutOff"
)

func (l *lightImpl) Apply(setter common.UniformSetter, prefix string) {
	name := func(field string) string {
		if prefix == "" {
			return field
		}
		return prefix + "." + field
	}

	ambient, diffuse, specular := l.terms()

	setter.SetInt(name(UniformKind), int32(l.lightType))
	setter.SetVec3(name(UniformPosition), l.position)
	setter.SetVec3(name(UniformDirection), l.direction)
	setter.SetVec3(name(UniformAmbient), ambient)
	setter.SetVec3(name(UniformDiffuse), diffuse)
	setter.SetVec3(name(UniformSpecular), specular)
	setter.SetFloat(name(UniformConstant), l.constant)
	setter.SetFloat(name(UniformLinear), l.linear)
	setter.SetFloat(name(UniformQuadratic), l.quadratic)
	setter.SetFloat(name(UniformCutOff), l.innerCone)
	setter.SetFloat(name(UniformOuterCutOff), l.outerCone)
}

// terms returns the tinted Phong terms, all zero when the light is disabled.
func (l *lightImpl) terms() (ambient, diffuse, specular mgl32.Vec3) {
	if !l.enabled {
		return
	}
	tint := func(v mgl32.Vec3) mgl32.Vec3 {
		return mgl32.Vec3{v[0] * l.color[0], v[1] * l.color[1], v[2] * l.color[2]}
	}
	return tint(l.ambient), tint(l.diffuse), tint(l.specular)
}
