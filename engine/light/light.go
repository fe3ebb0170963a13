package light

import (
	"github.com/Carmen-Shannon/oxy-lightcaster/common"
	"github.com/go-gl/mathgl/mgl32"
)

// LightType identifies the kind of light caster.
// The numeric values are written to the light.kind uniform and must match the fragment shader.
type LightType int

const (
	// LightTypeDirectional represents a light with no position, only direction.
	// No distance attenuation is applied.
	LightTypeDirectional LightType = iota

	// LightTypePoint represents a light that emits in all directions from a position
	// and fades with distance.
	LightTypePoint

	// LightTypeSpot represents a point light restricted to a cone around its direction,
	// with a soft edge between the inner and outer cut-off angles.
	LightTypeSpot
)

// String returns the lowercase name of the light type.
func (t LightType) String() string {
	switch t {
	case LightTypeDirectional:
		return "directional"
	case LightTypePoint:
		return "point"
	case LightTypeSpot:
		return "spot"
	default:
		return "unknown"
	}
}

// ParseLightType converts a name produced by String back into a LightType.
//
// Parameters:
//   - name: "directional", "point" or "spot"
//
// Returns:
//   - LightType: the parsed type
//   - bool: false if the name is not recognised
func ParseLightType(name string) (LightType, bool) {
	switch name {
	case "directional":
		return LightTypeDirectional, true
	case "point":
		return LightTypePoint, true
	case "spot":
		return LightTypeSpot, true
	default:
		return LightTypePoint, false
	}
}

// Default Phong terms and attenuation coefficients (a range of roughly 50 units).
const (
	DefaultAmbient   float32 = 0.2
	DefaultDiffuse   float32 = 0.5
	DefaultSpecular  float32 = 1.0
	DefaultConstant  float32 = 1.0
	DefaultLinear    float32 = 0.09
	DefaultQuadratic float32 = 0.032

	DefaultCutOffDeg      float32 = 12.5
	DefaultOuterCutOffDeg float32 = 17.5
)

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	lightType LightType
	position  mgl32.Vec3
	direction mgl32.Vec3
	color     mgl32.Vec3

	ambient  mgl32.Vec3
	diffuse  mgl32.Vec3
	specular mgl32.Vec3

	constant  float32
	linear    float32
	quadratic float32

	innerCone float32 // stored as cos(angle in radians)
	outerCone float32 // stored as cos(angle in radians)
	enabled   bool
}

// Light defines the interface for a single light caster.
//
// The light carries the Phong ambient/diffuse/specular terms and the attenuation
// coefficients used by the lit cube program. Type-specific properties (position for
// directional lights, cut-offs for point lights) are kept but ignored by the shader.
type Light interface {
	// Type returns the kind of light caster.
	//
	// Returns:
	//   - LightType: the light type (directional, point, or spot)
	Type() LightType

	// Position returns the world-space position of the light.
	// Meaningless for directional lights.
	//
	// Returns:
	//   - mgl32.Vec3: world-space position
	Position() mgl32.Vec3

	// Direction returns the normalized direction the light shines in.
	// Meaningless for point lights.
	//
	// Returns:
	//   - mgl32.Vec3: unit direction
	Direction() mgl32.Vec3

	// Color returns the RGB tint multiplied into every Phong term.
	// The lamp marker is drawn in this color.
	//
	// Returns:
	//   - mgl32.Vec3: color as (r, g, b)
	Color() mgl32.Vec3

	// Ambient returns the ambient term before tinting.
	Ambient() mgl32.Vec3

	// Diffuse returns the diffuse term before tinting.
	Diffuse() mgl32.Vec3

	// Specular returns the specular term before tinting.
	Specular() mgl32.Vec3

	// Constant returns the constant attenuation coefficient.
	Constant() float32

	// Linear returns the linear attenuation coefficient.
	Linear() float32

	// Quadratic returns the quadratic attenuation coefficient.
	Quadratic() float32

	// InnerCone returns the cosine of the spot light's inner cut-off angle.
	//
	// Returns:
	//   - float32: cos(inner half-angle)
	InnerCone() float32

	// OuterCone returns the cosine of the spot light's outer cut-off angle.
	//
	// Returns:
	//   - float32: cos(outer half-angle)
	OuterCone() float32

	// Enabled returns whether this light contributes to shading.
	// A disabled light is uploaded with zero terms so the scene renders with no lighting.
	//
	// Returns:
	//   - bool: true if the light is enabled
	Enabled() bool

	// HasMarker reports whether a lamp cube should be drawn at the light position.
	//
	// Returns:
	//   - bool: true for enabled point and spot lights
	HasMarker() bool

	// Attenuation returns the distance falloff factor 1 / (constant + linear*d + quadratic*d²).
	// Directional lights always return 1.
	//
	// Parameters:
	//   - distance: distance from the light in world units
	//
	// Returns:
	//   - float32: attenuation in (0, 1] for the default coefficients
	Attenuation(distance float32) float32

	// Apply writes the light uniforms under the given struct prefix, e.g. "light".
	//
	// Parameters:
	//   - setter: the uniform sink of the bound program
	//   - prefix: the GLSL struct instance name
	Apply(setter common.UniformSetter, prefix string)

	// SetType changes the kind of light caster.
	SetType(lightType LightType)

	// SetPosition sets the world-space position of the light.
	//
	// Parameters:
	//   - x, y, z: position components
	SetPosition(x, y, z float32)

	// SetDirection sets the direction of the light and normalizes it.
	//
	// Parameters:
	//   - x, y, z: direction components (will be normalized)
	SetDirection(x, y, z float32)

	// SetColor sets the RGB tint of the light.
	//
	// Parameters:
	//   - r, g, b: color components
	SetColor(r, g, b float32)

	// SetSpotCone sets the inner and outer cut-off angles for spot lights.
	// Angles are specified in degrees and stored as cosines.
	//
	// Parameters:
	//   - innerDeg: inner cut-off in degrees
	//   - outerDeg: outer cut-off in degrees
	SetSpotCone(innerDeg, outerDeg float32)

	// SetEnabled enables or disables the light.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)
}

var _ Light = &lightImpl{}

// NewLight creates a new Light of the specified type with the default Phong terms,
// attenuation and spot cut-offs, and any provided options applied.
//
// Parameters:
//   - lightType: the kind of light to create (directional, point, or spot)
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(lightType LightType, opts ...LightBuilderOption) Light {
	l := &lightImpl{
		lightType: lightType,
		direction: mgl32.Vec3{0, -1, 0},
		color:     mgl32.Vec3{1, 1, 1},
		ambient:   mgl32.Vec3{DefaultAmbient, DefaultAmbient, DefaultAmbient},
		diffuse:   mgl32.Vec3{DefaultDiffuse, DefaultDiffuse, DefaultDiffuse},
		specular:  mgl32.Vec3{DefaultSpecular, DefaultSpecular, DefaultSpecular},
		constant:  DefaultConstant,
		linear:    DefaultLinear,
		quadratic: DefaultQuadratic,
		innerCone: cosDeg(DefaultCutOffDeg),
		outerCone: cosDeg(DefaultOuterCutOffDeg),
		enabled:   true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Type() LightType {
	return l.lightType
}

func (l *lightImpl) Position() mgl32.Vec3 {
	return l.position
}

func (l *lightImpl) Direction() mgl32.Vec3 {
	return l.direction
}

func (l *lightImpl) Color() mgl32.Vec3 {
	return l.color
}

func (l *lightImpl) Ambient() mgl32.Vec3 {
	return l.ambient
}

func (l *lightImpl) Diffuse() mgl32.Vec3 {
	return l.diffuse
}

func (l *lightImpl) Specular() mgl32.Vec3 {
	return l.specular
}

func (l *lightImpl) Constant() float32 {
	return l.constant
}

func (l *lightImpl) Linear() float32 {
	return l.linear
}

func (l *lightImpl) Quadratic() float32 {
	return l.quadratic
}

func (l *lightImpl) InnerCone() float32 {
	return l.innerCone
}

func (l *lightImpl) OuterCone() float32 {
	return l.outerCone
}

func (l *lightImpl) Enabled() bool {
	return l.enabled
}

func (l *lightImpl) HasMarker() bool {
	return l.enabled && l.lightType != LightTypeDirectional
}

func (l *lightImpl) Attenuation(distance float32) float32 {
	if l.lightType == LightTypeDirectional {
		return 1
	}
	denom := l.constant + l.linear*distance + l.quadratic*distance*distance
	if denom <= 0 {
		return 1
	}
	return 1 / denom
}

func (l *lightImpl) SetType(lightType LightType) {
	l.lightType = lightType
}

func (l *lightImpl) SetPosition(x, y, z float32) {
	l.position = mgl32.Vec3{x, y, z}
}

func (l *lightImpl) SetDirection(x, y, z float32) {
	l.direction = normalize3(x, y, z)
}

func (l *lightImpl) SetColor(r, g, b float32) {
	l.color = mgl32.Vec3{r, g, b}
}

func (l *lightImpl) SetSpotCone(innerDeg, outerDeg float32) {
	l.innerCone, l.outerCone = spotCone(innerDeg, outerDeg)
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.enabled = enabled
}
