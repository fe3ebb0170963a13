package light

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// LightBuilderOption is a function that configures a Light instance during construction.
type LightBuilderOption func(*lightImpl)

// WithPosition is an option builder that sets the world-space position of the light.
//
// Parameters:
//   - x: the x position component
//   - y: the y position component
//   - z: the z position component
//
// Returns:
//   - LightBuilderOption: a function that applies the position option to a lightImpl
func WithPosition(x, y, z float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.position = mgl32.Vec3{x, y, z}
	}
}

// WithDirection is an option builder that sets the direction of the light.
// The direction is normalized before storing.
//
// Parameters:
//   - x: the x direction component
//   - y: the y direction component
//   - z: the z direction component
//
// Returns:
//   - LightBuilderOption: a function that applies the direction option to a lightImpl
func WithDirection(x, y, z float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.direction = normalize3(x, y, z)
	}
}

// WithColor is an option builder that sets the RGB tint of the light.
//
// Parameters:
//   - r: the red color component
//   - g: the green color component
//   - b: the blue color component
//
// Returns:
//   - LightBuilderOption: a function that applies the color option to a lightImpl
func WithColor(r, g, b float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.color = mgl32.Vec3{r, g, b}
	}
}

// WithPhong is an option builder that sets uniform grey ambient, diffuse and specular terms.
//
// Parameters:
//   - ambient: the ambient strength
//   - diffuse: the diffuse strength
//   - specular: the specular strength
//
// Returns:
//   - LightBuilderOption: a function that applies the Phong terms to a lightImpl
func WithPhong(ambient, diffuse, specular float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.ambient = mgl32.Vec3{ambient, ambient, ambient}
		l.diffuse = mgl32.Vec3{diffuse, diffuse, diffuse}
		l.specular = mgl32.Vec3{specular, specular, specular}
	}
}

// WithAttenuation is an option builder that sets the distance falloff coefficients.
//
// Parameters:
//   - constant: the constant term
//   - linear: the linear term
//   - quadratic: the quadratic term
//
// Returns:
//   - LightBuilderOption: a function that applies the attenuation option to a lightImpl
func WithAttenuation(constant, linear, quadratic float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.constant = constant
		l.linear = linear
		l.quadratic = quadratic
	}
}

// WithSpotCone is an option builder that sets the inner and outer cut-off angles
// for spot lights. Angles are specified in degrees and converted to cosines, which
// is the form the fragment shader compares against. The wider angle is always
// treated as the outer cut-off.
//
// Parameters:
//   - innerDeg: inner cut-off in degrees
//   - outerDeg: outer cut-off in degrees
//
// Returns:
//   - LightBuilderOption: a function that applies the spot cone option to a lightImpl
func WithSpotCone(innerDeg, outerDeg float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.innerCone, l.outerCone = spotCone(innerDeg, outerDeg)
	}
}

// WithEnabled is an option builder that sets whether the light is active for rendering.
//
// Parameters:
//   - enabled: true to enable the light
//
// Returns:
//   - LightBuilderOption: a function that applies the enabled option to a lightImpl
func WithEnabled(enabled bool) LightBuilderOption {
	return func(l *lightImpl) {
		l.enabled = enabled
	}
}

// normalize3 normalizes a 3-component vector. Returns a zero vector if the input
// has zero length.
func normalize3(x, y, z float32) mgl32.Vec3 {
	v := mgl32.Vec3{x, y, z}
	if v.Len() == 0 {
		return mgl32.Vec3{}
	}
	return v.Normalize()
}

// spotCone returns cosines of the cut-offs with inner >= outer.
func spotCone(innerDeg, outerDeg float32) (inner, outer float32) {
	if innerDeg > outerDeg {
		innerDeg, outerDeg = outerDeg, innerDeg
	}
	return cosDeg(innerDeg), cosDeg(outerDeg)
}

// cosDeg converts an angle in degrees to the cosine of that angle in radians.
func cosDeg(deg float32) float32 {
	return float32(math.Cos(float64(deg) * math.Pi / 180.0))
}
