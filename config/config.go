// Package config holds the program settings. Every field has a default equal to
// the classic light-casters demo; a YAML document only needs the keys it overrides.
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/Carmen-Shannon/oxy-lightcaster/common"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/camera"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/light"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the root settings document.
type Config struct {
	Window    WindowConfig   `yaml:"window"`
	Camera    CameraConfig   `yaml:"camera"`
	Controls  ControlsConfig `yaml:"controls"`
	Lens      LensConfig     `yaml:"lens"`
	Light     LightConfig    `yaml:"light"`
	Material  MaterialConfig `yaml:"material"`
	Scene     SceneConfig    `yaml:"scene"`
	Assets    AssetsConfig   `yaml:"assets"`
	Profiling bool           `yaml:"profiling"`
}

// WindowConfig configures the GLFW window.
type WindowConfig struct {
	Title      string  `yaml:"title"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	VSync      bool    `yaml:"vsync"`
	Resizable  bool    `yaml:"resizable"`
	FrameLimit float64 `yaml:"frame_limit"` // 0 means uncapped
}

// CameraConfig configures the initial camera state.
type CameraConfig struct {
	Mode       string     `yaml:"mode"`
	Position   [3]float32 `yaml:"position"`
	Yaw        float32    `yaml:"yaw"`
	Pitch      float32    `yaml:"pitch"`
	Speed      float32    `yaml:"speed"`
	PitchBound float32    `yaml:"pitch_bound"`
}

// ControlsConfig configures mouse look.
type ControlsConfig struct {
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
	ZoomScaled       bool    `yaml:"zoom_scaled"`
	LookButton       string  `yaml:"look_button"`
}

// LensConfig configures the perspective projection.
type LensConfig struct {
	Fov    float32 `yaml:"fov"`
	MinFov float32 `yaml:"min_fov"`
	MaxFov float32 `yaml:"max_fov"`
	Near   float32 `yaml:"near"`
	Far    float32 `yaml:"far"`
}

// LightConfig configures the single light caster. Cut-offs are in degrees.
type LightConfig struct {
	Kind        string     `yaml:"kind"`
	Enabled     bool       `yaml:"enabled"`
	Position    [3]float32 `yaml:"position"`
	Direction   [3]float32 `yaml:"direction"`
	Color       [3]float32 `yaml:"color"`
	Ambient     float32    `yaml:"ambient"`
	Diffuse     float32    `yaml:"diffuse"`
	Specular    float32    `yaml:"specular"`
	Constant    float32    `yaml:"constant"`
	Linear      float32    `yaml:"linear"`
	Quadratic   float32    `yaml:"quadratic"`
	CutOff      float32    `yaml:"cut_off"`
	OuterCutOff float32    `yaml:"outer_cut_off"`
}

// MaterialConfig names the cube textures, resolved through the asset loader.
type MaterialConfig struct {
	Diffuse   string  `yaml:"diffuse"`
	Specular  string  `yaml:"specular"`
	Shininess float32 `yaml:"shininess"`
}

// SceneConfig configures the cube field.
type SceneConfig struct {
	CubePositions  [][3]float32 `yaml:"cube_positions"`
	ClearColor     [4]float32   `yaml:"clear_color"`
	RotationSpeed  float32      `yaml:"rotation_speed"` // degrees per second
	DisableCulling bool         `yaml:"disable_culling"`
}

// AssetsConfig configures asset lookup.
type AssetsConfig struct {
	Dirs           []string `yaml:"dirs"`
	StrictTextures bool     `yaml:"strict_textures"`
}

// DefaultCubePositions are the world positions of the ten cubes.
var DefaultCubePositions = [][3]float32{
	{0.0, 0.0, 0.0},
	{2.0, 5.0, -15.0},
	{-1.5, -2.2, -2.5},
	{-3.8, -2.0, -12.3},
	{2.4, -0.4, -3.5},
	{-1.7, 3.0, -7.5},
	{1.3, -2.0, -2.5},
	{1.5, 2.0, -2.5},
	{1.5, 0.2, -1.5},
	{-1.3, 1.0, -1.5},
}

// Default returns the built-in settings.
//
// Returns:
//   - *Config: a freshly allocated configuration
func Default() *Config {
	positions := make([][3]float32, len(DefaultCubePositions))
	copy(positions, DefaultCubePositions)

	return &Config{
		Window: WindowConfig{
			Title:     "LearnOpenGL",
			Width:     800,
			Height:    600,
			VSync:     true,
			Resizable: true,
		},
		Camera: CameraConfig{
			Mode:       camera.ModeFly.String(),
			Position:   [3]float32{-1.5, 0, 7},
			Yaw:        -75,
			Pitch:      0,
			Speed:      camera.DefaultSpeed,
			PitchBound: camera.DefaultPitchBound,
		},
		Controls: ControlsConfig{
			MouseSensitivity: camera.DefaultMouseSensitivity,
			LookButton:       "left",
		},
		Lens: LensConfig{
			Fov:    camera.DefaultFov,
			MinFov: camera.DefaultMinFov,
			MaxFov: camera.DefaultMaxFov,
			Near:   camera.DefaultNear,
			Far:    camera.DefaultFar,
		},
		Light: LightConfig{
			Kind:        light.LightTypePoint.String(),
			Enabled:     true,
			Position:    [3]float32{1, 1, 2},
			Direction:   [3]float32{-0.2, -1, -0.3},
			Color:       [3]float32{1, 1, 1},
			Ambient:     light.DefaultAmbient,
			Diffuse:     light.DefaultDiffuse,
			Specular:    light.DefaultSpecular,
			Constant:    light.DefaultConstant,
			Linear:      light.DefaultLinear,
			Quadratic:   light.DefaultQuadratic,
			CutOff:      light.DefaultCutOffDeg,
			OuterCutOff: light.DefaultOuterCutOffDeg,
		},
		Material: MaterialConfig{
			Diffuse:   "container2.png",
			Specular:  "container2_specular.png",
			Shininess: 32,
		},
		Scene: SceneConfig{
			CubePositions: positions,
			ClearColor:    [4]float32{0.14, 0.14, 0.14, 1},
		},
		Assets: AssetsConfig{
			Dirs: []string{".", "assets"},
		},
	}
}

// Parse decodes a YAML document on top of the defaults and validates the result.
// Unknown keys are rejected. An empty document yields the defaults.
//
// Parameters:
//   - data: the YAML bytes
//
// Returns:
//   - *Config: the merged configuration
//   - error: a decode or validation error
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decode settings")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses the settings file at path.
//
// Parameters:
//   - path: the YAML file to read
//
// Returns:
//   - *Config: the merged configuration
//   - error: a read, decode or validation error
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read settings %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "settings %s", path)
	}
	return cfg, nil
}

// Validate reports the first setting that cannot be applied.
//
// Returns:
//   - error: nil if the configuration is usable
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return errors.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case c.Window.FrameLimit < 0:
		return errors.Errorf("frame limit must not be negative, got %v", c.Window.FrameLimit)
	case c.Camera.Speed < 0:
		return errors.Errorf("camera speed must not be negative, got %v", c.Camera.Speed)
	case c.Camera.PitchBound <= 0 || c.Camera.PitchBound > camera.MaxPitchBound:
		return errors.Errorf("pitch bound must be in (0, %v], got %v", camera.MaxPitchBound, c.Camera.PitchBound)
	case c.Controls.MouseSensitivity < 0:
		return errors.Errorf("mouse sensitivity must not be negative, got %v", c.Controls.MouseSensitivity)
	case c.Lens.MinFov <= 0 || c.Lens.MinFov > c.Lens.MaxFov || c.Lens.MaxFov >= 180:
		return errors.Errorf("invalid fov range [%v, %v]", c.Lens.MinFov, c.Lens.MaxFov)
	case c.Lens.Near <= 0 || c.Lens.Far <= c.Lens.Near:
		return errors.Errorf("invalid clip planes near %v far %v", c.Lens.Near, c.Lens.Far)
	case c.Material.Shininess <= 0:
		return errors.Errorf("shininess must be positive, got %v", c.Material.Shininess)
	case c.Light.CutOff == c.Light.OuterCutOff:
		return errors.Errorf("spot cut-offs must differ, both are %v", c.Light.CutOff)
	case c.Light.CutOff < 0 || c.Light.OuterCutOff < 0 || max(c.Light.CutOff, c.Light.OuterCutOff) >= 90:
		return errors.Errorf("spot cut-offs must be in [0, 90), got %v and %v", c.Light.CutOff, c.Light.OuterCutOff)
	}

	if _, err := c.CameraMode(); err != nil {
		return err
	}
	if _, err := c.LightType(); err != nil {
		return err
	}
	if _, err := c.LookButton(); err != nil {
		return err
	}
	return nil
}

// CameraMode returns the parsed camera mode.
func (c *Config) CameraMode() (camera.Mode, error) {
	mode, ok := camera.ParseMode(c.Camera.Mode)
	if !ok {
		return mode, errors.Errorf("unknown camera mode %q", c.Camera.Mode)
	}
	return mode, nil
}

// LightType returns the parsed light kind.
func (c *Config) LightType() (light.LightType, error) {
	lt, ok := light.ParseLightType(c.Light.Kind)
	if !ok {
		return lt, errors.Errorf("unknown light kind %q", c.Light.Kind)
	}
	return lt, nil
}

// LookButton returns the GLFW mouse button code for the look button.
func (c *Config) LookButton() (uint32, error) {
	switch c.Controls.LookButton {
	case "left":
		return common.MouseButtonLeft, nil
	case "right":
		return common.MouseButtonRight, nil
	case "middle":
		return common.MouseButtonMiddle, nil
	default:
		return 0, errors.Errorf("unknown look button %q", c.Controls.LookButton)
	}
}
