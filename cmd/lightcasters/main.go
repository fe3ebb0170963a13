// Command lightcasters renders ten textured, Phong-lit cubes and a lamp marker
// through a free-fly camera.
//
// Controls: WASD to move, hold the left mouse button and drag to look, scroll to
// zoom, Esc to quit.
package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/Carmen-Shannon/oxy-lightcaster/common"
	"github.com/Carmen-Shannon/oxy-lightcaster/config"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/camera"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/light"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/loader"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/model"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/renderer"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/renderer/texture"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/scene"
	"github.com/Carmen-Shannon/oxy-lightcaster/engine/window"
	"github.com/pkg/errors"
)

func init() {
	// GLFW and GL must be driven from the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "YAML settings file")
	assetDir := flag.String("assets", "", "extra asset directory, searched before the defaults")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("lightcasters: %v", err)
		}
	}
	if *assetDir != "" {
		cfg.Assets.Dirs = append([]string{*assetDir}, cfg.Assets.Dirs...)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("lightcasters: %v", err)
	}
}

func run(cfg *config.Config) error {
	// ── Assets ──────────────────────────────────────────────────────────
	ld, err := loader.NewLoader(
		loader.BackendTypeOverlay,
		loader.WithDirs(cfg.Assets.Dirs...),
		loader.WithStrictTextures(cfg.Assets.StrictTextures),
	)
	if err != nil {
		return err
	}
	// Decoding runs on the worker pool before any GL state exists.
	if err := ld.Preload(cfg.Material.Diffuse, cfg.Material.Specular); err != nil {
		return err
	}

	// ── Window + Renderer ───────────────────────────────────────────────
	win, err := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
		window.WithVSync(cfg.Window.VSync),
		window.WithResizable(cfg.Window.Resizable),
	)
	if err != nil {
		return err
	}
	var td teardown
	td.add(func() { win.Close() })

	cc := cfg.Scene.ClearColor
	r, err := renderer.NewRenderer(
		renderer.BackendTypeOpenGL,
		renderer.WithClearColor(cc[0], cc[1], cc[2], cc[3]),
		renderer.WithViewport(win.Width(), win.Height()),
	)
	if err != nil {
		td.run()
		return err
	}
	td.add(r.Release)

	if err := registerShaders(r, ld); err != nil {
		td.run()
		return err
	}

	// ── Camera ──────────────────────────────────────────────────────────
	mode, _ := cfg.CameraMode()
	cam := camera.NewCamera(
		camera.WithMode(mode),
		camera.WithPosition(cfg.Camera.Position[0], cfg.Camera.Position[1], cfg.Camera.Position[2]),
		camera.WithYaw(cfg.Camera.Yaw),
		camera.WithPitchBound(cfg.Camera.PitchBound),
		camera.WithPitch(cfg.Camera.Pitch),
		camera.WithSpeed(cfg.Camera.Speed),
	)
	lens := camera.NewLens(
		camera.WithFovBounds(cfg.Lens.MinFov, cfg.Lens.MaxFov),
		camera.WithFov(cfg.Lens.Fov),
		camera.WithAspect(win.Width(), win.Height()),
		camera.WithClipPlanes(cfg.Lens.Near, cfg.Lens.Far),
	)
	lookButton, _ := cfg.LookButton()
	controller := camera.NewCameraController(cam,
		camera.WithLens(lens),
		camera.WithMouseSensitivity(cfg.Controls.MouseSensitivity),
		camera.WithZoomScaledSensitivity(cfg.Controls.ZoomScaled),
		camera.WithLookButton(lookButton),
	)

	// ── Scene ───────────────────────────────────────────────────────────
	cube := model.NewCube("cube")
	td.add(cube.Delete)
	if err := cube.Upload(); err != nil {
		td.run()
		return err
	}

	mat, err := newMaterial(cfg.Material, ld)
	if err != nil {
		td.run()
		return err
	}
	td.add(mat.Delete)

	lc := newLight(cfg.Light)
	objects := scene.NewCubeField(cube, cfg.Scene.CubePositions)
	for _, obj := range objects {
		obj.SetRotationSpeed(cfg.Scene.RotationSpeed)
	}

	sc := scene.NewScene("lightcasters", cam, lens,
		scene.WithObjects(objects...),
		scene.WithLight(lc),
		scene.WithLamp(scene.NewLamp(cube, lc)),
		scene.WithMaterial(mat),
		scene.WithCullingDisabled(cfg.Scene.DisableCulling),
	)

	// ── Engine ──────────────────────────────────────────────────────────
	eng, err := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithRenderer(r),
		engine.WithScene(sc),
		engine.WithController(controller),
		engine.WithProfiling(cfg.Profiling),
		engine.WithRenderFrameLimit(cfg.Window.FrameLimit),
	)
	if err != nil {
		td.run()
		return err
	}
	// The engine owns every resource from here on.
	defer eng.Release()

	return eng.Run()
}

// teardown releases setup resources in reverse order when setup fails part way.
type teardown []func()

func (t *teardown) add(release func()) {
	*t = append(*t, release)
}

func (t teardown) run() {
	for i := len(t) - 1; i >= 0; i-- {
		t[i]()
	}
}

// registerShaders compiles the lit cube and lamp programs.
func registerShaders(r renderer.Renderer, ld loader.Loader) error {
	pairs := []struct {
		key, vs, fs string
	}{
		{scene.DefaultLitShaderKey, loader.CubeVertexShader, loader.CubeFragmentShader},
		{scene.DefaultLampShaderKey, loader.LampVertexShader, loader.LampFragmentShader},
	}

	for _, p := range pairs {
		vs, fs, err := ld.ShaderPair(p.vs, p.fs)
		if err != nil {
			return err
		}
		s, err := shader.NewShader(p.key, vs, fs)
		if err != nil {
			return err
		}
		r.RegisterShaders(s)
	}
	return nil
}

// newMaterial uploads the preloaded diffuse and specular maps.
func newMaterial(mc config.MaterialConfig, ld loader.Loader) (material.Material, error) {
	upload := func(name string) (texture.Texture, error) {
		data, err := ld.Texture(name)
		if err != nil {
			return nil, err
		}
		return texture.NewTexture(name, data, common.DefaultSampler())
	}

	diffuse, err := upload(mc.Diffuse)
	if err != nil {
		return nil, errors.Wrap(err, "diffuse map")
	}
	specular, err := upload(mc.Specular)
	if err != nil {
		diffuse.Delete()
		return nil, errors.Wrap(err, "specular map")
	}

	return material.NewMaterial(
		material.WithName("container"),
		material.WithDiffuseTexture(diffuse),
		material.WithSpecularTexture(specular),
		material.WithShininess(mc.Shininess),
	), nil
}

func newLight(lc config.LightConfig) light.Light {
	lt, _ := light.ParseLightType(lc.Kind)
	return light.NewLight(lt,
		light.WithEnabled(lc.Enabled),
		light.WithPosition(lc.Position[0], lc.Position[1], lc.Position[2]),
		light.WithDirection(lc.Direction[0], lc.Direction[1], lc.Direction[2]),
		light.WithColor(lc.Color[0], lc.Color[1], lc.Color[2]),
		light.WithPhong(lc.Ambient, lc.Diffuse, lc.Specular),
		light.WithAttenuation(lc.Constant, lc.Linear, lc.Quadratic),
		light.WithSpotCone(lc.CutOff, lc.OuterCutOff),
	)
}
