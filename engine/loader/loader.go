package loader

import (
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"maps"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-lightcaster/common"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoaderBackendType identifies where assets are looked up.
type LoaderBackendType int

const (
	// BackendTypeOverlay searches the configured directories first and falls back to
	// the embedded default shaders.
	BackendTypeOverlay LoaderBackendType = iota

	// BackendTypeEmbedded serves only the embedded default shaders.
	BackendTypeEmbedded
)

// DefaultDirs are searched when no directories are configured.
var DefaultDirs = []string{".", "assets"}

// Default shader asset names.
const (
	CubeVertexShader   = "cube-vs.glsl"
	CubeFragmentShader = "cube-fs.glsl"
	LampVertexShader   = "light-vs.glsl"
	LampFragmentShader = "light-fs.glsl"
)

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	backendType LoaderBackendType
	backends    []loaderBackend
	dirs        []string

	strict   bool
	workers  int
	fallback common.TextureStagingData

	textureCache map[string]common.TextureStagingData
}

// Loader defines the public-facing interface for reading shader sources and decoding
// textures. Lookups go through the configured backends in order, and decoded textures
// are cached by name. Loader does not touch GL; uploads happen on the render thread.
type Loader interface {
	// ShaderSource reads a GLSL source file.
	//
	// Parameters:
	//   - name: the asset name, e.g. "cube-vs.glsl"
	//
	// Returns:
	//   - string: the source text
	//   - error: if no backend has the asset
	ShaderSource(name string) (string, error)

	// ShaderPair reads a vertex and fragment source together.
	//
	// Parameters:
	//   - vertexName: the vertex stage asset name
	//   - fragmentName: the fragment stage asset name
	//
	// Returns:
	//   - vs, fs: the source texts
	//   - error: if either asset is missing
	ShaderPair(vertexName, fragmentName string) (vs, fs string, err error)

	// Texture decodes an image into bottom-row-first RGBA8 staging data and caches it.
	// Missing or undecodable images yield a 1x1 white texture and a logged warning,
	// unless strict textures are enabled.
	//
	// Parameters:
	//   - name: the asset name
	//
	// Returns:
	//   - common.TextureStagingData: the decoded pixels
	//   - error: only in strict mode
	Texture(name string) (common.TextureStagingData, error)

	// Preload decodes the named textures in parallel and fills the cache.
	// Blocks until every texture is decoded.
	//
	// Parameters:
	//   - names: the asset names
	//
	// Returns:
	//   - error: the first failure in strict mode
	Preload(names ...string) error

	// Textures returns a copy of the texture cache.
	//
	// Returns:
	//   - map[string]common.TextureStagingData: decoded textures keyed by name
	Textures() map[string]common.TextureStagingData

	// Dirs returns the directories searched before the embedded assets.
	Dirs() []string
}

var _ Loader = &loader{}

// NewLoader creates a new Loader instance with the specified backend type and options applied.
//
// Parameters:
//   - backendType: the type of loader backend to use (e.g., BackendTypeOverlay)
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new instance of Loader configured with the provided backend and options
//   - error: if the overlay cannot be built
func NewLoader(backendType LoaderBackendType, options ...LoaderBuilderOption) (Loader, error) {
	l := &loader{
		backendType:  backendType,
		workers:      max(runtime.NumCPU()-1, 1),
		fallback:     common.SolidTexture(1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255}),
		textureCache: make(map[string]common.TextureStagingData),
	}

	for _, option := range options {
		option(l)
	}

	switch backendType {
	case BackendTypeOverlay:
		if len(l.dirs) == 0 {
			l.dirs = DefaultDirs
		}
		ovl, err := newOverlayBackend(l.dirs)
		if err != nil {
			return nil, err
		}
		l.backends = append(l.backends, ovl, newEmbeddedBackend())
	case BackendTypeEmbedded:
		l.dirs = nil
		l.backends = append(l.backends, newEmbeddedBackend())
	default:
		return nil, errors.Errorf("unknown loader backend type %d", backendType)
	}
	return l, nil
}

func (l *loader) ShaderSource(name string) (string, error) {
	data, err := l.read(name)
	if err != nil {
		return "", errors.Wrap(err, "shader source")
	}
	return string(data), nil
}

func (l *loader) ShaderPair(vertexName, fragmentName string) (vs, fs string, err error) {
	if vs, err = l.ShaderSource(vertexName); err != nil {
		return "", "", err
	}
	if fs, err = l.ShaderSource(fragmentName); err != nil {
		return "", "", err
	}
	return vs, fs, nil
}

func (l *loader) Texture(name string) (common.TextureStagingData, error) {
	l.mu.RLock()
	if cached, ok := l.textureCache[name]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	tex, err := l.loadTexture(name)
	if err != nil {
		if l.strict {
			return common.TextureStagingData{}, err
		}
		log.Printf("[Loader] %v, using white fallback", err)
		tex = l.fallback
	}

	l.mu.Lock()
	l.textureCache[name] = tex
	l.mu.Unlock()
	return tex, nil
}

func (l *loader) Preload(names ...string) error {
	if len(names) == 0 {
		return nil
	}

	pool := worker.NewDynamicWorkerPool(min(l.workers, len(names)), len(names), 1*time.Second)

	var wg sync.WaitGroup
	var errMu sync.Mutex
	var firstErr error
	start := time.Now()

	for i, name := range names {
		wg.Add(1)
		pool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				_, err := l.Texture(name)
				if err != nil {
					errMu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					errMu.Unlock()
				}
				return nil, err
			},
		})
	}
	wg.Wait()

	if firstErr != nil {
		return errors.Wrap(firstErr, "preload")
	}
	log.Printf("[Loader] decoded %d textures in %s", len(names), time.Since(start).Round(time.Millisecond))
	return nil
}

func (l *loader) Textures() map[string]common.TextureStagingData {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return maps.Clone(l.textureCache)
}

func (l *loader) Dirs() []string {
	return l.dirs
}

// read returns the contents of the first backend that has the asset.
func (l *loader) read(name string) ([]byte, error) {
	for _, b := range l.backends {
		rc, err := b.Open(name)
		if err != nil {
			continue
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, errors.Wrapf(err, "%s: read %s", b.Name(), name)
		}
		return data, nil
	}
	return nil, errors.Errorf("asset %s not found", name)
}

func (l *loader) loadTexture(name string) (common.TextureStagingData, error) {
	for _, b := range l.backends {
		rc, err := b.Open(name)
		if err != nil {
			continue
		}
		defer rc.Close()
		tex, err := decodeTexture(rc)
		if err != nil {
			return common.TextureStagingData{}, errors.Wrapf(err, "texture %s", name)
		}
		return tex, nil
	}
	return common.TextureStagingData{}, errors.Errorf("texture %s not found", name)
}

// decodeTexture decodes any registered image format and converts it to flipped RGBA8.
func decodeTexture(r io.Reader) (common.TextureStagingData, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return common.TextureStagingData{}, err
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return common.FlipRGBA(rgba), nil
}
