package loader

import (
	"embed"
	"io"
	"io/fs"
	"path"

	"github.com/db47h/ofs"
	"github.com/pkg/errors"
)

//go:embed assets/*.glsl
var defaultAssets embed.FS

// loaderBackend defines the generic interface for opening asset files by name.
// Concrete implementations (overlayBackend, embeddedBackend) decide where the bytes come from.
type loaderBackend interface {
	// Name identifies the backend in log messages.
	Name() string

	// Open opens the named asset for reading.
	//
	// Parameters:
	//   - name: slash-separated asset name relative to the backend root
	//
	// Returns:
	//   - io.ReadCloser: the asset contents
	//   - error: if the asset does not exist or cannot be opened
	Open(name string) (io.ReadCloser, error)
}

// overlayBackend looks assets up in a stack of directories on disk.
type overlayBackend struct {
	ovl  ofs.Overlay
	dirs []string
}

var _ loaderBackend = &overlayBackend{}

func newOverlayBackend(dirs []string) (*overlayBackend, error) {
	b := &overlayBackend{dirs: dirs}
	if err := b.ovl.Add(false, dirs...); err != nil {
		return nil, errors.Wrap(err, "asset overlay")
	}
	return b, nil
}

func (b *overlayBackend) Name() string {
	return "overlay"
}

func (b *overlayBackend) Open(name string) (io.ReadCloser, error) {
	f, err := b.ovl.Open(name)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// embeddedBackend serves the default GLSL sources compiled into the binary.
type embeddedBackend struct {
	fsys fs.FS
}

var _ loaderBackend = &embeddedBackend{}

func newEmbeddedBackend() *embeddedBackend {
	return &embeddedBackend{fsys: defaultAssets}
}

func (b *embeddedBackend) Name() string {
	return "embedded"
}

func (b *embeddedBackend) Open(name string) (io.ReadCloser, error) {
	return b.fsys.Open(path.Join("assets", name))
}
