package loader

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithDirs is an option builder that adds directories to the asset overlay.
// Ignored by BackendTypeEmbedded.
//
// Parameters:
//   - dirs: directories searched for assets
//
// Returns:
//   - LoaderBuilderOption: a function that applies the directories option to a loader
func WithDirs(dirs ...string) LoaderBuilderOption {
	return func(l *loader) {
		l.dirs = append(l.dirs, dirs...)
	}
}

// WithStrictTextures is an option builder that makes texture load failures errors
// instead of falling back to a white texture.
//
// Parameters:
//   - strict: true to fail on missing or undecodable textures
//
// Returns:
//   - LoaderBuilderOption: a function that applies the strict option to a loader
func WithStrictTextures(strict bool) LoaderBuilderOption {
	return func(l *loader) {
		l.strict = strict
	}
}

// WithWorkers is an option builder that sets how many goroutines decode textures in Preload.
//
// Parameters:
//   - n: the number of workers (minimum 1)
//
// Returns:
//   - LoaderBuilderOption: a function that applies the workers option to a loader
func WithWorkers(n int) LoaderBuilderOption {
	return func(l *loader) {
		l.workers = max(n, 1)
	}
}
