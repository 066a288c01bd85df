package aspak

import "github.com/charmbracelet/log"

// packConfig holds configuration for a pack run.
type packConfig struct {
	sceneRoot       string
	resolver        Resolver
	parallel        bool
	checkCollisions bool
	reportPath      string
	logger          *log.Logger
}

// PackOption configures a pack run.
type PackOption func(*packConfig)

// WithSceneRoot sets the directory searched for scene descriptors.
// By default descriptors are discovered under the asset root itself.
func WithSceneRoot(dir string) PackOption {
	return func(cfg *packConfig) {
		cfg.sceneRoot = dir
	}
}

// WithResolver replaces the default asset resolver, which reads files
// relative to the asset root. The resolver receives normalized
// forward-slash paths.
func WithResolver(r Resolver) PackOption {
	return func(cfg *packConfig) {
		cfg.resolver = r
	}
}

// WithParallel builds bins concurrently. Bin ids and index order are
// assigned before the fork, so output bytes are identical to a
// sequential run.
func WithParallel() PackOption {
	return func(cfg *packConfig) {
		cfg.parallel = true
	}
}

// WithCollisionCheck fails the pack if two distinct asset paths hash to
// the same id. Off by default: the reference format silently accepts
// truncated-digest collisions, and enabling the check changes failure
// behavior, not output bytes.
func WithCollisionCheck() PackOption {
	return func(cfg *packConfig) {
		cfg.checkCollisions = true
	}
}

// WithReport writes a YAML packing report to path after a successful
// pack, listing every bin and its entries. Debugging aid; nothing reads
// it back.
func WithReport(path string) PackOption {
	return func(cfg *packConfig) {
		cfg.reportPath = path
	}
}

// WithLogger sets a logger for per-bin and per-asset progress. The
// default is silent.
func WithLogger(logger *log.Logger) PackOption {
	return func(cfg *packConfig) {
		cfg.logger = logger
	}
}
