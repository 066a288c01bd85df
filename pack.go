package aspak

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/nettfg/aspak/internal/atomicfile"
	"github.com/nettfg/aspak/internal/binfile"
	"github.com/nettfg/aspak/internal/ident"
	"github.com/nettfg/aspak/internal/indexfile"
	"github.com/nettfg/aspak/internal/scene"
	"github.com/nettfg/aspak/internal/usage"
)

// binSpec is one planned bin: its file name, dense id, and asset list.
// Specs are enumerated, and ids assigned, before any bin is built, so
// index record order never depends on build scheduling.
type binSpec struct {
	name   string
	id     uint32
	assets []string
}

// Pack packs every scene's assets under assetRoot into bin files and an
// index under outDir.
//
// Scene descriptors are discovered under the asset root (or the
// WithSceneRoot override). Assets referenced by two or more scenes go
// into shared.bin with bin id 0; each scene's remaining assets go into
// "<scene>.bin", ids assigned densely in sorted scene-name order. The
// index maps every packed asset id to its (bin, offset, size).
//
// All bins are fully resolved in memory before anything is written, and
// each output file lands via atomic rename, so a failed run leaves no
// partial output. Any missing or unreadable asset aborts the run with
// the offending path.
func Pack(ctx context.Context, assetRoot, outDir string, opts ...PackOption) (Summary, error) {
	cfg := packConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.sceneRoot == "" {
		cfg.sceneRoot = assetRoot
	}
	if cfg.resolver == nil {
		cfg.resolver = DirResolver(assetRoot)
	}

	scenes, err := scene.LoadAll(cfg.sceneRoot)
	if err != nil {
		return Summary{}, err
	}
	plan := usage.Analyze(scenes)

	specs := planBins(plan)

	if cfg.checkCollisions {
		if err := checkCollisions(specs); err != nil {
			return Summary{}, err
		}
	}

	built, err := buildBins(ctx, specs, &cfg)
	if err != nil {
		return Summary{}, err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("creating output directory %s: %w", outDir, err)
	}

	records := make([]indexfile.Record, 0, plan.AssetCount())
	for i, spec := range specs {
		path := filepath.Join(outDir, spec.name)
		if err := atomicfile.WriteFile(path, built[i].Encode(), 0o644); err != nil {
			return Summary{}, err
		}
		if cfg.logger != nil {
			cfg.logger.Info("wrote bin",
				"bin", spec.name, "id", spec.id,
				"assets", built[i].Len(), "bytes", built[i].DataSize())
		}
		for _, e := range built[i].Entries() {
			records = append(records, indexfile.Record{
				ID:     e.ID,
				Bin:    spec.id,
				Offset: e.Offset,
				Size:   e.Size,
			})
		}
	}

	if err := indexfile.Write(filepath.Join(outDir, IndexName), records); err != nil {
		return Summary{}, err
	}

	if cfg.reportPath != "" {
		if err := writeReport(cfg.reportPath, specs, built); err != nil {
			return Summary{}, err
		}
	}

	return Summary{Assets: len(records), Bins: len(specs)}, nil
}

// planBins turns a usage plan into the ordered bin list: shared bin
// first when non-empty, then scene bins in sorted scene order, skipping
// scenes with no exclusive assets. Ids are dense and zero-based.
func planBins(plan usage.Plan) []binSpec {
	var specs []binSpec
	nextID := uint32(0)
	if len(plan.Shared) > 0 {
		specs = append(specs, binSpec{name: SharedBinName, id: nextID, assets: plan.Shared})
		nextID++
	}
	for _, name := range plan.Scenes {
		assets := plan.Exclusive[name]
		if len(assets) == 0 {
			continue
		}
		specs = append(specs, binSpec{name: SceneBinName(name), id: nextID, assets: assets})
		nextID++
	}
	return specs
}

// buildBins resolves every planned bin into memory, sequentially or
// fork-join per bin. Results are indexed by spec position, so either
// mode yields the same record order.
func buildBins(ctx context.Context, specs []binSpec, cfg *packConfig) ([]*binfile.Bin, error) {
	built := make([]*binfile.Bin, len(specs))

	if cfg.parallel {
		g, gctx := errgroup.WithContext(ctx)
		for i, spec := range specs {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				bin, err := buildBin(spec, cfg)
				if err != nil {
					return err
				}
				built[i] = bin
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return built, nil
	}

	for i, spec := range specs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		bin, err := buildBin(spec, cfg)
		if err != nil {
			return nil, err
		}
		built[i] = bin
	}
	return built, nil
}

func buildBin(spec binSpec, cfg *packConfig) (*binfile.Bin, error) {
	resolve := cfg.resolver
	if cfg.logger != nil {
		resolve = func(path string) ([]byte, error) {
			cfg.logger.Debug("packing asset", "asset", path, "bin", spec.name)
			return cfg.resolver(path)
		}
	}
	bin, err := binfile.Build(spec.assets, resolve)
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", spec.name, err)
	}
	return bin, nil
}

// checkCollisions hashes every planned path and fails on the first pair
// of distinct paths sharing an id.
func checkCollisions(specs []binSpec) error {
	seen := make(map[uint64]string)
	for _, spec := range specs {
		for _, path := range spec.assets {
			id, err := ident.ID(path)
			if err != nil {
				return err
			}
			if prev, ok := seen[id]; ok && prev != path {
				return fmt.Errorf("%w: %q and %q both hash to %016x", ErrIDCollision, prev, path, id)
			}
			seen[id] = path
		}
	}
	return nil
}

// DirResolver returns a Resolver that reads assets relative to root.
// Asset paths are normalized forward-slash paths; the resolver converts
// them to the platform separator. A nonexistent path maps to
// ErrMissingAsset.
func DirResolver(root string) Resolver {
	return func(path string) ([]byte, error) {
		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(path)))
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingAsset, path)
		}
		if err != nil {
			return nil, err
		}
		return data, nil
	}
}
