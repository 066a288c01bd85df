package aspak

import (
	"github.com/nettfg/aspak/internal/binfile"
	"github.com/nettfg/aspak/internal/indexfile"
)

// --- Re-exports from the format packages ---

// Entry addresses one asset within a bin's data segment.
type Entry = binfile.Entry

// Record maps one asset to its owning bin and byte range.
type Record = indexfile.Record

// Resolver produces the raw bytes for a logical asset path.
type Resolver = binfile.Resolver

// BinVersion is the current bin format version.
const BinVersion = binfile.Version

// Output file names.
const (
	// SharedBinName is the bin holding assets used by two or more scenes.
	SharedBinName = "shared.bin"

	// IndexName is the asset index file name.
	IndexName = "assets.idx"

	// BinExt is the bin file extension.
	BinExt = ".bin"
)

// SceneBinName returns the bin file name for a scene.
func SceneBinName(scene string) string {
	return scene + BinExt
}

// Summary reports what a pack run produced.
type Summary struct {
	// Assets is the number of packed assets, equal to the index record count.
	Assets int

	// Bins is the number of bin files written.
	Bins int
}
