package aspak

import (
	"errors"

	"github.com/nettfg/aspak/internal/binfile"
	"github.com/nettfg/aspak/internal/indexfile"
)

// Sentinel errors.
var (
	// ErrMissingAsset is returned when a scene descriptor references a
	// path that does not exist under the asset root.
	ErrMissingAsset = errors.New("aspak: missing asset")

	// ErrIDCollision is returned when collision checking is enabled and
	// two distinct asset paths hash to the same id.
	ErrIDCollision = errors.New("aspak: asset id collision")

	// ErrNotFound is returned when an archive lookup misses.
	ErrNotFound = errors.New("aspak: asset not found in archive")
)

// Errors re-exported from the format packages.
var (
	// ErrBadMagic is returned when a bin file does not start with the
	// "ASPK" signature.
	ErrBadMagic = binfile.ErrBadMagic

	// ErrBadVersion is returned when a bin declares an unsupported
	// format version.
	ErrBadVersion = binfile.ErrBadVersion

	// ErrCorruptBin is returned when a bin's entry table or data segment
	// is inconsistent with the file size.
	ErrCorruptBin = binfile.ErrCorrupt

	// ErrCorruptIndex is returned when an index file's size disagrees
	// with its declared record count.
	ErrCorruptIndex = indexfile.ErrCorrupt
)
