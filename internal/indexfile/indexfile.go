// Package indexfile implements the asset index format.
//
// The index is a flattened view of every bin's entry table: one record
// per packed asset, mapping its id to the owning bin and the asset's
// byte range within that bin's data segment. Layout, little-endian:
//
//	recordCount 4 bytes  uint32
//	records     28 bytes each: assetId(8) binId(4) offset(8) size(8)
//
// Record offsets mean exactly what bin entry offsets mean; the index
// re-states them, it does not re-encode them. Record order mirrors the
// order the orchestrator packed bins in, which keeps builds reproducible
// but carries no meaning for a reader that looks up by id.
package indexfile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/nettfg/aspak/internal/atomicfile"
)

const (
	countSize  = 4
	recordSize = 28
)

// ErrCorrupt is returned when an index file's size disagrees with its
// declared record count.
var ErrCorrupt = errors.New("aspak: corrupt index file")

// Record maps one asset to its owning bin and byte range.
type Record struct {
	// ID is the asset identifier.
	ID uint64

	// Bin is the dense zero-based id of the owning bin.
	Bin uint32

	// Offset is the asset's byte offset within the bin's data segment.
	Offset uint64

	// Size is the asset's byte length.
	Size uint64
}

// Encode serializes records to the on-disk index representation.
func Encode(records []Record) []byte {
	out := make([]byte, countSize+len(records)*recordSize)
	binary.LittleEndian.PutUint32(out[0:4], uint32(len(records)))

	pos := countSize
	for _, rec := range records {
		binary.LittleEndian.PutUint64(out[pos:], rec.ID)
		binary.LittleEndian.PutUint32(out[pos+8:], rec.Bin)
		binary.LittleEndian.PutUint64(out[pos+12:], rec.Offset)
		binary.LittleEndian.PutUint64(out[pos+20:], rec.Size)
		pos += recordSize
	}
	return out
}

// Write serializes records to path via atomic rename.
func Write(path string, records []Record) error {
	if err := atomicfile.WriteFile(path, Encode(records), 0o644); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}
	return nil
}

// Decode parses an index image into records, preserving file order.
func Decode(data []byte) ([]Record, error) {
	if len(data) < countSize {
		return nil, fmt.Errorf("%w: %d bytes is smaller than the record count", ErrCorrupt, len(data))
	}
	count := binary.LittleEndian.Uint32(data[0:4])
	want := countSize + int(count)*recordSize
	if len(data) != want {
		return nil, fmt.Errorf("%w: %d records need %d bytes, file has %d", ErrCorrupt, count, want, len(data))
	}

	records := make([]Record, count)
	pos := countSize
	for i := range records {
		records[i] = Record{
			ID:     binary.LittleEndian.Uint64(data[pos:]),
			Bin:    binary.LittleEndian.Uint32(data[pos+8:]),
			Offset: binary.LittleEndian.Uint64(data[pos+12:]),
			Size:   binary.LittleEndian.Uint64(data[pos+20:]),
		}
		pos += recordSize
	}
	return records, nil
}

// Read loads and parses an index file.
func Read(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading index %s: %w", path, err)
	}
	records, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}
