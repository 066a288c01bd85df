// Package binfile implements the bin archive format.
//
// A bin holds the raw bytes of a set of assets plus a fixed-stride entry
// table addressing them. Layout, all little-endian, no padding:
//
//	magic      4 bytes  "ASPK"
//	version    4 bytes  uint32, currently 1
//	entryCount 4 bytes  uint32
//	entries    24 bytes each: assetId(8) offset(8) size(8)
//	data       concatenated asset bytes, in entry order
//
// Entry offsets are relative to the start of the data segment, not the
// file. The fixed entry stride gives O(1) access to any table slot; a
// reader seeks to headerSize + entryCount*entrySize + offset for the
// asset bytes.
package binfile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nettfg/aspak/internal/ident"
)

// Format constants.
const (
	// Version is the current bin format version.
	Version = 1

	headerSize = 12
	entrySize  = 24
)

// magic is the 4-byte bin file signature.
var magic = [4]byte{'A', 'S', 'P', 'K'}

// Sentinel errors.
var (
	// ErrBadMagic is returned when a file does not start with the bin signature.
	ErrBadMagic = errors.New("aspak: bad bin magic")

	// ErrBadVersion is returned when a bin declares an unsupported format version.
	ErrBadVersion = errors.New("aspak: unsupported bin version")

	// ErrCorrupt is returned when a bin's entry table or data segment is
	// inconsistent with the file size.
	ErrCorrupt = errors.New("aspak: corrupt bin file")
)

// Entry addresses one asset within a bin's data segment.
type Entry struct {
	// ID is the asset identifier derived from the normalized path.
	ID uint64

	// Offset is the byte offset of the asset within the data segment.
	Offset uint64

	// Size is the asset's byte length.
	Size uint64
}

// Resolver produces the raw bytes for a logical asset path.
type Resolver func(path string) ([]byte, error)

// Bin is a fully resolved bin image, built in memory before any file is
// written. Building everything first is what makes the no-partial-output
// guarantee cheap: a resolver failure aborts before a single byte
// reaches disk.
type Bin struct {
	entries []Entry
	data    []byte
}

// Build resolves every asset in input order and lays its bytes into the
// data segment. The paths must already be normalized.
//
// A resolver failure aborts the build and is returned wrapped with the
// offending path.
func Build(assets []string, resolve Resolver) (*Bin, error) {
	b := &Bin{entries: make([]Entry, 0, len(assets))}
	for _, path := range assets {
		id, err := ident.ID(path)
		if err != nil {
			return nil, err
		}
		data, err := resolve(path)
		if err != nil {
			return nil, fmt.Errorf("resolving asset %q: %w", path, err)
		}
		b.entries = append(b.entries, Entry{
			ID:     id,
			Offset: uint64(len(b.data)),
			Size:   uint64(len(data)),
		})
		b.data = append(b.data, data...)
	}
	return b, nil
}

// Entries returns the entry table in layout order.
func (b *Bin) Entries() []Entry {
	return b.entries
}

// Len returns the number of entries.
func (b *Bin) Len() int {
	return len(b.entries)
}

// DataSize returns the byte length of the data segment.
func (b *Bin) DataSize() int {
	return len(b.data)
}

// Encode serializes the bin to its on-disk representation.
func (b *Bin) Encode() []byte {
	out := make([]byte, headerSize+len(b.entries)*entrySize+len(b.data))
	copy(out[0:4], magic[:])
	binary.LittleEndian.PutUint32(out[4:8], Version)
	binary.LittleEndian.PutUint32(out[8:12], uint32(len(b.entries)))

	pos := headerSize
	for _, e := range b.entries {
		binary.LittleEndian.PutUint64(out[pos:], e.ID)
		binary.LittleEndian.PutUint64(out[pos+8:], e.Offset)
		binary.LittleEndian.PutUint64(out[pos+16:], e.Size)
		pos += entrySize
	}
	copy(out[pos:], b.data)
	return out
}

// Reader provides random access to a bin's entries and asset bytes.
type Reader struct {
	src       io.ReaderAt
	closer    io.Closer
	version   uint32
	entries   []Entry
	byID      map[uint64]int
	dataStart int64
	dataSize  int64
}

// Open opens a bin file for random access. The returned Reader holds
// the file open until Close is called.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening bin %s: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stating bin %s: %w", path, err)
	}
	r, err := NewReader(f, info.Size())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	r.closer = f
	return r, nil
}

// NewReader parses the header and entry table from src, which must span
// size bytes. The data segment is read on demand via ReadAt.
func NewReader(src io.ReaderAt, size int64) (*Reader, error) {
	if size < headerSize {
		return nil, fmt.Errorf("%w: %d bytes is smaller than the header", ErrCorrupt, size)
	}

	header := make([]byte, headerSize)
	if _, err := src.ReadAt(header, 0); err != nil {
		return nil, fmt.Errorf("reading bin header: %w", err)
	}
	if [4]byte(header[0:4]) != magic {
		return nil, ErrBadMagic
	}
	version := binary.LittleEndian.Uint32(header[4:8])
	if version != Version {
		return nil, fmt.Errorf("%w: %d", ErrBadVersion, version)
	}

	count := binary.LittleEndian.Uint32(header[8:12])
	tableSize := int64(count) * entrySize
	if headerSize+tableSize > size {
		return nil, fmt.Errorf("%w: entry table for %d entries exceeds file size", ErrCorrupt, count)
	}

	table := make([]byte, tableSize)
	if _, err := src.ReadAt(table, headerSize); err != nil {
		return nil, fmt.Errorf("reading bin entry table: %w", err)
	}

	r := &Reader{
		src:       src,
		version:   version,
		entries:   make([]Entry, count),
		byID:      make(map[uint64]int, count),
		dataStart: headerSize + tableSize,
		dataSize:  size - headerSize - tableSize,
	}
	for i := range r.entries {
		pos := i * entrySize
		e := Entry{
			ID:     binary.LittleEndian.Uint64(table[pos:]),
			Offset: binary.LittleEndian.Uint64(table[pos+8:]),
			Size:   binary.LittleEndian.Uint64(table[pos+16:]),
		}
		if e.Offset > uint64(r.dataSize) || e.Size > uint64(r.dataSize)-e.Offset {
			return nil, fmt.Errorf("%w: entry %d addresses bytes outside the data segment", ErrCorrupt, i)
		}
		r.entries[i] = e
		r.byID[e.ID] = i
	}
	return r, nil
}

// Version returns the bin's declared format version.
func (r *Reader) Version() uint32 {
	return r.version
}

// Entries returns the entry table in layout order. The slice is owned
// by the Reader; callers must not modify it.
func (r *Reader) Entries() []Entry {
	return r.entries
}

// Len returns the number of entries.
func (r *Reader) Len() int {
	return len(r.entries)
}

// Lookup returns the entry with the given asset id.
func (r *Reader) Lookup(id uint64) (Entry, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// ReadData returns the asset bytes addressed by an entry.
func (r *Reader) ReadData(e Entry) ([]byte, error) {
	if e.Size == 0 {
		return []byte{}, nil
	}
	buf := make([]byte, e.Size)
	if _, err := r.src.ReadAt(buf, r.dataStart+int64(e.Offset)); err != nil {
		return nil, fmt.Errorf("reading %d bytes at data offset %d: %w", e.Size, e.Offset, err)
	}
	return buf, nil
}

// Close releases the underlying file, if the Reader owns one.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}
