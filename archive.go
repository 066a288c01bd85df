package aspak

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nettfg/aspak/internal/binfile"
	"github.com/nettfg/aspak/internal/ident"
	"github.com/nettfg/aspak/internal/indexfile"
	"github.com/nettfg/aspak/internal/pathutil"
)

// Archive provides random access to a packed output directory: the
// index plus every bin it references. Bin files stay open for the
// Archive's lifetime; Close releases them.
type Archive struct {
	records map[uint64]indexfile.Record
	bins    map[uint32]*binfile.Reader
}

// Open loads the index from dir and opens every bin file it references.
//
// The index stores bin ids, not file names, so each bin file is matched
// to its id by looking up the bin's first entry in the index. A bin
// whose entries the index does not know, or an index record whose bin
// has no file, fails Open.
func Open(dir string) (*Archive, error) {
	records, err := indexfile.Read(filepath.Join(dir, IndexName))
	if err != nil {
		return nil, err
	}

	a := &Archive{
		records: make(map[uint64]indexfile.Record, len(records)),
		bins:    make(map[uint32]*binfile.Reader),
	}
	for _, rec := range records {
		a.records[rec.ID] = rec
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading archive directory %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), BinExt) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		r, err := binfile.Open(path)
		if err != nil {
			a.Close()
			return nil, err
		}
		if r.Len() == 0 {
			// Empty bins are never produced by Pack and cannot be
			// matched to an id; ignore the file.
			r.Close()
			continue
		}
		rec, ok := a.records[r.Entries()[0].ID]
		if !ok {
			r.Close()
			a.Close()
			return nil, fmt.Errorf("%w: bin %s is not referenced by the index", ErrCorruptIndex, path)
		}
		if _, dup := a.bins[rec.Bin]; dup {
			r.Close()
			a.Close()
			return nil, fmt.Errorf("%w: two bin files in %s map to bin id %d", ErrCorruptIndex, dir, rec.Bin)
		}
		a.bins[rec.Bin] = r
	}

	for _, rec := range a.records {
		if _, ok := a.bins[rec.Bin]; !ok {
			a.Close()
			return nil, fmt.Errorf("%w: index references bin %d but no such bin file exists in %s", ErrCorruptIndex, rec.Bin, dir)
		}
	}

	return a, nil
}

// Len returns the number of indexed assets.
func (a *Archive) Len() int {
	return len(a.records)
}

// Bins returns the number of opened bin files.
func (a *Archive) Bins() int {
	return len(a.bins)
}

// Lookup returns the index record for an asset id.
func (a *Archive) Lookup(id uint64) (Record, bool) {
	rec, ok := a.records[id]
	return rec, ok
}

// ReadID returns the bytes of the asset with the given id.
func (a *Archive) ReadID(id uint64) ([]byte, error) {
	rec, ok := a.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %016x", ErrNotFound, id)
	}
	r, ok := a.bins[rec.Bin]
	if !ok {
		return nil, fmt.Errorf("%w: bin %d", ErrNotFound, rec.Bin)
	}
	data, err := r.ReadData(binfile.Entry{ID: rec.ID, Offset: rec.Offset, Size: rec.Size})
	if err != nil {
		return nil, fmt.Errorf("asset %016x: %w", id, err)
	}
	return data, nil
}

// ReadPath returns the bytes of the asset with the given logical path.
// The path is normalized before hashing, so either separator style
// works.
func (a *Archive) ReadPath(path string) ([]byte, error) {
	id, err := ident.ID(pathutil.Normalize(path))
	if err != nil {
		return nil, err
	}
	data, err := a.ReadID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, errUnwrapNotFound(err))
	}
	return data, nil
}

// errUnwrapNotFound strips the id-specific context from a ReadID miss
// so ReadPath errors read in path terms.
func errUnwrapNotFound(err error) error {
	if errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// Close releases every opened bin file.
func (a *Archive) Close() error {
	var errs []error
	for _, r := range a.bins {
		if err := r.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.bins = nil
	return errors.Join(errs...)
}
