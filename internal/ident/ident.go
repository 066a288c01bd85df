// Package ident derives stable 64-bit asset identifiers from logical paths.
//
// Identifiers are the first 8 bytes of the BLAKE3 digest of the UTF-8
// path bytes, read little-endian. BLAKE3 output is prefix-stable, so the
// truncation is well-defined regardless of the digest length requested.
// The id is what bin and index files store in place of the path string;
// a runtime resolves an asset by hashing its path the same way.
//
// Collisions between distinct paths are possible in principle and are not
// detected here; callers that want a hard failure on collision compare
// ids across the full path set themselves.
package ident

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"

	"github.com/zeebo/blake3"
)

// ID returns the identifier for an already-normalized asset path.
//
// The same normalized path always produces the same id. Paths that are
// not valid UTF-8 are rejected: the on-disk formats commit to UTF-8
// path hashing, and hashing arbitrary bytes would let two differently
// broken encodings of one path produce different ids.
func ID(path string) (uint64, error) {
	if !utf8.ValidString(path) {
		return 0, fmt.Errorf("aspak: asset path %q is not valid UTF-8", path)
	}
	sum := blake3.Sum256([]byte(path))
	return binary.LittleEndian.Uint64(sum[:8]), nil
}
