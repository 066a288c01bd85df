// Package aspak packs trees of loose game assets into a small number of
// binary bin files plus a single lookup index, so a runtime can seek
// into large archives instead of opening thousands of small files.
//
// Inputs are scene descriptors (".ntfg" text files, one asset path per
// line) discovered under the asset root. Assets referenced by two or
// more scenes are packed once into shared.bin; each scene's remaining
// assets go into "<scene>.bin". The index (assets.idx) maps every
// asset's 64-bit path hash to its (bin, offset, size), so a runtime
// resolves assets without carrying a string table.
//
// # Packing
//
//	summary, err := aspak.Pack(ctx, "./Content", "./packed")
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("packed %d assets into %d bins\n", summary.Assets, summary.Bins)
//
// # Reading
//
//	archive, err := aspak.Open("./packed")
//	if err != nil {
//	    return err
//	}
//	defer archive.Close()
//	data, err := archive.ReadPath("Content/Textures/ship.png")
//
// All output files are written via temp-file and atomic rename: a
// failed pack leaves no truncated bin or index behind. Formats are
// fixed little-endian; see the binfile and indexfile packages for the
// exact layouts.
package aspak
