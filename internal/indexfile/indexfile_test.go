package indexfile

import (
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeLayout(t *testing.T) {
	t.Parallel()

	records := []Record{
		{ID: 0x1122334455667788, Bin: 0, Offset: 0, Size: 10},
		{ID: 0xAABBCCDDEEFF0011, Bin: 2, Offset: 10, Size: 4096},
	}
	raw := Encode(records)

	require.Equal(t, countSize+2*recordSize, len(raw))
	assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(raw[0:4]))
	assert.Equal(t, uint64(0x1122334455667788), binary.LittleEndian.Uint64(raw[4:12]))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(raw[12:16]))
	assert.Equal(t, uint64(0), binary.LittleEndian.Uint64(raw[16:24]))
	assert.Equal(t, uint64(10), binary.LittleEndian.Uint64(raw[24:32]))
	assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(raw[40:44]))
}

func TestWriteReadRoundTrip(t *testing.T) {
	t.Parallel()

	records := []Record{
		{ID: 1, Bin: 0, Offset: 0, Size: 100},
		{ID: 2, Bin: 0, Offset: 100, Size: 50},
		{ID: 3, Bin: 1, Offset: 0, Size: 7},
	}
	path := filepath.Join(t.TempDir(), "assets.idx")
	require.NoError(t, Write(path, records))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestEmptyIndex(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "assets.idx")
	require.NoError(t, Write(path, nil))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Empty(t, got)

	raw := Encode(nil)
	assert.Equal(t, []byte{0, 0, 0, 0}, raw)
}

func TestDecodeSizeMismatch(t *testing.T) {
	t.Parallel()

	raw := Encode([]Record{{ID: 1, Bin: 0, Offset: 0, Size: 1}})

	_, err := Decode(raw[:len(raw)-1])
	assert.ErrorIs(t, err, ErrCorrupt)

	_, err = Decode(append(raw, 0))
	assert.ErrorIs(t, err, ErrCorrupt)

	_, err = Decode([]byte{1, 2})
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestReadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Read(filepath.Join(t.TempDir(), "absent.idx"))
	require.Error(t, err)
}
