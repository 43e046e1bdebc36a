package savefile_test

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"testing"
	"time"

	"h3sed/core/detect"
	"h3sed/core/registry"
	"h3sed/core/savefile"
	"h3sed/core/savefile/mocks"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var sod = registry.Version{Name: "sod", Label: "Shadow of Death", Priority: 2}

var candidates = []detect.Candidate{{
	Version: sod,
	Signature: detect.Signature{
		"version_major": {Min: 42, Max: 43},
		"version_minor": {Min: 2, Max: 4},
	},
}}

// contents builds unpacked savefile bytes with the given version bytes and a map
// header naming "Test" / "Description".
func contents(major, minor byte) []byte {
	raw := []byte("H3SVG")
	raw = append(raw, 0, 0, 0, major, 0, 0, 0, minor)
	raw = append(raw, 0x01, 0, 0, 0, 0x01)
	raw = append(raw, 4, 0)
	raw = append(raw, "Test"...)
	raw = append(raw, 11, 0)
	raw = append(raw, "Description"...)
	return append(raw, make([]byte, 64)...)
}

func pack(t *testing.T, raw []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func unpack(t *testing.T, packed []byte) []byte {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(packed))
	require.NoError(t, err)
	raw, err := io.ReadAll(zr)
	require.NoError(t, err)
	return raw
}

type fileInfo struct {
	name string
	size int64
}

func (f fileInfo) Name() string       { return f.name }
func (f fileInfo) Size() int64        { return f.size }
func (f fileInfo) Mode() fs.FileMode  { return 0o644 }
func (f fileInfo) ModTime() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
func (f fileInfo) IsDir() bool        { return false }
func (f fileInfo) Sys() any           { return nil }

type sink struct {
	bytes.Buffer
	closed bool
}

func (s *sink) Close() error {
	s.closed = true
	return nil
}

func loadMocked(t *testing.T, raw []byte) (*savefile.Savefile, *mocks.Store) {
	t.Helper()
	packed := pack(t, raw)
	store := new(mocks.Store)
	store.On("Open", "game.GM1").Return(io.NopCloser(bytes.NewReader(packed)), nil)
	store.On("Stat", "game.GM1").Return(fileInfo{name: "game.GM1", size: int64(len(packed))}, nil).Once()

	sf, err := savefile.Load(store, "game.GM1", candidates, zap.NewNop())
	require.NoError(t, err)
	return sf, store
}

func TestLoad(t *testing.T) {
	t.Run("DetectsVersionAndHeader", func(t *testing.T) {
		raw := contents(42, 3)
		sf, store := loadMocked(t, raw)

		assert.Equal(t, "game.GM1", sf.Name)
		assert.True(t, sf.Detected)
		assert.Equal(t, sod, sf.Version)
		assert.NoError(t, sf.Require())
		assert.Equal(t, "Test", sf.MapName)
		assert.Equal(t, "Description", sf.MapDescription)
		assert.Equal(t, raw, sf.Bytes())
		assert.Equal(t, len(raw), sf.Len())
		assert.Positive(t, sf.Size)
		assert.False(t, sf.IsChanged())
		store.AssertExpectations(t)
	})

	t.Run("UnknownVersionStillLoads", func(t *testing.T) {
		sf, _ := loadMocked(t, contents(10, 3))

		assert.False(t, sf.Detected)
		assert.True(t, sf.Version.IsZero())
		assert.ErrorIs(t, sf.Require(), savefile.ErrUnsupportedVersion)
	})

	t.Run("NilLogger", func(t *testing.T) {
		raw := contents(42, 3)
		packed := pack(t, raw)
		store := new(mocks.Store)
		store.On("Open", "game.GM1").Return(io.NopCloser(bytes.NewReader(packed)), nil)
		store.On("Stat", "game.GM1").Return(fileInfo{name: "game.GM1", size: int64(len(packed))}, nil)
		store.On("Create", "out.GM1").Return(&sink{}, nil)
		store.On("Stat", "out.GM1").Return(fileInfo{name: "out.GM1", size: 99}, nil)

		sf, err := savefile.Load(store, "game.GM1", candidates, nil)
		require.NoError(t, err)
		assert.True(t, sf.Detected)
		assert.NoError(t, sf.Save("out.GM1"))
	})

	t.Run("BadMagic", func(t *testing.T) {
		raw := contents(42, 3)
		raw[4] = 'X'
		store := new(mocks.Store)
		store.On("Open", "game.GM1").Return(io.NopCloser(bytes.NewReader(pack(t, raw))), nil)

		_, err := savefile.Load(store, "game.GM1", candidates, zap.NewNop())
		assert.ErrorIs(t, err, savefile.ErrNotSavefile)
	})

	t.Run("NotGzip", func(t *testing.T) {
		store := new(mocks.Store)
		store.On("Open", "game.GM1").Return(io.NopCloser(bytes.NewReader([]byte("H3SVG plain"))), nil)

		_, err := savefile.Load(store, "game.GM1", candidates, zap.NewNop())
		assert.ErrorIs(t, err, savefile.ErrNotSavefile)
	})

	t.Run("OpenError", func(t *testing.T) {
		store := new(mocks.Store)
		store.On("Open", "missing.GM1").Return(nil, fs.ErrNotExist)

		_, err := savefile.Load(store, "missing.GM1", candidates, zap.NewNop())
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestParse(t *testing.T) {
	t.Run("CampaignMagic", func(t *testing.T) {
		raw := contents(42, 3)
		raw[4] = 'C'
		sf, err := savefile.Parse(raw, candidates)
		require.NoError(t, err)
		assert.True(t, sf.Detected)
	})

	t.Run("ShortBuffer", func(t *testing.T) {
		sf, err := savefile.Parse([]byte("H3SVG\x00\x00"), candidates)
		require.NoError(t, err)
		assert.False(t, sf.Detected)
		assert.Empty(t, sf.MapName)
	})

	t.Run("TooShortForMagic", func(t *testing.T) {
		_, err := savefile.Parse([]byte("H3S"), candidates)
		assert.ErrorIs(t, err, savefile.ErrNotSavefile)
	})

	t.Run("UnparsableHeader", func(t *testing.T) {
		raw := append([]byte("H3SVG"), make([]byte, 32)...)
		sf, err := savefile.Parse(raw, nil)
		require.NoError(t, err)
		assert.Empty(t, sf.MapName)
		assert.Empty(t, sf.MapDescription)
	})

	t.Run("DecodesWindows1252", func(t *testing.T) {
		raw := contents(42, 3)
		raw[20] = 0xC9 // É
		sf, err := savefile.Parse(raw, candidates)
		require.NoError(t, err)
		assert.Equal(t, "Éest", sf.MapName)
	})
}

func TestPatch(t *testing.T) {
	sf, err := savefile.Parse(contents(42, 3), candidates)
	require.NoError(t, err)

	require.NoError(t, sf.Patch(nil, 0, 1))
	assert.False(t, sf.IsChanged())

	require.NoError(t, sf.Patch([]byte{43}, 8, 9))
	assert.True(t, sf.IsChanged())
	assert.Equal(t, byte(43), sf.Bytes()[8])

	require.NoError(t, sf.Patch([]byte{1, 2, 3}, 9, 10))
	assert.Equal(t, len(contents(42, 3))+2, sf.Len())

	assert.ErrorIs(t, sf.Patch([]byte{1}, 5, 4), savefile.ErrInvalidSpan)
	assert.ErrorIs(t, sf.Patch([]byte{1}, 0, 10000), savefile.ErrInvalidSpan)
	assert.ErrorIs(t, sf.Patch([]byte{1}, -1, 0), savefile.ErrInvalidSpan)
}

func TestSave(t *testing.T) {
	t.Run("WritesWholeContents", func(t *testing.T) {
		sf, store := loadMocked(t, contents(42, 3))
		out := &sink{}
		store.On("Create", "out.GM1").Return(out, nil)
		store.On("Stat", "out.GM1").Return(fileInfo{name: "out.GM1", size: 99}, nil)

		require.NoError(t, sf.Patch([]byte{7}, 12, 13))
		require.NoError(t, sf.Save("out.GM1"))

		assert.True(t, out.closed)
		assert.Equal(t, sf.Bytes(), unpack(t, out.Bytes()))
		assert.False(t, sf.IsChanged())
		assert.Equal(t, int64(99), sf.Size)
	})

	t.Run("DefaultsToLoadedName", func(t *testing.T) {
		sf, store := loadMocked(t, contents(42, 3))
		out := &sink{}
		store.On("Create", "game.GM1").Return(out, nil)
		store.On("Stat", "game.GM1").Return(fileInfo{name: "game.GM1", size: 50}, nil)

		require.NoError(t, sf.Save(""))
		store.AssertCalled(t, "Create", "game.GM1")
	})

	t.Run("CreateError", func(t *testing.T) {
		sf, store := loadMocked(t, contents(42, 3))
		store.On("Create", mock.Anything).Return(nil, errors.New("read-only"))

		err := sf.Save("out.GM1")
		assert.ErrorContains(t, err, "read-only")
	})

	t.Run("WithoutStore", func(t *testing.T) {
		sf, err := savefile.Parse(contents(42, 3), candidates)
		require.NoError(t, err)
		assert.Error(t, sf.Save("out.GM1"))
	})
}

func TestSaveRanges(t *testing.T) {
	original := contents(42, 3)
	sf, store := loadMocked(t, original)
	out := &sink{}
	store.On("Create", "game.GM1").Return(out, nil)
	store.On("Stat", "game.GM1").Return(fileInfo{name: "game.GM1", size: 60}, nil)

	require.NoError(t, sf.Patch([]byte{43}, 8, 9))
	require.NoError(t, sf.Patch([]byte{4}, 12, 13))
	require.NoError(t, sf.SaveRanges([]savefile.Span{{Start: 12, End: 13}}, ""))

	written := unpack(t, out.Bytes())
	assert.Equal(t, byte(42), written[8])
	assert.Equal(t, byte(4), written[12])
	assert.True(t, sf.IsChanged())

	assert.ErrorIs(t, sf.SaveRanges([]savefile.Span{{Start: 5, End: 2}}, ""), savefile.ErrInvalidSpan)
	assert.Equal(t, "12..13", savefile.Span{Start: 12, End: 13}.String())
}
