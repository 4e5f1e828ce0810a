package pid

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	pidimage "github.com/PaweX/pid/image"
	"github.com/PaweX/pid/png"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// pidFile builds a minimal uncompressed 2x2 PID using the default palette.
func pidFile(flags uint32) []byte {
	b := make([]byte, 32, 36)
	binary.LittleEndian.PutUint32(b[0:], 10)
	binary.LittleEndian.PutUint32(b[4:], flags)
	binary.LittleEndian.PutUint32(b[8:], 2)
	binary.LittleEndian.PutUint32(b[12:], 2)
	return append(b, 1, 2, 3, 4)
}

func TestConvertBadSignature(t *testing.T) {
	src := NewMemoryStream([]byte("not a pid file, much too short a header anyway"))
	dst := NewMemoryStream(nil)

	c := New(png.Depth8, discard())
	err := c.Convert(src, dst, FormatBMP)

	var ferr pidimage.FormatError
	require.ErrorAs(t, err, &ferr)
	assert.Empty(t, dst.Bytes())
}

func TestConvertUnknownFormat(t *testing.T) {
	src := NewMemoryStream(pidFile(0))
	dst := NewMemoryStream(nil)

	c := New(png.Depth8, discard())
	err := c.Convert(src, dst, "GIF")
	require.Error(t, err)
	assert.Empty(t, dst.Bytes())
}

func TestConvertBMP(t *testing.T) {
	src := NewMemoryStream(pidFile(0))
	dst := NewMemoryStream(nil)

	c := New(png.Depth8, discard())
	require.NoError(t, c.Convert(src, dst, FormatBMP))

	out := dst.Bytes()
	rowSize := (2*3 + 3) &^ 3
	assert.Len(t, out, 14+40+rowSize*2)
	assert.Equal(t, byte('B'), out[0])
	assert.Equal(t, byte('M'), out[1])

	// The destination cursor is handed back at the start of the stream.
	pos, err := dst.Seek(0, io.SeekCurrent)
	require.NoError(t, err)
	assert.Equal(t, int64(0), pos)
}

func TestConvertTGA(t *testing.T) {
	src := NewMemoryStream(pidFile(0))
	dst := NewMemoryStream(nil)

	c := New(png.Depth8, discard())
	require.NoError(t, c.Convert(src, dst, FormatTGA))

	out := dst.Bytes()
	assert.Len(t, out, 18+768+2*2)
	assert.Equal(t, byte(1), out[2])
}

func TestConvertTGAAlias(t *testing.T) {
	c := New(png.Depth8, discard())
	require.NoError(t, c.Convert(NewMemoryStream(pidFile(0)), NewMemoryStream(nil), "TGA"))
}

func TestConvertPNGDeterministic(t *testing.T) {
	c := New(png.Depth32, discard())

	var runs [2][]byte
	for i := range runs {
		dst := NewMemoryStream(nil)
		require.NoError(t, c.Convert(NewMemoryStream(pidFile(pidimage.FlagTransparency)), dst, FormatPNG))
		runs[i] = append([]byte(nil), dst.Bytes()...)
	}
	assert.True(t, bytes.Equal(runs[0], runs[1]))
}

func TestConvertCapturesDepth(t *testing.T) {
	c := New(png.Depth8, discard())
	dst := NewMemoryStream(nil)
	require.NoError(t, c.Convert(NewMemoryStream(pidFile(0)), dst, FormatPNG))

	// IHDR payload starts at offset 16; color type is its tenth byte.
	assert.Equal(t, byte(3), dst.Bytes()[16+9])

	c.SetDepth(png.Depth32)
	dst = NewMemoryStream(nil)
	require.NoError(t, c.Convert(NewMemoryStream(pidFile(0)), dst, FormatPNG))
	assert.Equal(t, byte(6), dst.Bytes()[16+9])
}

// brokenStream fails every write.
type brokenStream struct {
	*MemoryStream
}

func (s brokenStream) Write(p []byte) (int, error) {
	return 0, errors.New("write refused")
}

func TestConvertWriteFailure(t *testing.T) {
	c := New(png.Depth8, discard())
	err := c.Convert(NewMemoryStream(pidFile(0)), brokenStream{NewMemoryStream(nil)}, FormatBMP)

	var eerr *EncodeError
	require.ErrorAs(t, err, &eerr)
	assert.Equal(t, FormatBMP, eerr.Format)
}

func TestCanConvert(t *testing.T) {
	assert.True(t, CanConvert("GRUNT.PID"))
	assert.True(t, CanConvert("path/to/tile.pid"))
	assert.False(t, CanConvert("tile.bmp"))
	assert.False(t, CanConvert("pid"))
}

func TestFormats(t *testing.T) {
	assert.Nil(t, Formats("tile.png", png.Depth8))

	list := Formats("tile.pid", png.Depth24)
	require.Len(t, list, 3)
	assert.Equal(t, FormatBMP, list[0].ID)
	assert.Equal(t, FormatTGA, list[1].ID)
	assert.Equal(t, FormatPNG, list[2].ID)
	assert.Contains(t, list[2].Display, "24bpp")
}

func TestTarget(t *testing.T) {
	f, ok := Target("TGA", png.Depth8)
	require.True(t, ok)
	assert.Equal(t, FormatTGA, f.ID)

	_, ok = Target("JPG", png.Depth8)
	assert.False(t, ok)
}

func TestScan(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "good.pid"), pidFile(0), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.pid"), []byte("garbage header"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("ignored"), 0o644))

	c := New(png.Depth8, discard())
	require.NoError(t, c.Scan(dir, FormatTGA))

	out, err := os.ReadFile(filepath.Join(dir, "good.tga"))
	require.NoError(t, err)
	assert.Len(t, out, 18+768+2*2)

	// The malformed file is skipped and leaves no partial output.
	_, err = os.Stat(filepath.Join(dir, "bad.tga"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "other.tga"))
	assert.True(t, os.IsNotExist(err))
}

func TestScanUnknownFormat(t *testing.T) {
	c := New(png.Depth8, discard())
	assert.Error(t, c.Scan(t.TempDir(), "JPG"))
}
