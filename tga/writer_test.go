package tga

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(width, height int, palette color.Palette, pix []byte) *image.Paletted {
	m := image.NewPaletted(image.Rect(0, 0, width, height), palette)
	copy(m.Pix, pix)
	return m
}

func TestEncodeLayout(t *testing.T) {
	palette := color.Palette{
		color.RGBA{0x10, 0x20, 0x30, 0xff},
		color.RGBA{0x40, 0x50, 0x60, 0xff},
	}
	m := testImage(3, 2, palette, []byte{0, 1, 0, 1, 0, 1})

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, m))
	out := buf.Bytes()

	require.Len(t, out, 18+768+3*2)

	assert.Equal(t, byte(0), out[0])    // no image ID
	assert.Equal(t, byte(1), out[1])    // colormap present
	assert.Equal(t, byte(1), out[2])    // colormapped, uncompressed
	assert.Equal(t, uint16(256), binary.LittleEndian.Uint16(out[5:]))
	assert.Equal(t, byte(24), out[7])   // colormap entry size
	assert.Equal(t, uint16(3), binary.LittleEndian.Uint16(out[12:]))
	assert.Equal(t, uint16(2), binary.LittleEndian.Uint16(out[14:]))
	assert.Equal(t, byte(8), out[16])   // pixel depth
	assert.Equal(t, byte(0x20), out[17]) // top-left origin

	// Colormap entries are BGR.
	assert.Equal(t, []byte{0x30, 0x20, 0x10}, out[18:21])
	assert.Equal(t, []byte{0x60, 0x50, 0x40}, out[21:24])

	// Indices follow in natural top-to-bottom order, no compression.
	assert.Equal(t, []byte{0, 1, 0, 1, 0, 1}, out[18+768:])
}

func TestEncodePadsColormap(t *testing.T) {
	// A short palette still produces a full 256 entry colormap.
	m := testImage(1, 1, color.Palette{color.RGBA{A: 0xff}}, []byte{0})

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, m))
	assert.Len(t, buf.Bytes(), 18+768+1)
}

func TestEncodeTransparentIndexBlack(t *testing.T) {
	palette := color.Palette{color.RGBA{0x10, 0x20, 0x30, 0x00}}
	m := testImage(1, 1, palette, []byte{0})

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, m))
	assert.Equal(t, []byte{0, 0, 0}, buf.Bytes()[18:21])
}

func TestEncodeTooLarge(t *testing.T) {
	m := image.NewPaletted(image.Rect(0, 0, 0x10000, 1), color.Palette{color.RGBA{A: 0xff}})
	assert.Error(t, Encode(new(bytes.Buffer), m))
}
