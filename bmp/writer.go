/*
Package bmp implements an uncompressed 24-bit Windows bitmap encoder for
paletted images.
*/
package bmp

import (
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"io"
)

const (
	fileHeaderSize = 14
	infoHeaderSize = 40
)

// flatten expands a palette to exactly 256 RGBA entries, padding with
// opaque black, and reports whether entry 0 is marked transparent.
func flatten(p color.Palette) ([256]color.RGBA, bool) {
	var pal [256]color.RGBA
	for i := range pal {
		if i >= len(p) {
			pal[i] = color.RGBA{A: 0xff}
			continue
		}
		r, g, b, a := p[i].RGBA()
		pal[i] = color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	}
	return pal, len(p) > 0 && pal[0].A == 0
}

// Encode writes the image m to w as a bottom-up 24-bit BMP with rows
// padded to four bytes. BMP has no alpha channel; when palette entry 0 is
// marked transparent its color is written as black instead.
func Encode(w io.Writer, m *image.Paletted) error {
	bounds := m.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return errors.New("bmp: empty image")
	}

	pal, transparent := flatten(m.Palette)
	if transparent {
		pal[0].R, pal[0].G, pal[0].B = 0, 0, 0
	}

	rowSize := (width*3 + 3) &^ 3
	imageSize := rowSize * height
	dataOffset := fileHeaderSize + infoHeaderSize

	var hdr [fileHeaderSize + infoHeaderSize]byte
	hdr[0], hdr[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(hdr[2:], uint32(dataOffset+imageSize))
	// two reserved words stay zero
	binary.LittleEndian.PutUint32(hdr[10:], uint32(dataOffset))
	binary.LittleEndian.PutUint32(hdr[14:], infoHeaderSize)
	binary.LittleEndian.PutUint32(hdr[18:], uint32(width))
	binary.LittleEndian.PutUint32(hdr[22:], uint32(height)) // positive height: bottom-up
	binary.LittleEndian.PutUint16(hdr[26:], 1)              // planes
	binary.LittleEndian.PutUint16(hdr[28:], 24)             // bits per pixel
	// compression stays zero (BI_RGB)
	binary.LittleEndian.PutUint32(hdr[34:], uint32(imageSize))
	// resolution and color counts stay zero

	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}

	row := make([]byte, rowSize)
	for y := height - 1; y >= 0; y-- {
		for x := 0; x < width; x++ {
			c := pal[m.ColorIndexAt(bounds.Min.X+x, bounds.Min.Y+y)]
			row[x*3+0] = c.B
			row[x*3+1] = c.G
			row[x*3+2] = c.R
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}
