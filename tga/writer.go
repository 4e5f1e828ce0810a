/*
Package tga implements an uncompressed 8-bit colormapped Targa encoder for
paletted images.
*/
package tga

import (
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"io"
)

const (
	headerSize     = 18
	colormapColors = 256
	colormapBytes  = colormapColors * 3

	maxDimension = 0xffff // header fields are 16 bit
)

func flatten(p color.Palette) ([colormapColors]color.RGBA, bool) {
	var pal [colormapColors]color.RGBA
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

// Encode writes the image m to w as an uncompressed colormapped TGA with a
// 24-bit BGR colormap and a top-left origin. The colormap drops the alpha
// channel; a transparent entry 0 is written as black.
func Encode(w io.Writer, m *image.Paletted) error {
	bounds := m.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return errors.New("tga: empty image")
	}
	if width > maxDimension || height > maxDimension {
		return errors.New("tga: image too large")
	}

	pal, transparent := flatten(m.Palette)
	if transparent {
		pal[0].R, pal[0].G, pal[0].B = 0, 0, 0
	}

	var hdr [headerSize]byte
	// hdr[0] is the image ID length, zero
	hdr[1] = 1 // colormap present
	hdr[2] = 1 // colormapped, uncompressed
	// colormap origin stays zero
	binary.LittleEndian.PutUint16(hdr[5:], colormapColors)
	hdr[7] = 24 // bits per colormap entry
	// x and y origin stay zero
	binary.LittleEndian.PutUint16(hdr[12:], uint16(width))
	binary.LittleEndian.PutUint16(hdr[14:], uint16(height))
	hdr[16] = 8    // bits per pixel
	hdr[17] = 0x20 // top-left origin

	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}

	var colormap [colormapBytes]byte
	for i, c := range pal {
		colormap[i*3+0] = c.B
		colormap[i*3+1] = c.G
		colormap[i*3+2] = c.R
	}
	if _, err := w.Write(colormap[:]); err != nil {
		return err
	}

	// The origin bit already encodes the orientation, so rows go out in
	// natural top-to-bottom order.
	row := make([]byte, width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			row[x] = m.ColorIndexAt(bounds.Min.X+x, bounds.Min.Y+y)
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}
