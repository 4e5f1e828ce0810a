/*
Package png implements a PNG encoder for paletted images with a selectable
output depth.

The 8-bit mode writes the palette indices verbatim with a PLTE chunk, plus
a tRNS chunk when entry 0 of the palette is marked transparent. The 24 and
32-bit modes expand indices through the palette into truecolor samples; the
32-bit mode adds an alpha channel where only the transparent index is
anything other than opaque. All modes emit unfiltered scanlines compressed
into a single IDAT chunk.
*/
package png

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"io"

	"github.com/klauspost/compress/zlib"
)

// Depth selects how a paletted image maps onto PNG color types.
type Depth int

const (
	Depth8  Depth = 8  // indexed-color, PLTE and optionally tRNS
	Depth24 Depth = 24 // truecolor
	Depth32 Depth = 32 // truecolor with alpha
)

func (d Depth) valid() bool {
	return d == Depth8 || d == Depth24 || d == Depth32
}

func (d Depth) colorType() byte {
	switch d {
	case Depth24:
		return 2
	case Depth32:
		return 6
	default:
		return 3
	}
}

var pngSignature = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}

const paletteColors = 256

func flatten(p color.Palette) ([paletteColors]color.RGBA, bool) {
	var pal [paletteColors]color.RGBA
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

type encoder struct {
	w   io.Writer
	err error
	tmp [8]byte
}

// chunk writes one length-prefixed, CRC-protected chunk. The CRC covers
// the type and the payload but not the length.
func (e *encoder) chunk(typ string, data []byte) {
	if e.err != nil {
		return
	}

	binary.BigEndian.PutUint32(e.tmp[:4], uint32(len(data)))
	copy(e.tmp[4:], typ)
	if _, e.err = e.w.Write(e.tmp[:8]); e.err != nil {
		return
	}
	if len(data) > 0 {
		if _, e.err = e.w.Write(data); e.err != nil {
			return
		}
	}

	crc := crc32.Update(0, crc32.IEEETable, e.tmp[4:8])
	crc = crc32.Update(crc, crc32.IEEETable, data)
	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], crc)
	_, e.err = e.w.Write(sum[:])
}

// Encoder configures one PNG encode.
type Encoder struct {
	// Depth selects the output mode; the zero value means Depth8.
	Depth Depth
}

// Encode writes the image m to w in PNG format.
func (enc *Encoder) Encode(w io.Writer, m *image.Paletted) error {
	depth := enc.Depth
	if depth == 0 {
		depth = Depth8
	}
	if !depth.valid() {
		return errors.New("png: unsupported depth")
	}

	bounds := m.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return errors.New("png: empty image")
	}

	pal, transparent := flatten(m.Palette)

	if _, err := w.Write(pngSignature); err != nil {
		return err
	}

	e := &encoder{w: w}

	var ihdr [13]byte
	binary.BigEndian.PutUint32(ihdr[0:], uint32(width))
	binary.BigEndian.PutUint32(ihdr[4:], uint32(height))
	ihdr[8] = 8 // bits per sample
	ihdr[9] = depth.colorType()
	// compression, filter and interlace stay zero
	e.chunk("IHDR", ihdr[:])

	if depth == Depth8 {
		var plte [paletteColors * 3]byte
		for i, c := range pal {
			plte[i*3+0] = c.R
			plte[i*3+1] = c.G
			plte[i*3+2] = c.B
		}
		e.chunk("PLTE", plte[:])

		if transparent {
			trns := bytes.Repeat([]byte{0xff}, paletteColors)
			trns[0] = 0
			e.chunk("tRNS", trns)
		}
	}

	// Assemble the scanline stream: every row is prefixed with filter
	// type 0 (no filtering).
	samples := 1
	switch depth {
	case Depth24:
		samples = 3
	case Depth32:
		samples = 4
	}
	raw := bytes.NewBuffer(make([]byte, 0, height*(1+width*samples)))
	for y := 0; y < height; y++ {
		raw.WriteByte(0)
		for x := 0; x < width; x++ {
			idx := m.ColorIndexAt(bounds.Min.X+x, bounds.Min.Y+y)
			switch depth {
			case Depth8:
				raw.WriteByte(idx)
			case Depth24:
				c := pal[idx]
				raw.WriteByte(c.R)
				raw.WriteByte(c.G)
				raw.WriteByte(c.B)
			case Depth32:
				c := pal[idx]
				raw.WriteByte(c.R)
				raw.WriteByte(c.G)
				raw.WriteByte(c.B)
				if transparent && idx == 0 {
					raw.WriteByte(0)
				} else {
					raw.WriteByte(0xff)
				}
			}
		}
	}

	var idat bytes.Buffer
	z, err := zlib.NewWriterLevel(&idat, zlib.DefaultCompression)
	if err != nil {
		return err
	}
	if _, err := z.Write(raw.Bytes()); err != nil {
		return err
	}
	if err := z.Close(); err != nil {
		return err
	}

	e.chunk("IDAT", idat.Bytes())
	e.chunk("IEND", nil)

	return e.err
}

// Encode writes the image m to w as an 8-bit indexed PNG.
func Encode(w io.Writer, m *image.Paletted) error {
	var e Encoder
	return e.Encode(w, m)
}
