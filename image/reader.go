package image

import (
	"encoding/binary"
	"image"
	"image/color"
	"io"
)

// A FormatError reports that the input is not a valid PID file.
type FormatError string

func (e FormatError) Error() string { return "pid: invalid format: " + string(e) }

// A DecodeError reports that the pixel data ended before the image was
// complete.
type DecodeError string

func (e DecodeError) Error() string { return "pid: decode: " + string(e) }

// Header is the fixed 32 byte PID file header.
type Header struct {
	Flags  uint32
	Width  int
	Height int
}

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

func parseHeader(b []byte) (Header, error) {
	var h Header

	if int32(binary.LittleEndian.Uint32(b[0:])) != signature {
		return h, FormatError("bad signature")
	}
	h.Flags = binary.LittleEndian.Uint32(b[4:])

	width := int32(binary.LittleEndian.Uint32(b[8:]))
	height := int32(binary.LittleEndian.Uint32(b[12:]))
	if width <= 0 || height <= 0 {
		return h, FormatError("invalid dimensions")
	}
	if int64(width)*int64(height) > maxPixels {
		return h, FormatError("image too large")
	}
	h.Width, h.Height = int(width), int(height)

	return h, nil
}

// DecodeHeader reads and validates the 32 byte header from r.
func DecodeHeader(r io.Reader) (Header, error) {
	var tmp [headerSize]byte
	if err := readFull(r, tmp[:]); err != nil {
		return Header{}, FormatError("truncated header")
	}
	return parseHeader(tmp[:])
}

type decoder struct {
	r io.ReadSeeker

	header  Header
	palette color.Palette
	image   *image.Paletted

	tmp [headerSize]byte
}

func (d *decoder) readHeader() error {
	if err := readFull(d.r, d.tmp[:]); err != nil {
		return FormatError("truncated header")
	}
	h, err := parseHeader(d.tmp[:])
	if err != nil {
		return err
	}
	d.header = h
	return nil
}

func (d *decoder) readPalette() error {
	d.palette = make(color.Palette, paletteColors)

	if d.header.Flags&FlagPalette != 0 {
		if _, err := d.r.Seek(-paletteBytes, io.SeekEnd); err != nil {
			return FormatError("missing embedded palette")
		}
		rgb := make([]byte, paletteBytes)
		if err := readFull(d.r, rgb); err != nil {
			return FormatError("truncated embedded palette")
		}
		for i := range d.palette {
			d.palette[i] = color.RGBA{rgb[i*3], rgb[i*3+1], rgb[i*3+2], 0xff}
		}
	} else {
		for i, c := range defaultPalette {
			d.palette[i] = c
		}
	}

	if d.header.Flags&FlagTransparency != 0 {
		c := d.palette[0].(color.RGBA)
		c.A = 0
		d.palette[0] = c
	}

	// The embedded palette lives at the end of the stream, so the cursor
	// must come back to the pixel data no matter which branch ran.
	if _, err := d.r.Seek(pixelDataOffset, io.SeekStart); err != nil {
		return FormatError("missing pixel data")
	}

	return nil
}

func (d *decoder) readByte() (byte, error) {
	if err := readFull(d.r, d.tmp[:1]); err != nil {
		return 0, err
	}
	return d.tmp[0], nil
}

// readPixels consumes the RLE stream until the index buffer is full. An
// overlong final run is clamped at the buffer boundary; running out of
// input before the buffer is full is an error.
func (d *decoder) readPixels() ([]byte, error) {
	pix := make([]byte, d.header.Width*d.header.Height)
	pos := 0

	if d.header.Flags&FlagRLE != 0 {
		for pos < len(pix) {
			a, err := d.readByte()
			if err != nil {
				return nil, DecodeError("pixel data exhausted")
			}
			if a > longRunFlag {
				// Run of the fill index; no value byte follows.
				for n := int(a) - longRunFlag; n > 0 && pos < len(pix); n-- {
					pix[pos] = fillIndex
					pos++
				}
			} else {
				for n := int(a); n > 0 && pos < len(pix); n-- {
					b, err := d.readByte()
					if err != nil {
						return nil, DecodeError("pixel data exhausted")
					}
					pix[pos] = b
					pos++
				}
			}
		}
	} else {
		for pos < len(pix) {
			a, err := d.readByte()
			if err != nil {
				return nil, DecodeError("pixel data exhausted")
			}
			b, n := a, 1
			if a > rawRunFlag {
				n = int(a) - rawRunFlag
				if b, err = d.readByte(); err != nil {
					return nil, DecodeError("pixel data exhausted")
				}
			}
			for ; n > 0 && pos < len(pix); n-- {
				pix[pos] = b
				pos++
			}
		}
	}

	return pix, nil
}

// transform applies the mirror and invert flags. The remap always goes
// into a fresh buffer; source rows are still being read while destination
// rows are written.
func (d *decoder) transform(pix []byte) []byte {
	mirror := d.header.Flags&FlagMirror != 0
	invert := d.header.Flags&FlagInvert != 0
	if !mirror && !invert {
		return pix
	}

	width, height := d.header.Width, d.header.Height
	out := make([]byte, len(pix))
	for y := 0; y < height; y++ {
		srcY := y
		if invert {
			srcY = height - 1 - y
		}
		for x := 0; x < width; x++ {
			srcX := x
			if mirror {
				srcX = width - 1 - x
			}
			out[y*width+x] = pix[srcY*width+srcX]
		}
	}
	return out
}

func (d *decoder) decode(r io.ReadSeeker, configOnly bool) error {
	d.r = r

	if err := d.readHeader(); err != nil {
		return err
	}

	if err := d.readPalette(); err != nil {
		return err
	}

	if configOnly {
		return nil
	}

	pix, err := d.readPixels()
	if err != nil {
		return err
	}

	d.image = image.NewPaletted(image.Rect(0, 0, d.header.Width, d.header.Height), d.palette)
	copy(d.image.Pix, d.transform(pix))

	return nil
}

// Decode reads a PID image from r and returns it as an image.Paletted.
// The transparency flag survives in the palette: entry 0 carries alpha 0
// when the image is transparent, 255 otherwise.
func Decode(r io.ReadSeeker) (*image.Paletted, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.image, nil
}

// DecodeConfig returns the color model and dimensions of a PID image
// without decoding the pixel data.
func DecodeConfig(r io.ReadSeeker) (image.Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: d.palette,
		Width:      d.header.Width,
		Height:     d.header.Height,
	}, nil
}
