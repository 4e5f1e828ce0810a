/*
Package image implements a decoder for the PID image format used by the
1999 game Gruntz.

A PID file starts with a fixed 32 byte little-endian header: a signature
(always 10), a flag word, the image width and height, and four reserved
words. Pixels are 8-bit palette indices starting at offset 32, stored
either run-length compressed or as a raw stream with an optional run
marker, selected by a header flag. The 256 color palette is either
embedded in the last 768 bytes of the file or taken from a built-in
default table.
*/
package image

const (
	signature       = 10
	headerSize      = 32
	pixelDataOffset = headerSize
	paletteColors   = 256
	paletteBytes    = paletteColors * 3

	// No valid header describes more pixels than this.
	maxPixels = 1 << 30

	// RLE control byte thresholds. In the compressed scheme a control
	// byte above longRunFlag is a run of fillIndex with no value byte;
	// in the raw scheme a control byte above rawRunFlag is a run of the
	// byte that follows it.
	longRunFlag = 128
	rawRunFlag  = 192
	fillIndex   = 0
)

// Header flag bits.
const (
	FlagTransparency = 1 << 0 // palette index 0 is transparent
	FlagMirror       = 1 << 3 // flip horizontally
	FlagInvert       = 1 << 4 // flip vertically
	FlagRLE          = 1 << 5 // pixel data is run-length compressed
	FlagPalette      = 1 << 7 // palette embedded at the end of the file
)
