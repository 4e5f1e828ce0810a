/*
Package pid converts images in the PID format used by the 1999 game Gruntz
into standard raster formats: 24-bit BMP, 8-bit colormapped TGA, or PNG
with a configurable depth.
*/
package pid

import (
	"log"
	"sync/atomic"

	"github.com/PaweX/pid/png"
)

// A Converter turns PID images into one of the supported output formats.
// A single Converter is safe for concurrent use; every conversion works on
// its own buffers.
type Converter struct {
	depth  atomic.Int32
	logger *log.Logger
}

// New returns a Converter producing PNG output at the given depth.
func New(depth png.Depth, logger *log.Logger) *Converter {
	c := &Converter{logger: logger}
	c.depth.Store(int32(depth))
	return c
}

// Depth returns the configured PNG output depth.
func (c *Converter) Depth() png.Depth {
	return png.Depth(c.depth.Load())
}

// SetDepth changes the PNG output depth. Conversions already in flight
// keep the depth they started with.
func (c *Converter) SetDepth(depth png.Depth) {
	c.depth.Store(int32(depth))
}
