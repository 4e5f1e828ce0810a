package pid

import (
	"fmt"
	"io"

	"github.com/PaweX/pid/bmp"
	"github.com/PaweX/pid/image"
	"github.com/PaweX/pid/png"
	"github.com/PaweX/pid/tga"
)

// An EncodeError reports a failure while writing the destination stream.
type EncodeError struct {
	Format string
	Err    error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("pid: encoding %s: %v", e.Format, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// Convert reads a PID image from src and writes it to dst in the format
// named by id (see Formats). On success the destination cursor is left at
// the start of the stream, which is what the host expects. After a failure
// the destination content is undefined; discarding it is the caller's job.
//
// Errors from a malformed source are image.FormatError or
// image.DecodeError values; destination failures come wrapped in an
// EncodeError. Convert never panics across this boundary.
func (c *Converter) Convert(src, dst Stream, id string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pid: convert %s: %v", id, r)
		}
	}()

	// The depth is captured here once so a concurrent SetDepth cannot
	// change the output mid-encode.
	depth := c.Depth()

	target, ok := Target(id, depth)
	if !ok {
		return fmt.Errorf("pid: unsupported target format %q", id)
	}

	m, err := image.Decode(src)
	if err != nil {
		return err
	}

	switch target.ID {
	case FormatBMP:
		err = bmp.Encode(dst, m)
	case FormatTGA:
		err = tga.Encode(dst, m)
	case FormatPNG:
		e := png.Encoder{Depth: depth}
		err = e.Encode(dst, m)
	}
	if err != nil {
		return &EncodeError{Format: target.ID, Err: err}
	}

	if _, err := dst.Seek(0, io.SeekStart); err != nil {
		return &EncodeError{Format: target.ID, Err: err}
	}

	return nil
}
