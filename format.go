package pid

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/PaweX/pid/png"
)

// Identifiers accepted by Convert.
const (
	FormatBMP = "BMP"
	FormatTGA = "TGA8"
	FormatPNG = "PNG"
)

// A Format describes one conversion target offered for a PID file.
type Format struct {
	ID      string // identifier passed to Convert
	Ext     string // output file extension, without the dot
	Display string // human readable name
}

// CanConvert reports whether name looks like a PID file. Only the
// extension is examined; the content is not touched until Convert.
func CanConvert(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".pid")
}

func targets(depth png.Depth) []Format {
	return []Format{
		{ID: FormatBMP, Ext: "bmp", Display: "BMP - Windows Bitmap (24bpp)"},
		{ID: FormatTGA, Ext: "tga", Display: "TGA - Targa (8bpp Colormap)"},
		{ID: FormatPNG, Ext: "png", Display: fmt.Sprintf("PNG - Portable Network Graphics (%dbpp)", depth)},
	}
}

// Formats returns the conversion targets offered for name, or nil if name
// is not a PID file. The PNG entry reflects the given output depth.
func Formats(name string, depth png.Depth) []Format {
	if !CanConvert(name) {
		return nil
	}
	return targets(depth)
}

// Target looks up a conversion target by identifier. "TGA" is accepted as
// an alias for "TGA8".
func Target(id string, depth png.Depth) (Format, bool) {
	if id == "TGA" {
		id = FormatTGA
	}
	for _, f := range targets(depth) {
		if f.ID == id {
			return f, true
		}
	}
	return Format{}, false
}
