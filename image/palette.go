package image

import "image/color"

// defaultPalette is the built-in 256 color table used when a PID file does
// not carry its own palette. It matches the palette the game registers with
// the Windows GDI.
var defaultPalette = [paletteColors]color.RGBA{
	{0, 0, 0, 0xff}, {128, 0, 0, 0xff}, {0, 128, 0, 0xff}, {128, 128, 0, 0xff},
	{0, 0, 128, 0xff}, {128, 0, 128, 0xff}, {0, 128, 128, 0xff}, {192, 192, 192, 0xff},
	{192, 220, 192, 0xff}, {166, 202, 240, 0xff}, {42, 63, 170, 0xff}, {42, 63, 255, 0xff},
	{42, 95, 0, 0xff}, {42, 95, 85, 0xff}, {42, 95, 170, 0xff}, {42, 95, 255, 0xff},
	{42, 127, 0, 0xff}, {42, 127, 85, 0xff}, {42, 127, 170, 0xff}, {42, 127, 255, 0xff},
	{42, 159, 0, 0xff}, {42, 159, 85, 0xff}, {42, 159, 170, 0xff}, {42, 159, 255, 0xff},
	{42, 191, 0, 0xff}, {42, 191, 85, 0xff}, {42, 191, 170, 0xff}, {42, 191, 255, 0xff},
	{42, 223, 0, 0xff}, {42, 223, 85, 0xff}, {42, 223, 170, 0xff}, {42, 223, 255, 0xff},
	{42, 255, 0, 0xff}, {42, 255, 85, 0xff}, {42, 255, 170, 0xff}, {42, 255, 255, 0xff},
	{85, 0, 0, 0xff}, {85, 0, 85, 0xff}, {85, 0, 170, 0xff}, {85, 0, 255, 0xff},
	{85, 31, 0, 0xff}, {85, 31, 85, 0xff}, {85, 31, 170, 0xff}, {85, 31, 255, 0xff},
	{85, 63, 0, 0xff}, {85, 63, 85, 0xff}, {85, 63, 170, 0xff}, {85, 63, 255, 0xff},
	{85, 95, 0, 0xff}, {85, 95, 85, 0xff}, {85, 95, 170, 0xff}, {85, 95, 255, 0xff},
	{85, 127, 0, 0xff}, {85, 127, 85, 0xff}, {85, 127, 170, 0xff}, {85, 127, 255, 0xff},
	{85, 159, 0, 0xff}, {85, 159, 85, 0xff}, {85, 159, 170, 0xff}, {85, 159, 255, 0xff},
	{85, 191, 0, 0xff}, {85, 191, 85, 0xff}, {85, 191, 170, 0xff}, {85, 191, 255, 0xff},
	{85, 223, 0, 0xff}, {85, 223, 85, 0xff}, {85, 223, 170, 0xff}, {85, 223, 255, 0xff},
	{85, 255, 0, 0xff}, {85, 255, 85, 0xff}, {85, 255, 170, 0xff}, {85, 255, 255, 0xff},
	{127, 0, 0, 0xff}, {127, 0, 85, 0xff}, {127, 0, 170, 0xff}, {127, 0, 255, 0xff},
	{127, 31, 0, 0xff}, {127, 31, 85, 0xff}, {127, 31, 170, 0xff}, {127, 31, 255, 0xff},
	{127, 63, 0, 0xff}, {127, 63, 85, 0xff}, {127, 63, 170, 0xff}, {127, 63, 255, 0xff},
	{127, 95, 0, 0xff}, {127, 95, 85, 0xff}, {127, 95, 170, 0xff}, {127, 95, 255, 0xff},
	{127, 127, 0, 0xff}, {127, 127, 85, 0xff}, {127, 127, 170, 0xff}, {127, 127, 255, 0xff},
	{127, 159, 0, 0xff}, {127, 159, 85, 0xff}, {127, 159, 170, 0xff}, {127, 159, 255, 0xff},
	{127, 191, 0, 0xff}, {127, 191, 85, 0xff}, {127, 191, 170, 0xff}, {127, 191, 255, 0xff},
	{127, 223, 0, 0xff}, {127, 223, 85, 0xff}, {127, 223, 170, 0xff}, {127, 223, 255, 0xff},
	{127, 255, 0, 0xff}, {127, 255, 85, 0xff}, {127, 255, 170, 0xff}, {127, 255, 255, 0xff},
	{170, 0, 0, 0xff}, {170, 0, 85, 0xff}, {170, 0, 170, 0xff}, {170, 0, 255, 0xff},
	{170, 31, 0, 0xff}, {170, 31, 85, 0xff}, {170, 31, 170, 0xff}, {170, 31, 255, 0xff},
	{170, 63, 0, 0xff}, {170, 63, 85, 0xff}, {170, 63, 170, 0xff}, {170, 63, 255, 0xff},
	{170, 95, 0, 0xff}, {170, 95, 85, 0xff}, {170, 95, 170, 0xff}, {170, 95, 255, 0xff},
	{170, 127, 0, 0xff}, {170, 127, 85, 0xff}, {170, 127, 170, 0xff}, {170, 127, 255, 0xff},
	{170, 159, 0, 0xff}, {170, 159, 85, 0xff}, {170, 159, 170, 0xff}, {170, 159, 255, 0xff},
	{170, 191, 0, 0xff}, {170, 191, 85, 0xff}, {170, 191, 170, 0xff}, {170, 191, 255, 0xff},
	{170, 223, 0, 0xff}, {170, 223, 85, 0xff}, {170, 223, 170, 0xff}, {170, 223, 255, 0xff},
	{170, 255, 0, 0xff}, {170, 255, 85, 0xff}, {170, 255, 170, 0xff}, {170, 255, 255, 0xff},
	{212, 0, 0, 0xff}, {212, 0, 85, 0xff}, {212, 0, 170, 0xff}, {212, 0, 255, 0xff},
	{212, 31, 0, 0xff}, {212, 31, 85, 0xff}, {212, 31, 170, 0xff}, {212, 31, 255, 0xff},
	{212, 63, 0, 0xff}, {212, 63, 85, 0xff}, {212, 63, 170, 0xff}, {212, 63, 255, 0xff},
	{212, 95, 0, 0xff}, {212, 95, 85, 0xff}, {212, 95, 170, 0xff}, {212, 95, 255, 0xff},
	{212, 127, 0, 0xff}, {212, 127, 85, 0xff}, {212, 127, 170, 0xff}, {212, 127, 255, 0xff},
	{212, 159, 0, 0xff}, {212, 159, 85, 0xff}, {212, 159, 170, 0xff}, {212, 159, 255, 0xff},
	{212, 191, 0, 0xff}, {212, 191, 85, 0xff}, {212, 191, 170, 0xff}, {212, 191, 255, 0xff},
	{212, 223, 0, 0xff}, {212, 223, 85, 0xff}, {212, 223, 170, 0xff}, {212, 223, 255, 0xff},
	{212, 255, 0, 0xff}, {212, 255, 85, 0xff}, {212, 255, 170, 0xff}, {212, 255, 255, 0xff},
	{255, 0, 85, 0xff}, {255, 0, 170, 0xff}, {255, 31, 0, 0xff}, {255, 31, 85, 0xff},
	{255, 31, 170, 0xff}, {255, 31, 255, 0xff}, {255, 63, 0, 0xff}, {255, 63, 85, 0xff},
	{255, 63, 170, 0xff}, {255, 63, 255, 0xff}, {255, 95, 0, 0xff}, {255, 95, 85, 0xff},
	{255, 95, 170, 0xff}, {255, 95, 255, 0xff}, {255, 127, 0, 0xff}, {255, 127, 85, 0xff},
	{255, 127, 170, 0xff}, {255, 127, 255, 0xff}, {255, 159, 0, 0xff}, {255, 159, 85, 0xff},
	{255, 159, 170, 0xff}, {255, 159, 255, 0xff}, {255, 191, 0, 0xff}, {255, 191, 85, 0xff},
	{255, 191, 170, 0xff}, {255, 191, 255, 0xff}, {255, 223, 0, 0xff}, {255, 223, 85, 0xff},
	{255, 223, 170, 0xff}, {255, 223, 255, 0xff}, {255, 255, 85, 0xff}, {255, 255, 170, 0xff},
	{204, 204, 255, 0xff}, {255, 204, 255, 0xff}, {51, 255, 255, 0xff}, {102, 255, 255, 0xff},
	{153, 255, 255, 0xff}, {204, 255, 255, 0xff}, {0, 127, 0, 0xff}, {0, 127, 85, 0xff},
	{0, 127, 170, 0xff}, {0, 127, 255, 0xff}, {0, 159, 0, 0xff}, {0, 159, 85, 0xff},
	{0, 159, 170, 0xff}, {0, 159, 255, 0xff}, {0, 191, 0, 0xff}, {0, 191, 85, 0xff},
	{0, 191, 170, 0xff}, {0, 191, 255, 0xff}, {0, 223, 0, 0xff}, {0, 223, 85, 0xff},
	{0, 223, 170, 0xff}, {0, 223, 255, 0xff}, {0, 255, 85, 0xff}, {0, 255, 170, 0xff},
	{42, 0, 0, 0xff}, {42, 0, 85, 0xff}, {42, 0, 170, 0xff}, {42, 0, 255, 0xff},
	{42, 31, 0, 0xff}, {42, 31, 85, 0xff}, {42, 31, 170, 0xff}, {42, 31, 255, 0xff},
	{42, 63, 0, 0xff}, {42, 63, 85, 0xff}, {255, 251, 240, 0xff}, {160, 160, 164, 0xff},
	{128, 128, 128, 0xff}, {255, 0, 0, 0xff}, {0, 255, 0, 0xff}, {255, 255, 0, 0xff},
	{0, 0, 255, 0xff}, {255, 0, 255, 0xff}, {0, 255, 255, 0xff}, {255, 255, 255, 0xff},
}
