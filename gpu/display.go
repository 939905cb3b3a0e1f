// display.go - Display area readout

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package gpu

import (
	"image"
	"image/color"
)

// expand5 widens a 5-bit channel to 8 bits so 0 and 31 map to 0 and 255.
func expand5(c uint16) uint8 {
	return uint8(c<<3 | c>>2)
}

// RGBA implements color.Color. Colours are always opaque: the
// semi-transparency flag only affects blending inside the GPU.
func (c Color16) RGBA() (r, g, b, a uint32) {
	r = uint32(expand5(c.R()))
	g = uint32(expand5(c.G()))
	b = uint32(expand5(c.B()))
	return r | r<<8, g | g<<8, b | b<<8, 0xFFFF
}

// Color16Model converts colours to Color16, truncating each channel to 5 bits.
var Color16Model = color.ModelFunc(func(c color.Color) color.Color {
	if c16, ok := c.(Color16); ok {
		return c16
	}
	r, g, b, _ := c.RGBA()
	return MakeColor16(uint16(r>>11), uint16(g>>11), uint16(b>>11))
})

// DisplayRGBA converts the display area to RGBA8888 in dst, which must hold
// DisplayAreaW * DisplayAreaH * 4 bytes. VRAM reads wrap.
func (c *Core) DisplayRGBA(dst []byte) {
	w, h := int(c.DisplayAreaW), int(c.DisplayAreaH)
	i := 0
	for y := 0; y < h; y++ {
		vy := c.DisplayAreaY + uint16(y)
		for x := 0; x < w; x++ {
			px := Color16(c.VramReadU16(c.DisplayAreaX+uint16(x), vy))
			dst[i] = expand5(px.R())
			dst[i+1] = expand5(px.G())
			dst[i+2] = expand5(px.B())
			dst[i+3] = 0xFF
			i += 4
		}
	}
}

// VramImage is a window onto VRAM as a draw.Image. Pixel (0, 0) of the image
// is VRAM pixel (X, Y); coordinates wrap around the VRAM edges.
type VramImage struct {
	c    *Core
	X    uint16
	Y    uint16
	Rect image.Rectangle
}

// VramImage returns a w x h view of VRAM at (x, y).
func (c *Core) VramImage(x, y, w, h uint16) *VramImage {
	return &VramImage{c: c, X: x, Y: y, Rect: image.Rect(0, 0, int(w), int(h))}
}

// DisplayImage returns a view of the current display area.
func (c *Core) DisplayImage() *VramImage {
	return c.VramImage(c.DisplayAreaX, c.DisplayAreaY, c.DisplayAreaW, c.DisplayAreaH)
}

func (i *VramImage) Bounds() image.Rectangle { return i.Rect }
func (i *VramImage) ColorModel() color.Model { return Color16Model }

func (i *VramImage) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(i.Rect)) {
		return Color16(0)
	}
	return Color16(i.c.VramReadU16(i.X+uint16(x), i.Y+uint16(y)))
}

func (i *VramImage) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(i.Rect)) {
		return
	}
	i.c.VramWriteU16(i.X+uint16(x), i.Y+uint16(y), uint16(Color16Model.Convert(c).(Color16)))
}
