// vram.go - VRAM access and texel sampling

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

// offset returns the index into VRAM of the wrapped coordinate.
func (c *Core) offset(x, y uint16) int {
	return int(x&c.ramXMask) + int(y&c.ramYMask)*c.ramW
}

// VramReadU16 reads a VRAM pixel. Coordinates wrap around the VRAM edges.
func (c *Core) VramReadU16(x, y uint16) uint16 {
	return c.ram[c.offset(x, y)]
}

// VramWriteU16 writes a VRAM pixel. Coordinates wrap around the VRAM edges.
func (c *Core) VramWriteU16(x, y, value uint16) {
	c.ram[c.offset(x, y)] = value
}

// ClearRect fills a VRAM region with one colour. The draw area and draw
// offset are ignored: this is a bulk VRAM fill, not a draw primitive.
func (c *Core) ClearRect(color Color16, x, y, w, h uint16) {
	for dy := uint16(0); dy < h; dy++ {
		row := int((y+dy)&c.ramYMask) * c.ramW
		for dx := uint16(0); dx < w; dx++ {
			c.ram[row+int((x+dx)&c.ramXMask)] = uint16(color)
		}
	}
}

// sampleTexel locates texcoord (u, v) through the texture window and page
// and reads it in the current texture format. For indexed formats it also
// returns the CLUT index that was looked up.
func (c *Core) sampleTexel(u, v uint16) (Color16, uint16) {
	// Wrap to the window first, then to the page
	tx := c.TexWinX + (u & c.TexWinXMask)
	ty := c.TexPageY + ((c.TexWinY + (v & c.TexWinYMask)) & c.TexPageYMask)

	switch c.TexFmt {
	case TexFmt4Bpp:
		word := c.VramReadU16(c.TexPageX+((tx>>2)&c.TexPageXMask), ty)
		idx := (word >> ((tx & 3) * 4)) & 0xF
		return c.clut.entries[idx], idx
	case TexFmt8Bpp:
		word := c.VramReadU16(c.TexPageX+((tx>>1)&c.TexPageXMask), ty)
		idx := (word >> ((tx & 1) * 8)) & 0xFF
		return c.clut.entries[idx], idx
	default:
		return Color16(c.VramReadU16(c.TexPageX+(tx&c.TexPageXMask), ty)), 0
	}
}

// ReadTexel returns the texel at texcoord (u, v) for the current texture
// format, page and window. Indexed formats are resolved through the CLUT
// cache, which is not refreshed here.
func (c *Core) ReadTexel(u, v uint16) Color16 {
	texel, _ := c.sampleTexel(u, v)
	return texel
}
