// clut.go - CLUT cache

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

// ClutSize is the number of entries mirrored by the CLUT cache.
const ClutSize = 256

// clutCache mirrors the active CLUT row and the settings it was taken with.
type clutCache struct {
	valid   bool
	fmt     TexFmt
	x       uint16
	y       uint16
	entries [ClutSize]Color16
}

// UpdateClutCache re-reads the 256 entry CLUT row at (ClutX, ClutY) and
// records the format and position it was taken with. The read is
// unconditional, so VRAM writes to the CLUT region are picked up too.
// Draw calls never refresh the cache themselves.
func (c *Core) UpdateClutCache() {
	row := c.ClutY
	for i := range c.clut.entries {
		c.clut.entries[i] = Color16(c.VramReadU16(c.ClutX+uint16(i), row))
	}
	c.clut.valid = true
	c.clut.fmt = c.TexFmt
	c.clut.x = c.ClutX
	c.clut.y = c.ClutY

	Logger().Debug("gpu: clut cache updated", "fmt", c.TexFmt, "x", c.ClutX, "y", c.ClutY)
}

// ClutCacheEntry returns a cached CLUT colour.
func (c *Core) ClutCacheEntry(i uint8) Color16 {
	return c.clut.entries[i]
}

// ClutCacheStale reports whether the cache was taken with a different
// format or CLUT position than the current registers (or never taken).
func (c *Core) ClutCacheStale() bool {
	return !c.clut.valid || c.clut.fmt != c.TexFmt || c.clut.x != c.ClutX || c.clut.y != c.ClutY
}
