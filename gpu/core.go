// core.go - GPU core state and lifecycle

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

/*
core.go - Simplified PlayStation style GPU core

The core owns a VRAM buffer of 16-bit pixels plus the register file used by
the rasterizer. It is a stripped down PS1 GPU:
- No DMA, interrupts, command buffers or status/IO registers; the host sets
  the registers directly and calls the draw functions
- 15-bit output only, no dithering, no mask bit, no texture flipping
- Primitives are always modulated by their colour when textured
- Only rectangles, lines, triangles and the Doom floor row / wall column
  primitives are supported; quads must be split into triangles by the host
- Draw areas, texture pages/windows and CLUTs must not wrap around VRAM

Extensions over the original hardware:
- VRAM can be larger than 1024x512 (any power of two per axis)
- Texture pages and windows can exceed 256x256 units
- Texture coordinates are 16-bit

A Core is not safe for concurrent use. Independent cores share nothing.
*/

// Package gpu is a software emulation of a simplified PS1 style fixed-function GPU.
package gpu

import "math/bits"

// Original PS1 VRAM dimensions in 16-bit pixels.
const (
	PS1VramW = 1024
	PS1VramH = 512
)

// maxVramDim is the largest VRAM width/height: masks are 16-bit.
const maxVramDim = 1 << 15

// Core is the GPU device: VRAM plus the registers consulted by each draw.
// All exported fields are registers the host may change between draw calls.
type Core struct {
	ram      []uint16 // VRAM, row major, ramW * ramH pixels
	ramW     int      // Always a power of 2
	ramH     int      // Always a power of 2
	ramXMask uint16   // Wraps x coordinates into VRAM
	ramYMask uint16   // Wraps y coordinates into VRAM

	DrawOffsetX int16 // Added to vertices before rasterizing
	DrawOffsetY int16

	DrawAreaLx uint16 // Area of VRAM being drawn to, inclusive bounds
	DrawAreaRx uint16
	DrawAreaTy uint16
	DrawAreaBy uint16

	DisplayAreaX uint16 // Area of VRAM being displayed (top left, size)
	DisplayAreaY uint16
	DisplayAreaW uint16
	DisplayAreaH uint16

	TexPageX     uint16 // Texture page origin, in 16-bit VRAM pixels
	TexPageY     uint16
	TexPageXMask uint16 // Wraps page-relative coordinates, in 16-bit VRAM pixels
	TexPageYMask uint16

	TexWinX     uint16 // Texture window origin within the page, in texture format pixels
	TexWinY     uint16
	TexWinXMask uint16 // Wraps texcoords inside the window, in texture format pixels
	TexWinYMask uint16

	BlendMode BlendMode // Used by the blended draw modes
	TexFmt    TexFmt    // Format of the texture being sampled

	ClutX uint16 // Position of the 256 entry CLUT row in VRAM
	ClutY uint16

	// Disables discarding of texels whose CLUT index is 0.
	DisableMasking bool

	clut clutCache
}

// NewCore creates a core with VRAM of (at least) the given size.
func NewCore(ramPixelW, ramPixelH int) *Core {
	c := &Core{}
	c.Init(ramPixelW, ramPixelH)
	return c
}

func roundPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return min(1<<bits.Len(uint(n-1)), maxVramDim)
}

// Init allocates zeroed VRAM and resets every register to its default.
// Dimensions are rounded up to the next power of 2 (at most 32768).
func (c *Core) Init(ramPixelW, ramPixelH int) {
	w := roundPow2(ramPixelW)
	h := roundPow2(ramPixelH)

	*c = Core{
		ram:      make([]uint16, w*h),
		ramW:     w,
		ramH:     h,
		ramXMask: uint16(w - 1),
		ramYMask: uint16(h - 1),

		DrawAreaRx: uint16(w - 1),
		DrawAreaBy: uint16(h - 1),

		DisplayAreaW: uint16(min(w, 256)),
		DisplayAreaH: uint16(min(h, 240)),

		TexPageXMask: uint16(w - 1),
		TexPageYMask: uint16(h - 1),
		TexWinXMask:  0xFFFF,
		TexWinYMask:  0xFFFF,

		BlendMode: BlendAlpha50,
		TexFmt:    TexFmt4Bpp,
	}

	Logger().Debug("gpu: core initialised", "width", w, "height", h)
}

// Destroy releases VRAM. The core must be re-initialised before reuse.
func (c *Core) Destroy() {
	c.ram = nil
	c.ramW = 0
	c.ramH = 0
	c.ramXMask = 0
	c.ramYMask = 0
	c.clut = clutCache{}
	Logger().Debug("gpu: core destroyed")
}

// Width returns the VRAM width in 16-bit pixels.
func (c *Core) Width() int { return c.ramW }

// Height returns the VRAM height in 16-bit pixels.
func (c *Core) Height() int { return c.ramH }

// XMask returns the mask wrapping x coordinates into VRAM.
func (c *Core) XMask() uint16 { return c.ramXMask }

// YMask returns the mask wrapping y coordinates into VRAM.
func (c *Core) YMask() uint16 { return c.ramYMask }

// IsPixelInDrawArea reports whether the VRAM pixel may be drawn to.
func (c *Core) IsPixelInDrawArea(x, y uint16) bool {
	return x >= c.DrawAreaLx && x <= c.DrawAreaRx && y >= c.DrawAreaTy && y <= c.DrawAreaBy
}

// drawArea returns the clip rect as ints for the rasterizer.
func (c *Core) drawArea() (lx, rx, ty, by int) {
	return int(c.DrawAreaLx), int(c.DrawAreaRx), int(c.DrawAreaTy), int(c.DrawAreaBy)
}
