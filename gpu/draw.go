// draw.go - Draw modes and the shared pixel pipeline

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
draw.go - Draw modes and the shared pixel pipeline

Every primitive has one scan conversion algorithm, instantiated per draw
mode tag:

	Colored          flat or gouraud colour, written directly
	ColoredBlended   flat or gouraud colour, composited with BlendMode
	Textured         texel * colour, written directly
	TexturedBlended  texel * colour, composited with BlendMode

The mode is a type argument, so the texture and blend paths a call can take
are fixed where the call is written. Lines only accept the colored modes.

Per pixel, after the primitive's own coverage test:
 1. Reject the pixel if it lies outside the draw area
 2. Compute the source colour (flat, interpolated, or sampled and modulated)
 3. Textured: discard CLUT index 0 unless masking is disabled
 4. Blended: composite against the VRAM pixel
 5. Write through the wrapped VRAM path
*/

package gpu

// Draw mode tags.
type (
	Colored         struct{}
	ColoredBlended  struct{}
	Textured        struct{}
	TexturedBlended struct{}
)

func (Colored) textured() bool         { return false }
func (Colored) blended() bool          { return false }
func (ColoredBlended) textured() bool  { return false }
func (ColoredBlended) blended() bool   { return true }
func (Textured) textured() bool        { return true }
func (Textured) blended() bool         { return false }
func (TexturedBlended) textured() bool { return true }
func (TexturedBlended) blended() bool  { return true }

// DrawMode is satisfied by the four draw mode tags.
type DrawMode interface {
	Colored | ColoredBlended | Textured | TexturedBlended
	textured() bool
	blended() bool
}

// ColorMode is satisfied by the untextured draw mode tags.
type ColorMode interface {
	Colored | ColoredBlended
	textured() bool
	blended() bool
}

// Largest rectangle the device draws. Not checked.
const (
	MaxRectW = 1023
	MaxRectH = 511
)

// Rect is an axis aligned rectangle, optionally textured from (U, V).
type Rect struct {
	X     int16
	Y     int16
	W     uint16 // Must not exceed MaxRectW
	H     uint16 // Must not exceed MaxRectH
	U     uint16 // Texcoord of the top left pixel
	V     uint16
	Color Color24F
}

// Line is a single pixel wide line. Lines cannot be textured.
type Line struct {
	X1    int16
	Y1    int16
	X2    int16
	Y2    int16
	Color Color24F
}

// Triangle is a flat shaded triangle with per-vertex texcoords.
type Triangle struct {
	X1, Y1, U1, V1 int16
	X2, Y2, U2, V2 int16
	X3, Y3, U3, V3 int16
	Color          Color24F
}

// TriangleGouraud is a triangle with a colour per vertex.
type TriangleGouraud struct {
	X1, Y1, U1, V1 int16
	X2, Y2, U2, V2 int16
	X3, Y3, U3, V3 int16
	Color1         Color24F
	Color2         Color24F
	Color3         Color24F
}

// FloorRow is a horizontal span with texcoords interpolated between its
// endpoints. It is a cheaper form of a triangle for drawing Doom flats.
type FloorRow struct {
	Y      int16
	X1, U1 int16
	V1     int16
	X2, U2 int16
	V2     int16
	Color  Color24F
}

// WallCol is a vertical span with a constant u texcoord, used for Doom walls.
type WallCol struct {
	X      int16
	U      int16
	Y1, V1 int16
	Y2, V2 int16
	Color  Color24F
}

// WallColGouraud is a WallCol whose colour is interpolated between its endpoints.
type WallColGouraud struct {
	X      int16
	U      int16
	Y1, V1 int16
	Y2, V2 int16
	Color1 Color24F
	Color2 Color24F
}

// pipe is the per-draw state, read once from the core before the pixel loops.
type pipe struct {
	c        *Core
	textured bool
	blended  bool
	masked   bool // Discard texels with CLUT index 0
	blend    BlendMode
	lx, rx   int
	ty, by   int
	offX     int
	offY     int
}

func newPipe[M DrawMode](c *Core) pipe {
	var m M
	lx, rx, ty, by := c.drawArea()
	return pipe{
		c:        c,
		textured: m.textured(),
		blended:  m.blended(),
		masked:   m.textured() && !c.DisableMasking && c.TexFmt.IsIndexed(),
		blend:    c.BlendMode,
		lx:       lx,
		rx:       rx,
		ty:       ty,
		by:       by,
		offX:     int(c.DrawOffsetX),
		offY:     int(c.DrawOffsetY),
	}
}

func (p *pipe) inside(x, y int) bool {
	return x >= p.lx && x <= p.rx && y >= p.ty && y <= p.by
}

// put writes a source colour, blending when the mode asks for it.
func (p *pipe) put(x, y int, fg Color16) {
	i := p.c.offset(uint16(x), uint16(y))
	if p.blended {
		fg = ColorBlend(Color16(p.c.ram[i]), fg, p.blend)
	}
	p.c.ram[i] = uint16(fg)
}

// texel samples (u, v), modulates it by shade and writes it.
func (p *pipe) texel(x, y int, u, v uint16, shade Color24F) {
	t, idx := p.c.sampleTexel(u, v)
	if p.masked && idx == 0 {
		return
	}
	p.put(x, y, ColorMul(t, shade))
}

// shade writes a pixel whose colour varies per pixel.
func (p *pipe) shade(x, y int, u, v uint16, color Color24F) {
	if p.textured {
		p.texel(x, y, u, v, color)
		return
	}
	p.put(x, y, color24FTo16(color))
}
