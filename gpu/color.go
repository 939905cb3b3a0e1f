// color.go - Colour formats, modulation and blending

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

import "fmt"

// Color24F is an RGB888 colour with each component in 1.7 fixed point.
// It is used as the shading colour of primitives and as a multiplier for
// texels. 128 is full strength (1.0) and values above that are 'overbright'.
type Color24F struct {
	R uint8
	G uint8
	B uint8
	X uint8 // Unused component/padding
}

// ColorUnity is the 1.0 shading multiplier: texels are left unmodified.
var ColorUnity = Color24F{R: 128, G: 128, B: 128}

// NewColor24F makes a shading colour from its components.
func NewColor24F(r, g, b uint8) Color24F {
	return Color24F{R: r, G: g, B: b}
}

// Color24FFromBits unpacks a colour stored as 0xXXBBGGRR.
func Color24FFromBits(bits uint32) Color24F {
	return Color24F{
		R: uint8(bits),
		G: uint8(bits >> 8),
		B: uint8(bits >> 16),
		X: uint8(bits >> 24),
	}
}

// Bits packs the colour as 0xXXBBGGRR.
func (c Color24F) Bits() uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | uint32(c.X)<<24
}

// Color16 is a TBGR1555 colour: the framebuffer format and the format of
// 16bpp textures and CLUT entries. The top bit (T) is the semi-transparency flag.
type Color16 uint16

const (
	color16ChannelMask = 0x1F
	color16TMask       = 0x8000
)

func (c Color16) R() uint16 { return uint16(c) & color16ChannelMask }
func (c Color16) G() uint16 { return (uint16(c) >> 5) & color16ChannelMask }
func (c Color16) B() uint16 { return (uint16(c) >> 10) & color16ChannelMask }
func (c Color16) T() uint16 { return uint16(c) >> 15 }

// SetRGB replaces the colour channels, preserving the semi-transparency flag.
// The components are assumed to be in range (5 bits each).
func (c *Color16) SetRGB(r5, g5, b5 uint16) {
	*c = (*c & color16TMask) | Color16(r5|g5<<5|b5<<10)
}

// MakeColor16 makes a colour from in-range 5-bit components, T bit clear.
func MakeColor16(r5, g5, b5 uint16) Color16 {
	return Color16(r5 | g5<<5 | b5<<10)
}

// MakeColor16T is MakeColor16 with an explicit 1-bit semi-transparency flag.
func MakeColor16T(r5, g5, b5, t1 uint16) Color16 {
	return Color16(r5 | g5<<5 | b5<<10 | t1<<15)
}

func (c Color16) String() string {
	return fmt.Sprintf("Color16(r=%d g=%d b=%d t=%d)", c.R(), c.G(), c.B(), c.T())
}

// BlendMode selects how a foreground colour is composited onto VRAM.
type BlendMode uint8

const (
	BlendAlpha50  BlendMode = iota // bg/2 + fg/2
	BlendAdd                       // bg + fg
	BlendSubtract                  // bg - fg
	BlendAdd25                     // bg + fg/4
)

var blendModeNames = [...]string{"alpha50", "add", "subtract", "add25"}

func (m BlendMode) String() string {
	if int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return fmt.Sprintf("BlendMode(%d)", uint8(m))
}

// TexFmt is the format of the texture data in VRAM.
type TexFmt uint8

const (
	TexFmt4Bpp  TexFmt = iota // 4-bit CLUT indexes, 4 per VRAM pixel
	TexFmt8Bpp                // 8-bit CLUT indexes, 2 per VRAM pixel
	TexFmt16Bpp               // direct TBGR1555
)

var texFmtNames = [...]string{"4bpp", "8bpp", "16bpp"}

func (f TexFmt) String() string {
	if int(f) < len(texFmtNames) {
		return texFmtNames[f]
	}
	return fmt.Sprintf("TexFmt(%d)", uint8(f))
}

// IsIndexed reports whether texels are CLUT indexes.
func (f TexFmt) IsIndexed() bool {
	return f == TexFmt4Bpp || f == TexFmt8Bpp
}

// quantize5 converts one 1.7 fixed point channel to 5 bits. 128 (unity)
// and anything brighter saturates at 31.
func quantize5(c uint8) uint16 {
	return min(uint16(c)>>2, 31)
}

func color24FTo16(c Color24F) Color16 {
	return MakeColor16(quantize5(c.R), quantize5(c.G), quantize5(c.B))
}

// Color24FTo16 converts a shading colour to the 15-bit output format.
// This is the fill colour of colored draws. Textured draws treat the colour
// as a multiplier and go through ColorMul instead.
func Color24FTo16[M DrawMode](c Color24F) Color16 {
	return color24FTo16(c)
}

func mulChannel(t uint16, s uint8) uint16 {
	return uint16(min((uint32(t)*uint32(s))>>7, 31))
}

// ColorMul modulates a texel by a 1.7 fixed point shading colour, saturating
// each channel at 31. The texel's semi-transparency flag is kept.
func ColorMul(texel Color16, shade Color24F) Color16 {
	return MakeColor16T(
		mulChannel(texel.R(), shade.R),
		mulChannel(texel.G(), shade.G),
		mulChannel(texel.B(), shade.B),
		texel.T(),
	)
}

func blendChannel(bg, fg uint16, mode BlendMode) uint16 {
	switch mode {
	case BlendAlpha50:
		return (bg + fg) >> 1
	case BlendAdd:
		return min(bg+fg, 31)
	case BlendSubtract:
		if fg >= bg {
			return 0
		}
		return bg - fg
	case BlendAdd25:
		return min(bg+fg>>2, 31)
	}
	return fg
}

// ColorBlend composites fg onto bg using the given mode. Each channel is
// clamped to [0, 31]; the result carries fg's semi-transparency flag.
func ColorBlend(bg, fg Color16, mode BlendMode) Color16 {
	return MakeColor16T(
		blendChannel(bg.R(), fg.R(), mode),
		blendChannel(bg.G(), fg.G(), mode),
		blendChannel(bg.B(), fg.B(), mode),
		fg.T(),
	)
}
