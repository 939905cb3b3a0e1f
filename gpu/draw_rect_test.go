// draw_rect_test.go - Tests for the rectangle rasterizer

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

import "testing"

// snapshotVram copies VRAM so tests can compare before and after a draw.
func snapshotVram(c *Core) []uint16 {
	return append([]uint16(nil), c.ram...)
}

// countWritten returns how many pixels differ from the snapshot.
func countWritten(c *Core, before []uint16) int {
	n := 0
	for i := range c.ram {
		if c.ram[i] != before[i] {
			n++
		}
	}
	return n
}

func TestDrawRect_ColoredHalfOpen(t *testing.T) {
	c := NewCore(64, 64)
	c.DrawOffsetX, c.DrawOffsetY = 2, 3
	DrawRect[Colored](c, Rect{X: 4, Y: 5, W: 10, H: 6, Color: ColorUnity})

	white := uint16(MakeColor16(31, 31, 31))
	for y := uint16(0); y < 64; y++ {
		for x := uint16(0); x < 64; x++ {
			in := x >= 6 && x < 16 && y >= 8 && y < 14
			if got := c.VramReadU16(x, y) == white; got != in {
				t.Fatalf("Pixel (%d, %d) drawn=%v, want %v", x, y, got, in)
			}
		}
	}
}

func TestDrawRect_ZeroSize(t *testing.T) {
	c := NewCore(32, 32)
	before := snapshotVram(c)
	DrawRect[Colored](c, Rect{X: 4, Y: 4, W: 0, H: 8, Color: ColorUnity})
	DrawRect[Colored](c, Rect{X: 4, Y: 4, W: 8, H: 0, Color: ColorUnity})
	if n := countWritten(c, before); n != 0 {
		t.Errorf("Zero sized rects wrote %d pixels", n)
	}
}

// Scenario C
func TestDrawRect_OutsideDrawArea(t *testing.T) {
	c := NewCore(256, 256)
	c.DrawAreaLx, c.DrawAreaRx = 100, 150
	c.DrawAreaTy, c.DrawAreaBy = 100, 150
	c.ClearRect(MakeColor16(1, 2, 3), 0, 0, 256, 256)
	before := snapshotVram(c)

	for _, r := range []Rect{
		{X: 0, Y: 0, W: 100, H: 100},
		{X: 151, Y: 100, W: 50, H: 50},
		{X: 100, Y: 151, W: 50, H: 50},
		{X: 0, Y: 120, W: 100, H: 10},
	} {
		r.Color = ColorUnity
		DrawRect[Colored](c, r)
		DrawRect[ColoredBlended](c, r)
		DrawRect[Textured](c, r)
		DrawRect[TexturedBlended](c, r)
	}

	if n := countWritten(c, before); n != 0 {
		t.Errorf("Draws outside the draw area wrote %d pixels", n)
	}
}

func TestDrawRect_ClipsToDrawArea(t *testing.T) {
	c := NewCore(64, 64)
	c.DrawAreaLx, c.DrawAreaRx = 10, 19
	c.DrawAreaTy, c.DrawAreaBy = 10, 19
	before := snapshotVram(c)

	DrawRect[Colored](c, Rect{X: 0, Y: 0, W: 64, H: 64, Color: ColorUnity})

	if n := countWritten(c, before); n != 100 {
		t.Errorf("Clipped rect wrote %d pixels, want 100", n)
	}
	for y := uint16(0); y < 64; y++ {
		for x := uint16(0); x < 64; x++ {
			if c.VramReadU16(x, y) != 0 && !c.IsPixelInDrawArea(x, y) {
				t.Fatalf("Pixel (%d, %d) written outside the draw area", x, y)
			}
		}
	}
}

func TestDrawRect_TexturedTexcoords(t *testing.T) {
	c := NewCore(256, 256)
	c.TexFmt = TexFmt16Bpp
	c.TexPageX, c.TexPageY = 128, 0
	c.TexPageXMask, c.TexPageYMask = 127, 127
	for v := uint16(0); v < 16; v++ {
		for u := uint16(0); u < 16; u++ {
			c.VramWriteU16(128+u, v, uint16(MakeColor16(u, v, 1)))
		}
	}
	c.DrawAreaRx = 127

	// Starts left of the draw area so the texcoords skip the clipped columns
	DrawRect[Textured](c, Rect{X: -2, Y: 0, W: 8, H: 4, U: 3, V: 5, Color: ColorUnity})

	for j := 0; j < 4; j++ {
		for i := 2; i < 8; i++ {
			want := MakeColor16(uint16(3+i), uint16(5+j), 1)
			if got := Color16(c.VramReadU16(uint16(i-2), uint16(j))); got != want {
				t.Errorf("Pixel (%d, %d) = %v, want %v", i-2, j, got, want)
			}
		}
	}
}

func TestDrawRect_Masking(t *testing.T) {
	c := NewCore(256, 256)
	c.TexFmt = TexFmt4Bpp
	c.TexPageX, c.TexPageY = 128, 0
	c.ClutX, c.ClutY = 0, 255
	c.VramWriteU16(0, 255, uint16(MakeColor16(31, 0, 0))) // Index 0
	c.VramWriteU16(1, 255, uint16(MakeColor16(0, 31, 0))) // Index 1
	c.UpdateClutCache()
	c.VramWriteU16(128, 0, 0x1010) // Texels 0, 1, 0, 1
	c.DrawAreaRx = 127

	bg := MakeColor16(0, 0, 9)
	c.ClearRect(bg, 0, 0, 4, 1)
	DrawRect[Textured](c, Rect{W: 4, H: 1, Color: ColorUnity})

	want := []Color16{bg, MakeColor16(0, 31, 0), bg, MakeColor16(0, 31, 0)}
	for x, w := range want {
		if got := Color16(c.VramReadU16(uint16(x), 0)); got != w {
			t.Errorf("Masked pixel %d = %v, want %v", x, got, w)
		}
	}

	c.DisableMasking = true
	DrawRect[Textured](c, Rect{W: 4, H: 1, Color: ColorUnity})
	if got := Color16(c.VramReadU16(0, 0)); got != MakeColor16(31, 0, 0) {
		t.Errorf("Unmasked index 0 = %v, want the CLUT colour", got)
	}
}

func TestDrawRect_16BppZeroIsNotMasked(t *testing.T) {
	c := NewCore(64, 64)
	c.TexFmt = TexFmt16Bpp
	c.TexPageX = 32
	c.TexPageXMask = 31
	c.DrawAreaRx = 31
	c.ClearRect(0x7FFF, 0, 0, 4, 4)

	DrawRect[Textured](c, Rect{W: 4, H: 4, Color: ColorUnity})
	if got := c.VramReadU16(1, 1); got != 0 {
		t.Errorf("16bpp black texel was discarded: %#x", got)
	}
}

// Scenario D
func TestDrawRect_TexturedBlendedAlpha50(t *testing.T) {
	c := NewCore(256, 256)
	c.TexFmt = TexFmt16Bpp
	c.TexPageX = 128
	c.TexPageXMask = 127
	c.DrawAreaRx = 127
	c.BlendMode = BlendAlpha50

	texel := MakeColor16(30, 9, 20)
	c.ClearRect(texel, 128, 0, 16, 16)
	bg := MakeColor16(3, 20, 31)
	c.ClearRect(bg, 0, 0, 16, 16)

	shade := NewColor24F(64, 128, 255)
	DrawRect[TexturedBlended](c, Rect{W: 16, H: 16, Color: shade})

	f := ColorMul(texel, shade)
	want := MakeColor16((bg.R()+f.R())/2, (bg.G()+f.G())/2, (bg.B()+f.B())/2)
	for y := uint16(0); y < 16; y++ {
		for x := uint16(0); x < 16; x++ {
			if got := Color16(c.VramReadU16(x, y)); got != want {
				t.Fatalf("Pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestDrawRect_ColoredBlendedUsesBlendMode(t *testing.T) {
	c := NewCore(32, 32)
	c.BlendMode = BlendAdd
	c.ClearRect(MakeColor16(10, 20, 30), 0, 0, 32, 32)

	DrawRect[ColoredBlended](c, Rect{W: 1, H: 1, Color: NewColor24F(40, 40, 40)})
	if got := Color16(c.VramReadU16(0, 0)); got != MakeColor16(20, 30, 31) {
		t.Errorf("Additive rect = %v", got)
	}
}

func BenchmarkDrawRect_Textured8Bpp(b *testing.B) {
	c := NewCore(1024, 512)
	c.TexFmt = TexFmt8Bpp
	c.TexPageX = 512
	c.UpdateClutCache()
	r := Rect{W: 256, H: 240, Color: ColorUnity}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		DrawRect[Textured](c, r)
	}
}

func BenchmarkDrawRect_Colored(b *testing.B) {
	c := NewCore(1024, 512)
	r := Rect{W: 256, H: 240, Color: ColorUnity}
	for i := 0; i < b.N; i++ {
		DrawRect[Colored](c, r)
	}
}
