// draw_doom_test.go - Tests for the floor row and wall column rasterizers

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

// newTexturedCore makes a core whose right half holds a 16bpp texture with
// texel (u, v) = (u&31, v&31, (u>>5)&31).
func newTexturedCore(t *testing.T) *Core {
	t.Helper()
	c := NewCore(256, 256)
	c.TexFmt = TexFmt16Bpp
	c.TexPageX = 128
	c.TexPageXMask = 127
	c.DrawAreaRx = 127
	for v := uint16(0); v < 256; v++ {
		for u := uint16(0); u < 128; u++ {
			c.VramWriteU16(128+u, v, uint16(MakeColor16(u&31, v&31, (u>>5)&31)))
		}
	}
	return c
}

func texelColor(u, v uint16) Color16 {
	return MakeColor16(u&31, v&31, (u>>5)&31)
}

func TestDrawFloorRow_HalfOpenSpan(t *testing.T) {
	for _, swap := range []bool{false, true} {
		c := NewCore(64, 64)
		row := FloorRow{Y: 7, X1: 5, X2: 20, Color: ColorUnity}
		if swap {
			row.X1, row.X2 = row.X2, row.X1
		}
		DrawFloorRow[Colored](c, row)

		set := drawnPixels(c)
		if len(set) != 15 {
			t.Errorf("swap=%v: drew %d pixels, want 15", swap, len(set))
		}
		if !set[[2]int{5, 7}] || set[[2]int{20, 7}] {
			t.Errorf("swap=%v: span is not [5, 20)", swap)
		}
	}
}

func TestDrawFloorRow_Empty(t *testing.T) {
	c := NewCore(32, 32)
	before := snapshotVram(c)
	DrawFloorRow[Colored](c, FloorRow{Y: 3, X1: 9, X2: 9, Color: ColorUnity})
	DrawFloorRow[Colored](c, FloorRow{Y: 40, X1: 0, X2: 9, Color: ColorUnity})
	if n := countWritten(c, before); n != 0 {
		t.Errorf("Empty rows wrote %d pixels", n)
	}
}

func TestDrawFloorRow_TexcoordInterpolation(t *testing.T) {
	c := newTexturedCore(t)
	DrawFloorRow[Textured](c, FloorRow{Y: 4, X1: 10, U1: 0, V1: 8, X2: 42, U2: 64, V2: 40, Color: ColorUnity})

	// u advances 2 and v 1 per pixel
	for i := uint16(0); i < 32; i++ {
		want := texelColor(2*i, 8+i)
		if got := Color16(c.VramReadU16(10+i, 4)); got != want {
			t.Errorf("Pixel %d = %v, want %v", i, got, want)
		}
	}
}

func TestDrawFloorRow_ClippedStartKeepsTexcoords(t *testing.T) {
	c := newTexturedCore(t)
	c.DrawAreaLx = 20
	DrawFloorRow[Textured](c, FloorRow{Y: 0, X1: 10, U1: 0, V1: 0, X2: 30, U2: 20, V2: 0, Color: ColorUnity})

	if got := c.VramReadU16(19, 0); got != 0 {
		t.Errorf("Pixel left of the draw area written: %#x", got)
	}
	if got := Color16(c.VramReadU16(25, 0)); got != texelColor(15, 0) {
		t.Errorf("Pixel 25 = %v, want texel 15", got)
	}
}

func TestDrawFloorRow_NegativeTexcoordsWrap(t *testing.T) {
	c := newTexturedCore(t)
	c.TexPageXMask = 31
	DrawFloorRow[Textured](c, FloorRow{Y: 0, X1: 0, U1: -4, X2: 4, U2: 0, Color: ColorUnity})

	for i := uint16(0); i < 4; i++ {
		if got := Color16(c.VramReadU16(i, 0)); got != texelColor(28+i, 0) {
			t.Errorf("Pixel %d = %v, want texel %d", i, got, 28+i)
		}
	}
}

func TestDrawWallCol_SpanAndTexcoords(t *testing.T) {
	c := newTexturedCore(t)
	DrawWallCol[Textured](c, WallCol{X: 3, U: 17, Y1: 10, V1: 0, Y2: 26, V2: 32, Color: ColorUnity})

	for y := uint16(0); y < 40; y++ {
		got := c.VramReadU16(3, y)
		if y < 10 || y >= 26 {
			if got != 0 {
				t.Errorf("Row %d outside [10, 26) written", y)
			}
			continue
		}
		if want := texelColor(17, 2*(y-10)); Color16(got) != want {
			t.Errorf("Row %d = %v, want %v", y, Color16(got), want)
		}
	}
}

func TestDrawWallCol_Clipping(t *testing.T) {
	c := newTexturedCore(t)
	c.DrawAreaTy, c.DrawAreaBy = 20, 29
	before := snapshotVram(c)

	DrawWallCol[Textured](c, WallCol{X: 200, Y1: 0, Y2: 100, Color: ColorUnity})
	if n := countWritten(c, before); n != 0 {
		t.Fatalf("Column right of the draw area wrote %d pixels", n)
	}

	DrawWallCol[Textured](c, WallCol{X: 5, U: 1, Y1: 0, V1: 0, Y2: 100, V2: 100, Color: ColorUnity})
	if n := countWritten(c, before); n != 10 {
		t.Errorf("Clipped column wrote %d pixels, want 10", n)
	}
	if got := Color16(c.VramReadU16(5, 20)); got != texelColor(1, 20) {
		t.Errorf("First visible row = %v, want texel v=20", got)
	}
}

func TestDrawWallCol_ColoredIgnoresTexcoords(t *testing.T) {
	c := NewCore(32, 32)
	DrawWallCol[Colored](c, WallCol{X: 1, U: 9, Y1: 0, V1: 3, Y2: 4, V2: 99, Color: NewColor24F(8, 16, 32)})
	for y := uint16(0); y < 4; y++ {
		if got := Color16(c.VramReadU16(1, y)); got != MakeColor16(2, 4, 8) {
			t.Errorf("Row %d = %v", y, got)
		}
	}
}

func TestDrawWallColGouraud_ColourSteps(t *testing.T) {
	c := NewCore(32, 32)
	DrawWallColGouraud[Colored](c, WallColGouraud{
		X: 2, Y1: 0, Y2: 8,
		Color1: NewColor24F(0, 128, 64),
		Color2: NewColor24F(128, 0, 64),
	})

	for y := uint16(0); y < 8; y++ {
		want := MakeColor16(4*y, 32-4*y, 16)
		if y == 0 {
			want = MakeColor16(0, 31, 16)
		}
		if got := Color16(c.VramReadU16(2, y)); got != want {
			t.Errorf("Row %d = %v, want %v", y, got, want)
		}
	}
	if got := c.VramReadU16(2, 8); got != 0 {
		t.Errorf("End row drawn: %#x", got)
	}
}

func TestDrawWallColGouraud_TexturedBlended(t *testing.T) {
	c := newTexturedCore(t)
	c.BlendMode = BlendAdd
	c.ClearRect(MakeColor16(1, 1, 1), 0, 0, 8, 8)

	DrawWallColGouraud[TexturedBlended](c, WallColGouraud{
		X: 0, U: 3, Y1: 0, V1: 0, Y2: 4, V2: 4,
		Color1: ColorUnity, Color2: ColorUnity,
	})
	for y := uint16(0); y < 4; y++ {
		tx := texelColor(3, y)
		want := MakeColor16(tx.R()+1, tx.G()+1, tx.B()+1)
		if got := Color16(c.VramReadU16(0, y)); got != want {
			t.Errorf("Row %d = %v, want %v", y, got, want)
		}
	}
}

func BenchmarkDrawWallCol_Textured(b *testing.B) {
	c := NewCore(1024, 512)
	c.TexFmt = TexFmt8Bpp
	c.TexPageX = 512
	c.UpdateClutCache()
	w := WallCol{X: 100, U: 7, Y1: 0, V1: 0, Y2: 240, V2: 128, Color: ColorUnity}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		DrawWallCol[Textured](c, w)
	}
}

func BenchmarkDrawFloorRow_Textured(b *testing.B) {
	c := NewCore(1024, 512)
	c.TexFmt = TexFmt8Bpp
	c.TexPageX = 512
	c.UpdateClutCache()
	r := FloorRow{Y: 100, X1: 0, U1: 0, V1: 0, X2: 320, U2: 64, V2: 200, Color: ColorUnity}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		DrawFloorRow[Textured](c, r)
	}
}
