// display_test.go - Tests for the display area readout

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
	"image/draw"
	"testing"
)

func TestDisplay_Expand5(t *testing.T) {
	for _, tt := range [][2]uint16{{0, 0}, {31, 255}, {16, 132}, {1, 8}} {
		if got := expand5(tt[0]); uint16(got) != tt[1] {
			t.Errorf("expand5(%d) = %d, want %d", tt[0], got, tt[1])
		}
	}
}

func TestDisplay_RGBA(t *testing.T) {
	c := NewCore(64, 64)
	c.DisplayAreaX, c.DisplayAreaY = 10, 20
	c.DisplayAreaW, c.DisplayAreaH = 4, 2
	c.VramWriteU16(10, 20, uint16(MakeColor16(31, 0, 0)))
	c.VramWriteU16(13, 21, uint16(MakeColor16T(0, 16, 31, 1)))

	buf := make([]byte, 4*2*4)
	c.DisplayRGBA(buf)

	if got := buf[0:4]; got[0] != 255 || got[1] != 0 || got[2] != 0 || got[3] != 255 {
		t.Errorf("Top left = %v", got)
	}
	last := buf[len(buf)-4:]
	if last[0] != 0 || last[1] != 132 || last[2] != 255 || last[3] != 255 {
		t.Errorf("Bottom right = %v", last)
	}
}

func TestDisplay_ImageView(t *testing.T) {
	c := NewCore(64, 64)
	c.DisplayAreaX, c.DisplayAreaY = 60, 0
	c.DisplayAreaW, c.DisplayAreaH = 8, 8
	c.VramWriteU16(1, 2, uint16(MakeColor16(31, 31, 0))) // Wrapped from x=65

	img := c.DisplayImage()
	if img.Bounds() != image.Rect(0, 0, 8, 8) {
		t.Fatalf("Bounds = %v", img.Bounds())
	}
	r, g, b, a := img.At(5, 2).RGBA()
	if r != 0xFFFF || g != 0xFFFF || b != 0 || a != 0xFFFF {
		t.Errorf("At(5, 2) = %#x %#x %#x %#x", r, g, b, a)
	}
	if img.At(-1, 0) != Color16(0) {
		t.Error("Out of bounds At should be zero")
	}
}

func TestDisplay_ImageSetUploadsTexture(t *testing.T) {
	c := NewCore(64, 64)
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.RGBA{R: 255, A: 255})
	src.Set(1, 1, color.RGBA{R: 8, G: 16, B: 255, A: 255})

	dst := c.VramImage(32, 8, 2, 2)
	draw.Draw(dst, dst.Bounds(), src, image.Point{}, draw.Src)

	if got := Color16(c.VramReadU16(32, 8)); got != MakeColor16(31, 0, 0) {
		t.Errorf("Uploaded (0, 0) = %v", got)
	}
	if got := Color16(c.VramReadU16(33, 9)); got != MakeColor16(1, 2, 31) {
		t.Errorf("Uploaded (1, 1) = %v", got)
	}
}

func TestDisplay_Color16Model(t *testing.T) {
	got := Color16Model.Convert(color.NRGBA{R: 0x80, G: 0xFF, B: 0x07, A: 0xFF})
	if got != MakeColor16(16, 31, 0) {
		t.Errorf("Convert = %v", got)
	}
	if same := Color16Model.Convert(MakeColor16T(1, 2, 3, 1)); same != MakeColor16T(1, 2, 3, 1) {
		t.Errorf("Color16 not passed through: %v", same)
	}
}
