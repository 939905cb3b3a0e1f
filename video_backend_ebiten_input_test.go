//go:build !headless

// video_backend_ebiten_input_test.go - Tests for ebiten keyboard input and status bar

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

package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/intuitionamiga/simplegpu/gpu"
)

func TestClipboardPaste_Normalize(t *testing.T) {
	in := []byte("a\r\nb\rc\n")
	got := normalizePasteText(in)
	want := "a\nb\nc\n"
	if string(got) != want {
		t.Fatalf("expected %q, got %q", want, string(got))
	}
}

func TestClipboardPaste_Cap(t *testing.T) {
	in := make([]byte, 5000)
	got := capPasteText(in, maxPasteBytes)
	if len(got) != maxPasteBytes {
		t.Fatalf("expected capped length %d, got %d", maxPasteBytes, len(got))
	}
}

func TestKeyTranslation_Enter(t *testing.T) {
	seq, ok := translateSpecialKey(ebiten.KeyEnter)
	if !ok {
		t.Fatal("expected enter translation")
	}
	if string(seq) != "\n" {
		t.Fatalf("expected newline for enter, got %v", seq)
	}
}

func TestKeyTranslation_ArrowLeft(t *testing.T) {
	seq, ok := translateSpecialKey(ebiten.KeyArrowLeft)
	if !ok {
		t.Fatal("expected arrow-left translation")
	}
	if len(seq) != 3 || seq[0] != 0x1B || seq[1] != '[' || seq[2] != 'D' {
		t.Fatalf("expected ESC[D, got %v", seq)
	}
}

func TestKeyTranslation_Printable(t *testing.T) {
	b, ok := runeToInputByte('a')
	if !ok {
		t.Fatal("expected printable translation")
	}
	if b != 0x61 {
		t.Fatalf("expected 0x61, got 0x%02X", b)
	}
	if _, ok := runeToInputByte('€'); ok {
		t.Fatal("expected runes above 0xFF to be dropped")
	}
}

func TestEbitenOutput_KeyHandler(t *testing.T) {
	eo := &EbitenOutput{}
	var got []byte
	eo.SetKeyHandler(func(b byte) { got = append(got, b) })
	eo.emitSeq([]byte("ab"))
	if string(got) != "ab" {
		t.Fatalf("expected %q, got %q", "ab", got)
	}
}

func TestStatusTokens(t *testing.T) {
	s := runtimeStatusSnapshot{
		vramW:   1024,
		vramH:   512,
		display: [4]uint16{0, 0, 320, 240},
		texFmt:  gpu.TexFmt8Bpp,
		blend:   gpu.BlendAdd,
		masking: true,
	}
	s.draws[primTri] = 3
	s.draws[primRect] = 1

	gpuTokens := gpuStatusTokens(s)
	if gpuTokens[0].name != "VRAM 1024x512" {
		t.Fatalf("unexpected VRAM token %q", gpuTokens[0].name)
	}
	if last := gpuTokens[len(gpuTokens)-1]; last.name != "MASK" || !last.enabled {
		t.Fatalf("expected MASK enabled, got %+v", last)
	}

	drawTokens := drawStatusTokens(s)
	if len(drawTokens) != primKindCount+1 {
		t.Fatalf("expected %d tokens, got %d", primKindCount+1, len(drawTokens))
	}
	if tok := drawTokens[primTri]; tok.name != "TRI 3" || !tok.enabled {
		t.Fatalf("unexpected TRI token %+v", tok)
	}
	if tok := drawTokens[primLine]; tok.enabled {
		t.Fatalf("expected LINE token disabled, got %+v", tok)
	}
	if tok := drawTokens[len(drawTokens)-1]; tok.name != "= 4" {
		t.Fatalf("unexpected total token %+v", tok)
	}
}
