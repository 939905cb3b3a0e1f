//go:build headless

// video_backend_headless_test.go - Tests for the headless video backend

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

import "testing"

func TestHeadlessOutput_SetDisplayConfig_StoresFullscreen(t *testing.T) {
	out, _ := NewEbitenOutput()
	cfg := DisplayConfig{
		Width:      640,
		Height:     480,
		Scale:      2,
		Fullscreen: true,
	}
	if err := out.SetDisplayConfig(cfg); err != nil {
		t.Fatalf("SetDisplayConfig returned error: %v", err)
	}
	got := out.GetDisplayConfig()
	if got.Scale != 2 || !got.Fullscreen {
		t.Fatalf("expected Scale=2, Fullscreen=true; got Scale=%d, Fullscreen=%v", got.Scale, got.Fullscreen)
	}
}

func TestHeadlessOutput_ClampsScale(t *testing.T) {
	out, _ := NewEbitenOutput()
	if err := out.SetDisplayConfig(DisplayConfig{Width: 4, Height: 4, Scale: 99}); err != nil {
		t.Fatalf("SetDisplayConfig returned error: %v", err)
	}
	if got := out.GetDisplayConfig().Scale; got != MAX_SCALE {
		t.Fatalf("expected scale clamped to %d, got %d", MAX_SCALE, got)
	}
}

func TestHeadlessOutput_SnapshotKeepsLastFrame(t *testing.T) {
	out, _ := NewEbitenOutput()
	out.SetDisplayConfig(DisplayConfig{Width: 2, Height: 1, Scale: 1})
	out.Start()

	out.UpdateFrame([]byte{1, 2, 3, 255, 4, 5, 6, 255})
	out.UpdateFrame([]byte{9, 9, 9, 255, 8, 8, 8, 255})

	if got := out.GetFrameCount(); got != 2 {
		t.Fatalf("expected 2 frames, got %d", got)
	}
	snap, err := out.(Snapshotter).GetSnapshot()
	if err != nil {
		t.Fatalf("GetSnapshot: %v", err)
	}
	if snap.Width != 2 || snap.Height != 1 || snap.Buffer[0] != 9 || snap.Buffer[4] != 8 {
		t.Fatalf("unexpected snapshot %dx%d %v", snap.Width, snap.Height, snap.Buffer)
	}
}

func TestHeadlessOutput_CloseSignalsDone(t *testing.T) {
	out, _ := NewEbitenOutput()
	out.Start()
	if err := out.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	out.Close()
	select {
	case <-out.(Closable).Done():
	default:
		t.Fatal("expected Done to be closed")
	}
	if out.IsStarted() {
		t.Fatal("expected output to be stopped")
	}
}
