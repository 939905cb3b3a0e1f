// runtime_status.go - Frame statistics shared with the status bar

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
	"sync"

	"github.com/intuitionamiga/simplegpu/gpu"
)

// runtimeStatusSnapshot is what the status bar shows about the last frame
type runtimeStatusSnapshot struct {
	frame      uint64
	vramW      int
	vramH      int
	display    [4]uint16 // x, y, w, h
	texFmt     gpu.TexFmt
	blend      gpu.BlendMode
	masking    bool
	draws      drawCounts
	sceneName  string
	sceneError string
}

type runtimeStatusStore struct {
	mu sync.RWMutex
	runtimeStatusSnapshot
}

var runtimeStatus runtimeStatusStore

// setFrame records the core state after a frame has been drawn
func (s *runtimeStatusStore) setFrame(n uint64, core *gpu.Core, draws drawCounts) {
	s.mu.Lock()
	s.frame = n
	s.vramW = core.Width()
	s.vramH = core.Height()
	s.display = [4]uint16{core.DisplayAreaX, core.DisplayAreaY, core.DisplayAreaW, core.DisplayAreaH}
	s.texFmt = core.TexFmt
	s.blend = core.BlendMode
	s.masking = !core.DisableMasking
	s.draws = draws
	s.mu.Unlock()
}

func (s *runtimeStatusStore) setScene(name string) {
	s.mu.Lock()
	s.sceneName = name
	s.sceneError = ""
	s.mu.Unlock()
}

func (s *runtimeStatusStore) setSceneError(err error) {
	s.mu.Lock()
	s.sceneError = err.Error()
	s.mu.Unlock()
}

func (s *runtimeStatusStore) snapshot() runtimeStatusSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.runtimeStatusSnapshot
}
