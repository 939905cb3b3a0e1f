//go:build headless

// video_backend_headless.go - Headless video backend

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
	"sync/atomic"
	"time"
)

// HeadlessVideoOutput keeps the last presented frame in memory instead of
// opening a window
type HeadlessVideoOutput struct {
	mu          sync.RWMutex
	started     bool
	config      DisplayConfig
	frame       []byte
	frameCount  uint64
	refreshRate int
	done        chan struct{}
	closeOnce   sync.Once
}

func NewEbitenOutput() (VideoOutput, error) {
	return &HeadlessVideoOutput{
		refreshRate: COMPOSITOR_REFRESH_RATE,
		done:        make(chan struct{}),
	}, nil
}

func (h *HeadlessVideoOutput) Start() error {
	h.mu.Lock()
	h.started = true
	h.mu.Unlock()
	return nil
}

func (h *HeadlessVideoOutput) Stop() error {
	h.mu.Lock()
	h.started = false
	h.mu.Unlock()
	return nil
}

func (h *HeadlessVideoOutput) Close() error {
	h.Stop()
	h.closeOnce.Do(func() {
		if h.done != nil {
			close(h.done)
		}
	})
	return nil
}

// Done is closed by Close; there is no window for a user to close
func (h *HeadlessVideoOutput) Done() <-chan struct{} {
	return h.done
}

func (h *HeadlessVideoOutput) IsStarted() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.started
}

func (h *HeadlessVideoOutput) SetDisplayConfig(config DisplayConfig) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	config.Scale = ClampScale(config.Scale)
	h.config = config
	if config.RefreshRate > 0 {
		h.refreshRate = config.RefreshRate
	}
	h.frame = make([]byte, config.Width*config.Height*BYTES_PER_PIXEL)
	return nil
}

func (h *HeadlessVideoOutput) GetDisplayConfig() DisplayConfig {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.config
}

func (h *HeadlessVideoOutput) UpdateFrame(buffer []byte) error {
	h.mu.Lock()
	copy(h.frame, buffer)
	h.mu.Unlock()
	atomic.AddUint64(&h.frameCount, 1)
	return nil
}

func (h *HeadlessVideoOutput) WaitForVSync() error {
	return nil
}

func (h *HeadlessVideoOutput) GetFrameCount() uint64 {
	return atomic.LoadUint64(&h.frameCount)
}

func (h *HeadlessVideoOutput) GetRefreshRate() int {
	if h.refreshRate == 0 {
		return COMPOSITOR_REFRESH_RATE
	}
	return h.refreshRate
}

func (h *HeadlessVideoOutput) GetSnapshot() (FrameSnapshot, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	snapshot := FrameSnapshot{
		Buffer:    make([]byte, len(h.frame)),
		Width:     h.config.Width,
		Height:    h.config.Height,
		Format:    h.config.PixelFormat,
		Timestamp: time.Now(),
	}
	copy(snapshot.Buffer, h.frame)
	return snapshot, nil
}
