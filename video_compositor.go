// video_compositor.go - Frame loop presenting the GPU display area

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
video_compositor.go - Frame loop presenting the GPU display area

The compositor owns the frame loop of the harness:
- Runs at 60Hz (or one frame per Step call when driven synchronously)
- Each frame delivers queued key presses, then runs the scene's frame(n)
- Converts the GPU display area to RGBA and scales it to the output size
- Publishes frame statistics for the status bar

Signal Flow:

	            ┌─────────────┐     ┌─────────────┐     ┌─────────┐
	keys ─────→ │  Lua scene  │ ──→ │  GPU core   │ ──→ │ display │
	            └─────────────┘     └─────────────┘     │  area   │
	                                                    └────┬────┘
	                   ┌─────────────┐     ┌─────────┐       │
	                   │   Output    │ ←── │  scale  │ ←─────┘
	                   └─────────────┘     └─────────┘

The core and the scene are only touched by the goroutine running frames.
*/

package main

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/intuitionamiga/simplegpu/gpu"
)

// Compositor constants
const (
	COMPOSITOR_REFRESH_RATE     = 60
	COMPOSITOR_REFRESH_INTERVAL = time.Second / COMPOSITOR_REFRESH_RATE
	BYTES_PER_PIXEL             = 4
	KEY_QUEUE_SIZE              = 64
)

// FrameSource draws one frame into the core per call
type FrameSource interface {
	Frame(n uint64) (drawCounts, error)
	Key(b byte) error
}

// VideoCompositor runs a FrameSource against a core and presents the result
type VideoCompositor struct {
	mutex       sync.RWMutex
	core        *gpu.Core
	source      FrameSource
	output      VideoOutput
	display     []byte // Display area as RGBA
	finalFrame  []byte // Scaled to the output size
	frameWidth  int
	frameHeight int
	frameNum    uint64
	keys        chan byte

	running atomic.Bool
	done    chan struct{}
	stopped chan struct{}
	stop    sync.Once
	err     error
}

// NewVideoCompositor creates a compositor presenting to output, which may be
// nil when frames are only stepped for snapshots.
func NewVideoCompositor(core *gpu.Core, source FrameSource, output VideoOutput) *VideoCompositor {
	return &VideoCompositor{
		core:        core,
		source:      source,
		output:      output,
		frameWidth:  int(core.DisplayAreaW),
		frameHeight: int(core.DisplayAreaH),
		keys:        make(chan byte, KEY_QUEUE_SIZE),
		done:        make(chan struct{}),
		stopped:     make(chan struct{}),
	}
}

// SetDimensions sets the output frame dimensions
func (c *VideoCompositor) SetDimensions(width, height int) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.frameWidth = width
	c.frameHeight = height
	c.finalFrame = make([]byte, width*height*BYTES_PER_PIXEL)
}

// QueueKey hands a typed character to the scene before its next frame.
// Keys are dropped when the queue is full.
func (c *VideoCompositor) QueueKey(b byte) {
	select {
	case c.keys <- b:
	default:
	}
}

// FrameCount returns the number of frames run so far
func (c *VideoCompositor) FrameCount() uint64 {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.frameNum
}

// Start begins the refresh loop. It ends on Stop or on the first scene error.
func (c *VideoCompositor) Start() error {
	if !c.running.CompareAndSwap(false, true) {
		return nil
	}
	go c.refreshLoop()
	return nil
}

// Stop halts the refresh loop and waits for the current frame to finish
func (c *VideoCompositor) Stop() {
	c.stop.Do(func() { close(c.done) })
	if c.running.Load() {
		<-c.stopped
	}
}

// Stopped is closed once the refresh loop has exited
func (c *VideoCompositor) Stopped() <-chan struct{} {
	return c.stopped
}

// Err returns the scene error that ended the refresh loop, if any
func (c *VideoCompositor) Err() error {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.err
}

func (c *VideoCompositor) refreshLoop() {
	defer close(c.stopped)

	ticker := time.NewTicker(COMPOSITOR_REFRESH_INTERVAL)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			if err := c.Step(); err != nil {
				c.mutex.Lock()
				c.err = err
				c.mutex.Unlock()
				runtimeStatus.setSceneError(err)
				return
			}
		}
	}
}

// Step runs one frame synchronously and presents it
func (c *VideoCompositor) Step() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for pending := true; pending; {
		select {
		case b := <-c.keys:
			if err := c.source.Key(b); err != nil {
				return err
			}
		default:
			pending = false
		}
	}

	draws, err := c.source.Frame(c.frameNum)
	if err != nil {
		return err
	}
	runtimeStatus.setFrame(c.frameNum, c.core, draws)
	c.frameNum++

	if c.output == nil || !c.output.IsStarted() {
		return nil
	}
	c.composite()
	if err := c.output.UpdateFrame(c.finalFrame); err != nil {
		return fmt.Errorf("compositor: updating frame: %w", err)
	}
	return nil
}

// composite converts the display area and scales it into the final frame
func (c *VideoCompositor) composite() {
	srcW, srcH := int(c.core.DisplayAreaW), int(c.core.DisplayAreaH)
	if need := srcW * srcH * BYTES_PER_PIXEL; len(c.display) != need {
		c.display = make([]byte, need)
	}
	if need := c.frameWidth * c.frameHeight * BYTES_PER_PIXEL; len(c.finalFrame) != need {
		c.finalFrame = make([]byte, need)
	}
	c.core.DisplayRGBA(c.display)

	if srcW == c.frameWidth && srcH == c.frameHeight {
		copy(c.finalFrame, c.display)
		return
	}
	c.scaleFrame(c.display, srcW, srcH)
}

// scaleFrame nearest-neighbour scales a source frame into the final frame
func (c *VideoCompositor) scaleFrame(srcFrame []byte, srcW, srcH int) {
	dstW := c.frameWidth
	dstH := c.frameHeight
	if srcW == 0 || srcH == 0 {
		clear(c.finalFrame)
		return
	}

	for dstY := 0; dstY < dstH; dstY++ {
		srcY := dstY * srcH / dstH
		for dstX := 0; dstX < dstW; dstX++ {
			srcX := dstX * srcW / dstW

			srcIdx := (srcY*srcW + srcX) * BYTES_PER_PIXEL
			dstIdx := (dstY*dstW + dstX) * BYTES_PER_PIXEL
			copy(c.finalFrame[dstIdx:dstIdx+BYTES_PER_PIXEL], srcFrame[srcIdx:srcIdx+BYTES_PER_PIXEL])
		}
	}
}
