// main.go - Main entry point for the Simple GPU scene player

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
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/intuitionamiga/simplegpu/gpu"
	"golang.org/x/term"
)

const bannerArt = `  ██████  ██▓ ███▄ ▄███▓ ██▓███   ██▓    ▓█████      ▄████  ██▓███   █    ██
▒██    ▒ ▓██▒▓██▒▀█▀ ██▒▓██░  ██▒▓██▒    ▓█   ▀     ██▒ ▀█▒▓██░  ██▒ ██  ▓██▒
░ ▓██▄   ▒██▒▓██    ▓██░▓██░ ██▓▒▒██░    ▒███      ▒██░▄▄▄░▓██░ ██▓▒▓██  ▒██░
  ▒   ██▒░██░▒██    ▒██ ▒██▄█▓▒ ▒▒██░    ▒▓█  ▄    ░▓█  ██▓▒██▄█▓▒ ▒▓▓█  ░██░
▒██████▒▒░██░▒██▒   ░██▒▒██▒ ░  ░░██████▒░▒████▒   ░▒▓███▀▒▒██▒ ░  ░▒▒█████▓
▒ ▒▓▒ ▒ ░░▓  ░ ▒░   ░  ░▒▓▒░ ░  ░░ ▒░▓  ░░░ ▒░ ░    ░▒   ▒ ▒▓▒░ ░  ░░▒▓▒ ▒ ▒
░ ░▒  ░ ░ ▒ ░░  ░      ░░▒ ░     ░ ░ ▒  ░ ░ ░  ░     ░   ░ ░▒ ░     ░░▒░ ░ ░
░  ░  ░   ▒ ░░      ░   ░░         ░ ░      ░      ░ ░   ░ ░░        ░░░ ░ ░
      ░   ░         ░                ░  ░   ░  ░         ░             ░`

func boilerPlate(out io.Writer, color bool) {
	fmt.Fprintln(out)
	for i, line := range strings.Split(bannerArt, "\n") {
		if color {
			fmt.Fprintf(out, "\033[38;2;255;%d;147m%s\033[0m\n", 20+i*30, line)
		} else {
			fmt.Fprintln(out, line)
		}
	}
	fmt.Fprintln(out, "\nA PlayStation style software GPU with Lua scenes.")
	fmt.Fprintln(out, "(c) 2024 - 2026 Zayn Otley")
	fmt.Fprintln(out, "License: GPLv3 or later")
}

const usageLine = "Usage: ./simplegpu [-vram 1024x512] [-scale 2] [-frames N] [-snapshot out.png] [-fullscreen] [-v] [scene.lua]"

type runConfig struct {
	script     string // Empty runs the built-in demo
	vramW      int
	vramH      int
	scale      int
	frames     int // Run this many frames without a window when > 0
	snapshot   string
	fullscreen bool
	verbose    bool
}

// parseVRAMSize parses a WxH VRAM size such as 1024x512
func parseVRAMSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid VRAM size %q: want WxH", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid VRAM width %q: %w", ws, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid VRAM height %q: %w", hs, err)
	}
	if w < 1 || h < 1 || w > gpu.PS1VramW*2 || h > gpu.PS1VramH*2 {
		return 0, 0, fmt.Errorf("VRAM size %dx%d out of range", w, h)
	}
	return w, h, nil
}

func parseArgs(args []string) (runConfig, error) {
	var (
		cfg  runConfig
		vram string
	)

	flagSet := flag.NewFlagSet("simplegpu", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&vram, "vram", fmt.Sprintf("%dx%d", gpu.PS1VramW, gpu.PS1VramH), "VRAM size in pixels, rounded up to powers of two")
	flagSet.IntVar(&cfg.scale, "scale", 2, "Window scale factor (1-8)")
	flagSet.IntVar(&cfg.frames, "frames", 0, "Run N frames without opening a window")
	flagSet.StringVar(&cfg.snapshot, "snapshot", "", "Write the display area to a .png, .bmp or .tiff file on exit")
	flagSet.BoolVar(&cfg.fullscreen, "fullscreen", false, "Start fullscreen")
	flagSet.BoolVar(&cfg.verbose, "v", false, "Log GPU state changes to stderr")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println(usageLine)
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		return cfg, err
	}
	if flagSet.NArg() > 1 {
		return cfg, fmt.Errorf("expected at most one scene file, got %d", flagSet.NArg())
	}
	cfg.script = flagSet.Arg(0)

	var err error
	if cfg.vramW, cfg.vramH, err = parseVRAMSize(vram); err != nil {
		return cfg, err
	}
	if cfg.scale < MIN_SCALE || cfg.scale > MAX_SCALE {
		return cfg, fmt.Errorf("scale %d out of range %d-%d", cfg.scale, MIN_SCALE, MAX_SCALE)
	}
	if cfg.frames < 0 {
		return cfg, fmt.Errorf("frames must not be negative, got %d", cfg.frames)
	}
	return cfg, nil
}

func loadScene(core *gpu.Core, script string) (*LuaScene, error) {
	if script == "" {
		return NewLuaScene(core, demoSceneName, demoScene)
	}
	return LoadLuaScene(core, script)
}

func run(ctx context.Context, cfg runConfig) error {
	if cfg.verbose {
		gpu.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer gpu.SetLogger(nil)
	}

	core := gpu.NewCore(cfg.vramW, cfg.vramH)
	defer core.Destroy()

	scene, err := loadScene(core, cfg.script)
	if err != nil {
		return err
	}
	defer scene.Close()

	runtimeStatus.setScene(scene.Name())
	if err := scene.Setup(); err != nil {
		return err
	}

	if cfg.frames > 0 {
		compositor := NewVideoCompositor(core, scene, nil)
		for i := 0; i < cfg.frames; i++ {
			if err := compositor.Step(); err != nil {
				return err
			}
		}
	} else if err := runWindowed(ctx, cfg, core, scene); err != nil {
		return err
	}

	if cfg.snapshot != "" {
		if err := writeSnapshot(cfg.snapshot, core.DisplayImage(), cfg.scale); err != nil {
			return err
		}
		fmt.Printf("Snapshot written to %s\n", cfg.snapshot)
	}
	return nil
}

// runWindowed presents the scene until the window closes, the context is
// cancelled or the scene fails
func runWindowed(ctx context.Context, cfg runConfig, core *gpu.Core, scene *LuaScene) error {
	output, err := NewVideoOutput(VIDEO_BACKEND_EBITEN)
	if err != nil {
		return err
	}
	defer output.Close()

	// The output is sized to the scaled display so the status bar text stays
	// legible; the compositor does the scaling.
	width := int(core.DisplayAreaW) * cfg.scale
	height := int(core.DisplayAreaH) * cfg.scale
	if err := output.SetDisplayConfig(DisplayConfig{
		Width:       width,
		Height:      height,
		Scale:       1,
		RefreshRate: COMPOSITOR_REFRESH_RATE,
		PixelFormat: PixelFormatRGBA,
		VSync:       true,
		Fullscreen:  cfg.fullscreen,
	}); err != nil {
		return &VideoError{Operation: "configure", Details: "display config", Err: err}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	compositor := NewVideoCompositor(core, scene, output)
	compositor.SetDimensions(width, height)
	if keys, ok := output.(KeyInput); ok {
		keys.SetKeyHandler(compositor.QueueKey)
	} else if term.IsTerminal(int(os.Stdin.Fd())) {
		// No window to type into: read keys from the terminal instead
		host := NewTerminalHost(compositor.QueueKey, cancel)
		host.Start()
		defer host.Stop()
	}

	if err := output.Start(); err != nil {
		return &VideoError{Operation: "start", Details: "video output", Err: err}
	}
	if err := compositor.Start(); err != nil {
		return err
	}

	var closed <-chan struct{}
	if c, ok := output.(Closable); ok {
		closed = c.Done()
	}
	select {
	case <-ctx.Done():
	case <-closed:
	case <-compositor.Stopped():
	}
	compositor.Stop()
	return compositor.Err()
}

func main() {
	boilerPlate(os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))

	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Printf("Error: %v\n", err)
		fmt.Println(usageLine)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
