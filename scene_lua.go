// scene_lua.go - Lua scene scripting

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
scene_lua.go - Lua scene scripts driving the GPU core

A scene is a Lua script playing the part of a game renderer: each frame it
sets core registers and issues typed draw calls through the global 'gpu'
table. Scripts define:

	setup()    optional, called once before the first frame
	frame(n)   required, called once per frame with the frame number
	key(ch)    optional, called with each typed character before a frame

Draw calls take a table whose keys are the lowercase primitive fields plus
'mode' (colored, colored_blended, textured, textured_blended). Colours are
{r, g, b} in 1.7 fixed point (128 = 1.0) and default to 1.0.

	gpu.rect{x=0, y=0, w=64, h=64, u=0, v=0, color={128,128,128}, mode="textured"}
	gpu.line{x1=0, y1=0, x2=10, y2=5, color={255,0,0}}
	gpu.tri{x1=.., y1=.., u1=.., v1=.., x2=.., ..., v3=.., color=..., mode=...}
	gpu.gtri{... color1=..., color2=..., color3=...}
	gpu.quad{x1..x4, y1..y4, u1..u4, v1..v4, color=...}
	gpu.floor_row{y=.., x1=.., u1=.., v1=.., x2=.., u2=.., v2=.., color=...}
	gpu.wall_col{x=.., u=.., y1=.., v1=.., y2=.., v2=.., color=...}
	gpu.gwall_col{... color1=..., color2=...}
*/

package main

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/intuitionamiga/simplegpu/gpu"
	lua "github.com/yuin/gopher-lua"
	"golang.org/x/image/draw"
)

// Primitive kinds counted per frame
const (
	primRect = iota
	primLine
	primTri
	primGTri
	primFloorRow
	primWallCol
	primGWallCol
	primKindCount
)

var primKindNames = [primKindCount]string{"RECT", "LINE", "TRI", "GTRI", "FLOOR", "WALL", "GWALL"}

// drawCounts is the number of draw calls of each primitive kind in a frame
type drawCounts [primKindCount]int

func (d drawCounts) total() int {
	n := 0
	for _, c := range d {
		n += c
	}
	return n
}

type drawMode int

const (
	modeColored drawMode = iota
	modeColoredBlended
	modeTextured
	modeTexturedBlended
)

var drawModeNames = map[string]drawMode{
	"colored":          modeColored,
	"colored_blended":  modeColoredBlended,
	"textured":         modeTextured,
	"textured_blended": modeTexturedBlended,
}

// drawFuncs holds a primitive's draw function for each mode
type drawFuncs[P any] [4]func(*gpu.Core, P)

var (
	rectDraws = drawFuncs[gpu.Rect]{
		gpu.DrawRect[gpu.Colored], gpu.DrawRect[gpu.ColoredBlended],
		gpu.DrawRect[gpu.Textured], gpu.DrawRect[gpu.TexturedBlended],
	}
	triDraws = drawFuncs[gpu.Triangle]{
		gpu.DrawTriangle[gpu.Colored], gpu.DrawTriangle[gpu.ColoredBlended],
		gpu.DrawTriangle[gpu.Textured], gpu.DrawTriangle[gpu.TexturedBlended],
	}
	gtriDraws = drawFuncs[gpu.TriangleGouraud]{
		gpu.DrawTriangleGouraud[gpu.Colored], gpu.DrawTriangleGouraud[gpu.ColoredBlended],
		gpu.DrawTriangleGouraud[gpu.Textured], gpu.DrawTriangleGouraud[gpu.TexturedBlended],
	}
	floorRowDraws = drawFuncs[gpu.FloorRow]{
		gpu.DrawFloorRow[gpu.Colored], gpu.DrawFloorRow[gpu.ColoredBlended],
		gpu.DrawFloorRow[gpu.Textured], gpu.DrawFloorRow[gpu.TexturedBlended],
	}
	wallColDraws = drawFuncs[gpu.WallCol]{
		gpu.DrawWallCol[gpu.Colored], gpu.DrawWallCol[gpu.ColoredBlended],
		gpu.DrawWallCol[gpu.Textured], gpu.DrawWallCol[gpu.TexturedBlended],
	}
	gwallColDraws = drawFuncs[gpu.WallColGouraud]{
		gpu.DrawWallColGouraud[gpu.Colored], gpu.DrawWallColGouraud[gpu.ColoredBlended],
		gpu.DrawWallColGouraud[gpu.Textured], gpu.DrawWallColGouraud[gpu.TexturedBlended],
	}
)

var (
	texFmtNames    = map[string]gpu.TexFmt{}
	blendModeNames = map[string]gpu.BlendMode{}
)

func init() {
	for _, f := range []gpu.TexFmt{gpu.TexFmt4Bpp, gpu.TexFmt8Bpp, gpu.TexFmt16Bpp} {
		texFmtNames[f.String()] = f
	}
	for _, m := range []gpu.BlendMode{gpu.BlendAlpha50, gpu.BlendAdd, gpu.BlendSubtract, gpu.BlendAdd25} {
		blendModeNames[m.String()] = m
	}
}

// LuaScene runs a scene script against a GPU core. It is not safe for
// concurrent use: after setup only the compositor goroutine calls into it.
type LuaScene struct {
	name  string
	dir   string // Base directory for load_image paths
	L     *lua.LState
	core  *gpu.Core
	draws drawCounts
}

// LoadLuaScene loads a scene script from disk.
func LoadLuaScene(core *gpu.Core, path string) (*LuaScene, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	s, err := NewLuaScene(core, filepath.Base(path), string(src))
	if err != nil {
		return nil, err
	}
	s.dir = filepath.Dir(path)
	return s, nil
}

// NewLuaScene compiles and runs the scene's top level chunk.
func NewLuaScene(core *gpu.Core, name, source string) (*LuaScene, error) {
	s := &LuaScene{name: name, dir: ".", core: core}

	s.L = lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		if err := s.L.CallByParam(lua.P{Fn: s.L.NewFunction(lib.open), NRet: 0, Protect: true}, lua.LString(lib.name)); err != nil {
			s.L.Close()
			return nil, fmt.Errorf("scene %s: opening %s library: %w", name, lib.name, err)
		}
	}
	s.L.SetGlobal("gpu", s.L.SetFuncs(s.L.NewTable(), s.api()))

	if err := s.L.DoString(source); err != nil {
		s.L.Close()
		return nil, fmt.Errorf("scene %s: %w", name, err)
	}
	if s.L.GetGlobal("frame").Type() != lua.LTFunction {
		s.L.Close()
		return nil, fmt.Errorf("scene %s: no frame(n) function defined", name)
	}

	gpu.Logger().Debug("scene loaded", "scene", name)
	return s, nil
}

// Name returns the script name.
func (s *LuaScene) Name() string { return s.name }

// Close releases the Lua state.
func (s *LuaScene) Close() {
	s.L.Close()
}

var errNoFunction = errors.New("function not defined")

// call invokes a global function if the script defines it.
func (s *LuaScene) call(fn string, args ...lua.LValue) error {
	f := s.L.GetGlobal(fn)
	if f.Type() != lua.LTFunction {
		return errNoFunction
	}
	return s.L.CallByParam(lua.P{Fn: f, NRet: 0, Protect: true}, args...)
}

// Setup runs the script's setup() function, if any.
func (s *LuaScene) Setup() error {
	if err := s.call("setup"); err != nil && !errors.Is(err, errNoFunction) {
		return fmt.Errorf("scene %s: setup: %w", s.name, err)
	}
	return nil
}

// Frame runs frame(n) and returns the draw calls it issued.
func (s *LuaScene) Frame(n uint64) (drawCounts, error) {
	s.draws = drawCounts{}
	if err := s.call("frame", lua.LNumber(n)); err != nil {
		return s.draws, fmt.Errorf("scene %s: frame %d: %w", s.name, n, err)
	}
	return s.draws, nil
}

// Key passes a typed character to key(ch), if the script defines it.
func (s *LuaScene) Key(b byte) error {
	if err := s.call("key", lua.LString(string(rune(b)))); err != nil && !errors.Is(err, errNoFunction) {
		return fmt.Errorf("scene %s: key %q: %w", s.name, b, err)
	}
	return nil
}

func (s *LuaScene) api() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"set":         s.luaSet,
		"clear":       s.luaClear,
		"write":       s.luaWrite,
		"read":        s.luaRead,
		"texel":       s.luaTexel,
		"update_clut": s.luaUpdateClut,
		"rgb":         luaRGB,
		"width":       func(L *lua.LState) int { L.Push(lua.LNumber(s.core.Width())); return 1 },
		"height":      func(L *lua.LState) int { L.Push(lua.LNumber(s.core.Height())); return 1 },
		"load_image":  s.luaLoadImage,
		"rect":        s.luaRect,
		"line":        s.luaLine,
		"tri":         s.luaTri,
		"gtri":        s.luaGTri,
		"quad":        s.luaQuad,
		"floor_row":   s.luaFloorRow,
		"wall_col":    s.luaWallCol,
		"gwall_col":   s.luaGWallCol,
	}
}

// Field helpers. The draw table is always argument 1.

func fieldInt(L *lua.LState, t *lua.LTable, key string) int {
	v := t.RawGetString(key)
	switch v := v.(type) {
	case lua.LNumber:
		return int(v)
	case *lua.LNilType:
		return 0
	}
	L.ArgError(1, fmt.Sprintf("field %q: number expected, got %s", key, v.Type()))
	return 0
}

func fieldInt16(L *lua.LState, t *lua.LTable, key string) int16 {
	return int16(fieldInt(L, t, key))
}

func fieldUint16(L *lua.LState, t *lua.LTable, key string) uint16 {
	return uint16(fieldInt(L, t, key))
}

// fieldColor reads {r, g, b}. A missing colour is 1.0.
func fieldColor(L *lua.LState, t *lua.LTable, key string) gpu.Color24F {
	v := t.RawGetString(key)
	switch v := v.(type) {
	case *lua.LNilType:
		return gpu.ColorUnity
	case *lua.LTable:
		ch := func(i int) uint8 {
			n, ok := v.RawGetInt(i).(lua.LNumber)
			if !ok {
				L.ArgError(1, fmt.Sprintf("field %q: {r, g, b} expected", key))
			}
			return uint8(min(max(int(n), 0), 255))
		}
		return gpu.NewColor24F(ch(1), ch(2), ch(3))
	}
	L.ArgError(1, fmt.Sprintf("field %q: {r, g, b} expected, got %s", key, v.Type()))
	return gpu.Color24F{}
}

func fieldMode(L *lua.LState, t *lua.LTable) drawMode {
	v := t.RawGetString("mode")
	if v == lua.LNil {
		return modeColored
	}
	m, ok := drawModeNames[lua.LVAsString(v)]
	if !ok {
		L.ArgError(1, fmt.Sprintf("unknown mode %q", lua.LVAsString(v)))
	}
	return m
}

// pair reads a two element array {a, b}.
func pair(L *lua.LState, key string, v lua.LValue) (int, int) {
	t, ok := v.(*lua.LTable)
	if !ok {
		L.RaiseError("set: %s expects {a, b}", key)
	}
	return int(lua.LVAsNumber(t.RawGetInt(1))), int(lua.LVAsNumber(t.RawGetInt(2)))
}

func quad4(L *lua.LState, key string, v lua.LValue) [4]int {
	t, ok := v.(*lua.LTable)
	if !ok {
		L.RaiseError("set: %s expects {a, b, c, d}", key)
	}
	var out [4]int
	for i := range out {
		out[i] = int(lua.LVAsNumber(t.RawGetInt(i + 1)))
	}
	return out
}

// luaSet writes registers: gpu.set{draw_area={0,0,319,239}, blend="add", ...}
func (s *LuaScene) luaSet(L *lua.LState) int {
	t := L.CheckTable(1)
	c := s.core
	t.ForEach(func(k, v lua.LValue) {
		key := lua.LVAsString(k)
		switch key {
		case "draw_offset":
			x, y := pair(L, key, v)
			c.DrawOffsetX, c.DrawOffsetY = int16(x), int16(y)
		case "draw_area":
			a := quad4(L, key, v)
			c.DrawAreaLx, c.DrawAreaTy = uint16(a[0]), uint16(a[1])
			c.DrawAreaRx, c.DrawAreaBy = uint16(a[2]), uint16(a[3])
		case "display_area":
			a := quad4(L, key, v)
			c.DisplayAreaX, c.DisplayAreaY = uint16(a[0]), uint16(a[1])
			c.DisplayAreaW, c.DisplayAreaH = uint16(a[2]), uint16(a[3])
		case "tex_page":
			x, y := pair(L, key, v)
			c.TexPageX, c.TexPageY = uint16(x), uint16(y)
		case "tex_page_mask":
			x, y := pair(L, key, v)
			c.TexPageXMask, c.TexPageYMask = uint16(x), uint16(y)
		case "tex_win":
			x, y := pair(L, key, v)
			c.TexWinX, c.TexWinY = uint16(x), uint16(y)
		case "tex_win_mask":
			x, y := pair(L, key, v)
			c.TexWinXMask, c.TexWinYMask = uint16(x), uint16(y)
		case "clut":
			x, y := pair(L, key, v)
			c.ClutX, c.ClutY = uint16(x), uint16(y)
		case "fmt":
			f, ok := texFmtNames[lua.LVAsString(v)]
			if !ok {
				L.RaiseError("set: unknown texture format %q", lua.LVAsString(v))
			}
			c.TexFmt = f
		case "blend":
			m, ok := blendModeNames[lua.LVAsString(v)]
			if !ok {
				L.RaiseError("set: unknown blend mode %q", lua.LVAsString(v))
			}
			c.BlendMode = m
		case "disable_masking":
			c.DisableMasking = lua.LVAsBool(v)
		default:
			L.RaiseError("set: unknown register %q", key)
		}
	})
	return 0
}

// luaClear fills VRAM: gpu.clear(color16, x, y, w, h)
func (s *LuaScene) luaClear(L *lua.LState) int {
	s.core.ClearRect(gpu.Color16(L.CheckInt(1)),
		uint16(L.CheckInt(2)), uint16(L.CheckInt(3)), uint16(L.CheckInt(4)), uint16(L.CheckInt(5)))
	return 0
}

func (s *LuaScene) luaWrite(L *lua.LState) int {
	s.core.VramWriteU16(uint16(L.CheckInt(1)), uint16(L.CheckInt(2)), uint16(L.CheckInt(3)))
	return 0
}

func (s *LuaScene) luaRead(L *lua.LState) int {
	L.Push(lua.LNumber(s.core.VramReadU16(uint16(L.CheckInt(1)), uint16(L.CheckInt(2)))))
	return 1
}

func (s *LuaScene) luaTexel(L *lua.LState) int {
	L.Push(lua.LNumber(s.core.ReadTexel(uint16(L.CheckInt(1)), uint16(L.CheckInt(2)))))
	return 1
}

func (s *LuaScene) luaUpdateClut(L *lua.LState) int {
	s.core.UpdateClutCache()
	return 0
}

// luaRGB packs 5-bit components: gpu.rgb(r, g, b[, t])
func luaRGB(L *lua.LState) int {
	ch := func(n int) uint16 { return uint16(L.CheckInt(n)) & 31 }
	t := uint16(L.OptInt(4, 0)) & 1
	L.Push(lua.LNumber(gpu.MakeColor16T(ch(1), ch(2), ch(3), t)))
	return 1
}

// luaLoadImage copies an image file into VRAM as 16bpp texels and returns
// its size: w, h = gpu.load_image("tex.png", x, y)
func (s *LuaScene) luaLoadImage(L *lua.LState) int {
	path := L.CheckString(1)
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.dir, path)
	}
	x, y := uint16(L.CheckInt(2)), uint16(L.CheckInt(3))

	f, err := os.Open(path)
	if err != nil {
		L.RaiseError("load_image: %v", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		L.RaiseError("load_image: %s: %v", path, err)
	}

	b := img.Bounds()
	dst := s.core.VramImage(x, y, uint16(b.Dx()), uint16(b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)

	L.Push(lua.LNumber(b.Dx()))
	L.Push(lua.LNumber(b.Dy()))
	return 2
}

func (s *LuaScene) luaRect(L *lua.LState) int {
	t := L.CheckTable(1)
	r := gpu.Rect{
		X: fieldInt16(L, t, "x"), Y: fieldInt16(L, t, "y"),
		W: min(fieldUint16(L, t, "w"), gpu.MaxRectW),
		H: min(fieldUint16(L, t, "h"), gpu.MaxRectH),
		U: fieldUint16(L, t, "u"), V: fieldUint16(L, t, "v"),
		Color: fieldColor(L, t, "color"),
	}
	rectDraws[fieldMode(L, t)](s.core, r)
	s.draws[primRect]++
	return 0
}

func (s *LuaScene) luaLine(L *lua.LState) int {
	t := L.CheckTable(1)
	l := gpu.Line{
		X1: fieldInt16(L, t, "x1"), Y1: fieldInt16(L, t, "y1"),
		X2: fieldInt16(L, t, "x2"), Y2: fieldInt16(L, t, "y2"),
		Color: fieldColor(L, t, "color"),
	}
	switch fieldMode(L, t) {
	case modeColored:
		gpu.DrawLine[gpu.Colored](s.core, l)
	case modeColoredBlended:
		gpu.DrawLine[gpu.ColoredBlended](s.core, l)
	default:
		L.ArgError(1, "lines cannot be textured")
	}
	s.draws[primLine]++
	return 0
}

func triVertex(L *lua.LState, t *lua.LTable, i int) (x, y, u, v int16) {
	n := fmt.Sprint(i)
	return fieldInt16(L, t, "x"+n), fieldInt16(L, t, "y"+n), fieldInt16(L, t, "u"+n), fieldInt16(L, t, "v"+n)
}

func readTriangle(L *lua.LState, t *lua.LTable, a, b, c int) gpu.Triangle {
	var tri gpu.Triangle
	tri.X1, tri.Y1, tri.U1, tri.V1 = triVertex(L, t, a)
	tri.X2, tri.Y2, tri.U2, tri.V2 = triVertex(L, t, b)
	tri.X3, tri.Y3, tri.U3, tri.V3 = triVertex(L, t, c)
	tri.Color = fieldColor(L, t, "color")
	return tri
}

func (s *LuaScene) luaTri(L *lua.LState) int {
	t := L.CheckTable(1)
	triDraws[fieldMode(L, t)](s.core, readTriangle(L, t, 1, 2, 3))
	s.draws[primTri]++
	return 0
}

func (s *LuaScene) luaGTri(L *lua.LState) int {
	t := L.CheckTable(1)
	var tri gpu.TriangleGouraud
	tri.X1, tri.Y1, tri.U1, tri.V1 = triVertex(L, t, 1)
	tri.X2, tri.Y2, tri.U2, tri.V2 = triVertex(L, t, 2)
	tri.X3, tri.Y3, tri.U3, tri.V3 = triVertex(L, t, 3)
	tri.Color1 = fieldColor(L, t, "color1")
	tri.Color2 = fieldColor(L, t, "color2")
	tri.Color3 = fieldColor(L, t, "color3")
	gtriDraws[fieldMode(L, t)](s.core, tri)
	s.draws[primGTri]++
	return 0
}

// luaQuad splits a quad into triangles (1, 2, 3) and (2, 4, 3). Vertices
// are in PS1 order: top left, top right, bottom left, bottom right.
func (s *LuaScene) luaQuad(L *lua.LState) int {
	t := L.CheckTable(1)
	drawTri := triDraws[fieldMode(L, t)]
	drawTri(s.core, readTriangle(L, t, 1, 2, 3))
	drawTri(s.core, readTriangle(L, t, 2, 4, 3))
	s.draws[primTri] += 2
	return 0
}

func (s *LuaScene) luaFloorRow(L *lua.LState) int {
	t := L.CheckTable(1)
	r := gpu.FloorRow{
		Y:  fieldInt16(L, t, "y"),
		X1: fieldInt16(L, t, "x1"), U1: fieldInt16(L, t, "u1"), V1: fieldInt16(L, t, "v1"),
		X2: fieldInt16(L, t, "x2"), U2: fieldInt16(L, t, "u2"), V2: fieldInt16(L, t, "v2"),
		Color: fieldColor(L, t, "color"),
	}
	floorRowDraws[fieldMode(L, t)](s.core, r)
	s.draws[primFloorRow]++
	return 0
}

func (s *LuaScene) luaWallCol(L *lua.LState) int {
	t := L.CheckTable(1)
	w := gpu.WallCol{
		X: fieldInt16(L, t, "x"), U: fieldInt16(L, t, "u"),
		Y1: fieldInt16(L, t, "y1"), V1: fieldInt16(L, t, "v1"),
		Y2: fieldInt16(L, t, "y2"), V2: fieldInt16(L, t, "v2"),
		Color: fieldColor(L, t, "color"),
	}
	wallColDraws[fieldMode(L, t)](s.core, w)
	s.draws[primWallCol]++
	return 0
}

func (s *LuaScene) luaGWallCol(L *lua.LState) int {
	t := L.CheckTable(1)
	w := gpu.WallColGouraud{
		X: fieldInt16(L, t, "x"), U: fieldInt16(L, t, "u"),
		Y1: fieldInt16(L, t, "y1"), V1: fieldInt16(L, t, "v1"),
		Y2: fieldInt16(L, t, "y2"), V2: fieldInt16(L, t, "v2"),
		Color1: fieldColor(L, t, "color1"),
		Color2: fieldColor(L, t, "color2"),
	}
	gwallColDraws[fieldMode(L, t)](s.core, w)
	s.draws[primGWallCol]++
	return 0
}
