// draw_doom.go - Floor row and wall column span rasterizers

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

// Spans interpolate in 16.16 fixed point.
const fracBits = 16

// spanStep returns the per-pixel 16.16 increment from a to b over n pixels.
func spanStep(a, b, n int) int {
	return ((b - a) << fracBits) / n
}

// DrawFloorRow draws pixels [X1, X2) of row Y with u and v interpolated from
// (U1, V1) at X1 towards (U2, V2) at X2. Endpoints are swapped if X2 < X1.
// Colored modes ignore the texcoords.
func DrawFloorRow[M DrawMode](c *Core, r FloorRow) {
	p := newPipe[M](c)

	y := int(r.Y) + p.offY
	if y < p.ty || y > p.by {
		return
	}

	x1, u1, v1 := int(r.X1)+p.offX, int(r.U1), int(r.V1)
	x2, u2, v2 := int(r.X2)+p.offX, int(r.U2), int(r.V2)
	if x2 < x1 {
		x1, u1, v1, x2, u2, v2 = x2, u2, v2, x1, u1, v1
	}
	n := x2 - x1
	if n == 0 {
		return
	}

	xs := max(x1, p.lx)
	xe := min(x2-1, p.rx)
	if xs > xe {
		return
	}

	if !p.textured {
		fg := color24FTo16(r.Color)
		for x := xs; x <= xe; x++ {
			p.put(x, y, fg)
		}
		return
	}

	du := spanStep(u1, u2, n)
	dv := spanStep(v1, v2, n)
	skip := xs - x1
	u := u1<<fracBits + du*skip
	v := v1<<fracBits + dv*skip

	for x := xs; x <= xe; x++ {
		p.texel(x, y, uint16(u>>fracBits), uint16(v>>fracBits), r.Color)
		u += du
		v += dv
	}
}

// DrawWallCol draws pixels [Y1, Y2) of column X with a constant u and v
// interpolated from V1 at Y1 towards V2 at Y2.
func DrawWallCol[M DrawMode](c *Core, w WallCol) {
	p := newPipe[M](c)

	x := int(w.X) + p.offX
	y1 := int(w.Y1) + p.offY
	y2 := int(w.Y2) + p.offY
	if x < p.lx || x > p.rx || y2 <= y1 {
		return
	}

	ys := max(y1, p.ty)
	ye := min(y2-1, p.by)
	if ys > ye {
		return
	}

	if !p.textured {
		fg := color24FTo16(w.Color)
		for y := ys; y <= ye; y++ {
			p.put(x, y, fg)
		}
		return
	}

	u := uint16(w.U)
	dv := spanStep(int(w.V1), int(w.V2), y2-y1)
	v := int(w.V1)<<fracBits + dv*(ys-y1)

	for y := ys; y <= ye; y++ {
		p.texel(x, y, u, uint16(v>>fracBits), w.Color)
		v += dv
	}
}

// DrawWallColGouraud is DrawWallCol with the colour interpolated from Color1
// at Y1 towards Color2 at Y2.
func DrawWallColGouraud[M DrawMode](c *Core, w WallColGouraud) {
	p := newPipe[M](c)

	x := int(w.X) + p.offX
	y1 := int(w.Y1) + p.offY
	y2 := int(w.Y2) + p.offY
	if x < p.lx || x > p.rx || y2 <= y1 {
		return
	}

	ys := max(y1, p.ty)
	ye := min(y2-1, p.by)
	if ys > ye {
		return
	}

	n := y2 - y1
	skip := ys - y1
	c1, c2 := w.Color1, w.Color2

	dr := spanStep(int(c1.R), int(c2.R), n)
	dg := spanStep(int(c1.G), int(c2.G), n)
	db := spanStep(int(c1.B), int(c2.B), n)
	dv := spanStep(int(w.V1), int(w.V2), n)

	r := int(c1.R)<<fracBits + dr*skip
	g := int(c1.G)<<fracBits + dg*skip
	b := int(c1.B)<<fracBits + db*skip
	v := int(w.V1)<<fracBits + dv*skip
	u := uint16(w.U)

	for y := ys; y <= ye; y++ {
		shade := Color24F{R: uint8(r >> fracBits), G: uint8(g >> fracBits), B: uint8(b >> fracBits)}
		p.shade(x, y, u, uint16(v>>fracBits), shade)
		r += dr
		g += dg
		b += db
		v += dv
	}
}
