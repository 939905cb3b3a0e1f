// draw_triangle.go - Triangle rasterizer

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

// triVertex is a triangle vertex after the draw offset, widened for the
// edge function arithmetic.
type triVertex struct {
	x, y    int64
	u, v    int64
	r, g, b int64
}

func makeTriVertex(p *pipe, x, y, u, v int16, color Color24F) triVertex {
	return triVertex{
		x: int64(x) + int64(p.offX),
		y: int64(y) + int64(p.offY),
		u: int64(u),
		v: int64(v),
		r: int64(color.R),
		g: int64(color.G),
		b: int64(color.B),
	}
}

// edgeFunction computes the signed area of the parallelogram (a, b, c).
func edgeFunction(a, b *triVertex, cx, cy int64) int64 {
	return (cx-a.x)*(b.y-a.y) - (cy-a.y)*(b.x-a.x)
}

// isTopLeft reports whether edge a->b of a positively wound triangle is a
// top edge (horizontal, interior below) or a left edge.
func isTopLeft(a, b *triVertex) bool {
	return (a.y == b.y && b.x < a.x) || b.y > a.y
}

// edgeBias is 0 for top-left edges and -1 otherwise, so that the coverage
// test is w+bias >= 0 for every edge.
func edgeBias(a, b *triVertex) int64 {
	if isTopLeft(a, b) {
		return 0
	}
	return -1
}

// floorDiv divides rounding towards negative infinity. d must be positive.
func floorDiv(n, d int64) int64 {
	q := n / d
	if n%d != 0 && n < 0 {
		q--
	}
	return q
}

// DrawTriangle draws a flat shaded triangle.
func DrawTriangle[M DrawMode](c *Core, t Triangle) {
	p := newPipe[M](c)
	vs := [3]triVertex{
		makeTriVertex(&p, t.X1, t.Y1, t.U1, t.V1, t.Color),
		makeTriVertex(&p, t.X2, t.Y2, t.U2, t.V2, t.Color),
		makeTriVertex(&p, t.X3, t.Y3, t.U3, t.V3, t.Color),
	}
	rasterizeTriangle(&p, vs, false, t.Color)
}

// DrawTriangleGouraud draws a triangle with its vertex colours interpolated
// across the surface.
func DrawTriangleGouraud[M DrawMode](c *Core, t TriangleGouraud) {
	p := newPipe[M](c)
	vs := [3]triVertex{
		makeTriVertex(&p, t.X1, t.Y1, t.U1, t.V1, t.Color1),
		makeTriVertex(&p, t.X2, t.Y2, t.U2, t.V2, t.Color2),
		makeTriVertex(&p, t.X3, t.Y3, t.U3, t.V3, t.Color3),
	}
	rasterizeTriangle(&p, vs, true, t.Color1)
}

// rasterizeTriangle scan converts a triangle with integer edge functions
// sampled at pixel positions. Edges shared by two triangles are owned by
// exactly one of them (top-left rule), so meshes have no gaps or overdraw.
func rasterizeTriangle(p *pipe, vs [3]triVertex, gouraud bool, flat Color24F) {
	v0, v1, v2 := &vs[0], &vs[1], &vs[2]

	area := edgeFunction(v0, v1, v2.x, v2.y)
	if area == 0 {
		return // Degenerate triangle
	}
	if area < 0 {
		v1, v2 = v2, v1
		area = -area
	}

	// Bounding box clipped to the draw area
	minX := max(min(v0.x, v1.x, v2.x), int64(p.lx))
	maxX := min(max(v0.x, v1.x, v2.x), int64(p.rx))
	minY := max(min(v0.y, v1.y, v2.y), int64(p.ty))
	maxY := min(max(v0.y, v1.y, v2.y), int64(p.by))
	if minX > maxX || minY > maxY {
		return
	}

	// Edge i is opposite vertex i, so wi is the barycentric weight of vertex i
	bias0 := edgeBias(v1, v2)
	bias1 := edgeBias(v2, v0)
	bias2 := edgeBias(v0, v1)

	stepX0, stepY0 := v2.y-v1.y, v1.x-v2.x
	stepX1, stepY1 := v0.y-v2.y, v2.x-v0.x
	stepX2, stepY2 := v1.y-v0.y, v0.x-v1.x

	row0 := edgeFunction(v1, v2, minX, minY)
	row1 := edgeFunction(v2, v0, minX, minY)
	row2 := edgeFunction(v0, v1, minX, minY)

	fg := color24FTo16(flat)

	for y := minY; y <= maxY; y++ {
		w0, w1, w2 := row0, row1, row2
		hit := false

		for x := minX; x <= maxX; x++ {
			if w0+bias0 >= 0 && w1+bias1 >= 0 && w2+bias2 >= 0 {
				hit = true

				shade := flat
				if gouraud {
					shade = Color24F{
						R: uint8((w0*v0.r + w1*v1.r + w2*v2.r) / area),
						G: uint8((w0*v0.g + w1*v1.g + w2*v2.g) / area),
						B: uint8((w0*v0.b + w1*v1.b + w2*v2.b) / area),
					}
				}

				switch {
				case p.textured:
					u := floorDiv(w0*v0.u+w1*v1.u+w2*v2.u, area)
					v := floorDiv(w0*v0.v+w1*v1.v+w2*v2.v, area)
					p.texel(int(x), int(y), uint16(u), uint16(v), shade)
				case gouraud:
					p.put(int(x), int(y), color24FTo16(shade))
				default:
					p.put(int(x), int(y), fg)
				}
			} else if hit {
				break // Past the span: triangles are convex
			}

			w0 += stepX0
			w1 += stepX1
			w2 += stepX2
		}

		row0 += stepY0
		row1 += stepY1
		row2 += stepY2
	}
}
