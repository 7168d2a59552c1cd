package delaunay

import (
	"math"
	"math/big"
)

// inCircleErrBound is a static error bound for the floating point in-circle determinant.
// Anything closer to zero than errBound*permanent is recomputed exactly.
const inCircleErrBound = 1e-14

// orient returns twice the signed area of the triangle abc. Every face of a
// Triangulation has a strictly positive orientation. Exact for points in range.
func orient(a, b, c Point) int64 {
	return int64(b.Y-a.Y)*int64(c.X-b.X) - int64(b.X-a.X)*int64(c.Y-b.Y)
}

// Area2 returns twice the unsigned area of the triangle abc.
func Area2(a, b, c Point) int64 {
	o := orient(a, b, c)
	if o < 0 {
		return -o
	}
	return o
}

// inCircle reports whether p lies strictly inside the circumcircle of the positively
// oriented triangle abc.
func inCircle(a, b, c, p Point) bool {
	dx := float64(a.X - p.X)
	dy := float64(a.Y - p.Y)
	ex := float64(b.X - p.X)
	ey := float64(b.Y - p.Y)
	fx := float64(c.X - p.X)
	fy := float64(c.Y - p.Y)

	ap := dx*dx + dy*dy
	bp := ex*ex + ey*ey
	cp := fx*fx + fy*fy

	det := dx*(ey*cp-bp*fy) - dy*(ex*cp-bp*fx) + ap*(ex*fy-ey*fx)
	permanent := math.Abs(dx)*(math.Abs(ey)*cp+bp*math.Abs(fy)) +
		math.Abs(dy)*(math.Abs(ex)*cp+bp*math.Abs(fx)) +
		ap*(math.Abs(ex*fy)+math.Abs(ey*fx))

	bound := inCircleErrBound * permanent
	if det > bound {
		return false
	}
	if -det > bound {
		return true
	}
	return inCircleExact(a, b, c, p) < 0
}

// inCircleExact evaluates the in-circle determinant with arbitrary precision and
// returns its sign.
func inCircleExact(a, b, c, p Point) int {
	dx := big.NewInt(int64(a.X - p.X))
	dy := big.NewInt(int64(a.Y - p.Y))
	ex := big.NewInt(int64(b.X - p.X))
	ey := big.NewInt(int64(b.Y - p.Y))
	fx := big.NewInt(int64(c.X - p.X))
	fy := big.NewInt(int64(c.Y - p.Y))

	sq := func(x, y *big.Int) *big.Int {
		r := new(big.Int).Mul(x, x)
		return r.Add(r, new(big.Int).Mul(y, y))
	}
	// cross returns x1*y2 - y1*x2.
	cross := func(x1, y1, x2, y2 *big.Int) *big.Int {
		r := new(big.Int).Mul(x1, y2)
		return r.Sub(r, new(big.Int).Mul(y1, x2))
	}

	ap := sq(dx, dy)
	bp := sq(ex, ey)
	cp := sq(fx, fy)

	t1 := new(big.Int).Mul(dx, cross(ey, bp, fy, cp))
	t2 := new(big.Int).Mul(dy, cross(ex, bp, fx, cp))
	t3 := new(big.Int).Mul(ap, cross(ex, ey, fx, fy))

	det := t1.Sub(t1, t2)
	det.Add(det, t3)
	return det.Sign()
}

// circumRadius returns the squared circumradius of abc, or +Inf for collinear points.
func circumRadius(a, b, c Point) float64 {
	if orient(a, b, c) == 0 {
		return infinity
	}
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	ex := float64(c.X - a.X)
	ey := float64(c.Y - a.Y)

	bl := dx*dx + dy*dy
	cl := ex*ex + ey*ey
	d := dx*ey - dy*ex

	x := (ey*bl - dy*cl) * 0.5 / d
	y := (dx*cl - ex*bl) * 0.5 / d

	return x*x + y*y
}

// circumcenter returns the center of the circle through a, b and c.
// The points must not be collinear.
func circumcenter(a, b, c Point) (float64, float64) {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	ex := float64(c.X - a.X)
	ey := float64(c.Y - a.Y)

	bl := dx*dx + dy*dy
	cl := ex*ex + ey*ey
	d := dx*ey - dy*ex

	x := float64(a.X) + (ey*bl-dy*cl)*0.5/d
	y := float64(a.Y) + (dx*cl-ex*bl)*0.5/d

	return x, y
}

// pseudoAngle monotonically maps the direction (dx, dy) into [0, 1).
func pseudoAngle(dx, dy float64) float64 {
	if dx == 0 && dy == 0 {
		return 0
	}
	p := dx / (math.Abs(dx) + math.Abs(dy))
	if dy > 0 {
		p = (3 - p) / 4
	} else {
		p = (1 + p) / 4
	}
	return math.Max(0, math.Min(1-eps, p))
}
