package loop

import (
	"math"
	"sort"

	"github.com/golang/geo/r3"
)

// Curve is a space curve parametrised by normalised arc length:
// At(0) is the start, At(1) the end, and equal steps in t cover equal
// lengths.
type Curve interface {
	At(t float64) r3.Vector
	Length() float64
}

// Polyline is the piecewise linear curve through its points.
type Polyline struct {
	pts []r3.Vector
	cum []float64 // cum[i] is the length from pts[0] to pts[i]
}

// NewPolyline returns the polyline through pts. It panics on an empty pts.
func NewPolyline(pts ...r3.Vector) *Polyline {
	if len(pts) == 0 {
		panic("loop: NewPolyline()")
	}
	cum := make([]float64, len(pts))
	for i := 1; i < len(pts); i++ {
		cum[i] = cum[i-1] + pts[i-1].Distance(pts[i])
	}
	return &Polyline{pts: pts, cum: cum}
}

// Length returns the total length.
func (c *Polyline) Length() float64 { return c.cum[len(c.cum)-1] }

// At returns the point at fraction t of the length; t is clamped to [0, 1].
func (c *Polyline) At(t float64) r3.Vector {
	total := c.Length()
	if total == 0 || t <= 0 {
		return c.pts[0]
	}
	if t >= 1 {
		return c.pts[len(c.pts)-1]
	}
	d := t * total
	// cum[i-1] < d <= cum[i], so the segment has positive length
	i := sort.SearchFloat64s(c.cum, d)
	f := (d - c.cum[i-1]) / (c.cum[i] - c.cum[i-1])
	return c.pts[i-1].Add(c.pts[i].Sub(c.pts[i-1]).Mul(f))
}

// Arc is the circular arc from a through b to c.
type Arc struct {
	center r3.Vector
	u, w   r3.Vector // radius vectors at angle 0 and π/2
	sweep  float64   // signed angle from a to c
}

// NewArc returns the arc through a, b and c in that order. ok is false when
// the points are (nearly) collinear or coincide.
func NewArc(a, b, c r3.Vector) (arc *Arc, ok bool) {
	ab, cb := a.Sub(c), b.Sub(c)
	n := ab.Cross(cb)
	n2 := n.Norm2()
	if n2 <= 1e-12*ab.Norm2()*cb.Norm2() {
		return nil, false
	}
	// circumcentre of the triangle
	center := c.Add(cb.Mul(ab.Norm2()).Sub(ab.Mul(cb.Norm2())).Cross(n).Mul(1 / (2 * n2)))
	u := a.Sub(center)
	w := n.Normalize().Cross(u)

	angle := func(q r3.Vector) float64 {
		d := q.Sub(center)
		th := math.Atan2(d.Dot(w), d.Dot(u))
		if th < 0 {
			th += 2 * math.Pi
		}
		return th
	}
	thB, thC := angle(b), angle(c)
	sweep := thC
	if thB > thC {
		// b lies on the other way round
		sweep = thC - 2*math.Pi
	}
	return &Arc{center: center, u: u, w: w, sweep: sweep}, true
}

// Length returns the arc length.
func (c *Arc) Length() float64 { return c.u.Norm() * math.Abs(c.sweep) }

// At returns the point at fraction t of the arc; t is clamped to [0, 1].
func (c *Arc) At(t float64) r3.Vector {
	t = math.Max(0, math.Min(1, t))
	th := t * c.sweep
	return c.center.Add(c.u.Mul(math.Cos(th))).Add(c.w.Mul(math.Sin(th)))
}

// knotCurve returns the curve a distribution follows: the arc through three
// open knots when they span one, else the polyline through the knots.
func knotCurve(pts []r3.Vector, closed bool) Curve {
	if len(pts) == 3 && !closed {
		if arc, ok := NewArc(pts[0], pts[1], pts[2]); ok {
			return arc
		}
	}
	return NewPolyline(pts...)
}
