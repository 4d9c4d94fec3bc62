// Package physics provides collision predicates for the playfield.
package physics

// Rect is an axis-aligned box given by its top-left corner and size.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps reports whether two boxes share interior area.
// Boxes that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Right() > o.X && r.X < o.Right() &&
		r.Bottom() > o.Y && r.Y < o.Bottom()
}

// CircleBounds returns the bounding square of a circle.
func CircleBounds(cx, cy, radius float64) Rect {
	return Rect{X: cx - radius, Y: cy - radius, W: 2 * radius, H: 2 * radius}
}

// CircleHitsRect tests the circle's bounding square against a box.
// This is deliberately coarser than a true circle test: corners count as hits.
func CircleHitsRect(cx, cy, radius float64, box Rect) bool {
	return CircleBounds(cx, cy, radius).Overlaps(box)
}

// Outside reports whether v lies outside the closed interval [lo, hi].
func Outside(v, lo, hi float64) bool {
	return v < lo || v > hi
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
