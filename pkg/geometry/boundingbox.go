package geometry

import "math"

// Quadrant identifies one of the four children of a BoundingBox, in the
// canonical NE, NW, SW, SE order used throughout the quadtree walk.
type Quadrant int

const (
	NE Quadrant = iota
	NW
	SW
	SE
)

// numQuadrants is the fixed fan-out of a BoundingBox subdivision.
const numQuadrants = 4

// BoundingBox is an axis-aligned rectangle described by its center and
// half-extents.
type BoundingBox struct {
	Center Vector
	HalfW  float64
	HalfH  float64
}

// NewBoundingBox builds a box from a center and half-extents.
func NewBoundingBox(center Vector, halfW, halfH float64) BoundingBox {
	return BoundingBox{Center: center, HalfW: halfW, HalfH: halfH}
}

// FromPoints derives a tight bounding box over pts, expanded on every side
// by margin so that boundary points are strictly interior.
func FromPoints(pts []Vector, margin float64) BoundingBox {
	if len(pts) == 0 {
		return NewBoundingBox(Vector{}, margin, margin)
	}
	minX, maxX := pts[0].X, pts[0].X
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	minX -= margin
	maxX += margin
	minY -= margin
	maxY += margin
	center := Vector{(minX + maxX) / 2, (minY + maxY) / 2}
	return NewBoundingBox(center, (maxX-minX)/2, (maxY-minY)/2)
}

// Contains reports whether p lies within the closed rectangle.
func (b BoundingBox) Contains(p Vector) bool {
	return p.X >= b.Center.X-b.HalfW && p.X <= b.Center.X+b.HalfW &&
		p.Y >= b.Center.Y-b.HalfH && p.Y <= b.Center.Y+b.HalfH
}

// Quadrant classifies p relative to the box's center.
func (b BoundingBox) Quadrant(p Vector) Quadrant {
	xGE := p.X >= b.Center.X
	yGE := p.Y >= b.Center.Y
	switch {
	case xGE && yGE:
		return NE
	case !xGE && yGE:
		return NW
	case !xGE && !yGE:
		return SW
	default:
		return SE
	}
}

// Child returns the sub-rectangle for quadrant q: half the extents of b,
// centered at an offset of (+/-HalfW/2, +/-HalfH/2) from b's center.
func (b BoundingBox) Child(q Quadrant) BoundingBox {
	hw, hh := b.HalfW/2, b.HalfH/2
	var dx, dy float64
	switch q {
	case NE:
		dx, dy = hw, hh
	case NW:
		dx, dy = -hw, hh
	case SW:
		dx, dy = -hw, -hh
	case SE:
		dx, dy = hw, -hh
	}
	return NewBoundingBox(Vector{b.Center.X + dx, b.Center.Y + dy}, hw, hh)
}

// Size returns the longest side of the box, used as "s" in the Barnes-Hut
// acceptance criterion.
func (b BoundingBox) Size() float64 {
	return 2 * math.Max(b.HalfW, b.HalfH)
}
