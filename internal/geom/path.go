// Package geom provides the movement paths encounters descend along.
package geom

import "math"

// Logical playfield dimensions all path coordinates live in.
const (
	FieldWidth  = 800.0
	FieldHeight = 600.0
)

// Point is a position on the 800x600 logical playfield.
type Point struct {
	X float64
	Y float64
}

// Path is a named polyline traversed from its first point to its last.
type Path struct {
	Name   string
	points []Point
	// cumulative arc length up to each vertex
	lengths []float64
	total   float64
}

// NewPath builds a path from at least two points.
func NewPath(name string, points []Point) Path {
	p := Path{Name: name, points: points}
	p.lengths = make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		dx := points[i].X - points[i-1].X
		dy := points[i].Y - points[i-1].Y
		p.lengths[i] = p.lengths[i-1] + math.Hypot(dx, dy)
	}
	if len(points) > 0 {
		p.total = p.lengths[len(points)-1]
	}
	return p
}

// Start returns the first point of the path.
func (p Path) Start() Point {
	if len(p.points) == 0 {
		return Point{}
	}
	return p.points[0]
}

// End returns the last point of the path.
func (p Path) End() Point {
	if len(p.points) == 0 {
		return Point{}
	}
	return p.points[len(p.points)-1]
}

// PointAt returns the position at progress t in [0,1], interpolated by arc
// length. Out-of-range t clamps to the nearest endpoint.
func (p Path) PointAt(t float64) Point {
	if len(p.points) == 0 {
		return Point{}
	}
	if t <= 0 || p.total == 0 {
		return p.points[0]
	}
	if t >= 1 {
		return p.points[len(p.points)-1]
	}
	target := t * p.total
	for i := 1; i < len(p.points); i++ {
		if p.lengths[i] < target {
			continue
		}
		segment := p.lengths[i] - p.lengths[i-1]
		if segment == 0 {
			return p.points[i]
		}
		frac := (target - p.lengths[i-1]) / segment
		return Point{
			X: p.points[i-1].X + (p.points[i].X-p.points[i-1].X)*frac,
			Y: p.points[i-1].Y + (p.points[i].Y-p.points[i-1].Y)*frac,
		}
	}
	return p.points[len(p.points)-1]
}
