package core

import (
	"math"

	"github.com/jbeda/geom"
)

// Point is a coordinate pair in the plane of the generator that produced it.
type Point = geom.Coord

// Bounds is an axis-aligned rectangle spanning Min to Max.
type Bounds = geom.Rect

// Box builds the Bounds [xmin,xmax] x [ymin,ymax].
func Box(xmin, xmax, ymin, ymax float64) Bounds {
	return Bounds{Min: Point{X: xmin, Y: ymin}, Max: Point{X: xmax, Y: ymax}}
}

// Lerp returns the point a fraction t of the way from p to q.
func Lerp(p, q Point, t float64) Point {
	return p.Plus(q.Minus(p).Times(t))
}

// Midpoint returns the point halfway between p and q.
func Midpoint(p, q Point) Point {
	return p.Plus(q).Times(0.5)
}

// Segment is a directed line from Start to End.
type Segment struct {
	Start, End Point
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.Start.DistanceFrom(s.End)
}

// Triangle is a filled triangle tagged with a palette index.
type Triangle struct {
	A, B, C Point
	Color   int
}

// Area returns the unsigned area of the triangle.
func (t Triangle) Area() float64 {
	return math.Abs(signedArea(t.A, t.B, t.C))
}

// Shape returns the untagged triangle.
func (t Triangle) Shape() geom.Triangle {
	return geom.Triangle{A: t.A, B: t.B, C: t.C}
}

func signedArea(a, b, c Point) float64 {
	return geom.CrossProduct(b.Minus(a), c.Minus(a)) / 2
}

// SegmentBounds returns the smallest Bounds covering every endpoint in segs.
// The zero Bounds is returned for an empty slice.
func SegmentBounds(segs []Segment) Bounds {
	if len(segs) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: segs[0].Start, Max: segs[0].Start}
	for _, s := range segs {
		b.ExpandToContainCoord(s.Start)
		b.ExpandToContainCoord(s.End)
	}
	return b
}

// PointBounds returns the smallest Bounds covering pts.
func PointBounds(pts []Point) Bounds {
	if len(pts) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: pts[0], Max: pts[0]}
	for _, p := range pts {
		b.ExpandToContainCoord(p)
	}
	return b
}
