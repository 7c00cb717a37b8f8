// Package vmath holds the planar geometry shared by the bees.
// Points and rectangles are golang/geo r2 values so callers get Add, Sub,
// Mul and Norm for free.
package vmath

import (
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// Point is a position on the field
type Point = r2.Point

// Rect is an axis-aligned region, closed on all sides
type Rect = r2.Rect

// Origin is the corner the worker bee flies to
var Origin = Point{}

// NewRect returns the rectangle spanning [lo,hi] on both axes
func NewRect(lo, hi float64) Rect {
	return Rect{
		X: r1.Interval{Lo: lo, Hi: hi},
		Y: r1.Interval{Lo: lo, Hi: hi},
	}
}

// Distance returns the Euclidean distance between a and b
func Distance(a, b Point) float64 {
	return b.Sub(a).Norm()
}

// DegToRad converts whole degrees to radians
func DegToRad(deg int) float64 {
	return float64(deg) * math.Pi / 180
}

// FromHeading returns the displacement of length speed along angle (radians)
func FromHeading(angle, speed float64) Point {
	return Point{X: speed * math.Cos(angle), Y: speed * math.Sin(angle)}
}
