package starfield

import "math"

// ConcentrationRadius is the distance from the brightness line beyond which
// concentrated stars are drawn at the minimum thickness.
const ConcentrationRadius = 500.0

// MaxThickness is the thickness of a concentrated star lying on the line.
const MaxThickness = 4

type Point struct{ X, Y float64 }

// Vec is a 2D direction.
type Vec struct{ X, Y float64 }

func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// NormalizeVector scales v to unit length. The zero vector has no direction
// and yields NaN components; callers must rule it out first.
func NormalizeVector(v Vec) Vec {
	l := math.Sqrt(v.X*v.X + v.Y*v.Y)
	return Vec{X: v.X / l, Y: v.Y / l}
}

// DistFromLine returns the perpendicular distance from (x,y) to the infinite
// line through p1 and p2: twice the triangle area over the base length.
func DistFromLine(p1, p2 Point, x, y float64) float64 {
	doubleTriArea := math.Abs((p2.Y-p1.Y)*x - (p2.X-p1.X)*y + p2.X*p1.Y - p2.Y*p1.X)
	return doubleTriArea / math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
}

// Thickness maps a star's distance from the brightness line to its thickness:
// linear from 4 on the line down towards 1 at ConcentrationRadius, then 1.
func Thickness(d float64) int {
	if d < ConcentrationRadius {
		return int(math.Floor((-3/ConcentrationRadius)*d + MaxThickness))
	}
	return 1
}
