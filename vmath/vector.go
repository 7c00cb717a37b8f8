package vmath

// StepToward moves from by at most step along the straight line to to.
// reached is true when the remaining distance was within step, in which case
// next is exactly to. A zero-length path counts as reached.
func StepToward(from, to Point, step float64) (next Point, reached bool) {
	delta := to.Sub(from)
	dist := delta.Norm()
	if dist <= step {
		return to, true
	}
	return from.Add(delta.Mul(step / dist)), false
}

// Clamp returns p moved onto the nearest point of r
func Clamp(r Rect, p Point) Point {
	return r.ClampPoint(p)
}
