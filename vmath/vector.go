package vmath

// Normalize2D returns unit vector in Q32.32, zero-safe
func Normalize2D(x, y int64) (nx, ny int64) {
	mag := Magnitude(x, y)
	if mag == 0 {
		return 0, 0
	}
	return Div(x, mag), Div(y, mag)
}

// Magnitude returns vector length
func Magnitude(x, y int64) int64 {
	return Sqrt(MagnitudeSq(x, y))
}

// MagnitudeSq returns squared magnitude without sqrt
func MagnitudeSq(x, y int64) int64 {
	return Mul(x, x) + Mul(y, y)
}

// Heading returns the unit vector for an angle, 0 points up (negative Y)
func Heading(angle int64) (x, y int64) {
	return Sin(angle), -Cos(angle)
}
