package layout

// BasisPoints is the fixed-point scale of a position fraction.
const BasisPoints = 10000

// Offset returns the pixel offset of a widget of length widget inside a
// container of length container, at fraction of the available travel. The
// result is negative when the widget is larger than its container.
func Offset(container, widget int, fraction float64) int {
	return int(float64(container-widget) * fraction)
}

// Fraction is the inverse of Offset in basis points, clamped to
// [0, BasisPoints]. A container no larger than the widget has no travel and
// yields 0.
func Fraction(offset, container, widget int) int {
	travel := container - widget
	if travel <= 0 {
		return 0
	}
	return Clamp(int(float64(BasisPoints)*float64(offset)/float64(travel)), 0, BasisPoints)
}

// Clamp constrains v to [lo, hi]. hi wins when lo > hi.
func Clamp(v, lo, hi int) int {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}
