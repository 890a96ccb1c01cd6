package control

// PositionScale is the fixed-point scale of a Position axis (basis points).
const PositionScale = 10000

// Position places a widget inside its container. X and Y are basis points
// of the available travel: 0 pins the widget to the leading edge, 10000 to
// the trailing edge.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

var (
	// ZeroPosition is the top-left corner.
	ZeroPosition = Position{}

	// CenterPosition is where cloned and newly pasted widgets land.
	CenterPosition = Position{X: PositionScale / 2, Y: PositionScale / 2}
)

// XPercentage returns X as a fraction clamped to [0, 1].
func (p Position) XPercentage() float64 {
	return fraction(p.X)
}

// YPercentage returns Y as a fraction clamped to [0, 1].
func (p Position) YPercentage() float64 {
	return fraction(p.Y)
}

func fraction(v int) float64 {
	f := float64(v) / PositionScale
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
