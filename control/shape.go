package control

// Shape holds the corner radii of a widget border, in dp.
// The editor keeps each radius in [0, 100]; the type does not.
type Shape struct {
	TopStart    float64 `json:"topStart"`
	TopEnd      float64 `json:"topEnd"`
	BottomEnd   float64 `json:"bottomEnd"`
	BottomStart float64 `json:"bottomStart"`
}

// UniformShape returns a Shape with the same radius on every corner.
func UniformShape(radius float64) Shape {
	return Shape{TopStart: radius, TopEnd: radius, BottomEnd: radius, BottomStart: radius}
}

// IsSquare reports whether every corner radius is zero.
func (s Shape) IsSquare() bool {
	return s.TopStart == 0 && s.TopEnd == 0 && s.BottomEnd == 0 && s.BottomStart == 0
}
