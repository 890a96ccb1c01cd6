package layout

import "testing"

func TestNewRect(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.X != 5 {
		t.Errorf("NewRect().X = %d, want 5", r.X)
	}
	if r.Y != 10 {
		t.Errorf("NewRect().Y = %d, want 10", r.Y)
	}
	if r.Width != 20 {
		t.Errorf("NewRect().Width = %d, want 20", r.Width)
	}
	if r.Height != 15 {
		t.Errorf("NewRect().Height = %d, want 15", r.Height)
	}
}

func TestRect_RightBottom(t *testing.T) {
	type tc struct {
		rect   Rect
		right  int
		bottom int
	}

	tests := map[string]tc{
		"standard rect": {
			rect:   NewRect(5, 10, 20, 15),
			right:  25,
			bottom: 25,
		},
		"negative position": {
			rect:   NewRect(-5, -5, 10, 10),
			right:  5,
			bottom: 5,
		},
		"zero size": {
			rect:   NewRect(5, 5, 0, 0),
			right:  5,
			bottom: 5,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Right(); got != tt.right {
				t.Errorf("Right() = %d, want %d", got, tt.right)
			}
			if got := tt.rect.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %d, want %d", got, tt.bottom)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	type tc struct {
		x, y int
		want bool
	}

	r := NewRect(10, 10, 20, 20)
	tests := map[string]tc{
		"inside":           {x: 15, y: 15, want: true},
		"top-left corner":  {x: 10, y: 10, want: true},
		"right edge":       {x: 30, y: 15, want: false},
		"bottom edge":      {x: 15, y: 30, want: false},
		"last inside cell": {x: 29, y: 29, want: true},
		"left of rect":     {x: 9, y: 15, want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
			if got := (Point{X: tt.x, Y: tt.y}).In(r); got != tt.want {
				t.Errorf("Point.In = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRect_Intersect(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	if got := a.Intersect(NewRect(5, 5, 10, 10)); got != NewRect(5, 5, 5, 5) {
		t.Errorf("Intersect = %+v", got)
	}
	if a.Intersects(NewRect(10, 0, 5, 5)) {
		t.Error("touching rects should not intersect")
	}
}

func TestRect_Accessors(t *testing.T) {
	r := RectAt(Point{X: 4, Y: 6}, Size{Width: 10, Height: 7})
	if r.Origin() != (Point{X: 4, Y: 6}) {
		t.Errorf("Origin() = %+v", r.Origin())
	}
	if r.Size() != (Size{Width: 10, Height: 7}) {
		t.Errorf("Size() = %+v", r.Size())
	}
	if r.Center() != (Point{X: 9, Y: 9}) {
		t.Errorf("Center() = %+v", r.Center())
	}
	if got := r.Translate(-4, 1); got != NewRect(0, 7, 10, 7) {
		t.Errorf("Translate = %+v", got)
	}
}

func TestSize_ClampTo(t *testing.T) {
	limit := Size{Width: 100, Height: 50}
	if got := (Size{Width: 200, Height: -3}).ClampTo(limit); got != (Size{Width: 100, Height: 0}) {
		t.Errorf("ClampTo = %+v", got)
	}
	if got := (Size{Width: 10, Height: 10}).ClampTo(Size{Width: -1, Height: 5}); got != (Size{Width: 0, Height: 5}) {
		t.Errorf("ClampTo negative limit = %+v", got)
	}
}
