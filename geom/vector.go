package geom

// Vector2f is a 2D point or extent in screen units.
type Vector2f struct {
	X, Y float32
}

// Vec is shorthand for Vector2f{X: x, Y: y}.
func Vec(x, y float32) Vector2f {
	return Vector2f{X: x, Y: y}
}

// Add returns the component-wise sum of v and o.
func (v Vector2f) Add(o Vector2f) Vector2f {
	return Vector2f{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference v - o.
func (v Vector2f) Sub(o Vector2f) Vector2f {
	return Vector2f{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by s.
func (v Vector2f) Scale(s float32) Vector2f {
	return Vector2f{X: v.X * s, Y: v.Y * s}
}
