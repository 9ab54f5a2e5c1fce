package types

import "fmt"

// Vector2 is a pair of single-precision coordinates.
type Vector2 struct {
	X float32 `json:"x" yaml:"x" toml:"x"`
	Y float32 `json:"y" yaml:"y" toml:"y"`
}

// Add returns the component-wise sum.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Axis returns the component for the given axis.
func (v Vector2) Axis(a Axis) float32 {
	if a == AxisY {
		return v.Y
	}
	return v.X
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Vector2Relation holds one Relation per axis.
type Vector2Relation struct {
	X Relation
	Y Relation
}

// Vector2Anchor holds one Anchor per axis.
type Vector2Anchor struct {
	X Anchor
	Y Anchor
}

// Bounds is the resolved absolute geometry of a frame. Size is End minus
// Start and may be negative.
type Bounds struct {
	Start Vector2 `json:"start" yaml:"start" toml:"start"`
	End   Vector2 `json:"end" yaml:"end" toml:"end"`
	Size  Vector2 `json:"size" yaml:"size" toml:"size"`
}
