package design

import "github.com/mesh-intelligence/frames/pkg/types"

// Setters return ErrInvalidIndex for an out-of-range frame or generic index
// and ErrInvalidRelation or ErrInvalidAnchor for undeclared enum values. In
// every error case the store is left unchanged.

// corner selects the start or end Property2 of a frame.
type corner uint8

const (
	cornerStart corner = iota
	cornerEnd
)

// axes selects which axes a setter writes.
type axes uint8

const (
	axesX axes = 1 << iota
	axesY
	axesBoth = axesX | axesY
)

// SetParent replaces the parent of frame i. Values below types.NoParent are
// stored as types.NoParent. The new parent is not checked.
func (d *Design) SetParent(i, parent int) error {
	f, ok := d.frame(i)
	if !ok {
		return types.ErrInvalidIndex
	}
	f.Parent = max(parent, types.NoParent)
	return nil
}

// SetPoint marks frame i as a point (its end resolves to its start) or as a
// rectangle.
func (d *Design) SetPoint(i int, isPoint bool) error {
	f, ok := d.frame(i)
	if !ok {
		return types.ErrInvalidIndex
	}
	f.IsPoint = isPoint
	return nil
}

// SetGroup sets the group tag of frame i.
func (d *Design) SetGroup(i, group int) error {
	f, ok := d.frame(i)
	if !ok {
		return types.ErrInvalidIndex
	}
	f.GroupID = group
	return nil
}

// SetDepth sets the depth tag of frame i.
func (d *Design) SetDepth(i, depth int) error {
	f, ok := d.frame(i)
	if !ok {
		return types.ErrInvalidIndex
	}
	f.Depth = depth
	return nil
}

// SetStartOffset replaces the raw start values, keeping relations and anchors.
func (d *Design) SetStartOffset(i int, offset types.Vector2) error {
	return d.setOffset(i, cornerStart, offset)
}

// SetEndOffset replaces the raw end values, keeping relations and anchors.
func (d *Design) SetEndOffset(i int, offset types.Vector2) error {
	return d.setOffset(i, cornerEnd, offset)
}

// SetStartAnchor sets the start anchor of frame i on both axes.
func (d *Design) SetStartAnchor(i int, a types.Anchor) error {
	return d.setAnchor(i, cornerStart, axesBoth, a)
}

// SetStartAnchorX sets the start anchor of frame i on the x axis.
func (d *Design) SetStartAnchorX(i int, a types.Anchor) error {
	return d.setAnchor(i, cornerStart, axesX, a)
}

// SetStartAnchorY sets the start anchor of frame i on the y axis.
func (d *Design) SetStartAnchorY(i int, a types.Anchor) error {
	return d.setAnchor(i, cornerStart, axesY, a)
}

// SetEndAnchor sets the end anchor of frame i on both axes.
func (d *Design) SetEndAnchor(i int, a types.Anchor) error {
	return d.setAnchor(i, cornerEnd, axesBoth, a)
}

// SetEndAnchorX sets the end anchor of frame i on the x axis.
func (d *Design) SetEndAnchorX(i int, a types.Anchor) error {
	return d.setAnchor(i, cornerEnd, axesX, a)
}

// SetEndAnchorY sets the end anchor of frame i on the y axis.
func (d *Design) SetEndAnchorY(i int, a types.Anchor) error {
	return d.setAnchor(i, cornerEnd, axesY, a)
}

// SetStartRelation sets the start relation of frame i on both axes.
func (d *Design) SetStartRelation(i int, r types.Relation) error {
	return d.setRelation(i, cornerStart, axesBoth, r)
}

// SetStartRelationX sets the start relation of frame i on the x axis.
func (d *Design) SetStartRelationX(i int, r types.Relation) error {
	return d.setRelation(i, cornerStart, axesX, r)
}

// SetStartRelationY sets the start relation of frame i on the y axis.
func (d *Design) SetStartRelationY(i int, r types.Relation) error {
	return d.setRelation(i, cornerStart, axesY, r)
}

// SetEndRelation sets the end relation of frame i on both axes.
func (d *Design) SetEndRelation(i int, r types.Relation) error {
	return d.setRelation(i, cornerEnd, axesBoth, r)
}

// SetEndRelationX sets the end relation of frame i on the x axis.
func (d *Design) SetEndRelationX(i int, r types.Relation) error {
	return d.setRelation(i, cornerEnd, axesX, r)
}

// SetEndRelationY sets the end relation of frame i on the y axis.
func (d *Design) SetEndRelationY(i int, r types.Relation) error {
	return d.setRelation(i, cornerEnd, axesY, r)
}

// SetGeneric sets the raw value of generic g on frame i.
func (d *Design) SetGeneric(i, g int, value float32) error {
	p, ok := d.generic(i, g)
	if !ok {
		return types.ErrInvalidIndex
	}
	p.Value = value
	return nil
}

// SetGenericRelation sets the relation of generic g on frame i.
func (d *Design) SetGenericRelation(i, g int, r types.Relation) error {
	if !r.Valid() {
		return types.ErrInvalidRelation
	}
	p, ok := d.generic(i, g)
	if !ok {
		return types.ErrInvalidIndex
	}
	p.Relation = r
	return nil
}

// Getters return the zero value of their result type for an out-of-range
// frame or generic index. Parent returns types.NoParent.

// Parent returns the raw parent index of frame i.
func (d *Design) Parent(i int) int {
	f, ok := d.frame(i)
	if !ok {
		return types.NoParent
	}
	return f.Parent
}

// IsPoint reports whether frame i is a point.
func (d *Design) IsPoint(i int) bool {
	f, ok := d.frame(i)
	return ok && f.IsPoint
}

// Group returns the group tag of frame i.
func (d *Design) Group(i int) int {
	f, ok := d.frame(i)
	if !ok {
		return 0
	}
	return f.GroupID
}

// Depth returns the depth tag of frame i.
func (d *Design) Depth(i int) int {
	f, ok := d.frame(i)
	if !ok {
		return 0
	}
	return f.Depth
}

// StartOffset returns the raw, unresolved start values of frame i.
func (d *Design) StartOffset(i int) types.Vector2 {
	f, ok := d.frame(i)
	if !ok {
		return types.Vector2{}
	}
	return f.Start.Values()
}

// EndOffset returns the raw, unresolved end values of frame i.
func (d *Design) EndOffset(i int) types.Vector2 {
	f, ok := d.frame(i)
	if !ok {
		return types.Vector2{}
	}
	return f.End.Values()
}

// StartAnchors returns the per-axis start anchors of frame i.
func (d *Design) StartAnchors(i int) types.Vector2Anchor {
	f, ok := d.frame(i)
	if !ok {
		return types.Vector2Anchor{}
	}
	return f.Start.Anchors()
}

// EndAnchors returns the per-axis end anchors of frame i.
func (d *Design) EndAnchors(i int) types.Vector2Anchor {
	f, ok := d.frame(i)
	if !ok {
		return types.Vector2Anchor{}
	}
	return f.End.Anchors()
}

// StartRelations returns the per-axis start relations of frame i.
func (d *Design) StartRelations(i int) types.Vector2Relation {
	f, ok := d.frame(i)
	if !ok {
		return types.Vector2Relation{}
	}
	return f.Start.Relations()
}

// EndRelations returns the per-axis end relations of frame i.
func (d *Design) EndRelations(i int) types.Vector2Relation {
	f, ok := d.frame(i)
	if !ok {
		return types.Vector2Relation{}
	}
	return f.End.Relations()
}

// Generic returns the raw value of generic g on frame i.
func (d *Design) Generic(i, g int) float32 {
	p, ok := d.generic(i, g)
	if !ok {
		return 0
	}
	return p.Value
}

// GenericRelation returns the relation of generic g on frame i.
func (d *Design) GenericRelation(i, g int) types.Relation {
	p, ok := d.generic(i, g)
	if !ok {
		return types.RelationAbsolute
	}
	return p.Relation
}

func (d *Design) setOffset(i int, c corner, v types.Vector2) error {
	f, ok := d.frame(i)
	if !ok {
		return types.ErrInvalidIndex
	}
	cornerOf(f, c).SetValues(v)
	return nil
}

func (d *Design) setAnchor(i int, c corner, ax axes, a types.Anchor) error {
	if !a.Valid() {
		return types.ErrInvalidAnchor
	}
	f, ok := d.frame(i)
	if !ok {
		return types.ErrInvalidIndex
	}
	p := cornerOf(f, c)
	if ax&axesX != 0 {
		p.X.Anchor = a
	}
	if ax&axesY != 0 {
		p.Y.Anchor = a
	}
	return nil
}

func (d *Design) setRelation(i int, c corner, ax axes, r types.Relation) error {
	if !r.Valid() {
		return types.ErrInvalidRelation
	}
	f, ok := d.frame(i)
	if !ok {
		return types.ErrInvalidIndex
	}
	p := cornerOf(f, c)
	if ax&axesX != 0 {
		p.X.Relation = r
	}
	if ax&axesY != 0 {
		p.Y.Relation = r
	}
	return nil
}

func cornerOf(f *types.Frame, c corner) *types.Property2 {
	if c == cornerEnd {
		return &f.End
	}
	return &f.Start
}

// generic returns a pointer to generic g of frame i.
func (d *Design) generic(i, g int) (*types.Property, bool) {
	f, ok := d.frame(i)
	if !ok || g < 0 || g >= len(f.Generics) {
		return nil, false
	}
	return &f.Generics[g], true
}
